package entity

// Sentiment is the two-valued polarity label exposed to clients.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// positiveLabel is the raw classifier label mapped to SentimentPositive.
const positiveLabel = "POSITIVE"

// SentimentFromLabel maps a raw classifier label to the domain label.
// Only the exact label POSITIVE becomes positive. Every other label,
// including "positive" and padded variants, becomes negative.
func SentimentFromLabel(label string) Sentiment {
	if label == positiveLabel {
		return SentimentPositive
	}
	return SentimentNegative
}

// String implements fmt.Stringer.
func (s Sentiment) String() string {
	return string(s)
}
