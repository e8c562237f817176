package metrics

import (
	"slices"
	"time"

	"news-insight/internal/domain/entity"
)

// otherCategory labels any category outside the fixed list so request input
// cannot grow the label set.
const otherCategory = "other"

// RecordHeadlinesFetched records how many articles the news source returned.
func RecordHeadlinesFetched(category string, count int) {
	HeadlinesFetchedTotal.WithLabelValues(CategoryLabel(category)).Add(float64(count))
}

// CategoryLabel returns category if it is one of entity.Categories, else "other".
func CategoryLabel(category string) string {
	if slices.Contains(entity.Categories(), category) {
		return category
	}
	return otherCategory
}

// RecordArticleEnriched records one enriched article and its sentiment label.
func RecordArticleEnriched(sentiment string) {
	ArticlesEnrichedTotal.Inc()
	SentimentTotal.WithLabelValues(sentiment).Inc()
}

// RecordArticleSkipped records an article dropped for empty content.
func RecordArticleSkipped() {
	ArticlesSkippedTotal.Inc()
}

// RecordEnrichmentFailure records a failed stage.
// Stage is one of the Stage* constants.
func RecordEnrichmentFailure(stage string) {
	EnrichmentFailuresTotal.WithLabelValues(stage).Inc()
}

// RecordStageDuration records how long a stage took, successful or not.
func RecordStageDuration(stage string, duration time.Duration) {
	StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}
