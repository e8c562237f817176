package summarizer

import (
	"fmt"
	"time"
)

const (
	// DefaultMinLength and DefaultMaxLength bound summary length in words.
	DefaultMinLength = 30
	DefaultMaxLength = 130

	// maxLengthCeiling is the largest max_length accepted by the inference models.
	maxLengthCeiling = 1024

	// maxInputRunes caps the text sent to chat models.
	maxInputRunes = 10000

	defaultTimeout = 60 * time.Second
)

// Bounds is the summary length window, in words.
type Bounds struct {
	MinLength int
	MaxLength int
}

// DefaultBounds returns the 30..130 window.
func DefaultBounds() Bounds {
	return Bounds{MinLength: DefaultMinLength, MaxLength: DefaultMaxLength}
}

// Validate checks 1 <= min <= max <= 1024.
func (b Bounds) Validate() error {
	if b.MinLength < 1 {
		return fmt.Errorf("summary min length %d is below minimum 1", b.MinLength)
	}
	if b.MaxLength < b.MinLength {
		return fmt.Errorf("summary max length %d is below min length %d", b.MaxLength, b.MinLength)
	}
	if b.MaxLength > maxLengthCeiling {
		return fmt.Errorf("summary max length %d exceeds maximum %d", b.MaxLength, maxLengthCeiling)
	}
	return nil
}

// Within reports whether a summary of words words respects the bounds.
func (b Bounds) Within(words int) bool {
	return words >= b.MinLength && words <= b.MaxLength
}

func (b Bounds) orDefault() Bounds {
	if b.MinLength == 0 && b.MaxLength == 0 {
		return DefaultBounds()
	}
	return b
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultTimeout
	}
	return d
}
