package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Sentiment
	}{
		{label: "POSITIVE", want: SentimentPositive},
		{label: "positive", want: SentimentNegative},
		{label: "Positive", want: SentimentNegative},
		{label: " POSITIVE ", want: SentimentNegative},
		{label: "NEGATIVE", want: SentimentNegative},
		{label: "NEUTRAL", want: SentimentNegative},
		{label: "LABEL_1", want: SentimentNegative},
		{label: "", want: SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, SentimentFromLabel(tt.label))
		})
	}
}

func TestCategories_FixedOrder(t *testing.T) {
	want := []string{"general", "business", "technology", "science", "health", "entertainment", "sports"}

	for i := 0; i < 3; i++ {
		assert.Equal(t, want, Categories())
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	got := Categories()
	got[0] = "mutated"

	assert.Equal(t, "general", Categories()[0])
}

func TestArticle_HasContent(t *testing.T) {
	assert.True(t, Article{Content: "body"}.HasContent())
	assert.False(t, Article{Content: ""}.HasContent())
	assert.True(t, Article{Content: "  \n\t"}.HasContent())
}

func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		field   string
	}{
		{name: "valid", article: Article{Title: "t", URL: "https://example.com"}},
		{name: "empty strings are present", article: Article{}},
		{name: "missing title", article: Article{URL: "https://example.com", Missing: []string{"title"}}, field: "title"},
		{name: "missing url", article: Article{Title: "t", Missing: []string{"url"}}, field: "url"},
		{name: "first missing field reported", article: Article{Missing: []string{"title", "url"}}, field: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.ErrorIs(t, err, ErrMalformedArticle)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "url", Message: "is required"}
	assert.Equal(t, "validation error on field 'url': is required", err.Error())
}
