// Package sentiment provides the binary sentiment classifiers: a hosted
// HuggingFace model (default), an OpenAI chat model and an offline lexicon.
// Each returns the raw label; entity.SentimentFromLabel maps it to the
// positive/negative value served to clients.
package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-insight/internal/usecase/news"
	"news-insight/internal/utils/text"
)

// DefaultHuggingFaceModel is the SST-2 fine-tuned DistilBERT classifier.
const DefaultHuggingFaceModel = "distilbert-base-uncased-finetuned-sst-2-english"

// maxInputRunes keeps inputs well under the model's 512 token window.
const maxInputRunes = 2000

// Inferer runs a hosted inference call. *huggingface.Client implements it.
type Inferer interface {
	Infer(ctx context.Context, model, inputs string, parameters map[string]any, out any) error
}

// HuggingFace classifies text with a hosted text-classification model.
type HuggingFace struct {
	client Inferer
	model  string
}

var _ news.Classifier = (*HuggingFace)(nil)

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewHuggingFace builds the classifier. An empty model selects the default.
func NewHuggingFace(client Inferer, model string) *HuggingFace {
	if model == "" {
		model = DefaultHuggingFaceModel
	}
	slog.Info("initialized huggingface sentiment classifier", slog.String("model", model))
	return &HuggingFace{client: client, model: model}
}

// Classify returns the highest scoring label for input.
func (h *HuggingFace) Classify(ctx context.Context, input string) (news.Classification, error) {
	start := time.Now()
	var raw json.RawMessage
	if err := h.client.Infer(ctx, h.model, text.TruncateRunes(input, maxInputRunes), nil, &raw); err != nil {
		return news.Classification{}, fmt.Errorf("huggingface classify: %w", err)
	}

	candidates, err := parseLabels(raw)
	if err != nil {
		return news.Classification{}, fmt.Errorf("huggingface classify: %w", err)
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}

	slog.DebugContext(ctx, "sentiment classified",
		slog.String("provider", "huggingface"),
		slog.String("label", best.Label),
		slog.Float64("score", best.Score),
		slog.Duration("duration", time.Since(start)))

	return news.Classification{Label: best.Label, Score: best.Score}, nil
}

// parseLabels accepts the nested [[{label,score}]] shape returned for a
// single input as well as a flat [{label,score}] list.
func parseLabels(raw json.RawMessage) ([]labelScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) > 0 && len(nested[0]) > 0 {
			return nested[0], nil
		}
		return nil, errors.New("empty classification response")
	}

	var flat []labelScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decode classification response: %w", err)
	}
	if len(flat) == 0 {
		return nil, errors.New("empty classification response")
	}
	return flat, nil
}
