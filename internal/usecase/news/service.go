package news

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"news-insight/internal/domain/entity"
	"news-insight/internal/observability/metrics"
	"news-insight/internal/observability/tracing"
)

// DefaultParallelism is the number of articles enriched at once when
// Service.Parallelism is not set.
const DefaultParallelism = 4

// Service composes the news source, summarizer and classifier.
// All collaborators are read-only and shared across concurrent requests.
type Service struct {
	Source      Source
	Summarizer  Summarizer
	Classifier  Classifier
	Parallelism int
	Logger      *slog.Logger
}

// ListEnriched fetches top headlines for query and category and enriches every
// article that has content. query and category reach the source unchanged.
// Articles without content are skipped before they are validated, so a
// skipped article never fails the call. The result keeps the source order.
// Any failure aborts the whole call and no partial result is returned.
func (s *Service) ListEnriched(ctx context.Context, query, category string) ([]entity.ArticleResponse, error) {
	logger := s.logger()

	articles, err := s.fetch(ctx, HeadlinesQuery{
		Query:    query,
		Category: category,
		Language: Language,
		PageSize: PageSize,
	})
	if err != nil {
		return nil, err
	}

	pending := make([]entity.Article, 0, len(articles))
	for i, a := range articles {
		if !a.HasContent() {
			metrics.RecordArticleSkipped()
			logger.DebugContext(ctx, "skipping article without content", slog.String("url", a.URL))
			continue
		}
		if err := a.Validate(); err != nil {
			metrics.RecordEnrichmentFailure(metrics.StageValidate)
			logger.ErrorContext(ctx, "malformed article",
				slog.Int("position", i),
				slog.Any("error", err))
			return nil, fmt.Errorf("article %d: %w", i, err)
		}
		pending = append(pending, a)
	}

	results := make([]entity.ArticleResponse, len(pending))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.parallelism())

	for i, a := range pending {
		eg.Go(func() error {
			res, err := s.enrich(egCtx, i, a)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.ErrorContext(ctx, "news enrichment failed",
			slog.String("category", category),
			slog.Any("error", err))
		return nil, err
	}

	logger.InfoContext(ctx, "news enriched",
		slog.String("category", category),
		slog.Int("fetched", len(articles)),
		slog.Int("enriched", len(results)),
		slog.Int("skipped", len(articles)-len(results)))

	return results, nil
}

func (s *Service) fetch(ctx context.Context, q HeadlinesQuery) ([]entity.Article, error) {
	ctx, span := tracing.StartSpan(ctx, "news.fetch_headlines")
	defer span.End()
	span.SetAttributes(
		attribute.String("news.category", q.Category),
		attribute.String("news.query", q.Query),
	)

	start := time.Now()
	articles, err := s.Source.TopHeadlines(ctx, q)
	metrics.RecordStageDuration(metrics.StageFetch, time.Since(start))
	if err != nil {
		metrics.RecordEnrichmentFailure(metrics.StageFetch)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	metrics.RecordHeadlinesFetched(q.Category, len(articles))
	span.SetAttributes(attribute.Int("news.articles", len(articles)))
	return articles, nil
}

// enrich summarizes and classifies one article. idx is its position in the
// filtered list and only used for error messages.
func (s *Service) enrich(ctx context.Context, idx int, a entity.Article) (entity.ArticleResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "news.enrich_article")
	defer span.End()
	span.SetAttributes(attribute.String("news.url", a.URL))

	if !a.HasContent() {
		return entity.ArticleResponse{}, fmt.Errorf("enrich article %d: %w", idx, entity.ErrEmptyContent)
	}

	start := time.Now()
	summary, err := s.Summarizer.Summarize(ctx, a.Content)
	metrics.RecordStageDuration(metrics.StageSummarize, time.Since(start))
	if err != nil {
		metrics.RecordEnrichmentFailure(metrics.StageSummarize)
		span.RecordError(err)
		span.SetStatus(codes.Error, "summarize failed")
		return entity.ArticleResponse{}, fmt.Errorf("summarize article %d: %w", idx, err)
	}

	start = time.Now()
	class, err := s.Classifier.Classify(ctx, a.Content)
	metrics.RecordStageDuration(metrics.StageClassify, time.Since(start))
	if err != nil {
		metrics.RecordEnrichmentFailure(metrics.StageClassify)
		span.RecordError(err)
		span.SetStatus(codes.Error, "classify failed")
		return entity.ArticleResponse{}, fmt.Errorf("classify article %d: %w", idx, err)
	}

	sentiment := entity.SentimentFromLabel(class.Label)
	metrics.RecordArticleEnriched(sentiment.String())
	span.SetAttributes(
		attribute.String("news.sentiment", sentiment.String()),
		attribute.Float64("news.sentiment_score", class.Score),
	)

	return entity.ArticleResponse{
		Article:   a,
		Summary:   summary,
		Sentiment: sentiment,
	}, nil
}

func (s *Service) parallelism() int {
	if s.Parallelism <= 0 {
		return DefaultParallelism
	}
	return s.Parallelism
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
