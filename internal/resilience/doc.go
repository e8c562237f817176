// Package resilience provides fault isolation for the external collaborators of the
// service: the news source, the HuggingFace inference API and the LLM providers.
//
// Only circuit breaking is offered. Calls are never retried; a failed call fails
// the request it belongs to.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.NewsAPIConfig())
//	articles, err := circuitbreaker.Run(cb, func() ([]entity.Article, error) {
//	    return fetch(ctx)
//	})
package resilience
