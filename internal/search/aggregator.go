package search

import (
	"context"
	"log/slog"

	"github.com/eduscout/eduscout/internal/models"
	"github.com/eduscout/eduscout/internal/provider"
)

// Provider is the adapter contract the aggregator fans out to.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.Resource, error)
}

// Aggregator fans a query out to the configured providers, merges their
// results, and ranks them. The video provider is mandatory: its credential
// and auth failures propagate. The article provider is optional and only
// ever degrades result completeness.
type Aggregator struct {
	video    Provider
	articles Provider // nil when unconfigured
}

func NewAggregator(video, articles Provider) *Aggregator {
	return &Aggregator{video: video, articles: articles}
}

const perProviderLimit = 10

// Search aggregates up to maxResults ranked resources for a query.
func (a *Aggregator) Search(ctx context.Context, query string, maxResults int) ([]models.Resource, error) {
	if maxResults <= 0 {
		maxResults = 20
	}

	videos, err := a.video.Search(ctx, query, min(maxResults, perProviderLimit))
	if err != nil {
		if provider.IsFatal(err) {
			return nil, err
		}
		// Provider instability is not a request failure.
		slog.Warn("Video provider failed, continuing without videos", "query", query, "error", err)
		videos = nil
	}

	resources := videos
	if a.articles != nil {
		if limit := min(maxResults-len(videos), perProviderLimit); limit > 0 {
			articles, err := a.articles.Search(ctx, query, limit)
			if err != nil {
				slog.Warn("Article provider failed, returning video results only", "query", query, "error", err)
			} else {
				resources = append(resources, articles...)
			}
		}
	}

	ranked := Rank(resources, query)
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked, nil
}
