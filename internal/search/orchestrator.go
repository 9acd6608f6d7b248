package search

import (
	"context"
	"log/slog"

	"github.com/eduscout/eduscout/internal/analyzer"
	"github.com/eduscout/eduscout/internal/models"
)

// Searcher is the aggregation entry point the orchestrator drives.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.Resource, error)
}

const (
	// maxDocumentQueries bounds outbound call volume per document.
	maxDocumentQueries = 5
	perQueryResults    = 10
	maxDocumentResults = 20
)

// Orchestrator turns one document into several searches and merges the
// resulting resource sets.
type Orchestrator struct {
	searcher Searcher
}

func NewOrchestrator(searcher Searcher) *Orchestrator {
	return &Orchestrator{searcher: searcher}
}

// ProcessDocument analyzes extracted document text, derives search queries,
// aggregates resources for the first few queries, and deduplicates across
// them. Queries are issued sequentially to respect provider rate limits,
// and a failing query is skipped rather than aborting the batch.
func (o *Orchestrator) ProcessDocument(ctx context.Context, text string) models.DocumentResult {
	analysis := analyzer.Analyze(text)
	analysis.SearchQueries = analyzer.GenerateQueries(analysis)

	var all []models.Resource
	for i, query := range analysis.SearchQueries {
		if i == maxDocumentQueries {
			break
		}
		if ctx.Err() != nil {
			break
		}

		resources, err := o.searcher.Search(ctx, query, perQueryResults)
		if err != nil {
			slog.Warn("Document query failed, skipping", "query", query, "error", err)
			continue
		}
		all = append(all, resources...)
	}

	deduped := DedupeByTitle(all)
	if len(deduped) > maxDocumentResults {
		deduped = deduped[:maxDocumentResults]
	}

	return models.DocumentResult{
		Analysis:      analysis,
		Resources:     deduped,
		ResourceCount: len(deduped),
	}
}
