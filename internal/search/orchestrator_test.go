package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/eduscout/eduscout/internal/models"
)

type fakeSearcher struct {
	queries []string
	results map[string][]models.Resource
	errOn   map[string]error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, maxResults int) ([]models.Resource, error) {
	f.queries = append(f.queries, query)
	if err := f.errOn[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func TestProcessDocumentGeneratesQueries(t *testing.T) {
	searcher := &fakeSearcher{}
	orch := NewOrchestrator(searcher)

	// Word frequencies: gradient 3, descent 2, loss 1. No topic sentences.
	text := "gradient descent loss gradient descent gradient"
	result := orch.ProcessDocument(context.Background(), text)

	wantQueries := []string{
		"gradient descent loss explanation",
		"gradient descent tutorial",
		"gradient course",
		"gradient lecture",
	}
	if len(result.Analysis.SearchQueries) != len(wantQueries) {
		t.Fatalf("queries = %v, want %v", result.Analysis.SearchQueries, wantQueries)
	}
	for i, want := range wantQueries {
		if result.Analysis.SearchQueries[i] != want {
			t.Errorf("query[%d] = %q, want %q", i, result.Analysis.SearchQueries[i], want)
		}
	}
	if len(searcher.queries) != len(wantQueries) {
		t.Errorf("searcher saw %d queries, want %d", len(searcher.queries), len(wantQueries))
	}
}

func TestProcessDocumentBoundsQueryCount(t *testing.T) {
	searcher := &fakeSearcher{}
	orch := NewOrchestrator(searcher)

	// Keywords plus one topic sentence yield six candidate queries.
	text := "gradient descent loss gradient descent gradient. " +
		"Backpropagation is the core training algorithm."
	result := orch.ProcessDocument(context.Background(), text)

	if len(result.Analysis.SearchQueries) != 6 {
		t.Fatalf("generated %d queries, want 6: %v",
			len(result.Analysis.SearchQueries), result.Analysis.SearchQueries)
	}
	if len(searcher.queries) != 5 {
		t.Errorf("searcher saw %d queries, want at most 5", len(searcher.queries))
	}
}

func TestProcessDocumentSkipsFailingQueries(t *testing.T) {
	text := "gradient descent loss gradient descent gradient"
	searcher := &fakeSearcher{
		results: map[string][]models.Resource{
			"gradient descent loss explanation": {{ID: "a", Title: "First"}},
			"gradient course":                   {{ID: "b", Title: "Second"}},
		},
		errOn: map[string]error{
			"gradient descent tutorial": errors.New("provider blew up"),
		},
	}
	orch := NewOrchestrator(searcher)

	result := orch.ProcessDocument(context.Background(), text)

	if result.ResourceCount != 2 {
		t.Fatalf("resourceCount = %d, want 2 (failing query skipped)", result.ResourceCount)
	}
	if len(searcher.queries) != 4 {
		t.Errorf("searcher saw %d queries, want all 4 despite one failure", len(searcher.queries))
	}
}

func TestProcessDocumentDeduplicatesAcrossQueries(t *testing.T) {
	text := "gradient descent loss gradient descent gradient"
	searcher := &fakeSearcher{
		results: map[string][]models.Resource{
			"gradient descent loss explanation": {{ID: "yt-1", Title: "Same Title"}},
			"gradient descent tutorial":         {{ID: "article-1", Title: "Same Title"}},
		},
	}
	orch := NewOrchestrator(searcher)

	result := orch.ProcessDocument(context.Background(), text)

	if result.ResourceCount != 1 {
		t.Fatalf("resourceCount = %d, want 1 after dedupe", result.ResourceCount)
	}
	if result.Resources[0].ID != "yt-1" {
		t.Errorf("kept %q, want first occurrence yt-1", result.Resources[0].ID)
	}
}

func TestProcessDocumentCapsResources(t *testing.T) {
	text := "gradient descent loss gradient descent gradient"

	many := func(prefix string, n int) []models.Resource {
		out := make([]models.Resource, n)
		for i := range out {
			out[i] = models.Resource{
				ID:    fmt.Sprintf("%s-%d", prefix, i),
				Title: fmt.Sprintf("%s title %d", prefix, i),
			}
		}
		return out
	}

	searcher := &fakeSearcher{
		results: map[string][]models.Resource{
			"gradient descent loss explanation": many("a", 12),
			"gradient descent tutorial":         many("b", 12),
		},
	}
	orch := NewOrchestrator(searcher)

	result := orch.ProcessDocument(context.Background(), text)

	if result.ResourceCount != 20 {
		t.Errorf("resourceCount = %d, want cap at 20", result.ResourceCount)
	}
	if len(result.Resources) != 20 {
		t.Errorf("len(resources) = %d, want 20", len(result.Resources))
	}
}
