package search

import (
	"math"
	"sort"
	"strings"

	"github.com/eduscout/eduscout/internal/models"
)

// Rank computes the composite relevance score for every resource and returns
// a new slice ordered by it, descending. The sort is stable: resources with
// equal scores keep their input order, which matters because adapter-seeded
// baselines collide often. Input resources are not mutated.
func Rank(resources []models.Resource, query string) []models.Resource {
	queryLower := strings.ToLower(query)
	tokens := distinctTokens(queryLower)

	ranked := make([]models.Resource, len(resources))
	copy(ranked, resources)

	for i := range ranked {
		r := &ranked[i]

		score := float64(r.AIRelevance)
		if r.AIRelevance == 0 {
			score = 70
		}

		titleLower := strings.ToLower(r.Title)
		for _, tok := range tokens {
			if strings.Contains(titleLower, tok) {
				score += 5
			}
		}
		if strings.Contains(titleLower, queryLower) {
			score += 10
		}

		descLower := strings.ToLower(r.Description)
		for _, tok := range tokens {
			if strings.Contains(descLower, tok) {
				score += 2
			}
		}

		score += (r.QualityScore - 3) * 5

		if r.Recency < 90 {
			score += 3
		}
		if r.Views > 100000 {
			score += 2
		}

		r.AIRelevance = clampRelevance(score)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AIRelevance > ranked[j].AIRelevance
	})
	return ranked
}

// distinctTokens splits a lowercased query on whitespace, dropping repeats
// so each token contributes its bonus at most once.
func distinctTokens(queryLower string) []string {
	fields := strings.Fields(queryLower)
	seen := make(map[string]struct{}, len(fields))
	tokens := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

func clampRelevance(score float64) int {
	n := int(math.Round(score))
	if n > 100 {
		return 100
	}
	if n < 0 {
		return 0
	}
	return n
}
