package search

import "github.com/eduscout/eduscout/internal/models"

// DedupeByTitle drops resources whose exact title was already seen, keeping
// the first occurrence and the input order. Running it over an already
// deduplicated slice is a no-op.
func DedupeByTitle(resources []models.Resource) []models.Resource {
	seen := make(map[string]struct{}, len(resources))
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if _, ok := seen[r.Title]; ok {
			continue
		}
		seen[r.Title] = struct{}{}
		out = append(out, r)
	}
	return out
}
