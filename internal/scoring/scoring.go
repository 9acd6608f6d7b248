// Package scoring computes heuristic quality, difficulty, summary, and
// recency signals for resources. Every function is pure and deterministic;
// the weights and thresholds are the contract and must not drift.
package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/eduscout/eduscout/internal/config"
	"github.com/eduscout/eduscout/internal/models"
)

// UnknownRecencyDays is the sentinel for resources with no parseable
// publication date.
const UnknownRecencyDays = 365

const wordsPerMinute = 200

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Scorer evaluates resources against configured keyword and domain lists.
type Scorer struct {
	reputableChannels []string
	reputableDomains  []string
	advancedKeywords  []string
	beginnerKeywords  []string
}

func New(cfg config.ScoringConfig) *Scorer {
	return &Scorer{
		reputableChannels: lowerAll(cfg.ReputableChannels),
		reputableDomains:  lowerAll(cfg.ReputableDomains),
		advancedKeywords:  lowerAll(cfg.AdvancedKeywords),
		beginnerKeywords:  lowerAll(cfg.BeginnerKeywords),
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// VideoQuality rates a video hit on the 0-5 scale: base 3.0, +1 for a
// reputable channel, +0.5 for strong title keywords, +0.5 for a top-3
// position, +0.5 for a long description.
func (s *Scorer) VideoQuality(channelTitle, title, description string, position int) float64 {
	score := 3.0

	channel := strings.ToLower(channelTitle)
	for _, ch := range s.reputableChannels {
		if strings.Contains(channel, ch) {
			score++
			break
		}
	}

	titleLower := strings.ToLower(title)
	if strings.Contains(titleLower, "tutorial") ||
		strings.Contains(titleLower, "course") ||
		strings.Contains(titleLower, "complete guide") {
		score += 0.5
	}

	if position < 3 {
		score += 0.5
	}

	if len(description) > 500 {
		score += 0.5
	}

	return clampQuality(score)
}

// ArticleQuality rates a web hit on the 0-5 scale: base 3.0, +1 for a
// reputable domain, +0.5 for a substantial snippet, +0.5 for a top-3
// position.
func (s *Scorer) ArticleQuality(link, snippet string, position int) float64 {
	score := 3.0

	linkLower := strings.ToLower(link)
	for _, d := range s.reputableDomains {
		if strings.Contains(linkLower, d) {
			score++
			break
		}
	}

	if len(snippet) > 100 {
		score += 0.5
	}

	if position < 3 {
		score += 0.5
	}

	return clampQuality(score)
}

// Difficulty labels a resource from its title and description. An advanced
// keyword match wins over a beginner match; the default is Intermediate.
func (s *Scorer) Difficulty(title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, kw := range s.advancedKeywords {
		if strings.Contains(text, kw) {
			return models.DifficultyAdvanced
		}
	}
	for _, kw := range s.beginnerKeywords {
		if strings.Contains(text, kw) {
			return models.DifficultyBeginner
		}
	}
	return models.DifficultyIntermediate
}

// Summary extracts up to three substantial sentences from a description.
// With no qualifying sentences the description is truncated instead, and
// with no description at all a fixed placeholder is returned. The result
// is never empty.
func Summary(description string) []string {
	if description == "" {
		return []string{"No description available"}
	}

	var summary []string
	for _, sentence := range sentenceSplitRe.Split(description, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 20 {
			summary = append(summary, sentence)
			if len(summary) == 3 {
				break
			}
		}
	}

	if len(summary) == 0 {
		if len(description) > 150 {
			description = description[:150]
		}
		return []string{description + "..."}
	}
	return summary
}

// ReadingTime estimates reading duration at 200 words per minute, formatted
// as "N min" under an hour and "Hh Mmin" above it (bare "Hh" when the
// minutes are zero).
func ReadingTime(text string) string {
	wordCount := len(strings.Fields(text))
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	if minutes < 60 {
		return strconv.Itoa(minutes) + " min"
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return strconv.Itoa(hours) + "h"
	}
	return strconv.Itoa(hours) + "h " + strconv.Itoa(rem) + "min"
}

// RecencyDays returns whole days since an RFC 3339 publication timestamp,
// or UnknownRecencyDays when the timestamp is absent or unparseable.
func RecencyDays(publishedAt string, now time.Time) int {
	if publishedAt == "" {
		return UnknownRecencyDays
	}
	published, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return UnknownRecencyDays
	}
	days := int(math.Floor(now.Sub(published).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// clampQuality bounds a score to [0, 5] and rounds to one decimal place.
func clampQuality(score float64) float64 {
	rounded := math.Round(score*10) / 10
	return math.Min(5, math.Max(0, rounded))
}
