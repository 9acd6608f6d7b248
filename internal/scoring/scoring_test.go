package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/eduscout/eduscout/internal/config"
	"github.com/eduscout/eduscout/internal/models"
)

func testScorer() *Scorer {
	return New(config.DefaultConfig().Scoring)
}

func TestVideoQuality(t *testing.T) {
	s := testScorer()
	longDesc := strings.Repeat("x", 501)

	tests := []struct {
		name        string
		channel     string
		title       string
		description string
		position    int
		want        float64
	}{
		{"base score", "Random Channel", "Some Video", "short", 5, 3.0},
		{"reputable channel", "Khan Academy", "Some Video", "short", 5, 4.0},
		{"title keyword", "Random Channel", "Go Tutorial", "short", 5, 3.5},
		{"top position", "Random Channel", "Some Video", "short", 0, 3.5},
		{"long description", "Random Channel", "Some Video", longDesc, 5, 3.5},
		{"everything", "freeCodeCamp", "Complete Guide to Go", longDesc, 1, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.VideoQuality(tt.channel, tt.title, tt.description, tt.position)
			if got != tt.want {
				t.Errorf("VideoQuality() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 5 {
				t.Errorf("VideoQuality() = %v, out of [0,5]", got)
			}
		})
	}
}

func TestArticleQuality(t *testing.T) {
	s := testScorer()
	longSnippet := strings.Repeat("y", 101)

	tests := []struct {
		name     string
		link     string
		snippet  string
		position int
		want     float64
	}{
		{"base score", "https://example.com/post", "short", 9, 3.0},
		{"reputable domain", "https://medium.com/post", "short", 9, 4.0},
		{"long snippet", "https://example.com/post", longSnippet, 9, 3.5},
		{"top position", "https://example.com/post", "short", 2, 3.5},
		{"capped at five", "https://en.wikipedia.org/wiki/Go", longSnippet, 0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ArticleQuality(tt.link, tt.snippet, tt.position)
			if got != tt.want {
				t.Errorf("ArticleQuality() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifficulty(t *testing.T) {
	s := testScorer()

	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"default intermediate", "Sorting in Go", "walkthrough of sort package", models.DifficultyIntermediate},
		{"beginner keyword", "Introduction to Go", "", models.DifficultyBeginner},
		{"beginner 101", "Go 101", "", models.DifficultyBeginner},
		{"advanced keyword", "Advanced Concurrency", "", models.DifficultyAdvanced},
		{"advanced in description", "Concurrency", "a deep dive into the scheduler", models.DifficultyAdvanced},
		{"advanced wins over beginner", "Advanced basics", "", models.DifficultyAdvanced},
		{"case insensitive", "EXPERT patterns", "", models.DifficultyAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Difficulty(tt.title, tt.description); got != tt.want {
				t.Errorf("Difficulty(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			"empty description",
			"",
			[]string{"No description available"},
		},
		{
			"no qualifying sentences",
			"Short. Tiny. Also small.",
			[]string{"Short. Tiny. Also small...."},
		},
		{
			"keeps first three substantial sentences",
			"This first sentence is long enough to keep. So is this second one right here! And a third that also qualifies nicely? A fourth substantial sentence gets dropped.",
			[]string{
				"This first sentence is long enough to keep",
				"So is this second one right here",
				"And a third that also qualifies nicely",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summary(tt.description)
			if len(got) == 0 {
				t.Fatal("Summary() returned empty slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Summary() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Summary()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSummaryTruncatesLongDescription(t *testing.T) {
	desc := strings.Repeat("ab ", 100) // no sentence terminators
	got := Summary(desc)
	if len(got) != 1 {
		t.Fatalf("Summary() = %v, want single truncated entry", got)
	}
	if len(got[0]) != 153 { // 150 chars + "..."
		t.Errorf("truncated summary length = %d, want 153", len(got[0]))
	}
	if !strings.HasSuffix(got[0], "...") {
		t.Errorf("truncated summary %q missing ellipsis", got[0])
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  string
	}{
		{"empty text", 0, "1 min"},
		{"one page", 180, "1 min"},
		{"rounds up", 201, "2 min"},
		{"under an hour", 10000, "50 min"},
		{"exactly an hour", 12000, "1h"},
		{"hours and minutes", 13000, "1h 5min"},
		{"multiple hours", 24400, "2h 2min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := ReadingTime(text); got != tt.want {
				t.Errorf("ReadingTime(%d words) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

func TestRecencyDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		publishedAt string
		want        int
	}{
		{"missing date", "", 365},
		{"unparseable date", "yesterday", 365},
		{"same day", "2025-06-15T06:00:00Z", 0},
		{"ten days ago", "2025-06-05T12:00:00Z", 10},
		{"a year ago", "2024-06-15T12:00:00Z", 365},
		{"future date clamps to zero", "2025-07-01T00:00:00Z", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecencyDays(tt.publishedAt, now); got != tt.want {
				t.Errorf("RecencyDays(%q) = %d, want %d", tt.publishedAt, got, tt.want)
			}
		})
	}
}

func TestRecencyDaysMonotonic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	prev := -1
	for days := 0; days < 400; days += 7 {
		published := now.AddDate(0, 0, -days).Format(time.RFC3339)
		got := RecencyDays(published, now)
		if got < prev {
			t.Fatalf("RecencyDays not monotonic: %d days ago gave %d, previous %d", days, got, prev)
		}
		prev = got
	}
}
