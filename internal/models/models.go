package models

// ResourceType classifies a resource by its content form.
type ResourceType string

const (
	TypeVideo   ResourceType = "video"
	TypeArticle ResourceType = "article"
	TypePDF     ResourceType = "pdf"
)

// Difficulty labels assigned by the scoring engine.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Resource is one normalized piece of educational content returned to clients.
// Adapters create Resources as values; the ranker overwrites AIRelevance exactly
// once per ranking pass and nothing else mutates a scored Resource.
type Resource struct {
	ID           string       `json:"id"`
	Type         ResourceType `json:"type"`
	Title        string       `json:"title"`
	Source       string       `json:"source"`
	QualityScore float64      `json:"qualityScore"`
	Duration     string       `json:"duration"`
	Difficulty   string       `json:"difficulty"`
	Views        int64        `json:"views"`
	Likes        int64        `json:"likes"`
	Summary      []string     `json:"summary"`
	Thumbnail    string       `json:"thumbnail"`
	URL          string       `json:"url"`
	AIRelevance  int          `json:"aiRelevance"`
	Recency      int          `json:"recency"`

	// Provider passthrough fields, kept for scoring but not contractual.
	ChannelTitle string `json:"channelTitle,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
	Description  string `json:"description,omitempty"`
}

// AnalysisResult summarizes one analyzed document. It is created per upload,
// consumed to generate search queries, and discarded.
type AnalysisResult struct {
	Keywords      []string `json:"keywords"`
	Topics        []string `json:"topics"`
	WordCount     int      `json:"wordCount"`
	SentenceCount int      `json:"sentenceCount"`
	SearchQueries []string `json:"searchQueries,omitempty"`
}

// SearchResponse is the payload of the search endpoint.
type SearchResponse struct {
	Query   string     `json:"query"`
	Results []Resource `json:"results"`
	Count   int        `json:"count"`
}

// DocumentResult is the payload of the document-driven workflow.
type DocumentResult struct {
	Analysis      AnalysisResult `json:"analysis"`
	Resources     []Resource     `json:"resources"`
	ResourceCount int            `json:"resourceCount"`
}
