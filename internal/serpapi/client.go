// Package serpapi adapts SerpAPI's Google engine into the canonical
// resource model, classifying each organic hit as an article or a PDF.
// SerpAPI is the optional provider: failures here never fail a search.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/eduscout/eduscout/internal/models"
	"github.com/eduscout/eduscout/internal/provider"
	"github.com/eduscout/eduscout/internal/scoring"
)

const providerName = "serpapi"

// Client queries SerpAPI for educational articles and PDFs.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	scorer         *scoring.Scorer
	articleDomains []string
}

// New creates a SerpAPI client. articleDomains lists the content domains
// that qualify a snippetless hit as an article.
func New(apiKey string, scorer *scoring.Scorer, articleDomains []string) *Client {
	lowered := make([]string, len(articleDomains))
	for i, d := range articleDomains {
		lowered[i] = strings.ToLower(d)
	}
	return &Client{
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		apiKey:         apiKey,
		baseURL:        "https://serpapi.com/search.json",
		scorer:         scorer,
		articleDomains: lowered,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Search fetches organic results for a query restricted to the past year
// and maps qualifying hits into Resources. Hits that are neither PDFs nor
// recognizable articles are discarded.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]models.Resource, error) {
	if c.apiKey == "" {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"q":       {query + " tutorial article pdf"},
		"engine":  {"google"},
		"api_key": {c.apiKey},
		"num":     {strconv.Itoa(maxResults)},
		"tbs":     {"qdr:y"},
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.WrapError(provider.KindTransient, providerName, "search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, provider.NewError(provider.KindTransient, providerName,
			fmt.Sprintf("SerpAPI returned status %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, provider.WrapError(provider.KindTransient, providerName, "decode search response", err)
	}

	var resources []models.Resource
	for i, hit := range result.OrganicResults {
		if hit.Link == "" || hit.Title == "" {
			continue
		}

		resourceType, ok := c.classify(hit)
		if !ok {
			continue
		}

		relevance := 80
		if i < 3 {
			relevance += 10
		}

		thumbnail := hit.Thumbnail
		if thumbnail == "" {
			thumbnail = placeholderThumbnail(resourceType, hit.Title)
		}

		description := hit.Snippet
		summarySource := description
		if summarySource == "" {
			summarySource = hit.Title
		}

		resources = append(resources, models.Resource{
			ID:           resourceID(hit.Link),
			Type:         resourceType,
			Title:        hit.Title,
			Source:       extractDomain(hit.Link),
			QualityScore: c.scorer.ArticleQuality(hit.Link, hit.Snippet, i),
			Duration:     scoring.ReadingTime(hit.Snippet),
			Difficulty:   c.scorer.Difficulty(hit.Title, hit.Snippet),
			Summary:      scoring.Summary(summarySource),
			Thumbnail:    thumbnail,
			URL:          hit.Link,
			AIRelevance:  relevance,
			Recency:      0,
			Description:  description,
		})
	}

	return resources, nil
}

// classify decides whether a hit is a pdf, an article, or noise.
func (c *Client) classify(hit organicResult) (models.ResourceType, bool) {
	linkLower := strings.ToLower(hit.Link)
	if strings.HasSuffix(linkLower, ".pdf") || strings.Contains(strings.ToLower(hit.Title), "pdf") {
		return models.TypePDF, true
	}
	for _, d := range c.articleDomains {
		if strings.Contains(linkLower, d) {
			return models.TypeArticle, true
		}
	}
	if hit.Snippet != "" {
		return models.TypeArticle, true
	}
	return "", false
}

// resourceID derives a stable id from the link. Web hits carry no
// source-native id, so a truncated content hash of the URL stands in.
func resourceID(link string) string {
	sum := blake2b.Sum256([]byte(link))
	return "article-" + fmt.Sprintf("%x", sum[:6])
}

func extractDomain(link string) string {
	parsed, err := url.Parse(link)
	if err != nil || parsed.Hostname() == "" {
		return "Unknown Source"
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// placeholderThumbnail builds a generated thumbnail URL for hits without one.
func placeholderThumbnail(t models.ResourceType, title string) string {
	color := "6b7280"
	switch t {
	case models.TypeVideo:
		color = "1e3a8a"
	case models.TypePDF:
		color = "0284c7"
	case models.TypeArticle:
		color = "0ea5e9"
	}
	if runes := []rune(title); len(runes) > 20 {
		title = string(runes[:20])
	}
	return fmt.Sprintf("https://via.placeholder.com/400x225/%s/ffffff?text=%s", color, url.QueryEscape(title))
}

// SerpAPI response types.

type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Snippet   string `json:"snippet"`
	Thumbnail string `json:"thumbnail"`
}
