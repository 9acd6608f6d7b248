// Package youtube adapts the YouTube Data API v3 search endpoint into the
// canonical resource model. YouTube is the mandatory provider: a missing or
// rejected API key fails the whole search request.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/eduscout/eduscout/internal/models"
	"github.com/eduscout/eduscout/internal/provider"
	"github.com/eduscout/eduscout/internal/scoring"
)

const providerName = "youtube"

// Client queries the YouTube Data API for educational videos.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	scorer     *scoring.Scorer
	now        func() time.Time
}

// New creates a YouTube client. The key may be empty; Search then fails
// fast with a missing-credential error.
func New(apiKey string, scorer *scoring.Scorer) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    "https://www.googleapis.com/youtube/v3/search",
		scorer:     scorer,
		now:        time.Now,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

// Search issues one search call with fixed educational filtering and maps
// each hit into a Resource. Auth and malformed-request failures surface as
// categorized errors carrying the provider's own message; other failures
// are transient.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]models.Resource, error) {
	if c.apiKey == "" {
		return nil, provider.NewError(provider.KindMissingCredential, providerName,
			"YouTube API key is required; set YOUTUBE_API_KEY in the environment")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"part":            {"snippet"},
		"q":               {query + " tutorial education learn"},
		"type":            {"video"},
		"maxResults":      {strconv.Itoa(maxResults)},
		"key":             {c.apiKey},
		"videoDuration":   {"medium"},
		"order":           {"relevance"},
		"videoEmbeddable": {"true"},
		"safeSearch":      {"strict"},
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
		return nil, c.statusError(resp)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, provider.WrapError(provider.KindTransient, providerName, "decode search response", err)
	}

	now := c.now()
	resources := make([]models.Resource, 0, len(result.Items))
	for i, item := range result.Items {
		videoID := item.ID.VideoID
		if videoID == "" || item.Snippet.Title == "" {
			continue
		}
		sn := item.Snippet

		relevance := 85
		if i < 3 {
			relevance += 10
		}

		thumbnail := sn.Thumbnails.High.URL
		if thumbnail == "" {
			thumbnail = sn.Thumbnails.Default.URL
		}

		resources = append(resources, models.Resource{
			ID:           "yt-" + videoID,
			Type:         models.TypeVideo,
			Title:        sn.Title,
			Source:       "YouTube - " + sn.ChannelTitle,
			QualityScore: c.scorer.VideoQuality(sn.ChannelTitle, sn.Title, sn.Description, i),
			Duration:     "Unknown",
			Difficulty:   c.scorer.Difficulty(sn.Title, sn.Description),
			Summary:      scoring.Summary(sn.Description),
			Thumbnail:    thumbnail,
			URL:          "https://www.youtube.com/watch?v=" + videoID,
			AIRelevance:  relevance,
			Recency:      scoring.RecencyDays(sn.PublishedAt, now),
			ChannelTitle: sn.ChannelTitle,
			PublishedAt:  sn.PublishedAt,
			Description:  sn.Description,
		})
	}

	return resources, nil
}

// statusError maps a non-200 response to the provider error taxonomy,
// preserving the API's own error message where it has one.
func (c *Client) statusError(resp *http.Response) error {
	var apiErr errorResponse
	detail := "Unknown error"
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
		detail = apiErr.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return provider.NewError(provider.KindAuth, providerName,
			"YouTube API key is invalid or unauthorized; please check your API key")
	case http.StatusForbidden:
		return provider.NewError(provider.KindAuth, providerName,
			fmt.Sprintf("YouTube API error (403): %s; please check your API key and quota", detail))
	case http.StatusBadRequest:
		return provider.NewError(provider.KindBadRequest, providerName,
			fmt.Sprintf("invalid YouTube API request (400): %s", detail))
	default:
		return provider.NewError(provider.KindTransient, providerName,
			fmt.Sprintf("YouTube API returned status %d", resp.StatusCode))
	}
}

// YouTube Data API response types.

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet snippet `json:"snippet"`
}

type snippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Description  string `json:"description"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnails   struct {
		High    thumbnail `json:"high"`
		Default thumbnail `json:"default"`
	} `json:"thumbnails"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
