package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/eduscout/eduscout/internal/analyzer"
	"github.com/eduscout/eduscout/internal/extract"
	"github.com/eduscout/eduscout/internal/models"
	"github.com/eduscout/eduscout/internal/provider"
)

const maxUploadBytes = 20 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		jsonError(w, `query parameter "q" is required`, http.StatusBadRequest)
		return
	}

	maxResults := 20
	if v := r.URL.Query().Get("max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxResults = n
		}
	}

	slog.Info("Searching", "query", query, "max", maxResults)

	results, err := s.agg.Search(r.Context(), query, maxResults)
	if err != nil {
		s.recordSearch(query, 0, err.Error())
		slog.Error("Search failed", "query", query, "error", err)
		jsonError(w, err.Error(), searchErrorStatus(err))
		return
	}

	s.recordSearch(query, len(results), "")

	jsonResponse(w, models.SearchResponse{
		Query:   query,
		Results: results,
		Count:   len(results),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, `field "text" is required`, http.StatusBadRequest)
		return
	}

	analysis := analyzer.Analyze(req.Text)
	analysis.SearchQueries = analyzer.GenerateQueries(analysis)
	jsonResponse(w, analysis)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, `multipart field "file" is required`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	text, err := extract.Text(header.Filename, file)
	if err != nil {
		var extractErr *extract.Error
		if errors.As(err, &extractErr) {
			slog.Warn("Document extraction failed", "filename", header.Filename, "error", err)
			jsonError(w, "failed to extract text from document", http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, "failed to read document", http.StatusInternalServerError)
		return
	}

	slog.Info("Processing document", "filename", header.Filename, "bytes", header.Size)

	result := s.orch.ProcessDocument(r.Context(), text)
	jsonResponse(w, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		jsonError(w, "search history is disabled", http.StatusNotFound)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.hist.Recent(limit)
	if err != nil {
		slog.Error("Failed to list search history", "error", err)
		jsonError(w, "failed to list search history", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, map[string]any{
		"searches": entries,
		"count":    len(entries),
	})
}

func (s *Server) recordSearch(query string, count int, errMsg string) {
	if s.hist == nil {
		return
	}
	if err := s.hist.Record(query, count, errMsg); err != nil {
		slog.Error("Failed to record search", "error", err)
	}
}

// searchErrorStatus distinguishes configuration problems (actionable by the
// operator) from upstream provider rejections.
func searchErrorStatus(err error) int {
	switch provider.KindOf(err) {
	case provider.KindMissingCredential:
		return http.StatusServiceUnavailable
	case provider.KindAuth, provider.KindBadRequest:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func jsonResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
