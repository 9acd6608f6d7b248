// Package analyzer derives keywords, candidate topic sentences, and
// follow-up search queries from raw extracted document text.
package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/eduscout/eduscout/internal/models"
)

const (
	maxKeywords = 20
	maxTopics   = 10

	minKeywordLength    = 4
	minTopicLength      = 21
	maxTopicLength      = 99
	minQueryTopicLength = 11
)

var (
	whitespaceRe       = regexp.MustCompile(`\s+`)
	sentenceSplitRe    = regexp.MustCompile(`[.!?]+`)
	trailingTerminator = regexp.MustCompile(`[.!?]+$`)
)

// Analyze computes keyword frequencies and candidate topic sentences for a
// document. Keywords are ordered by frequency, ties by first appearance.
func Analyze(text string) models.AnalysisResult {
	clean := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	words := strings.Fields(strings.ToLower(clean))
	freq := make(map[string]int)
	var order []string
	for _, word := range words {
		if len(word) < minKeywordLength {
			continue
		}
		if freq[word] == 0 {
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	sentences := sentenceSplitRe.Split(clean, -1)
	var topics []string
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minTopicLength || len(sentence) > maxTopicLength {
			continue
		}
		// Declarative sentences tend to name the document's topics.
		if strings.Contains(sentence, "is") || strings.Contains(sentence, "are") || strings.Contains(sentence, "will") {
			topics = append(topics, sentence)
			if len(topics) == maxTopics {
				break
			}
		}
	}

	return models.AnalysisResult{
		Keywords:      order,
		Topics:        topics,
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}
}

// GenerateQueries builds candidate search queries from an analysis: keyword
// combinations with explanation/tutorial suffixes, cleaned topic sentences
// with explained/tutorial suffixes, and course/lecture queries from the top
// keyword. The result is deduplicated with order preserved.
func GenerateQueries(analysis models.AnalysisResult) []string {
	var queries []string

	if len(analysis.Keywords) >= 3 {
		queries = append(queries,
			strings.Join(analysis.Keywords[:3], " ")+" explanation",
			strings.Join(analysis.Keywords[:2], " ")+" tutorial",
		)
	}

	topics := analysis.Topics
	if len(topics) > 3 {
		topics = topics[:3]
	}
	for _, topic := range topics {
		clean := strings.TrimSpace(trailingTerminator.ReplaceAllString(topic, ""))
		if len(clean) < minQueryTopicLength {
			continue
		}
		queries = append(queries, clean+" explained", clean+" tutorial")
	}

	if len(analysis.Keywords) > 0 {
		queries = append(queries,
			analysis.Keywords[0]+" course",
			analysis.Keywords[0]+" lecture",
		)
	}

	seen := make(map[string]struct{}, len(queries))
	deduped := queries[:0]
	for _, q := range queries {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		deduped = append(deduped, q)
	}
	return deduped
}
