package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// Field weights added for every query term found in the field.
const (
	titleWeight    = 4
	categoryWeight = 2
	summaryWeight  = 2
	contentWeight  = 1
)

// SnippetLength is the number of content characters kept in a snippet.
const SnippetLength = 160

// SnippetMarker is appended to snippets cut short.
const SnippetMarker = "…"

// QueryTerms lower-cases and trims the query, then splits it on whitespace.
func QueryTerms(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// ScoreDocument sums the field weight of every term found in each field.
// Matching is a case-insensitive substring test; terms must already be lower-case.
func ScoreDocument(doc domain.Document, terms []string) int {
	if len(terms) == 0 {
		return 0
	}

	title := strings.ToLower(doc.Title)
	category := strings.ToLower(doc.Category)
	summary := strings.ToLower(doc.Summary)
	content := strings.ToLower(doc.Content)

	score := 0
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += titleWeight
		}
		if strings.Contains(category, term) {
			score += categoryWeight
		}
		if strings.Contains(summary, term) {
			score += summaryWeight
		}
		if strings.Contains(content, term) {
			score += contentWeight
		}
	}
	return score
}

// Score ranks the table against a query and returns at most k results.
//
// Documents scoring zero are left out. Ties keep the order in which the
// table lists the documents. A k of zero or less means domain.DefaultTopK.
func Score(table domain.Table, query string, k int) []domain.ScoreResult {
	if k <= 0 {
		k = domain.DefaultTopK
	}

	terms := QueryTerms(query)
	if len(terms) == 0 {
		return []domain.ScoreResult{}
	}

	results := make([]domain.ScoreResult, 0, len(table))
	for i := range table {
		s := ScoreDocument(table[i], terms)
		if s == 0 {
			continue
		}
		results = append(results, domain.ScoreResult{
			Document: table[i],
			Score:    s,
			Snippet:  Snippet(table[i].Content),
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// Snippet returns the first SnippetLength characters of content, followed by
// SnippetMarker when anything was cut. Shorter content is returned verbatim.
func Snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= SnippetLength {
		return content
	}
	return string(runes[:SnippetLength]) + SnippetMarker
}
