package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

func TestQueryTerms(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"   \t\n ", nil},
		{"Cats", []string{"cats"}},
		{"  Cats   AND dogs ", []string{"cats", "and", "dogs"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := QueryTerms(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreDocument_FieldWeights(t *testing.T) {
	d := domain.Document{
		ID:       1,
		Title:    "Alpha",
		Category: "Beta",
		Summary:  "Gamma",
		Content:  "Delta",
	}

	tests := []struct {
		terms []string
		want  int
	}{
		{[]string{"alpha"}, 4},
		{[]string{"beta"}, 2},
		{[]string{"gamma"}, 2},
		{[]string{"delta"}, 1},
		{[]string{"alpha", "delta"}, 5},
		{[]string{"a"}, 9},
		{[]string{"zeta"}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.terms, "+"), func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreDocument(d, tt.terms))
		})
	}
}

func TestScoreDocument_CaseInsensitiveSubstring(t *testing.T) {
	d := domain.Document{Title: "Authentication vs Authorization", Category: "Security", Summary: "s", Content: "c"}

	assert.Equal(t, 4, ScoreDocument(d, QueryTerms("AUTH")))
	assert.Equal(t, 6, ScoreDocument(d, QueryTerms("security authorization")))
}

func TestScore_EmptyQuery(t *testing.T) {
	table := domain.Table{doc(1, "Anything")}

	for _, q := range []string{"", "   "} {
		got := Score(table, q, 3)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestScore_ExcludesZeroScores(t *testing.T) {
	table := domain.Table{doc(1, "Cats"), doc(2, "Dogs")}

	got := Score(table, "cats", 3)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Document.ID)
	assert.Positive(t, got[0].Score)
}

func TestScore_TitleOutranksContent(t *testing.T) {
	contentOnly := domain.Document{ID: 1, Title: "Pets", Category: "Animals", Summary: "About pets", Content: "The cat sleeps"}
	titleOnly := domain.Document{ID: 2, Title: "Cat care", Category: "Animals", Summary: "About pets", Content: "Feeding"}

	got := Score(domain.Table{contentOnly, titleOnly}, "cat", 3)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Document.ID)
	assert.Equal(t, 4, got[0].Score)
	assert.Equal(t, 1, got[1].Document.ID)
	assert.Equal(t, 1, got[1].Score)
}

func TestScore_TiesKeepTableOrder(t *testing.T) {
	table := domain.Table{doc(5, "Go tips"), doc(2, "Go tricks"), doc(9, "Go tools")}

	got := Score(table, "go", 3)

	require.Len(t, got, 3)
	assert.Equal(t, []int{5, 2, 9}, []int{got[0].Document.ID, got[1].Document.ID, got[2].Document.ID})
}

func TestScore_SortedDescendingAndTruncated(t *testing.T) {
	table := domain.Table{
		{ID: 1, Title: "x", Category: "x", Summary: "x", Content: "rust"},
		{ID: 2, Title: "rust", Category: "x", Summary: "x", Content: "rust"},
		{ID: 3, Title: "x", Category: "rust", Summary: "x", Content: "x"},
		{ID: 4, Title: "rust", Category: "rust", Summary: "rust", Content: "rust"},
	}

	got := Score(table, "rust", 2)

	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Document.ID)
	assert.Equal(t, 9, got[0].Score)
	assert.Equal(t, 2, got[1].Document.ID)
	assert.Equal(t, 5, got[1].Score)

	all := Score(table, "rust", 10)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Score, all[i].Score)
	}
}

func TestScore_DefaultK(t *testing.T) {
	table := domain.Table{doc(1, "Go"), doc(2, "Go"), doc(3, "Go"), doc(4, "Go"), doc(5, "Go")}

	assert.Len(t, Score(table, "go", 0), domain.DefaultTopK)
	assert.Len(t, Score(table, "go", -1), domain.DefaultTopK)
}

func TestScore_EndToEnd(t *testing.T) {
	table := domain.Table{
		{ID: 1, Title: "Cats are mammals", Category: "Animals", Summary: "Felines", Content: "Whiskers"},
		{ID: 2, Title: "Dogs are mammals", Category: "Animals", Summary: "Canines", Content: "Barking"},
	}

	got := Score(table, "cats", 3)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Document.ID)
}

func TestSnippet(t *testing.T) {
	t.Run("short content is returned verbatim", func(t *testing.T) {
		assert.Equal(t, "short", Snippet("short"))
	})

	t.Run("content of exactly the limit has no marker", func(t *testing.T) {
		content := strings.Repeat("a", SnippetLength)
		assert.Equal(t, content, Snippet(content))
	})

	t.Run("longer content is cut and marked", func(t *testing.T) {
		content := strings.Repeat("a", 200)
		got := Snippet(content)

		assert.Equal(t, strings.Repeat("a", SnippetLength)+SnippetMarker, got)
		assert.Equal(t, SnippetLength+1, utf8.RuneCountInString(got))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		content := strings.Repeat("é", SnippetLength+5)
		got := Snippet(content)

		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("é", SnippetLength)+SnippetMarker, got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Snippet(""))
	})
}

func TestScore_SnippetFromContent(t *testing.T) {
	long := strings.Repeat("word ", 50)
	table := domain.Table{{ID: 1, Title: "Words", Category: "c", Summary: "s", Content: long}}

	got := Score(table, "words", 3)

	require.Len(t, got, 1)
	assert.Equal(t, Snippet(long), got[0].Snippet)
	assert.True(t, strings.HasSuffix(got[0].Snippet, SnippetMarker))
}
