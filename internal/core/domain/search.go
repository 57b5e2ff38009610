package domain

// DefaultTopK is the number of results returned when no limit is given.
const DefaultTopK = 3

// SearchOptions configures a retrieval query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means DefaultTopK.
	Limit int

	// DocumentIDs restricts scoring to these documents when non-empty.
	DocumentIDs []int
}

// ScoreResult is a single ranked retrieval hit.
type ScoreResult struct {
	// Document is the matched document.
	Document Document `json:"document"`

	// Score is the summed field weight of every matched term.
	Score int `json:"score"`

	// Snippet is the leading part of the document content.
	Snippet string `json:"snippet"`
}

// ChatSource identifies a document used to answer a chat question.
type ChatSource struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// ChatAnswer is the reply to a workspace question.
type ChatAnswer struct {
	Role    string       `json:"role"`
	Text    string       `json:"text"`
	Sources []ChatSource `json:"sources"`
}
