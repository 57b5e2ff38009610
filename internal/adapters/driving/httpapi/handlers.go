package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/services"
	"github.com/custodia-labs/docspace/internal/logger"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// meResponse describes the caller.
type meResponse struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	writeJSON(w, http.StatusOK, meResponse{Email: id.Email, Role: id.Role})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.ports.Documents.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(docs))
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := s.ports.Documents.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var input domain.DocumentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := s.ports.Documents.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var input domain.DocumentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := s.ports.Documents.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.ports.Documents.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	docs, err := s.ports.Documents.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="documents.json"`)
	writeJSON(w, http.StatusOK, nonNil(docs))
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	batch, err := services.ParseImportBatch(body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	docs, err := s.ports.Documents.Import(r.Context(), batch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, _ := IdentityFrom(r.Context())
	logger.Info("Import (%s) by %s: %d candidates, %d documents stored",
		batch.Mode, id.Email, len(batch.Candidates), len(docs))
	writeJSON(w, http.StatusOK, nonNil(docs))
}

// searchResponse is one ranked hit.
type searchResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Score    int    `json:"score"`
	Snippet  string `json:"snippet"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := domain.SearchOptions{}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, r, fmt.Errorf("%w: limit must be a non-negative integer", domain.ErrInvalidInput))
			return
		}
		opts.Limit = limit
	}
	if raw := q.Get("ids"); raw != "" {
		ids, err := parseIDList(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		opts.DocumentIDs = ids
	}

	results, err := s.ports.Search.Search(r.Context(), q.Get("q"), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]searchResponse, 0, len(results))
	for _, res := range results {
		out = append(out, searchResponse{
			ID:       res.Document.ID,
			Title:    res.Document.Title,
			Category: res.Document.Category,
			Summary:  res.Document.Summary,
			Score:    res.Score,
			Snippet:  res.Snippet,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// chatMessage is one turn of a chat conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest accepts either a single message or a conversation whose last
// user turn is the question.
type chatRequest struct {
	Message       string        `json:"message"`
	Messages      []chatMessage `json:"messages"`
	ContextDocIDs []int         `json:"contextDocIds"`
}

// question returns the text to answer.
func (c chatRequest) question() string {
	if strings.TrimSpace(c.Message) != "" {
		return c.Message
	}
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == "user" && strings.TrimSpace(c.Messages[i].Content) != "" {
			return c.Messages[i].Content
		}
	}
	return ""
}

// chatResponse is the reply to a chat request.
type chatResponse struct {
	Answer  string              `json:"answer"`
	Sources []domain.ChatSource `json:"sources"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.ports.Chat == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Detail: "Chat is not available"})
		return
	}

	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	question := req.question()
	if question == "" {
		writeError(w, r, fmt.Errorf("%w: message is required", domain.ErrInvalidInput))
		return
	}

	answer, err := s.ports.Chat.Ask(r.Context(), question, req.ContextDocIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sources := answer.Sources
	if sources == nil {
		sources = []domain.ChatSource{}
	}
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer.Text, Sources: sources})
}

// decodeJSON reads a single JSON value from the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: invalid JSON body", domain.ErrInvalidInput)
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid document id %q", domain.ErrInvalidInput, r.PathValue("id"))
	}
	return id, nil
}

// parseIDList parses a comma-separated list of document ids.
func parseIDList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid document id %q", domain.ErrInvalidInput, p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func nonNil(docs []domain.Document) []domain.Document {
	if docs == nil {
		return []domain.Document{}
	}
	return docs
}
