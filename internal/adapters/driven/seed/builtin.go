package seed

import (
	"context"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
)

// Ensure Builtin implements the interface.
var _ driven.SeedSource = Builtin{}

// builtinDocuments are the starter documents of a new workspace.
var builtinDocuments = []domain.DocumentInput{
	{
		Title:    "Intro to React",
		Category: "Frontend",
		Summary:  "Basic concepts: components, props, state.",
		Content: "React is a library for building UIs with components. Props are inputs, " +
			"state is internal data. Hooks manage state and side effects.",
	},
	{
		Title:    "What is an API?",
		Category: "Backend",
		Summary:  "Simple explanation of REST APIs and HTTP.",
		Content: "An API is a contract between client and server. In REST, endpoints map " +
			"to resources using HTTP methods (GET/POST/PUT/DELETE).",
	},
	{
		Title:    "Authentication vs Authorization",
		Category: "Security",
		Summary:  "Difference between authN and authZ.",
		Content: "Authentication verifies who you are. Authorization determines what you " +
			"can access. OAuth2/PKCE help secure auth flows for SPAs.",
	},
}

// Builtin serves the starter documents.
type Builtin struct{}

// Candidates returns the starter documents without IDs.
func (Builtin) Candidates(_ context.Context) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, len(builtinDocuments))
	for i, input := range builtinDocuments {
		out[i] = domain.Candidate{ID: domain.NoID(), Input: input}
	}
	return out, nil
}
