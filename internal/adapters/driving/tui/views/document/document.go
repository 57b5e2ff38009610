// Package document provides the single document view for the TUI.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docspace/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docspace/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
)

// ErrNoDocumentService indicates that no document service was provided.
var ErrNoDocumentService = errors.New("document service is required")

// headerLines is the height of the title, metadata and separator block.
const headerLines = 6

// View shows one document with scrollable content.
type View struct {
	styles          *styles.Styles
	documentService driving.DocumentService
	ctx             context.Context

	viewport viewport.Model
	document *domain.Document
	back     messages.ViewType
	width    int
	height   int
	err      error
	loading  bool
}

// NewView creates a new document view.
func NewView(s *styles.Styles, documentService driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		documentService: documentService,
		ctx:             context.Background(),
		viewport:        viewport.New(80, 24-headerLines-2),
		back:            messages.ViewSearch,
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open starts loading document id. Esc returns to back.
func (v *View) Open(id int, back messages.ViewType) tea.Cmd {
	v.document = nil
	v.err = nil
	v.loading = true
	v.back = back
	v.viewport.SetContent("")
	v.viewport.GotoTop()

	ctx, svc := v.ctx, v.documentService
	return func() tea.Msg {
		if svc == nil {
			return messages.DocumentLoaded{Err: ErrNoDocumentService}
		}
		doc, err := svc.Get(ctx, id)
		return messages.DocumentLoaded{Document: doc, Err: err}
	}
}

// Update handles messages for the document view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DocumentLoaded:
		v.loading = false
		v.err = msg.Err
		v.document = msg.Document
		v.render()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			back := v.back
			return v, func() tea.Msg { return messages.ViewChanged{View: back} }
		case "q":
			return v, func() tea.Msg { return messages.Quit{} }
		case "home", "g":
			v.viewport.GotoTop()
			return v, nil
		case "end", "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// render wraps the document content to the viewport width.
func (v *View) render() {
	if v.document == nil {
		v.viewport.SetContent("")
		return
	}
	wrapped := lipgloss.NewStyle().Width(v.viewport.Width).Render(v.document.Content)
	v.viewport.SetContent(v.styles.Normal.Render(wrapped))
}

// View renders the document view.
func (v *View) View() string {
	var b strings.Builder

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading document..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.document == nil:
		b.WriteString(v.styles.Muted.Render("(No document)"))
	default:
		doc := v.document
		b.WriteString(v.styles.Title.Render(doc.Title))
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  #%d", doc.ID)))
		b.WriteString("\n")
		b.WriteString(v.styles.Category.Render(doc.Category))
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(doc.Summary))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("─", min(max(v.width-4, 10), 60)))
		b.WriteString("\n\n")
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%3.f%%]", v.viewport.ScrollPercent()*100)))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back  [q] quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(width-4, 20)
	v.viewport.Height = max(height-headerLines-4, 3)
	v.render()
}

// Document returns the displayed document.
func (v *View) Document() *domain.Document {
	return v.document
}

// Back returns the view Esc returns to.
func (v *View) Back() messages.ViewType {
	return v.back
}

// Loading reports whether a document is being fetched.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
