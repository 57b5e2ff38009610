package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docspace/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store := memory.NewSnapshotStoreWith(domain.Table{
		{ID: 1, Title: "Cats", Category: "Pets", Summary: "About cats", Content: "Cats purr."},
		{ID: 2, Title: "Dogs", Category: "Pets", Summary: "About dogs", Content: "Dogs bark."},
	})
	app, err := NewApp(&Ports{
		Search:    services.NewSearchService(store, 3),
		Documents: services.NewDocumentService(store),
	})
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app
}

// step feeds msg to the app and returns the message produced by the
// resulting command, or nil when there is none.
func step(t *testing.T, app *App, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := app.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

// settle keeps feeding produced messages back until none remain.
func settle(t *testing.T, app *App, msg tea.Msg) {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		msg = step(t, app, msg)
	}
}

func TestNewApp_ValidatesPorts(t *testing.T) {
	store := memory.NewSnapshotStore()

	_, err := NewApp(&Ports{Documents: services.NewDocumentService(store)})
	assert.ErrorIs(t, err, ErrMissingSearchService)

	_, err = NewApp(&Ports{Search: services.NewSearchService(store, 3)})
	assert.ErrorIs(t, err, ErrMissingDocumentService)
}

func TestApp_StartsOnSearch(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "docspace")
}

func TestApp_NotReadyBeforeSizing(t *testing.T) {
	store := memory.NewSnapshotStore()
	app, err := NewApp(&Ports{
		Search:    services.NewSearchService(store, 3),
		Documents: services.NewDocumentService(store),
	})
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.True(t, app.Ready())
}

func TestApp_BrowseDocumentsAndOpen(t *testing.T) {
	app := newTestApp(t)

	settle(t, app, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, messages.ViewDocuments, app.CurrentView())
	require.Len(t, app.documentsView.Documents(), 2)

	settle(t, app, tea.KeyMsg{Type: tea.KeyDown})
	settle(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, messages.ViewDocument, app.CurrentView())
	require.NotNil(t, app.documentView.Document())
	assert.Equal(t, 2, app.documentView.Document().ID)
	assert.Contains(t, app.View(), "Dogs bark.")

	settle(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
}

func TestApp_SearchAndOpenResult(t *testing.T) {
	app := newTestApp(t)
	app.searchView.SetQuery("cats")

	settle(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, app.searchView.Results(), 1)

	settle(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, messages.ViewDocument, app.CurrentView())
	assert.Equal(t, 1, app.documentView.Document().ID)

	settle(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_HelpReturnsToPreviousView(t *testing.T) {
	app := newTestApp(t)
	settle(t, app, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, messages.ViewDocuments, app.CurrentView())

	settle(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")

	settle(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
