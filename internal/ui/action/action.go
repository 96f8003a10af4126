// Package action carries requests from views up to the app, such as
// opening a playlist from a card.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request from a view. ActionType names it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an Action with the view that sent it.
type Msg struct {
	Source string // "home", "search", "library", ...
	Action Action
}

// Cmd returns a command delivering a to the app.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}

// OpenPlaylist asks the app to show a playlist page.
type OpenPlaylist struct{ ID string }

// ActionType implements Action.
func (OpenPlaylist) ActionType() string { return "open_playlist" }

// OpenAlbum asks the app to show an album page.
type OpenAlbum struct{ ID string }

// ActionType implements Action.
func (OpenAlbum) ActionType() string { return "open_album" }

// OpenArtist asks the app to show an artist page.
type OpenArtist struct{ ID string }

// ActionType implements Action.
func (OpenArtist) ActionType() string { return "open_artist" }

// OpenSearch asks the app to switch to search, optionally with a query.
type OpenSearch struct{ Query string }

// ActionType implements Action.
func (OpenSearch) ActionType() string { return "open_search" }

// Notify shows a short status line message.
type Notify struct{ Text string }

// ActionType implements Action.
func (Notify) ActionType() string { return "notify" }

// ShowPage asks the app to switch to a top-level page ("home", "search"
// or "library").
type ShowPage struct{ Page string }

// ActionType implements Action.
func (ShowPage) ActionType() string { return "show_page" }
