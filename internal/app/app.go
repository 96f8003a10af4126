// Package app is the root Bubble Tea model: it owns the pages, routes keys
// and page requests, and bridges the playback store into the update loop.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/playback"
	"github.com/llehouerou/wavify/internal/transport"
	"github.com/llehouerou/wavify/internal/ui/headerbar"
	"github.com/llehouerou/wavify/internal/ui/helpbindings"
	"github.com/llehouerou/wavify/internal/ui/home"
	"github.com/llehouerou/wavify/internal/ui/library"
	"github.com/llehouerou/wavify/internal/ui/playerbar"
	"github.com/llehouerou/wavify/internal/ui/playlistview"
	"github.com/llehouerou/wavify/internal/ui/search"
	"github.com/llehouerou/wavify/internal/ui/sidebar"
)

// ViewMode is the page shown in the content area.
type ViewMode string

const (
	ViewHome     ViewMode = headerbar.ModeHome
	ViewSearch   ViewMode = headerbar.ModeSearch
	ViewLibrary  ViewMode = headerbar.ModeLibrary
	ViewPlaylist ViewMode = headerbar.ModePlaylist
)

// FocusTarget is the pane receiving navigation keys.
type FocusTarget int

const (
	FocusContent FocusTarget = iota
	FocusSidebar
)

// maxHistory bounds the back stack.
const maxHistory = 32

// visit is one back stack entry. Kind and ID are set for ViewPlaylist.
type visit struct {
	mode ViewMode
	kind playlistview.Kind
	id   string
}

// Model is the root application model.
type Model struct {
	catalog  *catalog.Catalog
	store    *playback.Store
	sub      *playback.Subscription
	resolver *keymap.Resolver
	logger   hclog.Logger

	Transport transport.Model
	Sidebar   sidebar.Model
	Home      home.Model
	Search    search.Model
	Library   library.Model
	Playlist  playlistview.Model
	Help      helpbindings.Model

	ViewMode          ViewMode
	Focus             FocusTarget
	ShowHelp          bool
	PlayerDisplayMode playerbar.DisplayMode
	ErrorMsg          string
	StatusMsg         string
	Width             int
	Height            int

	history []visit
}

// New creates the root model. The store is required; the logger may be nil.
func New(c *catalog.Catalog, store *playback.Store, logger hclog.Logger) Model {
	playback.Must(store)
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	m := Model{
		catalog:   c,
		store:     store,
		sub:       store.Subscribe(),
		resolver:  keymap.NewResolver(keymap.All),
		logger:    logger.Named("app"),
		Transport: transport.New(store),
		Sidebar:   sidebar.New(c),
		Home:      home.New(c, store),
		Search:    search.New(c, store),
		Library:   library.New(c, store),
		Playlist:  playlistview.New(c, store),
		Help:      helpbindings.New(),
		ViewMode:  ViewHome,
		Focus:     FocusContent,
	}
	m.applyFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.WatchStore()
}

// Store returns the playback store.
func (m Model) Store() *playback.Store { return m.store }

// applyFocus hands the focus flag to exactly one pane.
func (m *Model) applyFocus() {
	content := m.Focus == FocusContent
	m.Sidebar.SetFocused(!content)
	m.Home.SetFocused(content && m.ViewMode == ViewHome)
	m.Search.SetFocused(content && m.ViewMode == ViewSearch)
	m.Library.SetFocused(content && m.ViewMode == ViewLibrary)
	m.Playlist.SetFocused(content && m.ViewMode == ViewPlaylist)
	if !content {
		m.Search.Blur()
		m.Library.Blur()
	}
	m.Sidebar.SetActive(string(m.ViewMode), m.Playlist.ID())
}
