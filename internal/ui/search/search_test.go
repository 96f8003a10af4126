package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/keymap"
	"github.com/llehouerou/wavify/internal/playback"
	"github.com/llehouerou/wavify/internal/ui"
	"github.com/llehouerou/wavify/internal/ui/action"
	"github.com/llehouerou/wavify/internal/ui/testutil"
)

func newSearch(t *testing.T) (Model, *playback.Store) {
	t.Helper()
	icons.Init("none")
	c, err := catalog.Default()
	require.NoError(t, err)
	store := playback.NewStore(playback.NewState(70), hclog.NewNullLogger())
	m := New(c, store)
	m.SetSize(100, 30)
	m.SetFocused(true)
	return m, store
}

// typeQuery focuses the input and types text.
func typeQuery(m Model, text string) Model {
	m.Focus()
	for _, k := range testutil.Type(text) {
		m, _ = m.Update(ui.KeyMsg{Key: k})
	}
	return m
}

func key(m Model, k string) Model {
	m, _ = m.Update(ui.KeyMsg{Key: testutil.Key(k)})
	return m
}

func press(m Model, actions ...keymap.Action) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, a := range actions {
		m, cmd = m.Update(ui.KeyMsg{Action: a})
	}
	return m, cmd
}

func actionOf(t *testing.T, cmd tea.Cmd) action.Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok, "expected action.Msg")
	return msg.Action
}

func TestNew_NilStorePanics(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	assert.PanicsWithValue(t, playback.ErrNoStore, func() { New(c, nil) })
}

func TestEmptyQuery_ShowsBrowseGrid(t *testing.T) {
	m, _ := newSearch(t)
	view := m.View()

	assert.True(t, testutil.ContainsLine(view, Placeholder))
	assert.True(t, testutil.ContainsLine(view, "Browse all"))
	assert.True(t, testutil.ContainsLine(view, "Podcasts"))
	assert.True(t, m.Results().Empty())
}

func TestTyping_RunsSearch(t *testing.T) {
	m, _ := newSearch(t)
	m = typeQuery(m, "weeknd")

	assert.True(t, m.Capturing())
	assert.Equal(t, "weeknd", m.Query())
	r := m.Results()
	require.Len(t, r.Tracks, 1)
	assert.Equal(t, "Blinding Lights", r.Tracks[0].Title)
	assert.Len(t, r.Albums, 1)
	assert.Len(t, r.Artists, 1)
	assert.Empty(t, r.Playlists)

	view := m.View()
	assert.True(t, testutil.ContainsLine(view, "Songs (1)"))
	assert.True(t, testutil.ContainsLine(view, "Top result"))
}

func TestTyping_KeysDoNotTriggerActions(t *testing.T) {
	m, store := newSearch(t)
	m.Focus()
	m, _ = m.Update(ui.KeyMsg{Key: testutil.Key("n"), Action: keymap.ActionNextTrack})
	assert.Equal(t, "n", m.Query())
	assert.False(t, store.State().HasTrack())
}

func TestEscape_LeavesInput(t *testing.T) {
	m, _ := newSearch(t)
	m = typeQuery(m, "hits")
	m = key(m, "esc")

	assert.False(t, m.Capturing())
	assert.Equal(t, "hits", m.Query(), "leaving the input keeps the query")

	m, _ = press(m, keymap.ActionFilter)
	assert.True(t, m.Capturing())
}

func TestBackspace_ReturnsToBrowse(t *testing.T) {
	m, _ := newSearch(t)
	m = typeQuery(m, "ab")
	m = key(m, "backspace")
	m = key(m, "backspace")

	assert.Empty(t, m.Query())
	assert.True(t, m.Results().Empty())
	assert.True(t, testutil.ContainsLine(m.View(), "Browse all"))
}

func TestNoResults(t *testing.T) {
	m, _ := newSearch(t)
	m = typeQuery(m, "zzzz")

	view := m.View()
	assert.True(t, testutil.ContainsLine(view, `No results found for "zzzz"`))
	assert.True(t, testutil.ContainsLine(view, "spelled correctly"))
}

func TestEnter_PlaysSongWithResultsAsContext(t *testing.T) {
	m, store := newSearch(t)
	m.SetQuery("a") // matches most tracks
	require.Greater(t, len(m.Results().Tracks), 2)

	m, _ = press(m, keymap.ActionMoveDown, keymap.ActionSelect)

	st := store.State()
	require.NotNil(t, st.Current)
	assert.Equal(t, m.Results().Tracks[1].ID, st.Current.ID)
	assert.Len(t, st.Previous, 1)
	assert.Len(t, st.Queue, len(m.Results().Tracks)-2)
}

func TestEnter_OpensEntities(t *testing.T) {
	m, _ := newSearch(t)
	m.SetQuery("weeknd")

	// All tab: song, artist, album
	m, cmd := press(m, keymap.ActionMoveDown, keymap.ActionSelect)
	assert.Equal(t, action.OpenArtist{ID: "1"}, actionOf(t, cmd))

	_, cmd = press(m, keymap.ActionMoveDown, keymap.ActionSelect)
	assert.Equal(t, action.OpenAlbum{ID: "1"}, actionOf(t, cmd))

	m.SetQuery("chill")
	_, cmd = press(m, keymap.ActionSelect)
	assert.Equal(t, action.OpenPlaylist{ID: "2"}, actionOf(t, cmd))
}

func TestTabs(t *testing.T) {
	m, _ := newSearch(t)
	m.SetQuery("weeknd")
	assert.Equal(t, 3, m.items.Len())

	m, _ = press(m, keymap.ActionNextTab)
	assert.Equal(t, TabSongs, m.Tab())
	assert.Equal(t, 1, m.items.Len())

	m, _ = press(m, keymap.ActionPrevTab, keymap.ActionPrevTab)
	assert.Equal(t, TabPlaylists, m.Tab())
	assert.Equal(t, 0, m.items.Len())
	assert.True(t, testutil.ContainsLine(m.View(), "Nothing in this tab"))
}

func TestAllTab_LimitsSongs(t *testing.T) {
	m, _ := newSearch(t)
	m.SetQuery("e")
	require.Greater(t, len(m.Results().Tracks), allTabSongs)

	songs := 0
	for _, it := range m.items.Items() {
		if it.kind == kindTrack {
			songs++
		}
	}
	assert.Equal(t, allTabSongs, songs)
}

func TestAdd_QueuesSong(t *testing.T) {
	m, store := newSearch(t)
	m.SetQuery("levitating")
	_, cmd := press(m, keymap.ActionAdd)

	assert.Equal(t, action.Notify{Text: "Added to queue: Levitating"}, actionOf(t, cmd))
	assert.Len(t, store.State().Queue, 1)
}

func TestBrowse_EnterSearchesCategory(t *testing.T) {
	m, _ := newSearch(t)
	m, _ = press(m, keymap.ActionMoveRight, keymap.ActionSelect)
	assert.Equal(t, "Charts", m.Query())
}

func TestView_FitsSize(t *testing.T) {
	m, _ := newSearch(t)
	m.SetQuery("a")
	lines := testutil.SplitLines(m.View())
	assert.LessOrEqual(t, len(lines), 30)
	for _, line := range lines {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 100)
	}
}
