package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Track         string
	Artist        string
	Album         string
	Playlist      string
	Home          string
	Search        string
	Library       string
	Play          string
	Pause         string
	Shuffle       string
	RepeatContext string
	RepeatTrack   string
	Volume        string
	Muted         string
	Explicit      string
	Verified      string
	Liked         string
}

var (
	nerdIcons = Icons{
		Track:         " ", // nf-fa-music
		Artist:        " ", // nf-fa-user
		Album:         "󰀥 ",      // nf-md-album
		Playlist:      "󰲸 ",      // nf-md-playlist_music
		Home:          "󰋜 ",      // nf-md-home
		Search:        " ", // nf-fa-search
		Library:       "󰌱 ",      // nf-md-library
		Play:          "󰐊",       // nf-md-play
		Pause:         "󰏤",       // nf-md-pause
		Shuffle:       "󰒟",       // nf-md-shuffle
		RepeatContext: "󰑖",       // nf-md-repeat
		RepeatTrack:   "󰑘",       // nf-md-repeat_once
		Volume:        "󰕾",       // nf-md-volume_high
		Muted:         "󰖁",       // nf-md-volume_off
		Explicit:      "󰛅",       // nf-md-alpha_e_box
		Verified:      "󰄬",       // nf-md-check
		Liked:         "󰣐",       // nf-md-heart
	}

	unicodeIcons = Icons{
		Track:         "🎵 ",
		Artist:        "👤 ",
		Album:         "💿 ",
		Playlist:      "📋 ",
		Home:          "🏠 ",
		Search:        "🔍 ",
		Library:       "📚 ",
		Play:          "▶",
		Pause:         "⏸",
		Shuffle:       "🔀",
		RepeatContext: "🔁",
		RepeatTrack:   "🔂",
		Volume:        "🔊",
		Muted:         "🔇",
		Explicit:      "🅴",
		Verified:      "✔",
		Liked:         "♥",
	}

	noneIcons = Icons{
		Play:          ">",
		Pause:         "||",
		Shuffle:       "[S]",
		RepeatContext: "[R]",
		RepeatTrack:   "[1]",
		Volume:        "vol",
		Muted:         "mute",
		Explicit:      "E",
		Verified:      "*",
		Liked:         "<3",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

func prefix(icon, name string) string {
	if current == noneIcons {
		return name
	}
	return icon + name
}

// FormatTrack formats a track title with the appropriate icon.
func FormatTrack(name string) string { return prefix(current.Track, name) }

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string { return prefix(current.Artist, name) }

// FormatAlbum formats an album title with the appropriate icon.
func FormatAlbum(name string) string { return prefix(current.Album, name) }

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string { return prefix(current.Playlist, name) }

// Home returns the home navigation icon (empty for "none").
func Home() string { return current.Home }

// Search returns the search navigation icon (empty for "none").
func Search() string { return current.Search }

// Library returns the library navigation icon (empty for "none").
func Library() string { return current.Library }

// Play returns the play icon.
func Play() string { return current.Play }

// Pause returns the pause icon.
func Pause() string { return current.Pause }

// Shuffle returns the shuffle icon.
func Shuffle() string { return current.Shuffle }

// RepeatContext returns the repeat-context icon.
func RepeatContext() string { return current.RepeatContext }

// RepeatTrack returns the repeat-track icon.
func RepeatTrack() string { return current.RepeatTrack }

// Volume returns the volume icon.
func Volume() string { return current.Volume }

// Muted returns the muted icon.
func Muted() string { return current.Muted }

// Explicit returns the explicit-content marker.
func Explicit() string { return current.Explicit }

// Verified returns the verified-artist marker.
func Verified() string { return current.Verified }

// Liked returns the heart icon.
func Liked() string { return current.Liked }
