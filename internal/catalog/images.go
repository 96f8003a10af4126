package catalog

// ImageContext identifies where an image reference is displayed.
// Each context has its own placeholder.
type ImageContext int

const (
	ImageTrack ImageContext = iota
	ImagePlayer
	ImagePlaylistHeader
	ImageQuickPick
	ImageArtist
	ImageCategory
	ImageTopResult
)

var fallbackImages = map[ImageContext]string{
	ImageTrack:          "placeholders/track.png",
	ImagePlayer:         "placeholders/player.png",
	ImagePlaylistHeader: "placeholders/playlist.png",
	ImageQuickPick:      "placeholders/quick-pick.png",
	ImageArtist:         "placeholders/artist.png",
	ImageCategory:       "placeholders/category.png",
	ImageTopResult:      "placeholders/top-result.png",
}

// FallbackImage returns the placeholder reference for a display context.
func FallbackImage(ctx ImageContext) string {
	if ref, ok := fallbackImages[ctx]; ok {
		return ref
	}
	return fallbackImages[ImageTrack]
}

// ImageOrFallback returns ref, or the context placeholder when ref is empty
// or failed to load.
func ImageOrFallback(ref string, loadFailed bool, ctx ImageContext) string {
	if ref == "" || loadFailed {
		return FallbackImage(ctx)
	}
	return ref
}
