// Package video classifies URLs as YouTube or Vimeo and derives provider
// IDs, thumbnail URLs, and iframe embeds. Classification and ID extraction
// are pure and total: they run against arbitrarily malformed URLs from
// third-party content and always terminate with a definite answer.
package video

import (
	"fmt"
	"regexp"

	"birdfeed/internal/domain"
)

var (
	youTubeShortRe = regexp.MustCompile(`(?i)youtu\.be`)
	youTubeWatchRe = regexp.MustCompile(`(?i)youtube\.com/watch`)
	vimeoHostRe    = regexp.MustCompile(`(?i)vimeo\.com`)

	// youTubeIDRe captures the candidate ID from the known YouTube URL
	// shapes: youtu.be/<id>, v/<id>, /u/<n>/<id>, embed/<id>, watch?v=<id>.
	youTubeIDRe = regexp.MustCompile(`^.*(youtu\.be/|v/|/u/\w/|embed/|watch\?)\??v?=?([^#&?]*).*`)

	// vimeoIDRe captures the digit run after the host.
	vimeoIDRe = regexp.MustCompile(`//(www\.)?vimeo\.com/(\d+)($|/)`)
)

// youTubeIDLen gates extraction: YouTube IDs are exactly 11 characters, and
// a shorter or longer capture means a malformed or ambiguous match.
const youTubeIDLen = 11

// IsYouTube reports whether url points at YouTube.
func IsYouTube(url string) bool {
	return youTubeShortRe.MatchString(url) || youTubeWatchRe.MatchString(url)
}

// IsVimeo reports whether url points at Vimeo.
func IsVimeo(url string) bool {
	return vimeoHostRe.MatchString(url)
}

// YouTubeID extracts the video ID from a YouTube URL. ok is false when the
// URL is not YouTube or the captured ID is not exactly 11 characters.
func YouTubeID(url string) (string, bool) {
	if !IsYouTube(url) {
		return "", false
	}
	m := youTubeIDRe.FindStringSubmatch(url)
	if m == nil || len(m[2]) != youTubeIDLen {
		return "", false
	}
	return m[2], true
}

// VimeoID extracts the numeric video ID from a Vimeo URL.
func VimeoID(url string) (string, bool) {
	if !IsVimeo(url) {
		return "", false
	}
	m := vimeoIDRe.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// ThumbSize selects one of the three thumbnail size classes.
type ThumbSize int

const (
	ThumbSmall ThumbSize = iota
	ThumbMedium
	ThumbLarge
)

// YouTubeThumbURL computes the thumbnail URL for a size class. Purely
// templated, no network call.
func YouTubeThumbURL(id string, size ThumbSize) string {
	switch size {
	case ThumbSmall:
		return "http://img.youtube.com/vi/" + id + "/default.jpg"
	case ThumbMedium:
		return "http://img.youtube.com/vi/" + id + "/0.jpg"
	case ThumbLarge:
		return "http://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
	}
	return ""
}

// YouTubeThumbnails computes all three size classes.
func YouTubeThumbnails(id string) domain.Thumbnails {
	return domain.Thumbnails{
		Small:  YouTubeThumbURL(id, ThumbSmall),
		Medium: YouTubeThumbURL(id, ThumbMedium),
		Large:  YouTubeThumbURL(id, ThumbLarge),
	}
}

// IframeURL returns the protocol-relative player URL, or "" for an
// unrecognized provider.
func IframeURL(url string) string {
	if IsVimeo(url) {
		if id, ok := VimeoID(url); ok {
			return "//player.vimeo.com/video/" + id
		}
		return ""
	}
	if IsYouTube(url) {
		if id, ok := YouTubeID(url); ok {
			return "//www.youtube.com/embed/" + id
		}
	}
	return ""
}

// IframeHTML returns the provider-specific embed markup, or "" for an
// unrecognized provider. The provider ID is re-derived here independently of
// any other call.
func IframeHTML(url string, width, height int) string {
	src := IframeURL(url)
	if src == "" {
		return ""
	}
	if IsVimeo(url) {
		return fmt.Sprintf(
			`<iframe class="video-iframe resize" src="%s" width="%d" height="%d" frameborder="0" webkitAllowFullScreen mozallowfullscreen allowFullScreen></iframe>`,
			src, width, height)
	}
	return fmt.Sprintf(
		`<iframe class="video-iframe resize" width="%d" height="%d" src="%s" frameborder="0" allowfullscreen></iframe>`,
		width, height, src)
}
