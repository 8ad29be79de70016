package video

import "testing"

func TestIsYouTube_KnownShapes_Recognized(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"HTTPS://YOUTU.BE/dQw4w9WgXcQ", true},
		{"https://vimeo.com/1185346", false},
		{"https://example.com/watch", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsYouTube(tt.url); got != tt.want {
			t.Errorf("IsYouTube(%q): got %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestIsVimeo_KnownShapes_Recognized(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://vimeo.com/1185346", true},
		{"http://www.vimeo.com/1185346", true},
		{"HTTPS://VIMEO.COM/1", true},
		{"https://youtu.be/dQw4w9WgXcQ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsVimeo(tt.url); got != tt.want {
			t.Errorf("IsVimeo(%q): got %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestProviders_Corpus_MutuallyExclusive(t *testing.T) {
	// Arrange: every URL naming one of the known provider hosts.
	corpus := []string{
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ&feature=share",
		"https://vimeo.com/1185346",
		"http://www.vimeo.com/1185346/",
	}

	// Assert
	for _, url := range corpus {
		if IsYouTube(url) && IsVimeo(url) {
			t.Errorf("%q classified as both providers", url)
		}
		if !IsYouTube(url) && !IsVimeo(url) {
			t.Errorf("%q classified as neither provider", url)
		}
	}
}

func TestYouTubeID_ElevenCharCapture_Extracted(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&feature=share", "dQw4w9WgXcQ", true},
		// Only youtu.be and watch URLs pass classification; embed URLs do
		// not, even though the pattern itself could capture their ID.
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "", false},
		// The 11-character gate: shorter or longer captures are rejected.
		{"https://youtu.be/short", "", false},
		{"https://youtu.be/waytoolongtobevalid", "", false},
		// Not YouTube at all.
		{"https://vimeo.com/1185346", "", false},
	}
	for _, tt := range tests {
		got, ok := YouTubeID(tt.url)
		if got != tt.want || ok != tt.ok {
			t.Errorf("YouTubeID(%q): got (%q, %v), want (%q, %v)", tt.url, got, ok, tt.want, tt.ok)
		}
	}
}

func TestVimeoID_DigitRun_Extracted(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://vimeo.com/1185346", "1185346", true},
		{"http://www.vimeo.com/1185346/", "1185346", true},
		{"https://vimeo.com/notanumber", "", false},
		{"https://youtu.be/dQw4w9WgXcQ", "", false},
	}
	for _, tt := range tests {
		got, ok := VimeoID(tt.url)
		if got != tt.want || ok != tt.ok {
			t.Errorf("VimeoID(%q): got (%q, %v), want (%q, %v)", tt.url, got, ok, tt.want, tt.ok)
		}
	}
}

func TestYouTubeThumbURL_SizeClasses_Templated(t *testing.T) {
	// Arrange
	id := "dQw4w9WgXcQ"

	// Assert
	if got := YouTubeThumbURL(id, ThumbSmall); got != "http://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg" {
		t.Errorf("small: got %v", got)
	}
	if got := YouTubeThumbURL(id, ThumbMedium); got != "http://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg" {
		t.Errorf("medium: got %v", got)
	}
	if got := YouTubeThumbURL(id, ThumbLarge); got != "http://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("large: got %v", got)
	}
}

func TestIframeURL_PerProvider_PlayerURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://youtu.be/dQw4w9WgXcQ", "//www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://vimeo.com/1185346", "//player.vimeo.com/video/1185346"},
		{"https://example.com/video", ""},
		{"https://youtu.be/short", ""},
	}
	for _, tt := range tests {
		if got := IframeURL(tt.url); got != tt.want {
			t.Errorf("IframeURL(%q): got %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestIframeHTML_YouTube_EmbedMarkup(t *testing.T) {
	// Act
	got := IframeHTML("https://youtu.be/dQw4w9WgXcQ", 640, 360)

	// Assert
	want := `<iframe class="video-iframe resize" width="640" height="360" src="//www.youtube.com/embed/dQw4w9WgXcQ" frameborder="0" allowfullscreen></iframe>`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestIframeHTML_Vimeo_EmbedMarkup(t *testing.T) {
	// Act
	got := IframeHTML("https://vimeo.com/1185346", 640, 360)

	// Assert
	want := `<iframe class="video-iframe resize" src="//player.vimeo.com/video/1185346" width="640" height="360" frameborder="0" webkitAllowFullScreen mozallowfullscreen allowFullScreen></iframe>`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestIframeHTML_UnrecognizedProvider_Empty(t *testing.T) {
	if got := IframeHTML("https://example.com/video", 640, 360); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
