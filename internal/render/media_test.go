package render

import (
	"testing"

	"birdfeed/test/fixtures"
)

func TestStripProtocol_HTTPAndHTTPS_PrefixRemoved(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://pbs.example.com/a.jpg", "//pbs.example.com/a.jpg"},
		{"https://pbs.example.com/a.jpg", "//pbs.example.com/a.jpg"},
		{"HTTP://pbs.example.com/a.jpg", "//pbs.example.com/a.jpg"},
		{"//pbs.example.com/a.jpg", "//pbs.example.com/a.jpg"},
	}
	for _, tt := range tests {
		if got := StripProtocol(tt.in); got != tt.want {
			t.Errorf("StripProtocol(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractMedia_Photo_AllFieldsMapped(t *testing.T) {
	// Arrange
	tweet := fixtures.MediaTweet()

	// Act
	records := ExtractMedia(tweet.Entities.Media)

	// Assert
	if len(records) != 1 {
		t.Fatalf("record count: got %d, want 1", len(records))
	}
	m := records[0]
	if m.ID != "99" {
		t.Errorf("ID: got %v, want 99", m.ID)
	}
	if m.MediaURLNoProtocol != "//pbs.example.com/photo.jpg" {
		t.Errorf("MediaURLNoProtocol: got %v", m.MediaURLNoProtocol)
	}
	if m.MediaURLHTTPS != "https://pbs.example.com/photo.jpg" {
		t.Errorf("MediaURLHTTPS: got %v", m.MediaURLHTTPS)
	}
	if m.Type != "photo" {
		t.Errorf("Type: got %v, want photo", m.Type)
	}
	if m.Sizes.Large.Width != 1024 || m.Sizes.Large.Height != 681 || m.Sizes.Large.Resize != "fit" {
		t.Errorf("Large size: got %+v", m.Sizes.Large)
	}
	if m.Sizes.Thumb.Resize != "crop" {
		t.Errorf("Thumb resize: got %v, want crop", m.Sizes.Thumb.Resize)
	}
}

func TestExtractURLs_Entities_Normalized(t *testing.T) {
	// Arrange
	tweet := fixtures.BasicTweet()

	// Act
	records := ExtractURLs(tweet.Entities.URLs)

	// Assert
	if len(records) != 1 {
		t.Fatalf("record count: got %d, want 1", len(records))
	}
	u := records[0]
	if u.URL != "http://t.co/xyz" || u.ExpandedURL != "http://example.com/article" || u.DisplayURL != "example.com/article" {
		t.Errorf("got %+v", u)
	}
}

func TestExtractURLs_NoEntities_EmptyList(t *testing.T) {
	// Act
	records := ExtractURLs(nil)

	// Assert
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
