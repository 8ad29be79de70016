// Package domain contains the core business entities and rules.
package domain

// Tweet is a single post record as delivered by the ingestion layer,
// already parsed from the REST API payload. Immutable once received.
type Tweet struct {
	ID        int64    `json:"id"`
	IDStr     string   `json:"id_str"`
	CreatedAt string   `json:"created_at"`
	Text      string   `json:"text"`
	User      User     `json:"user"`
	Entities  Entities `json:"entities"`
}

// User is the post author.
type User struct {
	ID              int64  `json:"id"`
	IDStr           string `json:"id_str"`
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

// Entities holds the three independent annotation lists plus attached media.
// Spans within one list are non-overlapping and in original-text order; that
// is an upstream guarantee, not enforced here.
type Entities struct {
	URLs         []URLEntity     `json:"urls"`
	Hashtags     []HashtagEntity `json:"hashtags"`
	UserMentions []MentionEntity `json:"user_mentions"`
	Media        []MediaEntity   `json:"media"`
}

// Indices is a half-open [start, end) span counted in Unicode code points of
// the original, unmodified post text.
type Indices [2]int

// Start returns the first code point of the span.
func (i Indices) Start() int { return i[0] }

// End returns the code point one past the last of the span.
func (i Indices) End() int { return i[1] }

// URLEntity is an embedded link annotation.
type URLEntity struct {
	URL         string  `json:"url"`
	ExpandedURL string  `json:"expanded_url"`
	DisplayURL  string  `json:"display_url"`
	Indices     Indices `json:"indices"`
}

// HashtagEntity is a hashtag annotation. Text excludes the leading '#'.
type HashtagEntity struct {
	Text    string  `json:"text"`
	Indices Indices `json:"indices"`
}

// MentionEntity is a user-mention annotation.
type MentionEntity struct {
	ScreenName string  `json:"screen_name"`
	Name       string  `json:"name"`
	Indices    Indices `json:"indices"`
}

// MediaEntity is an attached photo or video card.
type MediaEntity struct {
	ID            int64      `json:"id"`
	IDStr         string     `json:"id_str"`
	MediaURL      string     `json:"media_url"`
	MediaURLHTTPS string     `json:"media_url_https"`
	URL           string     `json:"url"`
	DisplayURL    string     `json:"display_url"`
	ExpandedURL   string     `json:"expanded_url"`
	Type          string     `json:"type"`
	Sizes         MediaSizes `json:"sizes"`
}

// MediaSizes lists the four fixed size classes of a media entity.
type MediaSizes struct {
	Small  MediaSize `json:"small"`
	Medium MediaSize `json:"medium"`
	Large  MediaSize `json:"large"`
	Thumb  MediaSize `json:"thumb"`
}

// MediaSize is one size class of a media entity.
type MediaSize struct {
	W      int    `json:"w"`
	H      int    `json:"h"`
	Resize string `json:"resize"`
}
