package domain

// RenderedTweet is the rendering-ready representation of a single post.
// Created once per post; never mutated after construction.
type RenderedTweet struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`

	Name      string `json:"name"`
	User      string `json:"user"`
	AvatarURL string `json:"avatar_url"`

	// ContentHTML is the post text with anchor markup injected at entity
	// positions. Safe for direct template substitution.
	ContentHTML string `json:"content_html"`

	Link         string `json:"link"`
	ProfileLink  string `json:"profile_link"`
	ReplyLink    string `json:"reply_link"`
	RetweetLink  string `json:"retweet_link"`
	FavoriteLink string `json:"favorite_link"`

	URLs   []URLRecord   `json:"urls"`
	Media  []MediaRecord `json:"media"`
	Videos []VideoRecord `json:"videos"`
}

// URLRecord is a normalized link entity.
type URLRecord struct {
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url"`
	DisplayURL  string `json:"display_url"`
}

// MediaRecord is a normalized media entity.
type MediaRecord struct {
	ID                 string      `json:"id"`
	MediaURL           string      `json:"media_url"`
	MediaURLNoProtocol string      `json:"media_url_no_protocol"`
	MediaURLHTTPS      string      `json:"media_url_https"`
	URL                string      `json:"url"`
	DisplayURL         string      `json:"display_url"`
	ExpandedURL        string      `json:"expanded_url"`
	Type               string      `json:"type"`
	Sizes              SizeRecords `json:"sizes"`
}

// SizeRecords mirrors the four size classes of a media entity.
type SizeRecords struct {
	Small  SizeRecord `json:"small"`
	Medium SizeRecord `json:"medium"`
	Large  SizeRecord `json:"large"`
	Thumb  SizeRecord `json:"thumb"`
}

// SizeRecord is one normalized media size.
type SizeRecord struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Resize string `json:"resize"`
}

// Provider is the video hosting platform a URL is classified into.
type Provider string

const (
	ProviderYouTube Provider = "youtube"
	ProviderVimeo   Provider = "vimeo"
)

// VideoRecord is a recognized video link with derived thumbnails and embeds.
// Thumbnails may be empty when the remote lookup failed; the record is still
// valid (degraded, not fatal).
type VideoRecord struct {
	URL         string     `json:"url"`
	ExpandedURL string     `json:"expanded_url"`
	DisplayURL  string     `json:"display_url"`
	Provider    Provider   `json:"provider"`
	ProviderID  string     `json:"provider_id"`
	Thumbnails  Thumbnails `json:"thumbnails"`
	IframeURL   string     `json:"iframe_url"`
	IframeHTML  string     `json:"iframe_html"`
}

// Thumbnails holds the three thumbnail size classes of a video.
type Thumbnails struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}
