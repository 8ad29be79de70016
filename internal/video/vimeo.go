package video

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"birdfeed/internal/domain"
)

// DefaultVimeoBaseURL is the public Vimeo simple API host.
const DefaultVimeoBaseURL = "http://vimeo.com"

// VimeoClient looks up video thumbnails through the Vimeo simple API. The
// lookup is the only networked step of video resolution; the client timeout
// bounds it so a slow endpoint cannot stall a whole post.
type VimeoClient struct {
	baseURL string
	client  *http.Client
}

// NewVimeoClient creates a client against baseURL (DefaultVimeoBaseURL in
// production; tests point it at a local server).
func NewVimeoClient(baseURL string, timeout time.Duration) *VimeoClient {
	return &VimeoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// vimeoVideo is the subset of the simple API response we read.
type vimeoVideo struct {
	ThumbnailSmall  string `json:"thumbnail_small"`
	ThumbnailMedium string `json:"thumbnail_medium"`
	ThumbnailLarge  string `json:"thumbnail_large"`
}

// Thumbnails fetches the thumbnail URLs for a numeric Vimeo ID. No retries;
// callers treat any error as a degraded result, not a failure.
func (c *VimeoClient) Thumbnails(ctx context.Context, id string) (domain.Thumbnails, error) {
	url := fmt.Sprintf("%s/api/v2/video/%s.json", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Thumbnails{}, fmt.Errorf("vimeo request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Thumbnails{}, fmt.Errorf("vimeo lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Thumbnails{}, fmt.Errorf("vimeo lookup: status %d", resp.StatusCode)
	}

	var videos []vimeoVideo
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		return domain.Thumbnails{}, fmt.Errorf("vimeo response: %w", err)
	}
	if len(videos) == 0 {
		return domain.Thumbnails{}, fmt.Errorf("vimeo response: empty for id %s", id)
	}

	return domain.Thumbnails{
		Small:  videos[0].ThumbnailSmall,
		Medium: videos[0].ThumbnailMedium,
		Large:  videos[0].ThumbnailLarge,
	}, nil
}
