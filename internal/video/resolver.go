package video

import (
	"context"

	"birdfeed/internal/domain"
	"birdfeed/pkg/log"
)

// ThumbnailFetcher performs the remote Vimeo thumbnail lookup.
type ThumbnailFetcher interface {
	Thumbnails(ctx context.Context, id string) (domain.Thumbnails, error)
}

// ThumbnailCache caches fetched thumbnails keyed by provider ID.
type ThumbnailCache interface {
	Get(id string) (domain.Thumbnails, bool)
	Set(id string, thumbs domain.Thumbnails)
}

// Resolver turns link entities into video records.
type Resolver struct {
	vimeo  ThumbnailFetcher
	cache  ThumbnailCache
	width  int
	height int
}

// NewResolver creates a Resolver. cache may be nil to fetch every time;
// width and height size the iframe embeds.
func NewResolver(vimeo ThumbnailFetcher, cache ThumbnailCache, width, height int) *Resolver {
	return &Resolver{vimeo: vimeo, cache: cache, width: width, height: height}
}

// Resolve classifies the entity's expanded URL. ok is false when the URL is
// neither YouTube nor Vimeo, or when the provider matched but no valid ID
// could be extracted. A failed Vimeo thumbnail lookup still returns a record
// with a definite provider and ID, just without thumbnails.
func (r *Resolver) Resolve(ctx context.Context, u domain.URLEntity) (domain.VideoRecord, bool) {
	target := u.ExpandedURL

	var (
		provider domain.Provider
		id       string
		thumbs   domain.Thumbnails
	)
	switch {
	case IsYouTube(target):
		yid, ok := YouTubeID(target)
		if !ok {
			return domain.VideoRecord{}, false
		}
		provider, id = domain.ProviderYouTube, yid
		thumbs = YouTubeThumbnails(yid)
	case IsVimeo(target):
		vid, ok := VimeoID(target)
		if !ok {
			return domain.VideoRecord{}, false
		}
		provider, id = domain.ProviderVimeo, vid
		thumbs = r.vimeoThumbnails(ctx, vid)
	default:
		return domain.VideoRecord{}, false
	}

	return domain.VideoRecord{
		URL:         u.URL,
		ExpandedURL: u.ExpandedURL,
		DisplayURL:  u.DisplayURL,
		Provider:    provider,
		ProviderID:  id,
		Thumbnails:  thumbs,
		IframeURL:   IframeURL(target),
		IframeHTML:  IframeHTML(target, r.width, r.height),
	}, true
}

// vimeoThumbnails is cache-first and degrades to empty thumbnails on any
// lookup failure.
func (r *Resolver) vimeoThumbnails(ctx context.Context, id string) domain.Thumbnails {
	if r.cache != nil {
		if thumbs, found := r.cache.Get(id); found {
			return thumbs
		}
	}
	if r.vimeo == nil {
		return domain.Thumbnails{}
	}

	thumbs, err := r.vimeo.Thumbnails(ctx, id)
	if err != nil {
		log.GlobalDebugCtx(ctx, "vimeo thumbnail lookup failed", "vimeo_id", id, "error", err.Error())
		return domain.Thumbnails{}
	}

	if r.cache != nil {
		r.cache.Set(id, thumbs)
	}
	return thumbs
}
