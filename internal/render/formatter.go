package render

import (
	"context"
	"fmt"
	"strconv"

	"birdfeed/internal/domain"
)

// VideoResolver classifies a link entity as a recognized video and derives
// its thumbnails and embeds. ok is false for non-video links.
type VideoResolver interface {
	Resolve(ctx context.Context, u domain.URLEntity) (rec domain.VideoRecord, ok bool)
}

// Formatter assembles the rendering record for a single post: annotated
// text, intent links, and the normalized URL/media/video lists.
type Formatter struct {
	links  Links
	videos VideoResolver
}

// NewFormatter creates a Formatter. videos may be nil to skip video
// recognition entirely.
func NewFormatter(links Links, videos VideoResolver) *Formatter {
	return &Formatter{links: links, videos: videos}
}

// Format renders one post record. The record is not mutated; the rendered
// record is freshly constructed per call, so batch callers may run posts in
// parallel. A post with no ID or no author handle is malformed upstream and
// reports domain.ErrInvalidRecord.
func (f *Formatter) Format(ctx context.Context, t *domain.Tweet) (*domain.RenderedTweet, error) {
	id := t.IDStr
	if id == "" && t.ID != 0 {
		id = strconv.FormatInt(t.ID, 10)
	}
	if id == "" {
		return nil, fmt.Errorf("post id: %w", domain.ErrInvalidRecord)
	}
	if t.User.ScreenName == "" {
		return nil, fmt.Errorf("author handle: %w", domain.ErrInvalidRecord)
	}

	tokens := Tokenize(t.Text)
	if err := InjectEntities(tokens, t.Entities, f.links); err != nil {
		return nil, err
	}

	profile := f.links.ProfileURL(t.User.ScreenName)
	return &domain.RenderedTweet{
		ID:           id,
		CreatedAt:    t.CreatedAt,
		Name:         t.User.Name,
		User:         t.User.ScreenName,
		AvatarURL:    t.User.ProfileImageURL,
		ContentHTML:  Render(tokens),
		Link:         profile + "/status/" + id,
		ProfileLink:  profile,
		ReplyLink:    f.links.SiteBase + "/intent/tweet?in_reply_to=" + id,
		RetweetLink:  f.links.SiteBase + "/intent/retweet?tweet_id=" + id,
		FavoriteLink: f.links.SiteBase + "/intent/favorite?tweet_id=" + id,
		URLs:         ExtractURLs(t.Entities.URLs),
		Media:        ExtractMedia(t.Entities.Media),
		Videos:       f.extractVideos(ctx, t.Entities.URLs),
	}, nil
}

// extractVideos resolves each link entity; unrecognized providers are
// skipped, never an error.
func (f *Formatter) extractVideos(ctx context.Context, urls []domain.URLEntity) []domain.VideoRecord {
	if f.videos == nil {
		return nil
	}
	var videos []domain.VideoRecord
	for _, u := range urls {
		if rec, ok := f.videos.Resolve(ctx, u); ok {
			videos = append(videos, rec)
		}
	}
	return videos
}
