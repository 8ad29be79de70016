// Package usecases wires sources, the formatter, and caches into the
// operations the web layer exposes.
package usecases

import (
	"context"

	"birdfeed/internal/adapters/source"
	"birdfeed/internal/domain"
	"birdfeed/pkg/log"
)

// TweetFormatter renders one post record.
type TweetFormatter interface {
	Format(ctx context.Context, t *domain.Tweet) (*domain.RenderedTweet, error)
}

// GetTimelineUseCase fetches a user timeline and renders each post.
type GetTimelineUseCase struct {
	source    source.Source
	formatter TweetFormatter
}

// NewGetTimelineUseCase creates a new GetTimelineUseCase.
func NewGetTimelineUseCase(src source.Source, formatter TweetFormatter) *GetTimelineUseCase {
	return &GetTimelineUseCase{source: src, formatter: formatter}
}

// Execute renders up to count posts of screenName's timeline. An empty
// screen name is nothing to do, not an error. A post that fails to render
// (malformed record, bad entity indices) is logged and excluded; the rest of
// the batch still renders.
func (uc *GetTimelineUseCase) Execute(ctx context.Context, screenName string, count int) ([]*domain.RenderedTweet, error) {
	if screenName == "" {
		return []*domain.RenderedTweet{}, nil
	}

	tweets, err := uc.source.UserTimeline(ctx, screenName, count)
	if err != nil {
		return nil, err
	}

	return renderBatch(ctx, uc.formatter, tweets), nil
}

// renderBatch formats records one by one, skipping failures. Each post's
// entity categories run serially against its own token sequence; posts
// themselves share no state.
func renderBatch(ctx context.Context, formatter TweetFormatter, tweets []domain.Tweet) []*domain.RenderedTweet {
	rendered := make([]*domain.RenderedTweet, 0, len(tweets))
	for i := range tweets {
		r, err := formatter.Format(ctx, &tweets[i])
		if err != nil {
			log.GlobalWarnCtx(ctx, "skipping unrenderable post",
				"post_id", tweets[i].IDStr, "error", err.Error())
			continue
		}
		rendered = append(rendered, r)
	}
	return rendered
}
