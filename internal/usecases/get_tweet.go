package usecases

import (
	"context"

	"birdfeed/internal/adapters/source"
	"birdfeed/internal/domain"
	"birdfeed/pkg/log"
)

// RenderedCache caches rendered posts keyed by author handle and post ID.
type RenderedCache interface {
	Get(screenName, id string) (*domain.RenderedTweet, bool)
	Set(screenName, id string, rendered *domain.RenderedTweet)
}

// GetTweetUseCase retrieves and renders a single post, cache-first.
type GetTweetUseCase struct {
	cache     RenderedCache
	source    source.Source
	formatter TweetFormatter
}

// NewGetTweetUseCase creates a new GetTweetUseCase.
func NewGetTweetUseCase(cache RenderedCache, src source.Source, formatter TweetFormatter) *GetTweetUseCase {
	return &GetTweetUseCase{cache: cache, source: src, formatter: formatter}
}

// Execute returns the rendered post, checking the cache before fetching.
func (uc *GetTweetUseCase) Execute(ctx context.Context, screenName, id string) (*domain.RenderedTweet, error) {
	if rendered, found := uc.cache.Get(screenName, id); found {
		log.GlobalDebugCtx(ctx, "cache hit", "screen_name", screenName, "post_id", id)
		return rendered, nil
	}

	log.GlobalDebugCtx(ctx, "cache miss, fetching", "screen_name", screenName, "post_id", id)

	tweet, err := uc.source.Status(ctx, id)
	if err != nil {
		return nil, err
	}

	rendered, err := uc.formatter.Format(ctx, tweet)
	if err != nil {
		return nil, err
	}

	// Key by the record's actual author so later lookups agree.
	uc.cache.Set(rendered.User, id, rendered)

	return rendered, nil
}
