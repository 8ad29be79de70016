package usecases

import (
	"context"

	"birdfeed/internal/adapters/source"
	"birdfeed/internal/domain"
)

// SearchTweetsUseCase searches posts and renders each hit.
type SearchTweetsUseCase struct {
	source    source.Source
	formatter TweetFormatter
}

// NewSearchTweetsUseCase creates a new SearchTweetsUseCase.
func NewSearchTweetsUseCase(src source.Source, formatter TweetFormatter) *SearchTweetsUseCase {
	return &SearchTweetsUseCase{source: src, formatter: formatter}
}

// Execute renders up to count posts matching query. An empty query returns
// an empty list, not an error; unrenderable posts are skipped.
func (uc *SearchTweetsUseCase) Execute(ctx context.Context, query string, count int) ([]*domain.RenderedTweet, error) {
	if query == "" {
		return []*domain.RenderedTweet{}, nil
	}

	tweets, err := uc.source.Search(ctx, query, count)
	if err != nil {
		return nil, err
	}

	return renderBatch(ctx, uc.formatter, tweets), nil
}
