package source

import (
	"context"
	"os"
	"strings"

	"birdfeed/internal/domain"
)

// MemorySource serves records from memory. It backs tests and the replay
// mode of cmd/server, where a captured timeline payload stands in for the
// live API.
type MemorySource struct {
	tweets []domain.Tweet
}

// NewMemorySource creates a source over the given records.
func NewMemorySource(tweets []domain.Tweet) *MemorySource {
	return &MemorySource{tweets: tweets}
}

// NewFileSource loads a captured timeline payload from disk.
func NewFileSource(path string) (*MemorySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tweets, err := DecodeTimeline(data)
	if err != nil {
		return nil, err
	}
	return NewMemorySource(tweets), nil
}

// UserTimeline returns up to count records authored by screenName.
func (s *MemorySource) UserTimeline(_ context.Context, screenName string, count int) ([]domain.Tweet, error) {
	var out []domain.Tweet
	for _, t := range s.tweets {
		if strings.EqualFold(t.User.ScreenName, screenName) {
			out = append(out, t)
			if count > 0 && len(out) == count {
				break
			}
		}
	}
	return out, nil
}

// Search returns up to count records whose text contains the query.
func (s *MemorySource) Search(_ context.Context, query string, count int) ([]domain.Tweet, error) {
	var out []domain.Tweet
	for _, t := range s.tweets {
		if strings.Contains(strings.ToLower(t.Text), strings.ToLower(query)) {
			out = append(out, t)
			if count > 0 && len(out) == count {
				break
			}
		}
	}
	return out, nil
}

// Status returns the record with the given ID.
func (s *MemorySource) Status(_ context.Context, id string) (*domain.Tweet, error) {
	for _, t := range s.tweets {
		if t.IDStr == id {
			tweet := t
			return &tweet, nil
		}
	}
	return nil, domain.ErrTweetNotFound
}
