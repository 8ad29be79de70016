package usecases_test

import (
	"context"
	"errors"
	"testing"

	"birdfeed/internal/domain"
	"birdfeed/internal/render"
	"birdfeed/internal/usecases"
	"birdfeed/test/fixtures"
)

// MockSource is a mock implementation of source.Source.
type MockSource struct {
	tweets      []domain.Tweet
	err         error
	statusCalls int
}

func (m *MockSource) UserTimeline(_ context.Context, _ string, _ int) ([]domain.Tweet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tweets, nil
}

func (m *MockSource) Search(_ context.Context, _ string, _ int) ([]domain.Tweet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tweets, nil
}

func (m *MockSource) Status(_ context.Context, id string) (*domain.Tweet, error) {
	m.statusCalls++
	if m.err != nil {
		return nil, m.err
	}
	for _, t := range m.tweets {
		if t.IDStr == id {
			tweet := t
			return &tweet, nil
		}
	}
	return nil, domain.ErrTweetNotFound
}

// MockCache is a mock implementation of RenderedCache.
type MockCache struct {
	entries map[string]*domain.RenderedTweet
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string]*domain.RenderedTweet)}
}

func (m *MockCache) Get(screenName, id string) (*domain.RenderedTweet, bool) {
	rendered, found := m.entries["/"+screenName+"/status/"+id]
	return rendered, found
}

func (m *MockCache) Set(screenName, id string, rendered *domain.RenderedTweet) {
	m.entries["/"+screenName+"/status/"+id] = rendered
}

func formatter() *render.Formatter {
	return render.NewFormatter(render.DefaultLinks(), nil)
}

// GetTimelineUseCase tests

func TestGetTimelineUseCase_EmptyScreenName_EmptyListNotError(t *testing.T) {
	// Arrange
	uc := usecases.NewGetTimelineUseCase(&MockSource{}, formatter())

	// Act
	rendered, err := uc.Execute(context.Background(), "", 20)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 0 {
		t.Errorf("got %d posts, want 0", len(rendered))
	}
}

func TestGetTimelineUseCase_AllRecordsValid_AllRendered(t *testing.T) {
	// Arrange
	src := &MockSource{tweets: []domain.Tweet{fixtures.BasicTweet(), fixtures.VideoTweet()}}
	uc := usecases.NewGetTimelineUseCase(src, formatter())

	// Act
	rendered, err := uc.Execute(context.Background(), "alice", 20)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("got %d posts, want 2", len(rendered))
	}
	if rendered[0].ID != "123" {
		t.Errorf("first post ID: got %v", rendered[0].ID)
	}
}

func TestGetTimelineUseCase_InvalidRecordInBatch_SkippedNotFatal(t *testing.T) {
	// Arrange: second record has no author handle.
	bad := fixtures.BasicTweet()
	bad.User.ScreenName = ""
	src := &MockSource{tweets: []domain.Tweet{fixtures.BasicTweet(), bad, fixtures.VideoTweet()}}
	uc := usecases.NewGetTimelineUseCase(src, formatter())

	// Act
	rendered, err := uc.Execute(context.Background(), "alice", 20)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 2 {
		t.Errorf("got %d posts, want 2 (bad record skipped)", len(rendered))
	}
}

func TestGetTimelineUseCase_SourceError_Propagated(t *testing.T) {
	// Arrange
	src := &MockSource{err: domain.ErrSourceUnavailable}
	uc := usecases.NewGetTimelineUseCase(src, formatter())

	// Act
	_, err := uc.Execute(context.Background(), "alice", 20)

	// Assert
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Errorf("got %v, want ErrSourceUnavailable", err)
	}
}

// SearchTweetsUseCase tests

func TestSearchTweetsUseCase_EmptyQuery_EmptyListNotError(t *testing.T) {
	// Arrange
	uc := usecases.NewSearchTweetsUseCase(&MockSource{}, formatter())

	// Act
	rendered, err := uc.Execute(context.Background(), "", 20)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 0 {
		t.Errorf("got %d posts, want 0", len(rendered))
	}
}

func TestSearchTweetsUseCase_Hits_Rendered(t *testing.T) {
	// Arrange
	src := &MockSource{tweets: []domain.Tweet{fixtures.BasicTweet()}}
	uc := usecases.NewSearchTweetsUseCase(src, formatter())

	// Act
	rendered, err := uc.Execute(context.Background(), "#cool", 20)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 1 {
		t.Errorf("got %d posts, want 1", len(rendered))
	}
}

// GetTweetUseCase tests

func TestGetTweetUseCase_CacheHit_SourceNotCalled(t *testing.T) {
	// Arrange
	cache := NewMockCache()
	cache.Set("alice", "123", &domain.RenderedTweet{ID: "123", User: "alice"})
	src := &MockSource{}
	uc := usecases.NewGetTweetUseCase(cache, src, formatter())

	// Act
	rendered, err := uc.Execute(context.Background(), "alice", "123")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendered.ID != "123" {
		t.Errorf("ID: got %v", rendered.ID)
	}
	if src.statusCalls != 0 {
		t.Errorf("source calls: got %d, want 0", src.statusCalls)
	}
}

func TestGetTweetUseCase_CacheMiss_FetchesRendersAndCaches(t *testing.T) {
	// Arrange
	cache := NewMockCache()
	src := &MockSource{tweets: []domain.Tweet{fixtures.BasicTweet()}}
	uc := usecases.NewGetTweetUseCase(cache, src, formatter())

	// Act
	first, err := uc.Execute(context.Background(), "alice", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), "alice", "123")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != "123" || second.ID != "123" {
		t.Errorf("IDs: got %v / %v", first.ID, second.ID)
	}
	if src.statusCalls != 1 {
		t.Errorf("source calls: got %d, want 1 (second call cached)", src.statusCalls)
	}
}

func TestGetTweetUseCase_NotFound_Propagated(t *testing.T) {
	// Arrange
	uc := usecases.NewGetTweetUseCase(NewMockCache(), &MockSource{}, formatter())

	// Act
	_, err := uc.Execute(context.Background(), "alice", "999")

	// Assert
	if !errors.Is(err, domain.ErrTweetNotFound) {
		t.Errorf("got %v, want ErrTweetNotFound", err)
	}
}
