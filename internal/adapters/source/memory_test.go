package source

import (
	"context"
	"errors"
	"testing"

	"birdfeed/internal/domain"
	"birdfeed/test/fixtures"
)

func memorySource() *MemorySource {
	return NewMemorySource([]domain.Tweet{
		fixtures.BasicTweet(),
		fixtures.VideoTweet(),
	})
}

func TestUserTimeline_MatchingHandle_CaseInsensitive(t *testing.T) {
	// Arrange
	src := memorySource()

	// Act
	tweets, err := src.UserTimeline(context.Background(), "ALICE", 10)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 1 || tweets[0].IDStr != "123" {
		t.Errorf("got %d tweets", len(tweets))
	}
}

func TestUserTimeline_CountLimit_Honored(t *testing.T) {
	// Arrange
	src := NewMemorySource([]domain.Tweet{
		fixtures.BasicTweet(), fixtures.BasicTweet(), fixtures.BasicTweet(),
	})

	// Act
	tweets, _ := src.UserTimeline(context.Background(), "alice", 2)

	// Assert
	if len(tweets) != 2 {
		t.Errorf("got %d tweets, want 2", len(tweets))
	}
}

func TestSearch_TextMatch_ReturnsHits(t *testing.T) {
	// Arrange
	src := memorySource()

	// Act
	tweets, err := src.Search(context.Background(), "#cool", 10)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 1 {
		t.Errorf("got %d tweets, want 1", len(tweets))
	}
}

func TestStatus_UnknownID_ReportsNotFound(t *testing.T) {
	// Arrange
	src := memorySource()

	// Act
	_, err := src.Status(context.Background(), "000")

	// Assert
	if !errors.Is(err, domain.ErrTweetNotFound) {
		t.Errorf("got %v, want ErrTweetNotFound", err)
	}
}

func TestNewFileSource_MissingFile_ReturnsError(t *testing.T) {
	// Act
	_, err := NewFileSource("does/not/exist.json")

	// Assert
	if err == nil {
		t.Error("expected error for missing file")
	}
}
