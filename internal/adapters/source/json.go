package source

import (
	"encoding/json"
	"fmt"

	"birdfeed/internal/domain"
)

// DecodeTimeline parses a user-timeline payload: a bare JSON array of post
// records.
func DecodeTimeline(data []byte) ([]domain.Tweet, error) {
	var tweets []domain.Tweet
	if err := json.Unmarshal(data, &tweets); err != nil {
		return nil, fmt.Errorf("timeline payload: %w", err)
	}
	return tweets, nil
}

// DecodeSearch parses a search payload: an object wrapping the records in a
// "statuses" array. The two endpoints disagree on shape; normalizing here
// keeps the core free of any array-or-object branching.
func DecodeSearch(data []byte) ([]domain.Tweet, error) {
	var payload struct {
		Statuses []domain.Tweet `json:"statuses"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("search payload: %w", err)
	}
	return payload.Statuses, nil
}
