// Package source supplies already-parsed post records. The REST transport
// and OAuth handshake live behind the Source interface; the core never sees
// them and never reads ambient credentials.
package source

import (
	"context"

	"birdfeed/internal/domain"
)

// Source returns parsed post records for a user timeline, a search query, or
// a single status.
type Source interface {
	UserTimeline(ctx context.Context, screenName string, count int) ([]domain.Tweet, error)
	Search(ctx context.Context, query string, count int) ([]domain.Tweet, error)
	Status(ctx context.Context, id string) (*domain.Tweet, error)
}
