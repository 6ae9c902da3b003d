package attendance

import (
	"context"
	"time"
)

// EntryRepository defines data access methods for attendance entries.
// Uniqueness of (user, date) is enforced here, not in the calculation engine.
type EntryRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)

	GetByID(ctx context.Context, id string) (Entry, error)

	// GetByUserAndDate returns nil when no entry exists; used to enforce
	// at-most-one-entry-per-day before creation.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Entry, error)

	// List retrieves entries in the inclusive date range, all users when
	// filter.UserID is nil, ordered by date.
	List(ctx context.Context, filter EntryFilter) ([]Entry, error)

	Update(ctx context.Context, entry Entry) error

	Delete(ctx context.Context, id string) error
}
