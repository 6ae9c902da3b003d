package attendance

import "context"

// EntryService defines business logic for attendance tracking.
type EntryService interface {
	// PreviewDay runs the single-day calculation without persisting anything.
	// Invalid inputs yield an invalid DayResult, not an error.
	PreviewDay(ctx context.Context, req RecordDayRequest) (DayResultResponse, error)

	// RecordDay computes and persists a new entry. Fails when an entry already
	// exists for the (user, date) pair, when the date is in the future, when
	// the calculation is invalid, or when the user's salary is unset.
	RecordDay(ctx context.Context, req RecordDayRequest) (EntryResponse, error)

	// UpdateEntry re-runs the calculation and overwrites the stored entry.
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	GetEntry(ctx context.Context, id string) (EntryResponse, error)

	ListEntries(ctx context.Context, filter EntryFilter) ([]EntryResponse, error)

	DeleteEntry(ctx context.Context, id string) error
}
