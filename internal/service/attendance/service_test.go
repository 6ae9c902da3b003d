package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

// fakeEntryRepo is an in-memory EntryRepository keyed by entry ID.
type fakeEntryRepo struct {
	entries map[string]attendance.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]attendance.Entry)}
}

func (r *fakeEntryRepo) Create(_ context.Context, entry attendance.Entry) (attendance.Entry, error) {
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id string) (attendance.Entry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return attendance.Entry{}, attendance.ErrEntryNotFound
	}
	return entry, nil
}

func (r *fakeEntryRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Entry, error) {
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.Date.Equal(date) {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEntryRepo) List(_ context.Context, filter attendance.EntryFilter) ([]attendance.Entry, error) {
	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)

	var out []attendance.Entry
	for _, entry := range r.entries {
		if filter.UserID != nil && entry.UserID != *filter.UserID {
			continue
		}
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, entry attendance.Entry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return attendance.ErrEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return attendance.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

// fakeUserRepo holds a single user, which is all these tests need.
type fakeUserRepo struct {
	user user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if id != r.user.ID {
		return user.User{}, user.ErrUserNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	if username != r.user.Username {
		return user.User{}, user.ErrUserNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ bool) ([]user.User, error) {
	return []user.User{r.user}, nil
}

func (r *fakeUserRepo) ListEnabled(_ context.Context, _ bool) ([]user.User, error) {
	return []user.User{r.user}, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u user.User) error { r.user = u; return nil }

func (r *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService(salary string) (attendance.EntryService, *fakeEntryRepo) {
	entryRepo := newFakeEntryRepo()
	userRepo := &fakeUserRepo{user: user.User{
		ID:            "e7a1b2c3-0000-0000-0000-000000000001",
		Username:      "kassir",
		Name:          "Kassir One",
		Role:          user.RoleUser,
		MonthlySalary: decimal.RequireFromString(salary),
		IsEnabled:     true,
	}}
	svc := NewEntryService(entryRepo, userRepo, NewEngine(attendance.DefaultCyclePolicy()))
	return svc, entryRepo
}

func strPtr(s string) *string { return &s }

func recordReq(date string) attendance.RecordDayRequest {
	return attendance.RecordDayRequest{
		UserID:   "e7a1b2c3-0000-0000-0000-000000000001",
		Date:     date,
		Status:   string(attendance.StatusPresent),
		CheckIn:  strPtr("08:00"),
		CheckOut: strPtr("16:00"),
	}
}

func TestRecordDay_PersistsComputedEntry(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService("3000")

	resp, err := svc.RecordDay(context.Background(), recordReq("2026-04-10"))
	require.NoError(t, err)

	assert.Equal(t, "2026-04-10", resp.Date)
	assert.True(t, resp.IsPresent)
	assert.True(t, resp.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, resp.DailyPay.Equal(decimal.NewFromInt(100)), "daily pay: %s", resp.DailyPay)
	assert.Len(t, repo.entries, 1)
}

func TestRecordDay_DuplicateDateConflicts(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("3000")
	ctx := context.Background()

	_, err := svc.RecordDay(ctx, recordReq("2026-04-10"))
	require.NoError(t, err)

	_, err = svc.RecordDay(ctx, recordReq("2026-04-10"))
	assert.ErrorIs(t, err, attendance.ErrEntryExists)
}

func TestRecordDay_FutureDateRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("3000")

	future := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := svc.RecordDay(context.Background(), recordReq(future))
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestRecordDay_InvalidCalculationBlocksSave(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService("3000")

	req := recordReq("2026-04-10")
	req.CheckOut = nil

	_, err := svc.RecordDay(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrInvalidCalculation)
	assert.Empty(t, repo.entries)
}

func TestRecordDay_MissingSalaryBlocksSave(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService("0")

	_, err := svc.RecordDay(context.Background(), recordReq("2026-04-10"))
	assert.ErrorIs(t, err, attendance.ErrSalaryRequired)
	assert.Empty(t, repo.entries)
}

func TestRecordDay_CycleReachedThroughHistory(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("3000")
	ctx := context.Background()

	for day := 1; day <= 6; day++ {
		_, err := svc.RecordDay(ctx, recordReq(time.Date(2026, time.April, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")))
		require.NoError(t, err)
	}

	// Day 7 closes the first cycle: the whole shift is overtime.
	resp, err := svc.RecordDay(ctx, recordReq("2026-04-07"))
	require.NoError(t, err)

	assert.True(t, resp.RegularHours.IsZero(), "regular hours: %s", resp.RegularHours)
	assert.True(t, resp.OvertimeHours.Equal(decimal.NewFromInt(8)), "overtime hours: %s", resp.OvertimeHours)
}

func TestPreviewDay_DoesNotPersist(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService("3000")

	resp, err := svc.PreviewDay(context.Background(), recordReq("2026-04-10"))
	require.NoError(t, err)

	assert.True(t, resp.IsValid)
	assert.True(t, resp.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.Empty(t, repo.entries)
}

func TestPreviewDay_InvalidInputIsAResultNotAnError(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("3000")

	req := recordReq("2026-04-10")
	req.CheckIn = strPtr("16:00")
	req.CheckOut = strPtr("08:00")

	resp, err := svc.PreviewDay(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.IsValid)
	assert.NotEmpty(t, resp.ValidationMessage)
}

func TestUpdateEntry_Recomputes(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("3000")
	ctx := context.Background()

	created, err := svc.RecordDay(ctx, recordReq("2026-04-10"))
	require.NoError(t, err)

	req := attendance.UpdateEntryRequest{
		ID:               created.ID,
		RecordDayRequest: recordReq("2026-04-10"),
	}
	req.CheckOut = strPtr("18:00")

	updated, err := svc.UpdateEntry(ctx, req)
	require.NoError(t, err)

	assert.True(t, updated.OvertimeHours.Equal(decimal.NewFromInt(2)), "overtime hours: %s", updated.OvertimeHours)
	assert.True(t, updated.DailyPay.Equal(decimal.RequireFromString("137.5")), "daily pay: %s", updated.DailyPay)
}

func TestDeleteEntry_MissingEntry(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("3000")

	err := svc.DeleteEntry(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}
