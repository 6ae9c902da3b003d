package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EntryRepository {
	return &attendanceRepositoryImpl{db: db}
}

const entryColumns = `id, user_id, user_name, date, status, check_in, check_out,
			   regular_hours, overtime_hours, daily_pay, notes, created_at, updated_at`

func scanEntry(row pgx.Row) (attendance.Entry, error) {
	var e attendance.Entry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.UserName,
		&e.Date,
		&e.Status,
		&e.CheckIn,
		&e.CheckOut,
		&e.RegularHours,
		&e.OvertimeHours,
		&e.DailyPay,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements attendance.EntryRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries (
			id, user_id, user_name, date, status, check_in, check_out,
			regular_hours, overtime_hours, daily_pay, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + entryColumns

	created, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.UserName,
		entry.Date,
		entry.Status,
		entry.CheckIn,
		entry.CheckOut,
		entry.RegularHours,
		entry.OvertimeHours,
		entry.DailyPay,
		entry.Notes,
	))
	if err != nil {
		return attendance.Entry{}, err
	}

	return created, nil
}

// GetByID implements attendance.EntryRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM attendance_entries WHERE id = $1`

	found, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Entry{}, attendance.ErrEntryNotFound
		}
		return attendance.Entry{}, err
	}

	return found, nil
}

// GetByUserAndDate implements attendance.EntryRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM attendance_entries WHERE user_id = $1 AND date = $2`

	found, err := scanEntry(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &found, nil
}

// List implements attendance.EntryRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.EntryFilter) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries
		WHERE date BETWEEN $1 AND $2
		  AND ($3::text IS NULL OR user_id = $3)
		ORDER BY date, user_name
	`

	rows, err := q.Query(ctx, query, filter.StartDate, filter.EndDate, filter.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Update implements attendance.EntryRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, entry attendance.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_entries
		SET user_id = $1, user_name = $2, date = $3, status = $4, check_in = $5, check_out = $6,
			regular_hours = $7, overtime_hours = $8, daily_pay = $9, notes = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		entry.UserID,
		entry.UserName,
		entry.Date,
		entry.Status,
		entry.CheckIn,
		entry.CheckOut,
		entry.RegularHours,
		entry.OvertimeHours,
		entry.DailyPay,
		entry.Notes,
		entry.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}

// Delete implements attendance.EntryRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}
