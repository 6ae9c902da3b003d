package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sweetlane/pos-backend-go/internal/domain/attendance"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

type entryService struct {
	entryRepo attendance.EntryRepository
	userRepo  user.UserRepository
	engine    *Engine
}

// NewEntryService creates a new attendance entry service.
func NewEntryService(entryRepo attendance.EntryRepository, userRepo user.UserRepository, engine *Engine) attendance.EntryService {
	return &entryService{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		engine:    engine,
	}
}

func (s *entryService) PreviewDay(ctx context.Context, req attendance.RecordDayRequest) (attendance.DayResultResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResultResponse{}, err
	}

	date, err := req.ParsedDate()
	if err != nil {
		return attendance.DayResultResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.DayResultResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	result, err := s.calculate(ctx, u, date, req)
	if err != nil {
		return attendance.DayResultResponse{}, err
	}

	return attendance.ToDayResultResponse(result), nil
}

func (s *entryService) RecordDay(ctx context.Context, req attendance.RecordDayRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	date, err := req.ParsedDate()
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	if isFutureDate(date) {
		return attendance.EntryResponse{}, attendance.ErrFutureDate
	}

	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.entryRepo.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if existing != nil {
		return attendance.EntryResponse{}, attendance.ErrEntryExists
	}

	result, err := s.calculate(ctx, u, date, req)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	if !result.IsValid {
		return attendance.EntryResponse{}, fmt.Errorf("%w: %s", attendance.ErrInvalidCalculation, result.ValidationMessage)
	}
	if result.NeedsSalaryInput {
		return attendance.EntryResponse{}, attendance.ErrSalaryRequired
	}

	checkIn, checkOut := req.ClockTimes(date)
	now := time.Now()

	entry := attendance.Entry{
		ID:            uuid.New().String(),
		UserID:        u.ID,
		UserName:      u.Name,
		Date:          date,
		Status:        result.Status,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RegularHours:  result.RegularHours,
		OvertimeHours: result.OvertimeHours,
		DailyPay:      result.DailyPay,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to create entry: %w", err)
	}

	return attendance.ToEntryResponse(created), nil
}

func (s *entryService) UpdateEntry(ctx context.Context, req attendance.UpdateEntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	date, err := req.ParsedDate()
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	if isFutureDate(date) {
		return attendance.EntryResponse{}, attendance.ErrFutureDate
	}

	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Moving the entry to a day that is already taken is a conflict.
	if req.UserID != entry.UserID || !date.Equal(entry.Date) {
		existing, err := s.entryRepo.GetByUserAndDate(ctx, req.UserID, date)
		if err != nil {
			return attendance.EntryResponse{}, fmt.Errorf("failed to check existing entry: %w", err)
		}
		if existing != nil && existing.ID != entry.ID {
			return attendance.EntryResponse{}, attendance.ErrEntryExists
		}
	}

	result, err := s.calculate(ctx, u, date, req.RecordDayRequest)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	if !result.IsValid {
		return attendance.EntryResponse{}, fmt.Errorf("%w: %s", attendance.ErrInvalidCalculation, result.ValidationMessage)
	}
	if result.NeedsSalaryInput {
		return attendance.EntryResponse{}, attendance.ErrSalaryRequired
	}

	checkIn, checkOut := req.ClockTimes(date)

	entry.UserID = u.ID
	entry.UserName = u.Name
	entry.Date = date
	entry.Status = result.Status
	entry.CheckIn = checkIn
	entry.CheckOut = checkOut
	entry.RegularHours = result.RegularHours
	entry.OvertimeHours = result.OvertimeHours
	entry.DailyPay = result.DailyPay
	entry.Notes = req.Notes
	entry.UpdatedAt = time.Now()

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to update entry: %w", err)
	}

	return attendance.ToEntryResponse(entry), nil
}

func (s *entryService) GetEntry(ctx context.Context, id string) (attendance.EntryResponse, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	return attendance.ToEntryResponse(entry), nil
}

func (s *entryService) ListEntries(ctx context.Context, filter attendance.EntryFilter) ([]attendance.EntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, attendance.ToEntryResponse(entry))
	}
	return responses, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.entryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, id)
}

// calculate loads the month's entries so the engine can tell whether the date
// closes a work cycle, then runs the single-day calculation.
func (s *entryService) calculate(ctx context.Context, u user.User, date time.Time, req attendance.RecordDayRequest) (attendance.DayResult, error) {
	monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	filter := attendance.EntryFilter{
		UserID:    &u.ID,
		StartDate: monthStart.Format("2006-01-02"),
		EndDate:   date.Format("2006-01-02"),
	}

	entries, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return attendance.DayResult{}, fmt.Errorf("failed to list month entries: %w", err)
	}

	checkIn, checkOut := req.ClockTimes(date)
	cycleReached := s.engine.CycleReached(date, entries)

	return s.engine.CalculateDay(u, date, attendance.Status(req.Status), checkIn, checkOut, cycleReached), nil
}

func isFutureDate(date time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return date.After(today)
}
