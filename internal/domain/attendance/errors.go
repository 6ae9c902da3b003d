package attendance

import "errors"

// Attendance domain errors
var (
	ErrEntryNotFound      = errors.New("attendance entry not found")
	ErrEntryExists        = errors.New("attendance entry already exists for this user on this date")
	ErrFutureDate         = errors.New("cannot record attendance for a future date")
	ErrInvalidStatus      = errors.New("invalid attendance status")
	ErrInvalidCalculation = errors.New("attendance calculation failed validation")
	ErrSalaryRequired     = errors.New("monthly salary must be set before saving a paid attendance entry")
)
