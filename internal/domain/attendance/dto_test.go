package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestRecordDayRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := RecordDayRequest{
		UserID:   "user-1",
		Date:     "2026-03-10",
		Status:   "present",
		CheckIn:  strPtr("08:00"),
		CheckOut: strPtr("16:00"),
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *RecordDayRequest)
		field  string
	}{
		{"missing user", func(r *RecordDayRequest) { r.UserID = " " }, "user_id"},
		{"bad date", func(r *RecordDayRequest) { r.Date = "10-03-2026" }, "date"},
		{"unknown status", func(r *RecordDayRequest) { r.Status = "vacation" }, "status"},
		{"bad check-in", func(r *RecordDayRequest) { r.CheckIn = strPtr("8am") }, "check_in"},
		{"bad check-out", func(r *RecordDayRequest) { r.CheckOut = strPtr("25:00") }, "check_out"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestRecordDayRequest_ClockTimes(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	req := RecordDayRequest{CheckIn: strPtr("08:30"), CheckOut: strPtr("16:15")}
	checkIn, checkOut := req.ClockTimes(date)
	require.NotNil(t, checkIn)
	require.NotNil(t, checkOut)
	assert.Equal(t, time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC), *checkIn)
	assert.Equal(t, time.Date(2026, time.March, 10, 16, 15, 0, 0, time.UTC), *checkOut)

	empty := RecordDayRequest{CheckIn: strPtr(""), CheckOut: nil}
	checkIn, checkOut = empty.ClockTimes(date)
	assert.Nil(t, checkIn)
	assert.Nil(t, checkOut)
}

func TestEntryFilter_Validate(t *testing.T) {
	t.Parallel()

	ok := EntryFilter{StartDate: "2026-03-01", EndDate: "2026-03-31"}
	assert.NoError(t, ok.Validate())

	inverted := EntryFilter{StartDate: "2026-03-31", EndDate: "2026-03-01"}
	err := inverted.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "end_date")
}
