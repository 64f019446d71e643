package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/dashboard/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthlyAttendance(t *testing.T) {
	cohort := sampleSummary()
	attendance := []models.AttendanceRow{
		{ID: "1", Date: day("2024-01-10"), Present: true},
		{ID: "1", Date: day("2024-01-11"), Present: false},
		{ID: "2", Date: day("2024-01-12"), Present: true},
		{ID: "1", Date: day("2024-03-05"), Present: true},
		{ID: "9", Date: day("2024-02-01"), Present: true}, // orphan ID
		{ID: "1", Present: true},                          // unknown date
	}

	trend := MonthlyAttendance(attendance, cohort)
	require.Len(t, trend, 2, "February has no cohort observations and must be absent")

	jan := trend[0]
	assert.Equal(t, "2024-01", jan.Month)
	assert.Equal(t, 2, jan.Present)
	assert.Equal(t, 1, jan.Absent)
	assert.InDelta(t, 2.0/3.0, jan.Rate, 1e-9)

	mar := trend[1]
	assert.Equal(t, "2024-03", mar.Month)
	assert.InDelta(t, 1.0, mar.Rate, 1e-9)

	for _, m := range trend {
		assert.GreaterOrEqual(t, m.Rate, 0.0)
		assert.LessOrEqual(t, m.Rate, 1.0)
	}
}

func TestMonthlyAttendanceEmpty(t *testing.T) {
	assert.Empty(t, MonthlyAttendance(nil, sampleSummary()))
	assert.Empty(t, MonthlyAttendance([]models.AttendanceRow{{ID: "1", Date: day("2024-01-10")}}, nil))
}

func TestStudentAttendanceUsesFullHistory(t *testing.T) {
	attendance := []models.AttendanceRow{
		{ID: "1", Date: day("2024-01-10"), Present: true},
		{ID: "1", Date: day("2024-01-11"), Present: true},
		{ID: "1", Date: day("2024-01-12"), Present: false},
		{ID: "2", Date: day("2024-01-10"), Present: true},
	}

	b := StudentAttendance(attendance, "1")
	assert.Equal(t, 2, b.Present)
	assert.Equal(t, 1, b.Absent)

	rate := b.Rate()
	require.True(t, rate.Valid)
	assert.InDelta(t, 2.0/3.0, rate.Float64, 1e-9)
}

func TestStudentAttendanceNoRecords(t *testing.T) {
	b := StudentAttendance(nil, "1")
	assert.Equal(t, AttendanceBreakdown{}, b)
	assert.False(t, b.Rate().Valid, "zero denominator must be N/A, not 0")
}
