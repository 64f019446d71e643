package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/dashboard/models"
)

func TestScatterPointsProjectCohort(t *testing.T) {
	cohort := sampleSummary()

	pts := ScatterPoints(cohort)
	require.Len(t, pts, len(cohort))
	assert.Equal(t, "1", pts[0].ID)
	assert.Equal(t, "10", pts[0].Class)
	assert.Equal(t, 82.0, pts[0].AverageScore)
}

func TestScatterPointsGroupByClass(t *testing.T) {
	cohort := []models.SummaryRow{
		{ID: "1", Class: "10"},
		{ID: "2", Class: "9"},
		{ID: "3", Class: "10"},
		{ID: "4", Class: "9"},
	}

	pts := ScatterPoints(cohort)
	require.Len(t, pts, 4)

	// classes come out contiguous, cohort order kept within a class
	got := make([]string, 0, len(pts))
	for _, p := range pts {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"1", "3", "2", "4"}, got)
}

func TestCorrelationMatrix(t *testing.T) {
	// attendance moves exactly with score, submission against it
	cohort := []models.SummaryRow{
		{AverageScore: 50, AttendanceRate: 0.5, SubmissionRate: 0.9},
		{AverageScore: 70, AttendanceRate: 0.7, SubmissionRate: 0.7},
		{AverageScore: 90, AttendanceRate: 0.9, SubmissionRate: 0.5},
	}

	pairs := CorrelationMatrix(cohort)
	require.Len(t, pairs, 3)

	scoreAtt := pairs[0]
	require.True(t, scoreAtt.R.Valid)
	assert.InDelta(t, 1.0, scoreAtt.R.Float64, 1e-9)

	scoreSub := pairs[1]
	require.True(t, scoreSub.R.Valid)
	assert.InDelta(t, -1.0, scoreSub.R.Float64, 1e-9)
}

func TestCorrelationUndefinedCases(t *testing.T) {
	// fewer than two students
	pairs := CorrelationMatrix([]models.SummaryRow{{AverageScore: 80}})
	for _, p := range pairs {
		assert.False(t, p.R.Valid)
	}

	// zero variance in one metric
	flat := []models.SummaryRow{
		{AverageScore: 80, AttendanceRate: 0.9},
		{AverageScore: 60, AttendanceRate: 0.9},
	}
	pairs = CorrelationMatrix(flat)
	assert.False(t, pairs[0].R.Valid, "constant series has no defined correlation")
}
