package analytics

import (
	"database/sql"

	"github.com/classpulse/dashboard/models"
)

// Overview holds the headline cohort metrics. The three means are
// invalid when the cohort is empty: "no students" is not the same as
// "average is zero".
type Overview struct {
	Students       int
	AverageScore   sql.NullFloat64
	AttendanceRate sql.NullFloat64
	SubmissionRate sql.NullFloat64
}

// Summarize computes the overview metrics for a cohort.
func Summarize(cohort []models.SummaryRow) Overview {
	ov := Overview{Students: len(cohort)}
	if len(cohort) == 0 {
		return ov
	}
	var score, att, sub float64
	for _, r := range cohort {
		score += r.AverageScore
		att += r.AttendanceRate
		sub += r.SubmissionRate
	}
	n := float64(len(cohort))
	ov.AverageScore = sql.NullFloat64{Float64: score / n, Valid: true}
	ov.AttendanceRate = sql.NullFloat64{Float64: att / n, Valid: true}
	ov.SubmissionRate = sql.NullFloat64{Float64: sub / n, Valid: true}
	return ov
}
