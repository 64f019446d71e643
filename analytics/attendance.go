package analytics

import (
	"database/sql"
	"sort"

	"github.com/classpulse/dashboard/models"
)

// MonthlyRate is the cohort attendance rate for one calendar month,
// formatted "2006-01". Rate is present/(present+absent), always in
// [0,1]: months never appear with zero observations.
type MonthlyRate struct {
	Month   string
	Present int
	Absent  int
	Rate    float64
}

// MonthlyAttendance inner-joins attendance to the cohort and buckets
// by calendar month. Rows with an unknown date are skipped; months
// with no observations are omitted rather than reported as zero.
func MonthlyAttendance(attendance []models.AttendanceRow, cohort []models.SummaryRow) []MonthlyRate {
	ids := cohortIDs(cohort)

	type counts struct{ present, absent int }
	byMonth := make(map[string]*counts)
	for _, r := range attendance {
		if _, ok := ids[r.ID]; !ok {
			continue
		}
		if r.Date.IsZero() {
			continue
		}
		m := r.Date.Format("2006-01")
		c := byMonth[m]
		if c == nil {
			c = &counts{}
			byMonth[m] = c
		}
		if r.Present {
			c.present++
		} else {
			c.absent++
		}
	}

	out := make([]MonthlyRate, 0, len(byMonth))
	for m, c := range byMonth {
		total := c.present + c.absent
		out = append(out, MonthlyRate{
			Month:   m,
			Present: c.present,
			Absent:  c.absent,
			Rate:    float64(c.present) / float64(total),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// AttendanceBreakdown counts one student's present and absent days.
type AttendanceBreakdown struct {
	Present int
	Absent  int
}

// Rate returns present/(present+absent), invalid when the student has
// no attendance records.
func (b AttendanceBreakdown) Rate() sql.NullFloat64 {
	total := b.Present + b.Absent
	if total == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: float64(b.Present) / float64(total), Valid: true}
}

// StudentAttendance counts present vs absent days over the student's
// full attendance history. Deliberately not cohort-filtered: the
// per-student view always covers everything recorded for that ID.
func StudentAttendance(attendance []models.AttendanceRow, id string) AttendanceBreakdown {
	var b AttendanceBreakdown
	for _, r := range attendance {
		if r.ID != id {
			continue
		}
		if r.Present {
			b.Present++
		} else {
			b.Absent++
		}
	}
	return b
}
