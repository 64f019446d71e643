package analytics

import (
	"sort"
	"time"

	"github.com/classpulse/dashboard/models"
)

// CompletionRate is the percentage of assignments submitted for one
// subject across the cohort. Subjects with no assignments simply do
// not appear, which also keeps the denominator nonzero.
type CompletionRate struct {
	Subject   string
	Submitted int
	Total     int
	Rate      float64
}

// CompletionBySubject inner-joins assignments to the cohort and
// computes the per-subject completion rate, sorted by subject.
func CompletionBySubject(assignments []models.AssignmentRow, cohort []models.SummaryRow) []CompletionRate {
	ids := cohortIDs(cohort)

	submitted := make(map[string]int)
	total := make(map[string]int)
	for _, r := range assignments {
		if _, ok := ids[r.ID]; !ok {
			continue
		}
		total[r.Subject]++
		if r.Submitted {
			submitted[r.Subject]++
		}
	}

	out := make([]CompletionRate, 0, len(total))
	for subject, n := range total {
		if n == 0 {
			continue
		}
		out = append(out, CompletionRate{
			Subject:   subject,
			Submitted: submitted[subject],
			Total:     n,
			Rate:      float64(submitted[subject]) / float64(n) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

// UpcomingDeadlines returns up to limit cohort assignment rows whose
// deadline is at or after now, soonest first. Rows with an unknown
// deadline are skipped.
func UpcomingDeadlines(assignments []models.AssignmentRow, cohort []models.SummaryRow, now time.Time, limit int) []models.AssignmentRow {
	ids := cohortIDs(cohort)

	var upcoming []models.AssignmentRow
	for _, r := range assignments {
		if _, ok := ids[r.ID]; !ok {
			continue
		}
		if r.Deadline.IsZero() || r.Deadline.Before(now) {
			continue
		}
		upcoming = append(upcoming, r)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Deadline.Before(upcoming[j].Deadline)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// AssignmentBreakdown counts one student's submitted and missing
// assignments.
type AssignmentBreakdown struct {
	Submitted int
	Missing   int
}

// StudentAssignments counts submitted vs not-submitted over the
// student's full assignment history.
func StudentAssignments(assignments []models.AssignmentRow, id string) AssignmentBreakdown {
	var b AssignmentBreakdown
	for _, r := range assignments {
		if r.ID != id {
			continue
		}
		if r.Submitted {
			b.Submitted++
		} else {
			b.Missing++
		}
	}
	return b
}

// StudentMarksHistogram bins the marks of one student's submitted
// assignments. Nil means no submitted assignments exist, which the
// caller should render as not applicable rather than an empty chart.
func StudentMarksHistogram(assignments []models.AssignmentRow, id string, binCount int) []Bin {
	var marks []float64
	for _, r := range assignments {
		if r.ID == id && r.Submitted {
			marks = append(marks, r.Marks)
		}
	}
	return Histogram(marks, binCount)
}
