package analytics

import (
	"sort"

	"github.com/classpulse/dashboard/models"
)

// RemarkCount is the cohort-wide frequency of one remark category.
type RemarkCount struct {
	Remark string
	Count  int
}

// RemarkCounts inner-joins remarks to the cohort and counts each
// remark category, most frequent first (ties alphabetical).
func RemarkCounts(remarks []models.RemarkRow, cohort []models.SummaryRow) []RemarkCount {
	ids := cohortIDs(cohort)

	counts := make(map[string]int)
	for _, r := range remarks {
		if _, ok := ids[r.ID]; ok {
			counts[r.Remark]++
		}
	}

	out := make([]RemarkCount, 0, len(counts))
	for remark, n := range counts {
		out = append(out, RemarkCount{Remark: remark, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Remark < out[j].Remark
	})
	return out
}

// StudentRemarks returns all remarks for one student, newest first.
// Remarks with an unknown date sort last.
func StudentRemarks(remarks []models.RemarkRow, id string) []models.RemarkRow {
	var out []models.RemarkRow
	for _, r := range remarks {
		if r.ID == id {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[j].Date.IsZero() {
			return !out[i].Date.IsZero()
		}
		if out[i].Date.IsZero() {
			return false
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// RemarkTrendPoint is the count of one remark category on one day,
// formatted "2006-01-02". The series is sparse: day/category pairs
// with no remarks are absent, not zero-filled.
type RemarkTrendPoint struct {
	Date   string
	Remark string
	Count  int
}

// RemarkTrend builds the per-day remark-category series for one
// student, sorted by day then category. Remarks with an unknown date
// are skipped.
func RemarkTrend(remarks []models.RemarkRow, id string) []RemarkTrendPoint {
	type key struct{ date, remark string }
	counts := make(map[key]int)
	for _, r := range remarks {
		if r.ID != id || r.Date.IsZero() {
			continue
		}
		counts[key{r.Date.Format("2006-01-02"), r.Remark}]++
	}

	out := make([]RemarkTrendPoint, 0, len(counts))
	for k, n := range counts {
		out = append(out, RemarkTrendPoint{Date: k.date, Remark: k.remark, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Remark < out[j].Remark
	})
	return out
}
