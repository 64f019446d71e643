package analytics

import (
	"sort"

	"github.com/classpulse/dashboard/models"
)

// Key funcs for TopN over the summary metrics.
func AverageScore(r models.SummaryRow) float64   { return r.AverageScore }
func AttendanceRate(r models.SummaryRow) float64 { return r.AttendanceRate }
func SubmissionRate(r models.SummaryRow) float64 { return r.SubmissionRate }

// TopN returns up to n cohort rows ordered by key, descending unless
// ascending is set. Ties keep their original cohort order.
func TopN(cohort []models.SummaryRow, key func(models.SummaryRow) float64, n int, ascending bool) []models.SummaryRow {
	if n <= 0 {
		return nil
	}
	ranked := make([]models.SummaryRow, len(cohort))
	copy(ranked, cohort)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return key(ranked[i]) < key(ranked[j])
		}
		return key(ranked[i]) > key(ranked[j])
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// TopPerformers returns the n highest average scores in the cohort.
func TopPerformers(cohort []models.SummaryRow, n int) []models.SummaryRow {
	return TopN(cohort, AverageScore, n, false)
}

// BottomPerformers returns the n lowest average scores in the cohort.
func BottomPerformers(cohort []models.SummaryRow, n int) []models.SummaryRow {
	return TopN(cohort, AverageScore, n, true)
}
