package analytics

import (
	"database/sql"
	"math"
	"sort"

	"github.com/classpulse/dashboard/models"
)

// ScatterPoint is one cohort member projected onto the three summary
// metrics, tagged with Class for grouping. Rendering is up to the
// caller.
type ScatterPoint struct {
	ID             string
	Name           string
	Class          string
	AverageScore   float64
	AttendanceRate float64
	SubmissionRate float64
}

// ScatterPoints prepares the pairwise-scatter data for a cohort,
// grouped by Class. Within a class, cohort order is kept.
func ScatterPoints(cohort []models.SummaryRow) []ScatterPoint {
	pts := make([]ScatterPoint, 0, len(cohort))
	for _, r := range cohort {
		pts = append(pts, ScatterPoint{
			ID:             r.ID,
			Name:           r.Name,
			Class:          r.Class,
			AverageScore:   r.AverageScore,
			AttendanceRate: r.AttendanceRate,
			SubmissionRate: r.SubmissionRate,
		})
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Class < pts[j].Class })
	return pts
}

// MetricPair is the Pearson correlation between two summary metrics
// over the cohort. R is invalid when fewer than two students are
// present or either metric has zero variance.
type MetricPair struct {
	X, Y    string
	R       sql.NullFloat64
	Samples int
}

// CorrelationMatrix computes the pairwise correlations among the
// three summary metrics.
func CorrelationMatrix(cohort []models.SummaryRow) []MetricPair {
	var scores, att, sub []float64
	for _, r := range cohort {
		scores = append(scores, r.AverageScore)
		att = append(att, r.AttendanceRate)
		sub = append(sub, r.SubmissionRate)
	}
	return []MetricPair{
		{X: "Average Score", Y: "Attendance Rate", R: pearson(scores, att), Samples: len(cohort)},
		{X: "Average Score", Y: "Submission Rate", R: pearson(scores, sub), Samples: len(cohort)},
		{X: "Attendance Rate", Y: "Submission Rate", R: pearson(att, sub), Samples: len(cohort)},
	}
}

func pearson(xs, ys []float64) sql.NullFloat64 {
	n := len(xs)
	if n < 2 {
		return sql.NullFloat64{}
	}
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/float64(n), sumY/float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: cov / math.Sqrt(varX*varY), Valid: true}
}
