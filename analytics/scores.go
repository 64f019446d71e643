package analytics

import (
	"sort"

	"github.com/classpulse/dashboard/models"
)

// SubjectMean is the mean score over all cohort rows for one subject.
type SubjectMean struct {
	Subject string
	Mean    float64
	Count   int
}

// SubjectTermMean is the mean score for one subject in one term.
type SubjectTermMean struct {
	Subject string
	Term    string
	Mean    float64
	Count   int
}

// JoinScores inner-joins the scores table against the cohort on ID.
// Rows with no matching cohort member are dropped.
func JoinScores(scores []models.ScoreRow, cohort []models.SummaryRow) []models.ScoreRow {
	ids := cohortIDs(cohort)
	var joined []models.ScoreRow
	for _, r := range scores {
		if _, ok := ids[r.ID]; ok {
			joined = append(joined, r)
		}
	}
	return joined
}

// SubjectMeans groups joined score rows by subject and averages the
// scores, sorted by subject.
func SubjectMeans(scores []models.ScoreRow) []SubjectMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range scores {
		sums[r.Subject] += r.Score
		counts[r.Subject]++
	}

	out := make([]SubjectMean, 0, len(sums))
	for subject, sum := range sums {
		out = append(out, SubjectMean{
			Subject: subject,
			Mean:    sum / float64(counts[subject]),
			Count:   counts[subject],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

// SubjectTermMeans groups joined score rows by (subject, term) and
// averages the scores, sorted by subject then term.
func SubjectTermMeans(scores []models.ScoreRow) []SubjectTermMean {
	type key struct{ subject, term string }
	sums := make(map[key]float64)
	counts := make(map[key]int)
	for _, r := range scores {
		k := key{r.Subject, r.Term}
		sums[k] += r.Score
		counts[k]++
	}

	out := make([]SubjectTermMean, 0, len(sums))
	for k, sum := range sums {
		out = append(out, SubjectTermMean{
			Subject: k.subject,
			Term:    k.term,
			Mean:    sum / float64(counts[k]),
			Count:   counts[k],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// StudentScores returns all score rows for one student in table
// order.
func StudentScores(scores []models.ScoreRow, id string) []models.ScoreRow {
	var out []models.ScoreRow
	for _, r := range scores {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out
}
