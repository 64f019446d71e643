package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/dashboard/models"
)

func sampleScores() []models.ScoreRow {
	return []models.ScoreRow{
		{ID: "1", Subject: "Math", Term: "T1", Score: 80},
		{ID: "1", Subject: "Math", Term: "T2", Score: 90},
		{ID: "1", Subject: "Science", Term: "T1", Score: 70},
		{ID: "2", Subject: "Math", Term: "T1", Score: 60},
		{ID: "9", Subject: "Math", Term: "T1", Score: 100}, // no summary row
	}
}

func TestJoinScoresDropsOrphans(t *testing.T) {
	cohort := sampleSummary()

	joined := JoinScores(sampleScores(), cohort)
	require.Len(t, joined, 4)
	for _, r := range joined {
		assert.NotEqual(t, "9", r.ID, "rows without a cohort member are dropped")
	}

	assert.Nil(t, JoinScores(sampleScores(), nil))
}

func TestSubjectMeans(t *testing.T) {
	joined := JoinScores(sampleScores(), sampleSummary())

	means := SubjectMeans(joined)
	require.Len(t, means, 2)

	assert.Equal(t, "Math", means[0].Subject)
	assert.InDelta(t, (80.0+90+60)/3, means[0].Mean, 1e-9)
	assert.Equal(t, 3, means[0].Count)

	assert.Equal(t, "Science", means[1].Subject)
	assert.InDelta(t, 70.0, means[1].Mean, 1e-9)
}

func TestSubjectTermMeansReconcileWithSubjectMeans(t *testing.T) {
	joined := JoinScores(sampleScores(), sampleSummary())

	bySubject := SubjectMeans(joined)
	bySubjectTerm := SubjectTermMeans(joined)

	// re-aggregating term means weighted by row count must reproduce
	// the direct subject means
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range bySubjectTerm {
		sums[m.Subject] += m.Mean * float64(m.Count)
		counts[m.Subject] += m.Count
	}
	for _, m := range bySubject {
		require.Contains(t, sums, m.Subject)
		assert.InDelta(t, m.Mean, sums[m.Subject]/float64(counts[m.Subject]), 1e-9)
		assert.Equal(t, m.Count, counts[m.Subject])
	}
}

func TestSubjectMeansEmptyInput(t *testing.T) {
	assert.Empty(t, SubjectMeans(nil))
	assert.Empty(t, SubjectTermMeans(nil))
}

func TestStudentScores(t *testing.T) {
	scores := StudentScores(sampleScores(), "1")
	require.Len(t, scores, 3)
	assert.Equal(t, "Math", scores[0].Subject)

	assert.Empty(t, StudentScores(sampleScores(), "404"))
}
