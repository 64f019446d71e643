package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/dashboard/models"
)

func sampleRemarks() []models.RemarkRow {
	return []models.RemarkRow{
		{ID: "1", Date: day("2024-02-01"), Teacher: "Mrs. Verma", Remark: "Good"},
		{ID: "1", Date: day("2024-03-01"), Teacher: "Mr. Das", Remark: "Excellent"},
		{ID: "1", Date: day("2024-03-01"), Teacher: "Mrs. Verma", Remark: "Excellent"},
		{ID: "2", Date: day("2024-02-15"), Teacher: "Mr. Das", Remark: "Good"},
		{ID: "9", Date: day("2024-02-20"), Teacher: "Mr. Das", Remark: "Poor"}, // orphan ID
	}
}

func TestRemarkCounts(t *testing.T) {
	counts := RemarkCounts(sampleRemarks(), sampleSummary())
	require.Len(t, counts, 2, "orphan rows must not contribute categories")

	assert.Equal(t, RemarkCount{Remark: "Excellent", Count: 2}, counts[0])
	assert.Equal(t, RemarkCount{Remark: "Good", Count: 2}, counts[1])
}

func TestRemarkCountsEmptyCohort(t *testing.T) {
	assert.Empty(t, RemarkCounts(sampleRemarks(), nil))
}

func TestStudentRemarksNewestFirst(t *testing.T) {
	remarks := StudentRemarks(sampleRemarks(), "1")
	require.Len(t, remarks, 3)
	assert.Equal(t, day("2024-03-01"), remarks[0].Date)
	assert.Equal(t, day("2024-03-01"), remarks[1].Date)
	assert.Equal(t, day("2024-02-01"), remarks[2].Date)
}

func TestStudentRemarksUnknownDatesSortLast(t *testing.T) {
	rows := []models.RemarkRow{
		{ID: "1", Remark: "Good"}, // unknown date
		{ID: "1", Date: day("2024-01-05"), Remark: "Excellent"},
	}

	remarks := StudentRemarks(rows, "1")
	require.Len(t, remarks, 2)
	assert.Equal(t, "Excellent", remarks[0].Remark)
	assert.True(t, remarks[1].Date.IsZero())
}

func TestRemarkTrendIsSparse(t *testing.T) {
	trend := RemarkTrend(sampleRemarks(), "1")
	require.Len(t, trend, 2, "day/category pairs with no remarks are absent")

	assert.Equal(t, RemarkTrendPoint{Date: "2024-02-01", Remark: "Good", Count: 1}, trend[0])
	assert.Equal(t, RemarkTrendPoint{Date: "2024-03-01", Remark: "Excellent", Count: 2}, trend[1])

	assert.Empty(t, RemarkTrend(sampleRemarks(), "404"))
}
