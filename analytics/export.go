package analytics

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/classpulse/dashboard/models"
)

// ExportHeader is the column order of an exported cohort, matching
// the summary source schema so an export re-parses as a summary
// table.
var ExportHeader = []string{
	"ID", "Name", "Class", "Section", "Gender",
	"Average Score", "Attendance Rate", "Submission Rate",
}

// ExportCohort writes the cohort as CSV: header plus one row per
// student. IDs stay textual and numeric fields round-trip without
// precision loss.
func ExportCohort(w io.Writer, cohort []models.SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	for _, r := range cohort {
		rec := []string{
			r.ID, r.Name, r.Class, r.Section, r.Gender,
			strconv.FormatFloat(r.AverageScore, 'g', -1, 64),
			strconv.FormatFloat(r.AttendanceRate, 'g', -1, 64),
			strconv.FormatFloat(r.SubmissionRate, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
