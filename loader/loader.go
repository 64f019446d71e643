package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/classpulse/dashboard/models"
)

// Source file names, one per base table
const (
	ProfilesFile    = "student_profiles.csv"
	AssignmentsFile = "student_assignments.csv"
	AttendanceFile  = "student_attendance.csv"
	RemarksFile     = "student_remarks.csv"
	ScoresFile      = "student_scores.csv"
	SummaryFile     = "student_summary.csv"
)

// Date formats accepted in Deadline/Date columns, tried in order
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// Load reads the six base tables from dir. Any structural failure on
// any file aborts the whole load with a single error; a partially
// loaded Dataset is never returned.
func Load(dir string) (*models.Dataset, error) {
	ds := &models.Dataset{}

	steps := []struct {
		file string
		read func(io.Reader) error
	}{
		{ProfilesFile, func(r io.Reader) (err error) { ds.Profiles, err = ReadProfiles(r); return }},
		{AssignmentsFile, func(r io.Reader) (err error) { ds.Assignments, err = ReadAssignments(r); return }},
		{AttendanceFile, func(r io.Reader) (err error) { ds.Attendance, err = ReadAttendance(r); return }},
		{RemarksFile, func(r io.Reader) (err error) { ds.Remarks, err = ReadRemarks(r); return }},
		{ScoresFile, func(r io.Reader) (err error) { ds.Scores, err = ReadScores(r); return }},
		{SummaryFile, func(r io.Reader) (err error) { ds.Summary, err = ReadSummary(r); return }},
	}

	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", step.file, err)
		}
		err = step.read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", step.file, err)
		}
	}

	logOrphans(ds)
	return ds, nil
}

// ReadProfiles parses the profiles table from r.
func ReadProfiles(r io.Reader) ([]models.Profile, error) {
	rows, idx, err := readTable(r, "ID", "Name", "Class", "Section", "Gender")
	if err != nil {
		return nil, err
	}
	out := make([]models.Profile, 0, len(rows))
	for _, rec := range rows {
		out = append(out, models.Profile{
			ID:      NormalizeID(rec[idx["ID"]]),
			Name:    strings.TrimSpace(rec[idx["Name"]]),
			Class:   strings.TrimSpace(rec[idx["Class"]]),
			Section: strings.TrimSpace(rec[idx["Section"]]),
			Gender:  strings.TrimSpace(rec[idx["Gender"]]),
		})
	}
	return out, nil
}

// ReadSummary parses the summary table from r.
func ReadSummary(r io.Reader) ([]models.SummaryRow, error) {
	rows, idx, err := readTable(r, "ID", "Name", "Class", "Section", "Gender",
		"Average Score", "Attendance Rate", "Submission Rate")
	if err != nil {
		return nil, err
	}
	out := make([]models.SummaryRow, 0, len(rows))
	for _, rec := range rows {
		out = append(out, models.SummaryRow{
			ID:             NormalizeID(rec[idx["ID"]]),
			Name:           strings.TrimSpace(rec[idx["Name"]]),
			Class:          strings.TrimSpace(rec[idx["Class"]]),
			Section:        strings.TrimSpace(rec[idx["Section"]]),
			Gender:         strings.TrimSpace(rec[idx["Gender"]]),
			AverageScore:   parseFloat(rec[idx["Average Score"]]),
			AttendanceRate: parseFloat(rec[idx["Attendance Rate"]]),
			SubmissionRate: parseFloat(rec[idx["Submission Rate"]]),
		})
	}
	return out, nil
}

// ReadScores parses the scores table from r.
func ReadScores(r io.Reader) ([]models.ScoreRow, error) {
	rows, idx, err := readTable(r, "ID", "Subject", "Term", "Score")
	if err != nil {
		return nil, err
	}
	out := make([]models.ScoreRow, 0, len(rows))
	for _, rec := range rows {
		out = append(out, models.ScoreRow{
			ID:      NormalizeID(rec[idx["ID"]]),
			Subject: strings.TrimSpace(rec[idx["Subject"]]),
			Term:    strings.TrimSpace(rec[idx["Term"]]),
			Score:   parseFloat(rec[idx["Score"]]),
		})
	}
	return out, nil
}

// ReadAssignments parses the assignments table from r.
func ReadAssignments(r io.Reader) ([]models.AssignmentRow, error) {
	rows, idx, err := readTable(r, "ID", "Assignment", "Subject", "Deadline", "Submitted", "Marks")
	if err != nil {
		return nil, err
	}
	out := make([]models.AssignmentRow, 0, len(rows))
	for _, rec := range rows {
		out = append(out, models.AssignmentRow{
			ID:         NormalizeID(rec[idx["ID"]]),
			Assignment: strings.TrimSpace(rec[idx["Assignment"]]),
			Subject:    strings.TrimSpace(rec[idx["Subject"]]),
			Deadline:   parseDate(rec[idx["Deadline"]]),
			Submitted:  parseBool(rec[idx["Submitted"]]),
			Marks:      parseFloat(rec[idx["Marks"]]),
		})
	}
	return out, nil
}

// ReadAttendance parses the attendance table from r.
func ReadAttendance(r io.Reader) ([]models.AttendanceRow, error) {
	rows, idx, err := readTable(r, "ID", "Date", "Present")
	if err != nil {
		return nil, err
	}
	out := make([]models.AttendanceRow, 0, len(rows))
	for _, rec := range rows {
		out = append(out, models.AttendanceRow{
			ID:      NormalizeID(rec[idx["ID"]]),
			Date:    parseDate(rec[idx["Date"]]),
			Present: parseBool(rec[idx["Present"]]),
		})
	}
	return out, nil
}

// ReadRemarks parses the remarks table from r.
func ReadRemarks(r io.Reader) ([]models.RemarkRow, error) {
	rows, idx, err := readTable(r, "ID", "Date", "Teacher", "Remark")
	if err != nil {
		return nil, err
	}
	out := make([]models.RemarkRow, 0, len(rows))
	for _, rec := range rows {
		out = append(out, models.RemarkRow{
			ID:      NormalizeID(rec[idx["ID"]]),
			Date:    parseDate(rec[idx["Date"]]),
			Teacher: strings.TrimSpace(rec[idx["Teacher"]]),
			Remark:  strings.TrimSpace(rec[idx["Remark"]]),
		})
	}
	return out, nil
}

// readTable reads all CSV records from r and resolves the required
// column names against the header row. A missing column is a
// structural failure.
func readTable(r io.Reader, required ...string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", name)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, idx, nil
}

// NormalizeID converts a raw ID cell to its canonical textual form.
// Sources that encode IDs numerically produce values like "1042.0";
// those collapse to "1042". Anything non-numeric is kept as trimmed
// text.
func NormalizeID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if strings.ContainsAny(s, "eE") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

// parseFloat coerces a numeric cell, best effort. Unparseable cells
// become 0 rather than failing the load.
func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseBool coerces a boolean cell, best effort. Recognizes the
// spellings common in spreadsheet exports; anything else is false.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "1", "yes", "y":
		return true
	}
	return false
}

// parseDate coerces a date cell. Unparseable values become the zero
// time, the "unknown date" marker, rather than failing the load.
func parseDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// logOrphans warns once per detail table about rows whose ID has no
// matching summary row. Such rows are silently dropped from every
// joined view, so a nonzero count here usually means the sources are
// out of sync.
func logOrphans(ds *models.Dataset) {
	known := make(map[string]struct{}, len(ds.Summary))
	for _, s := range ds.Summary {
		known[s.ID] = struct{}{}
	}

	count := func(ids []string) int {
		n := 0
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				n++
			}
		}
		return n
	}

	var scoreIDs, asgIDs, attIDs, remIDs []string
	for _, r := range ds.Scores {
		scoreIDs = append(scoreIDs, r.ID)
	}
	for _, r := range ds.Assignments {
		asgIDs = append(asgIDs, r.ID)
	}
	for _, r := range ds.Attendance {
		attIDs = append(attIDs, r.ID)
	}
	for _, r := range ds.Remarks {
		remIDs = append(remIDs, r.ID)
	}

	for _, t := range []struct {
		name string
		n    int
	}{
		{"scores", count(scoreIDs)},
		{"assignments", count(asgIDs)},
		{"attendance", count(attIDs)},
		{"remarks", count(remIDs)},
	} {
		if t.n > 0 {
			log.Printf("loader: %d %s rows reference IDs missing from summary", t.n, t.name)
		}
	}
}
