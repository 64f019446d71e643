package models

// SummaryRow represents one row of the per-student summary table.
// AverageScore is a percentage in [0,100]; AttendanceRate and
// SubmissionRate are fractions in [0,1].
type SummaryRow struct {
	ID             string  `csv:"ID" db:"id" json:"id"`
	Name           string  `csv:"Name" db:"name" json:"name"`
	Class          string  `csv:"Class" db:"class" json:"class"`
	Section        string  `csv:"Section" db:"section" json:"section"`
	Gender         string  `csv:"Gender" db:"gender" json:"gender"`
	AverageScore   float64 `csv:"Average Score" db:"average_score" json:"average_score"`
	AttendanceRate float64 `csv:"Attendance Rate" db:"attendance_rate" json:"attendance_rate"`
	SubmissionRate float64 `csv:"Submission Rate" db:"submission_rate" json:"submission_rate"`
}
