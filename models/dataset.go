package models

// Dataset bundles the six base tables loaded for a session. The
// tables are loaded once and treated as read-only afterwards; every
// derived view is recomputed from them.
type Dataset struct {
	Profiles    []Profile
	Assignments []AssignmentRow
	Attendance  []AttendanceRow
	Remarks     []RemarkRow
	Scores      []ScoreRow
	Summary     []SummaryRow
}
