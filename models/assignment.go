package models

import "time"

// AssignmentRow represents one assignment given to one student.
// A zero Deadline means the source date could not be parsed.
// Marks is only meaningful when Submitted is true.
type AssignmentRow struct {
	ID         string    `csv:"ID" db:"id" json:"id"`
	Assignment string    `csv:"Assignment" db:"assignment" json:"assignment"`
	Subject    string    `csv:"Subject" db:"subject" json:"subject"`
	Deadline   time.Time `csv:"Deadline" db:"deadline" json:"deadline"`
	Submitted  bool      `csv:"Submitted" db:"submitted" json:"submitted"`
	Marks      float64   `csv:"Marks" db:"marks" json:"marks"`
}
