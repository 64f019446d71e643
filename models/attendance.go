package models

import "time"

// AttendanceRow represents one student's attendance on one day.
// A zero Date means the source date could not be parsed.
type AttendanceRow struct {
	ID      string    `csv:"ID" db:"id" json:"id"`
	Date    time.Time `csv:"Date" db:"date" json:"date"`
	Present bool      `csv:"Present" db:"present" json:"present"`
}
