package models

// Profile represents one row of the student profiles table
type Profile struct {
	ID      string `csv:"ID" db:"id" json:"id"`
	Name    string `csv:"Name" db:"name" json:"name"`
	Class   string `csv:"Class" db:"class" json:"class"`
	Section string `csv:"Section" db:"section" json:"section"`
	Gender  string `csv:"Gender" db:"gender" json:"gender"`
}
