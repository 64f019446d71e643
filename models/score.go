package models

// ScoreRow represents a student's score in one subject for one term
type ScoreRow struct {
	ID      string  `csv:"ID" db:"id" json:"id"`
	Subject string  `csv:"Subject" db:"subject" json:"subject"`
	Term    string  `csv:"Term" db:"term" json:"term"`
	Score   float64 `csv:"Score" db:"score" json:"score"`
}
