package models

import "time"

// RemarkRow represents one teacher remark about one student
type RemarkRow struct {
	ID      string    `csv:"ID" db:"id" json:"id"`
	Date    time.Time `csv:"Date" db:"date" json:"date"`
	Teacher string    `csv:"Teacher" db:"teacher" json:"teacher"`
	Remark  string    `csv:"Remark" db:"remark" json:"remark"`
}
