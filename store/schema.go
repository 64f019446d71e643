package store

import "database/sql"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS student_profiles (
		id      TEXT NOT NULL,
		name    TEXT,
		class   TEXT,
		section TEXT,
		gender  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS student_summary (
		id              TEXT NOT NULL,
		name            TEXT,
		class           TEXT,
		section         TEXT,
		gender          TEXT,
		average_score   DOUBLE PRECISION,
		attendance_rate DOUBLE PRECISION,
		submission_rate DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS student_scores (
		id      TEXT NOT NULL,
		subject TEXT,
		term    TEXT,
		score   DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS student_assignments (
		id         TEXT NOT NULL,
		assignment TEXT,
		subject    TEXT,
		deadline   TIMESTAMP,
		submitted  BOOLEAN,
		marks      DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS student_attendance (
		id      TEXT NOT NULL,
		date    TIMESTAMP,
		present BOOLEAN
	)`,
	`CREATE TABLE IF NOT EXISTS student_remarks (
		id      TEXT NOT NULL,
		date    TIMESTAMP,
		teacher TEXT,
		remark  TEXT
	)`,
}

// InitSchema creates the six mirror tables when they do not exist.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
