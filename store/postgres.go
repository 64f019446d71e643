// Package store mirrors the six dashboard tables in Postgres so
// SQL-side consumers can query the same data the dashboard renders.
// The CSV files remain the source of truth; the mirror is rewritten
// wholesale on each import.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/classpulse/dashboard/models"
)

// Configured reports whether the environment carries database
// settings. The store is optional; without DB_HOST the dashboard
// never touches Postgres.
func Configured() bool {
	return os.Getenv("DB_HOST") != ""
}

// Open connects to Postgres using the DB_* environment variables and
// verifies the connection.
func Open() (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"))

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ImportDataset replaces the mirror contents with ds in one
// transaction.
func ImportDataset(db *sql.DB, ds *models.Dataset) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{
		"student_profiles", "student_summary", "student_scores",
		"student_assignments", "student_attendance", "student_remarks",
	} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertProfiles(tx, ds.Profiles); err != nil {
		return err
	}
	if err := insertSummary(tx, ds.Summary); err != nil {
		return err
	}
	if err := insertScores(tx, ds.Scores); err != nil {
		return err
	}
	if err := insertAssignments(tx, ds.Assignments); err != nil {
		return err
	}
	if err := insertAttendance(tx, ds.Attendance); err != nil {
		return err
	}
	if err := insertRemarks(tx, ds.Remarks); err != nil {
		return err
	}

	return tx.Commit()
}

func insertProfiles(tx *sql.Tx, rows []models.Profile) error {
	stmt, err := tx.Prepare(`INSERT INTO student_profiles (id, name, class, section, gender) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.ID, r.Name, r.Class, r.Section, r.Gender); err != nil {
			return fmt.Errorf("inserting profile %s: %w", r.ID, err)
		}
	}
	return nil
}

func insertSummary(tx *sql.Tx, rows []models.SummaryRow) error {
	stmt, err := tx.Prepare(`INSERT INTO student_summary
		(id, name, class, section, gender, average_score, attendance_rate, submission_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.ID, r.Name, r.Class, r.Section, r.Gender,
			r.AverageScore, r.AttendanceRate, r.SubmissionRate); err != nil {
			return fmt.Errorf("inserting summary %s: %w", r.ID, err)
		}
	}
	return nil
}

func insertScores(tx *sql.Tx, rows []models.ScoreRow) error {
	stmt, err := tx.Prepare(`INSERT INTO student_scores (id, subject, term, score) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.ID, r.Subject, r.Term, r.Score); err != nil {
			return fmt.Errorf("inserting score %s/%s: %w", r.ID, r.Subject, err)
		}
	}
	return nil
}

func insertAssignments(tx *sql.Tx, rows []models.AssignmentRow) error {
	stmt, err := tx.Prepare(`INSERT INTO student_assignments
		(id, assignment, subject, deadline, submitted, marks)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.ID, r.Assignment, r.Subject, nullTime(r.Deadline), r.Submitted, r.Marks); err != nil {
			return fmt.Errorf("inserting assignment %s/%s: %w", r.ID, r.Assignment, err)
		}
	}
	return nil
}

func insertAttendance(tx *sql.Tx, rows []models.AttendanceRow) error {
	stmt, err := tx.Prepare(`INSERT INTO student_attendance (id, date, present) VALUES ($1, $2, $3)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.ID, nullTime(r.Date), r.Present); err != nil {
			return fmt.Errorf("inserting attendance %s: %w", r.ID, err)
		}
	}
	return nil
}

func insertRemarks(tx *sql.Tx, rows []models.RemarkRow) error {
	stmt, err := tx.Prepare(`INSERT INTO student_remarks (id, date, teacher, remark) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err := stmt.Exec(r.ID, nullTime(r.Date), r.Teacher, r.Remark); err != nil {
			return fmt.Errorf("inserting remark %s: %w", r.ID, err)
		}
	}
	return nil
}

// LoadDataset reads all six mirror tables back into a Dataset.
func LoadDataset(db *sql.DB) (*models.Dataset, error) {
	ds := &models.Dataset{}

	rows, err := db.Query(`SELECT id, name, class, section, gender FROM student_profiles`)
	if err != nil {
		return nil, fmt.Errorf("loading student_profiles: %w", err)
	}
	for rows.Next() {
		var r models.Profile
		if err := rows.Scan(&r.ID, &r.Name, &r.Class, &r.Section, &r.Gender); err != nil {
			rows.Close()
			return nil, err
		}
		ds.Profiles = append(ds.Profiles, r)
	}
	rows.Close()

	rows, err = db.Query(`SELECT id, name, class, section, gender, average_score, attendance_rate, submission_rate FROM student_summary`)
	if err != nil {
		return nil, fmt.Errorf("loading student_summary: %w", err)
	}
	for rows.Next() {
		var r models.SummaryRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Class, &r.Section, &r.Gender,
			&r.AverageScore, &r.AttendanceRate, &r.SubmissionRate); err != nil {
			rows.Close()
			return nil, err
		}
		ds.Summary = append(ds.Summary, r)
	}
	rows.Close()

	rows, err = db.Query(`SELECT id, subject, term, score FROM student_scores`)
	if err != nil {
		return nil, fmt.Errorf("loading student_scores: %w", err)
	}
	for rows.Next() {
		var r models.ScoreRow
		if err := rows.Scan(&r.ID, &r.Subject, &r.Term, &r.Score); err != nil {
			rows.Close()
			return nil, err
		}
		ds.Scores = append(ds.Scores, r)
	}
	rows.Close()

	rows, err = db.Query(`SELECT id, assignment, subject, deadline, submitted, marks FROM student_assignments`)
	if err != nil {
		return nil, fmt.Errorf("loading student_assignments: %w", err)
	}
	for rows.Next() {
		var r models.AssignmentRow
		var deadline sql.NullTime
		if err := rows.Scan(&r.ID, &r.Assignment, &r.Subject, &deadline, &r.Submitted, &r.Marks); err != nil {
			rows.Close()
			return nil, err
		}
		if deadline.Valid {
			r.Deadline = deadline.Time
		}
		ds.Assignments = append(ds.Assignments, r)
	}
	rows.Close()

	rows, err = db.Query(`SELECT id, date, present FROM student_attendance`)
	if err != nil {
		return nil, fmt.Errorf("loading student_attendance: %w", err)
	}
	for rows.Next() {
		var r models.AttendanceRow
		var date sql.NullTime
		if err := rows.Scan(&r.ID, &date, &r.Present); err != nil {
			rows.Close()
			return nil, err
		}
		if date.Valid {
			r.Date = date.Time
		}
		ds.Attendance = append(ds.Attendance, r)
	}
	rows.Close()

	rows, err = db.Query(`SELECT id, date, teacher, remark FROM student_remarks`)
	if err != nil {
		return nil, fmt.Errorf("loading student_remarks: %w", err)
	}
	for rows.Next() {
		var r models.RemarkRow
		var date sql.NullTime
		if err := rows.Scan(&r.ID, &date, &r.Teacher, &r.Remark); err != nil {
			rows.Close()
			return nil, err
		}
		if date.Valid {
			r.Date = date.Time
		}
		ds.Remarks = append(ds.Remarks, r)
	}
	rows.Close()

	return ds, nil
}

// nullTime maps the zero-time "unknown date" marker to SQL NULL.
func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
