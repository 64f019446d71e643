package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/classpulse/dashboard/models"
)

func sampleSummary() []models.SummaryRow {
	return []models.SummaryRow{
		{ID: "1", Name: "A. Kumar", Class: "10", Section: "A", Gender: "M", AverageScore: 82, AttendanceRate: 0.91, SubmissionRate: 0.80},
		{ID: "2", Name: "B. Singh", Class: "10", Section: "B", Gender: "F", AverageScore: 74, AttendanceRate: 0.85, SubmissionRate: 0.75},
		{ID: "3", Name: "C. Iyer", Class: "10", Section: "A", Gender: "F", AverageScore: 68, AttendanceRate: 0.78, SubmissionRate: 0.70},
		{ID: "4", Name: "A. Kumar", Class: "9", Section: "C", Gender: "M", AverageScore: 90, AttendanceRate: 0.95, SubmissionRate: 0.88},
		{ID: "5", Name: "D. Rao", Class: "9", Section: "C", Gender: "F", AverageScore: 55, AttendanceRate: 0.60, SubmissionRate: 0.50},
	}
}

func TestApplyFilters(t *testing.T) {
	summary := sampleSummary()

	tests := []struct {
		name    string
		filter  FilterState
		wantIDs []string
	}{
		{"all pass-through", NewFilterState(), []string{"1", "2", "3", "4", "5"}},
		{"class only", FilterState{Class: "10", Section: All, Gender: All}, []string{"1", "2", "3"}},
		{"class and section", FilterState{Class: "10", Section: "A", Gender: All}, []string{"1", "3"}},
		{"gender all is a no-op", FilterState{Class: "10", Section: "A", Gender: All}, []string{"1", "3"}},
		{"all three concrete", FilterState{Class: "10", Section: "A", Gender: "F"}, []string{"3"}},
		{"no match is empty, not error", FilterState{Class: "12", Section: All, Gender: All}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cohort := ApplyFilters(summary, tt.filter)

			gotIDs := make([]string, 0, len(cohort))
			for _, r := range cohort {
				gotIDs = append(gotIDs, r.ID)
				// every surviving row satisfies all three predicates
				if tt.filter.Class != All {
					assert.Equal(t, tt.filter.Class, r.Class)
				}
				if tt.filter.Section != All {
					assert.Equal(t, tt.filter.Section, r.Section)
				}
				if tt.filter.Gender != All {
					assert.Equal(t, tt.filter.Gender, r.Gender)
				}
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSectionOptionsDependOnClass(t *testing.T) {
	summary := sampleSummary()

	assert.Equal(t, []string{All}, SectionOptions(summary, All))
	assert.Equal(t, []string{All, "A", "B"}, SectionOptions(summary, "10"))
	assert.Equal(t, []string{All, "C"}, SectionOptions(summary, "9"))
	assert.Equal(t, []string{All}, SectionOptions(summary, "12"))
}

func TestSetClassResetsInvalidSection(t *testing.T) {
	summary := sampleSummary()

	f := NewFilterState()
	f.SetClass(summary, "10")
	f.Section = "A"

	// section C does not exist in class 10, so switching to 9 keeps it
	f.SetClass(summary, "9")
	assert.Equal(t, All, f.Section, "section invalid for new class must reset")

	f.Section = "C"
	f.SetClass(summary, "9")
	assert.Equal(t, "C", f.Section, "section valid for new class must survive")
}

func TestClassAndGenderOptions(t *testing.T) {
	summary := sampleSummary()

	assert.Equal(t, []string{All, "10", "9"}, ClassOptions(summary))
	assert.Equal(t, []string{All, "F", "M"}, GenderOptions(summary))
}
