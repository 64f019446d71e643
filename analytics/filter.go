package analytics

import (
	"sort"

	"github.com/classpulse/dashboard/models"
)

// All is the sentinel selector value that matches every row.
const All = "All"

// FilterState holds the three cohort selectors. Each is either a
// concrete domain value or All. The zero value is not usable; start
// from NewFilterState.
type FilterState struct {
	Class   string
	Section string
	Gender  string
}

// NewFilterState returns the unfiltered state.
func NewFilterState() FilterState {
	return FilterState{Class: All, Section: All, Gender: All}
}

// SetClass selects a class and resets the section selector when the
// previously selected section is not valid for the new class.
func (f *FilterState) SetClass(summary []models.SummaryRow, class string) {
	f.Class = class
	if f.Section == All {
		return
	}
	for _, s := range SectionOptions(summary, class) {
		if s == f.Section {
			return
		}
	}
	f.Section = All
}

// ClassOptions returns All plus the distinct classes in summary,
// sorted.
func ClassOptions(summary []models.SummaryRow) []string {
	return options(summary, func(r models.SummaryRow) string { return r.Class })
}

// SectionOptions returns All plus the distinct sections among summary
// rows of the given class, sorted. With class All, only the All
// option is offered: sections are meaningless without a class.
func SectionOptions(summary []models.SummaryRow, class string) []string {
	if class == All {
		return []string{All}
	}
	seen := make(map[string]bool)
	sections := []string{}
	for _, r := range summary {
		if r.Class == class && !seen[r.Section] {
			seen[r.Section] = true
			sections = append(sections, r.Section)
		}
	}
	sort.Strings(sections)
	return append([]string{All}, sections...)
}

// GenderOptions returns All plus the distinct genders in summary,
// sorted.
func GenderOptions(summary []models.SummaryRow) []string {
	return options(summary, func(r models.SummaryRow) string { return r.Gender })
}

func options(summary []models.SummaryRow, field func(models.SummaryRow) string) []string {
	seen := make(map[string]bool)
	vals := []string{}
	for _, r := range summary {
		if v := field(r); !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Strings(vals)
	return append([]string{All}, vals...)
}

// ApplyFilters returns the cohort: summary rows matching every
// selector. Matching is exact and case-sensitive; All matches
// everything. An empty result is a valid state, not an error.
func ApplyFilters(summary []models.SummaryRow, f FilterState) []models.SummaryRow {
	cohort := []models.SummaryRow{}
	for _, r := range summary {
		if f.Class != All && r.Class != f.Class {
			continue
		}
		if f.Section != All && r.Section != f.Section {
			continue
		}
		if f.Gender != All && r.Gender != f.Gender {
			continue
		}
		cohort = append(cohort, r)
	}
	return cohort
}

// cohortIDs builds the ID membership set used by the inner joins.
func cohortIDs(cohort []models.SummaryRow) map[string]struct{} {
	ids := make(map[string]struct{}, len(cohort))
	for _, r := range cohort {
		ids[r.ID] = struct{}{}
	}
	return ids
}
