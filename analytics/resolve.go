package analytics

import "github.com/classpulse/dashboard/models"

// ResolveStudent returns the IDs of cohort members whose Name matches
// exactly, in cohort order. Zero IDs means the name is absent from
// the cohort; more than one means the caller must ask the user to
// pick an ID — never pick one arbitrarily, names are not unique.
func ResolveStudent(cohort []models.SummaryRow, name string) []string {
	var ids []string
	for _, r := range cohort {
		if r.Name == name {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
