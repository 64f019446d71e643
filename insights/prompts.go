package insights

import (
	"fmt"
	"strings"

	"github.com/classpulse/dashboard/analytics"
)

// BuildCohortContext renders the current filter selection and
// computed metrics as the factual context handed to the model. Only
// derived numbers go in; no raw student rows leave the process.
func BuildCohortContext(filter analytics.FilterState, ov analytics.Overview,
	subjects []analytics.SubjectMean, completion []analytics.CompletionRate,
	remarks []analytics.RemarkCount) string {

	var b strings.Builder

	fmt.Fprintf(&b, "Filters: class=%s section=%s gender=%s\n", filter.Class, filter.Section, filter.Gender)
	fmt.Fprintf(&b, "Students in cohort: %d\n", ov.Students)
	if ov.AverageScore.Valid {
		fmt.Fprintf(&b, "Mean average score: %.1f%%\n", ov.AverageScore.Float64)
		fmt.Fprintf(&b, "Mean attendance rate: %.1f%%\n", ov.AttendanceRate.Float64*100)
		fmt.Fprintf(&b, "Mean submission rate: %.1f%%\n", ov.SubmissionRate.Float64*100)
	} else {
		b.WriteString("The cohort is empty; per-student averages are not applicable.\n")
	}

	if len(subjects) > 0 {
		b.WriteString("Average score by subject:\n")
		for _, s := range subjects {
			fmt.Fprintf(&b, "  %s: %.1f (over %d scores)\n", s.Subject, s.Mean, s.Count)
		}
	}
	if len(completion) > 0 {
		b.WriteString("Assignment completion by subject:\n")
		for _, c := range completion {
			fmt.Fprintf(&b, "  %s: %.1f%% (%d of %d submitted)\n", c.Subject, c.Rate, c.Submitted, c.Total)
		}
	}
	if len(remarks) > 0 {
		b.WriteString("Teacher remark counts:\n")
		for _, r := range remarks {
			fmt.Fprintf(&b, "  %s: %d\n", r.Remark, r.Count)
		}
	}

	return b.String()
}

// BuildInsightPrompt creates the prompt answering a free-form
// question about the cohort from the prepared context.
func BuildInsightPrompt(question, context string) string {
	return fmt.Sprintf(`You are an assistant for a student performance dashboard. Answer the teacher's question using ONLY the metrics below. Follow these rules strictly:

1. Base every statement on the provided metrics; do not invent numbers.
2. If the metrics cannot answer the question, say so and suggest which filter or view would help.
3. Keep the answer under 150 words, plain text, no markdown.

Cohort metrics:
%s

Question: %s`, context, question)
}
