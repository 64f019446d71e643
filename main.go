package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/classpulse/dashboard/analytics"
	"github.com/classpulse/dashboard/insights"
	"github.com/classpulse/dashboard/loader"
	"github.com/classpulse/dashboard/models"
	"github.com/classpulse/dashboard/store"
)

const (
	performerListSize  = 5
	scoreBinCount      = 20
	attendanceBinCount = 10
	marksBinCount      = 10
	deadlineListSize   = 10
)

func init() {
	// Load .env file; plain environment variables are fine too
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
}

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	ds, err := loader.Load(dataDir)
	if err != nil {
		log.Fatalf("Error loading data: %v", err)
	}

	filter := analytics.NewFilterState()

	for {
		displayMenu(ds, filter)
		choice := readChoice()

		switch choice {
		case "1":
			selectClass(ds, &filter)
		case "2":
			selectSection(ds, &filter)
		case "3":
			selectGender(ds, &filter)
		case "4":
			displayOverview(ds, filter)
		case "5":
			displayTopPerformers(ds, filter)
		case "6":
			displayBottomPerformers(ds, filter)
		case "7":
			displayScoreDistribution(ds, filter)
		case "8":
			displayAttendanceDistribution(ds, filter)
		case "9":
			displayCorrelations(ds, filter)
		case "10":
			displaySubjectAverages(ds, filter)
		case "11":
			displaySubjectTermAverages(ds, filter)
		case "12":
			displayAttendanceTrend(ds, filter)
		case "13":
			displayAssignmentCompletion(ds, filter)
		case "14":
			displayUpcomingDeadlines(ds, filter)
		case "15":
			displayRemarkDistribution(ds, filter)
		case "16":
			displayStudentDetails(ds, filter)
		case "17":
			handleExport(ds, filter)
		case "18":
			handleDatabaseSync(ds)
		case "19":
			handleDatabaseLoad(&ds)
		case "20":
			handleInsightQuestion(ds, filter)
		case "21":
			color.Green("Thank you for using Classpulse!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func displayMenu(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)

	color.Cyan("\n=== Classpulse Student Dashboard ===")
	fmt.Printf("Filters: Class=%s  Section=%s  Gender=%s  (%d students)\n\n",
		filter.Class, filter.Section, filter.Gender, len(cohort))
	fmt.Println("1. Set Class Filter")
	fmt.Println("2. Set Section Filter")
	fmt.Println("3. Set Gender Filter")
	fmt.Println("4. Overview Metrics")
	fmt.Println("5. Top Scholars")
	fmt.Println("6. Students Needing Support")
	fmt.Println("7. Score Distribution")
	fmt.Println("8. Attendance Rate Distribution")
	fmt.Println("9. Metric Correlations")
	fmt.Println("10. Subject Averages")
	fmt.Println("11. Subject Averages by Term")
	fmt.Println("12. Monthly Attendance Trend")
	fmt.Println("13. Assignment Completion by Subject")
	fmt.Println("14. Upcoming Deadlines")
	fmt.Println("15. Remark Distribution")
	fmt.Println("16. Student Drill-Down")
	fmt.Println("17. Export Cohort CSV")
	fmt.Println("18. Sync Data to Database")
	fmt.Println("19. Load Data from Database")
	fmt.Println("20. Ask About This Cohort")
	fmt.Println("21. Exit")
	fmt.Print("\nEnter your choice (1-21): ")
}

func selectClass(ds *models.Dataset, filter *analytics.FilterState) {
	choice, ok := promptOption("Select Class", analytics.ClassOptions(ds.Summary))
	if !ok {
		return
	}
	filter.SetClass(ds.Summary, choice)
}

func selectSection(ds *models.Dataset, filter *analytics.FilterState) {
	opts := analytics.SectionOptions(ds.Summary, filter.Class)
	if len(opts) == 1 {
		color.Yellow("Select a class first to choose a section.")
		return
	}
	choice, ok := promptOption("Select Section", opts)
	if !ok {
		return
	}
	filter.Section = choice
}

func selectGender(ds *models.Dataset, filter *analytics.FilterState) {
	choice, ok := promptOption("Select Gender", analytics.GenderOptions(ds.Summary))
	if !ok {
		return
	}
	filter.Gender = choice
}

// promptOption lists the options numbered and reads one selection.
func promptOption(title string, options []string) (string, bool) {
	color.Yellow("\n%s", title)
	for i, opt := range options {
		fmt.Printf("%d. %s\n", i+1, opt)
	}
	fmt.Printf("Enter your choice (1-%d): ", len(options))

	var n int
	if _, err := fmt.Sscanf(readChoice(), "%d", &n); err != nil || n < 1 || n > len(options) {
		color.Red("Invalid choice.")
		return "", false
	}
	return options[n-1], true
}

func displayOverview(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	ov := analytics.Summarize(cohort)

	color.Yellow("\nOverview Metrics")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Total Students", "Average Score", "Average Attendance", "Average Submission Rate"})
	table.Append([]string{
		fmt.Sprintf("%d", ov.Students),
		formatNull(ov.AverageScore, "%.1f", 1),
		formatNull(ov.AttendanceRate, "%.1f%%", 100),
		formatNull(ov.SubmissionRate, "%.1f%%", 100),
	})
	table.Render()
}

func displayTopPerformers(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	color.Yellow("\nTop Scholars")
	renderPerformers(analytics.TopPerformers(cohort, performerListSize))
}

func displayBottomPerformers(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	color.Yellow("\nStudents Needing Support")
	renderPerformers(analytics.BottomPerformers(cohort, performerListSize))
}

func renderPerformers(rows []models.SummaryRow) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Name", "Class", "Section", "Avg Score"})
	for i, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			r.Name,
			r.Class,
			r.Section,
			fmt.Sprintf("%.1f", r.AverageScore),
		})
	}
	table.Render()
}

func displayScoreDistribution(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	values := make([]float64, 0, len(cohort))
	for _, r := range cohort {
		values = append(values, r.AverageScore)
	}

	color.Yellow("\nDistribution of Average Scores")
	renderHistogram(analytics.Histogram(values, scoreBinCount), "%.1f - %.1f")
}

func displayAttendanceDistribution(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	values := make([]float64, 0, len(cohort))
	for _, r := range cohort {
		values = append(values, r.AttendanceRate)
	}

	color.Yellow("\nDistribution of Attendance Rates")
	renderHistogram(analytics.Histogram(values, attendanceBinCount), "%.2f - %.2f")
}

func renderHistogram(bins []analytics.Bin, rangeFormat string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Range", "Students"})
	for _, b := range bins {
		table.Append([]string{
			fmt.Sprintf(rangeFormat, b.Low, b.High),
			fmt.Sprintf("%d", b.Count),
		})
	}
	table.Render()
}

func displayCorrelations(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	color.Yellow("\nMetric Correlations")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric 1", "Metric 2", "Correlation", "Students"})
	for _, p := range analytics.CorrelationMatrix(cohort) {
		table.Append([]string{
			p.X,
			p.Y,
			formatNull(p.R, "%.3f", 1),
			fmt.Sprintf("%d", p.Samples),
		})
	}
	table.Render()

	color.Yellow("\nPer-Student Metrics by Class")
	points := tablewriter.NewWriter(os.Stdout)
	points.SetHeader([]string{"Class", "Name", "Avg Score", "Attendance", "Submissions"})
	for _, p := range analytics.ScatterPoints(cohort) {
		points.Append([]string{
			p.Class,
			p.Name,
			fmt.Sprintf("%.1f", p.AverageScore),
			fmt.Sprintf("%.1f%%", p.AttendanceRate*100),
			fmt.Sprintf("%.1f%%", p.SubmissionRate*100),
		})
	}
	points.Render()
}

func displaySubjectAverages(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	means := analytics.SubjectMeans(analytics.JoinScores(ds.Scores, cohort))
	if len(means) == 0 {
		color.Yellow("No score data for the selected filters.")
		return
	}

	color.Yellow("\nAverage Scores by Subject")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Subject", "Average Score", "Scores"})
	for _, m := range means {
		table.Append([]string{m.Subject, fmt.Sprintf("%.2f", m.Mean), fmt.Sprintf("%d", m.Count)})
	}
	table.Render()
}

func displaySubjectTermAverages(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	means := analytics.SubjectTermMeans(analytics.JoinScores(ds.Scores, cohort))
	if len(means) == 0 {
		color.Yellow("No score data for the selected filters.")
		return
	}

	color.Yellow("\nAverage Scores by Subject and Term")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Subject", "Term", "Average Score", "Scores"})
	for _, m := range means {
		table.Append([]string{m.Subject, m.Term, fmt.Sprintf("%.2f", m.Mean), fmt.Sprintf("%d", m.Count)})
	}
	table.Render()
}

func displayAttendanceTrend(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	trend := analytics.MonthlyAttendance(ds.Attendance, cohort)
	if len(trend) == 0 {
		color.Yellow("No attendance data for the selected filters.")
		return
	}

	color.Yellow("\nMonthly Attendance Rate Trend")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Month", "Present", "Absent", "Rate"})
	for _, m := range trend {
		table.Append([]string{
			m.Month,
			fmt.Sprintf("%d", m.Present),
			fmt.Sprintf("%d", m.Absent),
			fmt.Sprintf("%.1f%%", m.Rate*100),
		})
	}
	table.Render()
}

func displayAssignmentCompletion(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	rates := analytics.CompletionBySubject(ds.Assignments, cohort)
	if len(rates) == 0 {
		color.Yellow("No assignment data for the selected filters.")
		return
	}

	color.Yellow("\nAssignment Completion Rate by Subject")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Subject", "Submitted", "Total", "Completion Rate"})
	for _, r := range rates {
		table.Append([]string{
			r.Subject,
			fmt.Sprintf("%d", r.Submitted),
			fmt.Sprintf("%d", r.Total),
			fmt.Sprintf("%.1f%%", r.Rate),
		})
	}
	table.Render()
}

func displayUpcomingDeadlines(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	upcoming := analytics.UpcomingDeadlines(ds.Assignments, cohort, time.Now(), deadlineListSize)
	if len(upcoming) == 0 {
		color.Yellow("No upcoming assignments.")
		return
	}

	color.Yellow("\nUpcoming Deadlines")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Assignment", "Subject", "Deadline", "Submitted", "Marks"})
	for _, r := range upcoming {
		submitted := "No"
		marks := "N/A"
		if r.Submitted {
			submitted = "Yes"
			marks = fmt.Sprintf("%.0f", r.Marks)
		}
		table.Append([]string{
			r.Assignment,
			r.Subject,
			r.Deadline.Format("2006-01-02"),
			submitted,
			marks,
		})
	}
	table.Render()
}

func displayRemarkDistribution(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	counts := analytics.RemarkCounts(ds.Remarks, cohort)
	if len(counts) == 0 {
		color.Yellow("No remarks for the selected filters.")
		return
	}

	color.Yellow("\nDistribution of Teacher Remarks")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Remark", "Count"})
	for _, c := range counts {
		table.Append([]string{c.Remark, fmt.Sprintf("%d", c.Count)})
	}
	table.Render()
}

func displayStudentDetails(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	fmt.Print("Enter student name: ")
	name := readString()

	id, ok := resolveStudentID(cohort, name)
	if !ok {
		return
	}

	color.Cyan("\nDetails for %s (ID: %s)", name, id)

	scores := analytics.StudentScores(ds.Scores, id)
	if len(scores) == 0 {
		color.Yellow("No score data available for %s (ID: %s)", name, id)
	} else {
		color.Yellow("\nScores by Subject and Term")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Subject", "Term", "Score"})
		for _, s := range scores {
			table.Append([]string{s.Subject, s.Term, fmt.Sprintf("%.1f", s.Score)})
		}
		table.Render()
	}

	att := analytics.StudentAttendance(ds.Attendance, id)
	if att.Present+att.Absent == 0 {
		color.Yellow("No attendance data available for %s", name)
	} else {
		color.Yellow("\nAttendance")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Present", "Absent", "Rate"})
		table.Append([]string{
			fmt.Sprintf("%d", att.Present),
			fmt.Sprintf("%d", att.Absent),
			formatNull(att.Rate(), "%.1f%%", 100),
		})
		table.Render()
	}

	asg := analytics.StudentAssignments(ds.Assignments, id)
	if asg.Submitted+asg.Missing == 0 {
		color.Yellow("No assignment data available for %s", name)
	} else {
		color.Yellow("\nAssignments")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Submitted", "Not Submitted"})
		table.Append([]string{
			fmt.Sprintf("%d", asg.Submitted),
			fmt.Sprintf("%d", asg.Missing),
		})
		table.Render()

		bins := analytics.StudentMarksHistogram(ds.Assignments, id, marksBinCount)
		if bins == nil {
			color.Yellow("No submitted assignments to show marks distribution.")
		} else {
			color.Yellow("\nMarks Distribution for Submitted Assignments")
			renderHistogram(bins, "%.1f - %.1f")
		}
	}

	remarks := analytics.StudentRemarks(ds.Remarks, id)
	if len(remarks) == 0 {
		color.Yellow("No remarks available for %s", name)
		return
	}

	color.Yellow("\nTeacher Remarks")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Teacher", "Remark"})
	for _, r := range remarks {
		date := "Unknown"
		if !r.Date.IsZero() {
			date = r.Date.Format("2006-01-02")
		}
		table.Append([]string{date, r.Teacher, r.Remark})
	}
	table.Render()

	color.Yellow("\nRemarks Over Time")
	trend := tablewriter.NewWriter(os.Stdout)
	trend.SetHeader([]string{"Date", "Remark", "Count"})
	for _, p := range analytics.RemarkTrend(ds.Remarks, id) {
		trend.Append([]string{p.Date, p.Remark, fmt.Sprintf("%d", p.Count)})
	}
	trend.Render()
}

// resolveStudentID maps a name to one cohort ID, prompting for an
// explicit choice when several students share the name.
func resolveStudentID(cohort []models.SummaryRow, name string) (string, bool) {
	ids := analytics.ResolveStudent(cohort, name)
	switch len(ids) {
	case 0:
		color.Yellow("No student named %q matches the selected filters.", name)
		return "", false
	case 1:
		return ids[0], true
	}

	color.Yellow("Multiple students named %q found. Please select ID:", name)
	return promptOption("Select ID", ids)
}

func handleExport(ds *models.Dataset, filter analytics.FilterState) {
	cohort := analytics.ApplyFilters(ds.Summary, filter)
	if warnEmpty(cohort) {
		return
	}

	fmt.Print("Enter output file path [filtered_student_summary.csv]: ")
	path := readString()
	if path == "" {
		path = "filtered_student_summary.csv"
	}

	f, err := os.Create(path)
	if err != nil {
		color.Red("Error creating file: %v", err)
		return
	}
	defer f.Close()

	if err := analytics.ExportCohort(f, cohort); err != nil {
		color.Red("Error exporting data: %v", err)
		return
	}
	color.Green("Exported %d students to %s", len(cohort), path)
}

func handleDatabaseSync(ds *models.Dataset) {
	if !store.Configured() {
		color.Yellow("Database is not configured. Set DB_HOST and friends in .env to enable it.")
		return
	}

	db, err := store.Open()
	if err != nil {
		color.Red("Error connecting to database: %v", err)
		return
	}
	defer db.Close()

	if err := store.InitSchema(db); err != nil {
		color.Red("Error initializing schema: %v", err)
		return
	}
	if err := store.ImportDataset(db, ds); err != nil {
		color.Red("Error syncing data: %v", err)
		return
	}
	color.Green("All six tables synced to the database.")
}

func handleDatabaseLoad(ds **models.Dataset) {
	if !store.Configured() {
		color.Yellow("Database is not configured. Set DB_HOST and friends in .env to enable it.")
		return
	}

	db, err := store.Open()
	if err != nil {
		color.Red("Error connecting to database: %v", err)
		return
	}
	defer db.Close()

	loaded, err := store.LoadDataset(db)
	if err != nil {
		color.Red("Error loading data: %v", err)
		return
	}
	if len(loaded.Summary) == 0 {
		color.Yellow("The database mirror is empty; keeping the current data.")
		return
	}

	*ds = loaded
	color.Green("Loaded %d students from the database.", len(loaded.Summary))
}

func handleInsightQuestion(ds *models.Dataset, filter analytics.FilterState) {
	ctx := context.Background()
	engine, err := insights.NewEngine(ctx)
	if err != nil {
		color.Yellow("Insights are unavailable: %v", err)
		return
	}
	defer engine.Close()

	fmt.Print("Ask a question about the current cohort: ")
	question := readString()
	if question == "" {
		return
	}

	cohort := analytics.ApplyFilters(ds.Summary, filter)
	joined := analytics.JoinScores(ds.Scores, cohort)
	cohortContext := insights.BuildCohortContext(
		filter,
		analytics.Summarize(cohort),
		analytics.SubjectMeans(joined),
		analytics.CompletionBySubject(ds.Assignments, cohort),
		analytics.RemarkCounts(ds.Remarks, cohort),
	)

	answer, err := engine.Ask(ctx, question, cohortContext)
	if err != nil {
		color.Red("Error: %v", err)
		return
	}
	fmt.Printf("\n%s\n", answer)
}

// warnEmpty renders the shared no-data state for an empty cohort.
func warnEmpty(cohort []models.SummaryRow) bool {
	if len(cohort) == 0 {
		color.Yellow("No students match the selected filters.")
		return true
	}
	return false
}

// formatNull renders an undefined value as "N/A" instead of zero.
func formatNull(v sql.NullFloat64, format string, scale float64) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf(format, v.Float64*scale)
}

func readChoice() string {
	var input string
	fmt.Scanln(&input)
	return strings.TrimSpace(input)
}

func readString() string {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}
