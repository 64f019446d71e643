package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = map[string]string{
	ProfilesFile: `ID,Name,Class,Section,Gender
1001.0,A. Kumar,10,A,M
1002,B. Singh,10,B,F
`,
	AssignmentsFile: `ID,Assignment,Subject,Deadline,Submitted,Marks
1001,HW1,Math,2024-05-01,True,70
1001,HW2,Math,not-a-date,False,
1002,HW1,Math,2024-05-01 09:30:00,yes,85.5
`,
	AttendanceFile: `ID,Date,Present
1001,2024-01-10,True
1001,2024-01-11,False
1002,2024-01-10,1
`,
	RemarksFile: `ID,Date,Teacher,Remark
1001,2024-02-01,Mrs. Verma,Good
1002,2024-02-02,Mr. Das,Excellent
`,
	ScoresFile: `ID,Subject,Term,Score
1001,Math,T1,80.5
1002,Math,T1,64
`,
	SummaryFile: `ID,Name,Class,Section,Gender,Average Score,Attendance Rate,Submission Rate
1001.0,A. Kumar,10,A,M,82.25,0.91,0.8
1002,B. Singh,10,B,F,74,0.85,0.75
`,
}

func writeFixtures(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range fixtures {
		if o, ok := overrides[name]; ok {
			content = o
		}
		if content == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFixtures(t, nil)

	ds, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, ds.Profiles, 2)
	require.Len(t, ds.Assignments, 3)
	require.Len(t, ds.Attendance, 3)
	require.Len(t, ds.Remarks, 2)
	require.Len(t, ds.Scores, 2)
	require.Len(t, ds.Summary, 2)

	// numerically encoded IDs normalize to the same text everywhere
	assert.Equal(t, "1001", ds.Profiles[0].ID)
	assert.Equal(t, "1001", ds.Summary[0].ID)

	assert.Equal(t, 82.25, ds.Summary[0].AverageScore)
	assert.Equal(t, 0.91, ds.Summary[0].AttendanceRate)

	// boolean spellings
	assert.True(t, ds.Assignments[0].Submitted)
	assert.False(t, ds.Assignments[1].Submitted)
	assert.True(t, ds.Assignments[2].Submitted)
	assert.True(t, ds.Attendance[2].Present)

	// date coercion: primary format, fallback format, unknown marker
	assert.Equal(t, "2024-05-01", ds.Assignments[0].Deadline.Format("2006-01-02"))
	assert.True(t, ds.Assignments[1].Deadline.IsZero(), "unparseable date becomes the unknown marker")
	assert.Equal(t, "2024-05-01 09:30:00", ds.Assignments[2].Deadline.Format("2006-01-02 15:04:05"))
}

func TestLoadMissingFileAbortsWholeLoad(t *testing.T) {
	dir := writeFixtures(t, map[string]string{ScoresFile: ""})

	ds, err := Load(dir)
	assert.Nil(t, ds, "partially loaded tables must not escape")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ScoresFile)
}

func TestLoadMissingColumnAbortsWholeLoad(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		SummaryFile: "ID,Name,Class\n1001,A. Kumar,10\n",
	})

	ds, err := Load(dir)
	assert.Nil(t, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestReadSummaryEmptyFile(t *testing.T) {
	_, err := ReadSummary(strings.NewReader(""))
	require.Error(t, err)
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1042", "1042"},
		{"1042.0", "1042"},
		{" 1042 ", "1042"},
		{"1042.5", "1042.5"},
		{"S-007", "S-007"},
		{"1e3", "1e3"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeID(tt.in), "NormalizeID(%q)", tt.in)
	}
}
