package competency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsInventory_DistributionSumsToEmployeeCount(t *testing.T) {
	skills := []Skill{
		{ID: 100, Name: "Go"},
		{ID: 101, Name: "SQL"},
	}
	latest := []LatestAssessment{
		{EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Rank: 3},
		// Same employee, same skill under a second role: counted once, at
		// the higher rank.
		{EmployeeID: 1, RoleID: 20, SkillID: 100, SkillName: "Go", Rank: 4},
		{EmployeeID: 2, RoleID: 10, SkillID: 100, SkillName: "Go", Rank: 4},
		{EmployeeID: 3, RoleID: 20, SkillID: 100, SkillName: "Go", Rank: 2},
	}

	rows := SkillsInventory(skills, latest, testEmployees())
	require.Len(t, rows, 2)

	goRow := rows[0]
	require.Equal(t, "Go", goRow.SkillName)
	assert.Equal(t, 3, goRow.TotalEmployees)

	sum := 0
	for _, n := range goRow.EmployeesByLevel {
		sum += n
	}
	assert.Equal(t, goRow.TotalEmployees, sum)
	assert.Equal(t, 2, goRow.EmployeesByLevel[4])
	assert.Equal(t, 1, goRow.EmployeesByLevel[2])
	// (4 + 4 + 2) / 3
	assert.Equal(t, 3.33, goRow.AvgProficiency)
	assert.Equal(t, []string{"Data", "Engineering"}, goRow.Departments)
}

func TestSkillsInventory_UnassessedSkillStillListed(t *testing.T) {
	skills := []Skill{{ID: 101, Name: "SQL"}}

	rows := SkillsInventory(skills, nil, testEmployees())
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].TotalEmployees)
	assert.Equal(t, 0.0, rows[0].AvgProficiency)
	assert.Empty(t, rows[0].EmployeesByLevel)
	assert.Empty(t, rows[0].Departments)
}

func TestInitialAssessmentSummary_EarliestDateWins(t *testing.T) {
	rows := []AssessmentRow{
		{AssessmentID: 2, ItemID: 20, EmployeeID: 1, RoleID: 10, SkillID: 100, Date: date(2024, 5, 1), Rank: 4},
		{AssessmentID: 1, ItemID: 10, EmployeeID: 1, RoleID: 10, SkillID: 100, Date: date(2024, 1, 15), Rank: 2},
		{AssessmentID: 1, ItemID: 11, EmployeeID: 1, RoleID: 10, SkillID: 101, Date: date(2024, 1, 15), Rank: 3},
	}

	summary := InitialAssessmentSummary(rows, testEmployees(), testRoleNames())
	require.Len(t, summary, 1)
	assert.Equal(t, date(2024, 1, 15), summary[0].AssessmentDate)
	assert.Equal(t, 2, summary[0].TotalSkillsAssessed)
	assert.Equal(t, 2.5, summary[0].AvgProficiency)
}

func TestInitialAssessmentSummary_TiedMinimumDatesAggregateTogether(t *testing.T) {
	// Two distinct assessments on the same minimum date: all items pool into
	// one summary instead of one assessment being picked arbitrarily.
	rows := []AssessmentRow{
		{AssessmentID: 1, ItemID: 10, EmployeeID: 1, RoleID: 10, SkillID: 100, Date: date(2024, 1, 15), Rank: 2},
		{AssessmentID: 2, ItemID: 20, EmployeeID: 1, RoleID: 10, SkillID: 101, Date: date(2024, 1, 15), Rank: 4},
	}

	summary := InitialAssessmentSummary(rows, testEmployees(), testRoleNames())
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].TotalSkillsAssessed)
	assert.Equal(t, 3.0, summary[0].AvgProficiency)
}

func TestInitialAssessmentSummary_SortedByDateDescending(t *testing.T) {
	rows := []AssessmentRow{
		{AssessmentID: 1, ItemID: 10, EmployeeID: 1, RoleID: 10, SkillID: 100, Date: date(2024, 1, 1), Rank: 2},
		{AssessmentID: 2, ItemID: 20, EmployeeID: 2, RoleID: 10, SkillID: 100, Date: date(2024, 6, 1), Rank: 3},
	}

	summary := InitialAssessmentSummary(rows, testEmployees(), testRoleNames())
	require.Len(t, summary, 2)
	assert.Equal(t, "Bob", summary[0].EmployeeName)
	assert.Equal(t, "Alice", summary[1].EmployeeName)
}

func TestOverview_SortedByReadinessDescending(t *testing.T) {
	readiness := []RoleReadiness{
		{EmployeeID: 1, RoleID: 10, ReadinessIndex: 40},
		{EmployeeID: 2, RoleID: 10, ReadinessIndex: 90},
		{EmployeeID: 99, RoleID: 10, ReadinessIndex: 100}, // unknown employee skipped
	}

	rows := Overview(readiness, testEmployees(), testRoleNames())
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[0].EmployeeName)
	assert.Equal(t, "Backend Engineer", rows[0].RoleName)
	assert.Equal(t, "Alice", rows[1].EmployeeName)
}
