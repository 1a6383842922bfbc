package competency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployees() map[int64]Employee {
	return map[int64]Employee{
		1: {ID: 1, Name: "Alice", Department: strPtr("Engineering")},
		2: {ID: 2, Name: "Bob", Department: strPtr("Engineering")},
		3: {ID: 3, Name: "Cara", Department: strPtr("Data")},
		4: {ID: 4, Name: "Dan"},
	}
}

func testRoleNames() map[int64]string {
	return map[int64]string{10: "Backend Engineer", 20: "Data Analyst"}
}

func TestGapHeatmap_GroupsByRoleAndSkill(t *testing.T) {
	deltas := []CompetencyDelta{
		{EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Gap: 2},
		{EmployeeID: 2, RoleID: 10, SkillID: 100, SkillName: "Go", Gap: 0},
		{EmployeeID: 1, RoleID: 10, SkillID: 101, SkillName: "SQL", Gap: 3},
	}

	cells := GapHeatmap(deltas, testRoleNames())
	require.Len(t, cells, 2)

	// Sorted by average gap descending: SQL (3.0) before Go (1.0).
	assert.Equal(t, "SQL", cells[0].SkillName)
	assert.Equal(t, 3.0, cells[0].AvgGap)
	assert.Equal(t, 1, cells[0].EmployeeCount)

	assert.Equal(t, "Go", cells[1].SkillName)
	assert.Equal(t, 1.0, cells[1].AvgGap)
	assert.Equal(t, 0, cells[1].MinGap)
	assert.Equal(t, 2, cells[1].MaxGap)
	assert.Equal(t, 2, cells[1].EmployeeCount)
}

func TestGapHeatmap_SkipsUnresolvableRole(t *testing.T) {
	deltas := []CompetencyDelta{
		{EmployeeID: 1, RoleID: 99, SkillID: 100, SkillName: "Go", Gap: 2},
	}
	assert.Empty(t, GapHeatmap(deltas, testRoleNames()))
}

func TestTrainingNeeds_DefaultThresholdKeepsAnyGap(t *testing.T) {
	deltas := []CompetencyDelta{
		{EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Gap: 1},
		{EmployeeID: 1, RoleID: 10, SkillID: 101, SkillName: "SQL", Gap: 3},
		{EmployeeID: 2, RoleID: 10, SkillID: 100, SkillName: "Go", Gap: 0},
	}

	needs := TrainingNeeds(deltas, testEmployees(), testRoleNames(), 0)
	require.Len(t, needs, 1)
	assert.Equal(t, "Alice", needs[0].EmployeeName)
	assert.Equal(t, 2, needs[0].SkillsWithGap)
	assert.Equal(t, 4, needs[0].TotalGap)
	assert.Equal(t, 2.0, needs[0].AvgGap)
}

func TestTrainingNeeds_ThresholdFiltersRows(t *testing.T) {
	deltas := []CompetencyDelta{
		{EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Gap: 1},
		{EmployeeID: 1, RoleID: 10, SkillID: 101, SkillName: "SQL", Gap: 3},
	}

	needs := TrainingNeeds(deltas, testEmployees(), testRoleNames(), 2)
	require.Len(t, needs, 1)
	assert.Equal(t, 1, needs[0].SkillsWithGap)
	assert.Equal(t, 3, needs[0].TotalGap)
}

func TestLearningPaths_PrefersSkillTaggedTrainings(t *testing.T) {
	trainings := []Training{
		{ID: 1, Name: "Generic Bootcamp"},
		{ID: 2, Name: "Advanced Go", SkillID: int64Ptr(100)},
		{ID: 3, Name: "Go Fundamentals", SkillID: int64Ptr(100)},
		{ID: 4, Name: "SQL Deep Dive", SkillID: int64Ptr(101)},
		{ID: 5, Name: "Another Generic"},
	}
	deltas := []CompetencyDelta{
		{EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", RequiredRank: 4, ActualRank: 1, Gap: 3},
	}

	paths := LearningPaths(deltas, trainings, testEmployees(), testRoleNames())
	require.Len(t, paths, 1)
	require.Len(t, paths[0].Trainings, 3)
	assert.Equal(t, "Advanced Go", paths[0].Trainings[0].Name)
	assert.Equal(t, "Go Fundamentals", paths[0].Trainings[1].Name)
	assert.Equal(t, "Another Generic", paths[0].Trainings[2].Name)
	assert.Equal(t, PriorityHigh, paths[0].Priority)
}

func TestLearningPaths_OnlyOpenGaps(t *testing.T) {
	deltas := []CompetencyDelta{
		{EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Gap: 0},
	}
	assert.Empty(t, LearningPaths(deltas, nil, testEmployees(), testRoleNames()))
}

func TestPriorityForGap_Boundaries(t *testing.T) {
	tests := []struct {
		gap  float64
		want string
	}{
		{2.5, PriorityHigh},
		{2.0, PriorityHigh},
		{1.5, PriorityMedium},
		{1.0, PriorityMedium},
		{0.99, PriorityLow},
		{0.1, PriorityLow},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PriorityForGap(tc.gap), "gap %.2f", tc.gap)
	}
}
