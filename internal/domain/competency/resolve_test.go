package competency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLatest_PicksLatestDateRegardlessOfInsertionOrder(t *testing.T) {
	january := AssessmentRow{
		AssessmentID: 1, ItemID: 1, EmployeeID: 1, RoleID: 10,
		SkillID: 100, SkillName: "Go", Date: date(2024, 1, 1), Rank: 2,
	}
	march := AssessmentRow{
		AssessmentID: 2, ItemID: 2, EmployeeID: 1, RoleID: 10,
		SkillID: 100, SkillName: "Go", Date: date(2024, 3, 1), Rank: 4,
	}

	for _, rows := range [][]AssessmentRow{{january, march}, {march, january}} {
		latest := ResolveLatest(rows)
		require.Len(t, latest, 1)
		assert.Equal(t, 4, latest[0].Rank)
		assert.Equal(t, date(2024, 3, 1), latest[0].Date)
	}
}

func TestResolveLatest_TieBreaksOnHighestRecordID(t *testing.T) {
	older := AssessmentRow{
		AssessmentID: 5, ItemID: 50, EmployeeID: 1, RoleID: 10,
		SkillID: 100, SkillName: "Go", Date: date(2024, 6, 1), Rank: 2,
	}
	newer := AssessmentRow{
		AssessmentID: 9, ItemID: 51, EmployeeID: 1, RoleID: 10,
		SkillID: 100, SkillName: "Go", Date: date(2024, 6, 1), Rank: 3,
	}

	// Consistent across repeated calls and input orderings.
	for i := 0; i < 3; i++ {
		for _, rows := range [][]AssessmentRow{{older, newer}, {newer, older}} {
			latest := ResolveLatest(rows)
			require.Len(t, latest, 1)
			assert.Equal(t, 3, latest[0].Rank)
		}
	}
}

func TestResolveLatest_SameAssessmentDuplicateSkillUsesHighestItemID(t *testing.T) {
	first := AssessmentRow{
		AssessmentID: 7, ItemID: 70, EmployeeID: 1, RoleID: 10,
		SkillID: 100, SkillName: "Go", Date: date(2024, 6, 1), Rank: 1,
	}
	second := AssessmentRow{
		AssessmentID: 7, ItemID: 71, EmployeeID: 1, RoleID: 10,
		SkillID: 100, SkillName: "Go", Date: date(2024, 6, 1), Rank: 4,
	}

	latest := ResolveLatest([]AssessmentRow{first, second})
	require.Len(t, latest, 1)
	assert.Equal(t, 4, latest[0].Rank)
}

func TestResolveLatest_UnassessedSkillAbsentNotZero(t *testing.T) {
	rows := []AssessmentRow{
		{AssessmentID: 1, ItemID: 1, EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Date: date(2024, 1, 1), Rank: 3},
	}

	latest := ResolveLatest(rows)
	require.Len(t, latest, 1)
	for _, la := range latest {
		assert.NotEqual(t, int64(999), la.SkillID)
	}
}

func TestResolveLatest_SeparatePerRole(t *testing.T) {
	rows := []AssessmentRow{
		{AssessmentID: 1, ItemID: 1, EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Date: date(2024, 1, 1), Rank: 2},
		{AssessmentID: 2, ItemID: 2, EmployeeID: 1, RoleID: 20, SkillID: 100, SkillName: "Go", Date: date(2024, 2, 1), Rank: 5},
	}

	latest := ResolveLatest(rows)
	require.Len(t, latest, 2)
}

func TestResolveLatest_SkipsOrphanedItems(t *testing.T) {
	rows := []AssessmentRow{
		{AssessmentID: 1, ItemID: 1, EmployeeID: 1, RoleID: 10, SkillID: 0, SkillName: "deleted", Date: date(2024, 1, 1), Rank: 2},
	}

	assert.Empty(t, ResolveLatest(rows))
}

func TestRequirementsByRole_GroupsAndSorts(t *testing.T) {
	reqs := RequirementsByRole([]Requirement{
		{RoleID: 10, SkillID: 101, SkillName: "SQL", RequiredRank: 4},
		{RoleID: 10, SkillID: 100, SkillName: "Go", RequiredRank: 3},
		{RoleID: 20, SkillID: 100, SkillName: "Go", RequiredRank: 5},
	})

	require.Len(t, reqs[10], 2)
	assert.Equal(t, "Go", reqs[10][0].SkillName)
	require.Len(t, reqs[20], 1)
}
