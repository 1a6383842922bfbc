package competency

import "sort"

type tripleKey struct {
	EmployeeID int64
	RoleID     int64
	SkillID    int64
}

// RequirementsByRole groups requirement rows by role id. Rows without a
// resolvable skill are dropped rather than propagated.
func RequirementsByRole(reqs []Requirement) map[int64][]Requirement {
	out := make(map[int64][]Requirement, len(reqs))
	for _, r := range reqs {
		if r.SkillID == 0 {
			continue
		}
		out[r.RoleID] = append(out[r.RoleID], r)
	}
	for _, rs := range out {
		sort.Slice(rs, func(i, j int) bool { return rs[i].SkillName < rs[j].SkillName })
	}
	return out
}

// ResolveLatest keeps, for every (employee, role, skill) combination, the rank
// recorded by the most recently dated assessment. Ties on the date resolve to
// the highest assessment id, then the highest item id, so the most recently
// inserted record wins and repeated calls over the same rows pick the same
// one. Skills never assessed for a pair are simply absent from the result.
func ResolveLatest(rows []AssessmentRow) []LatestAssessment {
	best := make(map[tripleKey]AssessmentRow, len(rows))
	for _, row := range rows {
		if row.SkillID == 0 {
			continue
		}
		k := tripleKey{EmployeeID: row.EmployeeID, RoleID: row.RoleID, SkillID: row.SkillID}
		cur, ok := best[k]
		if !ok || laterRow(row, cur) {
			best[k] = row
		}
	}

	out := make([]LatestAssessment, 0, len(best))
	for _, row := range best {
		out = append(out, LatestAssessment{
			EmployeeID: row.EmployeeID,
			RoleID:     row.RoleID,
			SkillID:    row.SkillID,
			SkillName:  row.SkillName,
			Date:       row.Date,
			Rank:       row.Rank,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		if a.RoleID != b.RoleID {
			return a.RoleID < b.RoleID
		}
		return a.SkillName < b.SkillName
	})
	return out
}

func laterRow(a, b AssessmentRow) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if a.AssessmentID != b.AssessmentID {
		return a.AssessmentID > b.AssessmentID
	}
	return a.ItemID > b.ItemID
}

func indexLatest(latest []LatestAssessment) map[tripleKey]LatestAssessment {
	out := make(map[tripleKey]LatestAssessment, len(latest))
	for _, la := range latest {
		out[tripleKey{EmployeeID: la.EmployeeID, RoleID: la.RoleID, SkillID: la.SkillID}] = la
	}
	return out
}
