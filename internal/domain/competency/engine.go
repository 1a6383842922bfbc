package competency

import (
	"math"
	"sort"
)

// ComputeDeltas joins every employee-role assignment against the role's
// current requirements and the employee's latest assessed rank per skill.
// One delta is produced per required skill of each assignment; a required
// skill with no assessment yields ActualRank 0 and the maximum possible gap.
// Employees assessed against roles they are not assigned to produce nothing.
func ComputeDeltas(assignments []Assignment, reqsByRole map[int64][]Requirement, latest []LatestAssessment) []CompetencyDelta {
	idx := indexLatest(latest)

	out := make([]CompetencyDelta, 0, len(assignments))
	for _, as := range assignments {
		for _, req := range reqsByRole[as.RoleID] {
			if req.SkillID == 0 {
				continue
			}

			actual := 0
			k := tripleKey{EmployeeID: as.EmployeeID, RoleID: as.RoleID, SkillID: req.SkillID}
			if la, ok := idx[k]; ok {
				actual = la.Rank
			}

			gap := req.RequiredRank - actual
			if gap < 0 {
				gap = 0
			}

			out = append(out, CompetencyDelta{
				EmployeeID:   as.EmployeeID,
				RoleID:       as.RoleID,
				SkillID:      req.SkillID,
				SkillName:    req.SkillName,
				RequiredRank: req.RequiredRank,
				ActualRank:   actual,
				Gap:          gap,
			})
		}
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

// ComputeReadiness averages per-skill attainment, capped at fully met, across
// all required skills of each (employee, role) pair present in the deltas.
// Pairs whose role declares no requirements never appear in the input and are
// therefore excluded from the output instead of reporting a misleading value.
func ComputeReadiness(deltas []CompetencyDelta) []RoleReadiness {
	type pairKey struct {
		EmployeeID int64
		RoleID     int64
	}
	type acc struct {
		sum float64
		n   int
	}

	accs := make(map[pairKey]*acc)
	order := make([]pairKey, 0)
	for _, d := range deltas {
		k := pairKey{EmployeeID: d.EmployeeID, RoleID: d.RoleID}
		a, ok := accs[k]
		if !ok {
			a = &acc{}
			accs[k] = a
			order = append(order, k)
		}
		a.sum += attainment(d.ActualRank, d.RequiredRank)
		a.n++
	}

	out := make([]RoleReadiness, 0, len(accs))
	for _, k := range order {
		a := accs[k]
		if a.n == 0 {
			continue
		}
		out = append(out, RoleReadiness{
			EmployeeID:     k.EmployeeID,
			RoleID:         k.RoleID,
			ReadinessIndex: round2(100 * a.sum / float64(a.n)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		if a.ReadinessIndex != b.ReadinessIndex {
			return a.ReadinessIndex > b.ReadinessIndex
		}
		return a.RoleID < b.RoleID
	})
	return out
}

// attainment treats a non-positive required rank as fully met; it should not
// occur under the rank invariant but must not divide by zero.
func attainment(actual, required int) float64 {
	if required <= 0 {
		return 1
	}
	if actual <= 0 {
		return 0
	}
	ratio := float64(actual) / float64(required)
	if ratio > 1 {
		return 1
	}
	return ratio
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
