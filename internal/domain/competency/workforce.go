package competency

import (
	"fmt"
	"sort"
	"strings"
)

const (
	readyThreshold    = 90.0
	notReadyThreshold = 50.0
)

// TeamCapabilityRow aggregates readiness per department and role.
type TeamCapabilityRow struct {
	Department     string
	RoleID         int64
	RoleName       string
	TotalEmployees int
	AvgReadiness   float64
	ReadyCount     int
	NotReadyCount  int
}

// TeamCapability groups readiness by (department, role). Employees without a
// department are excluded; an empty department filter keeps every department.
func TeamCapability(readiness []RoleReadiness, employees map[int64]Employee, roleNames map[int64]string, department string) []TeamCapabilityRow {
	type groupKey struct {
		Department string
		RoleID     int64
	}
	type acc struct {
		row TeamCapabilityRow
		sum float64
	}

	groups := make(map[groupKey]*acc)
	for _, rr := range readiness {
		emp, ok := employees[rr.EmployeeID]
		if !ok || emp.Department == nil {
			continue
		}
		if department != "" && *emp.Department != department {
			continue
		}
		roleName, ok := roleNames[rr.RoleID]
		if !ok {
			continue
		}

		k := groupKey{Department: *emp.Department, RoleID: rr.RoleID}
		a, ok := groups[k]
		if !ok {
			a = &acc{row: TeamCapabilityRow{Department: k.Department, RoleID: rr.RoleID, RoleName: roleName}}
			groups[k] = a
		}
		a.row.TotalEmployees++
		a.sum += rr.ReadinessIndex
		if rr.ReadinessIndex >= readyThreshold {
			a.row.ReadyCount++
		}
		if rr.ReadinessIndex < notReadyThreshold {
			a.row.NotReadyCount++
		}
	}

	out := make([]TeamCapabilityRow, 0, len(groups))
	for _, a := range groups {
		a.row.AvgReadiness = round2(a.sum / float64(a.row.TotalEmployees))
		out = append(out, a.row)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		return a.RoleName < b.RoleName
	})
	return out
}

// SuccessionCandidate is one employee considered for one role, with how much
// of the role's skill set they already cover.
type SuccessionCandidate struct {
	RoleID              int64
	RoleName            string
	EmployeeID          int64
	EmployeeName        string
	Department          *string
	ReadinessIndex      float64
	KeySkillsCovered    int
	TotalSkillsRequired int
	CoveragePercentage  float64
	PotentialRating     string
}

// DefaultMinReadiness is the readiness floor applied when the caller does not
// supply one.
const DefaultMinReadiness = 50.0

// SuccessionCandidates lists, per role, the employees whose readiness meets
// minReadiness (boundary inclusive). A roleID of 0 keeps every role.
func SuccessionCandidates(readiness []RoleReadiness, deltas []CompetencyDelta, employees map[int64]Employee, roleNames map[int64]string, roleID int64, minReadiness float64) []SuccessionCandidate {
	type pairKey struct {
		EmployeeID int64
		RoleID     int64
	}
	type coverage struct {
		covered int
		total   int
	}

	cov := make(map[pairKey]*coverage)
	for _, d := range deltas {
		k := pairKey{EmployeeID: d.EmployeeID, RoleID: d.RoleID}
		c, ok := cov[k]
		if !ok {
			c = &coverage{}
			cov[k] = c
		}
		c.total++
		if d.Gap == 0 {
			c.covered++
		}
	}

	out := make([]SuccessionCandidate, 0)
	for _, rr := range readiness {
		if roleID != 0 && rr.RoleID != roleID {
			continue
		}
		if rr.ReadinessIndex < minReadiness {
			continue
		}
		emp, ok := employees[rr.EmployeeID]
		if !ok {
			continue
		}
		roleName, ok := roleNames[rr.RoleID]
		if !ok {
			continue
		}

		c := cov[pairKey{EmployeeID: rr.EmployeeID, RoleID: rr.RoleID}]
		covered, total := 0, 0
		if c != nil {
			covered, total = c.covered, c.total
		}
		pct := 0.0
		if total > 0 {
			pct = round2(100 * float64(covered) / float64(total))
		}

		out = append(out, SuccessionCandidate{
			RoleID:              rr.RoleID,
			RoleName:            roleName,
			EmployeeID:          rr.EmployeeID,
			EmployeeName:        emp.Name,
			Department:          emp.Department,
			ReadinessIndex:      rr.ReadinessIndex,
			KeySkillsCovered:    covered,
			TotalSkillsRequired: total,
			CoveragePercentage:  pct,
			PotentialRating:     PotentialRating(pct, rr.ReadinessIndex),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.RoleID != b.RoleID {
			return a.RoleID < b.RoleID
		}
		if a.ReadinessIndex != b.ReadinessIndex {
			return a.ReadinessIndex > b.ReadinessIndex
		}
		return a.EmployeeName < b.EmployeeName
	})
	return out
}

// PotentialRating combines skill coverage and readiness into a label.
func PotentialRating(coveragePct, readiness float64) string {
	switch {
	case coveragePct >= 80 && readiness >= 80:
		return PriorityHigh
	case coveragePct >= 60 && readiness >= 60:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// CriticalSkillGap names a skill where several assigned employees are at
// least two ranks behind the requirement.
type CriticalSkillGap struct {
	SkillID           int64
	SkillName         string
	EmployeesAffected int
}

// ResourceAllocationRow summarizes one role's staffing and gap posture.
type ResourceAllocationRow struct {
	RoleID             int64
	RoleName           string
	CurrentEmployees   int
	AvgReadiness       float64
	CriticalSkillGaps  []CriticalSkillGap
	RecommendedActions []string
}

const (
	criticalGapRank       = 2
	criticalGapMinWorkers = 2
	maxCriticalGaps       = 5
	upskillingThreshold   = 70.0
)

// ResourceAllocation reports, per role, the current headcount, the average
// readiness of those assigned, the skills where at least two employees trail
// the requirement by two or more ranks, and the resulting advisory actions.
func ResourceAllocation(roles []Role, assignments []Assignment, readiness []RoleReadiness, deltas []CompetencyDelta) []ResourceAllocationRow {
	headcount := make(map[int64]map[int64]struct{})
	for _, as := range assignments {
		if headcount[as.RoleID] == nil {
			headcount[as.RoleID] = make(map[int64]struct{})
		}
		headcount[as.RoleID][as.EmployeeID] = struct{}{}
	}

	readinessSum := make(map[int64]float64)
	readinessCount := make(map[int64]int)
	for _, rr := range readiness {
		readinessSum[rr.RoleID] += rr.ReadinessIndex
		readinessCount[rr.RoleID]++
	}

	type gapKey struct {
		RoleID  int64
		SkillID int64
	}
	gapWorkers := make(map[gapKey]map[int64]struct{})
	gapNames := make(map[gapKey]string)
	for _, d := range deltas {
		if d.Gap < criticalGapRank {
			continue
		}
		k := gapKey{RoleID: d.RoleID, SkillID: d.SkillID}
		if gapWorkers[k] == nil {
			gapWorkers[k] = make(map[int64]struct{})
		}
		gapWorkers[k][d.EmployeeID] = struct{}{}
		gapNames[k] = d.SkillName
	}

	out := make([]ResourceAllocationRow, 0, len(roles))
	for _, role := range roles {
		row := ResourceAllocationRow{
			RoleID:            role.ID,
			RoleName:          role.Name,
			CurrentEmployees:  len(headcount[role.ID]),
			CriticalSkillGaps: make([]CriticalSkillGap, 0),
		}

		hasReadiness := readinessCount[role.ID] > 0
		if hasReadiness {
			row.AvgReadiness = round2(readinessSum[role.ID] / float64(readinessCount[role.ID]))
		}

		for k, workers := range gapWorkers {
			if k.RoleID != role.ID || len(workers) < criticalGapMinWorkers {
				continue
			}
			row.CriticalSkillGaps = append(row.CriticalSkillGaps, CriticalSkillGap{
				SkillID:           k.SkillID,
				SkillName:         gapNames[k],
				EmployeesAffected: len(workers),
			})
		}
		sort.Slice(row.CriticalSkillGaps, func(i, j int) bool {
			a, b := row.CriticalSkillGaps[i], row.CriticalSkillGaps[j]
			if a.EmployeesAffected != b.EmployeesAffected {
				return a.EmployeesAffected > b.EmployeesAffected
			}
			return a.SkillName < b.SkillName
		})
		if len(row.CriticalSkillGaps) > maxCriticalGaps {
			row.CriticalSkillGaps = row.CriticalSkillGaps[:maxCriticalGaps]
		}

		row.RecommendedActions = recommendActions(row, hasReadiness)
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].RoleName < out[j].RoleName })
	return out
}

func recommendActions(row ResourceAllocationRow, hasReadiness bool) []string {
	actions := make([]string, 0, 3)
	if hasReadiness && row.AvgReadiness < upskillingThreshold {
		actions = append(actions, "Focus on upskilling existing employees in critical skills")
	}
	if len(row.CriticalSkillGaps) > 0 {
		names := make([]string, 0, len(row.CriticalSkillGaps))
		for _, g := range row.CriticalSkillGaps {
			names = append(names, g.SkillName)
		}
		actions = append(actions, fmt.Sprintf("Address critical gaps in: %s", strings.Join(names, ", ")))
	}
	if row.CurrentEmployees == 0 {
		actions = append(actions, "Consider hiring or reassigning employees")
	}
	return actions
}
