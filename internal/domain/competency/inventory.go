package competency

import (
	"sort"
	"time"
)

// SkillInventoryRow describes how one catalog skill is distributed across the
// workforce, based on every employee's latest assessed rank.
type SkillInventoryRow struct {
	SkillID          int64
	SkillName        string
	TotalEmployees   int
	AvgProficiency   float64
	EmployeesByLevel map[int]int
	Departments      []string
}

// SkillsInventory reports every catalog skill, including ones nobody has been
// assessed on. An employee assessed on the same skill under several roles
// counts once, at their highest latest rank, which keeps the per-level
// distribution summing to the employee count.
func SkillsInventory(skills []Skill, latest []LatestAssessment, employees map[int64]Employee) []SkillInventoryRow {
	type skillEmp struct {
		SkillID    int64
		EmployeeID int64
	}

	bestRank := make(map[skillEmp]int)
	for _, la := range latest {
		if _, ok := employees[la.EmployeeID]; !ok {
			continue
		}
		k := skillEmp{SkillID: la.SkillID, EmployeeID: la.EmployeeID}
		if la.Rank > bestRank[k] {
			bestRank[k] = la.Rank
		}
	}

	rankSum := make(map[int64]int)
	byLevel := make(map[int64]map[int]int)
	depts := make(map[int64]map[string]struct{})
	counts := make(map[int64]int)
	for k, rank := range bestRank {
		counts[k.SkillID]++
		rankSum[k.SkillID] += rank
		if byLevel[k.SkillID] == nil {
			byLevel[k.SkillID] = make(map[int]int)
		}
		byLevel[k.SkillID][rank]++

		emp := employees[k.EmployeeID]
		if emp.Department != nil {
			if depts[k.SkillID] == nil {
				depts[k.SkillID] = make(map[string]struct{})
			}
			depts[k.SkillID][*emp.Department] = struct{}{}
		}
	}

	out := make([]SkillInventoryRow, 0, len(skills))
	for _, s := range skills {
		row := SkillInventoryRow{
			SkillID:          s.ID,
			SkillName:        s.Name,
			TotalEmployees:   counts[s.ID],
			EmployeesByLevel: byLevel[s.ID],
			Departments:      make([]string, 0, len(depts[s.ID])),
		}
		if row.EmployeesByLevel == nil {
			row.EmployeesByLevel = make(map[int]int)
		}
		if row.TotalEmployees > 0 {
			row.AvgProficiency = round2(float64(rankSum[s.ID]) / float64(row.TotalEmployees))
		}
		for d := range depts[s.ID] {
			row.Departments = append(row.Departments, d)
		}
		sort.Strings(row.Departments)
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SkillName < out[j].SkillName })
	return out
}

// InitialAssessmentRow summarizes the earliest assessment activity of one
// employee in one role.
type InitialAssessmentRow struct {
	EmployeeID          int64
	EmployeeName        string
	Department          *string
	RoleID              int64
	RoleName            string
	AssessmentDate      time.Time
	TotalSkillsAssessed int
	AvgProficiency      float64
}

// InitialAssessmentSummary aggregates, per (employee, role), the items of the
// earliest-dated assessment. When several assessments share that minimum date
// all of their items are aggregated together rather than one picked
// arbitrarily.
func InitialAssessmentSummary(rows []AssessmentRow, employees map[int64]Employee, roleNames map[int64]string) []InitialAssessmentRow {
	type pairKey struct {
		EmployeeID int64
		RoleID     int64
	}

	minDate := make(map[pairKey]time.Time)
	for _, r := range rows {
		k := pairKey{EmployeeID: r.EmployeeID, RoleID: r.RoleID}
		if cur, ok := minDate[k]; !ok || r.Date.Before(cur) {
			minDate[k] = r.Date
		}
	}

	type acc struct {
		skills  map[int64]struct{}
		rankSum int
		items   int
	}
	accs := make(map[pairKey]*acc)
	for _, r := range rows {
		k := pairKey{EmployeeID: r.EmployeeID, RoleID: r.RoleID}
		if !r.Date.Equal(minDate[k]) {
			continue
		}
		a, ok := accs[k]
		if !ok {
			a = &acc{skills: make(map[int64]struct{})}
			accs[k] = a
		}
		a.skills[r.SkillID] = struct{}{}
		a.rankSum += r.Rank
		a.items++
	}

	out := make([]InitialAssessmentRow, 0, len(accs))
	for k, a := range accs {
		emp, ok := employees[k.EmployeeID]
		if !ok {
			continue
		}
		roleName, ok := roleNames[k.RoleID]
		if !ok {
			continue
		}
		out = append(out, InitialAssessmentRow{
			EmployeeID:          k.EmployeeID,
			EmployeeName:        emp.Name,
			Department:          emp.Department,
			RoleID:              k.RoleID,
			RoleName:            roleName,
			AssessmentDate:      minDate[k],
			TotalSkillsAssessed: len(a.skills),
			AvgProficiency:      round2(float64(a.rankSum) / float64(a.items)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.AssessmentDate.Equal(b.AssessmentDate) {
			return a.AssessmentDate.After(b.AssessmentDate)
		}
		return a.EmployeeName < b.EmployeeName
	})
	return out
}

// OverviewRow is a readiness entry decorated with display names for the
// dashboard landing view.
type OverviewRow struct {
	EmployeeID     int64
	EmployeeName   string
	Department     *string
	RoleID         int64
	RoleName       string
	ReadinessIndex float64
}

// Overview joins readiness with employee and role names, best-prepared first.
func Overview(readiness []RoleReadiness, employees map[int64]Employee, roleNames map[int64]string) []OverviewRow {
	out := make([]OverviewRow, 0, len(readiness))
	for _, rr := range readiness {
		emp, ok := employees[rr.EmployeeID]
		if !ok {
			continue
		}
		roleName, ok := roleNames[rr.RoleID]
		if !ok {
			continue
		}
		out = append(out, OverviewRow{
			EmployeeID:     rr.EmployeeID,
			EmployeeName:   emp.Name,
			Department:     emp.Department,
			RoleID:         rr.RoleID,
			RoleName:       roleName,
			ReadinessIndex: rr.ReadinessIndex,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ReadinessIndex != b.ReadinessIndex {
			return a.ReadinessIndex > b.ReadinessIndex
		}
		return a.EmployeeName < b.EmployeeName
	})
	return out
}
