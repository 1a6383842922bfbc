package competency

import "sort"

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// HeatmapCell aggregates the gap of every assigned employee for one
// (role, skill) combination.
type HeatmapCell struct {
	RoleID        int64
	RoleName      string
	SkillID       int64
	SkillName     string
	EmployeeCount int
	AvgGap        float64
	MinGap        int
	MaxGap        int
}

// GapHeatmap groups deltas by role and skill. Cells only exist where an
// assignment and a requirement meet; deltas referencing a role that no longer
// resolves to a name are skipped.
func GapHeatmap(deltas []CompetencyDelta, roleNames map[int64]string) []HeatmapCell {
	type cellKey struct {
		RoleID  int64
		SkillID int64
	}

	cells := make(map[cellKey]*HeatmapCell)
	employees := make(map[cellKey]map[int64]struct{})
	sums := make(map[cellKey]int)

	for _, d := range deltas {
		name, ok := roleNames[d.RoleID]
		if !ok {
			continue
		}
		k := cellKey{RoleID: d.RoleID, SkillID: d.SkillID}
		c, ok := cells[k]
		if !ok {
			c = &HeatmapCell{
				RoleID:    d.RoleID,
				RoleName:  name,
				SkillID:   d.SkillID,
				SkillName: d.SkillName,
				MinGap:    d.Gap,
				MaxGap:    d.Gap,
			}
			cells[k] = c
			employees[k] = make(map[int64]struct{})
		}
		employees[k][d.EmployeeID] = struct{}{}
		sums[k] += d.Gap
		if d.Gap < c.MinGap {
			c.MinGap = d.Gap
		}
		if d.Gap > c.MaxGap {
			c.MaxGap = d.Gap
		}
	}

	out := make([]HeatmapCell, 0, len(cells))
	for k, c := range cells {
		c.EmployeeCount = len(employees[k])
		c.AvgGap = round2(float64(sums[k]) / float64(c.EmployeeCount))
		out = append(out, *c)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.AvgGap != b.AvgGap {
			return a.AvgGap > b.AvgGap
		}
		if a.RoleName != b.RoleName {
			return a.RoleName < b.RoleName
		}
		return a.SkillName < b.SkillName
	})
	return out
}

// TrainingNeed summarizes every skill gap of one employee in one assigned role.
type TrainingNeed struct {
	EmployeeID   int64
	EmployeeName string
	Department   *string
	RoleID       int64
	RoleName     string
	SkillsWithGap int
	TotalGap      int
	AvgGap        float64
}

// TrainingNeeds aggregates, per (employee, role), the deltas whose gap
// exceeds minGap. The default threshold of 0 keeps every employee with at
// least one open gap.
func TrainingNeeds(deltas []CompetencyDelta, employees map[int64]Employee, roleNames map[int64]string, minGap float64) []TrainingNeed {
	type pairKey struct {
		EmployeeID int64
		RoleID     int64
	}

	needs := make(map[pairKey]*TrainingNeed)
	for _, d := range deltas {
		if float64(d.Gap) <= minGap {
			continue
		}
		emp, ok := employees[d.EmployeeID]
		if !ok {
			continue
		}
		roleName, ok := roleNames[d.RoleID]
		if !ok {
			continue
		}

		k := pairKey{EmployeeID: d.EmployeeID, RoleID: d.RoleID}
		n, ok := needs[k]
		if !ok {
			n = &TrainingNeed{
				EmployeeID:   d.EmployeeID,
				EmployeeName: emp.Name,
				Department:   emp.Department,
				RoleID:       d.RoleID,
				RoleName:     roleName,
			}
			needs[k] = n
		}
		n.SkillsWithGap++
		n.TotalGap += d.Gap
	}

	out := make([]TrainingNeed, 0, len(needs))
	for _, n := range needs {
		n.AvgGap = round2(float64(n.TotalGap) / float64(n.SkillsWithGap))
		out = append(out, *n)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TotalGap != b.TotalGap {
			return a.TotalGap > b.TotalGap
		}
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.RoleName < b.RoleName
	})
	return out
}

// LearningPath is one open skill gap enriched with candidate trainings and a
// priority label.
type LearningPath struct {
	EmployeeID   int64
	EmployeeName string
	RoleID       int64
	RoleName     string
	SkillID      int64
	SkillName    string
	CurrentRank  int
	TargetRank   int
	Gap          int
	Priority     string
	Trainings    []Training
}

const maxRecommendedTrainings = 3

// LearningPaths turns every delta with an open gap into a recommendation row.
// Trainings tagged to the exact skill come first, untagged catalog entries
// fill the remainder, at most three per row.
func LearningPaths(deltas []CompetencyDelta, trainings []Training, employees map[int64]Employee, roleNames map[int64]string) []LearningPath {
	tagged := make(map[int64][]Training)
	untagged := make([]Training, 0)
	for _, t := range trainings {
		if t.SkillID != nil {
			tagged[*t.SkillID] = append(tagged[*t.SkillID], t)
			continue
		}
		untagged = append(untagged, t)
	}
	for _, ts := range tagged {
		sort.Slice(ts, func(i, j int) bool { return ts[i].Name < ts[j].Name })
	}
	sort.Slice(untagged, func(i, j int) bool { return untagged[i].Name < untagged[j].Name })

	out := make([]LearningPath, 0)
	for _, d := range deltas {
		if d.Gap <= 0 {
			continue
		}
		emp, ok := employees[d.EmployeeID]
		if !ok {
			continue
		}
		roleName, ok := roleNames[d.RoleID]
		if !ok {
			continue
		}

		recs := make([]Training, 0, maxRecommendedTrainings)
		recs = append(recs, tagged[d.SkillID]...)
		recs = append(recs, untagged...)
		if len(recs) > maxRecommendedTrainings {
			recs = recs[:maxRecommendedTrainings]
		}

		out = append(out, LearningPath{
			EmployeeID:   d.EmployeeID,
			EmployeeName: emp.Name,
			RoleID:       d.RoleID,
			RoleName:     roleName,
			SkillID:      d.SkillID,
			SkillName:    d.SkillName,
			CurrentRank:  d.ActualRank,
			TargetRank:   d.RequiredRank,
			Gap:          d.Gap,
			Priority:     PriorityForGap(float64(d.Gap)),
			Trainings:    recs,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Gap != b.Gap {
			return a.Gap > b.Gap
		}
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		return a.SkillName < b.SkillName
	})
	return out
}

// PriorityForGap labels the urgency of closing a gap: 2 and above is high,
// 1 up to but excluding 2 is medium, anything positive below 1 is low.
func PriorityForGap(gap float64) string {
	switch {
	case gap >= 2:
		return PriorityHigh
	case gap >= 1:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
