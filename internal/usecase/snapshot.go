package usecase

import (
	"context"

	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/repository"
)

// snapshot is the in-memory working set a report derives from. Everything is
// loaded per request; the engine recomputes from current entity state each
// time, so there is no staleness to manage.
type snapshot struct {
	Employees   []competency.Employee
	Roles       []competency.Role
	Assignments []competency.Assignment
	ReqsByRole  map[int64][]competency.Requirement
	Latest      []competency.LatestAssessment
	Deltas      []competency.CompetencyDelta
	Readiness   []competency.RoleReadiness
}

func (s snapshot) employeeIndex() map[int64]competency.Employee {
	out := make(map[int64]competency.Employee, len(s.Employees))
	for _, e := range s.Employees {
		out[e.ID] = e
	}
	return out
}

func (s snapshot) roleNames() map[int64]string {
	out := make(map[int64]string, len(s.Roles))
	for _, r := range s.Roles {
		out[r.ID] = r.Name
	}
	return out
}

type snapshotLoader struct {
	employees   repository.EmployeeRepository
	roles       repository.RoleRepository
	assignments repository.AssignmentRepository
	assessments repository.AssessmentRepository
}

func (l snapshotLoader) load(ctx context.Context) (snapshot, error) {
	emps, err := l.employees.ListEmployees(ctx)
	if err != nil {
		return snapshot{}, err
	}
	roles, err := l.roles.ListRoles(ctx)
	if err != nil {
		return snapshot{}, err
	}
	assigns, err := l.assignments.ListAssignments(ctx)
	if err != nil {
		return snapshot{}, err
	}
	reqs, err := l.roles.ListRequirements(ctx, 0)
	if err != nil {
		return snapshot{}, err
	}
	rows, err := l.assessments.ListAssessmentRows(ctx, 0, 0)
	if err != nil {
		return snapshot{}, err
	}

	s := snapshot{
		Employees:   emps,
		Roles:       roles,
		Assignments: assigns,
		ReqsByRole:  competency.RequirementsByRole(reqs),
		Latest:      competency.ResolveLatest(rows),
	}
	s.Deltas = competency.ComputeDeltas(assigns, s.ReqsByRole, s.Latest)
	s.Readiness = competency.ComputeReadiness(s.Deltas)
	return s, nil
}
