package usecase

import (
	"context"

	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/repository"

	"go.uber.org/zap"
)

type CompetencyUsecase interface {
	RoleRequirements(ctx context.Context, roleID int64) ([]competency.Requirement, error)
	LatestAssessments(ctx context.Context, employeeID, roleID int64) ([]competency.LatestAssessment, error)
	CompetencyDelta(ctx context.Context, employeeID, roleID int64) ([]competency.CompetencyDelta, error)
	RoleReadiness(ctx context.Context, employeeID, roleID int64) ([]competency.RoleReadiness, error)
	Overview(ctx context.Context) ([]competency.OverviewRow, error)
}

type Competency struct {
	loader      snapshotLoader
	roles       repository.RoleRepository
	assessments repository.AssessmentRepository
	logger      *zap.Logger
}

func NewCompetencyUsecase(
	employees repository.EmployeeRepository,
	roles repository.RoleRepository,
	assignments repository.AssignmentRepository,
	assessments repository.AssessmentRepository,
	logger *zap.Logger,
) *Competency {
	return &Competency{
		loader: snapshotLoader{
			employees:   employees,
			roles:       roles,
			assignments: assignments,
			assessments: assessments,
		},
		roles:       roles,
		assessments: assessments,
		logger:      logger,
	}
}

func (u *Competency) RoleRequirements(ctx context.Context, roleID int64) ([]competency.Requirement, error) {
	reqs, err := u.roles.ListRequirements(ctx, roleID)
	if err != nil {
		u.logger.Error("list role requirements", zap.Error(err))
		return nil, ErrInternal
	}
	return reqs, nil
}

func (u *Competency) LatestAssessments(ctx context.Context, employeeID, roleID int64) ([]competency.LatestAssessment, error) {
	rows, err := u.assessments.ListAssessmentRows(ctx, employeeID, roleID)
	if err != nil {
		u.logger.Error("list assessment rows", zap.Error(err))
		return nil, ErrInternal
	}
	return competency.ResolveLatest(rows), nil
}

func (u *Competency) CompetencyDelta(ctx context.Context, employeeID, roleID int64) ([]competency.CompetencyDelta, error) {
	s, err := u.loader.load(ctx)
	if err != nil {
		u.logger.Error("load snapshot", zap.Error(err))
		return nil, ErrInternal
	}
	return filterDeltas(s.Deltas, employeeID, roleID), nil
}

func (u *Competency) RoleReadiness(ctx context.Context, employeeID, roleID int64) ([]competency.RoleReadiness, error) {
	s, err := u.loader.load(ctx)
	if err != nil {
		u.logger.Error("load snapshot", zap.Error(err))
		return nil, ErrInternal
	}

	out := make([]competency.RoleReadiness, 0, len(s.Readiness))
	for _, rr := range s.Readiness {
		if employeeID > 0 && rr.EmployeeID != employeeID {
			continue
		}
		if roleID > 0 && rr.RoleID != roleID {
			continue
		}
		out = append(out, rr)
	}
	return out, nil
}

func (u *Competency) Overview(ctx context.Context) ([]competency.OverviewRow, error) {
	s, err := u.loader.load(ctx)
	if err != nil {
		u.logger.Error("load snapshot", zap.Error(err))
		return nil, ErrInternal
	}
	return competency.Overview(s.Readiness, s.employeeIndex(), s.roleNames()), nil
}

func filterDeltas(deltas []competency.CompetencyDelta, employeeID, roleID int64) []competency.CompetencyDelta {
	out := make([]competency.CompetencyDelta, 0, len(deltas))
	for _, d := range deltas {
		if employeeID > 0 && d.EmployeeID != employeeID {
			continue
		}
		if roleID > 0 && d.RoleID != roleID {
			continue
		}
		out = append(out, d)
	}
	return out
}
