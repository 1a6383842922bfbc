package usecase

import (
	"context"
	"time"

	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/repository"

	"go.uber.org/zap"
)

type WorkforceUsecase interface {
	TeamCapability(ctx context.Context, department string) ([]competency.TeamCapabilityRow, error)
	SuccessionCandidates(ctx context.Context, roleID int64, minReadiness float64) ([]competency.SuccessionCandidate, error)
	ResourceAllocation(ctx context.Context) ([]competency.ResourceAllocationRow, error)
}

type Workforce struct {
	loader   snapshotLoader
	cache    ReportCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewWorkforceUsecase(
	employees repository.EmployeeRepository,
	roles repository.RoleRepository,
	assignments repository.AssignmentRepository,
	assessments repository.AssessmentRepository,
	cache ReportCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Workforce {
	return &Workforce{
		loader: snapshotLoader{
			employees:   employees,
			roles:       roles,
			assignments: assignments,
			assessments: assessments,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (u *Workforce) TeamCapability(ctx context.Context, department string) ([]competency.TeamCapabilityRow, error) {
	s, err := u.loader.load(ctx)
	if err != nil {
		u.logger.Error("load snapshot", zap.Error(err))
		return nil, ErrInternal
	}
	return competency.TeamCapability(s.Readiness, s.employeeIndex(), s.roleNames(), department), nil
}

func (u *Workforce) SuccessionCandidates(ctx context.Context, roleID int64, minReadiness float64) ([]competency.SuccessionCandidate, error) {
	if minReadiness < 0 || minReadiness > 100 {
		return nil, ErrInvalidInput
	}
	s, err := u.loader.load(ctx)
	if err != nil {
		u.logger.Error("load snapshot", zap.Error(err))
		return nil, ErrInternal
	}
	return competency.SuccessionCandidates(s.Readiness, s.Deltas, s.employeeIndex(), s.roleNames(), roleID, minReadiness), nil
}

func (u *Workforce) ResourceAllocation(ctx context.Context) ([]competency.ResourceAllocationRow, error) {
	return cachedReport(ctx, u.cache, u.cacheTTL, reportCacheKey("resource-allocation"), func() ([]competency.ResourceAllocationRow, error) {
		s, err := u.loader.load(ctx)
		if err != nil {
			u.logger.Error("load snapshot", zap.Error(err))
			return nil, ErrInternal
		}
		return competency.ResourceAllocation(s.Roles, s.Assignments, s.Readiness, s.Deltas), nil
	})
}
