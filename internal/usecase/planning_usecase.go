package usecase

import (
	"context"
	"time"

	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/repository"

	"go.uber.org/zap"
)

type PlanningUsecase interface {
	GapAnalysis(ctx context.Context) ([]competency.HeatmapCell, error)
	TrainingNeeds(ctx context.Context, minGap float64) ([]competency.TrainingNeed, error)
	LearningPaths(ctx context.Context, employeeID, roleID int64) ([]competency.LearningPath, error)
}

type Planning struct {
	loader    snapshotLoader
	trainings repository.TrainingRepository
	cache     ReportCache
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewPlanningUsecase(
	employees repository.EmployeeRepository,
	roles repository.RoleRepository,
	assignments repository.AssignmentRepository,
	assessments repository.AssessmentRepository,
	trainings repository.TrainingRepository,
	cache ReportCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Planning {
	return &Planning{
		loader: snapshotLoader{
			employees:   employees,
			roles:       roles,
			assignments: assignments,
			assessments: assessments,
		},
		trainings: trainings,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (u *Planning) GapAnalysis(ctx context.Context) ([]competency.HeatmapCell, error) {
	return cachedReport(ctx, u.cache, u.cacheTTL, reportCacheKey("gap-analysis"), func() ([]competency.HeatmapCell, error) {
		s, err := u.loader.load(ctx)
		if err != nil {
			u.logger.Error("load snapshot", zap.Error(err))
			return nil, ErrInternal
		}
		return competency.GapHeatmap(s.Deltas, s.roleNames()), nil
	})
}

func (u *Planning) TrainingNeeds(ctx context.Context, minGap float64) ([]competency.TrainingNeed, error) {
	if minGap < 0 {
		return nil, ErrInvalidInput
	}
	s, err := u.loader.load(ctx)
	if err != nil {
		u.logger.Error("load snapshot", zap.Error(err))
		return nil, ErrInternal
	}
	return competency.TrainingNeeds(s.Deltas, s.employeeIndex(), s.roleNames(), minGap), nil
}

func (u *Planning) LearningPaths(ctx context.Context, employeeID, roleID int64) ([]competency.LearningPath, error) {
	s, err := u.loader.load(ctx)
	if err != nil {
		u.logger.Error("load snapshot", zap.Error(err))
		return nil, ErrInternal
	}
	trainings, err := u.trainings.ListTrainings(ctx)
	if err != nil {
		u.logger.Error("list trainings", zap.Error(err))
		return nil, ErrInternal
	}

	deltas := filterDeltas(s.Deltas, employeeID, roleID)
	return competency.LearningPaths(deltas, trainings, s.employeeIndex(), s.roleNames()), nil
}
