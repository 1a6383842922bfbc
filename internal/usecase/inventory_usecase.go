package usecase

import (
	"context"
	"time"

	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/repository"

	"go.uber.org/zap"
)

type InventoryUsecase interface {
	SkillsInventory(ctx context.Context) ([]competency.SkillInventoryRow, error)
	InitialAssessments(ctx context.Context) ([]competency.InitialAssessmentRow, error)
}

type Inventory struct {
	loader   snapshotLoader
	skills   repository.SkillRepository
	cache    ReportCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewInventoryUsecase(
	employees repository.EmployeeRepository,
	roles repository.RoleRepository,
	assignments repository.AssignmentRepository,
	assessments repository.AssessmentRepository,
	skills repository.SkillRepository,
	cache ReportCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Inventory {
	return &Inventory{
		loader: snapshotLoader{
			employees:   employees,
			roles:       roles,
			assignments: assignments,
			assessments: assessments,
		},
		skills:   skills,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (u *Inventory) SkillsInventory(ctx context.Context) ([]competency.SkillInventoryRow, error) {
	return cachedReport(ctx, u.cache, u.cacheTTL, reportCacheKey("skills-inventory"), func() ([]competency.SkillInventoryRow, error) {
		skills, err := u.skills.ListSkills(ctx)
		if err != nil {
			u.logger.Error("list skills", zap.Error(err))
			return nil, ErrInternal
		}
		s, err := u.loader.load(ctx)
		if err != nil {
			u.logger.Error("load snapshot", zap.Error(err))
			return nil, ErrInternal
		}
		return competency.SkillsInventory(skills, s.Latest, s.employeeIndex()), nil
	})
}

func (u *Inventory) InitialAssessments(ctx context.Context) ([]competency.InitialAssessmentRow, error) {
	emps, err := u.loader.employees.ListEmployees(ctx)
	if err != nil {
		u.logger.Error("list employees", zap.Error(err))
		return nil, ErrInternal
	}
	roles, err := u.loader.roles.ListRoles(ctx)
	if err != nil {
		u.logger.Error("list roles", zap.Error(err))
		return nil, ErrInternal
	}
	rows, err := u.loader.assessments.ListAssessmentRows(ctx, 0, 0)
	if err != nil {
		u.logger.Error("list assessment rows", zap.Error(err))
		return nil, ErrInternal
	}

	s := snapshot{Employees: emps, Roles: roles}
	return competency.InitialAssessmentSummary(rows, s.employeeIndex(), s.roleNames()), nil
}
