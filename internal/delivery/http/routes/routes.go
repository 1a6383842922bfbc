package routes

import (
	"competency-matrix/internal/config"
	"competency-matrix/internal/database"
	"competency-matrix/internal/delivery/http/handler"
	"competency-matrix/internal/repository"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Registry struct {
	health        *handler.HealthHandler
	competency    *handler.CompetencyHandler
	planning      *handler.PlanningHandler
	workforce     *handler.WorkforceHandler
	certification *handler.CertificationHandler
	inventory     *handler.InventoryHandler
}

// NewRegistry wires the repository, usecase and handler graph. The cache may
// be nil; reports then recompute on every request.
func NewRegistry(cfg config.Config, db database.DB, cache usecase.ReportCache, cachePinger handler.Pinger, logger *zap.Logger) *Registry {
	employees := repository.NewPostgresEmployeeRepository(db)
	roles := repository.NewPostgresRoleRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	assignments := repository.NewPostgresAssignmentRepository(db)
	assessments := repository.NewPostgresAssessmentRepository(db)
	certifications := repository.NewPostgresCertificationRepository(db)
	trainings := repository.NewPostgresTrainingRepository(db)

	ttl := cfg.Analytics.CacheTTL

	competencyUC := usecase.NewCompetencyUsecase(employees, roles, assignments, assessments, logger)
	planningUC := usecase.NewPlanningUsecase(employees, roles, assignments, assessments, trainings, cache, ttl, logger)
	workforceUC := usecase.NewWorkforceUsecase(employees, roles, assignments, assessments, cache, ttl, logger)
	certificationUC := usecase.NewCertificationUsecase(certifications, logger)
	inventoryUC := usecase.NewInventoryUsecase(employees, roles, assignments, assessments, skills, cache, ttl, logger)

	return &Registry{
		health:        handler.NewHealthHandler(db, cachePinger),
		competency:    handler.NewCompetencyHandler(competencyUC),
		planning:      handler.NewPlanningHandler(planningUC),
		workforce:     handler.NewWorkforceHandler(workforceUC),
		certification: handler.NewCertificationHandler(certificationUC),
		inventory:     handler.NewInventoryHandler(inventoryUC),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	dashboard := app.Group("/api").Group("/v1").Group("/dashboard")
	r.competency.RegisterRoutes(dashboard)
	r.planning.RegisterRoutes(dashboard)
	r.workforce.RegisterRoutes(dashboard)
	r.certification.RegisterRoutes(dashboard)
	r.inventory.RegisterRoutes(dashboard)
}
