package handler

import (
	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/pkg/response"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PlanningHandler struct {
	uc usecase.PlanningUsecase
}

func NewPlanningHandler(uc usecase.PlanningUsecase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

func (h *PlanningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/gap-analysis", h.GapAnalysis)
	r.Get("/training-needs", h.TrainingNeeds)
	r.Get("/learning-paths", h.LearningPaths)
}

type heatmapCellResponse struct {
	RoleID        int64   `json:"role_id"`
	RoleName      string  `json:"role_name"`
	SkillID       int64   `json:"skill_id"`
	SkillName     string  `json:"skill_name"`
	EmployeeCount int     `json:"employee_count"`
	AvgGap        float64 `json:"avg_gap"`
	MinGap        int     `json:"min_gap"`
	MaxGap        int     `json:"max_gap"`
}

type trainingNeedResponse struct {
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Department    *string `json:"department"`
	RoleID        int64   `json:"role_id"`
	RoleName      string  `json:"role_name"`
	SkillsWithGap int     `json:"skills_with_gap"`
	TotalGap      int     `json:"total_gap"`
	AvgGap        float64 `json:"avg_gap"`
	Priority      string  `json:"priority"`
}

type trainingResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Provider      string `json:"provider"`
	DurationHours int    `json:"duration_hours"`
}

type learningPathResponse struct {
	EmployeeID   int64              `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	RoleID       int64              `json:"role_id"`
	RoleName     string             `json:"role_name"`
	SkillID      int64              `json:"skill_id"`
	SkillName    string             `json:"skill_name"`
	CurrentRank  int                `json:"current_rank"`
	TargetRank   int                `json:"target_rank"`
	Gap          int                `json:"gap"`
	Priority     string             `json:"priority"`
	Trainings    []trainingResponse `json:"recommended_trainings"`
}

func (h *PlanningHandler) GapAnalysis(c fiber.Ctx) error {
	items, err := h.uc.GapAnalysis(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]heatmapCellResponse, 0, len(items))
	for _, it := range items {
		res = append(res, heatmapCellResponse{
			RoleID:        it.RoleID,
			RoleName:      it.RoleName,
			SkillID:       it.SkillID,
			SkillName:     it.SkillName,
			EmployeeCount: it.EmployeeCount,
			AvgGap:        it.AvgGap,
			MinGap:        it.MinGap,
			MaxGap:        it.MaxGap,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PlanningHandler) TrainingNeeds(c fiber.Ctx) error {
	minGap, err := queryFloat(c, "minGap", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.TrainingNeeds(c.Context(), minGap)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]trainingNeedResponse, 0, len(items))
	for _, it := range items {
		res = append(res, trainingNeedResponse{
			EmployeeID:    it.EmployeeID,
			EmployeeName:  it.EmployeeName,
			Department:    it.Department,
			RoleID:        it.RoleID,
			RoleName:      it.RoleName,
			SkillsWithGap: it.SkillsWithGap,
			TotalGap:      it.TotalGap,
			AvgGap:        it.AvgGap,
			Priority:      competency.PriorityForGap(it.AvgGap),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PlanningHandler) LearningPaths(c fiber.Ctx) error {
	employeeID, err := queryInt64(c, "employeeId")
	if err != nil {
		return err
	}
	roleID, err := queryInt64(c, "roleId")
	if err != nil {
		return err
	}

	items, err := h.uc.LearningPaths(c.Context(), employeeID, roleID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]learningPathResponse, 0, len(items))
	for _, it := range items {
		trainings := make([]trainingResponse, 0, len(it.Trainings))
		for _, t := range it.Trainings {
			trainings = append(trainings, trainingResponse{
				ID:            t.ID,
				Name:          t.Name,
				Provider:      t.Provider,
				DurationHours: t.DurationHours,
			})
		}
		res = append(res, learningPathResponse{
			EmployeeID:   it.EmployeeID,
			EmployeeName: it.EmployeeName,
			RoleID:       it.RoleID,
			RoleName:     it.RoleName,
			SkillID:      it.SkillID,
			SkillName:    it.SkillName,
			CurrentRank:  it.CurrentRank,
			TargetRank:   it.TargetRank,
			Gap:          it.Gap,
			Priority:     it.Priority,
			Trainings:    trainings,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
