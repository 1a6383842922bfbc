package handler

import (
	"competency-matrix/internal/domain/competency"
	"competency-matrix/internal/pkg/response"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type WorkforceHandler struct {
	uc usecase.WorkforceUsecase
}

func NewWorkforceHandler(uc usecase.WorkforceUsecase) *WorkforceHandler {
	return &WorkforceHandler{uc: uc}
}

func (h *WorkforceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/team-capability", h.TeamCapability)
	r.Get("/succession-candidates", h.SuccessionCandidates)
	r.Get("/resource-allocation", h.ResourceAllocation)
}

type teamCapabilityResponse struct {
	Department     string  `json:"department"`
	RoleID         int64   `json:"role_id"`
	RoleName       string  `json:"role_name"`
	TotalEmployees int     `json:"total_employees"`
	AvgReadiness   float64 `json:"avg_readiness"`
	ReadyCount     int     `json:"ready_count"`
	NotReadyCount  int     `json:"not_ready_count"`
}

type successionCandidateResponse struct {
	RoleID              int64   `json:"role_id"`
	RoleName            string  `json:"role_name"`
	EmployeeID          int64   `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	Department          *string `json:"department"`
	ReadinessIndex      float64 `json:"readiness_index"`
	KeySkillsCovered    int     `json:"key_skills_covered"`
	TotalSkillsRequired int     `json:"total_skills_required"`
	CoveragePercentage  float64 `json:"coverage_percentage"`
	PotentialRating     string  `json:"potential_rating"`
}

type criticalSkillGapResponse struct {
	SkillID           int64  `json:"skill_id"`
	SkillName         string `json:"skill_name"`
	EmployeesAffected int    `json:"employees_affected"`
}

type resourceAllocationResponse struct {
	RoleID             int64                      `json:"role_id"`
	RoleName           string                     `json:"role_name"`
	CurrentEmployees   int                        `json:"current_employees"`
	AvgReadiness       float64                    `json:"avg_readiness"`
	CriticalSkillGaps  []criticalSkillGapResponse `json:"critical_skill_gaps"`
	RecommendedActions []string                   `json:"recommended_actions"`
}

func (h *WorkforceHandler) TeamCapability(c fiber.Ctx) error {
	department := c.Query("department")

	items, err := h.uc.TeamCapability(c.Context(), department)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]teamCapabilityResponse, 0, len(items))
	for _, it := range items {
		res = append(res, teamCapabilityResponse{
			Department:     it.Department,
			RoleID:         it.RoleID,
			RoleName:       it.RoleName,
			TotalEmployees: it.TotalEmployees,
			AvgReadiness:   it.AvgReadiness,
			ReadyCount:     it.ReadyCount,
			NotReadyCount:  it.NotReadyCount,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *WorkforceHandler) SuccessionCandidates(c fiber.Ctx) error {
	roleID, err := queryInt64(c, "roleId")
	if err != nil {
		return err
	}
	minReadiness, err := queryFloat(c, "minReadiness", competency.DefaultMinReadiness)
	if err != nil {
		return err
	}

	items, err := h.uc.SuccessionCandidates(c.Context(), roleID, minReadiness)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]successionCandidateResponse, 0, len(items))
	for _, it := range items {
		res = append(res, successionCandidateResponse{
			RoleID:              it.RoleID,
			RoleName:            it.RoleName,
			EmployeeID:          it.EmployeeID,
			EmployeeName:        it.EmployeeName,
			Department:          it.Department,
			ReadinessIndex:      it.ReadinessIndex,
			KeySkillsCovered:    it.KeySkillsCovered,
			TotalSkillsRequired: it.TotalSkillsRequired,
			CoveragePercentage:  it.CoveragePercentage,
			PotentialRating:     it.PotentialRating,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *WorkforceHandler) ResourceAllocation(c fiber.Ctx) error {
	items, err := h.uc.ResourceAllocation(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]resourceAllocationResponse, 0, len(items))
	for _, it := range items {
		gaps := make([]criticalSkillGapResponse, 0, len(it.CriticalSkillGaps))
		for _, g := range it.CriticalSkillGaps {
			gaps = append(gaps, criticalSkillGapResponse{
				SkillID:           g.SkillID,
				SkillName:         g.SkillName,
				EmployeesAffected: g.EmployeesAffected,
			})
		}
		res = append(res, resourceAllocationResponse{
			RoleID:             it.RoleID,
			RoleName:           it.RoleName,
			CurrentEmployees:   it.CurrentEmployees,
			AvgReadiness:       it.AvgReadiness,
			CriticalSkillGaps:  gaps,
			RecommendedActions: it.RecommendedActions,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
