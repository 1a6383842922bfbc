package handler

import (
	"errors"
	"time"

	"competency-matrix/internal/pkg/response"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompetencyHandler struct {
	uc usecase.CompetencyUsecase
}

func NewCompetencyHandler(uc usecase.CompetencyUsecase) *CompetencyHandler {
	return &CompetencyHandler{uc: uc}
}

func (h *CompetencyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/role-requirements", h.RoleRequirements)
	r.Get("/latest-assessments", h.LatestAssessments)
	r.Get("/competency-delta", h.CompetencyDelta)
	r.Get("/role-readiness", h.RoleReadiness)
	r.Get("/overview", h.Overview)
}

type requirementResponse struct {
	RoleID       int64  `json:"role_id"`
	SkillID      int64  `json:"skill_id"`
	SkillName    string `json:"skill_name"`
	RequiredRank int    `json:"required_rank"`
}

type latestAssessmentResponse struct {
	EmployeeID int64  `json:"employee_id"`
	RoleID     int64  `json:"role_id"`
	SkillID    int64  `json:"skill_id"`
	SkillName  string `json:"skill_name"`
	Date       string `json:"assessment_date"`
	Rank       int    `json:"rank"`
}

type competencyDeltaResponse struct {
	EmployeeID   int64  `json:"employee_id"`
	RoleID       int64  `json:"role_id"`
	SkillID      int64  `json:"skill_id"`
	SkillName    string `json:"skill_name"`
	RequiredRank int    `json:"required_rank"`
	ActualRank   int    `json:"actual_rank"`
	Gap          int    `json:"gap"`
}

type roleReadinessResponse struct {
	EmployeeID     int64   `json:"employee_id"`
	RoleID         int64   `json:"role_id"`
	ReadinessIndex float64 `json:"readiness_index"`
}

type overviewResponse struct {
	EmployeeID     int64   `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	Department     *string `json:"department"`
	RoleID         int64   `json:"role_id"`
	RoleName       string  `json:"role_name"`
	ReadinessIndex float64 `json:"readiness_index"`
}

func (h *CompetencyHandler) RoleRequirements(c fiber.Ctx) error {
	roleID, err := queryInt64(c, "roleId")
	if err != nil {
		return err
	}

	items, err := h.uc.RoleRequirements(c.Context(), roleID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]requirementResponse, 0, len(items))
	for _, it := range items {
		res = append(res, requirementResponse{
			RoleID:       it.RoleID,
			SkillID:      it.SkillID,
			SkillName:    it.SkillName,
			RequiredRank: it.RequiredRank,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CompetencyHandler) LatestAssessments(c fiber.Ctx) error {
	employeeID, err := queryInt64(c, "employeeId")
	if err != nil {
		return err
	}
	roleID, err := queryInt64(c, "roleId")
	if err != nil {
		return err
	}

	items, err := h.uc.LatestAssessments(c.Context(), employeeID, roleID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]latestAssessmentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, latestAssessmentResponse{
			EmployeeID: it.EmployeeID,
			RoleID:     it.RoleID,
			SkillID:    it.SkillID,
			SkillName:  it.SkillName,
			Date:       it.Date.Format(time.DateOnly),
			Rank:       it.Rank,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CompetencyHandler) CompetencyDelta(c fiber.Ctx) error {
	employeeID, err := queryInt64(c, "employeeId")
	if err != nil {
		return err
	}
	roleID, err := queryInt64(c, "roleId")
	if err != nil {
		return err
	}

	items, err := h.uc.CompetencyDelta(c.Context(), employeeID, roleID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]competencyDeltaResponse, 0, len(items))
	for _, it := range items {
		res = append(res, competencyDeltaResponse{
			EmployeeID:   it.EmployeeID,
			RoleID:       it.RoleID,
			SkillID:      it.SkillID,
			SkillName:    it.SkillName,
			RequiredRank: it.RequiredRank,
			ActualRank:   it.ActualRank,
			Gap:          it.Gap,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CompetencyHandler) RoleReadiness(c fiber.Ctx) error {
	employeeID, err := queryInt64(c, "employeeId")
	if err != nil {
		return err
	}
	roleID, err := queryInt64(c, "roleId")
	if err != nil {
		return err
	}

	items, err := h.uc.RoleReadiness(c.Context(), employeeID, roleID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]roleReadinessResponse, 0, len(items))
	for _, it := range items {
		res = append(res, roleReadinessResponse{
			EmployeeID:     it.EmployeeID,
			RoleID:         it.RoleID,
			ReadinessIndex: it.ReadinessIndex,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CompetencyHandler) Overview(c fiber.Ctx) error {
	items, err := h.uc.Overview(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]overviewResponse, 0, len(items))
	for _, it := range items {
		res = append(res, overviewResponse{
			EmployeeID:     it.EmployeeID,
			EmployeeName:   it.EmployeeName,
			Department:     it.Department,
			RoleID:         it.RoleID,
			RoleName:       it.RoleName,
			ReadinessIndex: it.ReadinessIndex,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return fiber.NewError(fiber.StatusBadRequest, response.MessageBadRequest)
	}
	return fiber.NewError(fiber.StatusInternalServerError, response.MessageInternalServerError)
}
