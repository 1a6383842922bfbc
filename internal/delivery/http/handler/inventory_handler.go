package handler

import (
	"strconv"
	"time"

	"competency-matrix/internal/pkg/response"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InventoryHandler struct {
	uc usecase.InventoryUsecase
}

func NewInventoryHandler(uc usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills-inventory", h.SkillsInventory)
	r.Get("/initial-assessments", h.InitialAssessments)
}

type skillInventoryResponse struct {
	SkillID          int64          `json:"skill_id"`
	SkillName        string         `json:"skill_name"`
	TotalEmployees   int            `json:"total_employees"`
	AvgProficiency   float64        `json:"avg_proficiency"`
	EmployeesByLevel map[string]int `json:"employees_by_level"`
	Departments      []string       `json:"departments"`
}

type initialAssessmentResponse struct {
	EmployeeID          int64   `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	Department          *string `json:"department"`
	RoleID              int64   `json:"role_id"`
	RoleName            string  `json:"role_name"`
	AssessmentDate      string  `json:"assessment_date"`
	TotalSkillsAssessed int     `json:"total_skills_assessed"`
	AvgProficiency      float64 `json:"avg_proficiency"`
}

func (h *InventoryHandler) SkillsInventory(c fiber.Ctx) error {
	items, err := h.uc.SkillsInventory(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]skillInventoryResponse, 0, len(items))
	for _, it := range items {
		levels := make(map[string]int, len(it.EmployeesByLevel))
		for rank, count := range it.EmployeesByLevel {
			levels[strconv.Itoa(rank)] = count
		}
		res = append(res, skillInventoryResponse{
			SkillID:          it.SkillID,
			SkillName:        it.SkillName,
			TotalEmployees:   it.TotalEmployees,
			AvgProficiency:   it.AvgProficiency,
			EmployeesByLevel: levels,
			Departments:      it.Departments,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *InventoryHandler) InitialAssessments(c fiber.Ctx) error {
	items, err := h.uc.InitialAssessments(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]initialAssessmentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, initialAssessmentResponse{
			EmployeeID:          it.EmployeeID,
			EmployeeName:        it.EmployeeName,
			Department:          it.Department,
			RoleID:              it.RoleID,
			RoleName:            it.RoleName,
			AssessmentDate:      it.AssessmentDate.Format(time.DateOnly),
			TotalSkillsAssessed: it.TotalSkillsAssessed,
			AvgProficiency:      it.AvgProficiency,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
