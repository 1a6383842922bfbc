package handler

import (
	"time"

	"competency-matrix/internal/pkg/response"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CertificationHandler struct {
	uc usecase.CertificationUsecase
}

func NewCertificationHandler(uc usecase.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

func (h *CertificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/certification-tracking", h.CertificationTracking)
}

type certificationStatusResponse struct {
	EmployeeID      int64   `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Department      *string `json:"department"`
	CertificationID int64   `json:"certification_id"`
	CertName        string  `json:"certification_name"`
	IsCritical      bool    `json:"is_critical"`
	IssueDate       string  `json:"issue_date"`
	ExpiryDate      *string `json:"expiry_date"`
	DaysUntilExpiry *int    `json:"days_until_expiry"`
	Status          string  `json:"status"`
}

func (h *CertificationHandler) CertificationTracking(c fiber.Ctx) error {
	employeeID, err := queryInt64(c, "employeeId")
	if err != nil {
		return err
	}
	status := c.Query("status")

	items, err := h.uc.CertificationTracking(c.Context(), employeeID, status)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]certificationStatusResponse, 0, len(items))
	for _, it := range items {
		var expiry *string
		if it.ExpiryDate != nil {
			s := it.ExpiryDate.Format(time.DateOnly)
			expiry = &s
		}
		res = append(res, certificationStatusResponse{
			EmployeeID:      it.EmployeeID,
			EmployeeName:    it.EmployeeName,
			Department:      it.Department,
			CertificationID: it.CertificationID,
			CertName:        it.CertName,
			IsCritical:      it.IsCritical,
			IssueDate:       it.IssueDate.Format(time.DateOnly),
			ExpiryDate:      expiry,
			DaysUntilExpiry: it.DaysUntilExpiry,
			Status:          it.Status,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
