package repository

import (
	"context"
	"time"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/competency"
)

type CertificationRepository interface {
	ListEmployeeCertifications(ctx context.Context, employeeID int64) ([]competency.CertificationRow, error)
}

type PostgresCertificationRepository struct {
	db database.DB
}

func NewPostgresCertificationRepository(db database.DB) *PostgresCertificationRepository {
	return &PostgresCertificationRepository{db: db}
}

func (r *PostgresCertificationRepository) ListEmployeeCertifications(ctx context.Context, employeeID int64) ([]competency.CertificationRow, error) {
	q := `
SELECT ec.employee_id, e.name, e.department, ec.certification_id, c.name, c.is_critical, ec.obtained_date, ec.expiry_date
FROM employee_certifications ec
JOIN employees e ON e.id = ec.employee_id
JOIN certifications c ON c.id = ec.certification_id`
	args := []any{}
	if employeeID > 0 {
		q += ` WHERE ec.employee_id = $1`
		args = append(args, employeeID)
	}
	q += ` ORDER BY e.name ASC, c.name ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.CertificationRow, 0)
	for rows.Next() {
		var row competency.CertificationRow
		var obtained *time.Time
		if err := rows.Scan(
			&row.EmployeeID,
			&row.EmployeeName,
			&row.Department,
			&row.CertificationID,
			&row.CertName,
			&row.IsCritical,
			&obtained,
			&row.ExpiryDate,
		); err != nil {
			return nil, err
		}
		if obtained != nil {
			row.IssueDate = *obtained
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
