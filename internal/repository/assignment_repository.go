package repository

import (
	"context"
	"time"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/competency"
)

type AssignmentRepository interface {
	ListAssignments(ctx context.Context) ([]competency.Assignment, error)
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

func (r *PostgresAssignmentRepository) ListAssignments(ctx context.Context) ([]competency.Assignment, error) {
	rows, err := r.db.Query(ctx, `SELECT employee_id, role_id, assigned_at FROM employee_roles ORDER BY employee_id ASC, role_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Assignment, 0)
	for rows.Next() {
		var a competency.Assignment
		var assigned *time.Time
		if err := rows.Scan(&a.EmployeeID, &a.RoleID, &assigned); err != nil {
			return nil, err
		}
		if assigned != nil {
			a.AssignedDate = *assigned
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
