package repository

import (
	"context"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/competency"
)

type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]competency.Employee, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) ListEmployees(ctx context.Context) ([]competency.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, department FROM employees ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Employee, 0)
	for rows.Next() {
		var e competency.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
