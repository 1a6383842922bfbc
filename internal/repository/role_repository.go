package repository

import (
	"context"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/competency"
)

type RoleRepository interface {
	ListRoles(ctx context.Context) ([]competency.Role, error)
	ListRequirements(ctx context.Context, roleID int64) ([]competency.Requirement, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

func (r *PostgresRoleRepository) ListRoles(ctx context.Context) ([]competency.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(description, '') FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Role, 0)
	for rows.Next() {
		var role competency.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRequirements returns the current per-skill requirements, for one role
// when roleID is positive or for every role when it is zero. The inner joins
// drop requirements whose skill or level row has gone missing.
func (r *PostgresRoleRepository) ListRequirements(ctx context.Context, roleID int64) ([]competency.Requirement, error) {
	q := `
SELECT rs.role_id, rs.skill_id, s.name, pl.rank
FROM role_skills rs
JOIN skills s ON s.id = rs.skill_id
JOIN proficiency_levels pl ON pl.id = rs.required_proficiency_level_id`
	args := []any{}
	if roleID > 0 {
		q += ` WHERE rs.role_id = $1`
		args = append(args, roleID)
	}
	q += ` ORDER BY rs.role_id ASC, s.name ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Requirement, 0)
	for rows.Next() {
		var req competency.Requirement
		if err := rows.Scan(&req.RoleID, &req.SkillID, &req.SkillName, &req.RequiredRank); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
