package repository

import (
	"context"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/competency"
)

type SkillRepository interface {
	ListSkills(ctx context.Context) ([]competency.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) ListSkills(ctx context.Context) ([]competency.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(description, '') FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Skill, 0)
	for rows.Next() {
		var s competency.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
