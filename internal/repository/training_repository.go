package repository

import (
	"context"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/competency"
)

type TrainingRepository interface {
	ListTrainings(ctx context.Context) ([]competency.Training, error)
}

type PostgresTrainingRepository struct {
	db database.DB
}

func NewPostgresTrainingRepository(db database.DB) *PostgresTrainingRepository {
	return &PostgresTrainingRepository{db: db}
}

func (r *PostgresTrainingRepository) ListTrainings(ctx context.Context) ([]competency.Training, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(provider, ''), COALESCE(duration_hours, 0), skill_id FROM trainings ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.Training, 0)
	for rows.Next() {
		var t competency.Training
		if err := rows.Scan(&t.ID, &t.Name, &t.Provider, &t.DurationHours, &t.SkillID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
