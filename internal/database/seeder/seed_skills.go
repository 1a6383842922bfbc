package seeder

import (
	"context"

	"competency-matrix/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Go", Category: "Programming Language"},
		{Name: "SQL", Category: "Database"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "System Design", Category: "Architecture"},
		{Name: "Data Analysis", Category: "Analytics"},
		{Name: "Communication", Category: "Soft Skill"},
		{Name: "Project Management", Category: "Soft Skill"},
	}

	for _, it := range items {
		_, err := db.Exec(
			ctx,
			`INSERT INTO skills (name, category) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
