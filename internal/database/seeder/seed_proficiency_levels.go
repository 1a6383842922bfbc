package seeder

import (
	"context"

	"competency-matrix/internal/database"
)

type ProficiencyLevelsSeeder struct{}

func (ProficiencyLevelsSeeder) Name() string { return "proficiency_levels" }

// The five-step ladder every assessment and role requirement ranks against.
// Seeding is idempotent; an existing ladder is left untouched.
func (ProficiencyLevelsSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Name string
		Rank int
		Desc string
	}{
		{Name: "Novice", Rank: 1, Desc: "Aware of the skill, needs close supervision"},
		{Name: "Advanced Beginner", Rank: 2, Desc: "Can perform routine tasks with guidance"},
		{Name: "Competent", Rank: 3, Desc: "Works independently on standard tasks"},
		{Name: "Proficient", Rank: 4, Desc: "Handles complex situations, mentors others"},
		{Name: "Expert", Rank: 5, Desc: "Recognized authority, sets practice standards"},
	}

	for _, it := range items {
		_, err := db.Exec(
			ctx,
			`INSERT INTO proficiency_levels (name, rank, description) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Rank,
			it.Desc,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
