package seeder

func Defaults() []Seeder {
	return []Seeder{
		ProficiencyLevelsSeeder{},
		SkillsSeeder{},
	}
}
