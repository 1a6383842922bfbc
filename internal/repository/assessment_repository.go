package repository

import (
	"context"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/competency"
)

type AssessmentRepository interface {
	ListAssessmentRows(ctx context.Context, employeeID, roleID int64) ([]competency.AssessmentRow, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

// ListAssessmentRows loads assessment items joined with their parent
// assessment. A zero employeeID or roleID means unfiltered. Items whose skill
// reference was nulled out are dropped here; the engine never sees them.
func (r *PostgresAssessmentRepository) ListAssessmentRows(ctx context.Context, employeeID, roleID int64) ([]competency.AssessmentRow, error) {
	q := `
SELECT a.id, ai.id, a.employee_id, a.role_id, ai.skill_id, s.name, a.assessment_date, pl.rank, req.rank
FROM assessment_items ai
JOIN assessments a ON a.id = ai.assessment_id
JOIN skills s ON s.id = ai.skill_id
JOIN proficiency_levels pl ON pl.id = ai.proficiency_level_id
LEFT JOIN proficiency_levels req ON req.id = ai.required_proficiency_level_id
WHERE ai.skill_id IS NOT NULL`
	args := []any{}
	if employeeID > 0 {
		args = append(args, employeeID)
		q += ` AND a.employee_id = $1`
	}
	if roleID > 0 {
		args = append(args, roleID)
		if len(args) == 2 {
			q += ` AND a.role_id = $2`
		} else {
			q += ` AND a.role_id = $1`
		}
	}
	q += ` ORDER BY a.id ASC, ai.id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]competency.AssessmentRow, 0)
	for rows.Next() {
		var row competency.AssessmentRow
		if err := rows.Scan(
			&row.AssessmentID,
			&row.ItemID,
			&row.EmployeeID,
			&row.RoleID,
			&row.SkillID,
			&row.SkillName,
			&row.Date,
			&row.Rank,
			&row.CapturedRequiredRank,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
