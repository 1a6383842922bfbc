package competency

import "time"

// Requirement is one (role, skill, required rank) declaration as currently
// stored on the role. It is authoritative and versionless: updating a role's
// requirements immediately changes every downstream derivation.
type Requirement struct {
	RoleID       int64
	SkillID      int64
	SkillName    string
	RequiredRank int
}

// AssessmentRow is one assessment item joined with its parent assessment
// record. CapturedRequiredRank is the requirement snapshot taken at
// assessment time, which may differ from the role's current requirement.
type AssessmentRow struct {
	AssessmentID         int64
	ItemID               int64
	EmployeeID           int64
	RoleID               int64
	SkillID              int64
	SkillName            string
	Date                 time.Time
	Rank                 int
	CapturedRequiredRank *int
}

type Assignment struct {
	EmployeeID   int64
	RoleID       int64
	AssignedDate time.Time
}

type Employee struct {
	ID         int64
	Name       string
	Email      string
	Department *string
}

type Role struct {
	ID          int64
	Name        string
	Description string
}

type Skill struct {
	ID          int64
	Name        string
	Description string
}

type ProficiencyLevel struct {
	ID   int64
	Name string
	Rank int
}

type Training struct {
	ID            int64
	Name          string
	Provider      string
	DurationHours int
	SkillID       *int64
}

// CertificationRow is an employee certification joined with its catalog entry.
type CertificationRow struct {
	EmployeeID      int64
	EmployeeName    string
	Department      *string
	CertificationID int64
	CertName        string
	IsCritical      bool
	IssueDate       time.Time
	ExpiryDate      *time.Time
}

// LatestAssessment is the most recently dated assessed rank for one
// (employee, role, skill) combination.
type LatestAssessment struct {
	EmployeeID int64
	RoleID     int64
	SkillID    int64
	SkillName  string
	Date       time.Time
	Rank       int
}

// CompetencyDelta is the per-skill shortfall of one employee against one of
// their assigned roles. ActualRank is 0 when the skill was never assessed;
// Gap is floored at zero, a rank above the requirement is not a surplus.
type CompetencyDelta struct {
	EmployeeID   int64
	RoleID       int64
	SkillID      int64
	SkillName    string
	RequiredRank int
	ActualRank   int
	Gap          int
}

// RoleReadiness is the 0-100 index of how completely an employee meets a
// role's current skill requirements, rounded to two decimals.
type RoleReadiness struct {
	EmployeeID     int64
	RoleID         int64
	ReadinessIndex float64
}
