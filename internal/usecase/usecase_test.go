package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"competency-matrix/internal/domain/competency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEmployeeRepo struct {
	employees []competency.Employee
	err       error
}

func (s stubEmployeeRepo) ListEmployees(_ context.Context) ([]competency.Employee, error) {
	return s.employees, s.err
}

type stubRoleRepo struct {
	roles        []competency.Role
	requirements []competency.Requirement
	err          error
}

func (s stubRoleRepo) ListRoles(_ context.Context) ([]competency.Role, error) {
	return s.roles, s.err
}

func (s stubRoleRepo) ListRequirements(_ context.Context, roleID int64) ([]competency.Requirement, error) {
	if s.err != nil {
		return nil, s.err
	}
	if roleID <= 0 {
		return s.requirements, nil
	}
	out := make([]competency.Requirement, 0)
	for _, r := range s.requirements {
		if r.RoleID == roleID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubAssignmentRepo struct {
	assignments []competency.Assignment
	err         error
}

func (s stubAssignmentRepo) ListAssignments(_ context.Context) ([]competency.Assignment, error) {
	return s.assignments, s.err
}

type stubAssessmentRepo struct {
	rows []competency.AssessmentRow
	err  error
}

func (s stubAssessmentRepo) ListAssessmentRows(_ context.Context, employeeID, roleID int64) ([]competency.AssessmentRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]competency.AssessmentRow, 0)
	for _, r := range s.rows {
		if employeeID > 0 && r.EmployeeID != employeeID {
			continue
		}
		if roleID > 0 && r.RoleID != roleID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type stubTrainingRepo struct {
	trainings []competency.Training
	err       error
}

func (s stubTrainingRepo) ListTrainings(_ context.Context) ([]competency.Training, error) {
	return s.trainings, s.err
}

type stubCertificationRepo struct {
	rows []competency.CertificationRow
	err  error
}

func (s stubCertificationRepo) ListEmployeeCertifications(_ context.Context, employeeID int64) ([]competency.CertificationRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]competency.CertificationRow, 0)
	for _, r := range s.rows {
		if employeeID > 0 && r.EmployeeID != employeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type stubSkillRepo struct {
	skills []competency.Skill
	err    error
}

func (s stubSkillRepo) ListSkills(_ context.Context) ([]competency.Skill, error) {
	return s.skills, s.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func fixtureEmployees() stubEmployeeRepo {
	return stubEmployeeRepo{employees: []competency.Employee{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Department: strPtr("Engineering")},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Department: strPtr("Engineering")},
	}}
}

func fixtureRoles() stubRoleRepo {
	return stubRoleRepo{
		roles: []competency.Role{{ID: 10, Name: "Backend Engineer"}},
		requirements: []competency.Requirement{
			{RoleID: 10, SkillID: 100, SkillName: "Go", RequiredRank: 4},
			{RoleID: 10, SkillID: 101, SkillName: "SQL", RequiredRank: 3},
		},
	}
}

func fixtureAssignments() stubAssignmentRepo {
	return stubAssignmentRepo{assignments: []competency.Assignment{
		{EmployeeID: 1, RoleID: 10},
		{EmployeeID: 2, RoleID: 10},
	}}
}

func fixtureAssessments() stubAssessmentRepo {
	return stubAssessmentRepo{rows: []competency.AssessmentRow{
		{AssessmentID: 1, ItemID: 1, EmployeeID: 1, RoleID: 10, SkillID: 100, SkillName: "Go", Date: date(2026, 1, 10), Rank: 4},
		{AssessmentID: 1, ItemID: 2, EmployeeID: 1, RoleID: 10, SkillID: 101, SkillName: "SQL", Date: date(2026, 1, 10), Rank: 3},
		{AssessmentID: 2, ItemID: 3, EmployeeID: 2, RoleID: 10, SkillID: 100, SkillName: "Go", Date: date(2026, 1, 12), Rank: 2},
	}}
}

func TestCompetencyRoleReadinessFilters(t *testing.T) {
	u := NewCompetencyUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), zap.NewNop())

	all, err := u.RoleReadiness(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Alice meets both requirements, Bob covers half of Go and nothing of SQL.
	byEmployee := map[int64]float64{}
	for _, rr := range all {
		byEmployee[rr.EmployeeID] = rr.ReadinessIndex
	}
	assert.Equal(t, 100.0, byEmployee[1])
	assert.Equal(t, 25.0, byEmployee[2])

	only, err := u.RoleReadiness(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, int64(2), only[0].EmployeeID)
}

func TestCompetencyDeltaFiltersByEmployee(t *testing.T) {
	u := NewCompetencyUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), zap.NewNop())

	deltas, err := u.CompetencyDelta(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, deltas, 2)
	for _, d := range deltas {
		assert.Equal(t, int64(2), d.EmployeeID)
	}
}

func TestCompetencyRepositoryFailureMapsToInternal(t *testing.T) {
	boom := errors.New("boom")
	u := NewCompetencyUsecase(stubEmployeeRepo{err: boom}, fixtureRoles(), fixtureAssignments(), fixtureAssessments(), zap.NewNop())

	_, err := u.RoleReadiness(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCompetencyOverviewNamesRows(t *testing.T) {
	u := NewCompetencyUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), zap.NewNop())

	rows, err := u.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].EmployeeName)
	assert.Equal(t, "Backend Engineer", rows[0].RoleName)
	assert.Equal(t, 100.0, rows[0].ReadinessIndex)
}

func TestPlanningTrainingNeedsRejectsNegativeThreshold(t *testing.T) {
	u := NewPlanningUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), stubTrainingRepo{}, nil, 0, zap.NewNop())

	_, err := u.TrainingNeeds(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlanningLearningPathsRecommendsTaggedTraining(t *testing.T) {
	trainings := stubTrainingRepo{trainings: []competency.Training{
		{ID: 1, Name: "Advanced Go", SkillID: int64Ptr(100)},
		{ID: 2, Name: "Generic Upskilling"},
	}}
	u := NewPlanningUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), trainings, nil, 0, zap.NewNop())

	paths, err := u.LearningPaths(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	var goPath *competency.LearningPath
	for i := range paths {
		if paths[i].SkillName == "Go" {
			goPath = &paths[i]
		}
	}
	require.NotNil(t, goPath)
	require.NotEmpty(t, goPath.Trainings)
	assert.Equal(t, "Advanced Go", goPath.Trainings[0].Name)
}

func TestWorkforceSuccessionValidatesMinReadiness(t *testing.T) {
	u := NewWorkforceUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), nil, 0, zap.NewNop())

	_, err := u.SuccessionCandidates(context.Background(), 0, 101)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = u.SuccessionCandidates(context.Background(), 0, -5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWorkforceSuccessionKeepsQualifiedOnly(t *testing.T) {
	u := NewWorkforceUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), nil, 0, zap.NewNop())

	cands, err := u.SuccessionCandidates(context.Background(), 10, 50)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "Alice", cands[0].EmployeeName)
	assert.Equal(t, 100.0, cands[0].ReadinessIndex)
}

func TestWorkforceResourceAllocationUsesCache(t *testing.T) {
	cache := &memoryCache{data: map[string][]byte{}}
	u := NewWorkforceUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), cache, time.Minute, zap.NewNop())

	first, err := u.ResourceAllocation(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 2, first[0].CurrentEmployees)

	second, err := u.ResourceAllocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
	assert.GreaterOrEqual(t, cache.hits, 1)
}

func TestCertificationTrackingValidatesStatus(t *testing.T) {
	u := NewCertificationUsecase(stubCertificationRepo{}, zap.NewNop())

	_, err := u.CertificationTracking(context.Background(), 0, "bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCertificationTrackingClassifiesWithPinnedClock(t *testing.T) {
	now := date(2026, 6, 1)
	expSoon := date(2026, 6, 20)
	expired := date(2026, 5, 1)

	repo := stubCertificationRepo{rows: []competency.CertificationRow{
		{EmployeeID: 1, EmployeeName: "Alice", CertificationID: 1, CertName: "CKA", ExpiryDate: &expSoon},
		{EmployeeID: 1, EmployeeName: "Alice", CertificationID: 2, CertName: "AWS SA", ExpiryDate: &expired},
		{EmployeeID: 2, EmployeeName: "Bob", CertificationID: 3, CertName: "PMP"},
	}}
	u := NewCertificationUsecase(repo, zap.NewNop())
	u.now = func() time.Time { return now }

	rows, err := u.CertificationTracking(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byCert := map[string]string{}
	for _, r := range rows {
		byCert[r.CertName] = r.Status
	}
	assert.Equal(t, competency.CertStatusExpiringSoon, byCert["CKA"])
	assert.Equal(t, competency.CertStatusExpired, byCert["AWS SA"])
	assert.Equal(t, competency.CertStatusValid, byCert["PMP"])

	expiredOnly, err := u.CertificationTracking(context.Background(), 0, competency.CertStatusExpired)
	require.NoError(t, err)
	require.Len(t, expiredOnly, 1)
	assert.Equal(t, "AWS SA", expiredOnly[0].CertName)
}

func TestInventorySkillsListsUnassessedSkills(t *testing.T) {
	skills := stubSkillRepo{skills: []competency.Skill{
		{ID: 100, Name: "Go"},
		{ID: 101, Name: "SQL"},
		{ID: 999, Name: "Rust"},
	}}
	u := NewInventoryUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), skills, nil, 0, zap.NewNop())

	rows, err := u.SkillsInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := map[string]competency.SkillInventoryRow{}
	for _, r := range rows {
		byName[r.SkillName] = r
	}
	assert.Equal(t, 0, byName["Rust"].TotalEmployees)
	assert.Equal(t, 2, byName["Go"].TotalEmployees)
}

func TestInventoryInitialAssessments(t *testing.T) {
	u := NewInventoryUsecase(fixtureEmployees(), fixtureRoles(), fixtureAssignments(), fixtureAssessments(), stubSkillRepo{}, nil, 0, zap.NewNop())

	rows, err := u.InitialAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Bob's single assessment is later, so it sorts first.
	assert.Equal(t, "Bob", rows[0].EmployeeName)
	assert.Equal(t, 1, rows[0].TotalSkillsAssessed)
	assert.Equal(t, "Alice", rows[1].EmployeeName)
	assert.Equal(t, 2, rows[1].TotalSkillsAssessed)
}

func int64Ptr(v int64) *int64 { return &v }

type memoryCache struct {
	data map[string][]byte
	sets int
	hits int
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.sets++
	return nil
}
