package placement

import (
	"context"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/stretchr/testify/mock"
)

// mockStudentRepository is a testify mock for the StudentRepository interface
type mockStudentRepository struct {
	mock.Mock
}

func (m *mockStudentRepository) Create(ctx context.Context, student *placement.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *mockStudentRepository) Update(ctx context.Context, student *placement.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *mockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*placement.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*placement.Student), args.Error(1)
}

func (m *mockStudentRepository) FindAll(ctx context.Context, filter placement.StudentFilter) ([]*placement.Student, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.Student), args.Error(1)
}

func (m *mockStudentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStudentRepository) ExistsByRollNumber(ctx context.Context, rollNumber string) (bool, error) {
	args := m.Called(ctx, rollNumber)
	return args.Bool(0), args.Error(1)
}

func (m *mockStudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockStudentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (*placement.CascadeResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*placement.CascadeResult), args.Error(1)
}

// mockCompanyRepository is a testify mock for the CompanyRepository interface
type mockCompanyRepository struct {
	mock.Mock
}

func (m *mockCompanyRepository) Create(ctx context.Context, company *placement.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *mockCompanyRepository) Update(ctx context.Context, company *placement.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*placement.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*placement.Company), args.Error(1)
}

func (m *mockCompanyRepository) FindAll(ctx context.Context) ([]*placement.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.Company), args.Error(1)
}

func (m *mockCompanyRepository) FindByYear(ctx context.Context, year int) ([]*placement.Company, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.Company), args.Error(1)
}

func (m *mockCompanyRepository) FindRecent(ctx context.Context, limit int) ([]*placement.Company, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.Company), args.Error(1)
}

func (m *mockCompanyRepository) FindRounds(ctx context.Context, companyID uuid.UUID) ([]*placement.Round, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.Round), args.Error(1)
}

func (m *mockCompanyRepository) FindRoundEntries(ctx context.Context, roundID uuid.UUID) ([]*placement.RoundEntry, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.RoundEntry), args.Error(1)
}

func (m *mockCompanyRepository) FindPlacements(ctx context.Context, companyID uuid.UUID) ([]*placement.Placement, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.Placement), args.Error(1)
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCompanyRepository) CountByStatus(ctx context.Context, status placement.CompanyStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// mockYearRepository is a testify mock for the YearRepository interface
type mockYearRepository struct {
	mock.Mock
}

func (m *mockYearRepository) Save(ctx context.Context, year *placement.Year) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *mockYearRepository) FindByYear(ctx context.Context, year int) (*placement.Year, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*placement.Year), args.Error(1)
}

func (m *mockYearRepository) FindAll(ctx context.Context) ([]*placement.Year, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*placement.Year), args.Error(1)
}

func (m *mockYearRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// mockSystemStatsRepository is a testify mock for the SystemStatsRepository interface
type mockSystemStatsRepository struct {
	mock.Mock
}

func (m *mockSystemStatsRepository) Get(ctx context.Context) (*placement.SystemStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*placement.SystemStats), args.Error(1)
}

func (m *mockSystemStatsRepository) Save(ctx context.Context, stats *placement.SystemStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *mockSystemStatsRepository) Adjust(ctx context.Context, delta placement.SystemStatsDelta) error {
	args := m.Called(ctx, delta)
	return args.Error(0)
}
