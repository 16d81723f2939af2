package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
)

// StudentModel is the persistence model for the Student aggregate.
type StudentModel struct {
	AggregateModel
	Name          string                  `gorm:"type:varchar(200);not null;index"`
	RollNumber    string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email         string                  `gorm:"type:varchar(200);not null;uniqueIndex"`
	CurrentStatus placement.StudentStatus `gorm:"type:varchar(20);not null;default:'not_placed';index"`
	TotalOffers   int                     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (StudentModel) TableName() string {
	return "students"
}

// ToDomain converts the persistence model to a domain Student.
func (m *StudentModel) ToDomain() *placement.Student {
	return &placement.Student{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		RollNumber:        m.RollNumber,
		Email:             m.Email,
		CurrentStatus:     m.CurrentStatus,
		TotalOffers:       m.TotalOffers,
	}
}

// FromDomain populates the persistence model from a domain Student.
func (m *StudentModel) FromDomain(s *placement.Student) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.RollNumber = s.RollNumber
	m.Email = s.Email
	m.CurrentStatus = s.CurrentStatus
	m.TotalOffers = s.TotalOffers
}

// StudentModelFromDomain creates a new persistence model from a domain Student.
func StudentModelFromDomain(s *placement.Student) *StudentModel {
	m := &StudentModel{}
	m.FromDomain(s)
	return m
}

// CompanyModel is the persistence model for the Company aggregate.
type CompanyModel struct {
	AggregateModel
	CompanyName  string                  `gorm:"type:varchar(200);not null;index"`
	Year         int                     `gorm:"not null;index"`
	Status       placement.CompanyStatus `gorm:"type:varchar(20);not null;default:'running';index"`
	TotalApplied int                     `gorm:"not null;default:0"`
	TotalPlaced  int                     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company.
func (m *CompanyModel) ToDomain() *placement.Company {
	return &placement.Company{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CompanyName:       m.CompanyName,
		Year:              m.Year,
		Status:            m.Status,
		TotalApplied:      m.TotalApplied,
		TotalPlaced:       m.TotalPlaced,
	}
}

// FromDomain populates the persistence model from a domain Company.
func (m *CompanyModel) FromDomain(c *placement.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CompanyName = c.CompanyName
	m.Year = c.Year
	m.Status = c.Status
	m.TotalApplied = c.TotalApplied
	m.TotalPlaced = c.TotalPlaced
}

// CompanyModelFromDomain creates a new persistence model from a domain Company.
func CompanyModelFromDomain(c *placement.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// RoundModel is the persistence model for a hiring round.
type RoundModel struct {
	BaseModel
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RoundNumber int       `gorm:"not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (RoundModel) TableName() string {
	return "rounds"
}

// ToDomain converts the persistence model to a domain Round.
func (m *RoundModel) ToDomain() *placement.Round {
	return &placement.Round{
		BaseEntity:  m.ToDomainBaseEntity(),
		CompanyID:   m.CompanyID,
		RoundNumber: m.RoundNumber,
		Name:        m.Name,
	}
}

// RoundModelFromDomain creates a new persistence model from a domain Round.
func RoundModelFromDomain(r *placement.Round) *RoundModel {
	m := &RoundModel{}
	m.FromDomainBaseEntity(r.BaseEntity)
	m.CompanyID = r.CompanyID
	m.RoundNumber = r.RoundNumber
	m.Name = r.Name
	return m
}

// RoundEntryModel is the persistence model for one student's row in a round.
type RoundEntryModel struct {
	BaseModel
	RoundID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Result    string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (RoundEntryModel) TableName() string {
	return "round_entries"
}

// ToDomain converts the persistence model to a domain RoundEntry.
func (m *RoundEntryModel) ToDomain() *placement.RoundEntry {
	return &placement.RoundEntry{
		BaseEntity: m.ToDomainBaseEntity(),
		RoundID:    m.RoundID,
		StudentID:  m.StudentID,
		Result:     m.Result,
	}
}

// RoundEntryModelFromDomain creates a new persistence model from a domain RoundEntry.
func RoundEntryModelFromDomain(e *placement.RoundEntry) *RoundEntryModel {
	m := &RoundEntryModel{}
	m.FromDomainBaseEntity(e.BaseEntity)
	m.RoundID = e.RoundID
	m.StudentID = e.StudentID
	m.Result = e.Result
	return m
}

// PlacementModel is the persistence model for a final selection.
type PlacementModel struct {
	BaseModel
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentName string    `gorm:"type:varchar(200);not null"`
	Package     string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PlacementModel) TableName() string {
	return "placements"
}

// ToDomain converts the persistence model to a domain Placement.
func (m *PlacementModel) ToDomain() *placement.Placement {
	return &placement.Placement{
		BaseEntity:  m.ToDomainBaseEntity(),
		CompanyID:   m.CompanyID,
		StudentID:   m.StudentID,
		StudentName: m.StudentName,
		Package:     m.Package,
	}
}

// PlacementModelFromDomain creates a new persistence model from a domain Placement.
func PlacementModelFromDomain(p *placement.Placement) *PlacementModel {
	m := &PlacementModel{}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.CompanyID = p.CompanyID
	m.StudentID = p.StudentID
	m.StudentName = p.StudentName
	m.Package = p.Package
	return m
}

// ApplicationModel is the persistence model for a student's drive participation.
type ApplicationModel struct {
	BaseModel
	StudentID      uuid.UUID `gorm:"type:uuid;not null;index:idx_applications_student_company,unique"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index:idx_applications_student_company,unique"`
	Year           int       `gorm:"not null;index"`
	FinalSelection bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ApplicationModel) TableName() string {
	return "applications"
}

// ToDomain converts the persistence model to a domain Application.
func (m *ApplicationModel) ToDomain() *placement.Application {
	return &placement.Application{
		BaseEntity:     m.ToDomainBaseEntity(),
		StudentID:      m.StudentID,
		CompanyID:      m.CompanyID,
		Year:           m.Year,
		FinalSelection: m.FinalSelection,
	}
}

// ApplicationModelFromDomain creates a new persistence model from a domain Application.
func ApplicationModelFromDomain(a *placement.Application) *ApplicationModel {
	m := &ApplicationModel{}
	m.FromDomainBaseEntity(a.BaseEntity)
	m.StudentID = a.StudentID
	m.CompanyID = a.CompanyID
	m.Year = a.Year
	m.FinalSelection = a.FinalSelection
	return m
}

// YearModel is the persistence model for per-batch placement analytics.
type YearModel struct {
	AggregateModel
	Year                      int `gorm:"not null;uniqueIndex"`
	TotalStudentsParticipated int `gorm:"not null;default:0"`
	TotalPlaced               int `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (YearModel) TableName() string {
	return "years"
}

// ToDomain converts the persistence model to a domain Year.
func (m *YearModel) ToDomain() *placement.Year {
	return &placement.Year{
		BaseAggregateRoot:         m.ToDomainAggregateRoot(),
		Year:                      m.Year,
		TotalStudentsParticipated: m.TotalStudentsParticipated,
		TotalPlaced:               m.TotalPlaced,
	}
}

// FromDomain populates the persistence model from a domain Year.
func (m *YearModel) FromDomain(y *placement.Year) {
	m.FromDomainAggregateRoot(y.BaseAggregateRoot)
	m.Year = y.Year
	m.TotalStudentsParticipated = y.TotalStudentsParticipated
	m.TotalPlaced = y.TotalPlaced
}

// YearModelFromDomain creates a new persistence model from a domain Year.
func YearModelFromDomain(y *placement.Year) *YearModel {
	m := &YearModel{}
	m.FromDomain(y)
	return m
}

// SystemStatsModel is the single-row persistence model for dashboard counters.
type SystemStatsModel struct {
	ID                 int `gorm:"primaryKey"`
	TotalYears         int `gorm:"not null;default:0"`
	TotalCompanies     int `gorm:"not null;default:0"`
	CompletedCompanies int `gorm:"not null;default:0"`
	RunningCompanies   int `gorm:"not null;default:0"`
	TotalStudents      int `gorm:"not null;default:0"`
	TotalPlaced        int `gorm:"not null;default:0"`
	TotalNotPlaced     int `gorm:"not null;default:0"`
	TotalOffers        int `gorm:"not null;default:0"`
	LastUpdated        *time.Time
	InitializedAt      *time.Time
}

// TableName returns the table name for GORM
func (SystemStatsModel) TableName() string {
	return "system_stats"
}

// ToDomain converts the persistence model to domain SystemStats.
func (m *SystemStatsModel) ToDomain() *placement.SystemStats {
	return &placement.SystemStats{
		TotalYears:         m.TotalYears,
		TotalCompanies:     m.TotalCompanies,
		CompletedCompanies: m.CompletedCompanies,
		RunningCompanies:   m.RunningCompanies,
		TotalStudents:      m.TotalStudents,
		TotalPlaced:        m.TotalPlaced,
		TotalNotPlaced:     m.TotalNotPlaced,
		TotalOffers:        m.TotalOffers,
		LastUpdated:        m.LastUpdated,
		InitializedAt:      m.InitializedAt,
	}
}

// FromDomain populates the persistence model from domain SystemStats.
func (m *SystemStatsModel) FromDomain(s *placement.SystemStats) {
	m.TotalYears = s.TotalYears
	m.TotalCompanies = s.TotalCompanies
	m.CompletedCompanies = s.CompletedCompanies
	m.RunningCompanies = s.RunningCompanies
	m.TotalStudents = s.TotalStudents
	m.TotalPlaced = s.TotalPlaced
	m.TotalNotPlaced = s.TotalNotPlaced
	m.TotalOffers = s.TotalOffers
	m.LastUpdated = s.LastUpdated
	m.InitializedAt = s.InitializedAt
}
