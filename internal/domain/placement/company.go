package placement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
)

// CompanyStatus represents the state of a hiring drive
type CompanyStatus string

const (
	CompanyStatusRunning   CompanyStatus = "running"
	CompanyStatusCompleted CompanyStatus = "completed"
	CompanyStatusUnknown   CompanyStatus = "unknown"
)

// Company represents one company's hiring drive for a given year
// It is the aggregate root for rounds and placements
type Company struct {
	shared.BaseAggregateRoot
	CompanyName  string
	Year         int
	Status       CompanyStatus
	TotalApplied int
	TotalPlaced  int
}

// Round is a stage of a company's hiring drive
type Round struct {
	shared.BaseEntity
	CompanyID   uuid.UUID
	RoundNumber int
	Name        string
}

// RoundEntry is a single student's row in a round
type RoundEntry struct {
	shared.BaseEntity
	RoundID   uuid.UUID
	StudentID uuid.UUID
	Result    string
}

// Placement records a final selection of a student by a company
type Placement struct {
	shared.BaseEntity
	CompanyID   uuid.UUID
	StudentID   uuid.UUID
	StudentName string
	Package     string
}

// Application records a student's participation in a company drive
type Application struct {
	shared.BaseEntity
	StudentID      uuid.UUID
	CompanyID      uuid.UUID
	Year           int
	FinalSelection bool
}

// NewCompany creates a new company drive for a year
func NewCompany(companyName string, year int) (*Company, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name is required")
	}
	if year <= 0 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year must be positive")
	}

	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyName:       companyName,
		Year:              year,
		Status:            CompanyStatusRunning,
	}, nil
}

// RecordApplication increments the applied counter
func (c *Company) RecordApplication() {
	c.TotalApplied++
	c.touch()
}

// RecordPlacement increments the placed counter
func (c *Company) RecordPlacement() {
	c.TotalPlaced++
	c.touch()
}

// RemoveApplication decrements the applied counter, flooring at zero
func (c *Company) RemoveApplication() {
	if c.TotalApplied > 0 {
		c.TotalApplied--
	}
	c.touch()
}

// RemovePlacement decrements the placed counter, flooring at zero
func (c *Company) RemovePlacement() {
	if c.TotalPlaced > 0 {
		c.TotalPlaced--
	}
	c.touch()
}

// Complete marks the hiring drive as finished
func (c *Company) Complete() error {
	if c.Status == CompanyStatusCompleted {
		return shared.NewDomainError("ALREADY_COMPLETED", "Hiring drive is already completed")
	}
	c.Status = CompanyStatusCompleted
	c.touch()
	return nil
}

// IsRunning returns true while the drive is still in progress
func (c *Company) IsRunning() bool {
	return c.Status == CompanyStatusRunning
}

func (c *Company) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
