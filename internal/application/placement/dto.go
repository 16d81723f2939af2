package placement

import (
	"time"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
)

// StudentDTO is the application-level view of a student
type StudentDTO struct {
	ID            uuid.UUID
	Name          string
	RollNumber    string
	Email         string
	CurrentStatus placement.StudentStatus
	TotalOffers   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListStudentsInput contains the input for listing students
type ListStudentsInput struct {
	Search string
	Limit  int
}

// ListStudentsResult contains the matched students with their status counts
type ListStudentsResult struct {
	Students  []StudentDTO
	Total     int
	Placed    int
	NotPlaced int
}

// StudentStatsInput contains the input for computing student statistics
type StudentStatsInput struct {
	Search string
	Status string // "all", "placed", or "not_placed"
}

// StudentStatsResult contains aggregate statistics over the filtered students
type StudentStatsResult struct {
	Total       int
	Placed      int
	NotPlaced   int
	TotalOffers int
	AvgOffers   float64
}

// CreateStudentInput contains the input for registering a student
type CreateStudentInput struct {
	Name       string
	RollNumber string
	Email      string
}

// DeleteStudentResult summarizes a cascading student removal
type DeleteStudentResult struct {
	StudentID   uuid.UUID
	StudentName string
	Cascade     placement.CascadeResult
}

// CompanyDTO is the application-level view of a company drive
type CompanyDTO struct {
	ID           uuid.UUID
	CompanyName  string
	Year         int
	Status       placement.CompanyStatus
	TotalApplied int
	TotalPlaced  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PlacementDTO is a single final selection inside a company's placements map
type PlacementDTO struct {
	StudentName string
	Package     string
}

// CompanyDetailResult contains a company with its placements keyed by student ID
type CompanyDetailResult struct {
	Company    CompanyDTO
	Placements map[string]PlacementDTO
}

// RoundDTO is a hiring round with its per-student result map keyed by student ID
type RoundDTO struct {
	ID          uuid.UUID
	RoundNumber int
	Name        string
	Data        map[string]string
}

// YearDTO is a placement year with its per-company breakdown keyed by company ID
type YearDTO struct {
	Year                      int
	TotalStudentsParticipated int
	TotalPlaced               int
	CompanyWise               map[string]placement.CompanyYearStats
}

// DashboardCounts holds the top-level collection counts
type DashboardCounts struct {
	Years     int64 `json:"years"`
	Companies int64 `json:"companies"`
	Students  int64 `json:"students"`
}

// DashboardStats holds the headline counters shown on the dashboard
type DashboardStats struct {
	TotalCompanies     int `json:"totalCompanies"`
	CompletedCompanies int `json:"completedCompanies"`
	RunningCompanies   int `json:"runningCompanies"`
	TotalPlaced        int `json:"totalPlaced"`
}

// DashboardLatestYear holds the current year's snapshot on the dashboard
type DashboardLatestYear struct {
	Year           int                                   `json:"year"`
	CompanyWise    map[string]placement.CompanyYearStats `json:"companyWise"`
	TotalCompanies int                                   `json:"totalCompanies"`
	TotalPlaced    int                                   `json:"totalPlaced"`
}

// DashboardRecentCompany is one row of the recent-companies panel
type DashboardRecentCompany struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Year        int       `json:"year"`
	Status      string    `json:"status"`
	TotalPlaced int       `json:"totalPlaced"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DashboardSummary is the full dashboard payload. It is serialized as-is
// into the summary cache.
type DashboardSummary struct {
	Counts          DashboardCounts          `json:"counts"`
	Stats           DashboardStats           `json:"stats"`
	LatestYear      *DashboardLatestYear     `json:"latestYear"`
	RecentCompanies []DashboardRecentCompany `json:"recentCompanies"`
}

func toStudentDTO(s *placement.Student) StudentDTO {
	return StudentDTO{
		ID:            s.ID,
		Name:          s.Name,
		RollNumber:    s.RollNumber,
		Email:         s.Email,
		CurrentStatus: s.CurrentStatus,
		TotalOffers:   s.TotalOffers,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toCompanyDTO(c *placement.Company) CompanyDTO {
	return CompanyDTO{
		ID:           c.ID,
		CompanyName:  c.CompanyName,
		Year:         c.Year,
		Status:       c.Status,
		TotalApplied: c.TotalApplied,
		TotalPlaced:  c.TotalPlaced,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
