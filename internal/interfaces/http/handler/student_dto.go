package handler

import (
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/placement"
)

// StudentResponse is the API view of a student
type StudentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RollNumber    string    `json:"rollNumber"`
	Email         string    `json:"email,omitempty"`
	CurrentStatus string    `json:"currentStatus"`
	TotalOffers   int       `json:"totalOffers"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListStudentsRequest holds the query parameters for the student list
type ListStudentsRequest struct {
	Search string `form:"search"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ListStudentsResponse is the student list payload with status counts
type ListStudentsResponse struct {
	Students  []StudentResponse `json:"students"`
	Total     int               `json:"total"`
	Placed    int               `json:"placed"`
	NotPlaced int               `json:"notPlaced"`
}

// StudentCountResponse is the payload of the count endpoint
type StudentCountResponse struct {
	Total int64 `json:"total"`
}

// StudentStatsRequest holds the query parameters for student statistics
type StudentStatsRequest struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=all placed not_placed"`
}

// StudentStatsResponse is the aggregate statistics payload
type StudentStatsResponse struct {
	Total       int     `json:"total"`
	Placed      int     `json:"placed"`
	NotPlaced   int     `json:"notPlaced"`
	TotalOffers int     `json:"totalOffers"`
	AvgOffers   float64 `json:"avgOffers"`
}

// CreateStudentRequest is the request body for registering a student
type CreateStudentRequest struct {
	Name       string `json:"name" binding:"required"`
	RollNumber string `json:"rollNumber" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// CascadingUpdatesResponse reports the side effects of a student deletion
type CascadingUpdatesResponse struct {
	CompaniesAffected int `json:"companiesAffected"`
	RoundsDeleted     int `json:"roundsDeleted"`
	PlacementsDeleted int `json:"placementsDeleted"`
	YearsAffected     int `json:"yearsAffected"`
}

// DeleteStudentResponse summarizes a cascading student removal
type DeleteStudentResponse struct {
	StudentID        string                   `json:"studentId"`
	StudentName      string                   `json:"studentName"`
	CascadingUpdates CascadingUpdatesResponse `json:"cascadingUpdates"`
}

func toStudentResponse(s placement.StudentDTO) StudentResponse {
	return StudentResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		RollNumber:    s.RollNumber,
		Email:         s.Email,
		CurrentStatus: string(s.CurrentStatus),
		TotalOffers:   s.TotalOffers,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
