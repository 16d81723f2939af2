package placement

import (
	"strings"
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
)

// StudentStatus represents the placement status of a student
type StudentStatus string

const (
	StudentStatusPlaced    StudentStatus = "placed"
	StudentStatusNotPlaced StudentStatus = "not_placed"
)

// Student represents a student tracked through placement drives
// It is the aggregate root for student-related operations
type Student struct {
	shared.BaseAggregateRoot
	Name          string
	RollNumber    string
	Email         string
	CurrentStatus StudentStatus
	TotalOffers   int
}

// NewStudent creates a new student with the required fields
func NewStudent(name, rollNumber, email string) (*Student, error) {
	name = strings.TrimSpace(name)
	rollNumber = strings.TrimSpace(rollNumber)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	if rollNumber == "" {
		return nil, shared.NewDomainError("INVALID_ROLL_NUMBER", "Roll number is required")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	student := &Student{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		RollNumber:        rollNumber,
		Email:             strings.ToLower(email),
		CurrentStatus:     StudentStatusNotPlaced,
		TotalOffers:       0,
	}

	student.AddDomainEvent(NewStudentCreatedEvent(student))

	return student, nil
}

// RecordOffer records an offer for the student and marks them placed
func (s *Student) RecordOffer() {
	s.TotalOffers++
	if s.CurrentStatus != StudentStatusPlaced {
		s.CurrentStatus = StudentStatusPlaced
		s.AddDomainEvent(NewStudentPlacedEvent(s))
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// IsPlaced returns true if the student holds at least one final selection
func (s *Student) IsPlaced() bool {
	return s.CurrentStatus == StudentStatusPlaced
}

// MatchesSearch reports whether the student matches a case-insensitive
// substring search over name, roll number, or email
func (s *Student) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.RollNumber), term) ||
		strings.Contains(strings.ToLower(s.Email), term)
}
