package placement

import (
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeStudent = "Student"
	AggregateTypeCompany = "Company"
)

// Placement domain event types
const (
	EventTypeStudentCreated = "StudentCreated"
	EventTypeStudentPlaced  = "StudentPlaced"
	EventTypeStudentDeleted = "StudentDeleted"
)

// StudentCreatedEvent is published when a student is registered
type StudentCreatedEvent struct {
	shared.BaseDomainEvent
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
}

// NewStudentCreatedEvent creates a new StudentCreatedEvent
func NewStudentCreatedEvent(student *Student) *StudentCreatedEvent {
	return &StudentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStudentCreated, AggregateTypeStudent, student.ID),
		Name:            student.Name,
		RollNumber:      student.RollNumber,
	}
}

// StudentPlacedEvent is published when a student receives their first offer
type StudentPlacedEvent struct {
	shared.BaseDomainEvent
	Name        string `json:"name"`
	TotalOffers int    `json:"total_offers"`
}

// NewStudentPlacedEvent creates a new StudentPlacedEvent
func NewStudentPlacedEvent(student *Student) *StudentPlacedEvent {
	return &StudentPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStudentPlaced, AggregateTypeStudent, student.ID),
		Name:            student.Name,
		TotalOffers:     student.TotalOffers,
	}
}

// StudentDeletedEvent is published after a student and their placement
// records have been removed
type StudentDeletedEvent struct {
	shared.BaseDomainEvent
	Name    string        `json:"name"`
	Cascade CascadeResult `json:"cascade"`
}

// NewStudentDeletedEvent creates a new StudentDeletedEvent
func NewStudentDeletedEvent(student *Student, cascade CascadeResult) *StudentDeletedEvent {
	return &StudentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStudentDeleted, AggregateTypeStudent, student.ID),
		Name:            student.Name,
		Cascade:         cascade,
	}
}
