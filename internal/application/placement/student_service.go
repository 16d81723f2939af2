package placement

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"go.uber.org/zap"
)

// StudentService handles student management operations
type StudentService struct {
	studentRepo placement.StudentRepository
	statsRepo   placement.SystemStatsRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo placement.StudentRepository,
	statsRepo placement.SystemStatsRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		statsRepo:   statsRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// ListStudents returns students matching the search, with status counts
// computed over the matched set
func (s *StudentService) ListStudents(ctx context.Context, input ListStudentsInput) (*ListStudentsResult, error) {
	students, err := s.studentRepo.FindAll(ctx, placement.StudentFilter{
		Search: input.Search,
		Limit:  input.Limit,
	})
	if err != nil {
		s.logger.Error("Failed to list students", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list students")
	}

	result := &ListStudentsResult{
		Students: make([]StudentDTO, len(students)),
		Total:    len(students),
	}
	for i, student := range students {
		result.Students[i] = toStudentDTO(student)
		if student.IsPlaced() {
			result.Placed++
		} else {
			result.NotPlaced++
		}
	}

	return result, nil
}

// CountStudents returns the total number of registered students
func (s *StudentService) CountStudents(ctx context.Context) (int64, error) {
	count, err := s.studentRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count students", zap.Error(err))
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to count students")
	}
	return count, nil
}

// GetStudentStats computes aggregate statistics over the filtered students.
// AvgOffers is the offer average over placed students, rounded to 2 decimals.
func (s *StudentService) GetStudentStats(ctx context.Context, input StudentStatsInput) (*StudentStatsResult, error) {
	filter := placement.StudentFilter{Search: input.Search}
	if input.Status != "" && input.Status != "all" {
		filter.Status = input.Status
	}

	students, err := s.studentRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to compute student stats", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to compute student stats")
	}

	result := &StudentStatsResult{Total: len(students)}
	for _, student := range students {
		result.TotalOffers += student.TotalOffers
		if student.IsPlaced() {
			result.Placed++
		} else {
			result.NotPlaced++
		}
	}

	if result.Total > 0 {
		avg := float64(result.TotalOffers) / float64(result.Total)
		result.AvgOffers = math.Round(avg*100) / 100
	}

	return result, nil
}

// GetStudent returns a single student by ID
func (s *StudentService) GetStudent(ctx context.Context, id uuid.UUID) (*StudentDTO, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("STUDENT_NOT_FOUND", "Student not found")
	}

	dto := toStudentDTO(student)
	return &dto, nil
}

// CreateStudent registers a new student and bumps the system counters
func (s *StudentService) CreateStudent(ctx context.Context, input CreateStudentInput) (*StudentDTO, error) {
	student, err := placement.NewStudent(input.Name, input.RollNumber, input.Email)
	if err != nil {
		return nil, err
	}

	if exists, err := s.studentRepo.ExistsByRollNumber(ctx, student.RollNumber); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("ROLL_NUMBER_EXISTS", "A student with this roll number already exists")
	}

	if exists, err := s.studentRepo.ExistsByEmail(ctx, student.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("EMAIL_EXISTS", "A student with this email already exists")
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		s.logger.Error("Failed to create student", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create student")
	}

	if err := s.statsRepo.Adjust(ctx, placement.SystemStatsDelta{
		TotalStudents:  1,
		TotalNotPlaced: 1,
	}); err != nil {
		s.logger.Warn("Failed to adjust system counters after student create", zap.Error(err))
	}

	s.publishEvents(ctx, student)

	s.logger.Info("Student created",
		zap.String("student_id", student.ID.String()),
		zap.String("roll_number", student.RollNumber))

	dto := toStudentDTO(student)
	return &dto, nil
}

// DeleteStudent removes a student and everything referencing them, in one
// transaction, then adjusts the system counters
func (s *StudentService) DeleteStudent(ctx context.Context, id uuid.UUID) (*DeleteStudentResult, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("STUDENT_NOT_FOUND", "Student not found")
	}

	cascade, err := s.studentRepo.DeleteCascade(ctx, id)
	if err != nil {
		s.logger.Error("Cascading student delete failed",
			zap.String("student_id", id.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to delete student")
	}

	delta := placement.SystemStatsDelta{
		TotalStudents: -1,
		TotalOffers:   -student.TotalOffers,
	}
	if student.IsPlaced() {
		delta.TotalPlaced = -1
	} else {
		delta.TotalNotPlaced = -1
	}
	if err := s.statsRepo.Adjust(ctx, delta); err != nil {
		s.logger.Warn("Failed to adjust system counters after student delete", zap.Error(err))
	}

	if s.eventBus != nil {
		event := placement.NewStudentDeletedEvent(student, *cascade)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish student deleted event", zap.Error(err))
		}
	}

	s.logger.Info("Student deleted",
		zap.String("student_id", id.String()),
		zap.Int("companies_affected", cascade.CompaniesAffected),
		zap.Int("placements_deleted", cascade.PlacementsDeleted))

	return &DeleteStudentResult{
		StudentID:   student.ID,
		StudentName: student.Name,
		Cascade:     *cascade,
	}, nil
}

// publishEvents publishes and clears the aggregate's pending domain events
func (s *StudentService) publishEvents(ctx context.Context, student *placement.Student) {
	if s.eventBus == nil {
		return
	}
	events := student.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish student events", zap.Error(err))
	}
	student.ClearDomainEvents()
}
