package placement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStudent(t *testing.T, name, roll, email string) *placement.Student {
	t.Helper()
	student, err := placement.NewStudent(name, roll, email)
	require.NoError(t, err)
	student.ClearDomainEvents()
	return student
}

func newTestStudentService(studentRepo *mockStudentRepository, statsRepo *mockSystemStatsRepository) *StudentService {
	return NewStudentService(studentRepo, statsRepo, nil, zap.NewNop())
}

func TestStudentService_ListStudents(t *testing.T) {
	t.Run("returns students with status counts", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		placed := newTestStudent(t, "Ravi Kumar", "20951A0501", "ravi@iare.ac.in")
		placed.RecordOffer()
		notPlaced := newTestStudent(t, "Sita Devi", "20951A0502", "sita@iare.ac.in")

		studentRepo.On("FindAll", mock.Anything, placement.StudentFilter{Search: ""}).
			Return([]*placement.Student{placed, notPlaced}, nil)

		result, err := service.ListStudents(context.Background(), ListStudentsInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Placed)
		assert.Equal(t, 1, result.NotPlaced)
		assert.Len(t, result.Students, 2)
	})

	t.Run("passes search filter through", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		studentRepo.On("FindAll", mock.Anything, placement.StudentFilter{Search: "ravi", Limit: 10}).
			Return([]*placement.Student{}, nil)

		result, err := service.ListStudents(context.Background(), ListStudentsInput{Search: "ravi", Limit: 10})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		studentRepo.AssertExpectations(t)
	})
}

func TestStudentService_GetStudentStats(t *testing.T) {
	t.Run("averages offers over the whole filtered set rounded to 2 decimals", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		a := newTestStudent(t, "A", "R1", "a@iare.ac.in")
		a.RecordOffer()
		a.RecordOffer() // 2 offers
		b := newTestStudent(t, "B", "R2", "b@iare.ac.in")
		b.RecordOffer()
		b.RecordOffer() // 2 offers
		c := newTestStudent(t, "C", "R3", "c@iare.ac.in")
		a.ClearDomainEvents()
		b.ClearDomainEvents()

		studentRepo.On("FindAll", mock.Anything, placement.StudentFilter{}).
			Return([]*placement.Student{a, b, c}, nil)

		result, err := service.GetStudentStats(context.Background(), StudentStatsInput{Status: "all"})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 2, result.Placed)
		assert.Equal(t, 1, result.NotPlaced)
		assert.Equal(t, 4, result.TotalOffers)
		assert.Equal(t, 1.33, result.AvgOffers)
	})

	t.Run("not placed students still count toward the average", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		a := newTestStudent(t, "A", "R1", "a@iare.ac.in")
		a.RecordOffer()
		a.RecordOffer()
		a.RecordOffer()
		a.RecordOffer() // 4 offers
		b := newTestStudent(t, "B", "R2", "b@iare.ac.in")
		a.ClearDomainEvents()

		studentRepo.On("FindAll", mock.Anything, placement.StudentFilter{}).
			Return([]*placement.Student{a, b}, nil)

		result, err := service.GetStudentStats(context.Background(), StudentStatsInput{Status: "all"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Placed)
		assert.Equal(t, 2.0, result.AvgOffers)
	})

	t.Run("zero average when nobody is placed", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		c := newTestStudent(t, "C", "R3", "c@iare.ac.in")

		studentRepo.On("FindAll", mock.Anything, placement.StudentFilter{}).
			Return([]*placement.Student{c}, nil)

		result, err := service.GetStudentStats(context.Background(), StudentStatsInput{})

		require.NoError(t, err)
		assert.Equal(t, 0.0, result.AvgOffers)
	})

	t.Run("narrows to placed students when requested", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		studentRepo.On("FindAll", mock.Anything, placement.StudentFilter{Status: "placed"}).
			Return([]*placement.Student{}, nil)

		_, err := service.GetStudentStats(context.Background(), StudentStatsInput{Status: "placed"})

		require.NoError(t, err)
		studentRepo.AssertExpectations(t)
	})
}

func TestStudentService_CreateStudent(t *testing.T) {
	t.Run("creates student and bumps counters", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		studentRepo.On("ExistsByRollNumber", mock.Anything, "20951A0501").Return(false, nil)
		studentRepo.On("ExistsByEmail", mock.Anything, "ravi@iare.ac.in").Return(false, nil)
		studentRepo.On("Create", mock.Anything, mock.AnythingOfType("*placement.Student")).Return(nil)
		statsRepo.On("Adjust", mock.Anything, placement.SystemStatsDelta{
			TotalStudents:  1,
			TotalNotPlaced: 1,
		}).Return(nil)

		dto, err := service.CreateStudent(context.Background(), CreateStudentInput{
			Name:       "Ravi Kumar",
			RollNumber: "20951A0501",
			Email:      "Ravi@iare.ac.in",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", dto.Name)
		assert.Equal(t, "ravi@iare.ac.in", dto.Email)
		assert.Equal(t, placement.StudentStatusNotPlaced, dto.CurrentStatus)
		statsRepo.AssertExpectations(t)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		dto, err := service.CreateStudent(context.Background(), CreateStudentInput{
			Name:       "  ",
			RollNumber: "20951A0501",
			Email:      "ravi@iare.ac.in",
		})

		assert.Nil(t, dto)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("rejects duplicate roll number", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		studentRepo.On("ExistsByRollNumber", mock.Anything, "20951A0501").Return(true, nil)

		dto, err := service.CreateStudent(context.Background(), CreateStudentInput{
			Name:       "Ravi Kumar",
			RollNumber: "20951A0501",
			Email:      "ravi@iare.ac.in",
		})

		assert.Nil(t, dto)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ROLL_NUMBER_EXISTS", domainErr.Code)
	})

	t.Run("rejects email without at sign", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		dto, err := service.CreateStudent(context.Background(), CreateStudentInput{
			Name:       "Ravi Kumar",
			RollNumber: "20951A0501",
			Email:      "ravi.iare.ac.in",
		})

		assert.Nil(t, dto)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
	})
}

func TestStudentService_DeleteStudent(t *testing.T) {
	t.Run("cascades and adjusts counters for a placed student", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		student := newTestStudent(t, "Ravi Kumar", "20951A0501", "ravi@iare.ac.in")
		student.RecordOffer()
		student.RecordOffer()
		student.ClearDomainEvents()

		cascade := &placement.CascadeResult{
			CompaniesAffected: 2,
			RoundsDeleted:     3,
			PlacementsDeleted: 2,
			YearsAffected:     1,
		}

		studentRepo.On("FindByID", mock.Anything, student.ID).Return(student, nil)
		studentRepo.On("DeleteCascade", mock.Anything, student.ID).Return(cascade, nil)
		statsRepo.On("Adjust", mock.Anything, placement.SystemStatsDelta{
			TotalStudents: -1,
			TotalPlaced:   -1,
			TotalOffers:   -2,
		}).Return(nil)

		result, err := service.DeleteStudent(context.Background(), student.ID)

		require.NoError(t, err)
		assert.Equal(t, student.ID, result.StudentID)
		assert.Equal(t, "Ravi Kumar", result.StudentName)
		assert.Equal(t, *cascade, result.Cascade)
		statsRepo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown student", func(t *testing.T) {
		studentRepo := new(mockStudentRepository)
		statsRepo := new(mockSystemStatsRepository)
		service := newTestStudentService(studentRepo, statsRepo)

		id := uuid.New()
		studentRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		result, err := service.DeleteStudent(context.Background(), id)

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STUDENT_NOT_FOUND", domainErr.Code)
	})
}
