package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockStudentRepository creates a GormStudentRepository with a mocked SQL connection
func newMockStudentRepository(t *testing.T) (*GormStudentRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormStudentRepository(gormDB), mock, mockDB
}

func TestNewGormStudentRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormStudentRepository_FindByID(t *testing.T) {
	t.Run("finds existing student", func(t *testing.T) {
		repo, mock, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		studentID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "roll_number", "email", "current_status", "total_offers", "version"}).
			AddRow(studentID, "Ravi Kumar", "20951A0501", "ravi@iare.ac.in", "not_placed", 0, 1)

		mock.ExpectQuery(`SELECT \* FROM "students" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(studentID, 1).
			WillReturnRows(rows)

		student, err := repo.FindByID(context.Background(), studentID)

		assert.NoError(t, err)
		assert.NotNil(t, student)
		assert.Equal(t, studentID, student.ID)
		assert.Equal(t, "20951A0501", student.RollNumber)
		assert.Equal(t, placement.StudentStatusNotPlaced, student.CurrentStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent student", func(t *testing.T) {
		repo, mock, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		studentID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "students" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(studentID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		student, err := repo.FindByID(context.Background(), studentID)

		assert.Error(t, err)
		assert.Nil(t, student)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStudentRepository_FindAll(t *testing.T) {
	t.Run("applies search filter", func(t *testing.T) {
		repo, mock, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "roll_number", "email", "current_status", "total_offers", "version"}).
			AddRow(uuid.New(), "Ravi Kumar", "20951A0501", "ravi@iare.ac.in", "placed", 2, 3)

		mock.ExpectQuery(`SELECT \* FROM "students" WHERE name ILIKE \$1 OR roll_number ILIKE \$2 OR email ILIKE \$3 ORDER BY name ASC`).
			WithArgs("%ravi%", "%ravi%", "%ravi%").
			WillReturnRows(rows)

		students, err := repo.FindAll(context.Background(), placement.StudentFilter{Search: "ravi"})

		assert.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "Ravi Kumar", students[0].Name)
		assert.True(t, students[0].IsPlaced())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies status filter", func(t *testing.T) {
		repo, mock, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "roll_number", "email", "current_status", "total_offers", "version"})

		mock.ExpectQuery(`SELECT \* FROM "students" WHERE current_status = \$1 ORDER BY name ASC`).
			WithArgs("placed").
			WillReturnRows(rows)

		students, err := repo.FindAll(context.Background(), placement.StudentFilter{Status: "placed"})

		assert.NoError(t, err)
		assert.Empty(t, students)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStudentRepository_ExistsByRollNumber(t *testing.T) {
	t.Run("returns true when roll number exists", func(t *testing.T) {
		repo, mock, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE LOWER\(roll_number\) = \$1`).
			WithArgs("20951a0501").
			WillReturnRows(rows)

		exists, err := repo.ExistsByRollNumber(context.Background(), "20951A0501")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when roll number is free", func(t *testing.T) {
		repo, mock, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(0)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "students" WHERE LOWER\(roll_number\) = \$1`).
			WithArgs("20951a0599").
			WillReturnRows(rows)

		exists, err := repo.ExistsByRollNumber(context.Background(), "20951A0599")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStudentRepository_Count(t *testing.T) {
	t.Run("returns total student count", func(t *testing.T) {
		repo, mock, mockDB := newMockStudentRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(42)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
			WillReturnRows(rows)

		count, err := repo.Count(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
