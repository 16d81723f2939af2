package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockCompanyRepository(t *testing.T) (*GormCompanyRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormCompanyRepository(gormDB), mock, mockDB
}

func TestGormCompanyRepository_FindAll(t *testing.T) {
	t.Run("sorts by year and name descending", func(t *testing.T) {
		repo, mock, mockDB := newMockCompanyRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "company_name", "year", "status", "total_applied", "total_placed", "version"}).
			AddRow(uuid.New(), "TCS", 2026, "running", 120, 0, 1).
			AddRow(uuid.New(), "Infosys", 2025, "completed", 80, 35, 4)

		mock.ExpectQuery(`SELECT \* FROM "companies" ORDER BY year DESC, company_name DESC`).
			WillReturnRows(rows)

		companies, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, companies, 2)
		assert.Equal(t, "TCS", companies[0].CompanyName)
		assert.True(t, companies[0].IsRunning())
		assert.Equal(t, 35, companies[1].TotalPlaced)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCompanyRepository_FindRounds(t *testing.T) {
	t.Run("returns rounds sorted by round number", func(t *testing.T) {
		repo, mock, mockDB := newMockCompanyRepository(t)
		defer mockDB.Close()

		companyID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "company_id", "round_number", "name"}).
			AddRow(uuid.New(), companyID, 1, "Online Test").
			AddRow(uuid.New(), companyID, 2, "Technical Interview")

		mock.ExpectQuery(`SELECT \* FROM "rounds" WHERE company_id = \$1 ORDER BY round_number ASC`).
			WithArgs(companyID).
			WillReturnRows(rows)

		rounds, err := repo.FindRounds(context.Background(), companyID)

		assert.NoError(t, err)
		require.Len(t, rounds, 2)
		assert.Equal(t, 1, rounds[0].RoundNumber)
		assert.Equal(t, "Technical Interview", rounds[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCompanyRepository_CountByStatus(t *testing.T) {
	t.Run("counts running drives", func(t *testing.T) {
		repo, mock, mockDB := newMockCompanyRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(3)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "companies" WHERE status = \$1`).
			WithArgs("running").
			WillReturnRows(rows)

		count, err := repo.CountByStatus(context.Background(), placement.CompanyStatusRunning)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
