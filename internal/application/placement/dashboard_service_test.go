package placement

import (
	"context"
	"testing"
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type dashboardFixture struct {
	studentRepo *mockStudentRepository
	companyRepo *mockCompanyRepository
	yearRepo    *mockYearRepository
	statsRepo   *mockSystemStatsRepository
	cache       cache.SummaryCache
	service     *DashboardService
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		studentRepo: new(mockStudentRepository),
		companyRepo: new(mockCompanyRepository),
		yearRepo:    new(mockYearRepository),
		statsRepo:   new(mockSystemStatsRepository),
		cache:       cache.NewInMemorySummaryCache(),
	}
	logger := zap.NewNop()
	yearService := NewYearService(f.yearRepo, f.companyRepo, logger)
	f.service = NewDashboardService(
		f.studentRepo, f.companyRepo, f.yearRepo, f.statsRepo,
		yearService, f.cache, 30*time.Second, logger,
	)
	return f
}

func newTestCompany(t *testing.T, name string, year int, placed int) *placement.Company {
	t.Helper()
	company, err := placement.NewCompany(name, year)
	require.NoError(t, err)
	for i := 0; i < placed; i++ {
		company.RecordPlacement()
	}
	return company
}

func (f *dashboardFixture) expectFullBuild(t *testing.T) {
	currentYear := time.Now().Year()

	f.yearRepo.On("Count", mock.Anything).Return(int64(2), nil)
	f.companyRepo.On("Count", mock.Anything).Return(int64(4), nil)
	f.studentRepo.On("Count", mock.Anything).Return(int64(100), nil)
	f.statsRepo.On("Get", mock.Anything).Return(&placement.SystemStats{
		TotalCompanies:     4,
		CompletedCompanies: 3,
		RunningCompanies:   1,
		TotalPlaced:        40,
	}, nil)

	latest := newTestCompany(t, "TCS", currentYear, 12)
	f.companyRepo.On("FindByYear", mock.Anything, currentYear).
		Return([]*placement.Company{latest}, nil)
	f.yearRepo.On("FindByYear", mock.Anything, currentYear).
		Return(&placement.Year{Year: currentYear, TotalPlaced: 12}, nil)

	f.companyRepo.On("FindRecent", mock.Anything, 5).
		Return([]*placement.Company{latest}, nil)
}

func TestDashboardService_GetSummary(t *testing.T) {
	t.Run("assembles counts, stats, latest year, and recent companies", func(t *testing.T) {
		f := newDashboardFixture()
		f.expectFullBuild(t)

		summary, err := f.service.GetSummary(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Counts.Years)
		assert.Equal(t, int64(4), summary.Counts.Companies)
		assert.Equal(t, int64(100), summary.Counts.Students)
		assert.Equal(t, 3, summary.Stats.CompletedCompanies)
		assert.Equal(t, 40, summary.Stats.TotalPlaced)
		require.NotNil(t, summary.LatestYear)
		assert.Equal(t, time.Now().Year(), summary.LatestYear.Year)
		assert.Equal(t, 12, summary.LatestYear.TotalPlaced)
		assert.Len(t, summary.LatestYear.CompanyWise, 1)
		require.Len(t, summary.RecentCompanies, 1)
		assert.Equal(t, "TCS", summary.RecentCompanies[0].CompanyName)
	})

	t.Run("serves the second call from cache", func(t *testing.T) {
		f := newDashboardFixture()
		f.expectFullBuild(t)

		first, err := f.service.GetSummary(context.Background())
		require.NoError(t, err)

		second, err := f.service.GetSummary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first.Counts, second.Counts)

		// One build only: every repo expectation was consumed exactly once
		f.yearRepo.AssertNumberOfCalls(t, "Count", 1)
		f.companyRepo.AssertNumberOfCalls(t, "Count", 1)
	})

	t.Run("rebuilds after invalidation", func(t *testing.T) {
		f := newDashboardFixture()
		f.expectFullBuild(t)

		_, err := f.service.GetSummary(context.Background())
		require.NoError(t, err)

		f.service.InvalidateSummary(context.Background())

		_, err = f.service.GetSummary(context.Background())
		require.NoError(t, err)
		f.companyRepo.AssertNumberOfCalls(t, "Count", 2)
	})

	t.Run("derives latest year placed from companies when the year row is missing", func(t *testing.T) {
		f := newDashboardFixture()
		currentYear := time.Now().Year()

		f.yearRepo.On("Count", mock.Anything).Return(int64(0), nil)
		f.companyRepo.On("Count", mock.Anything).Return(int64(1), nil)
		f.studentRepo.On("Count", mock.Anything).Return(int64(10), nil)
		f.statsRepo.On("Get", mock.Anything).Return(&placement.SystemStats{}, nil)

		company := newTestCompany(t, "Infosys", currentYear, 7)
		f.companyRepo.On("FindByYear", mock.Anything, currentYear).
			Return([]*placement.Company{company}, nil)
		f.yearRepo.On("FindByYear", mock.Anything, currentYear).
			Return(nil, assert.AnError)
		f.companyRepo.On("FindRecent", mock.Anything, 5).
			Return([]*placement.Company{}, nil)

		summary, err := f.service.GetSummary(context.Background())

		require.NoError(t, err)
		require.NotNil(t, summary.LatestYear)
		assert.Equal(t, 7, summary.LatestYear.TotalPlaced)
	})
}

func TestDashboardService_InitializeStats(t *testing.T) {
	t.Run("recounts every collection and saves the singleton", func(t *testing.T) {
		f := newDashboardFixture()

		f.yearRepo.On("Count", mock.Anything).Return(int64(3), nil)
		f.companyRepo.On("Count", mock.Anything).Return(int64(5), nil)
		f.companyRepo.On("CountByStatus", mock.Anything, placement.CompanyStatusCompleted).Return(int64(4), nil)
		f.companyRepo.On("CountByStatus", mock.Anything, placement.CompanyStatusRunning).Return(int64(1), nil)

		placed, err := placement.NewStudent("A", "R1", "a@iare.ac.in")
		require.NoError(t, err)
		placed.RecordOffer()
		notPlaced, err := placement.NewStudent("B", "R2", "b@iare.ac.in")
		require.NoError(t, err)

		f.studentRepo.On("FindAll", mock.Anything, placement.StudentFilter{}).
			Return([]*placement.Student{placed, notPlaced}, nil)
		f.statsRepo.On("Save", mock.Anything, mock.AnythingOfType("*placement.SystemStats")).Return(nil)

		stats, err := f.service.InitializeStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalYears)
		assert.Equal(t, 5, stats.TotalCompanies)
		assert.Equal(t, 4, stats.CompletedCompanies)
		assert.Equal(t, 1, stats.RunningCompanies)
		assert.Equal(t, 2, stats.TotalStudents)
		assert.Equal(t, 1, stats.TotalPlaced)
		assert.Equal(t, 1, stats.TotalNotPlaced)
		assert.Equal(t, 1, stats.TotalOffers)
		require.NotNil(t, stats.InitializedAt)
		f.statsRepo.AssertExpectations(t)
	})
}
