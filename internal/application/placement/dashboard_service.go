package placement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// DashboardCacheKey is the summary cache key for the dashboard payload
const DashboardCacheKey = "dashboard"

// recentCompaniesLimit caps the recent-companies panel
const recentCompaniesLimit = 5

// DashboardService assembles the dashboard summary and maintains the
// system stats singleton
type DashboardService struct {
	studentRepo  placement.StudentRepository
	companyRepo  placement.CompanyRepository
	yearRepo     placement.YearRepository
	statsRepo    placement.SystemStatsRepository
	yearService  *YearService
	summaryCache cache.SummaryCache
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	studentRepo placement.StudentRepository,
	companyRepo placement.CompanyRepository,
	yearRepo placement.YearRepository,
	statsRepo placement.SystemStatsRepository,
	yearService *YearService,
	summaryCache cache.SummaryCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		studentRepo:  studentRepo,
		companyRepo:  companyRepo,
		yearRepo:     yearRepo,
		statsRepo:    statsRepo,
		yearService:  yearService,
		summaryCache: summaryCache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// GetSummary returns the dashboard summary, served from cache when fresh
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	if s.summaryCache != nil {
		if raw, ok, err := s.summaryCache.Get(ctx, DashboardCacheKey); err == nil && ok {
			var cached DashboardSummary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			// Corrupt entry, rebuild below
			_ = s.summaryCache.Invalidate(ctx, DashboardCacheKey)
		}
	}

	summary, err := s.buildSummary(ctx)
	if err != nil {
		return nil, err
	}

	if s.summaryCache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			if err := s.summaryCache.Set(ctx, DashboardCacheKey, raw, s.cacheTTL); err != nil {
				s.logger.Warn("Failed to cache dashboard summary", zap.Error(err))
			}
		}
	}

	return summary, nil
}

// InvalidateSummary drops the cached dashboard payload
func (s *DashboardService) InvalidateSummary(ctx context.Context) {
	if s.summaryCache == nil {
		return
	}
	if err := s.summaryCache.Invalidate(ctx, DashboardCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate dashboard summary cache", zap.Error(err))
	}
}

// buildSummary assembles the dashboard payload from the repositories
func (s *DashboardService) buildSummary(ctx context.Context) (*DashboardSummary, error) {
	yearCount, err := s.yearRepo.Count(ctx)
	if err != nil {
		return nil, s.internalError("Failed to count years", err)
	}
	companyCount, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, s.internalError("Failed to count companies", err)
	}
	studentCount, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, s.internalError("Failed to count students", err)
	}

	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return nil, s.internalError("Failed to load system stats", err)
	}

	summary := &DashboardSummary{
		Counts: DashboardCounts{
			Years:     yearCount,
			Companies: companyCount,
			Students:  studentCount,
		},
		Stats: DashboardStats{
			TotalCompanies:     stats.TotalCompanies,
			CompletedCompanies: stats.CompletedCompanies,
			RunningCompanies:   stats.RunningCompanies,
			TotalPlaced:        stats.TotalPlaced,
		},
		RecentCompanies: []DashboardRecentCompany{},
	}

	latest, err := s.latestYearSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary.LatestYear = latest

	recent, err := s.companyRepo.FindRecent(ctx, recentCompaniesLimit)
	if err != nil {
		return nil, s.internalError("Failed to load recent companies", err)
	}
	for _, company := range recent {
		summary.RecentCompanies = append(summary.RecentCompanies, DashboardRecentCompany{
			ID:          company.ID.String(),
			CompanyName: company.CompanyName,
			Year:        company.Year,
			Status:      string(company.Status),
			TotalPlaced: company.TotalPlaced,
			UpdatedAt:   company.UpdatedAt,
		})
	}

	return summary, nil
}

// latestYearSnapshot builds the current calendar year's panel. The stored
// year row may be missing or stale, so the companyWise breakdown is always
// computed live from the companies of that year.
func (s *DashboardService) latestYearSnapshot(ctx context.Context) (*DashboardLatestYear, error) {
	currentYear := time.Now().Year()

	companyWise, err := s.yearService.CompanyWise(ctx, currentYear)
	if err != nil {
		return nil, err
	}

	snapshot := &DashboardLatestYear{
		Year:           currentYear,
		CompanyWise:    companyWise,
		TotalCompanies: len(companyWise),
	}

	year, err := s.yearRepo.FindByYear(ctx, currentYear)
	if err == nil {
		snapshot.TotalPlaced = year.TotalPlaced
		return snapshot, nil
	}

	// No stored analytics for the year yet, derive placed from companies
	for _, cw := range companyWise {
		snapshot.TotalPlaced += cw.Placed
	}
	return snapshot, nil
}

// InitializeStats recounts every collection and rewrites the stats singleton
func (s *DashboardService) InitializeStats(ctx context.Context) (*placement.SystemStats, error) {
	yearCount, err := s.yearRepo.Count(ctx)
	if err != nil {
		return nil, s.internalError("Failed to count years", err)
	}
	companyCount, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, s.internalError("Failed to count companies", err)
	}
	completedCount, err := s.companyRepo.CountByStatus(ctx, placement.CompanyStatusCompleted)
	if err != nil {
		return nil, s.internalError("Failed to count completed companies", err)
	}
	runningCount, err := s.companyRepo.CountByStatus(ctx, placement.CompanyStatusRunning)
	if err != nil {
		return nil, s.internalError("Failed to count running companies", err)
	}

	students, err := s.studentRepo.FindAll(ctx, placement.StudentFilter{})
	if err != nil {
		return nil, s.internalError("Failed to load students for recount", err)
	}

	now := time.Now()
	stats := &placement.SystemStats{
		TotalYears:         int(yearCount),
		TotalCompanies:     int(companyCount),
		CompletedCompanies: int(completedCount),
		RunningCompanies:   int(runningCount),
		TotalStudents:      len(students),
		LastUpdated:        &now,
		InitializedAt:      &now,
	}
	for _, student := range students {
		stats.TotalOffers += student.TotalOffers
		if student.IsPlaced() {
			stats.TotalPlaced++
		} else {
			stats.TotalNotPlaced++
		}
	}

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return nil, s.internalError("Failed to save system stats", err)
	}

	s.InvalidateSummary(ctx)

	s.logger.Info("System stats initialized",
		zap.Int("total_students", stats.TotalStudents),
		zap.Int("total_companies", stats.TotalCompanies),
		zap.Int("total_years", stats.TotalYears))

	return stats, nil
}

func (s *DashboardService) internalError(msg string, err error) error {
	s.logger.Error(msg, zap.Error(err))
	return shared.NewDomainError("INTERNAL_ERROR", msg)
}
