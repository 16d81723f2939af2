package placement

import (
	"context"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"go.uber.org/zap"
)

// YearService handles per-year placement analytics
type YearService struct {
	yearRepo    placement.YearRepository
	companyRepo placement.CompanyRepository
	logger      *zap.Logger
}

// NewYearService creates a new year analytics service
func NewYearService(
	yearRepo placement.YearRepository,
	companyRepo placement.CompanyRepository,
	logger *zap.Logger,
) *YearService {
	return &YearService{
		yearRepo:    yearRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// ListYears returns all tracked years, newest first, each with its
// per-company breakdown derived from that year's companies
func (s *YearService) ListYears(ctx context.Context) ([]YearDTO, error) {
	years, err := s.yearRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list years", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list years")
	}

	dtos := make([]YearDTO, len(years))
	for i, year := range years {
		companyWise, err := s.CompanyWise(ctx, year.Year)
		if err != nil {
			return nil, err
		}

		dtos[i] = YearDTO{
			Year:                      year.Year,
			TotalStudentsParticipated: year.TotalStudentsParticipated,
			TotalPlaced:               year.TotalPlaced,
			CompanyWise:               companyWise,
		}
	}

	return dtos, nil
}

// CompanyWise builds the per-company breakdown for a year, keyed by company ID
func (s *YearService) CompanyWise(ctx context.Context, year int) (map[string]placement.CompanyYearStats, error) {
	companies, err := s.companyRepo.FindByYear(ctx, year)
	if err != nil {
		s.logger.Error("Failed to load companies for year",
			zap.Int("year", year),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load year breakdown")
	}

	companyWise := make(map[string]placement.CompanyYearStats, len(companies))
	for _, company := range companies {
		companyWise[company.ID.String()] = placement.CompanyYearStats{
			CompanyName: company.CompanyName,
			Placed:      company.TotalPlaced,
			Status:      string(company.Status),
		}
	}

	return companyWise, nil
}
