package placement

import (
	"context"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"go.uber.org/zap"
)

// CompanyService handles company drive queries
type CompanyService struct {
	companyRepo placement.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo placement.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// ListCompanies returns all company drives, newest year first
func (s *CompanyService) ListCompanies(ctx context.Context) ([]CompanyDTO, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list companies", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list companies")
	}

	dtos := make([]CompanyDTO, len(companies))
	for i, company := range companies {
		dtos[i] = toCompanyDTO(company)
	}
	return dtos, nil
}

// GetCompanyDetails returns a company with its placements keyed by student ID
func (s *CompanyService) GetCompanyDetails(ctx context.Context, id uuid.UUID) (*CompanyDetailResult, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
	}

	placements, err := s.companyRepo.FindPlacements(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load company placements", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load company placements")
	}

	placementMap := make(map[string]PlacementDTO, len(placements))
	for _, p := range placements {
		placementMap[p.StudentID.String()] = PlacementDTO{
			StudentName: p.StudentName,
			Package:     p.Package,
		}
	}

	return &CompanyDetailResult{
		Company:    toCompanyDTO(company),
		Placements: placementMap,
	}, nil
}

// GetCompanyRounds returns the rounds of a drive, each with its per-student
// result map keyed by student ID
func (s *CompanyService) GetCompanyRounds(ctx context.Context, id uuid.UUID) ([]RoundDTO, error) {
	if _, err := s.companyRepo.FindByID(ctx, id); err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
	}

	rounds, err := s.companyRepo.FindRounds(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load company rounds", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load company rounds")
	}

	dtos := make([]RoundDTO, len(rounds))
	for i, round := range rounds {
		entries, err := s.companyRepo.FindRoundEntries(ctx, round.ID)
		if err != nil {
			s.logger.Error("Failed to load round entries", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load round entries")
		}

		data := make(map[string]string, len(entries))
		for _, entry := range entries {
			data[entry.StudentID.String()] = entry.Result
		}

		dtos[i] = RoundDTO{
			ID:          round.ID,
			RoundNumber: round.RoundNumber,
			Name:        round.Name,
			Data:        data,
		}
	}

	return dtos, nil
}

// DeleteCompany is handled by the dedicated deletion service; the endpoint
// answers Gone so stale clients get a stable error instead of a 404
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Rejected company delete, endpoint moved",
		zap.String("company_id", id.String()))
	return shared.ErrGone
}

// DeleteRound is handled by the dedicated deletion service
func (s *CompanyService) DeleteRound(ctx context.Context, companyID, roundID uuid.UUID) error {
	s.logger.Info("Rejected round delete, endpoint moved",
		zap.String("company_id", companyID.String()),
		zap.String("round_id", roundID.String()))
	return shared.ErrGone
}
