package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create creates a new company drive
func (r *GormCompanyRepository) Create(ctx context.Context, company *placement.Company) error {
	model := models.CompanyModelFromDomain(company)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing company drive
func (r *GormCompanyRepository) Update(ctx context.Context, company *placement.Company) error {
	model := models.CompanyModelFromDomain(company)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a company drive by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*placement.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all company drives sorted by year and name descending
func (r *GormCompanyRepository) FindAll(ctx context.Context) ([]*placement.Company, error) {
	var companyModels []*models.CompanyModel
	if err := r.db.WithContext(ctx).
		Order("year DESC, company_name DESC").
		Find(&companyModels).Error; err != nil {
		return nil, err
	}
	return toDomainCompanies(companyModels), nil
}

// FindByYear returns all company drives for a specific year
func (r *GormCompanyRepository) FindByYear(ctx context.Context, year int) ([]*placement.Company, error) {
	var companyModels []*models.CompanyModel
	if err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("company_name ASC").
		Find(&companyModels).Error; err != nil {
		return nil, err
	}
	return toDomainCompanies(companyModels), nil
}

// FindRecent returns the most recently updated company drives
func (r *GormCompanyRepository) FindRecent(ctx context.Context, limit int) ([]*placement.Company, error) {
	if limit <= 0 {
		limit = 5
	}
	var companyModels []*models.CompanyModel
	if err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&companyModels).Error; err != nil {
		return nil, err
	}
	return toDomainCompanies(companyModels), nil
}

// FindRounds returns the rounds of a drive sorted by round number
func (r *GormCompanyRepository) FindRounds(ctx context.Context, companyID uuid.UUID) ([]*placement.Round, error) {
	var roundModels []*models.RoundModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("round_number ASC").
		Find(&roundModels).Error; err != nil {
		return nil, err
	}

	rounds := make([]*placement.Round, len(roundModels))
	for i, model := range roundModels {
		rounds[i] = model.ToDomain()
	}
	return rounds, nil
}

// FindRoundEntries returns the per-student entries of a round
func (r *GormCompanyRepository) FindRoundEntries(ctx context.Context, roundID uuid.UUID) ([]*placement.RoundEntry, error) {
	var entryModels []*models.RoundEntryModel
	if err := r.db.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*placement.RoundEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = model.ToDomain()
	}
	return entries, nil
}

// FindPlacements returns all final selections recorded for a drive
func (r *GormCompanyRepository) FindPlacements(ctx context.Context, companyID uuid.UUID) ([]*placement.Placement, error) {
	var placementModels []*models.PlacementModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&placementModels).Error; err != nil {
		return nil, err
	}

	placements := make([]*placement.Placement, len(placementModels))
	for i, model := range placementModels {
		placements[i] = model.ToDomain()
	}
	return placements, nil
}

// Count returns the total number of company drives
func (r *GormCompanyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus returns the number of drives with the given status
func (r *GormCompanyRepository) CountByStatus(ctx context.Context, status placement.CompanyStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainCompanies(companyModels []*models.CompanyModel) []*placement.Company {
	companies := make([]*placement.Company, len(companyModels))
	for i, model := range companyModels {
		companies[i] = model.ToDomain()
	}
	return companies
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ placement.CompanyRepository = (*GormCompanyRepository)(nil)
