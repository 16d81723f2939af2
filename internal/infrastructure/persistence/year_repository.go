package persistence

import (
	"context"
	"errors"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormYearRepository implements YearRepository using GORM
type GormYearRepository struct {
	db *gorm.DB
}

// NewGormYearRepository creates a new GormYearRepository
func NewGormYearRepository(db *gorm.DB) *GormYearRepository {
	return &GormYearRepository{db: db}
}

// Save creates or updates a year's analytics
func (r *GormYearRepository) Save(ctx context.Context, year *placement.Year) error {
	model := models.YearModelFromDomain(year)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_students_participated", "total_placed", "updated_at", "version",
			}),
		}).
		Create(model).Error
}

// FindByYear finds analytics for a specific year
func (r *GormYearRepository) FindByYear(ctx context.Context, year int) (*placement.Year, error) {
	var model models.YearModel
	if err := r.db.WithContext(ctx).First(&model, "year = ?", year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all years sorted descending
func (r *GormYearRepository) FindAll(ctx context.Context) ([]*placement.Year, error) {
	var yearModels []*models.YearModel
	if err := r.db.WithContext(ctx).
		Order("year DESC").
		Find(&yearModels).Error; err != nil {
		return nil, err
	}

	years := make([]*placement.Year, len(yearModels))
	for i, model := range yearModels {
		years[i] = model.ToDomain()
	}
	return years, nil
}

// Count returns the number of tracked years
func (r *GormYearRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.YearModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormYearRepository implements YearRepository
var _ placement.YearRepository = (*GormYearRepository)(nil)
