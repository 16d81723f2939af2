package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// systemStatsRowID is the fixed primary key of the single counters row
const systemStatsRowID = 1

// GormSystemStatsRepository implements SystemStatsRepository using GORM
type GormSystemStatsRepository struct {
	db *gorm.DB
}

// NewGormSystemStatsRepository creates a new GormSystemStatsRepository
func NewGormSystemStatsRepository(db *gorm.DB) *GormSystemStatsRepository {
	return &GormSystemStatsRepository{db: db}
}

// Get returns the current stats. A missing row yields zeroed stats.
func (r *GormSystemStatsRepository) Get(ctx context.Context) (*placement.SystemStats, error) {
	var model models.SystemStatsModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", systemStatsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &placement.SystemStats{}, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save writes the stats row, creating it when absent
func (r *GormSystemStatsRepository) Save(ctx context.Context, stats *placement.SystemStats) error {
	model := &models.SystemStatsModel{ID: systemStatsRowID}
	model.FromDomain(stats)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// Adjust atomically applies a delta to the stored counters, flooring each
// counter at zero. The row is created first if it does not exist yet.
func (r *GormSystemStatsRepository) Adjust(ctx context.Context, delta placement.SystemStatsDelta) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.SystemStatsModel{ID: systemStatsRowID}).Error; err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"total_years":         gorm.Expr("GREATEST(total_years + ?, 0)", delta.TotalYears),
			"total_companies":     gorm.Expr("GREATEST(total_companies + ?, 0)", delta.TotalCompanies),
			"completed_companies": gorm.Expr("GREATEST(completed_companies + ?, 0)", delta.CompletedCompanies),
			"running_companies":   gorm.Expr("GREATEST(running_companies + ?, 0)", delta.RunningCompanies),
			"total_students":      gorm.Expr("GREATEST(total_students + ?, 0)", delta.TotalStudents),
			"total_placed":        gorm.Expr("GREATEST(total_placed + ?, 0)", delta.TotalPlaced),
			"total_not_placed":    gorm.Expr("GREATEST(total_not_placed + ?, 0)", delta.TotalNotPlaced),
			"total_offers":        gorm.Expr("GREATEST(total_offers + ?, 0)", delta.TotalOffers),
			"last_updated":        now,
		}
		return tx.Model(&models.SystemStatsModel{}).
			Where("id = ?", systemStatsRowID).
			Updates(updates).Error
	})
}

// Ensure GormSystemStatsRepository implements SystemStatsRepository
var _ placement.SystemStatsRepository = (*GormSystemStatsRepository)(nil)
