package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStudentRepository implements StudentRepository using GORM
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository creates a new GormStudentRepository
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// Create creates a new student
func (r *GormStudentRepository) Create(ctx context.Context, student *placement.Student) error {
	model := models.StudentModelFromDomain(student)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing student
func (r *GormStudentRepository) Update(ctx context.Context, student *placement.Student) error {
	model := models.StudentModelFromDomain(student)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a student by ID
func (r *GormStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*placement.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns students matching the filter, sorted by name
func (r *GormStudentRepository) FindAll(ctx context.Context, filter placement.StudentFilter) ([]*placement.Student, error) {
	var studentModels []*models.StudentModel

	query := r.db.WithContext(ctx).Model(&models.StudentModel{})

	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where(
			"name ILIKE ? OR roll_number ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern,
		)
	}

	switch filter.Status {
	case string(placement.StudentStatusPlaced):
		query = query.Where("current_status = ?", placement.StudentStatusPlaced)
	case string(placement.StudentStatusNotPlaced):
		query = query.Where("current_status = ?", placement.StudentStatusNotPlaced)
	}

	query = query.Order("name ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&studentModels).Error; err != nil {
		return nil, err
	}

	students := make([]*placement.Student, len(studentModels))
	for i, model := range studentModels {
		students[i] = model.ToDomain()
	}
	return students, nil
}

// Count returns the total number of students
func (r *GormStudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StudentModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByRollNumber checks if a roll number is already registered
func (r *GormStudentRepository) ExistsByRollNumber(ctx context.Context, rollNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StudentModel{}).
		Where("LOWER(roll_number) = ?", strings.ToLower(rollNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail checks if an email is already registered
func (r *GormStudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StudentModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteCascade removes the student and all their placement records in a
// single transaction, decrementing the affected company and year counters.
func (r *GormStudentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (*placement.CascadeResult, error) {
	result := &placement.CascadeResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var studentModel models.StudentModel
		if err := tx.First(&studentModel, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		var placementModels []models.PlacementModel
		if err := tx.Where("student_id = ?", id).Find(&placementModels).Error; err != nil {
			return err
		}

		var applicationModels []models.ApplicationModel
		if err := tx.Where("student_id = ?", id).Find(&applicationModels).Error; err != nil {
			return err
		}

		companies := make(map[uuid.UUID]bool)
		placementsByYear := make(map[int]int)

		for _, p := range placementModels {
			companies[p.CompanyID] = true
			if err := tx.Model(&models.CompanyModel{}).
				Where("id = ?", p.CompanyID).
				UpdateColumn("total_placed", gorm.Expr("GREATEST(total_placed - 1, 0)")).Error; err != nil {
				return err
			}
			var companyModel models.CompanyModel
			if err := tx.Select("year").First(&companyModel, "id = ?", p.CompanyID).Error; err == nil {
				placementsByYear[companyModel.Year]++
			}
		}

		years := make(map[int]bool)
		for _, a := range applicationModels {
			companies[a.CompanyID] = true
			years[a.Year] = true
			if err := tx.Model(&models.CompanyModel{}).
				Where("id = ?", a.CompanyID).
				UpdateColumn("total_applied", gorm.Expr("GREATEST(total_applied - 1, 0)")).Error; err != nil {
				return err
			}
		}

		for year := range years {
			updates := map[string]interface{}{
				"total_students_participated": gorm.Expr("GREATEST(total_students_participated - 1, 0)"),
			}
			if n := placementsByYear[year]; n > 0 {
				updates["total_placed"] = gorm.Expr("GREATEST(total_placed - ?, 0)", n)
			}
			res := tx.Model(&models.YearModel{}).Where("year = ?", year).Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				result.YearsAffected++
			}
		}

		entriesDeleted := tx.Where("student_id = ?", id).Delete(&models.RoundEntryModel{})
		if entriesDeleted.Error != nil {
			return entriesDeleted.Error
		}
		result.RoundsDeleted = int(entriesDeleted.RowsAffected)

		placementsDeleted := tx.Where("student_id = ?", id).Delete(&models.PlacementModel{})
		if placementsDeleted.Error != nil {
			return placementsDeleted.Error
		}
		result.PlacementsDeleted = int(placementsDeleted.RowsAffected)

		if err := tx.Where("student_id = ?", id).Delete(&models.ApplicationModel{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.StudentModel{}, "id = ?", id).Error; err != nil {
			return err
		}

		result.CompaniesAffected = len(companies)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Ensure GormStudentRepository implements StudentRepository
var _ placement.StudentRepository = (*GormStudentRepository)(nil)
