package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/identity"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/persistence/models"
)

// GormUserRepository persists identity.User aggregates. Username and email
// lookups are case-insensitive to match the login semantics.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// translateNotFound converts gorm's sentinel into the domain error so the
// service layer never imports gorm.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	return r.db.WithContext(ctx).Create(models.UserModelFromDomain(user)).Error
}

func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	res := r.db.WithContext(ctx).Save(models.UserModelFromDomain(user))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var m models.UserModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return m.ToDomain(), nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var m models.UserModel
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&m).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return m.ToDomain(), nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	// Email is optional on accounts; an empty one never matches.
	if email == "" {
		return nil, shared.ErrNotFound
	}
	var m models.UserModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&m).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return m.ToDomain(), nil
}

// FindAll returns one page of users plus the unpaged match count.
func (r *GormUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	q := r.applyFilter(r.db.WithContext(ctx).Model(&models.UserModel{}), filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := ValidateSortField(filter.SortBy, UserSortFields, "created_at")
	var rows []*models.UserModel
	err := q.Order(sortBy + " " + ValidateSortOrder(filter.SortOrder)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]*identity.User, len(rows))
	for i, m := range rows {
		users[i] = m.ToDomain()
	}
	return users, total, nil
}

func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&n).Error
	return n > 0, err
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&n).Error
	return n > 0, err
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&n).Error
	return n, err
}

func (r *GormUserRepository) applyFilter(q *gorm.DB, filter identity.UserFilter) *gorm.DB {
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		q = q.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filter.Role != nil {
		q = q.Where("role = ?", *filter.Role)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	return q
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
