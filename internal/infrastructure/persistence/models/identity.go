package models

import (
	"time"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/identity"
)

// UserModel maps the User aggregate to the users table.
type UserModel struct {
	AggregateModel
	Username          string              `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email             string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash      string              `gorm:"type:varchar(255);not null"`
	Role              identity.Role       `gorm:"type:varchar(20);not null;default:'student';index"`
	Status            identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt       *time.Time          `gorm:"index"`
	LastLoginIP       string              `gorm:"type:varchar(45)"`
	FailedAttempts    int                 `gorm:"not null;default:0"`
	LockedUntil       *time.Time
	PasswordChangedAt *time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// ToDomain rebuilds the domain aggregate from a row.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Role:              m.Role,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
		LastLoginIP:       m.LastLoginIP,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
		PasswordChangedAt: m.PasswordChangedAt,
	}
}

// FromDomain copies the aggregate state into the model.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.Status = u.Status
	m.LastLoginAt = u.LastLoginAt
	m.LastLoginIP = u.LastLoginIP
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
	m.PasswordChangedAt = u.PasswordChangedAt
}

// UserModelFromDomain builds a fresh model from an aggregate.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
