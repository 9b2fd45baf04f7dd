package models

import (
	"time"

	"masttrack/internal/domain/user"
	"masttrack/internal/shared/authorization"
)

// UserProfileModel is the persistence model for authenticated identities.
// ID is the identity provider's subject id, not an auto-increment.
type UserProfileModel struct {
	ID        string  `gorm:"primarykey;size:64"`
	Email     string  `gorm:"uniqueIndex;not null;size:255"`
	FullName  *string `gorm:"size:255"`
	Role      string  `gorm:"not null;default:VIEWER;size:10"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}

func (m *UserProfileModel) ToEntity() *user.Profile {
	return &user.Profile{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Role:      authorization.ParseRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewUserProfileModel(p *user.Profile) *UserProfileModel {
	return &UserProfileModel{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		Role:     string(p.Role),
	}
}
