package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"masttrack/internal/domain/user"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// UserProfileRepository implements the profile persistence port on gorm.
type UserProfileRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserProfileRepository(database *gorm.DB, log logger.Interface) user.Repository {
	return &UserProfileRepository{db: database, logger: log}
}

func (r *UserProfileRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *UserProfileRepository) Create(ctx context.Context, p *user.Profile) error {
	model := models.NewUserProfileModel(p)
	model.Email = strings.ToLower(model.Email)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user profile", "email", p.Email, "error", err)
		return fmt.Errorf("failed to create user profile: %w", err)
	}
	return nil
}

func (r *UserProfileRepository) GetByID(ctx context.Context, id string) (*user.Profile, error) {
	var model models.UserProfileModel
	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user profile by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *UserProfileRepository) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	var model models.UserProfileModel
	if err := r.conn(ctx).Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user profile by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *UserProfileRepository) List(ctx context.Context) ([]*user.Profile, error) {
	var profileModels []*models.UserProfileModel
	if err := r.conn(ctx).Order("email ASC").Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to list user profiles", "error", err)
		return nil, fmt.Errorf("failed to list user profiles: %w", err)
	}

	profiles := make([]*user.Profile, 0, len(profileModels))
	for _, model := range profileModels {
		profiles = append(profiles, model.ToEntity())
	}
	return profiles, nil
}

// ReplaceID rewrites the primary key in place. No table references profile
// ids, so a single UPDATE is sufficient.
func (r *UserProfileRepository) ReplaceID(ctx context.Context, oldID, newID string, fullName *string) (*user.Profile, error) {
	updates := map[string]interface{}{"id": newID}
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	result := r.conn(ctx).Model(&models.UserProfileModel{}).
		Where("id = ?", oldID).Updates(updates)
	if result.Error != nil {
		r.logger.Errorw("failed to replace profile ID",
			"old_id", oldID, "new_id", newID, "error", result.Error)
		return nil, fmt.Errorf("failed to replace profile ID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, newID)
}

func (r *UserProfileRepository) UpdateRole(ctx context.Context, id string, role authorization.Role) (*user.Profile, error) {
	result := r.conn(ctx).Model(&models.UserProfileModel{}).
		Where("id = ?", id).Update("role", string(role))
	if result.Error != nil {
		r.logger.Errorw("failed to update profile role", "id", id, "error", result.Error)
		return nil, fmt.Errorf("failed to update profile role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
