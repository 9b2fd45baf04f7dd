// Package site implements the application service for transmission sites:
// listing, inline edits, the audited status toggle and the cascading delete.
package site

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"masttrack/internal/domain/asset"
	"masttrack/internal/domain/audit"
	"masttrack/internal/domain/site"
	"masttrack/internal/shared/db"
	apperrors "masttrack/internal/shared/errors"
	"masttrack/internal/shared/logger"
)

// Service exposes site use cases to the HTTP layer.
type Service struct {
	sites  site.Repository
	assets asset.Repository
	audits audit.Repository
	tm     *db.TransactionManager
	logger logger.Interface
}

func NewService(
	sites site.Repository,
	assets asset.Repository,
	audits audit.Repository,
	tm *db.TransactionManager,
	log logger.Interface,
) *Service {
	return &Service{
		sites:  sites,
		assets: assets,
		audits: audits,
		tm:     tm,
		logger: log,
	}
}

// CreateInput carries a new site definition.
type CreateInput struct {
	Name            string `json:"name" validate:"required,max=100"`
	RegMFreq        string `json:"regMFreq" validate:"required,max=50"`
	Power           int    `json:"power" validate:"gte=0"`
	TransmitterType string `json:"transmitterType" validate:"required,oneof=AIR LIQUID"`
	TowerType       string `json:"towerType" validate:"required,oneof=GBC KNET"`
}

func (s *Service) List(ctx context.Context, filter site.ListFilter) ([]*site.Site, error) {
	return s.sites.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uint) (*site.Site, error) {
	found, err := s.sites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError("site not found")
	}
	return found, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*site.Site, error) {
	existing, err := s.sites.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("site name already exists", input.Name)
	}

	row := &site.Site{
		Name:            input.Name,
		RegMFreq:        input.RegMFreq,
		Power:           input.Power,
		TransmitterType: site.TransmitterType(input.TransmitterType),
		Status:          site.StatusActive,
		TowerType:       site.TowerType(input.TowerType),
	}
	if err := s.sites.Create(ctx, row); err != nil {
		return nil, err
	}

	s.logger.Infow("site created", "id", row.ID, "name", row.Name)
	return row, nil
}

// UpdateStatus toggles the operational state and records the change in the
// audit log with before/after snapshots and the acting user.
func (s *Service) UpdateStatus(ctx context.Context, id uint, status site.Status, actorEmail string) (*site.Site, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid site status", string(status))
	}

	before, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var after *site.Site
	err = s.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.sites.UpdateStatus(txCtx, id, status); err != nil {
			return err
		}
		entry := &audit.Entry{
			ActorEmail: actorEmail,
			Action:     "site.status_update",
			EntityType: "site",
			EntityID:   fmt.Sprintf("%d", id),
			Before:     map[string]any{"status": string(before.Status)},
			After:      map[string]any{"status": string(status)},
		}
		return s.audits.Append(txCtx, entry)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("site not found")
		}
		return nil, err
	}

	after, err = s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("site status updated",
		"id", id, "from", before.Status, "to", status, "actor", actorEmail)
	return after, nil
}

func (s *Service) UpdateMeta(ctx context.Context, id uint, meta site.MetaUpdate) (*site.Site, error) {
	if meta.TowerType != nil && !meta.TowerType.IsValid() {
		return nil, apperrors.NewValidationError("invalid tower type", string(*meta.TowerType))
	}

	updated, err := s.sites.UpdateMeta(ctx, id, meta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("site not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) UpdateMuxSerial(ctx context.Context, id uint, mux site.MuxKey, serial *string) (*site.Site, error) {
	if !mux.IsValid() {
		return nil, apperrors.NewValidationError("invalid mux key", string(mux))
	}

	updated, err := s.sites.UpdateMuxSerial(ctx, id, mux, serial)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("site not found")
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the site and every asset under it in one transaction.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	err := s.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.assets.DeleteBySiteID(txCtx, id); err != nil {
			return err
		}
		return s.sites.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("site not found")
		}
		return err
	}

	s.logger.Infow("site deleted with assets", "id", id)
	return nil
}
