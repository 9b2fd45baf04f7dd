// Package store implements the application service for the spare-parts
// ledger.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"masttrack/internal/domain/store"
	apperrors "masttrack/internal/shared/errors"
	"masttrack/internal/shared/logger"
)

// Service exposes store ledger use cases to the HTTP layer.
type Service struct {
	items  store.Repository
	logger logger.Interface
}

func NewService(items store.Repository, log logger.Interface) *Service {
	return &Service{items: items, logger: log}
}

// CreateInput carries a new ledger line.
type CreateInput struct {
	ItemNo      int    `json:"itemNo" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Status      string `json:"status" validate:"required,oneof=RECEIVED NOT_RECEIVED"`
}

func (s *Service) List(ctx context.Context, query string, status store.Status) ([]*store.Item, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid store item status", string(status))
	}
	return s.items.List(ctx, store.ListFilter{Query: query, Status: status})
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*store.Item, error) {
	item := &store.Item{
		ItemNo:      input.ItemNo,
		Description: input.Description,
		Quantity:    input.Quantity,
		Status:      store.Status(input.Status),
	}
	if err := s.items.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflictError("item number already exists")
		}
		return nil, err
	}

	s.logger.Infow("store item created", "id", item.ID, "item_no", item.ItemNo)
	return item, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uint, status store.Status) (*store.Item, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid store item status", string(status))
	}

	updated, err := s.items.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("store item not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("store item not found")
		}
		return err
	}
	s.logger.Infow("store item deleted", "id", id)
	return nil
}
