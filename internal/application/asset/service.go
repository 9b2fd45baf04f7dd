// Package asset implements the application service for equipment: per-site
// listings, the grouped transmitter and rack views, creation and inline
// edits.
package asset

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"masttrack/internal/domain/asset"
	"masttrack/internal/domain/site"
	apperrors "masttrack/internal/shared/errors"
	"masttrack/internal/shared/logger"
)

// Service exposes asset use cases to the HTTP layer.
type Service struct {
	assets        asset.Repository
	categories    asset.CategoryRepository
	subcategories asset.SubcategoryRepository
	sites         site.Repository
	logger        logger.Interface
}

func NewService(
	assets asset.Repository,
	categories asset.CategoryRepository,
	subcategories asset.SubcategoryRepository,
	sites site.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		assets:        assets,
		categories:    categories,
		subcategories: subcategories,
		sites:         sites,
		logger:        log,
	}
}

// CreateInput carries a new asset row.
type CreateInput struct {
	SiteID        uint    `json:"siteId" validate:"required"`
	CategoryID    uint    `json:"categoryId" validate:"required"`
	SubcategoryID *uint   `json:"subcategoryId"`
	AssetName     string  `json:"assetName" validate:"required,max=120"`
	SerialNumber  *string `json:"serialNumber"`
	PartNumber    *string `json:"partNumber"`
	Manufacturer  *string `json:"manufacturer"`
	Model         *string `json:"model"`
}

// TransmitterView is the grouped mux presentation of a site's transmitter.
type TransmitterView struct {
	System *asset.Asset           `json:"system"`
	Mux12  []asset.ComponentGroup `json:"mux12"`
	Mux3   []asset.ComponentGroup `json:"mux3"`
}

func (s *Service) Get(ctx context.Context, id uint) (*asset.Asset, error) {
	found, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError("asset not found")
	}
	return found, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*asset.Asset, error) {
	owner, err := s.sites.GetByID(ctx, input.SiteID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewNotFoundError("site not found")
	}

	row := &asset.Asset{
		SiteID:        input.SiteID,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		AssetName:     input.AssetName,
		SerialNumber:  input.SerialNumber,
		PartNumber:    input.PartNumber,
		Manufacturer:  input.Manufacturer,
		Model:         input.Model,
		Status:        asset.StatusActive,
		Specs:         asset.Specs{},
	}
	if err := s.assets.Create(ctx, row); err != nil {
		return nil, err
	}

	s.logger.Infow("asset created", "id", row.ID, "site_id", row.SiteID, "name", row.AssetName)
	return row, nil
}

func (s *Service) ListSiteAssets(ctx context.Context, siteID uint, query string, status asset.Status) ([]*asset.Asset, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid asset status", string(status))
	}
	return s.assets.List(ctx, asset.ListFilter{
		SiteID: siteID,
		Query:  query,
		Status: status,
	})
}

// UpdateFields applies an inline edit. Status changes are validated; text
// fields honor the clear/keep distinction from the update flags.
func (s *Service) UpdateFields(ctx context.Context, id uint, update asset.FieldUpdate) (*asset.Asset, error) {
	if update.Status != nil && !update.Status.IsValid() {
		return nil, apperrors.NewValidationError("invalid asset status", string(*update.Status))
	}

	updated, err := s.assets.UpdateFields(ctx, id, update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("asset not found")
		}
		return nil, err
	}
	return updated, nil
}

// UpdateSerial is the single-field edit used by the serial inline form.
func (s *Service) UpdateSerial(ctx context.Context, id uint, serial *string) (*asset.Asset, error) {
	return s.UpdateFields(ctx, id, asset.FieldUpdate{
		SerialNumber:    serial,
		SetSerialNumber: true,
	})
}

// Transmitter builds the grouped mux view for a site: the system card plus
// the two chains partitioned by the specs mux tag.
func (s *Service) Transmitter(ctx context.Context, siteID uint) (*TransmitterView, error) {
	cat, subNames, err := s.categoryWithSubNames(ctx, "Transmitter")
	if err != nil {
		return nil, err
	}

	rows, err := s.assets.List(ctx, asset.ListFilter{SiteID: siteID, CategoryID: cat.ID})
	if err != nil {
		return nil, err
	}

	view := &TransmitterView{}
	for _, a := range rows {
		if a.SubcategoryID != nil && subNames[*a.SubcategoryID] == "Transmitter System" {
			view.System = a
			break
		}
	}

	grouped := asset.GroupByMux(rows, subNames)
	view.Mux12 = grouped[asset.MuxTag12]
	view.Mux3 = grouped[asset.MuxTag3]
	return view, nil
}

// Rack lists a site's equipment-rack assets, naturally sorted.
func (s *Service) Rack(ctx context.Context, siteID uint) ([]*asset.Asset, error) {
	cat, _, err := s.categoryWithSubNames(ctx, "Equipment Rack")
	if err != nil {
		return nil, err
	}

	rows, err := s.assets.List(ctx, asset.ListFilter{SiteID: siteID, CategoryID: cat.ID})
	if err != nil {
		return nil, err
	}
	return asset.SortNaturally(rows), nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*asset.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) categoryWithSubNames(ctx context.Context, categoryName string) (*asset.Category, map[uint]string, error) {
	cat, err := s.categories.GetByName(ctx, categoryName)
	if err != nil {
		return nil, nil, err
	}
	if cat == nil {
		return nil, nil, apperrors.NewNotFoundError("category not found", categoryName)
	}

	subs, err := s.subcategories.ListByCategoryID(ctx, cat.ID)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[uint]string, len(subs))
	for _, sub := range subs {
		names[sub.ID] = sub.Name
	}
	return cat, names, nil
}
