package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"masttrack/internal/domain/site"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// SiteRepository implements the site repository interface on gorm.
type SiteRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSiteRepository(database *gorm.DB, log logger.Interface) site.Repository {
	return &SiteRepository{db: database, logger: log}
}

func (r *SiteRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *SiteRepository) Create(ctx context.Context, s *site.Site) error {
	model := models.NewSiteModel(s)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create site", "name", s.Name, "error", err)
		return fmt.Errorf("failed to create site: %w", err)
	}
	s.ID = model.ID
	return nil
}

func (r *SiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	var model models.SiteModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get site by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *SiteRepository) GetByName(ctx context.Context, name string) (*site.Site, error) {
	var model models.SiteModel
	if err := r.conn(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get site by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return model.ToEntity(), nil
}

// List applies the free-text OR-across-fields rule: substring match on name
// and frequency, plus exact power equality when the query is numeric. Enum
// filters AND with the text dimension.
func (r *SiteRepository) List(ctx context.Context, filter site.ListFilter) ([]*site.Site, error) {
	query := r.conn(ctx).Model(&models.SiteModel{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		textMatch := r.db.Where("LOWER(name) LIKE ?", pattern).
			Or("LOWER(reg_m_freq) LIKE ?", pattern)
		if n, err := strconv.Atoi(q); err == nil {
			textMatch = textMatch.Or("power = ?", n)
		}
		query = query.Where(textMatch)
	}

	if filter.TransmitterType != "" {
		query = query.Where("transmitter_type = ?", string(filter.TransmitterType))
	}

	var siteModels []*models.SiteModel
	if err := query.Order("name ASC").Find(&siteModels).Error; err != nil {
		r.logger.Errorw("failed to list sites", "error", err)
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	sites := make([]*site.Site, 0, len(siteModels))
	for _, model := range siteModels {
		sites = append(sites, model.ToEntity())
	}
	return sites, nil
}

func (r *SiteRepository) UpdateStatus(ctx context.Context, id uint, status site.Status) error {
	result := r.conn(ctx).Model(&models.SiteModel{}).Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		r.logger.Errorw("failed to update site status", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update site status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SiteRepository) UpdateMeta(ctx context.Context, id uint, meta site.MetaUpdate) (*site.Site, error) {
	updates := map[string]interface{}{}
	if meta.TowerType != nil {
		updates["tower_type"] = string(*meta.TowerType)
	}
	if meta.SetTowerHeight {
		updates["tower_height"] = meta.TowerHeight
	}
	if meta.SetGPS {
		updates["gps"] = meta.GPS
	}

	if len(updates) > 0 {
		result := r.conn(ctx).Model(&models.SiteModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			r.logger.Errorw("failed to update site meta", "id", id, "error", result.Error)
			return nil, fmt.Errorf("failed to update site meta: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	return r.GetByID(ctx, id)
}

func (r *SiteRepository) UpdateMuxSerial(ctx context.Context, id uint, mux site.MuxKey, serial *string) (*site.Site, error) {
	var column string
	switch mux {
	case site.Mux1:
		column = "tx_mux1_serial"
	case site.Mux2:
		column = "tx_mux2_serial"
	case site.Mux3:
		column = "tx_mux3_serial"
	default:
		return nil, fmt.Errorf("unknown mux key %q", mux)
	}

	result := r.conn(ctx).Model(&models.SiteModel{}).Where("id = ?", id).
		Update(column, serial)
	if result.Error != nil {
		r.logger.Errorw("failed to update mux serial", "id", id, "mux", mux, "error", result.Error)
		return nil, fmt.Errorf("failed to update mux serial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// Upsert creates the site or refreshes its definition fields, preserving
// operator-entered tower height and GPS on existing rows.
func (r *SiteRepository) Upsert(ctx context.Context, s *site.Site) error {
	existing, err := r.GetByName(ctx, s.Name)
	if err != nil {
		return err
	}

	if existing == nil {
		return r.Create(ctx, s)
	}

	updates := map[string]interface{}{
		"reg_m_freq":       s.RegMFreq,
		"power":            s.Power,
		"transmitter_type": string(s.TransmitterType),
		"status":           string(s.Status),
		"tower_type":       string(s.TowerType),
	}
	if err := r.conn(ctx).Model(&models.SiteModel{}).Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		r.logger.Errorw("failed to upsert site", "name", s.Name, "error", err)
		return fmt.Errorf("failed to upsert site: %w", err)
	}

	s.ID = existing.ID
	s.TowerHeight = existing.TowerHeight
	s.GPS = existing.GPS
	return nil
}

func (r *SiteRepository) Delete(ctx context.Context, id uint) error {
	result := r.conn(ctx).Delete(&models.SiteModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete site", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete site: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
