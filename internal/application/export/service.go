// Package export renders the CSV downloads for sites, per-site assets and
// the store ledger.
package export

import (
	"context"

	"masttrack/internal/domain/asset"
	"masttrack/internal/domain/site"
	"masttrack/internal/domain/store"
	apperrors "masttrack/internal/shared/errors"
	"masttrack/internal/shared/logger"
	"masttrack/internal/shared/utils/csvutil"
)

// Document is one rendered download.
type Document struct {
	Filename string
	Content  string
}

// Service builds CSV documents from repository state.
type Service struct {
	sites         site.Repository
	assets        asset.Repository
	categories    asset.CategoryRepository
	subcategories asset.SubcategoryRepository
	items         store.Repository
	logger        logger.Interface
}

func NewService(
	sites site.Repository,
	assets asset.Repository,
	categories asset.CategoryRepository,
	subcategories asset.SubcategoryRepository,
	items store.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		sites:         sites,
		assets:        assets,
		categories:    categories,
		subcategories: subcategories,
		items:         items,
		logger:        log,
	}
}

var siteColumns = []csvutil.Column{
	{Key: "name", Label: "Site"},
	{Key: "regMFreq", Label: "Reg/Freq"},
	{Key: "power", Label: "Power (W)"},
	{Key: "transmitterType", Label: "Transmitter Type"},
	{Key: "status", Label: "Status"},
	{Key: "towerType", Label: "Tower Type"},
	{Key: "towerHeight", Label: "Tower Height (m)"},
	{Key: "gps", Label: "GPS"},
	{Key: "txMux1Serial", Label: "TX MUX 1 Serial"},
	{Key: "txMux2Serial", Label: "TX MUX 2 Serial"},
	{Key: "txMux3Serial", Label: "TX MUX 3 Serial"},
}

// Sites renders the full site list.
func (s *Service) Sites(ctx context.Context) (*Document, error) {
	rows, err := s.sites.List(ctx, site.ListFilter{})
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		records = append(records, map[string]any{
			"name":            row.Name,
			"regMFreq":        row.RegMFreq,
			"power":           row.Power,
			"transmitterType": string(row.TransmitterType),
			"status":          string(row.Status),
			"towerType":       string(row.TowerType),
			"towerHeight":     derefInt(row.TowerHeight),
			"gps":             derefString(row.GPS),
			"txMux1Serial":    derefString(row.TxMux1Serial),
			"txMux2Serial":    derefString(row.TxMux2Serial),
			"txMux3Serial":    derefString(row.TxMux3Serial),
		})
	}

	return &Document{
		Filename: "sites.csv",
		Content:  csvutil.Marshal(siteColumns, records),
	}, nil
}

var assetColumns = []csvutil.Column{
	{Key: "assetName", Label: "Asset"},
	{Key: "category", Label: "Category"},
	{Key: "subcategory", Label: "Subcategory"},
	{Key: "serialNumber", Label: "Serial Number"},
	{Key: "partNumber", Label: "Part Number"},
	{Key: "manufacturer", Label: "Manufacturer"},
	{Key: "model", Label: "Model"},
	{Key: "status", Label: "Status"},
}

// SiteAssets renders every asset at one site with resolved taxonomy labels.
func (s *Service) SiteAssets(ctx context.Context, siteID uint) (*Document, error) {
	owner, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewNotFoundError("site not found")
	}

	categoryNames, subcategoryNames, err := s.taxonomyLabels(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.assets.List(ctx, asset.ListFilter{SiteID: siteID})
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0, len(rows))
	for _, a := range asset.SortNaturally(rows) {
		sub := ""
		if a.SubcategoryID != nil {
			sub = subcategoryNames[*a.SubcategoryID]
		}
		records = append(records, map[string]any{
			"assetName":    a.AssetName,
			"category":     categoryNames[a.CategoryID],
			"subcategory":  sub,
			"serialNumber": derefString(a.SerialNumber),
			"partNumber":   derefString(a.PartNumber),
			"manufacturer": derefString(a.Manufacturer),
			"model":        derefString(a.Model),
			"status":       string(a.Status),
		})
	}

	return &Document{
		Filename: owner.Name + "-assets.csv",
		Content:  csvutil.Marshal(assetColumns, records),
	}, nil
}

var storeColumns = []csvutil.Column{
	{Key: "itemNo", Label: "Item No"},
	{Key: "description", Label: "Description"},
	{Key: "quantity", Label: "Quantity"},
	{Key: "status", Label: "Status"},
}

// Store renders the spare-parts ledger.
func (s *Service) Store(ctx context.Context) (*Document, error) {
	items, err := s.items.List(ctx, store.ListFilter{})
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		records = append(records, map[string]any{
			"itemNo":      item.ItemNo,
			"description": item.Description,
			"quantity":    item.Quantity,
			"status":      string(item.Status),
		})
	}

	return &Document{
		Filename: "store-items.csv",
		Content:  csvutil.Marshal(storeColumns, records),
	}, nil
}

func (s *Service) taxonomyLabels(ctx context.Context) (map[uint]string, map[uint]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	categoryNames := make(map[uint]string, len(categories))
	subcategoryNames := map[uint]string{}
	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
		subs, err := s.subcategories.ListByCategoryID(ctx, cat.ID)
		if err != nil {
			return nil, nil, err
		}
		for _, sub := range subs {
			subcategoryNames[sub.ID] = sub.Name
		}
	}
	return categoryNames, subcategoryNames, nil
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}
