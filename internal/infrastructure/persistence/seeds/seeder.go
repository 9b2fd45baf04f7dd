package seeds

import (
	"context"
	"fmt"

	"masttrack/internal/domain/asset"
	"masttrack/internal/domain/site"
	"masttrack/internal/domain/store"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// Seeder materializes the bootstrap data. Running it repeatedly is safe:
// sites, taxonomy and ledger lines are upserted, operator edits on existing
// assets survive, and only the transmitter mux components are regenerated.
type Seeder struct {
	sites         site.Repository
	assets        asset.Repository
	categories    asset.CategoryRepository
	subcategories asset.SubcategoryRepository
	storeItems    store.Repository
	tm            *db.TransactionManager
	logger        logger.Interface
}

func NewSeeder(
	sites site.Repository,
	assets asset.Repository,
	categories asset.CategoryRepository,
	subcategories asset.SubcategoryRepository,
	storeItems store.Repository,
	tm *db.TransactionManager,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		sites:         sites,
		assets:        assets,
		categories:    categories,
		subcategories: subcategories,
		storeItems:    storeItems,
		tm:            tm,
		logger:        log,
	}
}

// taxonomyIDs indexes the upserted taxonomy by name for the per-site pass.
type taxonomyIDs struct {
	category map[string]uint
	txSub    map[string]uint
	rackSub  map[string]uint
}

// Run seeds everything: taxonomy, sites with their device structure, and the
// store ledger.
func (s *Seeder) Run(ctx context.Context) error {
	ids, err := s.SeedTaxonomy(ctx)
	if err != nil {
		return err
	}
	if err := s.SeedSites(ctx, ids); err != nil {
		return err
	}
	return s.SeedStore(ctx)
}

// SeedTaxonomy upserts categories and subcategories by name.
func (s *Seeder) SeedTaxonomy(ctx context.Context) (*taxonomyIDs, error) {
	ids := &taxonomyIDs{
		category: make(map[string]uint, len(DeviceCategories)),
		txSub:    make(map[string]uint, len(TransmitterSubcategories)),
		rackSub:  make(map[string]uint, len(RackSubcategories)),
	}

	for _, name := range DeviceCategories {
		cat, err := s.categories.UpsertByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("seed category %q: %w", name, err)
		}
		ids.category[name] = cat.ID
	}

	for _, name := range TransmitterSubcategories {
		sub, err := s.subcategories.UpsertByName(ctx, ids.category[CategoryTransmitter], name)
		if err != nil {
			return nil, fmt.Errorf("seed transmitter subcategory %q: %w", name, err)
		}
		ids.txSub[name] = sub.ID
	}

	for _, name := range RackSubcategories {
		sub, err := s.subcategories.UpsertByName(ctx, ids.category[CategoryEquipmentRack], name)
		if err != nil {
			return nil, fmt.Errorf("seed rack subcategory %q: %w", name, err)
		}
		ids.rackSub[name] = sub.ID
	}

	return ids, nil
}

// SeedSites upserts every site definition and rebuilds its device structure.
// Each site runs in its own transaction so a mid-run failure leaves earlier
// sites complete and the failed site untouched.
func (s *Seeder) SeedSites(ctx context.Context, ids *taxonomyIDs) error {
	for _, def := range SiteDefinitions {
		def := def
		err := s.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			row := &site.Site{
				Name:            def.Name,
				RegMFreq:        def.RegMFreq,
				Power:           def.Power,
				TransmitterType: def.TransmitterType,
				Status:          site.StatusActive,
				TowerType:       TowerTypeFor(def.Name),
			}
			if err := s.sites.Upsert(txCtx, row); err != nil {
				return err
			}
			return s.seedSiteAssets(txCtx, row, ids)
		})
		if err != nil {
			s.logger.Errorw("site seed failed", "site", def.Name, "error", err)
			return fmt.Errorf("seed site %q: %w", def.Name, err)
		}
	}
	s.logger.Infow("sites seeded", "count", len(SiteDefinitions))
	return nil
}

func (s *Seeder) seedSiteAssets(ctx context.Context, row *site.Site, ids *taxonomyIDs) error {
	standalone := []struct {
		category   string
		deviceType string
	}{
		{CategoryGenset, DeviceTypeGenset},
		{CategoryAVR, DeviceTypeAVR},
		{CategoryFuelTank, DeviceTypeFuelTank},
		{CategoryISOTransformer, DeviceTypeISOTransformer},
		{CategorySolar, DeviceTypeSolar},
	}
	for _, dev := range standalone {
		err := s.ensureAsset(ctx, &asset.Asset{
			SiteID:     row.ID,
			CategoryID: ids.category[dev.category],
			AssetName:  dev.category,
			Status:     asset.StatusActive,
			Specs:      asset.Specs{}.WithDeviceType(dev.deviceType),
		})
		if err != nil {
			return err
		}
	}

	if err := s.seedRack(ctx, row, ids); err != nil {
		return err
	}
	return s.seedTransmitter(ctx, row, ids)
}

func (s *Seeder) seedRack(ctx context.Context, row *site.Site, ids *taxonomyIDs) error {
	rackCat := ids.category[CategoryEquipmentRack]

	err := s.ensureAsset(ctx, &asset.Asset{
		SiteID:     row.ID,
		CategoryID: rackCat,
		AssetName:  CategoryEquipmentRack,
		Status:     asset.StatusActive,
		Specs:      asset.Specs{}.WithDeviceType(DeviceTypeEquipmentRack),
	})
	if err != nil {
		return err
	}

	harmonic := &asset.Asset{
		SiteID:        row.ID,
		CategoryID:    rackCat,
		SubcategoryID: uintPtr(ids.rackSub[SubHarmonicPVR]),
		AssetName:     SubHarmonicPVR,
		Status:        asset.StatusActive,
		Specs:         asset.Specs{}.WithRackComponent(RackComponentHarmonicPVR),
	}
	if serial, ok := harmonicSerials[row.Name]; ok {
		harmonic.SerialNumber = &serial
	}
	if part, ok := harmonicPartNumbers[row.Name]; ok {
		harmonic.PartNumber = &part
	}
	if err := s.ensureAsset(ctx, harmonic); err != nil {
		return err
	}

	if HasEnensys(row.Name) {
		err := s.ensureAsset(ctx, &asset.Asset{
			SiteID:        row.ID,
			CategoryID:    rackCat,
			SubcategoryID: uintPtr(ids.rackSub[SubEnensys]),
			AssetName:     SubEnensys,
			Status:        asset.StatusActive,
			Specs:         asset.Specs{}.WithRackComponent(RackComponentEnensys),
		})
		if err != nil {
			return err
		}
	}

	err = s.ensureAsset(ctx, &asset.Asset{
		SiteID:        row.ID,
		CategoryID:    rackCat,
		SubcategoryID: uintPtr(ids.rackSub[SubModem]),
		AssetName:     SubModem,
		Status:        asset.StatusActive,
		Specs:         asset.Specs{}.WithRackComponent(RackComponentModem),
	})
	if err != nil {
		return err
	}

	return s.ensureAsset(ctx, &asset.Asset{
		SiteID:        row.ID,
		CategoryID:    rackCat,
		SubcategoryID: uintPtr(ids.rackSub[SubMikrotikRouterboard]),
		AssetName:     SubMikrotikRouterboard,
		Status:        asset.StatusActive,
		Specs:         asset.Specs{}.WithRackComponent(RackComponentMikrotik),
	})
}

// seedTransmitter ensures the system card and regenerates the mux component
// chains. Components are wiped first so counts track the power class; the
// system card and its operator edits are never touched by the wipe.
func (s *Seeder) seedTransmitter(ctx context.Context, row *site.Site, ids *taxonomyIDs) error {
	txCat := ids.category[CategoryTransmitter]
	systemSubID := ids.txSub[SubTransmitterSystem]

	system := &asset.Asset{
		SiteID:        row.ID,
		CategoryID:    txCat,
		SubcategoryID: &systemSubID,
		AssetName:     SubTransmitterSystem,
		Status:        asset.StatusActive,
		Specs:         asset.Specs{}.WithDeviceType(DeviceTypeTransmitter),
	}
	if row.Name == "Adjangote" {
		serial := "311618187-"
		part := "099-0580-251"
		system.SerialNumber = &serial
		system.PartNumber = &part
		system.Specs = system.Specs.WithSerialOverride(serial).WithPartNumberOverride(part)
	}
	if err := s.ensureAsset(ctx, system); err != nil {
		return err
	}

	if err := s.assets.DeleteTransmitterComponents(ctx, row.ID, txCat, systemSubID); err != nil {
		return err
	}

	amps := AmpCountsFor(row.Power)

	mux12 := []struct {
		sub   string
		count int
	}{
		{SubExciter, 1},
		{SubAmplifier, amps.Mux12},
		{SubPump, 1},
		{SubChannelCombiner, 1},
		{SubHeatExchanger, 1},
		{SubHumidifier, 1},
		{SubSystemControl, 1},
	}
	for _, group := range mux12 {
		if err := s.createComponents(ctx, row.ID, txCat, ids.txSub[group.sub], group.sub, asset.MuxTag12, group.count); err != nil {
			return err
		}
	}

	mux3 := []struct {
		sub   string
		count int
	}{
		{SubExciterSystemControl, 1},
		{SubAmplifier, amps.Mux3},
		{SubPump, 1},
		{SubChannelCombiner, 1},
		{SubHeatExchanger, 1},
		{SubHumidifier, 1},
	}
	for _, group := range mux3 {
		if err := s.createComponents(ctx, row.ID, txCat, ids.txSub[group.sub], group.sub, asset.MuxTag3, group.count); err != nil {
			return err
		}
	}

	return nil
}

// createComponents inserts count members of one mux group. A lone member
// keeps the bare subcategory name; multiples get a 1-based suffix.
func (s *Seeder) createComponents(ctx context.Context, siteID, categoryID, subcategoryID uint, subName string, tag asset.MuxTag, count int) error {
	for i := 1; i <= count; i++ {
		name := subName
		if count > 1 {
			name = fmt.Sprintf("%s %d", subName, i)
		}
		err := s.assets.Create(ctx, &asset.Asset{
			SiteID:        siteID,
			CategoryID:    categoryID,
			SubcategoryID: &subcategoryID,
			AssetName:     name,
			Status:        asset.StatusActive,
			Specs:         asset.Specs{}.WithMux(tag),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ensureAsset upserts by natural key. On an existing row the operator's data
// wins: filled serial, part number and status stay, nulls are backfilled from
// the seed, and specs keys already present are kept.
func (s *Seeder) ensureAsset(ctx context.Context, desired *asset.Asset) error {
	existing, err := s.assets.FindByNaturalKey(ctx, asset.NaturalKey{
		SiteID:        desired.SiteID,
		CategoryID:    desired.CategoryID,
		SubcategoryID: desired.SubcategoryID,
		AssetName:     desired.AssetName,
	})
	if err != nil {
		return err
	}

	if existing == nil {
		return s.assets.Create(ctx, desired)
	}

	if existing.SerialNumber == nil {
		existing.SerialNumber = desired.SerialNumber
	}
	if existing.PartNumber == nil {
		existing.PartNumber = desired.PartNumber
	}
	if existing.Status == "" {
		existing.Status = desired.Status
	}
	existing.Specs = desired.Specs.MergeUnder(existing.Specs)

	return s.assets.Update(ctx, existing)
}

// SeedStore upserts the ledger lines by item number.
func (s *Seeder) SeedStore(ctx context.Context) error {
	for i := range StoreItems {
		item := StoreItems[i]
		if err := s.storeItems.UpsertByItemNo(ctx, &item); err != nil {
			return fmt.Errorf("seed store item %d: %w", item.ItemNo, err)
		}
	}
	s.logger.Infow("store ledger seeded", "count", len(StoreItems))
	return nil
}

func uintPtr(v uint) *uint { return &v }
