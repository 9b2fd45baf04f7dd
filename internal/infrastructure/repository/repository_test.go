package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"masttrack/internal/domain/asset"
	"masttrack/internal/domain/site"
	"masttrack/internal/domain/store"
	"masttrack/internal/domain/user"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.SiteModel{},
		&models.CategoryModel{},
		&models.SubcategoryModel{},
		&models.AssetModel{},
		&models.StoreItemModel{},
		&models.UserProfileModel{},
		&models.AuditLogModel{},
	)
	require.NoError(t, err)
	return database
}

func testSite(name string, power int) *site.Site {
	return &site.Site{
		Name:            name,
		RegMFreq:        "R1 / 482 MHz",
		Power:           power,
		TransmitterType: site.TransmitterLiquid,
		Status:          site.StatusActive,
		TowerType:       site.TowerGBC,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestSiteRepository_Upsert(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSiteRepository(database, logger.NewLogger())
	ctx := context.Background()

	t.Run("creates when missing", func(t *testing.T) {
		s := testSite("Ajangote", 5000)
		err := repo.Upsert(ctx, s)
		require.NoError(t, err)
		assert.NotZero(t, s.ID)
	})

	t.Run("preserves operator metadata on refresh", func(t *testing.T) {
		s := testSite("Kissi", 600)
		require.NoError(t, repo.Upsert(ctx, s))

		_, err := repo.UpdateMeta(ctx, s.ID, site.MetaUpdate{
			TowerHeight:    intPtr(150),
			SetTowerHeight: true,
			GPS:            strPtr("5.1234, -1.2345"),
			SetGPS:         true,
		})
		require.NoError(t, err)

		again := testSite("Kissi", 1140)
		require.NoError(t, repo.Upsert(ctx, again))
		assert.Equal(t, s.ID, again.ID)

		found, err := repo.GetByName(ctx, "Kissi")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 1140, found.Power)
		require.NotNil(t, found.TowerHeight)
		assert.Equal(t, 150, *found.TowerHeight)
		require.NotNil(t, found.GPS)
		assert.Equal(t, "5.1234, -1.2345", *found.GPS)
	})
}

func TestSiteRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSiteRepository(database, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSite("Accra", 5000)))
	kumasi := testSite("Kumasi", 2300)
	kumasi.TransmitterType = site.TransmitterAir
	require.NoError(t, repo.Create(ctx, kumasi))
	require.NoError(t, repo.Create(ctx, testSite("Takoradi", 600)))

	t.Run("substring match on name is case-insensitive", func(t *testing.T) {
		sites, err := repo.List(ctx, site.ListFilter{Query: "kUmA"})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "Kumasi", sites[0].Name)
	})

	t.Run("numeric query also matches power exactly", func(t *testing.T) {
		sites, err := repo.List(ctx, site.ListFilter{Query: "5000"})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "Accra", sites[0].Name)
	})

	t.Run("transmitter filter ANDs with query", func(t *testing.T) {
		sites, err := repo.List(ctx, site.ListFilter{
			Query:           "a",
			TransmitterType: site.TransmitterAir,
		})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "Kumasi", sites[0].Name)
	})

	t.Run("empty filter returns all ordered by name", func(t *testing.T) {
		sites, err := repo.List(ctx, site.ListFilter{})
		require.NoError(t, err)
		require.Len(t, sites, 3)
		assert.Equal(t, "Accra", sites[0].Name)
		assert.Equal(t, "Takoradi", sites[2].Name)
	})
}

func TestSiteRepository_UpdateMuxSerial(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSiteRepository(database, logger.NewLogger())
	ctx := context.Background()

	s := testSite("Axim", 1140)
	require.NoError(t, repo.Create(ctx, s))

	updated, err := repo.UpdateMuxSerial(ctx, s.ID, site.Mux2, strPtr("56472805"))
	require.NoError(t, err)
	require.NotNil(t, updated.TxMux2Serial)
	assert.Equal(t, "56472805", *updated.TxMux2Serial)
	assert.Nil(t, updated.TxMux1Serial)

	cleared, err := repo.UpdateMuxSerial(ctx, s.ID, site.Mux2, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.TxMux2Serial)

	_, err = repo.UpdateMuxSerial(ctx, 9999, site.Mux1, strPtr("x"))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func seedTaxonomy(t *testing.T, database *gorm.DB) (catID uint, systemSubID uint, ampSubID uint) {
	t.Helper()
	ctx := context.Background()
	cats := NewCategoryRepository(database, logger.NewLogger())
	subs := NewSubcategoryRepository(database, logger.NewLogger())

	cat, err := cats.UpsertByName(ctx, "Transmitter")
	require.NoError(t, err)
	system, err := subs.UpsertByName(ctx, cat.ID, "Transmitter System")
	require.NoError(t, err)
	amp, err := subs.UpsertByName(ctx, cat.ID, "Amplifier")
	require.NoError(t, err)
	return cat.ID, system.ID, amp.ID
}

func TestAssetRepository_FindByNaturalKey(t *testing.T) {
	database := setupTestDB(t)
	sites := NewSiteRepository(database, logger.NewLogger())
	repo := NewAssetRepository(database, logger.NewLogger())
	ctx := context.Background()

	s := testSite("Bolgatanga", 2300)
	require.NoError(t, sites.Create(ctx, s))
	catID, systemSubID, _ := seedTaxonomy(t, database)

	withSub := &asset.Asset{
		SiteID:        s.ID,
		CategoryID:    catID,
		SubcategoryID: &systemSubID,
		AssetName:     "Transmitter System",
		Status:        asset.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, withSub))

	noSub := &asset.Asset{
		SiteID:     s.ID,
		CategoryID: catID,
		AssetName:  "Genset",
		Status:     asset.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, noSub))

	t.Run("matches on subcategory", func(t *testing.T) {
		found, err := repo.FindByNaturalKey(ctx, asset.NaturalKey{
			SiteID:        s.ID,
			CategoryID:    catID,
			SubcategoryID: &systemSubID,
			AssetName:     "Transmitter System",
		})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, withSub.ID, found.ID)
	})

	t.Run("nil subcategory matches only NULL rows", func(t *testing.T) {
		found, err := repo.FindByNaturalKey(ctx, asset.NaturalKey{
			SiteID:     s.ID,
			CategoryID: catID,
			AssetName:  "Genset",
		})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, noSub.ID, found.ID)

		missing, err := repo.FindByNaturalKey(ctx, asset.NaturalKey{
			SiteID:     s.ID,
			CategoryID: catID,
			AssetName:  "Transmitter System",
		})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestAssetRepository_DeleteTransmitterComponents(t *testing.T) {
	database := setupTestDB(t)
	sites := NewSiteRepository(database, logger.NewLogger())
	repo := NewAssetRepository(database, logger.NewLogger())
	ctx := context.Background()

	s := testSite("Tamale", 5000)
	require.NoError(t, sites.Create(ctx, s))
	catID, systemSubID, ampSubID := seedTaxonomy(t, database)

	system := &asset.Asset{
		SiteID: s.ID, CategoryID: catID, SubcategoryID: &systemSubID,
		AssetName: "Transmitter System", SerialNumber: strPtr("311618187-"),
		Status: asset.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, system))
	for _, name := range []string{"Amplifier 1", "Amplifier 2"} {
		require.NoError(t, repo.Create(ctx, &asset.Asset{
			SiteID: s.ID, CategoryID: catID, SubcategoryID: &ampSubID,
			AssetName: name, Status: asset.StatusActive,
		}))
	}

	err := repo.DeleteTransmitterComponents(ctx, s.ID, catID, systemSubID)
	require.NoError(t, err)

	remaining, err := repo.List(ctx, asset.ListFilter{SiteID: s.ID})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Transmitter System", remaining[0].AssetName)
	require.NotNil(t, remaining[0].SerialNumber)
	assert.Equal(t, "311618187-", *remaining[0].SerialNumber)
}

func TestAssetRepository_UpdateFields(t *testing.T) {
	database := setupTestDB(t)
	sites := NewSiteRepository(database, logger.NewLogger())
	repo := NewAssetRepository(database, logger.NewLogger())
	ctx := context.Background()

	s := testSite("Han", 600)
	require.NoError(t, sites.Create(ctx, s))
	catID, _, _ := seedTaxonomy(t, database)

	a := &asset.Asset{
		SiteID: s.ID, CategoryID: catID, AssetName: "Genset",
		SerialNumber: strPtr("SN-1"), Manufacturer: strPtr("FG Wilson"),
		Status: asset.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, a))

	t.Run("untouched fields survive", func(t *testing.T) {
		faulty := asset.StatusFaulty
		updated, err := repo.UpdateFields(ctx, a.ID, asset.FieldUpdate{
			Model:    strPtr("P110"),
			SetModel: true,
			Status:   &faulty,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.SerialNumber)
		assert.Equal(t, "SN-1", *updated.SerialNumber)
		require.NotNil(t, updated.Model)
		assert.Equal(t, "P110", *updated.Model)
		assert.Equal(t, asset.StatusFaulty, updated.Status)
	})

	t.Run("set flag with nil clears the column", func(t *testing.T) {
		updated, err := repo.UpdateFields(ctx, a.ID, asset.FieldUpdate{
			SerialNumber:    nil,
			SetSerialNumber: true,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.SerialNumber)
		require.NotNil(t, updated.Manufacturer)
		assert.Equal(t, "FG Wilson", *updated.Manufacturer)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		faulty := asset.StatusFaulty
		_, err := repo.UpdateFields(ctx, 9999, asset.FieldUpdate{Status: &faulty})
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestAssetRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	sites := NewSiteRepository(database, logger.NewLogger())
	repo := NewAssetRepository(database, logger.NewLogger())
	ctx := context.Background()

	s := testSite("Bole", 1140)
	require.NoError(t, sites.Create(ctx, s))
	catID, _, _ := seedTaxonomy(t, database)

	a := &asset.Asset{
		SiteID: s.ID, CategoryID: catID, AssetName: "Exciter", Status: asset.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, a))

	created, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	t.Run("preserves created_at when entity carries a zero timestamp", func(t *testing.T) {
		stale := &asset.Asset{
			ID: a.ID, SiteID: s.ID, CategoryID: catID,
			AssetName: "Exciter", SerialNumber: strPtr("EX-77"),
			Status: asset.StatusFaulty,
		}
		require.NoError(t, repo.Update(ctx, stale))

		reloaded, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.SerialNumber)
		assert.Equal(t, "EX-77", *reloaded.SerialNumber)
		assert.Equal(t, asset.StatusFaulty, reloaded.Status)
		assert.Equal(t, created.CreatedAt, reloaded.CreatedAt)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		ghost := &asset.Asset{ID: 9999, SiteID: s.ID, CategoryID: catID, AssetName: "Ghost", Status: asset.StatusActive}
		err := repo.Update(ctx, ghost)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestAssetRepository_Search(t *testing.T) {
	database := setupTestDB(t)
	sites := NewSiteRepository(database, logger.NewLogger())
	repo := NewAssetRepository(database, logger.NewLogger())
	ctx := context.Background()

	s := testSite("Akatsi", 2300)
	require.NoError(t, sites.Create(ctx, s))
	catID, systemSubID, _ := seedTaxonomy(t, database)

	require.NoError(t, repo.Create(ctx, &asset.Asset{
		SiteID: s.ID, CategoryID: catID, SubcategoryID: &systemSubID,
		AssetName: "Transmitter System", SerialNumber: strPtr("311615135"),
		Manufacturer: strPtr("Rohde & Schwarz"), Status: asset.StatusActive,
	}))
	require.NoError(t, repo.Create(ctx, &asset.Asset{
		SiteID: s.ID, CategoryID: catID, AssetName: "Genset",
		Status: asset.StatusFaulty,
	}))

	t.Run("serial substring", func(t *testing.T) {
		found, err := repo.List(ctx, asset.ListFilter{SiteID: s.ID, Query: "311615"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Transmitter System", found[0].AssetName)
	})

	t.Run("manufacturer substring, any case", func(t *testing.T) {
		found, err := repo.List(ctx, asset.ListFilter{SiteID: s.ID, Query: "rohde"})
		require.NoError(t, err)
		require.Len(t, found, 1)
	})

	t.Run("status filter", func(t *testing.T) {
		found, err := repo.List(ctx, asset.ListFilter{SiteID: s.ID, Status: asset.StatusFaulty})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Genset", found[0].AssetName)
	})
}

func TestStoreItemRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewStoreItemRepository(database, logger.NewLogger())
	ctx := context.Background()

	t.Run("upsert by item number is idempotent", func(t *testing.T) {
		first := &store.Item{ItemNo: 12, Description: "4 port DVB-T2 modulator", Quantity: 2, Status: store.StatusReceived}
		require.NoError(t, repo.UpsertByItemNo(ctx, first))

		again := &store.Item{ItemNo: 12, Description: "4 port DVB-T2 modulator", Quantity: 3, Status: store.StatusReceived}
		require.NoError(t, repo.UpsertByItemNo(ctx, again))
		assert.Equal(t, first.ID, again.ID)

		items, err := repo.List(ctx, store.ListFilter{})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("numeric query matches item number exactly", func(t *testing.T) {
		require.NoError(t, repo.UpsertByItemNo(ctx, &store.Item{
			ItemNo: 40, Description: "12V 100Ah battery", Quantity: 6, Status: store.StatusNotReceived,
		}))

		items, err := repo.List(ctx, store.ListFilter{Query: "40"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 40, items[0].ItemNo)

		items, err = repo.List(ctx, store.ListFilter{Query: "battery"})
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("status update round-trips", func(t *testing.T) {
		items, err := repo.List(ctx, store.ListFilter{Status: store.StatusNotReceived})
		require.NoError(t, err)
		require.Len(t, items, 1)

		updated, err := repo.UpdateStatus(ctx, items[0].ID, store.StatusReceived)
		require.NoError(t, err)
		assert.Equal(t, store.StatusReceived, updated.Status)
	})
}

func TestUserProfileRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserProfileRepository(database, logger.NewLogger())
	ctx := context.Background()

	t.Run("email is stored and queried lower-cased", func(t *testing.T) {
		p := &user.Profile{ID: "sub-1", Email: "Ops@Example.COM", Role: authorization.RoleViewer}
		require.NoError(t, repo.Create(ctx, p))

		found, err := repo.GetByEmail(ctx, "OPS@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "ops@example.com", found.Email)
	})

	t.Run("replace ID rewrites the primary key", func(t *testing.T) {
		moved, err := repo.ReplaceID(ctx, "sub-1", "sub-2", nil)
		require.NoError(t, err)
		assert.Equal(t, "sub-2", moved.ID)

		gone, err := repo.GetByID(ctx, "sub-1")
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("replace ID writes full name in the same statement", func(t *testing.T) {
		name := "Kofi Boateng"
		moved, err := repo.ReplaceID(ctx, "sub-2", "sub-3", &name)
		require.NoError(t, err)
		assert.Equal(t, "sub-3", moved.ID)
		require.NotNil(t, moved.FullName)
		assert.Equal(t, "Kofi Boateng", *moved.FullName)
	})

	t.Run("role update persists", func(t *testing.T) {
		updated, err := repo.UpdateRole(ctx, "sub-3", authorization.RoleEditor)
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleEditor, updated.Role)
	})
}

func TestTransactionRollback(t *testing.T) {
	database := setupTestDB(t)
	sites := NewSiteRepository(database, logger.NewLogger())
	assets := NewAssetRepository(database, logger.NewLogger())
	tm := db.NewTransactionManager(database)
	ctx := context.Background()

	s := testSite("Jamasi", 5000)
	require.NoError(t, sites.Create(ctx, s))
	catID, _, _ := seedTaxonomy(t, database)
	require.NoError(t, assets.Create(ctx, &asset.Asset{
		SiteID: s.ID, CategoryID: catID, AssetName: "Genset", Status: asset.StatusActive,
	}))

	boom := errors.New("boom")
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := assets.DeleteBySiteID(txCtx, s.ID); err != nil {
			return err
		}
		if err := sites.Delete(txCtx, s.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := assets.CountBySiteID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := sites.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
