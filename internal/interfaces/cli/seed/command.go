package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"masttrack/internal/infrastructure/config"
	"masttrack/internal/infrastructure/database"
	"masttrack/internal/infrastructure/migration"
	"masttrack/internal/infrastructure/persistence/seeds"
	"masttrack/internal/infrastructure/repository"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

var (
	env          string
	autoMigrate  bool
	timeout      time.Duration
	sitesOnly    bool
	storeOnly    bool
	taxonomyOnly bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the transmission-site inventory",
		Long:  `Upsert the equipment taxonomy, the national site inventory with per-site equipment, and the spare-parts ledger. Safe to rerun; operator edits survive.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run schema migration before seeding")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "Abort seeding after this duration")
	cmd.Flags().BoolVar(&taxonomyOnly, "taxonomy", false, "Seed only the equipment taxonomy")
	cmd.Flags().BoolVar(&sitesOnly, "sites", false, "Seed only the site inventory (implies taxonomy)")
	cmd.Flags().BoolVar(&storeOnly, "store", false, "Seed only the spare-parts ledger")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger().Named("seed")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}

	conn := database.Get()
	seeder := seeds.NewSeeder(
		repository.NewSiteRepository(conn, log.Named("site-repo")),
		repository.NewAssetRepository(conn, log.Named("asset-repo")),
		repository.NewCategoryRepository(conn, log.Named("category-repo")),
		repository.NewSubcategoryRepository(conn, log.Named("subcategory-repo")),
		repository.NewStoreItemRepository(conn, log.Named("store-repo")),
		db.NewTransactionManager(conn),
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	if err := runStages(ctx, seeder); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// runStages honors the stage flags; with none set, everything runs.
func runStages(ctx context.Context, seeder *seeds.Seeder) error {
	all := !taxonomyOnly && !sitesOnly && !storeOnly
	if all {
		return seeder.Run(ctx)
	}

	if taxonomyOnly || sitesOnly {
		ids, err := seeder.SeedTaxonomy(ctx)
		if err != nil {
			return err
		}
		if sitesOnly {
			if err := seeder.SeedSites(ctx, ids); err != nil {
				return err
			}
		}
	}
	if storeOnly {
		return seeder.SeedStore(ctx)
	}
	return nil
}
