package asset

import "context"

// ListFilter narrows the per-site asset listing. Query matches name, serial,
// manufacturer and model by case-insensitive substring. Status of "" means
// no filter; CategoryID of 0 means all categories.
type ListFilter struct {
	SiteID     uint
	CategoryID uint
	Query      string
	Status     Status
}

// NaturalKey is the tuple the seeder treats as an asset's identity within a
// site. The schema does not enforce it as a unique constraint.
type NaturalKey struct {
	SiteID        uint
	CategoryID    uint
	SubcategoryID *uint
	AssetName     string
}

// Repository is the persistence port for assets.
type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id uint) (*Asset, error)
	FindByNaturalKey(ctx context.Context, key NaturalKey) (*Asset, error)
	List(ctx context.Context, filter ListFilter) ([]*Asset, error)
	Update(ctx context.Context, a *Asset) error
	UpdateFields(ctx context.Context, id uint, update FieldUpdate) (*Asset, error)
	// DeleteTransmitterComponents removes every asset at the site under the
	// transmitter category except rows in keepSubcategoryID (the system card).
	DeleteTransmitterComponents(ctx context.Context, siteID, categoryID uint, keepSubcategoryID uint) error
	DeleteBySiteID(ctx context.Context, siteID uint) error
	CountBySiteID(ctx context.Context, siteID uint) (int64, error)
}

// CategoryRepository is the persistence port for the static taxonomy.
type CategoryRepository interface {
	UpsertByName(ctx context.Context, name string) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

// SubcategoryRepository is the persistence port for subcategories.
type SubcategoryRepository interface {
	UpsertByName(ctx context.Context, categoryID uint, name string) (*Subcategory, error)
	ListByCategoryID(ctx context.Context, categoryID uint) ([]*Subcategory, error)
}
