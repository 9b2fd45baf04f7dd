package site

import "context"

// ListFilter narrows the site listing. Query matches name and regMFreq by
// case-insensitive substring; when it parses as a number it also matches
// power exactly. TransmitterType of "" means no filter.
type ListFilter struct {
	Query           string
	TransmitterType TransmitterType
}

// Repository is the persistence port for sites.
type Repository interface {
	Create(ctx context.Context, s *Site) error
	GetByID(ctx context.Context, id uint) (*Site, error)
	GetByName(ctx context.Context, name string) (*Site, error)
	List(ctx context.Context, filter ListFilter) ([]*Site, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error
	UpdateMeta(ctx context.Context, id uint, meta MetaUpdate) (*Site, error)
	UpdateMuxSerial(ctx context.Context, id uint, mux MuxKey, serial *string) (*Site, error)
	Upsert(ctx context.Context, s *Site) error
	Delete(ctx context.Context, id uint) error
}
