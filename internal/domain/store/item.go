// Package store holds the spare-parts ledger aggregate, independent of any
// site.
package store

import (
	"context"
	"time"
)

// Status is the receipt state of a ledger line.
type Status string

const (
	StatusReceived    Status = "RECEIVED"
	StatusNotReceived Status = "NOT_RECEIVED"
)

func (s Status) IsValid() bool {
	return s == StatusReceived || s == StatusNotReceived
}

// Item is one inventory ledger line. ItemNo is unique.
type Item struct {
	ID          uint      `json:"id"`
	ItemNo      int       `json:"itemNo"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListFilter narrows the ledger listing. Query matches description by
// case-insensitive substring and, when numeric, item_no exactly.
type ListFilter struct {
	Query  string
	Status Status
}

// Repository is the persistence port for store items.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id uint) (*Item, error)
	List(ctx context.Context, filter ListFilter) ([]*Item, error)
	UpdateStatus(ctx context.Context, id uint, status Status) (*Item, error)
	UpsertByItemNo(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uint) error
}
