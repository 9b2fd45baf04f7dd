// Package audit holds the append-only change log. Only the site status
// update path writes entries; this is not a general audit of all mutations.
package audit

import (
	"context"
	"time"
)

// Entry is one recorded change with before/after snapshots.
type Entry struct {
	ID         uint           `json:"id"`
	ActorEmail string         `json:"actorEmail"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Before     map[string]any `json:"before"`
	After      map[string]any `json:"after"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Repository is the persistence port for audit entries.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*Entry, error)
}
