// Package user holds the authenticated-user profile aggregate.
package user

import (
	"context"
	"time"

	"masttrack/internal/shared/authorization"
)

// Profile is one row per allow-listed identity. ID equals the identity
// provider's subject id; Email is stored lower-cased.
type Profile struct {
	ID        string             `json:"id"`
	Email     string             `json:"email"`
	FullName  *string            `json:"fullName"`
	Role      authorization.Role `json:"role"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Repository is the persistence port for user profiles.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	// ReplaceID rewrites the primary key to the identity provider's subject
	// id. Nothing in the schema holds a foreign key to profile ids, so the
	// rewrite is a single UPDATE. A non-nil fullName is written in the same
	// statement (name backfill from the identity provider).
	ReplaceID(ctx context.Context, oldID, newID string, fullName *string) (*Profile, error)
	UpdateRole(ctx context.Context, id string, role authorization.Role) (*Profile, error)
}
