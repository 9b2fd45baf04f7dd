// Package user implements profile resolution and role management. The
// allow-list gate lives here: an email outside the list never reaches the
// profile table.
package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"masttrack/internal/domain/user"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/config"
	apperrors "masttrack/internal/shared/errors"
	"masttrack/internal/shared/logger"
)

// Identity is the provider-verified identity handed over by the OAuth
// callback.
type Identity struct {
	Subject  string
	Email    string
	FullName string
}

// Service resolves identities into profiles and manages roles.
type Service struct {
	profiles    user.Repository
	allowlist   map[string]bool
	adminEmails map[string]bool
	logger      logger.Interface
}

func NewService(profiles user.Repository, cfg *config.AuthConfig, log logger.Interface) *Service {
	return &Service{
		profiles:    profiles,
		allowlist:   lowerSet(cfg.Allowlist),
		adminEmails: lowerSet(cfg.AdminEmails),
		logger:      log,
	}
}

func lowerSet(emails []string) map[string]bool {
	set := make(map[string]bool, len(emails))
	for _, e := range emails {
		set[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return set
}

// IsAllowed reports whether the email may authenticate at all.
func (s *Service) IsAllowed(email string) bool {
	return s.allowlist[strings.ToLower(email)]
}

// ResolveProfile maps a verified identity onto a profile row. The allow-list
// is checked before any profile read. An existing profile whose stored id
// differs from the IdP subject gets its id rewritten; a first-time email gets
// a VIEWER profile, or ADMIN when listed in the admin override set.
func (s *Service) ResolveProfile(ctx context.Context, identity Identity) (*user.Profile, error) {
	email := strings.ToLower(identity.Email)

	if !s.allowlist[email] {
		s.logger.Warnw("login rejected, email not allow-listed", "email", email)
		return nil, apperrors.NewUnauthorizedError("email not authorized")
	}

	existing, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.ID != identity.Subject {
			// Backfill the name from the provider only when none is stored.
			var fullName *string
			if existing.FullName == nil && identity.FullName != "" {
				fullName = &identity.FullName
			}
			s.logger.Infow("reconciling profile id with identity provider",
				"email", email, "old_id", existing.ID)
			return s.profiles.ReplaceID(ctx, existing.ID, identity.Subject, fullName)
		}
		return existing, nil
	}

	role := authorization.RoleViewer
	if s.adminEmails[email] {
		role = authorization.RoleAdmin
	}

	profile := &user.Profile{
		ID:    identity.Subject,
		Email: email,
		Role:  role,
	}
	if identity.FullName != "" {
		profile.FullName = &identity.FullName
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Infow("profile created on first login", "email", email, "role", role)
	return profile, nil
}

// GetProfile loads a profile by id for the per-request role check.
func (s *Service) GetProfile(ctx context.Context, id string) (*user.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewUnauthorizedError("profile not found")
	}
	return profile, nil
}

func (s *Service) List(ctx context.Context) ([]*user.Profile, error) {
	return s.profiles.List(ctx)
}

// UpdateRole changes a profile's role. An ADMIN demoting their own account
// is rejected so the system cannot lose its last administrator by accident.
func (s *Service) UpdateRole(ctx context.Context, actorID, targetID string, role authorization.Role) (*user.Profile, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("invalid role", string(role))
	}

	if actorID == targetID && role != authorization.RoleAdmin {
		return nil, apperrors.NewForbiddenError("admins cannot demote themselves")
	}

	updated, err := s.profiles.UpdateRole(ctx, targetID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}

	s.logger.Infow("role updated", "target", targetID, "role", role, "actor", actorID)
	return updated, nil
}
