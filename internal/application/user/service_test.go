package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masttrack/internal/domain/user"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/config"
	apperrors "masttrack/internal/shared/errors"
	"masttrack/internal/shared/logger"
)

type mockProfileRepo struct {
	createFunc     func(ctx context.Context, p *user.Profile) error
	getByIDFunc    func(ctx context.Context, id string) (*user.Profile, error)
	getByEmailFunc func(ctx context.Context, email string) (*user.Profile, error)
	listFunc       func(ctx context.Context) ([]*user.Profile, error)
	replaceIDFunc  func(ctx context.Context, oldID, newID string, fullName *string) (*user.Profile, error)
	updateRoleFunc func(ctx context.Context, id string, role authorization.Role) (*user.Profile, error)
}

func (m *mockProfileRepo) Create(ctx context.Context, p *user.Profile) error {
	return m.createFunc(ctx, p)
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (*user.Profile, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockProfileRepo) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockProfileRepo) List(ctx context.Context) ([]*user.Profile, error) {
	return m.listFunc(ctx)
}

func (m *mockProfileRepo) ReplaceID(ctx context.Context, oldID, newID string, fullName *string) (*user.Profile, error) {
	return m.replaceIDFunc(ctx, oldID, newID, fullName)
}

func (m *mockProfileRepo) UpdateRole(ctx context.Context, id string, role authorization.Role) (*user.Profile, error) {
	return m.updateRoleFunc(ctx, id, role)
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		Allowlist:   []string{"viewer@example.com", "Boss@Example.com"},
		AdminEmails: []string{"boss@example.com"},
	}
}

func TestService_ResolveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects email outside allow-list before any lookup", func(t *testing.T) {
		repo := &mockProfileRepo{
			getByEmailFunc: func(ctx context.Context, email string) (*user.Profile, error) {
				t.Fatal("profile lookup must not run for unlisted emails")
				return nil, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		_, err := svc.ResolveProfile(ctx, Identity{Subject: "sub-x", Email: "stranger@example.com"})
		require.Error(t, err)
		assert.True(t, apperrors.IsUnauthorized(err))
	})

	t.Run("allow-list comparison is case-insensitive", func(t *testing.T) {
		var created *user.Profile
		repo := &mockProfileRepo{
			getByEmailFunc: func(ctx context.Context, email string) (*user.Profile, error) {
				assert.Equal(t, "viewer@example.com", email)
				return nil, nil
			},
			createFunc: func(ctx context.Context, p *user.Profile) error {
				created = p
				return nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		profile, err := svc.ResolveProfile(ctx, Identity{Subject: "sub-1", Email: "VIEWER@example.com"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, authorization.RoleViewer, profile.Role)
		assert.Equal(t, "viewer@example.com", profile.Email)
	})

	t.Run("first login of admin override email gets ADMIN", func(t *testing.T) {
		repo := &mockProfileRepo{
			getByEmailFunc: func(ctx context.Context, email string) (*user.Profile, error) {
				return nil, nil
			},
			createFunc: func(ctx context.Context, p *user.Profile) error {
				return nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		profile, err := svc.ResolveProfile(ctx, Identity{Subject: "sub-2", Email: "boss@example.com"})
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAdmin, profile.Role)
	})

	t.Run("existing profile with stale id is rewritten", func(t *testing.T) {
		rewritten := false
		repo := &mockProfileRepo{
			getByEmailFunc: func(ctx context.Context, email string) (*user.Profile, error) {
				return &user.Profile{ID: "old-id", Email: email, Role: authorization.RoleEditor}, nil
			},
			replaceIDFunc: func(ctx context.Context, oldID, newID string, fullName *string) (*user.Profile, error) {
				rewritten = true
				assert.Equal(t, "old-id", oldID)
				assert.Equal(t, "fresh-id", newID)
				return &user.Profile{ID: newID, Email: "viewer@example.com", Role: authorization.RoleEditor}, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		profile, err := svc.ResolveProfile(ctx, Identity{Subject: "fresh-id", Email: "viewer@example.com"})
		require.NoError(t, err)
		assert.True(t, rewritten)
		assert.Equal(t, "fresh-id", profile.ID)
		assert.Equal(t, authorization.RoleEditor, profile.Role)
	})

	t.Run("rewrite backfills a missing full name", func(t *testing.T) {
		repo := &mockProfileRepo{
			getByEmailFunc: func(ctx context.Context, email string) (*user.Profile, error) {
				return &user.Profile{ID: "old-id", Email: email, Role: authorization.RoleViewer}, nil
			},
			replaceIDFunc: func(ctx context.Context, oldID, newID string, fullName *string) (*user.Profile, error) {
				require.NotNil(t, fullName)
				assert.Equal(t, "Ama Mensah", *fullName)
				return &user.Profile{ID: newID, Email: "viewer@example.com", FullName: fullName, Role: authorization.RoleViewer}, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		profile, err := svc.ResolveProfile(ctx, Identity{
			Subject: "fresh-id", Email: "viewer@example.com", FullName: "Ama Mensah",
		})
		require.NoError(t, err)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, "Ama Mensah", *profile.FullName)
	})

	t.Run("rewrite keeps a stored full name", func(t *testing.T) {
		stored := "Stored Name"
		repo := &mockProfileRepo{
			getByEmailFunc: func(ctx context.Context, email string) (*user.Profile, error) {
				return &user.Profile{ID: "old-id", Email: email, FullName: &stored, Role: authorization.RoleViewer}, nil
			},
			replaceIDFunc: func(ctx context.Context, oldID, newID string, fullName *string) (*user.Profile, error) {
				assert.Nil(t, fullName)
				return &user.Profile{ID: newID, Email: "viewer@example.com", FullName: &stored, Role: authorization.RoleViewer}, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		profile, err := svc.ResolveProfile(ctx, Identity{
			Subject: "fresh-id", Email: "viewer@example.com", FullName: "Provider Name",
		})
		require.NoError(t, err)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, stored, *profile.FullName)
	})

	t.Run("matching id passes through untouched", func(t *testing.T) {
		repo := &mockProfileRepo{
			getByEmailFunc: func(ctx context.Context, email string) (*user.Profile, error) {
				return &user.Profile{ID: "sub-3", Email: email, Role: authorization.RoleViewer}, nil
			},
			replaceIDFunc: func(ctx context.Context, oldID, newID string, fullName *string) (*user.Profile, error) {
				t.Fatal("no rewrite expected when ids match")
				return nil, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		profile, err := svc.ResolveProfile(ctx, Identity{Subject: "sub-3", Email: "viewer@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "sub-3", profile.ID)
	})
}

func TestService_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("self-demotion is forbidden", func(t *testing.T) {
		repo := &mockProfileRepo{
			updateRoleFunc: func(ctx context.Context, id string, role authorization.Role) (*user.Profile, error) {
				t.Fatal("update must not run for self-demotion")
				return nil, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		_, err := svc.UpdateRole(ctx, "admin-id", "admin-id", authorization.RoleViewer)
		require.Error(t, err)
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("self-assignment of ADMIN is a no-op change and allowed", func(t *testing.T) {
		repo := &mockProfileRepo{
			updateRoleFunc: func(ctx context.Context, id string, role authorization.Role) (*user.Profile, error) {
				return &user.Profile{ID: id, Role: role}, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		updated, err := svc.UpdateRole(ctx, "admin-id", "admin-id", authorization.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAdmin, updated.Role)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		svc := NewService(&mockProfileRepo{}, testAuthConfig(), logger.NewLogger())

		_, err := svc.UpdateRole(ctx, "admin-id", "other-id", authorization.Role("SUPERUSER"))
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("demoting another user succeeds", func(t *testing.T) {
		repo := &mockProfileRepo{
			updateRoleFunc: func(ctx context.Context, id string, role authorization.Role) (*user.Profile, error) {
				return &user.Profile{ID: id, Role: role}, nil
			},
		}
		svc := NewService(repo, testAuthConfig(), logger.NewLogger())

		updated, err := svc.UpdateRole(ctx, "admin-id", "other-id", authorization.RoleViewer)
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleViewer, updated.Role)
	})
}
