package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"entnt-rental-backend/internal/config"
	"entnt-rental-backend/internal/domain"
	"entnt-rental-backend/internal/storage"
)

func newSessionStore(t *testing.T) (*SessionStore, storage.KeyValueStore) {
	t.Helper()
	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewSessionStore(context.Background(), kv, config.DemoCredentials()), kv
}

func TestSessionStore_Login(t *testing.T) {
	sessions, _ := newSessionStore(t)
	ctx := context.Background()

	cases := []struct {
		email    string
		password string
		role     domain.Role
	}{
		{"admin@entnt.in", "admin123", domain.RoleAdmin},
		{"staff@entnt.in", "staff123", domain.RoleStaff},
		{"customer@entnt.in", "cust123", domain.RoleCustomer},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.True(t, sessions.Login(ctx, tc.email, tc.password))
			user := sessions.Current()
			require.NotNil(t, user)
			assert.Equal(t, tc.email, user.Email)
			assert.Equal(t, tc.role, user.Role)
		})
	}
}

func TestSessionStore_LoginFailureLeavesSessionUntouched(t *testing.T) {
	sessions, _ := newSessionStore(t)
	ctx := context.Background()

	require.True(t, sessions.Login(ctx, "admin@entnt.in", "admin123"))

	assert.False(t, sessions.Login(ctx, "admin@entnt.in", "wrong"))
	assert.False(t, sessions.Login(ctx, "nobody@entnt.in", "admin123"))

	user := sessions.Current()
	require.NotNil(t, user)
	assert.Equal(t, "admin@entnt.in", user.Email)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestSessionStore_Logout(t *testing.T) {
	sessions, kv := newSessionStore(t)
	ctx := context.Background()

	require.True(t, sessions.Login(ctx, "staff@entnt.in", "staff123"))
	sessions.Logout(ctx)

	assert.Nil(t, sessions.Current())
	assert.False(t, sessions.IsAuthenticated())

	_, err := kv.Get(ctx, storage.KeySession)
	assert.Equal(t, storage.ErrNotFound, err)
}

func TestSessionStore_RehydratesAcrossRestarts(t *testing.T) {
	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	first := NewSessionStore(ctx, kv, config.DemoCredentials())
	require.True(t, first.Login(ctx, "customer@entnt.in", "cust123"))

	second := NewSessionStore(ctx, kv, config.DemoCredentials())
	user := second.Current()
	require.NotNil(t, user)
	assert.Equal(t, "customer@entnt.in", user.Email)
	assert.True(t, second.IsCustomer())
}

func TestSessionStore_CorruptPersistedSession(t *testing.T) {
	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, storage.KeySession, []byte("{not json")))

	// Must come up logged out without raising.
	sessions := NewSessionStore(ctx, kv, config.DemoCredentials())
	assert.Nil(t, sessions.Current())
	assert.False(t, sessions.IsAuthenticated())
}

func TestSessionStore_BcryptCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	creds := []config.Credential{{ID: "9", Email: "ops@entnt.in", Password: string(hash), Role: "Admin"}}
	sessions := NewSessionStore(context.Background(), kv, creds)

	assert.True(t, sessions.Login(context.Background(), "ops@entnt.in", "s3cret"))
	assert.False(t, sessions.Login(context.Background(), "ops@entnt.in", "wrong"))
}

func TestSessionStore_PermissionFlags(t *testing.T) {
	sessions, _ := newSessionStore(t)
	ctx := context.Background()

	t.Run("logged out", func(t *testing.T) {
		assert.False(t, sessions.IsAdminOrStaff())
		assert.False(t, sessions.IsCustomer())
		assert.False(t, sessions.CanManageEquipment())
	})

	t.Run("staff", func(t *testing.T) {
		require.True(t, sessions.Login(ctx, "staff@entnt.in", "staff123"))
		assert.True(t, sessions.IsAdminOrStaff())
		assert.False(t, sessions.IsCustomer())
		assert.True(t, sessions.CanManageEquipment())
		assert.True(t, sessions.CanManageRentals())
		assert.True(t, sessions.CanManageMaintenance())
	})

	t.Run("customer", func(t *testing.T) {
		require.True(t, sessions.Login(ctx, "customer@entnt.in", "cust123"))
		assert.False(t, sessions.IsAdminOrStaff())
		assert.True(t, sessions.IsCustomer())
		assert.False(t, sessions.CanManageRentals())
	})
}
