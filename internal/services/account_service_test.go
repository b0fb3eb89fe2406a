package services

import (
	"testing"

	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const superAdmin = "rumanislam0429@gmail.com"

func newAccountService(t *testing.T, emails ...string) (*AccountService, *store.MemoryAccountStore) {
	t.Helper()
	accounts := store.NewMemoryAccountStore()
	for _, email := range emails {
		require.NoError(t, accounts.Upsert(&models.Account{Email: email, Role: models.RoleUser}))
	}
	return NewAccountService(accounts, superAdmin), accounts
}

func TestPromoteThenDemote_RoundTrip(t *testing.T) {
	svc, accounts := newAccountService(t, "b@x.com")

	require.NoError(t, svc.Promote("b@x.com"))
	isAdmin, err := svc.IsAdmin("b@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	require.NoError(t, svc.Demote("b@x.com"))
	isAdmin, err = svc.IsAdmin("b@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	account, err := accounts.FindByEmail("b@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, account.Role)
}

func TestDemote_SuperAdminProtected(t *testing.T) {
	svc, accounts := newAccountService(t)
	require.NoError(t, accounts.Upsert(&models.Account{Email: superAdmin, Role: models.RoleAdmin}))

	err := svc.Demote(superAdmin)
	assert.ErrorIs(t, err, ErrProtectedAccount)

	// The role must be unchanged: the guard runs before any store call.
	account, findErr := accounts.FindByEmail(superAdmin)
	require.NoError(t, findErr)
	assert.Equal(t, models.RoleAdmin, account.Role)
}

func TestDelete_SuperAdminProtected(t *testing.T) {
	svc, accounts := newAccountService(t)
	require.NoError(t, accounts.Upsert(&models.Account{Email: superAdmin, Role: models.RoleAdmin}))

	err := svc.Delete(superAdmin)
	assert.ErrorIs(t, err, ErrProtectedAccount)

	_, findErr := accounts.FindByEmail(superAdmin)
	assert.NoError(t, findErr)
}

func TestDelete_RegularAccount(t *testing.T) {
	svc, accounts := newAccountService(t, "c@x.com")

	require.NoError(t, svc.Delete("c@x.com"))
	_, err := accounts.FindByEmail("c@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPromote_UnknownAccount(t *testing.T) {
	svc, _ := newAccountService(t)
	assert.ErrorIs(t, svc.Promote("ghost@x.com"), ErrAccountNotFound)
}

func TestIsAdmin_UnknownAccountIsNotAdmin(t *testing.T) {
	svc, _ := newAccountService(t)
	isAdmin, err := svc.IsAdmin("ghost@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
