package services

import (
	"testing"
	"time"

	"github.com/rumanislam/plex-backend/internal/auth"
	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*AuthService, *store.MemoryAccountStore) {
	accounts := store.NewMemoryAccountStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(accounts, tokens), accounts
}

func TestIssueToken_CreatesAccountLazily(t *testing.T) {
	svc, accounts := newAuthService()

	token, account, err := svc.IssueToken("a@x.com", "", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, models.RoleUser, account.EffectiveRole())
	assert.Equal(t, 1, accounts.Len())
}

func TestIssueToken_ExistingAccountUntouched(t *testing.T) {
	svc, accounts := newAuthService()

	_, _, err := svc.IssueToken("a@x.com", "Ruman", nil)
	require.NoError(t, err)
	require.NoError(t, accounts.UpdateRole("a@x.com", models.RoleAdmin))

	// A second identity request must not add a record or reset the role.
	_, account, err := svc.IssueToken("a@x.com", "Ruman", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, accounts.Len())
	assert.Equal(t, models.RoleAdmin, account.Role)
}

func TestIssueToken_BodilessReissueKeepsProfile(t *testing.T) {
	svc, accounts := newAuthService()

	_, _, err := svc.IssueToken("a@x.com", "Ruman", []byte(`{"city":"Dhaka"}`))
	require.NoError(t, err)

	// A token request with no profile data must leave the stored
	// account untouched.
	_, account, err := svc.IssueToken("a@x.com", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Ruman", account.Name)
	assert.JSONEq(t, `{"city":"Dhaka"}`, string(account.Profile))

	stored, err := accounts.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ruman", stored.Name)
	assert.JSONEq(t, `{"city":"Dhaka"}`, string(stored.Profile))
}

func TestIssueToken_EmptyEmail(t *testing.T) {
	svc, accounts := newAuthService()

	_, _, err := svc.IssueToken("", "", nil)
	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Equal(t, 0, accounts.Len())
}

func TestIssueToken_TokenVerifiesBackToEmail(t *testing.T) {
	accounts := store.NewMemoryAccountStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	svc := NewAuthService(accounts, tokens)

	token, _, err := svc.IssueToken("b@x.com", "", nil)
	require.NoError(t, err)

	email, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", email)
}
