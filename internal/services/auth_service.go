package services

import (
	"errors"
	"fmt"

	"github.com/rumanislam/plex-backend/internal/auth"
	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/store"
	"gorm.io/datatypes"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrAccountNotFound  = errors.New("account not found")
	ErrProtectedAccount = errors.New("this account cannot be demoted or deleted")
)

// AuthService owns token issuance and the lazy account-creation side
// effect that goes with it.
type AuthService struct {
	accounts store.AccountStore
	tokens   *auth.TokenService
}

func NewAuthService(accounts store.AccountStore, tokens *auth.TokenService) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens}
}

// IssueToken upserts the account for email and returns a fresh signed
// token. A previously unseen email gets a minimal record with the
// default user role; an existing record keeps its role untouched.
func (s *AuthService) IssueToken(email, name string, profile []byte) (string, *models.Account, error) {
	if email == "" {
		return "", nil, ErrEmailRequired
	}

	account := &models.Account{
		Email: email,
		Role:  models.RoleUser,
		Name:  name,
	}
	if len(profile) > 0 {
		account.Profile = datatypes.JSON(profile)
	}
	if err := s.accounts.Upsert(account); err != nil {
		return "", nil, fmt.Errorf("failed to save account: %w", err)
	}

	// Re-read so the response carries the stored role, not the
	// default we just proposed.
	stored, err := s.accounts.FindByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load account: %w", err)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, stored, nil
}
