package services

import (
	"errors"
	"fmt"

	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/store"
)

// AccountService covers role transitions and account removal. The
// super-admin invariant lives here: the configured address can never
// be demoted or deleted, no matter who asks. The check runs after the
// caller has already cleared the admin gate and strictly before any
// store mutation.
type AccountService struct {
	accounts        store.AccountStore
	superAdminEmail string
}

func NewAccountService(accounts store.AccountStore, superAdminEmail string) *AccountService {
	return &AccountService{accounts: accounts, superAdminEmail: superAdminEmail}
}

// Get returns the account for email or ErrAccountNotFound.
func (s *AccountService) Get(email string) (*models.Account, error) {
	account, err := s.accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// List returns every account.
func (s *AccountService) List() ([]models.Account, error) {
	return s.accounts.List()
}

// IsAdmin reports whether the account for email holds the admin role.
// An unknown email is not an error here; it is simply not an admin.
func (s *AccountService) IsAdmin(email string) (bool, error) {
	account, err := s.accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return account.IsAdmin(), nil
}

// Promote sets the target account's role to admin.
func (s *AccountService) Promote(email string) error {
	if err := s.accounts.UpdateRole(email, models.RoleAdmin); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to promote account: %w", err)
	}
	return nil
}

// Demote sets the target account's role back to user. Demoting the
// super admin fails before any store call is made.
func (s *AccountService) Demote(email string) error {
	if email == s.superAdminEmail {
		return ErrProtectedAccount
	}
	if err := s.accounts.UpdateRole(email, models.RoleUser); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to demote account: %w", err)
	}
	return nil
}

// Delete removes the account. The super admin cannot be deleted.
func (s *AccountService) Delete(email string) error {
	if email == s.superAdminEmail {
		return ErrProtectedAccount
	}
	if err := s.accounts.Delete(email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
