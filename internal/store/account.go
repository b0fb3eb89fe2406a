// Package store holds the persistence boundary for accounts. The
// authorization layer only ever talks to AccountStore, so tests can
// swap in an in-memory implementation.
package store

import (
	"errors"
	"fmt"

	"github.com/rumanislam/plex-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no account exists for an email.
var ErrNotFound = errors.New("account not found")

// AccountStore is the persistent email -> account mapping. All calls
// are single-record operations; the backing store guarantees
// per-record atomicity and nothing more.
type AccountStore interface {
	FindByEmail(email string) (*models.Account, error)
	// Upsert inserts the account or updates it in place. For an
	// existing row only the supplied (non-empty) profile fields are
	// written; the role column is never touched.
	Upsert(account *models.Account) error
	UpdateRole(email string, role models.Role) error
	Delete(email string) error
	List() ([]models.Account, error)
}

type gormAccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) AccountStore {
	return &gormAccountStore{db: db}
}

func (s *gormAccountStore) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return &account, nil
}

func (s *gormAccountStore) Upsert(account *models.Account) error {
	// Only columns the caller actually supplied are written on
	// conflict: a bare identity request must leave an existing
	// account's profile data alone.
	cols := []string{"updated_at"}
	if account.Name != "" {
		cols = append(cols, "name")
	}
	if len(account.Profile) > 0 {
		cols = append(cols, "profile")
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(account).Error
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

func (s *gormAccountStore) UpdateRole(email string, role models.Role) error {
	result := s.db.Model(&models.Account{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormAccountStore) Delete(email string) error {
	result := s.db.Where("email = ?", email).Delete(&models.Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormAccountStore) List() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("created_at").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
