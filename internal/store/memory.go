package store

import (
	"sort"
	"sync"
	"time"

	"github.com/rumanislam/plex-backend/internal/models"
)

// MemoryAccountStore is an in-memory AccountStore used in tests and
// local development without Postgres.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]models.Account)}
}

func (s *MemoryAccountStore) FindByEmail(email string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (s *MemoryAccountStore) Upsert(account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if existing, ok := s.accounts[account.Email]; ok {
		if account.Name != "" {
			existing.Name = account.Name
		}
		if len(account.Profile) > 0 {
			existing.Profile = account.Profile
		}
		existing.UpdatedAt = now
		s.accounts[account.Email] = existing
		return nil
	}
	stored := *account
	if stored.Role == "" {
		stored.Role = models.RoleUser
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.accounts[stored.Email] = stored
	return nil
}

func (s *MemoryAccountStore) UpdateRole(email string, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[email]
	if !ok {
		return ErrNotFound
	}
	account.Role = role
	account.UpdatedAt = time.Now()
	s.accounts[email] = account
	return nil
}

func (s *MemoryAccountStore) Delete(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[email]; !ok {
		return ErrNotFound
	}
	delete(s.accounts, email)
	return nil
}

func (s *MemoryAccountStore) List() ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// Len reports the number of stored accounts.
func (s *MemoryAccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
