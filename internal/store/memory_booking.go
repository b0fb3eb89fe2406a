package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/models"
)

// MemoryBookingStore is an in-memory BookingStore used in tests.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]models.Booking
	payments []models.Payment
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{bookings: make(map[uuid.UUID]models.Booking)}
}

func (s *MemoryBookingStore) FindMatching(name, email, productName string, price float64, date string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.Name == name && b.Email == email && b.ProductName == productName && b.Price == price && b.Date == date {
			booking := b
			return &booking, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryBookingStore) Insert(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *MemoryBookingStore) FindByID(id uuid.UUID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (s *MemoryBookingStore) ListByEmail(email string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.Email == email {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (s *MemoryBookingStore) MarkPaid(bookingID uuid.UUID, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.bookings[bookingID]
	if !ok {
		return ErrNotFound
	}
	s.payments = append(s.payments, *payment)
	booking.Paid = true
	booking.TransactionID = payment.TransactionID
	booking.UpdatedAt = time.Now()
	s.bookings[bookingID] = booking
	return nil
}

func (s *MemoryBookingStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

// Len reports the number of stored bookings.
func (s *MemoryBookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// Payments returns the recorded payments in insertion order.
func (s *MemoryBookingStore) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payments := make([]models.Payment, len(s.payments))
	copy(payments, s.payments)
	return payments
}
