package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/store"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingService struct {
	bookings store.BookingStore
}

func NewBookingService(bookings store.BookingStore) *BookingService {
	return &BookingService{bookings: bookings}
}

// Create places a booking. A booking with the same name, email,
// product, price and date already on file is returned as-is with
// created=false instead of inserting a duplicate.
func (s *BookingService) Create(booking *models.Booking) (*models.Booking, bool, error) {
	existing, err := s.bookings.FindMatching(
		booking.Name, booking.Email, booking.ProductName, booking.Price, booking.Date,
	)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to check existing booking: %w", err)
	}

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if err := s.bookings.Insert(booking); err != nil {
		return nil, false, err
	}
	return booking, true, nil
}

// ListByEmail returns the caller's orders, newest first.
func (s *BookingService) ListByEmail(email string) ([]models.Booking, error) {
	return s.bookings.ListByEmail(email)
}

// RecordPayment stores the payment and marks the booking paid with the
// gateway transaction id, returning the updated booking.
func (s *BookingService) RecordPayment(bookingID uuid.UUID, email, transactionID string, amount float64) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	payment := &models.Payment{
		ID:            uuid.New(),
		BookingID:     bookingID,
		Email:         email,
		Amount:        amount,
		TransactionID: transactionID,
	}
	if err := s.bookings.MarkPaid(bookingID, payment); err != nil {
		return nil, err
	}

	booking.Paid = true
	booking.TransactionID = transactionID
	return booking, nil
}

func (s *BookingService) Delete(id uuid.UUID) error {
	if err := s.bookings.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}
