package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/models"
	"gorm.io/gorm"
)

// BookingStore is the persistence boundary for bookings and their
// payments.
type BookingStore interface {
	// FindMatching looks up a booking by the identity tuple used for
	// the duplicate-submission check.
	FindMatching(name, email, productName string, price float64, date string) (*models.Booking, error)
	Insert(booking *models.Booking) error
	FindByID(id uuid.UUID) (*models.Booking, error)
	ListByEmail(email string) ([]models.Booking, error)
	// MarkPaid stores the payment and flips the booking to paid with
	// the gateway transaction id, atomically.
	MarkPaid(bookingID uuid.UUID, payment *models.Payment) error
	Delete(id uuid.UUID) error
}

type gormBookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) BookingStore {
	return &gormBookingStore{db: db}
}

func (s *gormBookingStore) FindMatching(name, email, productName string, price float64, date string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Where(
		"name = ? AND email = ? AND product_name = ? AND price = ? AND date = ?",
		name, email, productName, price, date,
	).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	return &booking, nil
}

func (s *gormBookingStore) Insert(booking *models.Booking) error {
	if err := s.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (s *gormBookingStore) FindByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

func (s *gormBookingStore) ListByEmail(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("email = ?", email).Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *gormBookingStore) MarkPaid(bookingID uuid.UUID, payment *models.Payment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return tx.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(map[string]interface{}{
			"paid":           true,
			"transaction_id": payment.TransactionID,
		}).Error
	})
}

func (s *gormBookingStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
