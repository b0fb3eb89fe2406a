package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking() *models.Booking {
	return &models.Booking{
		Name:        "Ruman",
		Email:       "a@x.com",
		ProductName: "Drone Kit",
		Quantity:    2,
		Price:       149.50,
		Date:        "2026-09-01",
	}
}

func TestCreateBooking_New(t *testing.T) {
	bookings := store.NewMemoryBookingStore()
	svc := NewBookingService(bookings)

	saved, created, err := svc.Create(testBooking())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, 1, bookings.Len())
}

func TestCreateBooking_DuplicateReturnsExisting(t *testing.T) {
	bookings := store.NewMemoryBookingStore()
	svc := NewBookingService(bookings)

	first, created, err := svc.Create(testBooking())
	require.NoError(t, err)
	require.True(t, created)

	// Same name+email+product+price+date: no second row, the
	// original booking comes back.
	second, created, err := svc.Create(testBooking())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, bookings.Len())
}

func TestCreateBooking_DifferentDateIsNotADuplicate(t *testing.T) {
	bookings := store.NewMemoryBookingStore()
	svc := NewBookingService(bookings)

	_, created, err := svc.Create(testBooking())
	require.NoError(t, err)
	require.True(t, created)

	other := testBooking()
	other.Date = "2026-09-02"
	_, created, err = svc.Create(other)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, bookings.Len())
}

func TestRecordPayment_MarksBookingPaid(t *testing.T) {
	bookings := store.NewMemoryBookingStore()
	svc := NewBookingService(bookings)

	saved, _, err := svc.Create(testBooking())
	require.NoError(t, err)

	updated, err := svc.RecordPayment(saved.ID, "a@x.com", "txn_123", 149.50)
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	assert.Equal(t, "txn_123", updated.TransactionID)

	stored, err := bookings.FindByID(saved.ID)
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	assert.Equal(t, "txn_123", stored.TransactionID)

	payments := bookings.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, saved.ID, payments[0].BookingID)
	assert.Equal(t, 149.50, payments[0].Amount)
}

func TestRecordPayment_UnknownBooking(t *testing.T) {
	svc := NewBookingService(store.NewMemoryBookingStore())

	_, err := svc.RecordPayment(uuid.New(), "a@x.com", "txn_123", 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	bookings := store.NewMemoryBookingStore()
	svc := NewBookingService(bookings)

	saved, _, err := svc.Create(testBooking())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(saved.ID))
	assert.Equal(t, 0, bookings.Len())

	assert.ErrorIs(t, svc.Delete(saved.ID), ErrBookingNotFound)
}
