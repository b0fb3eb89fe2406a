package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) Create(review *models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.Rating < 1 {
		review.Rating = 1
	}
	if review.Rating > 5 {
		review.Rating = 5
	}
	if err := s.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// List returns reviews, optionally scoped to one product, newest first.
func (s *ReviewService) List(productID *uuid.UUID) ([]models.Review, error) {
	query := s.db.Order("created_at desc")
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
