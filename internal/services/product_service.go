package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns catalog items, optionally filtered by name.
func (s *ProductService) List(name string) ([]models.Product, error) {
	query := s.db.Order("created_at desc")
	if name != "" {
		query = query.Where("name = ?", name)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Create(product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *ProductService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
