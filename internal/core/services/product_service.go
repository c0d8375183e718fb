package services

import (
	"context"
	"errors"

	"rentease/internal/adapters/persistence/models"
	"rentease/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Product service errors
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductFieldsMissing = errors.New("missing required product fields")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidPrice         = errors.New("price must not be negative")
)

// ProductService handles catalog business logic
type ProductService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents create product input. Price is a
// pointer so an omitted price is distinguishable from an explicit 0.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Image       string   `json:"image" validate:"required"`
}

// UpdateProductInput represents partial update input. Zero-valued
// fields keep their stored values.
type UpdateProductInput struct {
	Name        string  `json:"name,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Create creates a new catalog product owned by the given admin
func (s *ProductService) Create(ctx context.Context, input *CreateProductInput, adminID *uint) (*models.Product, error) {
	if input.Name == "" || input.Category == "" || input.Description == "" ||
		input.Image == "" || input.Price == nil {
		return nil, ErrProductFieldsMissing
	}
	if !models.ValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}
	if *input.Price < 0 {
		return nil, ErrInvalidPrice
	}

	product := &models.Product{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       *input.Price,
		Image:       input.Image,
		AdminID:     adminID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetByID gets a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// List lists all products, newest first, optionally filtered by an
// exact category match
func (s *ProductService) List(ctx context.Context, category string) ([]*models.Product, error) {
	return s.productRepo.List(ctx, category)
}

// ListPaged lists products with pagination
func (s *ProductService) ListPaged(ctx context.Context, category string, offset, limit int) ([]*models.Product, int64, error) {
	return s.productRepo.ListPaged(ctx, category, offset, limit)
}

// Update applies a partial update: omitted or zero fields retain
// their prior values
func (s *ProductService) Update(ctx context.Context, id uint, input *UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Category != "" {
		if !models.ValidCategory(input.Category) {
			return nil, ErrInvalidCategory
		}
		product.Category = input.Category
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price > 0 {
		product.Price = input.Price
	}
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product unconditionally. Rental requests that
// reference it keep their denormalized copies; no referential check.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return s.productRepo.Delete(ctx, id)
}

// Categories returns the fixed category list as a static value
func (s *ProductService) Categories() []string {
	return models.Categories
}
