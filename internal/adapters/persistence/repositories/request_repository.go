package repositories

import (
	"context"

	"rentease/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// requestRepository implements RequestRepository interface
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new rental request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create creates a new rental request
func (r *requestRepository) Create(ctx context.Context, request *models.RentalRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a rental request by ID
func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.RentalRequest, error) {
	var request models.RentalRequest
	err := r.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List lists all rental requests newest first with product/user relations
// resolved. Dangling references leave the relation nil.
func (r *requestRepository) List(ctx context.Context) ([]*models.RentalRequest, error) {
	var requests []*models.RentalRequest
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListPaged lists rental requests with pagination
func (r *requestRepository) ListPaged(ctx context.Context, offset, limit int) ([]*models.RentalRequest, int64, error) {
	var requests []*models.RentalRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.RentalRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error

	return requests, total, err
}

// Update updates a rental request
func (r *requestRepository) Update(ctx context.Context, request *models.RentalRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// Delete deletes a rental request
func (r *requestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.RentalRequest{}, id).Error
}
