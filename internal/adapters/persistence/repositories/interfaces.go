package repositories

import (
	"context"

	"rentease/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) error
}

// ProductRepository defines product catalog repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, category string) ([]*models.Product, error)
	ListPaged(ctx context.Context, category string, offset, limit int) ([]*models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

// RequestRepository defines rental request repository interface
type RequestRepository interface {
	Create(ctx context.Context, request *models.RentalRequest) error
	GetByID(ctx context.Context, id uint) (*models.RentalRequest, error)
	List(ctx context.Context) ([]*models.RentalRequest, error)
	ListPaged(ctx context.Context, offset, limit int) ([]*models.RentalRequest, int64, error)
	Update(ctx context.Context, request *models.RentalRequest) error
	Delete(ctx context.Context, id uint) error
}
