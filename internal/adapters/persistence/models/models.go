package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Users & Auth
// ============================================================

// User roles
const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)

// ValidRole checks if a role is one of the recognized values
func ValidRole(role string) bool {
	return role == RoleRegular || role == RoleAdmin
}

// User represents the users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"type:varchar(100) COLLATE utf8mb4_bin;uniqueIndex;not null" json:"email"` // unique, case-sensitive as stored
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;default:'regular'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// IsAdmin reports whether the user carries the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Catalog
// ============================================================

// Categories is the fixed set of product categories. Served as a static
// list, never derived from stored rows.
var Categories = []string{
	"Sofa",
	"Bed",
	"Table",
	"Dining Table",
	"TV",
	"Refrigerator",
	"Washing Machine",
	"Water Purifier",
	"Mattress",
	"Other",
}

// ValidCategory checks a category against the fixed set (case-sensitive)
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Product represents the products table
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Category    string         `gorm:"type:varchar(50) COLLATE utf8mb4_bin;not null;index" json:"category"` // binary collation keeps filters case-sensitive
	Description string         `gorm:"type:text;not null" json:"description"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"` // monthly rent
	Image       string         `gorm:"size:500;not null" json:"image"`
	AdminID     *uint          `gorm:"index" json:"admin_id"` // admin who added this product
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Admin *User `gorm:"foreignKey:AdminID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ============================================================
// Rental Requests
// ============================================================

// Rental request statuses
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// Statuses lists the recognized rental request statuses
var Statuses = []string{StatusPending, StatusApproved, StatusRejected, StatusCompleted}

// ValidStatus checks a status against the recognized set
func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// RentalRequest represents the rental_requests table.
// ProductName and ProductPrice are denormalized copies captured at
// submission time; later product edits do not change them.
type RentalRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProductID      uint      `gorm:"not null;index" json:"product_id"`
	ProductName    string    `gorm:"size:100;not null" json:"product_name"`
	ProductPrice   float64   `gorm:"type:decimal(10,2);default:0" json:"product_price"`
	UserID         *uint     `gorm:"index" json:"user_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"size:100;not null" json:"email"`
	Phone          string    `gorm:"size:30;not null" json:"phone"`
	Address        string    `gorm:"size:500;not null" json:"address"`
	RentalDuration int       `gorm:"not null;default:1" json:"rental_duration"` // months
	Status         string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
}

func (RentalRequest) TableName() string {
	return "rental_requests"
}

// ProductRef is the product annotation resolved at read time
type ProductRef struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UserRef is the user annotation resolved at read time
type UserRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RentalRequestResponse DTO. Product and User hold the resolved
// references; dangling references leave them null.
type RentalRequestResponse struct {
	ID             uint        `json:"id"`
	ProductID      uint        `json:"product_id"`
	ProductName    string      `json:"product_name"`
	ProductPrice   float64     `json:"product_price"`
	UserID         *uint       `json:"user_id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	RentalDuration int         `json:"rental_duration"`
	Status         string      `json:"status"`
	Product        *ProductRef `json:"product,omitempty"`
	User           *UserRef    `json:"user,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (r *RentalRequest) ToResponse() *RentalRequestResponse {
	resp := &RentalRequestResponse{
		ID:             r.ID,
		ProductID:      r.ProductID,
		ProductName:    r.ProductName,
		ProductPrice:   r.ProductPrice,
		UserID:         r.UserID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		RentalDuration: r.RentalDuration,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	if r.Product != nil {
		resp.Product = &ProductRef{
			ID:    r.Product.ID,
			Name:  r.Product.Name,
			Price: r.Product.Price,
		}
	}
	if r.User != nil {
		resp.User = &UserRef{
			ID:    r.User.ID,
			Name:  r.User.Name,
			Email: r.User.Email,
		}
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Product{},
		&RentalRequest{},
	)
}
