package services

import (
	"context"
	"testing"

	"rentease/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func seedProduct(t *testing.T, svc *ProductService, name, category string, price float64) *models.Product {
	t.Helper()
	adminID := uint(1)
	product, err := svc.Create(context.Background(), &CreateProductInput{
		Name:        name,
		Category:    category,
		Description: "desc",
		Price:       f64(price),
		Image:       "https://img.example.com/p.jpg",
	}, &adminID)
	require.NoError(t, err)
	return product
}

func TestProductCreate(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	product := seedProduct(t, svc, "Oak Dining Table", "Dining Table", 49.99)
	assert.NotZero(t, product.ID)
	assert.Equal(t, "Dining Table", product.Category)
	require.NotNil(t, product.AdminID)
	assert.Equal(t, uint(1), *product.AdminID)
}

func TestProductCreateValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()
	adminID := uint(1)

	tests := []struct {
		name    string
		input   CreateProductInput
		wantErr error
	}{
		{
			"missing name",
			CreateProductInput{Category: "Sofa", Description: "d", Price: f64(10), Image: "i"},
			ErrProductFieldsMissing,
		},
		{
			"missing image",
			CreateProductInput{Name: "n", Category: "Sofa", Description: "d", Price: f64(10)},
			ErrProductFieldsMissing,
		},
		{
			"missing price",
			CreateProductInput{Name: "n", Category: "Sofa", Description: "d", Image: "i"},
			ErrProductFieldsMissing,
		},
		{
			"unknown category",
			CreateProductInput{Name: "n", Category: "Spaceship", Description: "d", Price: f64(10), Image: "i"},
			ErrInvalidCategory,
		},
		{
			"lowercase category rejected",
			CreateProductInput{Name: "n", Category: "sofa", Description: "d", Price: f64(10), Image: "i"},
			ErrInvalidCategory,
		},
		{
			"negative price",
			CreateProductInput{Name: "n", Category: "Sofa", Description: "d", Price: f64(-1), Image: "i"},
			ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.input, &adminID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// An explicit zero price is allowed; only absence and negatives fail
	_, err := svc.Create(ctx, &CreateProductInput{
		Name: "Freebie", Category: "Other", Description: "d", Price: f64(0), Image: "i",
	}, &adminID)
	assert.NoError(t, err)
}

func TestProductListCategoryFilter(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	seedProduct(t, svc, "Sofa A", "Sofa", 10)
	seedProduct(t, svc, "Bed A", "Bed", 20)
	seedProduct(t, svc, "Bed B", "Bed", 30)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	beds, err := svc.List(ctx, "Bed")
	require.NoError(t, err)
	assert.Len(t, beds, 2)
	for _, p := range beds {
		assert.Equal(t, "Bed", p.Category)
	}

	// Exact case-sensitive match: no normalization
	none, err := svc.List(ctx, "bed")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductListNewestFirst(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	first := seedProduct(t, svc, "First", "Sofa", 10)
	second := seedProduct(t, svc, "Second", "Sofa", 20)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestProductPartialUpdate(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	product := seedProduct(t, svc, "Queen Bed", "Bed", 25.00)

	// Price-only update leaves every other field intact
	updated, err := svc.Update(ctx, product.ID, &UpdateProductInput{Price: 30.00})
	require.NoError(t, err)
	assert.Equal(t, 30.00, updated.Price)
	assert.Equal(t, "Queen Bed", updated.Name)
	assert.Equal(t, "Bed", updated.Category)
	assert.Equal(t, "desc", updated.Description)

	// Category change is validated against the fixed list
	_, err = svc.Update(ctx, product.ID, &UpdateProductInput{Category: "Castle"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	updated, err = svc.Update(ctx, product.ID, &UpdateProductInput{Category: "Mattress"})
	require.NoError(t, err)
	assert.Equal(t, "Mattress", updated.Category)
}

func TestProductUpdateNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.Update(context.Background(), 42, &UpdateProductInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	product := seedProduct(t, svc, "Old Sofa", "Sofa", 15)

	require.NoError(t, svc.Delete(ctx, product.ID))
	_, err := svc.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, product.ID), ErrProductNotFound)
}

func TestCategories(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	categories := svc.Categories()
	assert.Len(t, categories, 10)
	assert.Contains(t, categories, "Sofa")
	assert.Contains(t, categories, "Washing Machine")
	assert.Contains(t, categories, "Other")
}
