package services

import (
	"context"
	"sort"
	"time"

	"rentease/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users     map[uint]*models.User
	nextID    uint
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type fakeRefreshTokenRepo struct {
	tokens map[uint]*models.RefreshToken
	nextID uint
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[uint]*models.RefreshToken), nextID: 1}
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = r.nextID
	r.nextID++
	r.tokens[token.ID] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash && !t.IsRevoked() {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRefreshTokenRepo) Revoke(_ context.Context, id uint) error {
	token, ok := r.tokens[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	token.RevokedAt = &now
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash {
			now := time.Now()
			t.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) error {
	for id, t := range r.tokens {
		if t.IsExpired() {
			delete(r.tokens, id)
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[uint]*models.Product
	nextID   uint
	failNext error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*models.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	if r.failNext != nil {
		return r.failNext
	}
	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = time.Now()
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) List(_ context.Context, category string) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) ListPaged(ctx context.Context, category string, offset, limit int) ([]*models.Product, int64, error) {
	all, err := r.List(ctx, category)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

type fakeRequestRepo struct {
	requests map[uint]*models.RentalRequest
	nextID   uint
	failNext error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint]*models.RentalRequest), nextID: 1}
}

func (r *fakeRequestRepo) Create(_ context.Context, request *models.RentalRequest) error {
	if r.failNext != nil {
		return r.failNext
	}
	request.ID = r.nextID
	r.nextID++
	request.CreatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id uint) (*models.RentalRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (r *fakeRequestRepo) List(_ context.Context) ([]*models.RentalRequest, error) {
	var out []*models.RentalRequest
	for _, req := range r.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRequestRepo) ListPaged(ctx context.Context, offset, limit int) ([]*models.RentalRequest, int64, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, request *models.RentalRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.requests[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.requests, id)
	return nil
}
