package services

import (
	"context"
	"testing"

	"rentease/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitInput() *SubmitRequestInput {
	return &SubmitRequestInput{
		ProductID:      1,
		ProductName:    "Oak Dining Table",
		ProductPrice:   49.99,
		Name:           "Alice",
		Email:          "alice@example.com",
		Phone:          "555-0101",
		Address:        "1 Main St",
		RentalDuration: 3,
	}
}

func TestSubmit(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	userID := uint(7)
	request, err := svc.Submit(context.Background(), validSubmitInput(), &userID)
	require.NoError(t, err)

	assert.NotZero(t, request.ID)
	assert.Equal(t, models.StatusPending, request.Status)
	assert.Equal(t, "Oak Dining Table", request.ProductName)
	assert.Equal(t, 49.99, request.ProductPrice)
	assert.Equal(t, 3, request.RentalDuration)
	require.NotNil(t, request.UserID)
	assert.Equal(t, uint(7), *request.UserID)
}

func TestSubmitAnonymous(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	request, err := svc.Submit(context.Background(), validSubmitInput(), nil)
	require.NoError(t, err)
	assert.Nil(t, request.UserID)
}

func TestSubmitStatusAlwaysPending(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	input := validSubmitInput()
	input.Status = models.StatusApproved
	request, err := svc.Submit(context.Background(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, request.Status)
}

func TestSubmitMissingFields(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo)
	ctx := context.Background()

	mutations := []struct {
		name   string
		mutate func(*SubmitRequestInput)
	}{
		{"no product id", func(in *SubmitRequestInput) { in.ProductID = 0 }},
		{"no product name", func(in *SubmitRequestInput) { in.ProductName = "" }},
		{"no name", func(in *SubmitRequestInput) { in.Name = "" }},
		{"no email", func(in *SubmitRequestInput) { in.Email = "" }},
		{"no phone", func(in *SubmitRequestInput) { in.Phone = "" }},
		{"no address", func(in *SubmitRequestInput) { in.Address = "" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmitInput()
			tt.mutate(input)
			_, err := svc.Submit(ctx, input, nil)
			assert.ErrorIs(t, err, ErrRequestFieldsMissing)
		})
	}

	// Rejected submissions persist nothing
	assert.Empty(t, repo.requests)
}

func TestSubmitDurationFloor(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())
	ctx := context.Background()

	input := validSubmitInput()
	input.RentalDuration = 0
	request, err := svc.Submit(ctx, input, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, request.RentalDuration)

	input = validSubmitInput()
	input.RentalDuration = -5
	request, err = svc.Submit(ctx, input, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, request.RentalDuration)
}

func TestSetStatus(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())
	ctx := context.Background()

	request, err := svc.Submit(ctx, validSubmitInput(), nil)
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, request.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestSetStatusAnyTransition(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())
	ctx := context.Background()

	request, err := svc.Submit(ctx, validSubmitInput(), nil)
	require.NoError(t, err)

	// No transition table: completed can go back to pending, last write wins
	for _, status := range []string{
		models.StatusApproved,
		models.StatusCompleted,
		models.StatusPending,
		models.StatusRejected,
		models.StatusRejected,
	} {
		updated, err := svc.SetStatus(ctx, request.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	final, err := svc.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, final.Status)
}

func TestSetStatusInvalid(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())
	ctx := context.Background()

	request, err := svc.Submit(ctx, validSubmitInput(), nil)
	require.NoError(t, err)

	for _, status := range []string{"shipped", "Pending", "APPROVED", ""} {
		_, err = svc.SetStatus(ctx, request.ID, status)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}

	// Row is untouched after rejected writes
	stored, err := svc.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestSetStatusNotFound(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	_, err := svc.SetStatus(context.Background(), 42, models.StatusApproved)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestDelete(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())
	ctx := context.Background()

	userID := uint(7)
	request, err := svc.Submit(ctx, validSubmitInput(), &userID)
	require.NoError(t, err)

	// Other users may not delete it
	err = svc.Delete(ctx, request.ID, 8, false)
	assert.ErrorIs(t, err, ErrNotRequestOwner)

	// The owner may
	require.NoError(t, svc.Delete(ctx, request.ID, 7, false))
	_, err = svc.GetByID(ctx, request.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestDeleteAdmin(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())
	ctx := context.Background()

	// Anonymous request: only an admin can remove it
	request, err := svc.Submit(ctx, validSubmitInput(), nil)
	require.NoError(t, err)

	err = svc.Delete(ctx, request.ID, 7, false)
	assert.ErrorIs(t, err, ErrNotRequestOwner)

	require.NoError(t, svc.Delete(ctx, request.ID, 1, true))
}

func TestRequestDeleteNotFound(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())

	err := svc.Delete(context.Background(), 42, 1, true)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestListNewestFirst(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo())
	ctx := context.Background()

	first, err := svc.Submit(ctx, validSubmitInput(), nil)
	require.NoError(t, err)
	second, err := svc.Submit(ctx, validSubmitInput(), nil)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}
