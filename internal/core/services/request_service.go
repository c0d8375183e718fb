package services

import (
	"context"
	"errors"
	"log"

	"rentease/internal/adapters/persistence/models"
	"rentease/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Request service errors
var (
	ErrRequestNotFound      = errors.New("rental request not found")
	ErrRequestFieldsMissing = errors.New("missing required request fields")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrNotRequestOwner      = errors.New("not the owner of this request")
)

// RequestService owns the rental request lifecycle. The status field is
// an unconstrained four-state machine: every request starts at pending,
// and any admin may move it to any of the four states at any time.
type RequestService struct {
	requestRepo repositories.RequestRepository
}

// NewRequestService creates a new rental request service
func NewRequestService(requestRepo repositories.RequestRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo}
}

// SubmitRequestInput represents a rental request submission.
// ProductName and ProductPrice are denormalized copies captured now;
// the stored request does not follow later product edits.
type SubmitRequestInput struct {
	ProductID      uint    `json:"product_id" validate:"required"`
	ProductName    string  `json:"product_name" validate:"required"`
	ProductPrice   float64 `json:"product_price,omitempty"`
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required"`
	Phone          string  `json:"phone" validate:"required"`
	Address        string  `json:"address" validate:"required"`
	RentalDuration int     `json:"rental_duration,omitempty"`
	Status         string  `json:"status,omitempty"` // ignored; always stored as pending
}

// Submit persists a new rental request with status forced to pending
// regardless of any status value in the input. The user reference is
// optional: anonymous submissions carry no user ID.
func (s *RequestService) Submit(ctx context.Context, input *SubmitRequestInput, userID *uint) (*models.RentalRequest, error) {
	if input.ProductID == 0 || input.ProductName == "" ||
		input.Name == "" || input.Email == "" || input.Phone == "" || input.Address == "" {
		return nil, ErrRequestFieldsMissing
	}

	duration := input.RentalDuration
	if duration < 1 {
		duration = 1
	}

	request := &models.RentalRequest{
		ProductID:      input.ProductID,
		ProductName:    input.ProductName,
		ProductPrice:   input.ProductPrice,
		UserID:         userID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		RentalDuration: duration,
		Status:         models.StatusPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	log.Printf("✅ Rental request submitted: #%d for %q", request.ID, request.ProductName)
	return request, nil
}

// GetByID gets a rental request by ID
func (s *RequestService) GetByID(ctx context.Context, id uint) (*models.RentalRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

// List returns all rental requests newest first, annotated with the
// resolved product and user where the references still exist
func (s *RequestService) List(ctx context.Context) ([]*models.RentalRequest, error) {
	return s.requestRepo.List(ctx)
}

// ListPaged lists rental requests with pagination
func (s *RequestService) ListPaged(ctx context.Context, offset, limit int) ([]*models.RentalRequest, int64, error) {
	return s.requestRepo.ListPaged(ctx, offset, limit)
}

// SetStatus overwrites the status unconditionally. No transition table:
// all sixteen transitions, self-transitions included, are legal.
func (s *RequestService) SetStatus(ctx context.Context, id uint, status string) (*models.RentalRequest, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	request.Status = status
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	log.Printf("✅ Rental request #%d status set to %s", request.ID, status)
	return request, nil
}

// Delete removes a rental request. Admins may delete any request;
// other callers only their own. No terminal-status precondition.
func (s *RequestService) Delete(ctx context.Context, id uint, actorID uint, isAdmin bool) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	if !isAdmin {
		if request.UserID == nil || *request.UserID != actorID {
			return ErrNotRequestOwner
		}
	}

	return s.requestRepo.Delete(ctx, id)
}
