package handlers

import (
	"errors"
	"strconv"

	"rentease/internal/adapters/persistence/models"
	"rentease/internal/core/services"
	"rentease/internal/pkg/pagination"
	"rentease/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles rental request endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new rental request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// List lists all rental requests (admin view)
// @Summary List rental requests
// @Description Get all rental requests with resolved product/user references (Admin only)
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	if pagination.Requested(c) {
		params := pagination.GetParams(c)
		requests, total, err := h.requestService.ListPaged(c.Context(), params.Offset, params.Limit)
		if err != nil {
			return response.InternalServerError(c, "Failed to fetch rental requests")
		}
		return response.Success(c, "Rental requests retrieved successfully",
			pagination.NewResponse(toResponses(requests), params, total))
	}

	requests, err := h.requestService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch rental requests")
	}

	return response.Success(c, "Rental requests retrieved successfully", fiber.Map{
		"requests": toResponses(requests),
	})
}

// Create submits a new rental request
// @Summary Submit rental request
// @Description Submit a rental request for a product. Public; a logged-in user is attached automatically. Status is always stored as pending.
// @Tags Requests
// @Accept json
// @Produce json
// @Param body body services.SubmitRequestInput true "Request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var input services.SubmitRequestInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Set by OptionalAuth when a valid token was presented
	var userID *uint
	if id, ok := c.Locals("userID").(uint); ok {
		userID = &id
	}

	request, err := h.requestService.Submit(c.Context(), &input, userID)
	if err != nil {
		if errors.Is(err, services.ErrRequestFieldsMissing) {
			return response.BadRequest(c, "Missing required fields")
		}
		return response.InternalServerError(c, "Failed to create rental request")
	}

	return response.Created(c, "Rental request submitted successfully", fiber.Map{
		"request": request.ToResponse(),
	})
}

// UpdateStatusRequest represents status change request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus changes a rental request status
// @Summary Update rental request status
// @Description Set the status to any of pending/approved/rejected/completed (Admin only)
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id} [put]
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.requestService.SetStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status")
		case errors.Is(err, services.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		default:
			return response.InternalServerError(c, "Failed to update request")
		}
	}

	return response.Success(c, "Request updated successfully", fiber.Map{
		"request": request.ToResponse(),
	})
}

// Delete removes a rental request
// @Summary Delete rental request
// @Description Delete a rental request. Admins may delete any; users only their own.
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id} [delete]
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	err = h.requestService.Delete(c.Context(), uint(id), userID, role == models.RoleAdmin)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		case errors.Is(err, services.ErrNotRequestOwner):
			return response.Forbidden(c, "You can only delete your own requests")
		default:
			return response.InternalServerError(c, "Failed to delete request")
		}
	}

	return response.Success(c, "Request deleted successfully", nil)
}

// toResponses converts stored requests to annotated DTOs
func toResponses(requests []*models.RentalRequest) []*models.RentalRequestResponse {
	out := make([]*models.RentalRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, r.ToResponse())
	}
	return out
}
