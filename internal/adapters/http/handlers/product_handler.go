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

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List lists all products
// @Summary List products
// @Description Get all products, newest first. Optional exact category filter and page/limit pagination.
// @Tags Products
// @Accept json
// @Produce json
// @Param category query string false "Exact category match"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")

	if pagination.Requested(c) {
		params := pagination.GetParams(c)
		products, total, err := h.productService.ListPaged(c.Context(), category, params.Offset, params.Limit)
		if err != nil {
			return response.InternalServerError(c, "Failed to fetch products")
		}
		if products == nil {
			products = []*models.Product{}
		}
		return response.Success(c, "Products retrieved successfully", pagination.NewResponse(products, params, total))
	}

	products, err := h.productService.List(c.Context(), category)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch products")
	}
	if products == nil {
		// An empty catalog serializes as [], not null
		products = []*models.Product{}
	}

	return response.Success(c, "Products retrieved successfully", fiber.Map{
		"products": products,
	})
}

// Categories returns the fixed category list
// @Summary List categories
// @Description Get the fixed product category list
// @Tags Products
// @Produce json
// @Success 200 {object} response.Response
// @Router /products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return response.Success(c, "Categories retrieved successfully", fiber.Map{
		"categories": h.productService.Categories(),
	})
}

// CreateProductRequest represents create product request body. Price
// must be present; an omitted price is rejected, an explicit 0 is not.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
}

// Create creates a new product
// @Summary Create product
// @Description Add a product to the catalog (Admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateProductRequest true "Product data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var adminID *uint
	if id, ok := c.Locals("userID").(uint); ok {
		adminID = &id
	}

	input := &services.CreateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}

	product, err := h.productService.Create(c.Context(), input, adminID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductFieldsMissing):
			return response.BadRequest(c, "Name, category, description, price and image are required")
		case errors.Is(err, services.ErrInvalidCategory):
			return response.BadRequest(c, "Invalid category")
		case errors.Is(err, services.ErrInvalidPrice):
			return response.BadRequest(c, "Price must not be negative")
		default:
			return response.InternalServerError(c, "Failed to add product")
		}
	}

	return response.Created(c, "Product created successfully", fiber.Map{
		"product": product,
	})
}

// Update partially updates a product
// @Summary Update product
// @Description Partial update: omitted fields keep their stored values (Admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body services.UpdateProductInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.productService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, services.ErrInvalidCategory):
			return response.BadRequest(c, "Invalid category")
		default:
			return response.InternalServerError(c, "Failed to update product")
		}
	}

	return response.Success(c, "Product updated successfully", fiber.Map{
		"product": product,
	})
}

// Delete removes a product
// @Summary Delete product
// @Description Remove a product from the catalog (Admin only)
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.productService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to delete product")
	}

	return response.Success(c, "Product deleted successfully", nil)
}
