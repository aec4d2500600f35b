package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/dto"
	"catalog/internal/services"
)

// BrandHandler handles HTTP requests for brands.
type BrandHandler struct {
	service  *services.BrandService
	validate *validator.Validate
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(service *services.BrandService) *BrandHandler {
	return &BrandHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the brand routes. requireAuth guards creation.
func (h *BrandHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	brandRoutes := router.Group("/brands")
	brandRoutes.Get("/", h.HandleGetBrands)
	brandRoutes.Get("/:id", h.HandleGetBrandByID)
	brandRoutes.Post("/", requireAuth, h.HandleCreateBrand)
}

// HandleGetBrands retrieves all brands.
func (h *BrandHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetAllBrands()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brands)
}

// HandleGetBrandByID retrieves a single brand.
func (h *BrandHandler) HandleGetBrandByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	brand, err := h.service.GetBrandByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brand)
}

// HandleCreateBrand creates a new brand.
func (h *BrandHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var input dto.BrandDTO
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing brand request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.CreateBrand(&input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
