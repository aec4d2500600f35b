package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/dto"
	"catalog/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. requireAuth guards creation.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", requireAuth, h.HandleCreateCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var input dto.CategoryDTO
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.CreateCategory(&input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
