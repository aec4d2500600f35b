package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/dto"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. requireAuth guards the
// mutating endpoints. The category listing is registered before the :id
// routes so it is not captured as a product id.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/category/:id", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", requireAuth, h.HandleCreateProduct)
	productRoutes.Put("/:id", requireAuth, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", requireAuth, h.HandleDeleteProduct)
}

// pageStatus picks 206 when the page holds fewer items than exist in total,
// 200 otherwise.
func pageStatus(page *dto.PageResponse[dto.ProductDTO]) int {
	if int64(len(page.Content)) < page.TotalElements {
		return fiber.StatusPartialContent
	}
	return fiber.StatusOK
}

// parseProductFilter reads the optional title/description/price bound
// query parameters.
func parseProductFilter(c *fiber.Ctx) repositories.ProductFilter {
	filter := repositories.ProductFilter{
		Title:       c.Query("title"),
		Description: c.Query("description"),
	}
	if c.Query("min_price") != "" {
		min := c.QueryFloat("min_price")
		filter.MinPrice = &min
	}
	if c.Query("max_price") != "" {
		max := c.QueryFloat("max_price")
		filter.MaxPrice = &max
	}
	return filter
}

// HandleGetProducts retrieves a paginated, optionally filtered product listing.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	page, err := h.service.GetAllProducts(parsePageQuery(c), parseProductFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(pageStatus(page)).JSON(page)
}

// HandleGetProductsByCategory retrieves a paginated product listing scoped
// to one category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	page, err := h.service.GetProductsByCategoryID(categoryID, parsePageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(pageStatus(page)).JSON(page)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input dto.ProductDTO
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	created, err := h.service.CreateProduct(&input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct updates the title, description and price of a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var input dto.ProductDTO
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationErrors(c, err)
	}

	updated, err := h.service.UpdateProduct(id, &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
