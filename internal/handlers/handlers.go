package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/errs"
	"catalog/internal/repositories"
)

// Defaults applied when pagination query parameters are absent.
const (
	defaultPageNo   = 0
	defaultPageSize = 10
	defaultSortBy   = "id"
	defaultSortDir  = "asc"
)

// parsePageQuery reads pageNo/pageSize/sortBy/sortDir query parameters.
func parsePageQuery(c *fiber.Ctx) repositories.PageQuery {
	query := repositories.PageQuery{
		PageNo:   c.QueryInt("pageNo", defaultPageNo),
		PageSize: c.QueryInt("pageSize", defaultPageSize),
		SortBy:   c.Query("sortBy", defaultSortBy),
		SortDir:  c.Query("sortDir", defaultSortDir),
	}
	if query.PageNo < 0 {
		query.PageNo = defaultPageNo
	}
	if query.PageSize <= 0 {
		query.PageSize = defaultPageSize
	}
	return query
}

// parseIDParam reads the :id path parameter as an unsigned integer.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}

// respondError translates domain errors into HTTP responses: not-found to
// 404, duplicates to 400, everything else to 500.
func respondError(c *fiber.Ctx, err error) error {
	var notFound *errs.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound.Error(),
		})
	}
	var duplicate *errs.DuplicateError
	if errors.As(err, &duplicate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": duplicate.Error(),
		})
	}
	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

// respondValidationErrors formats validator failures per field, the same
// shape for every handler.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
