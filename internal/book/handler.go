package book

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterRoutes mounts the catalog endpoints. The grade route must be
// registered before the id route so "grade" is not captured as a book id.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/books", h.getBooks)
	app.Get("/api/books/grade/:grade", h.getBooksByGrade)
	app.Get("/api/books/:id", h.getBook)
	app.Put("/api/books/:id", h.updateBook)
	app.Delete("/api/books/:id", h.deleteBook)
}

func (h *Handler) getBooks(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getBooksByGrade(c *fiber.Ctx) error {
	grade, err := strconv.Atoi(c.Params("grade"))
	if err != nil || grade < MinGrade || grade > MaxGrade {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid grade. Must be between 1 and 9.",
		})
	}
	return c.JSON(h.service.ListByGrade(grade))
}

func (h *Handler) getBook(c *fiber.Ctx) error {
	b, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return h.bookError(c, err, "fetch book")
	}
	return c.JSON(b)
}

func (h *Handler) updateBook(c *fiber.Ctx) error {
	patch := new(Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// validate payload and return all validation errors together
	if ves := validatePatch(patch); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.Params("id"), *patch)
	if err != nil {
		return h.bookError(c, err, "update book")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteBook(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return h.bookError(c, err, "delete book")
	}
	return c.JSON(fiber.Map{"message": "Book deleted successfully"})
}

// bookError maps an absent record to 404 and everything else to a generic
// 500, keeping internal detail out of the response body.
func (h *Handler) bookError(c *fiber.Ctx, err error, op string) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Book not found"})
	}
	h.log.Error(op, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to " + op})
}

func validatePatch(p *Patch) map[string]string {
	errs := map[string]string{}
	if p.Title != nil && *p.Title == "" {
		errs["title"] = "title cannot be empty"
	}
	if p.Price != nil && *p.Price == "" {
		errs["price"] = "price cannot be empty"
	}
	if p.Grade != nil && (*p.Grade < MinGrade || *p.Grade > MaxGrade) {
		errs["grade"] = "grade must be between 1 and 9"
	}
	if p.Description != nil && *p.Description == "" {
		errs["description"] = "description cannot be empty"
	}
	return errs
}
