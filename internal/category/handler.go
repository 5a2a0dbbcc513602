package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/categories", h.getCategories)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	categories, err := h.service.Map(c.UserContext())
	if err != nil {
		log.Errorf("list categories: %v", err)
		return fiber.ErrUnprocessableEntity
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}
