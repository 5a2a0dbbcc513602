package quiz

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
	app.Post("/quizzes", h.play)
}

func (h *Handler) play(c *fiber.Ctx) error {
	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	next, err := h.service.Next(c.UserContext(), *payload)
	if err != nil {
		log.Errorf("quiz next question: %v", err)
		return fiber.ErrUnprocessableEntity
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"question": next,
	})
}
