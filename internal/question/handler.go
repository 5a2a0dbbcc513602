package question

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// CategoryMapper supplies the id -> type mapping returned alongside question pages.
type CategoryMapper interface {
	Map(ctx context.Context) (map[int]string, error)
}

type Handler struct {
	service    *Service
	categories CategoryMapper
}

func NewHandler(service *Service, categories CategoryMapper) *Handler {
	return &Handler{service: service, categories: categories}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/questions", h.getQuestions)
	app.Post("/questions", h.createOrSearch)
	app.Get("/categories/:id<int>/questions", h.getCategoryQuestions)
}

// RegisterProtectedRoutes registers routes that sit behind the auth guard when one is configured.
func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Delete("/questions/:id<int>", h.deleteQuestion)
}

// createOrSearchRequest carries either a search term or a new question.
type createOrSearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   Int     `json:"category"`
	Difficulty Int     `json:"difficulty"`
}

func pageOf(c *fiber.Ctx) Page {
	return PageFromQuery(c.Query("page"))
}

func (h *Handler) getQuestions(c *fiber.Ctx) error {
	ctx := c.UserContext()
	listing, err := h.service.List(ctx, pageOf(c))
	if err != nil {
		log.Errorf("list questions: %v", err)
		return fiber.ErrUnprocessableEntity
	}
	categories, err := h.categories.Map(ctx)
	if err != nil {
		log.Errorf("list categories: %v", err)
		return fiber.ErrUnprocessableEntity
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"categories":       categories,
		"questions":        listing.Questions,
		"total_questions":  listing.Total,
		"current_category": nil,
	})
}

func (h *Handler) getCategoryQuestions(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	listing, err := h.service.ListByCategory(c.UserContext(), id, pageOf(c))
	if err != nil {
		log.Errorf("list questions in category %d: %v", id, err)
		return fiber.ErrUnprocessableEntity
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
	})
}

func (h *Handler) deleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	listing, err := h.service.Delete(c.UserContext(), id, pageOf(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.ErrNotFound
		}
		log.Errorf("delete question %d: %v", id, err)
		return fiber.ErrUnprocessableEntity
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"deleted":         id,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
	})
}

func (h *Handler) createOrSearch(c *fiber.Ctx) error {
	payload := new(createOrSearchRequest)
	if err := c.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	ctx := c.UserContext()
	page := pageOf(c)

	if payload.SearchTerm != nil && *payload.SearchTerm != "" {
		listing, err := h.service.Search(ctx, *payload.SearchTerm, page)
		if err != nil {
			log.Errorf("search questions: %v", err)
			return fiber.ErrUnprocessableEntity
		}
		return c.JSON(fiber.Map{
			"success":         true,
			"questions":       listing.Questions,
			"total_questions": listing.Total,
		})
	}

	created, listing, err := h.service.Create(ctx, Question{
		Question:   payload.Question,
		Answer:     payload.Answer,
		Category:   payload.Category.Ptr(),
		Difficulty: payload.Difficulty.Ptr(),
	}, page)
	if err != nil {
		log.Errorf("create question: %v", err)
		return fiber.ErrUnprocessableEntity
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"created":         created.ID,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
	})
}
