package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"

	"github.com/wichananm65/trivia-api/internal/category"
	"github.com/wichananm65/trivia-api/internal/question"
	"github.com/wichananm65/trivia-api/internal/quiz"
)

const (
	allowHeaders = "Content-Type,Authorization"
	allowMethods = "GET,PATCH,POST,DELETE,OPTIONS"
)

// Options configures the HTTP layer.
type Options struct {
	// JWTSecret guards question deletion when non-empty.
	JWTSecret    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Handlers groups the feature handlers mounted on the app.
type Handlers struct {
	Category *category.Handler
	Question *question.Handler
	Quiz     *quiz.Handler
}

// New builds the Fiber app with middleware and every route registered.
func New(opts Options, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ErrorHandler: ErrorHandler,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	setupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	h.Category.RegisterPublicRoutes(app)
	h.Question.RegisterPublicRoutes(app)
	h.Quiz.RegisterPublicRoutes(app)

	if opts.JWTSecret != "" {
		app.Use(jwtware.New(jwtware.Config{
			SigningKey: []byte(opts.JWTSecret),
			// only question deletion needs a token
			Filter: func(c *fiber.Ctx) bool {
				return c.Method() != fiber.MethodDelete || !isQuestionPath(c.Path())
			},
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return fiber.ErrUnauthorized
			},
		}))
	}
	h.Question.RegisterProtectedRoutes(app)

	return app
}

// isQuestionPath reports whether path addresses a single question by numeric id,
// so unmatched ids still fall through to a 404.
func isQuestionPath(path string) bool {
	id, ok := strings.CutPrefix(path, "/questions/")
	if !ok || id == "" {
		return false
	}
	_, err := strconv.Atoi(id)
	return err == nil
}

// setupCORS allows every origin and stamps the allowed headers and methods on
// every response, not only on preflight.
func setupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		return c.Next()
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: allowMethods,
		AllowHeaders: allowHeaders,
	}))
}
