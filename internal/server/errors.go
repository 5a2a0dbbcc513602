package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
)

var errorMessages = map[int]string{
	fiber.StatusBadRequest:          "bad request",
	fiber.StatusUnauthorized:        "unauthorized",
	fiber.StatusNotFound:            "resource not found",
	fiber.StatusMethodNotAllowed:    "method not allowed",
	fiber.StatusUnprocessableEntity: "unprocessable",
	fiber.StatusInternalServerError: "internal server error",
}

func errorMessage(code int) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return strings.ToLower(utils.StatusMessage(code))
}

// ErrorHandler renders every error as {"success":false,"error":<status>,"message":<text>}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   code,
		"message": errorMessage(code),
	})
}
