package category

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type categoriesBody struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

func getCategories(t *testing.T, app *fiber.App) (int, categoriesBody) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", "/categories", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	var body categoriesBody
	if res.StatusCode == fiber.StatusOK {
		if err := json.Unmarshal(b, &body); err != nil {
			t.Fatalf("invalid body %s: %v", string(b), err)
		}
	}
	return res.StatusCode, body
}

func TestGetCategories(t *testing.T) {
	repo := NewInMemoryRepository([]Category{{ID: 2, Type: "Art"}, {ID: 1, Type: "Science"}})
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)

	status, body := getCategories(t, app)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !body.Success {
		t.Fatalf("expected success=true")
	}
	if body.Categories["1"] != "Science" || body.Categories["2"] != "Art" || len(body.Categories) != 2 {
		t.Fatalf("unexpected categories %v", body.Categories)
	}

	// listing twice without mutation yields the same mapping
	_, again := getCategories(t, app)
	if len(again.Categories) != len(body.Categories) {
		t.Fatalf("mapping changed between calls: %v vs %v", body.Categories, again.Categories)
	}
	for k, v := range body.Categories {
		if again.Categories[k] != v {
			t.Fatalf("mapping changed for %s: %q vs %q", k, v, again.Categories[k])
		}
	}
}

func TestGetCategories_Empty(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil))).RegisterPublicRoutes(app)

	status, body := getCategories(t, app)
	if status != fiber.StatusOK || !body.Success || len(body.Categories) != 0 {
		t.Fatalf("unexpected response %d %+v", status, body)
	}
}

type failingRepository struct{}

func (failingRepository) List(context.Context) ([]Category, error) {
	return nil, errors.New("connection refused")
}

func (failingRepository) Seed(context.Context, []string) (int, error) { return 0, nil }

func TestGetCategories_StoreFailure(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(failingRepository{})).RegisterPublicRoutes(app)

	status, _ := getCategories(t, app)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
}

func TestInMemorySeed_OnlyWhenEmpty(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	n, err := repo.Seed(context.Background(), DefaultTypes)
	if err != nil || n != len(DefaultTypes) {
		t.Fatalf("expected %d seeded, got %d (%v)", len(DefaultTypes), n, err)
	}
	n, _ = repo.Seed(context.Background(), DefaultTypes)
	if n != 0 {
		t.Fatalf("expected no reseed, got %d", n)
	}
	items, _ := repo.List(context.Background())
	if items[0].ID != 1 || items[0].Type != "Science" {
		t.Fatalf("unexpected first category %+v", items[0])
	}
}
