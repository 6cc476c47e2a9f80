package book

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp() *fiber.App {
	repo := NewInMemoryRepository(Seed())
	handler := NewHandler(NewService(repo), zap.NewNop())
	app := fiber.New()
	handler.RegisterRoutes(app)
	return app
}

func TestBookRoutes_Registered(t *testing.T) {
	app := newTestApp()

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}

	for _, path := range []string{"/api/books", "/api/books/grade/:grade", "/api/books/:id"} {
		if !routes[path] {
			t.Fatalf("expected route %q to be registered", path)
		}
	}
}

func TestGetBooks(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/books", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	if !strings.Contains(str, "Math Adventures") || !strings.Contains(str, "World History") {
		t.Fatalf("seed books missing from response: %s", str)
	}
}

func TestGetBooksByGrade(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/books/grade/1", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	if !strings.Contains(str, "Math Adventures") {
		t.Fatalf("expected grade-1 book in response: %s", str)
	}
	if strings.Contains(str, "Science Explorers") {
		t.Fatalf("grade-3 book leaked into grade-1 response: %s", str)
	}

	for _, g := range []string{"0", "10", "abc"} {
		req := httptest.NewRequest("GET", "/api/books/grade/"+g, nil)
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for grade %q, got %d", g, res.StatusCode)
		}
	}
}

func TestGetBook(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/books/1", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"id":"1"`) {
		t.Fatalf("unexpected body: %s", string(body))
	}

	req2 := httptest.NewRequest("GET", "/api/books/999", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", res2.StatusCode)
	}
}

func TestUpdateBook(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("PUT", "/api/books/1", strings.NewReader(`{"title":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	// merged record: new title, untouched id and price
	if !strings.Contains(str, `"title":"X"`) || !strings.Contains(str, `"id":"1"`) || !strings.Contains(str, `"price":"24.99"`) {
		t.Fatalf("unexpected merged record: %s", str)
	}

	req2 := httptest.NewRequest("PUT", "/api/books/999", strings.NewReader(`{"title":"X"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("PUT", "/api/books/1", strings.NewReader(`{"grade":12}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range grade, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), "grade") {
		t.Fatalf("expected grade in validation errors: %s", string(b3))
	}
}

func TestDeleteBook(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("DELETE", "/api/books/5", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Book deleted successfully") {
		t.Fatalf("unexpected body: %s", string(body))
	}

	// second delete of the same id reports not found, not a fault
	req2 := httptest.NewRequest("DELETE", "/api/books/5", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", res2.StatusCode)
	}
}
