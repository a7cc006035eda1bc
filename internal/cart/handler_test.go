package cart

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/bharatcart/shop-backend/internal/catalog"
)

func makeAppWithCartHandler(products []catalog.Product) *fiber.App {
	app := fiber.New()
	catalogSvc := catalog.NewService(catalog.NewInMemoryRepository(products))
	handler := NewHandler(NewService(NewInMemoryRepository(), catalogSvc))
	handler.RegisterRoutes(app)
	return app
}

func TestCartRoutes_Basic(t *testing.T) {
	app := makeAppWithCartHandler([]catalog.Product{{ID: 1, Name: "Widget", Price: 100}})

	// ensure routes registered
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	for _, p := range []string{"/api/cart", "/api/cart/:id"} {
		if !routes[p] {
			t.Fatalf("expected route %q to be registered", p)
		}
	}

	// empty cart serializes with an items array, not null
	res, _ := app.Test(httptest.NewRequest("GET", "/api/cart", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for empty cart, got %d", res.StatusCode)
	}
	var view View
	if err := json.NewDecoder(res.Body).Decode(&view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if view.Items == nil || len(view.Items) != 0 || view.Total != 0 {
		t.Fatalf("expected empty cart view, got %+v", view)
	}

	// add product twice; quantity accumulates on a single line
	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":1,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":1,"quantity":3}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for second add, got %d", res.StatusCode)
	}
	var item Item
	if err := json.NewDecoder(res.Body).Decode(&item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Quantity != 5 || item.Total != 500 {
		t.Fatalf("expected quantity 5 / total 500, got %+v", item)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/cart", nil))
	if err := json.NewDecoder(res.Body).Decode(&view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(view.Items) != 1 || view.Total != 500 {
		t.Fatalf("expected single line totalling 500, got %+v", view)
	}

	// remove the line, then remove it again: both succeed
	res, _ = app.Test(httptest.NewRequest("DELETE", "/api/cart/1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for remove, got %d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest("DELETE", "/api/cart/1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for repeat remove, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/cart", nil))
	if err := json.NewDecoder(res.Body).Decode(&view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected cart empty after remove, got %+v", view)
	}
}

func TestAddToCart_UnknownProductIs404(t *testing.T) {
	app := makeAppWithCartHandler(nil)

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"productId":99,"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res.StatusCode)
	}
}

func TestAddToCart_InvalidQuantityIs400(t *testing.T) {
	app := makeAppWithCartHandler([]catalog.Product{{ID: 1, Name: "Widget", Price: 100}})

	for _, body := range []string{`{"productId":1,"quantity":0}`, `{"productId":1,"quantity":-2}`} {
		req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, res.StatusCode)
		}
	}
}

func TestRemoveItem_BadIDIs400(t *testing.T) {
	app := makeAppWithCartHandler(nil)

	res, _ := app.Test(httptest.NewRequest("DELETE", "/api/cart/abc", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", res.StatusCode)
	}
}
