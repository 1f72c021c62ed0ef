package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/catalog"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/logger"
	"github.com/hamadino877/Al-Nile-Gourmet/internal/storage"
)

func setupCartTestRouter(t *testing.T) (*gin.Engine, *Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New([]catalog.Category{
		{
			NameAR: "الأطباق الرئيسية",
			NameEN: "Main Dishes",
			Items: []catalog.MenuItem{
				{ID: 1, NameAR: "كشري مصري", NameEN: "Egyptian Koshary", Price: decimal.NewFromInt(45)},
				{
					ID: 2, NameAR: "مشاوي مشكلة", NameEN: "Mixed Grill",
					Sizes: []catalog.SizeVariant{
						{NameAR: "نص كيلو", NameEN: "Half Kilo", Price: decimal.NewFromInt(95)},
						{NameAR: "كيلو", NameEN: "Kilo", Price: decimal.NewFromInt(180)},
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	engine := NewEngine(storage.NewMemoryStore(), logger.New("cart-test"))
	handler := NewHandler(engine, cat)

	r := gin.New()
	r.GET("/cart", handler.Get)
	r.POST("/cart/items", handler.AddItem)
	r.PATCH("/cart/items/:id", handler.UpdateQty)
	r.DELETE("/cart/items/:id", handler.RemoveLine)
	r.DELETE("/cart", handler.Clear)

	return r, engine
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddItemEndpoint(t *testing.T) {
	r, engine := setupCartTestRouter(t)

	w := postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if engine.Count() != 1 {
		t.Fatalf("expected 1 unit in cart, got %d", engine.Count())
	}
}

func TestAddItemUnknownItem(t *testing.T) {
	r, _ := setupCartTestRouter(t)

	w := postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 99})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAddSizedItemWithoutVariantRejected(t *testing.T) {
	r, _ := setupCartTestRouter(t)

	w := postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	w = postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 2, "variant": "Kilo"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateQtyEndpoint(t *testing.T) {
	r, engine := setupCartTestRouter(t)
	postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 1})

	w := postJSON(t, r, http.MethodPatch, "/cart/items/1-default", map[string]any{"delta": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if engine.Count() != 3 {
		t.Fatalf("expected 3 units, got %d", engine.Count())
	}

	// Driving the quantity to zero removes the line.
	postJSON(t, r, http.MethodPatch, "/cart/items/1-default", map[string]any{"delta": -3})
	if len(engine.Lines()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestClearEndpoint(t *testing.T) {
	r, engine := setupCartTestRouter(t)
	postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 1})

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if len(engine.Lines()) != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestGetCartEndpoint(t *testing.T) {
	r, _ := setupCartTestRouter(t)
	postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 1})
	postJSON(t, r, http.MethodPost, "/cart/items", map[string]any{"item_id": 2, "variant": "Half Kilo"})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Items []struct {
			LineID string `json:"line_id"`
		} `json:"items"`
		Total string `json:"total"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(resp.Items) != 2 || resp.Count != 2 {
		t.Fatalf("expected 2 lines / 2 units, got %d / %d", len(resp.Items), resp.Count)
	}
	if resp.Total != "140.00" {
		t.Fatalf("expected total 140.00, got %s", resp.Total)
	}
}
