package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := New(fixtureCategories())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	handler := NewHandler(cat)
	r := gin.New()
	r.GET("/catalog", handler.List)
	r.GET("/catalog/search", handler.Search)

	return r
}

func TestCatalogList(t *testing.T) {
	r := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCatalogSearchFilters(t *testing.T) {
	r := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/search?filter=bestseller", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(resp.Categories) != 1 || len(resp.Categories[0].Items) != 1 {
		t.Fatalf("expected one bestseller item, got %v", resp.Categories)
	}
}

func TestCatalogSearchRejectsUnknownFilter(t *testing.T) {
	r := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/search?filter=hot", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
