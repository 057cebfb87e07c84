package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/ims-backend/internal/http"
	handler "github.com/rogerio-castellano/ims-backend/internal/http/handlers"
	"github.com/rogerio-castellano/ims-backend/internal/stats"
)

func TestGetDashboardStatsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	laptop := validProduct("Laptop")
	laptop.Price = 1000
	laptop.Stock = 10
	mustCreateProduct(r, laptop)

	couch := validProduct("Couch")
	couch.Category = "Furniture"
	couch.Price = 500
	couch.Stock = 2
	mustCreateProduct(r, couch)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var snap stats.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if snap.Summary.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", snap.Summary.TotalProducts)
	}
	if snap.Summary.TotalStock != 12 {
		t.Errorf("expected total stock 12, got %d", snap.Summary.TotalStock)
	}
	if snap.Summary.TotalValue != 1000*10+500*2 {
		t.Errorf("expected total value 11000, got %v", snap.Summary.TotalValue)
	}

	if len(snap.CategoriesDistribution) != 5 {
		t.Fatalf("expected 5 category buckets, got %d", len(snap.CategoriesDistribution))
	}
	if snap.MovementsLast24Hours.In != 2 {
		t.Errorf("expected 2 incoming movements in the last 24h, got %d", snap.MovementsLast24Hours.In)
	}
	if len(snap.MovementsLast7Days.In) != 7 || len(snap.MovementsLast7Days.Out) != 7 {
		t.Errorf("expected 7-day series, got %d in / %d out buckets",
			len(snap.MovementsLast7Days.In), len(snap.MovementsLast7Days.Out))
	}
	if snap.MovementsLast7Days.In[6].Count != 2 {
		t.Errorf("expected 2 incoming movements today, got %d", snap.MovementsLast7Days.In[6].Count)
	}
}

func TestGetDashboardStatsHandler_EmptyStores(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var snap stats.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if snap.Summary.TotalProducts != 0 || snap.Summary.TotalStock != 0 {
		t.Errorf("expected empty summary, got %+v", snap.Summary)
	}
	if len(snap.CategoriesDistribution) != 5 {
		t.Errorf("expected all 5 category buckets even when empty, got %d", len(snap.CategoriesDistribution))
	}
}

func TestGetBelowMinimumStockHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	low := validProduct("Almost Gone")
	low.Stock = 2
	low.MinimumStock = 10
	created := mustCreateProduct(r, low)

	mustCreateProduct(r, validProduct("Well Stocked"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/below-minimum-stock", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Meta.TotalCount != 1 {
		t.Fatalf("expected 1 product below minimum stock, got %d", resp.Meta.TotalCount)
	}
	if resp.Data[0].Id != created.Id {
		t.Errorf("expected product %s, got %s", created.Id, resp.Data[0].Id)
	}
	if !resp.Data[0].LowStock {
		t.Error("expected low_stock to be true")
	}
}

func TestHealthHandler(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", w.Code)
	}
	if w.Body.String() != "ok" {
		t.Errorf("expected body 'ok', got %q", w.Body.String())
	}
}
