package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/ims-backend/internal/http"
	handler "github.com/rogerio-castellano/ims-backend/internal/http/handlers"
	"github.com/rogerio-castellano/ims-backend/internal/models"
)

func TestGetMovementsHandler_ListsNewestFirst(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, validProduct("Laptop"))

	update := validProduct("Laptop")
	update.Stock = 30 // up from 20
	if w := updateProduct(r, created.Id, update); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK updating product, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/movements", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.MovementsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Meta.TotalCount != 2 {
		t.Fatalf("expected 2 movements, got %d", resp.Meta.TotalCount)
	}

	// Newest first: the update movement precedes the insert movement.
	if resp.Data[0].Action != models.ActionUpdated {
		t.Errorf("expected Updated movement first, got %v", resp.Data[0].Action)
	}
	if resp.Data[1].Action != models.ActionInserted {
		t.Errorf("expected Inserted movement second, got %v", resp.Data[1].Action)
	}
	if resp.Data[0].Quantity != 10 || resp.Data[0].Type != models.MovementIncoming {
		t.Errorf("expected IN 10 for the update, got %v %d", resp.Data[0].Type, resp.Data[0].Quantity)
	}
}

func TestGetMovementsHandler_Pagination(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	for _, name := range []string{"A", "B", "C"} {
		mustCreateProduct(r, validProduct(name))
	}

	req := httptest.NewRequest(http.MethodGet, "/movements?page=1&size=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.MovementsSearchResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Meta.TotalCount != 3 {
		t.Errorf("expected total 3, got %d", resp.Meta.TotalCount)
	}
	if len(resp.Data) != 1 {
		t.Errorf("expected 1 movement on second page, got %d", len(resp.Data))
	}
}

func TestGetMovementsHandler_InvalidPaging(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/movements?size=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
