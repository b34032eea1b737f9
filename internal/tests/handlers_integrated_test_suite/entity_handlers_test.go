//go:build integration

package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/factory-management/internal/http"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

func TestProductHandlers_RoundTrip(t *testing.T) {
	t.Cleanup(clearTestRows)
	r := api.NewRouter()

	id := idPrefix + "P1"
	w := doRequest(r, http.MethodPost, "/api/products", map[string]any{
		"P_ID": id, "P_Name": "Gear", "Category": "Parts", "Unit_price": "12.50",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/products/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if p.Name.String != "Gear" || p.UnitPrice.Decimal.StringFixed(2) != "12.50" {
		t.Errorf("unexpected product %+v", p)
	}

	w = doRequest(r, http.MethodPost, "/api/products", map[string]any{"P_ID": id})
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Duplicate entry") {
		t.Errorf("expected duplicate key rejection, got %d: %s", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodDelete, "/api/products/"+id, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/products/"+id, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestOrderHandlers_UpdateNonexistent(t *testing.T) {
	t.Cleanup(clearTestRows)
	r := api.NewRouter()

	id := idPrefix + "GHOST"
	w := doRequest(r, http.MethodPut, "/api/orders/"+id, map[string]any{"Qty": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if w := doRequest(r, http.MethodGet, "/api/orders/"+id, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"OK"`) {
		t.Errorf("expected healthy database, got %d: %s", w.Code, w.Body.String())
	}
}
