package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/rogerio-castellano/factory-management/docs"
	api "github.com/rogerio-castellano/factory-management/internal/http"
)

func preflight(r http.Handler, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_CORSAllowedOrigins(t *testing.T) {
	r := api.NewRouter("http://dashboard.local")

	w := preflight(r, "/api/users", "http://dashboard.local")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://dashboard.local" {
		t.Errorf("expected allowed origin to be echoed, got %q", got)
	}

	w = preflight(r, "/api/users", "http://evil.local")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header for a foreign origin, got %q", got)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/employees/E1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 Method Not Allowed, got %d", w.Code)
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"title": "Factory Management API"`, `"/db-objects/procedures"`, `"basePath": "/api"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected swagger doc to contain %s", want)
		}
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := api.NewRouter()

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/analytics/triggers", nil))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	want := `factory_http_requests_total{method="GET",route="/api/analytics/triggers",status="200"}`
	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("expected %s in metrics output", want)
	}
}
