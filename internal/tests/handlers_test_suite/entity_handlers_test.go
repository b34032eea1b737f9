package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/factory-management/internal/http"
	handler "github.com/rogerio-castellano/factory-management/internal/http/handlers"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

func TestCreateHandlers_RoundTrip(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name string
		path string
		id   string
		body map[string]any
	}{
		{
			name: "employee",
			path: "/api/employees",
			id:   "E1",
			body: map[string]any{
				"E_ID": "E1", "FName": "Ada", "LName": "Lovelace", "Email": "ada@factory.io",
				"Position": "Analyst", "Category": "Research", "Salary": "5000.75", "Hire_date": "2024-03-01",
			},
		},
		{
			name: "department",
			path: "/api/departments",
			id:   "D1",
			body: map[string]any{"Dept_ID": "D1", "Dept_name": "Assembly", "Budget": "120000"},
		},
		{
			name: "factory",
			path: "/api/factories",
			id:   "F1",
			body: map[string]any{
				"F_ID": "F1", "F_Name": "North Plant", "Address": "1 Mill Rd", "Ph_no": "555-0101", "Manager_name": "Grace Hopper",
			},
		},
		{
			name: "machine",
			path: "/api/machines",
			id:   "M1",
			body: map[string]any{
				"M_ID": "M1", "Name": "Press", "Model": "P-100", "Manufacturer": "Acme",
				"Purchase_date": "2023-11-20", "Status": "Maintenance",
			},
		},
		{
			name: "product",
			path: "/api/products",
			id:   "P1",
			body: map[string]any{"P_ID": "P1", "P_Name": "Gear", "Category": "Parts", "Unit_price": "12.5"},
		},
		{
			name: "order",
			path: "/api/orders",
			id:   "O1",
			body: map[string]any{
				"Order_ID": "O1", "Order_date": "2025-01-10", "Due_date": "2025-02-10",
				"Priority": "High", "Status": "In Progress", "Qty": 250,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, tt.path, tt.body)
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
			}
			var msg handler.MessageResponse
			if err := decode(w, &msg); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if msg.Message != "Created" {
				t.Errorf("expected message 'Created', got %q", msg.Message)
			}

			w = doRequest(r, http.MethodGet, tt.path+"/"+tt.id, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}
			var got map[string]any
			if err := decode(w, &got); err != nil {
				t.Fatalf("error decoding row: %v", err)
			}

			data, _ := json.Marshal(tt.body)
			var want map[string]any
			json.Unmarshal(data, &want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestCreateHandlers_NumericText(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/api/employees", `{"E_ID":101,"FName":"Ada","LName":"Lovelace","Salary":5000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	w = doRequest(r, http.MethodGet, "/api/employees/101", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var e models.Employee
	if err := decode(w, &e); err != nil {
		t.Fatalf("error decoding employee: %v", err)
	}
	if e.ID.String != "101" || e.Salary.Decimal.String() != "5000" {
		t.Errorf("unexpected employee: %+v", e)
	}
	if !strings.Contains(w.Body.String(), `"E_ID":"101"`) {
		t.Errorf("expected the key rendered as text, got %s", w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/factories", `{"F_ID":"F1","Ph_no":5551234}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	w = doRequest(r, http.MethodGet, "/api/factories/F1", nil)
	if !strings.Contains(w.Body.String(), `"Ph_no":"5551234"`) {
		t.Errorf("expected phone number stored as text, got %s", w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/machines", `{"M_ID":"M1","Name":true}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for a boolean name, got %d", w.Code)
	}
}

func TestCreateHandlers_Defaults(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name   string
		path   string
		body   map[string]any
		fields map[string]string
	}{
		{
			name:   "employee position and category",
			path:   "/api/employees",
			body:   map[string]any{"E_ID": "E1"},
			fields: map[string]string{"Position": "Engineer", "Category": "Technical"},
		},
		{
			name:   "department budget",
			path:   "/api/departments",
			body:   map[string]any{"Dept_ID": "D1", "Dept_name": "Assembly"},
			fields: map[string]string{"Budget": "0"},
		},
		{
			name:   "machine status",
			path:   "/api/machines",
			body:   map[string]any{"M_ID": "M1", "Name": "Press"},
			fields: map[string]string{"Status": "Working"},
		},
		{
			name:   "order priority and status",
			path:   "/api/orders",
			body:   map[string]any{"Order_ID": "O1", "Qty": 10},
			fields: map[string]string{"Priority": "Medium", "Status": "Pending"},
		},
		{
			name:   "explicit values win",
			path:   "/api/machines",
			body:   map[string]any{"M_ID": "M2", "Status": "Maintenance"},
			fields: map[string]string{"Status": "Maintenance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, tt.path, tt.body)
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
			}

			var id string
			for k, v := range tt.body {
				if strings.HasSuffix(k, "ID") {
					id = v.(string)
				}
			}
			w = doRequest(r, http.MethodGet, tt.path+"/"+id, nil)
			var row map[string]any
			if err := decode(w, &row); err != nil {
				t.Fatalf("error decoding row: %v", err)
			}
			for field, want := range tt.fields {
				if row[field] != want {
					t.Errorf("expected %s=%q, got %v", field, want, row[field])
				}
			}
		})
	}
}

func TestCreateHandlers_StorageErrors(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	if w := doRequest(r, http.MethodPost, "/api/products", map[string]any{"P_ID": "P1", "P_Name": "Gear"}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{
			name:    "duplicate key",
			body:    map[string]any{"P_ID": "P1", "P_Name": "Bolt"},
			message: "Error 1062 (23000): Duplicate entry 'P1' for key 'PRODUCT.PRIMARY'",
		},
		{
			name:    "missing key",
			body:    map[string]any{"P_Name": "Nut"},
			message: "Error 1048 (23000): Column 'P_ID' cannot be null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/products", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
			var msg handler.MessageResponse
			if err := decode(w, &msg); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if msg.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, msg.Message)
			}
		})
	}
}

func TestCreateHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	badJSON := `{"F_ID": "F1" "F_Name": "North"}` // missing comma
	w := doRequest(r, http.MethodPost, "/api/factories", badJSON)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
	var msg handler.MessageResponse
	if err := decode(w, &msg); err != nil || msg.Message == "" {
		t.Errorf("expected a message body, got %s", w.Body.String())
	}
}

func TestCreateOrderHandler_QtyAsString(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/api/orders", `{"Order_ID":"O1","Qty":"250"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/orders/O1", nil)
	if !strings.Contains(w.Body.String(), `"Qty":250`) {
		t.Errorf("expected numeric Qty 250, got %s", w.Body.String())
	}
}

func TestListHandlers_Empty(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	for _, path := range []string{"/api/employees", "/api/departments", "/api/factories", "/api/machines", "/api/products", "/api/orders"} {
		w := doRequest(r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200 OK, got %d", path, w.Code)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("%s: expected [], got %s", path, body)
		}
	}
}

func TestListHandler_OrderedByKey(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	for _, id := range []string{"F3", "F1", "F2"} {
		doRequest(r, http.MethodPost, "/api/factories", map[string]any{"F_ID": id})
	}

	w := doRequest(r, http.MethodGet, "/api/factories", nil)
	var factories []models.Factory
	if err := decode(w, &factories); err != nil {
		t.Fatalf("error decoding factories: %v", err)
	}
	if len(factories) != 3 {
		t.Fatalf("expected 3 factories, got %d", len(factories))
	}
	for i, want := range []string{"F1", "F2", "F3"} {
		if factories[i].ID.String != want {
			t.Errorf("position %d: expected %s, got %s", i, want, factories[i].ID.String)
		}
	}
}

func TestDeleteHandler_ThenGetNotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	doRequest(r, http.MethodPost, "/api/departments", map[string]any{"Dept_ID": "D1"})

	w := doRequest(r, http.MethodDelete, "/api/departments/D1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var msg handler.MessageResponse
	decode(w, &msg)
	if msg.Message != "Deleted" {
		t.Errorf("expected message 'Deleted', got %q", msg.Message)
	}

	w = doRequest(r, http.MethodGet, "/api/departments/D1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "{}" {
		t.Errorf("expected {}, got %s", body)
	}

	// deleting again is not an error
	if w := doRequest(r, http.MethodDelete, "/api/departments/D1", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200 OK on repeated delete, got %d", w.Code)
	}
}

func TestUpdateHandler_FullOverwrite(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	doRequest(r, http.MethodPost, "/api/machines", map[string]any{
		"M_ID": "M1", "Name": "Press", "Model": "P-100", "Manufacturer": "Acme",
	})

	w := doRequest(r, http.MethodPut, "/api/machines/M1", map[string]any{"Name": "Press II", "Status": "Idle"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/machines/M1", nil)
	var m models.Machine
	if err := decode(w, &m); err != nil {
		t.Fatalf("error decoding machine: %v", err)
	}
	if m.Name.String != "Press II" || m.Status.String != "Idle" {
		t.Errorf("expected updated name and status, got %+v", m)
	}
	if m.Model.Valid || m.Manufacturer.Valid {
		t.Errorf("expected absent fields to be cleared, got model=%v manufacturer=%v", m.Model, m.Manufacturer)
	}
}

func TestUpdateHandler_Nonexistent(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPut, "/api/employees/GHOST", map[string]any{"FName": "Nobody"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var msg handler.MessageResponse
	decode(w, &msg)
	if msg.Message != "Updated" {
		t.Errorf("expected message 'Updated', got %q", msg.Message)
	}

	if w := doRequest(r, http.MethodGet, "/api/employees/GHOST", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected update not to create the row, got %d", w.Code)
	}
}

func TestEntityHandlers_DatabaseUnavailable(t *testing.T) {
	t.Cleanup(func() {
		orderRepo.SetUnavailable(false)
		clearAll()
	})
	r := api.NewRouter()
	orderRepo.SetUnavailable(true)

	requests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/orders", nil},
		{http.MethodGet, "/api/orders/O1", nil},
		{http.MethodPost, "/api/orders", map[string]any{"Order_ID": "O1"}},
		{http.MethodPut, "/api/orders/O1", map[string]any{"Qty": 1}},
		{http.MethodDelete, "/api/orders/O1", nil},
	}

	for _, req := range requests {
		w := doRequest(r, req.method, req.path, req.body)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s %s: expected 500, got %d", req.method, req.path, w.Code)
			continue
		}
		var resp handler.ErrorResponse
		decode(w, &resp)
		if resp.Error != "Database connection failed" {
			t.Errorf("%s %s: unexpected error %q", req.method, req.path, resp.Error)
		}
	}
}
