package handlers_test_suite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/factory-management/internal/http"
	handler "github.com/rogerio-castellano/factory-management/internal/http/handlers"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

type functionResponse struct {
	Function string          `json:"function"`
	Input    string          `json:"input"`
	Result   json.RawMessage `json:"result"`
}

type priorityResponse struct {
	Message       string  `json:"message"`
	Procedure     string  `json:"procedure"`
	SampleResults [][]any `json:"sample_results"`
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("expected status %d, got %d: %s", code, w.Code, w.Body.String())
	}
	var resp handler.ErrorResponse
	if err := decode(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Error != message {
		t.Errorf("expected error %q, got %q", message, resp.Error)
	}
}

func TestDBObjectHandlers_UnknownIDs(t *testing.T) {
	r := api.NewRouter()

	expectError(t, doRequest(r, http.MethodPost, "/api/db-objects/triggers", handler.TriggerRequest{TriggerID: "drop_all"}), http.StatusNotFound, "Unknown trigger")
	expectError(t, doRequest(r, http.MethodPost, "/api/db-objects/functions", handler.FunctionRequest{FunctionID: "sleep"}), http.StatusNotFound, "Unknown function")
	expectError(t, doRequest(r, http.MethodPost, "/api/db-objects/procedures", handler.ProcedureRequest{ProcedureID: ""}), http.StatusNotFound, "Unknown procedure")
}

func TestDBObjectHandlers_InvalidBody(t *testing.T) {
	r := api.NewRouter()

	for _, path := range []string{"/api/db-objects/triggers", "/api/db-objects/functions", "/api/db-objects/procedures"} {
		expectError(t, doRequest(r, http.MethodPost, path, "not json"), http.StatusBadRequest, "invalid input")
	}
}

func TestDBObjectHandlers_Options(t *testing.T) {
	r := api.NewRouter()

	for _, path := range []string{"/api/db-objects/triggers", "/api/db-objects/functions", "/api/db-objects/procedures", "/api/users"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("%s: expected 204 No Content, got %d", path, w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("%s: expected empty body, got %q", path, w.Body.String())
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("%s: expected CORS origin *, got %q", path, got)
		}
	}
}

func TestExecuteTriggerHandler_OrderStatusUpdate(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	addOrder("O1", "2025-05-01", "Completed", 10)
	addOrder("O2", "2025-05-15", "Pending", 10)
	addOrder("O3", "2025-07-01", "Pending", 10)

	w := doRequest(r, http.MethodPost, "/api/db-objects/triggers", handler.TriggerRequest{TriggerID: "order_status_update"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.OverdueOrdersResult
	if err := decode(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "Order status update trigger validated" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if len(resp.AffectedOrders) != 1 || resp.AffectedOrders[0].ID.String != "O2" {
		t.Errorf("expected only overdue order O2, got %+v", resp.AffectedOrders)
	}
}

func TestExecuteTriggerHandler_EmailUnique(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRequest(r, http.MethodPost, "/api/db-objects/triggers", handler.TriggerRequest{TriggerID: "email_unique"})
	if !strings.Contains(w.Body.String(), `"duplicate_emails":[]`) {
		t.Errorf("expected empty duplicate list, got %s", w.Body.String())
	}

	ctx := context.Background()
	employeeRepo.Create(ctx, models.Employee{ID: str("E1"), Email: str("ops@factory.io")})
	employeeRepo.Create(ctx, models.Employee{ID: str("E2"), Email: str("OPS@factory.io")})

	w = doRequest(r, http.MethodPost, "/api/db-objects/triggers", handler.TriggerRequest{TriggerID: "email_unique"})
	var resp handler.DuplicateEmailsResult
	if err := decode(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "Email uniqueness trigger validated" || len(resp.DuplicateEmails) != 1 {
		t.Errorf("expected one duplicate email, got %+v", resp)
	}
}

func TestExecuteFunctionHandler_RequiresInput(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name    string
		req     handler.FunctionRequest
		message string
	}{
		{"no inputs", handler.FunctionRequest{FunctionID: "get_dept_by_emp"}, "Employee ID required"},
		{"empty input", handler.FunctionRequest{FunctionID: "get_dept_by_emp", Inputs: inputs("")}, "Employee ID required"},
		{"no product", handler.FunctionRequest{FunctionID: "total_qty_by_product", Inputs: inputs()}, "Product ID required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, doRequest(r, http.MethodPost, "/api/db-objects/functions", tt.req), http.StatusBadRequest, tt.message)
		})
	}
}

func TestExecuteFunctionHandler_DepartmentByEmployee(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	departmentRepo.Create(context.Background(), models.Department{ID: str("D1"), Name: str("Assembly")})
	employments.Add(models.Employment{EmployeeID: "E1", DepartmentID: "D1"})

	w := doRequest(r, http.MethodPost, "/api/db-objects/functions", handler.FunctionRequest{FunctionID: "get_dept_by_emp", Inputs: inputs("E1")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp functionResponse
	if err := decode(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Function != "get_department_by_emp" || resp.Input != "E1" {
		t.Errorf("unexpected function header: %+v", resp)
	}
	if string(resp.Result) != `{"department_name":"Assembly"}` {
		t.Errorf("unexpected result %s", resp.Result)
	}
}

func TestDBObjectHandlers_NumericInputs(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	ctx := context.Background()
	departmentRepo.Create(ctx, models.Department{ID: str("D1"), Name: str("Assembly")})
	employments.Add(models.Employment{EmployeeID: "101", DepartmentID: "D1"})
	machineRepo.Create(ctx, models.Machine{ID: str("7")})
	factoryRepo.Create(ctx, models.Factory{ID: str("3")})

	w := doRequest(r, http.MethodPost, "/api/db-objects/functions", `{"functionId":"get_dept_by_emp","inputs":[101]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp functionResponse
	if err := decode(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Input != "101" || string(resp.Result) != `{"department_name":"Assembly"}` {
		t.Errorf("unexpected response %+v (%s)", resp, resp.Result)
	}

	w = doRequest(r, http.MethodPost, "/api/db-objects/procedures", `{"procedureId":"assign_machine","inputs":[7,3]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if f, ok := routineRepo.FactoryOf("7"); !ok || f != "3" {
		t.Errorf("expected machine 7 to be assigned to factory 3, got %q", f)
	}

	expectError(t, doRequest(r, http.MethodPost, "/api/db-objects/functions", `{"functionId":"get_dept_by_emp","inputs":[true]}`),
		http.StatusBadRequest, "invalid input")
}

func TestExecuteFunctionHandler_TotalQtyByProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	addOrder("O1", "2030-01-01", "Pending", 30)
	addOrder("O2", "2030-01-01", "Pending", 45)
	addOrder("O3", "2030-01-01", "Pending", 100)
	routineRepo.LinkOrderProduct("O1", "P1")
	routineRepo.LinkOrderProduct("O2", "P1")
	routineRepo.LinkOrderProduct("O3", "P2")

	w := doRequest(r, http.MethodPost, "/api/db-objects/functions", handler.FunctionRequest{FunctionID: "total_qty_by_product", Inputs: inputs("P1")})
	var resp functionResponse
	if err := decode(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Function != "total_qty_by_product" || string(resp.Result) != `{"total_quantity":"75"}` {
		t.Errorf("unexpected response %+v (%s)", resp, resp.Result)
	}
}

func TestExecuteProcedureHandler_AssignMachine(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	ctx := context.Background()
	machineRepo.Create(ctx, models.Machine{ID: str("M1")})
	factoryRepo.Create(ctx, models.Factory{ID: str("F1")})

	expectError(t, doRequest(r, http.MethodPost, "/api/db-objects/procedures", handler.ProcedureRequest{ProcedureID: "assign_machine", Inputs: inputs("M1")}),
		http.StatusBadRequest, "Machine ID and Factory ID required")

	w := doRequest(r, http.MethodPost, "/api/db-objects/procedures", handler.ProcedureRequest{ProcedureID: "assign_machine", Inputs: inputs("M1", "F1")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.ProcedureResult
	decode(w, &resp)
	if resp.Message != "Machine M1 assigned to factory F1" || resp.Procedure != "assign_machine_to_factory" {
		t.Errorf("unexpected response %+v", resp)
	}
	if f, ok := routineRepo.FactoryOf("M1"); !ok || f != "F1" {
		t.Errorf("expected M1 to be assigned to F1, got %q", f)
	}

	expectError(t, doRequest(r, http.MethodPost, "/api/db-objects/procedures", handler.ProcedureRequest{ProcedureID: "assign_machine", Inputs: inputs("M9", "F1")}),
		http.StatusInternalServerError, "Error 1644 (45000): Machine M9 does not exist")
}

func TestExecuteProcedureHandler_UpdatePriority(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	addOrder("O1", "2030-01-01", "Pending", 50)
	addOrder("O2", "2030-01-01", "Pending", 800)
	addOrder("O3", "2030-01-01", "Pending", 120)

	w := doRequest(r, http.MethodPost, "/api/db-objects/procedures", handler.ProcedureRequest{ProcedureID: "update_priority"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp priorityResponse
	if err := decode(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Procedure != "update_priority_based_on_qty" {
		t.Errorf("unexpected procedure %q", resp.Procedure)
	}
	if len(resp.SampleResults) != 3 {
		t.Fatalf("expected 3 sample rows, got %d", len(resp.SampleResults))
	}
	first := resp.SampleResults[0]
	if first[0] != "O2" || first[1] != float64(800) || first[2] != "High" {
		t.Errorf("expected [O2 800 High] first, got %v", first)
	}
	if last := resp.SampleResults[2]; last[2] != "Low" {
		t.Errorf("expected smallest order to be Low, got %v", last)
	}
}
