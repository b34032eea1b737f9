package handlers

import (
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/logger"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

// TriggerID, FunctionID and ProcedureID name the database objects a client
// may invoke. Each is a closed set: ids missing from the tables below are
// answered with 404.
type (
	TriggerID   string
	FunctionID  string
	ProcedureID string
)

const (
	OrderStatusUpdate TriggerID = "order_status_update"
	EmailUnique       TriggerID = "email_unique"

	DepartmentByEmployee FunctionID = "get_dept_by_emp"
	TotalQtyByProduct    FunctionID = "total_qty_by_product"

	AssignMachine  ProcedureID = "assign_machine"
	UpdatePriority ProcedureID = "update_priority"
)

type (
	triggerFunc   func(w http.ResponseWriter, r *http.Request)
	functionFunc  func(w http.ResponseWriter, r *http.Request, inputs []string)
	procedureFunc func(w http.ResponseWriter, r *http.Request, inputs []string)
)

var (
	triggers = map[TriggerID]triggerFunc{
		OrderStatusUpdate: runOrderStatusUpdate,
		EmailUnique:       runEmailUnique,
	}
	functions = map[FunctionID]functionFunc{
		DepartmentByEmployee: runDepartmentByEmployee,
		TotalQtyByProduct:    runTotalQtyByProduct,
	}
	procedures = map[ProcedureID]procedureFunc{
		AssignMachine:  runAssignMachine,
		UpdatePriority: runUpdatePriority,
	}
)

// ExecuteTriggerHandler godoc
// @Summary Validate a database trigger
// @Description Runs the read that shows whether the trigger's rule currently holds.
// @Tags db-objects
// @Accept json
// @Produce json
// @Param request body TriggerRequest true "order_status_update or email_unique"
// @Success 200 {object} OverdueOrdersResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /db-objects/triggers [post]
func ExecuteTriggerHandler(w http.ResponseWriter, r *http.Request) {
	var req TriggerRequest
	if err := readJSON(w, r, &req); err != nil {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}

	run, ok := triggers[TriggerID(req.TriggerID)]
	if !ok {
		respond(w, r, http.StatusNotFound, ErrorResponse{Error: "Unknown trigger"})
		return
	}
	run(w, r)
}

func runOrderStatusUpdate(w http.ResponseWriter, r *http.Request) {
	orders, err := routineRepo.OverdueOrders(r.Context())
	if unavailable(w, r, err) {
		return
	}
	if err != nil {
		logger.Error(r.Context(), err, "Query error on overdue orders")
		orders = []models.ProductionOrder{}
	}
	respond(w, r, http.StatusOK, OverdueOrdersResult{
		Message:        "Order status update trigger validated",
		AffectedOrders: orders,
	})
}

func runEmailUnique(w http.ResponseWriter, r *http.Request) {
	emails, err := routineRepo.DuplicateEmails(r.Context())
	if unavailable(w, r, err) {
		return
	}
	if err != nil {
		logger.Error(r.Context(), err, "Query error on duplicate emails")
		emails = []models.DuplicateEmail{}
	}
	respond(w, r, http.StatusOK, DuplicateEmailsResult{
		Message:         "Email uniqueness trigger validated",
		DuplicateEmails: emails,
	})
}

// ExecuteFunctionHandler godoc
// @Summary Call a scalar database function
// @Tags db-objects
// @Accept json
// @Produce json
// @Param request body FunctionRequest true "get_dept_by_emp or total_qty_by_product with one input"
// @Success 200 {object} FunctionResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /db-objects/functions [post]
func ExecuteFunctionHandler(w http.ResponseWriter, r *http.Request) {
	var req FunctionRequest
	if err := readJSON(w, r, &req); err != nil {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}

	run, ok := functions[FunctionID(req.FunctionID)]
	if !ok {
		respond(w, r, http.StatusNotFound, ErrorResponse{Error: "Unknown function"})
		return
	}
	run(w, r, inputStrings(req.Inputs))
}

func runDepartmentByEmployee(w http.ResponseWriter, r *http.Request, inputs []string) {
	if len(inputs) == 0 || inputs[0] == "" {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "Employee ID required"})
		return
	}

	res := FunctionResult{Function: "get_department_by_emp", Input: inputs[0]}
	dept, err := routineRepo.DepartmentByEmployee(r.Context(), inputs[0])
	if unavailable(w, r, err) {
		return
	}
	if err != nil {
		logger.Error(r.Context(), err, "Function error on get_department_by_emp")
	} else {
		res.Result = dept
	}
	respond(w, r, http.StatusOK, res)
}

func runTotalQtyByProduct(w http.ResponseWriter, r *http.Request, inputs []string) {
	if len(inputs) == 0 || inputs[0] == "" {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "Product ID required"})
		return
	}

	res := FunctionResult{Function: "total_qty_by_product", Input: inputs[0]}
	qty, err := routineRepo.TotalQuantityByProduct(r.Context(), inputs[0])
	if unavailable(w, r, err) {
		return
	}
	if err != nil {
		logger.Error(r.Context(), err, "Function error on total_qty_by_product")
	} else {
		res.Result = qty
	}
	respond(w, r, http.StatusOK, res)
}

// ExecuteProcedureHandler godoc
// @Summary Call a stored procedure
// @Description The call is committed before the response is written.
// @Tags db-objects
// @Accept json
// @Produce json
// @Param request body ProcedureRequest true "assign_machine with [machine, factory] or update_priority"
// @Success 200 {object} ProcedureResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /db-objects/procedures [post]
func ExecuteProcedureHandler(w http.ResponseWriter, r *http.Request) {
	var req ProcedureRequest
	if err := readJSON(w, r, &req); err != nil {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}

	run, ok := procedures[ProcedureID(req.ProcedureID)]
	if !ok {
		respond(w, r, http.StatusNotFound, ErrorResponse{Error: "Unknown procedure"})
		return
	}
	run(w, r, inputStrings(req.Inputs))
}

func runAssignMachine(w http.ResponseWriter, r *http.Request, inputs []string) {
	if len(inputs) < 2 {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "Machine ID and Factory ID required"})
		return
	}
	machineID, factoryID := inputs[0], inputs[1]

	if err := routineRepo.AssignMachineToFactory(r.Context(), machineID, factoryID); err != nil {
		procedureFailure(w, r, err, "assign_machine_to_factory")
		return
	}
	respond(w, r, http.StatusOK, ProcedureResult{
		Message:   fmt.Sprintf("Machine %s assigned to factory %s", machineID, factoryID),
		Procedure: "assign_machine_to_factory",
	})
}

func runUpdatePriority(w http.ResponseWriter, r *http.Request, _ []string) {
	sample, err := routineRepo.UpdatePriorityByQuantity(r.Context())
	if err != nil {
		procedureFailure(w, r, err, "update_priority_based_on_qty")
		return
	}
	if sample == nil {
		sample = []models.OrderPriority{}
	}
	respond(w, r, http.StatusOK, PriorityUpdateResult{
		Message:       "Production order priorities updated based on quantity",
		Procedure:     "update_priority_based_on_qty",
		SampleResults: sample,
	})
}

// inputStrings flattens routine inputs to text. A JSON null becomes "".
func inputStrings(inputs []models.NullString) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = in.String
	}
	return out
}

func procedureFailure(w http.ResponseWriter, r *http.Request, err error, procedure string) {
	if unavailable(w, r, err) {
		return
	}
	logger.Error(r.Context(), err, "Procedure %s failed", procedure)
	respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
