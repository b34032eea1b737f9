package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/logger"
)

const (
	joinDescription      = "Complex multi-table JOIN showing employee details enriched with department information, salary, and production order involvement. Uses LEFT JOINs to include employees without department assignments."
	nestedDescription    = "Nested subquery that identifies all production orders with quantities above the average. Useful for identifying high-volume orders and production priorities."
	aggregateDescription = "Aggregate function that counts the total number of production orders in the system. Demonstrates COUNT aggregation for summary statistics."
)

// JoinQueryHandler godoc
// @Summary Employee report joined with departments and orders
// @Tags analytics
// @Produce json
// @Success 200 {object} Envelope{data=[]models.EmployeeReportRow}
// @Failure 500 {object} ErrorResponse
// @Router /analytics/join-query [get]
func JoinQueryHandler(w http.ResponseWriter, r *http.Request) {
	var data any
	report, err := analyticsRepo.EmployeeReport(r.Context())
	switch {
	case unavailable(w, r, err):
		return
	case err != nil:
		logger.Error(r.Context(), err, "Query error on join report")
		data = []any{}
	default:
		data = report
	}
	respond(w, r, http.StatusOK, Envelope{QueryType: "JOIN", Description: joinDescription, Data: data})
}

// NestedQueryHandler godoc
// @Summary Production orders above the average quantity
// @Tags analytics
// @Produce json
// @Success 200 {object} Envelope{data=[]models.ProductionOrder}
// @Failure 500 {object} ErrorResponse
// @Router /analytics/nested-query [get]
func NestedQueryHandler(w http.ResponseWriter, r *http.Request) {
	var data any
	orders, err := analyticsRepo.OrdersAboveAverage(r.Context())
	switch {
	case unavailable(w, r, err):
		return
	case err != nil:
		logger.Error(r.Context(), err, "Query error on nested report")
		data = []any{}
	default:
		data = orders
	}
	respond(w, r, http.StatusOK, Envelope{QueryType: "NESTED", Description: nestedDescription, Data: data})
}

// AggregateQueryHandler godoc
// @Summary Total number of production orders
// @Tags analytics
// @Produce json
// @Success 200 {object} Envelope{data=models.OrderCount}
// @Failure 500 {object} ErrorResponse
// @Router /analytics/aggregate-query [get]
func AggregateQueryHandler(w http.ResponseWriter, r *http.Request) {
	var data any
	count, err := analyticsRepo.CountOrders(r.Context())
	switch {
	case unavailable(w, r, err):
		return
	case err != nil:
		logger.Error(r.Context(), err, "Query error on aggregate report")
		data = struct{}{}
	default:
		data = count
	}
	respond(w, r, http.StatusOK, Envelope{QueryType: "AGGREGATE", Description: aggregateDescription, Data: data})
}

// ListTriggersHandler godoc
// @Summary Placeholder trigger listing
// @Tags analytics
// @Produce json
// @Success 200 {object} TriggerList
// @Router /analytics/triggers [get]
func ListTriggersHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, TriggerList{Triggers: []NamedObject{{Name: "trigger1"}}})
}

// ListFunctionsHandler godoc
// @Summary Placeholder function listing
// @Tags analytics
// @Produce json
// @Success 200 {object} FunctionList
// @Router /analytics/functions [get]
func ListFunctionsHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, FunctionList{Functions: []NamedObject{{Name: "func1"}}})
}

// ListProceduresHandler godoc
// @Summary Placeholder procedure listing
// @Tags analytics
// @Produce json
// @Success 200 {object} ProcedureList
// @Router /analytics/procedures [get]
func ListProceduresHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, ProcedureList{Procedures: []NamedObject{{Name: "proc1"}}})
}

// HealthHandler godoc
// @Summary Database connectivity probe
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} StatusResponse
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := healthRepo.Ping(r.Context()); err != nil {
		logger.Error(r.Context(), err, "Health check failed")
		respond(w, r, http.StatusInternalServerError, StatusResponse{Status: "ERROR"})
		return
	}
	respond(w, r, http.StatusOK, StatusResponse{Status: "OK"})
}
