package handlers

import "github.com/rogerio-castellano/factory-management/internal/models"

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// Envelope wraps every analytics report.
type Envelope struct {
	QueryType   string `json:"query_type"`
	Description string `json:"description"`
	Data        any    `json:"data"`
}

type NamedObject struct {
	Name string `json:"name"`
}

type TriggerList struct {
	Triggers []NamedObject `json:"triggers"`
}

type FunctionList struct {
	Functions []NamedObject `json:"functions"`
}

type ProcedureList struct {
	Procedures []NamedObject `json:"procedures"`
}

type TriggerRequest struct {
	TriggerID string `json:"triggerId"`
}

type FunctionRequest struct {
	FunctionID string              `json:"functionId"`
	Inputs     []models.NullString `json:"inputs"`
}

type ProcedureRequest struct {
	ProcedureID string              `json:"procedureId"`
	Inputs      []models.NullString `json:"inputs"`
}

type OverdueOrdersResult struct {
	Message        string                   `json:"message"`
	AffectedOrders []models.ProductionOrder `json:"affected_orders"`
}

type DuplicateEmailsResult struct {
	Message         string                  `json:"message"`
	DuplicateEmails []models.DuplicateEmail `json:"duplicate_emails"`
}

// FunctionResult carries a scalar function's output; Result is null when
// the call failed.
type FunctionResult struct {
	Function string `json:"function"`
	Input    string `json:"input"`
	Result   any    `json:"result"`
}

type ProcedureResult struct {
	Message   string `json:"message"`
	Procedure string `json:"procedure"`
}

// PriorityUpdateResult adds the ten largest orders, each as
// [Order_ID, Qty, Priority].
type PriorityUpdateResult struct {
	Message       string                 `json:"message"`
	Procedure     string                 `json:"procedure"`
	SampleResults []models.OrderPriority `json:"sample_results"`
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UsersResult struct {
	Users []models.Account `json:"users"`
}
