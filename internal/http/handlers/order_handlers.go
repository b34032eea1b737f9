package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/models"
)

func orderDefaults(o *models.ProductionOrder) {
	orDefault(&o.Priority, "Medium")
	orDefault(&o.Status, "Pending")
}

// GetOrdersHandler godoc
// @Summary List all production orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.ProductionOrder
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	listRows(w, r, orderRepo, "PRODUCTION_ORDER")
}

// GetOrderByIDHandler godoc
// @Summary Get a production order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (Order_ID)"
// @Success 200 {object} models.ProductionOrder
// @Failure 404 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	getRow(w, r, orderRepo, "PRODUCTION_ORDER")
}

// CreateOrderHandler godoc
// @Summary Create a production order
// @Description Priority defaults to Medium and Status to Pending.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.ProductionOrder true "Order to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	createRow(w, r, orderRepo, "PRODUCTION_ORDER", orderDefaults)
}

// UpdateOrderHandler godoc
// @Summary Replace every column of a production order
// @Description Absent fields are stored as NULL. Updating a missing row succeeds.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (Order_ID)"
// @Param order body models.ProductionOrder true "Replacement row"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders/{id} [put]
func UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	updateRow(w, r, orderRepo, "PRODUCTION_ORDER")
}

// DeleteOrderHandler godoc
// @Summary Delete a production order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID (Order_ID)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	deleteRow(w, r, orderRepo, "PRODUCTION_ORDER")
}
