package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/models"
	"github.com/shopspring/decimal"
)

func departmentDefaults(d *models.Department) {
	if !d.Budget.Valid {
		d.Budget = decimal.NewNullDecimal(decimal.Zero)
	}
}

// GetDepartmentsHandler godoc
// @Summary List all departments
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department
// @Failure 500 {object} ErrorResponse
// @Router /departments [get]
func GetDepartmentsHandler(w http.ResponseWriter, r *http.Request) {
	listRows(w, r, departmentRepo, "DEPARTMENT")
}

// GetDepartmentByIDHandler godoc
// @Summary Get a department by ID
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (Dept_ID)"
// @Success 200 {object} models.Department
// @Failure 404 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /departments/{id} [get]
func GetDepartmentByIDHandler(w http.ResponseWriter, r *http.Request) {
	getRow(w, r, departmentRepo, "DEPARTMENT")
}

// CreateDepartmentHandler godoc
// @Summary Create a department
// @Description Budget defaults to 0.
// @Tags departments
// @Accept json
// @Produce json
// @Param department body models.Department true "Department to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /departments [post]
func CreateDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	createRow(w, r, departmentRepo, "DEPARTMENT", departmentDefaults)
}

// UpdateDepartmentHandler godoc
// @Summary Replace every column of a department
// @Description Absent fields are stored as NULL. Updating a missing row succeeds.
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (Dept_ID)"
// @Param department body models.Department true "Replacement row"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /departments/{id} [put]
func UpdateDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	updateRow(w, r, departmentRepo, "DEPARTMENT")
}

// DeleteDepartmentHandler godoc
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (Dept_ID)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /departments/{id} [delete]
func DeleteDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	deleteRow(w, r, departmentRepo, "DEPARTMENT")
}
