package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/models"
)

func employeeDefaults(e *models.Employee) {
	orDefault(&e.Position, "Engineer")
	orDefault(&e.Category, "Technical")
}

// GetEmployeesHandler godoc
// @Summary List all employees
// @Tags employees
// @Produce json
// @Success 200 {array} models.Employee
// @Failure 500 {object} ErrorResponse
// @Router /employees [get]
func GetEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	listRows(w, r, employeeRepo, "EMPLOYEE")
}

// GetEmployeeByIDHandler godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (E_ID)"
// @Success 200 {object} models.Employee
// @Failure 404 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /employees/{id} [get]
func GetEmployeeByIDHandler(w http.ResponseWriter, r *http.Request) {
	getRow(w, r, employeeRepo, "EMPLOYEE")
}

// CreateEmployeeHandler godoc
// @Summary Create an employee
// @Description Position defaults to Engineer and Category to Technical.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body models.Employee true "Employee to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees [post]
func CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	createRow(w, r, employeeRepo, "EMPLOYEE", employeeDefaults)
}

// UpdateEmployeeHandler godoc
// @Summary Replace every column of an employee
// @Description Absent fields are stored as NULL. Updating a missing row succeeds.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (E_ID)"
// @Param employee body models.Employee true "Replacement row"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{id} [put]
func UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	updateRow(w, r, employeeRepo, "EMPLOYEE")
}

// DeleteEmployeeHandler godoc
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (E_ID)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{id} [delete]
func DeleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	deleteRow(w, r, employeeRepo, "EMPLOYEE")
}
