package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/models"
)

func machineDefaults(m *models.Machine) {
	orDefault(&m.Status, "Working")
}

// GetMachinesHandler godoc
// @Summary List all machines
// @Tags machines
// @Produce json
// @Success 200 {array} models.Machine
// @Failure 500 {object} ErrorResponse
// @Router /machines [get]
func GetMachinesHandler(w http.ResponseWriter, r *http.Request) {
	listRows(w, r, machineRepo, "MACHINE")
}

// GetMachineByIDHandler godoc
// @Summary Get a machine by ID
// @Tags machines
// @Produce json
// @Param id path string true "Machine ID (M_ID)"
// @Success 200 {object} models.Machine
// @Failure 404 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /machines/{id} [get]
func GetMachineByIDHandler(w http.ResponseWriter, r *http.Request) {
	getRow(w, r, machineRepo, "MACHINE")
}

// CreateMachineHandler godoc
// @Summary Create a machine
// @Description Status defaults to Working.
// @Tags machines
// @Accept json
// @Produce json
// @Param machine body models.Machine true "Machine to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /machines [post]
func CreateMachineHandler(w http.ResponseWriter, r *http.Request) {
	createRow(w, r, machineRepo, "MACHINE", machineDefaults)
}

// UpdateMachineHandler godoc
// @Summary Replace every column of a machine
// @Description Absent fields are stored as NULL. Updating a missing row succeeds.
// @Tags machines
// @Accept json
// @Produce json
// @Param id path string true "Machine ID (M_ID)"
// @Param machine body models.Machine true "Replacement row"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /machines/{id} [put]
func UpdateMachineHandler(w http.ResponseWriter, r *http.Request) {
	updateRow(w, r, machineRepo, "MACHINE")
}

// DeleteMachineHandler godoc
// @Summary Delete a machine
// @Tags machines
// @Produce json
// @Param id path string true "Machine ID (M_ID)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /machines/{id} [delete]
func DeleteMachineHandler(w http.ResponseWriter, r *http.Request) {
	deleteRow(w, r, machineRepo, "MACHINE")
}
