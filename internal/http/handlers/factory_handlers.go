package handlers

import "net/http"

// GetFactoriesHandler godoc
// @Summary List all factories
// @Tags factories
// @Produce json
// @Success 200 {array} models.Factory
// @Failure 500 {object} ErrorResponse
// @Router /factories [get]
func GetFactoriesHandler(w http.ResponseWriter, r *http.Request) {
	listRows(w, r, factoryRepo, "FACTORY")
}

// GetFactoryByIDHandler godoc
// @Summary Get a factory by ID
// @Tags factories
// @Produce json
// @Param id path string true "Factory ID (F_ID)"
// @Success 200 {object} models.Factory
// @Failure 404 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /factories/{id} [get]
func GetFactoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	getRow(w, r, factoryRepo, "FACTORY")
}

// CreateFactoryHandler godoc
// @Summary Create a factory
// @Tags factories
// @Accept json
// @Produce json
// @Param factory body models.Factory true "Factory to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /factories [post]
func CreateFactoryHandler(w http.ResponseWriter, r *http.Request) {
	createRow(w, r, factoryRepo, "FACTORY", nil)
}

// UpdateFactoryHandler godoc
// @Summary Replace every column of a factory
// @Description Absent fields are stored as NULL. Updating a missing row succeeds.
// @Tags factories
// @Accept json
// @Produce json
// @Param id path string true "Factory ID (F_ID)"
// @Param factory body models.Factory true "Replacement row"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /factories/{id} [put]
func UpdateFactoryHandler(w http.ResponseWriter, r *http.Request) {
	updateRow(w, r, factoryRepo, "FACTORY")
}

// DeleteFactoryHandler godoc
// @Summary Delete a factory
// @Tags factories
// @Produce json
// @Param id path string true "Factory ID (F_ID)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /factories/{id} [delete]
func DeleteFactoryHandler(w http.ResponseWriter, r *http.Request) {
	deleteRow(w, r, factoryRepo, "FACTORY")
}
