package handlers

import "net/http"

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	listRows(w, r, productRepo, "PRODUCT")
}

// GetProductByIDHandler godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID (P_ID)"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	getRow(w, r, productRepo, "PRODUCT")
}

// CreateProductHandler godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.Product true "Product to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	createRow(w, r, productRepo, "PRODUCT", nil)
}

// UpdateProductHandler godoc
// @Summary Replace every column of a product
// @Description Absent fields are stored as NULL. Updating a missing row succeeds.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (P_ID)"
// @Param product body models.Product true "Replacement row"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	updateRow(w, r, productRepo, "PRODUCT")
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID (P_ID)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	deleteRow(w, r, productRepo, "PRODUCT")
}
