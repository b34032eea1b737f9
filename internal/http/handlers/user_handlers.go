package handlers

import (
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/access"
	"github.com/rogerio-castellano/factory-management/internal/logger"
)

// GetUsersHandler godoc
// @Summary List database accounts with their inferred roles
// @Tags users
// @Produce json
// @Success 200 {object} UsersResult
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := accountRepo.List(r.Context())
	if err != nil {
		if unavailable(w, r, err) {
			return
		}
		logger.Error(r.Context(), err, "Failed to list accounts")
		respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	for i := range accounts {
		accounts[i].Role = string(access.DetectRole(accounts[i].Grants, schemaName))
	}
	respond(w, r, http.StatusOK, UsersResult{Users: accounts})
}

// CreateUserHandler godoc
// @Summary Create a database account with a role bundle
// @Description Existing accounts keep their password and receive the role's grants.
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "username, password and role (admin, operator or analyst)"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var body UserRequest
	if err := readJSON(w, r, &body); err != nil {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}

	req, err := access.NewRequest(body.Username, body.Password, body.Role)
	if err != nil {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := accountRepo.Execute(r.Context(), access.Statements(req, schemaName)); err != nil {
		if unavailable(w, r, err) {
			return
		}
		logger.Error(r.Context(), err, "Failed to provision account %s", req.Username)
		respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info(r.Context(), "Provisioned account %s with role %s", req.Username, req.Role)
	respond(w, r, http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("User '%s' created/updated with role '%s'", req.Username, req.Role),
	})
}
