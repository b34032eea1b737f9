package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/factory-management/internal/logger"
	"github.com/rogerio-castellano/factory-management/internal/models"
	repo "github.com/rogerio-castellano/factory-management/internal/repo"
)

// The helpers below implement the uniform CRUD contract shared by every
// entity table. Per-entity handlers only pick the repository and defaults.

func listRows[T any](w http.ResponseWriter, r *http.Request, rp repo.Repository[T], table string) {
	rows, err := rp.List(r.Context())
	if err != nil {
		if unavailable(w, r, err) {
			return
		}
		logger.Error(r.Context(), err, "Query error listing %s", table)
		rows = []T{}
	}
	respond(w, r, http.StatusOK, rows)
}

func getRow[T any](w http.ResponseWriter, r *http.Request, rp repo.Repository[T], table string) {
	row, err := rp.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if unavailable(w, r, err) {
			return
		}
		if !errors.Is(err, repo.ErrNotFound) {
			logger.Error(r.Context(), err, "Query error reading %s", table)
		}
		respond(w, r, http.StatusNotFound, struct{}{})
		return
	}
	respond(w, r, http.StatusOK, row)
}

func createRow[T any](w http.ResponseWriter, r *http.Request, rp repo.Repository[T], table string, defaults func(*T)) {
	var row T
	if err := readJSON(w, r, &row); err != nil {
		respond(w, r, http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}
	if defaults != nil {
		defaults(&row)
	}

	if err := rp.Create(r.Context(), row); err != nil {
		storageFailure(w, r, err, "Insert error on %s", table)
		return
	}
	respond(w, r, http.StatusCreated, MessageResponse{Message: "Created"})
}

func updateRow[T any](w http.ResponseWriter, r *http.Request, rp repo.Repository[T], table string) {
	var row T
	if err := readJSON(w, r, &row); err != nil {
		respond(w, r, http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	if err := rp.Update(r.Context(), chi.URLParam(r, "id"), row); err != nil {
		storageFailure(w, r, err, "Update error on %s", table)
		return
	}
	respond(w, r, http.StatusOK, MessageResponse{Message: "Updated"})
}

func deleteRow[T any](w http.ResponseWriter, r *http.Request, rp repo.Repository[T], table string) {
	if err := rp.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		storageFailure(w, r, err, "Delete error on %s", table)
		return
	}
	respond(w, r, http.StatusOK, MessageResponse{Message: "Deleted"})
}

// storageFailure answers a rejected write with the driver's message.
func storageFailure(w http.ResponseWriter, r *http.Request, err error, msg string, args ...any) {
	if unavailable(w, r, err) {
		return
	}
	logger.Error(r.Context(), err, msg, args...)
	respond(w, r, http.StatusBadRequest, MessageResponse{Message: err.Error()})
}

// orDefault sets f to value when f is NULL.
func orDefault(f *models.NullString, value string) {
	if !f.Valid {
		*f = models.NewNullString(value)
	}
}
