package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"harbor-tasks-backend/internal/apperr"
)

// SuggestAllHandler handles POST /generate-suggested-courses.
func SuggestAllHandler(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := g.SuggestCoursesForAll(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Suggested courses generated and updated for all employees.",
		})
	}
}

// SuggestOneHandler handles POST /generate-course-for/{employee_id}.
func SuggestOneHandler(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := mux.Vars(r)["employee_id"]

		ids, err := g.SuggestCoursesFor(r.Context(), employeeID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":           fmt.Sprintf("Suggested courses generated and updated for employee %s.", employeeID),
			"suggested_courses": ids,
		})
	}
}

// BulkTasksHandler handles POST /generate-tasks-for-all.
func BulkTasksHandler(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := g.TasksForAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// RandomTaskHandler handles POST /generate-random-task/{employee_id}.
func RandomTaskHandler(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := g.RandomTaskFor(r.Context(), mux.Vars(r)["employee_id"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"generated_task": task})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the pipeline's typed errors to response statuses.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	var notFound *apperr.NotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var noPartner *apperr.NoPartner
	if errors.As(err, &noPartner) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
