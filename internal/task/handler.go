package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hishamq/yawmi/pkg/middleware"
	"github.com/hishamq/yawmi/pkg/response"
)

// Handler handles HTTP requests for task operations
type Handler struct {
	service *Service
}

// NewHandler creates a new task handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for task endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Patch("/{id}", h.Update)
	r.Post("/{id}/done", h.MarkDone)
	r.Post("/{id}/undone", h.MarkUndone)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /tasks
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body CreateTaskRequest true "Task creation request"
// @Success      201 {object} response.APIResponse{data=Task}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" {
		response.BadRequest(w, "Title is required")
		return
	}

	task, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidPriority) {
			response.BadRequest(w, err.Error())
			return
		}
		response.BadRequest(w, "Invalid task payload")
		return
	}

	response.JSON(w, http.StatusCreated, task)
}

// List handles GET /tasks?done=
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        done query bool false "Filter by completion state"
// @Success      200 {object} response.APIResponse{data=[]Task}
// @Security     BearerAuth
// @Router       /tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var done *bool
	if v := r.URL.Query().Get("done"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "Invalid done filter")
			return
		}
		done = &parsed
	}

	tasks, err := h.service.List(r.Context(), userID, done)
	if err != nil {
		response.InternalError(w, "Failed to list tasks")
		return
	}

	response.JSON(w, http.StatusOK, tasks)
}

// Update handles PATCH /tasks/{id}
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path int true "Task ID"
// @Param        request body UpdateTaskRequest true "Task update request"
// @Success      200 {object} response.APIResponse{data=Task}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	task, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTaskNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidPriority):
			response.BadRequest(w, err.Error())
		default:
			response.BadRequest(w, "Invalid task payload")
		}
		return
	}

	response.JSON(w, http.StatusOK, task)
}

// MarkDone handles POST /tasks/{id}/done
// @Summary      Mark a task as done
// @Tags         tasks
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {object} response.APIResponse{data=Task}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /tasks/{id}/done [post]
func (h *Handler) MarkDone(w http.ResponseWriter, r *http.Request) {
	h.setDone(w, r, true)
}

// MarkUndone handles POST /tasks/{id}/undone
// @Summary      Mark a task as not done
// @Tags         tasks
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {object} response.APIResponse{data=Task}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /tasks/{id}/undone [post]
func (h *Handler) MarkUndone(w http.ResponseWriter, r *http.Request) {
	h.setDone(w, r, false)
}

func (h *Handler) setDone(w http.ResponseWriter, r *http.Request, done bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	task, err := h.service.SetDone(r.Context(), id, userID, done)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update task")
		return
	}

	response.JSON(w, http.StatusOK, task)
}

// Delete handles DELETE /tasks/{id}
// @Summary      Delete a task
// @Tags         tasks
// @Param        id path int true "Task ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /tasks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
