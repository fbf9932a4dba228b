package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hishamq/yawmi/pkg/middleware"
	"github.com/hishamq/yawmi/pkg/response"
)

// Handler handles HTTP requests for schedule operations
type Handler struct {
	service *Service
}

// NewHandler creates a new schedule handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for schedule endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/recurring", h.CreateRecurring)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /schedule
// @Summary      Create a schedule event
// @Description  Create a single calendar event
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        request body CreateEventRequest true "Event creation request"
// @Success      201 {object} response.APIResponse{data=EventResponse}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /schedule [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" {
		response.BadRequest(w, "Title is required")
		return
	}

	event, err := h.service.CreateEvent(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.BadRequest(w, err.Error())
			return
		}
		response.BadRequest(w, "Invalid event payload")
		return
	}

	response.JSON(w, http.StatusCreated, event.ToResponse())
}

// CreateRecurring handles POST /schedule/recurring
// @Summary      Create weekly recurring events
// @Description  Create one event per week on the start date's weekday, up to and including the repeat_until date. Creation is best-effort: failures are counted, not rolled back.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        request body CreateRecurringRequest true "Recurring creation request"
// @Success      201 {object} response.APIResponse{data=RecurringResponse}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /schedule/recurring [post]
func (h *Handler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" {
		response.BadRequest(w, "Title is required")
		return
	}

	result, err := h.service.CreateRecurring(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyWindow), errors.Is(err, ErrInvalidCategory):
			response.BadRequest(w, err.Error())
		default:
			response.BadRequest(w, "Invalid recurring payload")
		}
		return
	}

	resp := &RecurringResponse{
		Created: make([]*EventResponse, len(result.Created)),
		Failed:  result.Failed,
	}
	for i, e := range result.Created {
		resp.Created[i] = e.ToResponse()
	}

	response.JSON(w, http.StatusCreated, resp)
}

// List handles GET /schedule?from=&to=
// @Summary      List schedule events
// @Description  Get the user's events within a date range (defaults to the current week)
// @Tags         schedule
// @Produce      json
// @Param        from query string false "Range start (YYYY-MM-DD)"
// @Param        to query string false "Range end, exclusive (YYYY-MM-DD)"
// @Success      200 {object} response.APIResponse{data=[]EventResponse}
// @Security     BearerAuth
// @Router       /schedule [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -int(now.Weekday()))
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid from date")
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Invalid to date")
			return
		}
		to = parsed
	}

	events, err := h.service.ListByRange(r.Context(), userID, from, to)
	if err != nil {
		response.InternalError(w, "Failed to list events")
		return
	}

	resp := make([]*EventResponse, len(events))
	for i, e := range events {
		resp[i] = e.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetByID handles GET /schedule/{id}
// @Summary      Get event by ID
// @Tags         schedule
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200 {object} response.APIResponse{data=EventResponse}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /schedule/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	event, err := h.service.GetByID(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get event")
		return
	}

	response.JSON(w, http.StatusOK, event.ToResponse())
}

// Update handles PATCH /schedule/{id}
// @Summary      Update an event
// @Description  Update a single event; recurring siblings are not affected
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        id path int true "Event ID"
// @Param        request body UpdateEventRequest true "Event update request"
// @Success      200 {object} response.APIResponse{data=EventResponse}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /schedule/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	event, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidCategory):
			response.BadRequest(w, err.Error())
		default:
			response.BadRequest(w, "Invalid event payload")
		}
		return
	}

	response.JSON(w, http.StatusOK, event.ToResponse())
}

// Delete handles DELETE /schedule/{id}
// @Summary      Delete an event
// @Description  Delete a single event; recurring siblings are not affected
// @Tags         schedule
// @Param        id path int true "Event ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /schedule/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
