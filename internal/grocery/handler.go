package grocery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hishamq/yawmi/pkg/middleware"
	"github.com/hishamq/yawmi/pkg/response"
)

// Handler handles HTTP requests for grocery list operations
type Handler struct {
	service *Service
}

// NewHandler creates a new grocery handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for grocery endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Patch("/{id}", h.Update)
	r.Post("/{id}/check", h.Check)
	r.Post("/{id}/uncheck", h.Uncheck)
	r.Delete("/checked", h.ClearChecked)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /grocery
// @Summary      Add a grocery item
// @Tags         grocery
// @Accept       json
// @Produce      json
// @Param        request body CreateItemRequest true "Item creation request"
// @Success      201 {object} response.APIResponse{data=Item}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /grocery [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Name is required")
		return
	}

	item, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalError(w, "Failed to add item")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

// List handles GET /grocery
// @Summary      List grocery items
// @Tags         grocery
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Item}
// @Security     BearerAuth
// @Router       /grocery [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list items")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// Update handles PATCH /grocery/{id}
// @Summary      Update a grocery item
// @Tags         grocery
// @Accept       json
// @Produce      json
// @Param        id path int true "Item ID"
// @Param        request body UpdateItemRequest true "Item update request"
// @Success      200 {object} response.APIResponse{data=Item}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /grocery/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item ID")
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update item")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// Check handles POST /grocery/{id}/check
// @Summary      Mark an item as bought
// @Tags         grocery
// @Produce      json
// @Param        id path int true "Item ID"
// @Success      200 {object} response.APIResponse{data=Item}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /grocery/{id}/check [post]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	h.setChecked(w, r, true)
}

// Uncheck handles POST /grocery/{id}/uncheck
// @Summary      Mark an item as not bought
// @Tags         grocery
// @Produce      json
// @Param        id path int true "Item ID"
// @Success      200 {object} response.APIResponse{data=Item}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /grocery/{id}/uncheck [post]
func (h *Handler) Uncheck(w http.ResponseWriter, r *http.Request) {
	h.setChecked(w, r, false)
}

func (h *Handler) setChecked(w http.ResponseWriter, r *http.Request, checked bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item ID")
		return
	}

	item, err := h.service.SetChecked(r.Context(), id, userID, checked)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update item")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// ClearChecked handles DELETE /grocery/checked
// @Summary      Remove all bought items
// @Tags         grocery
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /grocery/checked [delete]
func (h *Handler) ClearChecked(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	removed, err := h.service.ClearChecked(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to clear checked items")
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"removed": removed})
}

// Delete handles DELETE /grocery/{id}
// @Summary      Delete a grocery item
// @Tags         grocery
// @Param        id path int true "Item ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /grocery/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid item ID")
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
