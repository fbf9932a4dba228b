package splitbill

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hishamq/yawmi/pkg/middleware"
	"github.com/hishamq/yawmi/pkg/response"
)

// Handler handles HTTP requests for split bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new split bill handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for split bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// SharedRoutes returns the public router for shared bill links
func (h *Handler) SharedRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{token}", h.GetShared)

	return r
}

// Create handles POST /splitbills
// @Summary      Create a split bill
// @Description  Create a bill with items, participants and assignments; each participant's share is computed and committed
// @Tags         splitbills
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill creation request"
// @Success      201 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /splitbills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Title == "" || len(req.Items) == 0 || len(req.Participants) == 0 {
		response.BadRequest(w, "Title, items and participants are required")
		return
	}
	if req.TaxAmount < 0 || req.ServiceAmount < 0 || req.TipAmount < 0 {
		response.BadRequest(w, "Extra charges cannot be negative")
		return
	}
	for _, item := range req.Items {
		if item.Quantity < 1 || item.UnitPrice < 0 || item.TotalPrice < 0 {
			response.BadRequest(w, "Item quantities must be positive and prices non-negative")
			return
		}
	}

	bill, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrUnassignedItems) || errors.Is(err, ErrUnknownAssignee) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create bill")
		return
	}

	response.JSON(w, http.StatusCreated, bill)
}

// List handles GET /splitbills
// @Summary      List split bills
// @Tags         splitbills
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]BillListItem}
// @Security     BearerAuth
// @Router       /splitbills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	bills, total, err := h.service.List(r.Context(), userID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list bills")
		return
	}

	resp := make([]*BillListItem, len(bills))
	for i, b := range bills {
		resp[i] = b.ToListItem()
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	response.JSONWithMeta(w, http.StatusOK, resp, &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}

// GetByID handles GET /splitbills/{id}
// @Summary      Get a split bill
// @Description  Get a bill with items, assignments and computed per-participant summaries
// @Tags         splitbills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /splitbills/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	bill, err := h.service.GetByID(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get bill")
		return
	}

	response.JSON(w, http.StatusOK, bill)
}

// GetShared handles GET /splitbills/shared/{token}
// @Summary      View a shared bill
// @Description  Public read-only view of a bill by its share token
// @Tags         splitbills
// @Produce      json
// @Param        token path string true "Share token"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /splitbills/shared/{token} [get]
func (h *Handler) GetShared(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	bill, err := h.service.GetShared(r.Context(), token)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get bill")
		return
	}

	response.JSON(w, http.StatusOK, bill)
}

// Delete handles DELETE /splitbills/{id}
// @Summary      Delete a split bill
// @Tags         splitbills
// @Param        id path int true "Bill ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /splitbills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete bill")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
