package finance

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

// Handler handles HTTP requests for finance operations
type Handler struct {
	service *Service
}

// NewHandler creates a new finance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for finance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/transactions", h.Create)
	r.Get("/transactions", h.List)
	r.Patch("/transactions/{id}", h.Update)
	r.Delete("/transactions/{id}", h.Delete)
	r.Get("/summary", h.Summary)

	return r
}

func monthParam(r *http.Request) string {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	return month
}

// Create handles POST /finance/transactions
// @Summary      Record a transaction
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body CreateTransactionRequest true "Transaction creation request"
// @Success      201 {object} response.APIResponse{data=Transaction}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /finance/transactions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Category == "" {
		response.BadRequest(w, "Category is required")
		return
	}

	tx, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidKind) || errors.Is(err, ErrInvalidAmount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.BadRequest(w, "Invalid transaction payload")
		return
	}

	response.JSON(w, http.StatusCreated, tx)
}

// List handles GET /finance/transactions?month=YYYY-MM
// @Summary      List transactions for a month
// @Tags         finance
// @Produce      json
// @Param        month query string false "Month (YYYY-MM, defaults to current)"
// @Success      200 {object} response.APIResponse{data=[]Transaction}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /finance/transactions [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	transactions, err := h.service.ListByMonth(r.Context(), userID, monthParam(r))
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list transactions")
		return
	}

	response.JSON(w, http.StatusOK, transactions)
}

// Summary handles GET /finance/summary?month=YYYY-MM
// @Summary      Monthly income/expense summary
// @Tags         finance
// @Produce      json
// @Param        month query string false "Month (YYYY-MM, defaults to current)"
// @Success      200 {object} response.APIResponse{data=MonthlySummary}
// @Failure      400 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /finance/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	summary, err := h.service.Summary(r.Context(), userID, monthParam(r))
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build summary")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Update handles PATCH /finance/transactions/{id}
// @Summary      Update a transaction
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Param        request body UpdateTransactionRequest true "Transaction update request"
// @Success      200 {object} response.APIResponse{data=Transaction}
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /finance/transactions/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	tx, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTransactionNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidAmount):
			response.BadRequest(w, err.Error())
		default:
			response.BadRequest(w, "Invalid transaction payload")
		}
		return
	}

	response.JSON(w, http.StatusOK, tx)
}

// Delete handles DELETE /finance/transactions/{id}
// @Summary      Delete a transaction
// @Tags         finance
// @Param        id path int true "Transaction ID"
// @Success      204
// @Failure      404 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /finance/transactions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
