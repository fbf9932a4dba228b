package aiscan

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hishamq/yawmi/pkg/response"
)

// Handler handles HTTP requests for receipt scanning
type Handler struct {
	service *Service
}

// NewHandler creates a new scan handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Scan handles POST /splitbills/scan
// @Summary      Scan a receipt
// @Description  Extract line items, tax, service and tip from a receipt image for review
// @Tags         splitbills
// @Accept       json
// @Produce      json
// @Param        request body ScanRequest true "Receipt image (base64 or URL)"
// @Success      200 {object} response.APIResponse{data=ScanResult}
// @Failure      400 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /splitbills/scan [post]
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.ScanReceipt(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoImage):
			response.BadRequest(w, "Provide image_base64 or image_url")
		case errors.Is(err, ErrUnparsable), errors.Is(err, ErrEmptyResult):
			response.BadGateway(w, "Could not read the receipt, try a clearer photo")
		default:
			response.BadGateway(w, "Receipt scan service unavailable")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
