package prayer

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hishamq/yawmi/pkg/response"
)

// Handler handles HTTP requests for prayer time lookups
type Handler struct {
	service *Service
}

// NewHandler creates a new prayer handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for prayer endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/timings", h.Timings)

	return r
}

// Timings handles GET /prayer/timings?city=&country=&date=
// @Summary      Get prayer timings
// @Description  Get the five daily prayers and sunrise for a city on a date (defaults to today)
// @Tags         prayer
// @Produce      json
// @Param        city query string true "City name"
// @Param        country query string true "Country name"
// @Param        date query string false "Date (DD-MM-YYYY, defaults to today)"
// @Success      200 {object} response.APIResponse{data=TimingsResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /prayer/timings [get]
func (h *Handler) Timings(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")
	if city == "" || country == "" {
		response.BadRequest(w, "City and country are required")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("02-01-2006")
	} else if _, err := time.Parse("02-01-2006", date); err != nil {
		response.BadRequest(w, "Invalid date, expected DD-MM-YYYY")
		return
	}

	timings, err := h.service.TimingsByCity(r.Context(), city, country, date)
	if err != nil {
		response.BadGateway(w, "Prayer times service unavailable")
		return
	}

	response.JSON(w, http.StatusOK, timings)
}
