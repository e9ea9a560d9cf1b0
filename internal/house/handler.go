package house

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amutiso/kwakamande/pkg/response"
)

// Handler handles HTTP requests for house operations
type Handler struct {
	service *Service
}

// NewHandler creates a new house handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes returns the router for unauthenticated house endpoints
func (h *Handler) PublicRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Search)
	r.Get("/{id}", h.GetByID)

	return r
}

// AdminRoutes returns the router for admin house endpoints
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/vacancy", h.SetVacancy)

	return r
}

// Search handles GET /houses
// @Summary      Search rooms
// @Description  List rooms, vacant-only by default, with optional filters
// @Tags         houses
// @Produce      json
// @Param        all query bool false "Include occupied rooms" default(false)
// @Param        room_type query string false "Room type filter"
// @Param        floor query string false "Floor filter"
// @Param        section query string false "Section filter"
// @Param        min_price query int false "Minimum monthly rent"
// @Param        max_price query int false "Maximum monthly rent"
// @Success      200 {object} response.APIResponse{data=[]House}
// @Router       /houses [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	filters := &SearchFilters{VacantOnly: true}

	if all, err := strconv.ParseBool(r.URL.Query().Get("all")); err == nil && all {
		filters.VacantOnly = false
	}
	filters.RoomType = r.URL.Query().Get("room_type")
	filters.Floor = r.URL.Query().Get("floor")
	filters.Section = r.URL.Query().Get("section")

	if minStr := r.URL.Query().Get("min_price"); minStr != "" {
		if min, err := strconv.ParseInt(minStr, 10, 64); err == nil {
			filters.MinPrice = &min
		}
	}
	if maxStr := r.URL.Query().Get("max_price"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 64); err == nil {
			filters.MaxPrice = &max
		}
	}

	houses, err := h.service.Search(r.Context(), filters)
	if err != nil {
		response.InternalError(w, "Failed to search houses")
		return
	}

	response.JSON(w, http.StatusOK, houses)
}

// GetByID handles GET /houses/{id}
// @Summary      Get room by ID
// @Tags         houses
// @Produce      json
// @Param        id path string true "House ID"
// @Success      200 {object} response.APIResponse{data=House}
// @Failure      404 {object} response.APIResponse
// @Router       /houses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	house, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHouseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get house")
		return
	}

	response.JSON(w, http.StatusOK, house)
}

// Create handles POST /admin/houses
// @Summary      Add a room
// @Description  Add a room to the inventory (admin only)
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        request body CreateHouseRequest true "House creation request"
// @Success      201 {object} response.APIResponse{data=House}
// @Failure      400 {object} response.APIResponse
// @Router       /admin/houses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateHouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Floor == "" || req.Section == "" || req.RoomName == "" || req.RoomType == "" || req.Price <= 0 {
		response.BadRequest(w, "floor, section, room_name, room_type and a positive price are required")
		return
	}

	house, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create house")
		return
	}

	response.JSON(w, http.StatusCreated, house)
}

// Update handles PUT /admin/houses/{id}
// @Summary      Update a room
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        id path string true "House ID"
// @Param        request body UpdateHouseRequest true "House update request"
// @Success      200 {object} response.APIResponse{data=House}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/houses/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateHouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	house, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrHouseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update house")
		return
	}

	response.JSON(w, http.StatusOK, house)
}

// SetVacancy handles PUT /admin/houses/{id}/vacancy
// @Summary      Toggle vacancy
// @Description  Manually mark a room vacant or occupied (admin only)
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        id path string true "House ID"
// @Param        request body SetVacancyRequest true "Vacancy state"
// @Success      200 {object} response.APIResponse{data=House}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/houses/{id}/vacancy [put]
func (h *Handler) SetVacancy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SetVacancyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	house, err := h.service.SetVacancy(r.Context(), id, req.IsVacant)
	if err != nil {
		if errors.Is(err, ErrHouseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to set vacancy")
		return
	}

	response.JSON(w, http.StatusOK, house)
}
