package announcement

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/amutiso/kwakamande/pkg/middleware"
	"github.com/amutiso/kwakamande/pkg/response"
)

// Handler handles HTTP requests for announcement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new announcement handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for authenticated tenant announcement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListForTenants)

	return r
}

// AdminRoutes returns the router for admin announcement endpoints
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListAll)
	r.Put("/{id}/active", h.SetActive)
	r.Delete("/{id}", h.Delete)

	return r
}

// ListForTenants handles GET /announcements
// @Summary      Visible announcements
// @Tags         announcements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Announcement}
// @Router       /announcements [get]
func (h *Handler) ListForTenants(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.ListForTenants(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list announcements")
		return
	}

	response.JSON(w, http.StatusOK, announcements)
}

// Create handles POST /admin/announcements
// @Summary      Post an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        request body CreateAnnouncementRequest true "Announcement details"
// @Success      201 {object} response.APIResponse{data=Announcement}
// @Failure      400 {object} response.APIResponse
// @Router       /admin/announcements [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		response.BadRequest(w, "title and content are required")
		return
	}

	a, err := h.service.Create(r.Context(), adminID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidAudience) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create announcement")
		return
	}

	response.JSON(w, http.StatusCreated, a)
}

// ListAll handles GET /admin/announcements
// @Summary      All announcements
// @Description  Every announcement including hidden ones
// @Tags         announcements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Announcement}
// @Router       /admin/announcements [get]
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.ListAll(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list announcements")
		return
	}

	response.JSON(w, http.StatusOK, announcements)
}

// SetActive handles PUT /admin/announcements/{id}/active
// @Summary      Show or hide an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        id path string true "Announcement ID"
// @Param        request body SetActiveRequest true "Visibility"
// @Success      200 {object} response.APIResponse{data=Announcement}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/announcements/{id}/active [put]
func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	a, err := h.service.SetActive(r.Context(), chi.URLParam(r, "id"), req.IsActive)
	if err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update announcement")
		return
	}

	response.JSON(w, http.StatusOK, a)
}

// Delete handles DELETE /admin/announcements/{id}
// @Summary      Delete an announcement
// @Tags         announcements
// @Produce      json
// @Param        id path string true "Announcement ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/announcements/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete announcement")
		return
	}

	response.Message(w, http.StatusOK, "Announcement deleted successfully")
}
