package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/amutiso/kwakamande/pkg/middleware"
	"github.com/amutiso/kwakamande/pkg/response"
)

// Handler handles HTTP requests for profile operations
type Handler struct {
	service *Service
}

// NewHandler creates a new profile handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for authenticated profile endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)

	return r
}

// AdminRoutes returns the router for admin tenant-management endpoints
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListTenants)
	r.Delete("/{id}", h.RemoveTenant)

	return r
}

// GetMe handles GET /profiles/me
// @Summary      My profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ProfileResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /profiles/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	p, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrProfileDeleted) {
			response.NotFound(w, "Profile not found")
			return
		}
		response.InternalError(w, "Failed to get profile")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// UpdateMe handles PUT /profiles/me
// @Summary      Update my contact details
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body UpdateProfileRequest true "Profile update request"
// @Success      200 {object} response.APIResponse{data=ProfileResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /profiles/me [put]
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.FullName != nil && *req.FullName == "" {
		response.BadRequest(w, "full_name cannot be empty")
		return
	}

	p, err := h.service.UpdateContact(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update profile")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// ListTenants handles GET /admin/tenants
// @Summary      List tenants
// @Description  All active tenants with their current house assignments
// @Tags         tenants
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]TenantResponse}
// @Router       /admin/tenants [get]
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.service.ListTenants(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list tenants")
		return
	}

	response.JSON(w, http.StatusOK, tenants)
}

// RemoveTenant handles DELETE /admin/tenants/{id}
// @Summary      Remove a tenant
// @Description  Soft delete a tenant, releasing their house. Payment history is retained.
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/tenants/{id} [delete]
func (h *Handler) RemoveTenant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.RemoveTenant(r.Context(), id); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, "Tenant not found")
			return
		}
		response.InternalError(w, "Failed to remove tenant")
		return
	}

	response.Message(w, http.StatusOK, "Tenant removed successfully")
}
