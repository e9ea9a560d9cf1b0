package assignment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/amutiso/kwakamande/pkg/middleware"
	"github.com/amutiso/kwakamande/pkg/response"
)

// Handler handles HTTP requests for assignment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new assignment handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for authenticated assignment endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetMine)

	return r
}

// AdminRoutes returns the router for admin assignment endpoints
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Assign)
	r.Get("/tenant/{tenantID}", h.GetByTenant)
	r.Delete("/tenant/{tenantID}", h.Unassign)

	return r
}

// GetMine handles GET /assignments/me
// @Summary      My current house
// @Description  The authenticated tenant's active assignment and house
// @Tags         assignments
// @Produce      json
// @Success      200 {object} response.APIResponse{data=AssignmentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /assignments/me [get]
func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	h.resolve(w, r, tenantID)
}

// GetByTenant handles GET /admin/assignments/tenant/{tenantID}
// @Summary      Tenant's current house
// @Tags         assignments
// @Produce      json
// @Param        tenantID path string true "Tenant ID"
// @Success      200 {object} response.APIResponse{data=AssignmentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/assignments/tenant/{tenantID} [get]
func (h *Handler) GetByTenant(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, chi.URLParam(r, "tenantID"))
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, tenantID string) {
	a, err := h.service.Resolve(r.Context(), tenantID)
	if err != nil {
		if errors.Is(err, ErrNoActiveAssignment) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to resolve assignment")
		return
	}

	response.JSON(w, http.StatusOK, a.ToResponse())
}

// Assign handles POST /admin/assignments
// @Summary      Assign a house
// @Description  Assign a vacant house to a tenant, releasing any house the tenant currently holds
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        request body AssignRequest true "Assignment request"
// @Success      201 {object} response.APIResponse{data=AssignmentResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /admin/assignments [post]
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	adminID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.TenantID == "" || req.HouseID == "" {
		response.BadRequest(w, "tenant_id and house_id are required")
		return
	}

	a, err := h.service.Assign(r.Context(), req.TenantID, req.HouseID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, ErrHouseNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrHouseOccupied):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to assign house")
		}
		return
	}

	response.JSON(w, http.StatusCreated, a.ToResponse())
}

// Unassign handles DELETE /admin/assignments/tenant/{tenantID}
// @Summary      Unassign a tenant
// @Description  Deactivate the tenant's assignment and mark the house vacant
// @Tags         assignments
// @Produce      json
// @Param        tenantID path string true "Tenant ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/assignments/tenant/{tenantID} [delete]
func (h *Handler) Unassign(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")

	if _, err := h.service.Unassign(r.Context(), tenantID); err != nil {
		if errors.Is(err, ErrNoActiveAssignment) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to unassign tenant")
		return
	}

	response.Message(w, http.StatusOK, "Tenant unassigned successfully")
}
