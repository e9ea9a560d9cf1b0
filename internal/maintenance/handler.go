package maintenance

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/amutiso/kwakamande/pkg/middleware"
	"github.com/amutiso/kwakamande/pkg/response"
)

// Handler handles HTTP requests for maintenance operations
type Handler struct {
	service *Service
}

// NewHandler creates a new maintenance handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for authenticated tenant maintenance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Delete("/{id}", h.Cancel)

	return r
}

// AdminRoutes returns the router for admin maintenance endpoints
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListAll)
	r.Put("/{id}/status", h.UpdateStatus)

	return r
}

// Create handles POST /maintenance
// @Summary      Raise a maintenance request
// @Description  Raise a request against the house the tenant currently occupies
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        request body CreateRequestRequest true "Request details"
// @Success      201 {object} response.APIResponse{data=Request}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /maintenance [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.RequestType == "" {
		response.BadRequest(w, "title, description and request_type are required")
		return
	}

	m, err := h.service.Create(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPriority):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNoActiveAssignment):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to create maintenance request")
		}
		return
	}

	response.JSON(w, http.StatusCreated, m)
}

// ListMine handles GET /maintenance
// @Summary      My maintenance requests
// @Tags         maintenance
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Request}
// @Router       /maintenance [get]
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	requests, err := h.service.ListMine(r.Context(), tenantID)
	if err != nil {
		response.InternalError(w, "Failed to list maintenance requests")
		return
	}

	response.JSON(w, http.StatusOK, requests)
}

// Cancel handles DELETE /maintenance/{id}
// @Summary      Cancel a pending request
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} response.APIResponse{data=Request}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /maintenance/{id} [delete]
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	m, err := h.service.Cancel(r.Context(), tenantID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(w, err.Error())
		case errors.Is(err, ErrNotPending):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to cancel maintenance request")
		}
		return
	}

	response.JSON(w, http.StatusOK, m)
}

// ListAll handles GET /admin/maintenance?status=pending
// @Summary      All maintenance requests
// @Tags         maintenance
// @Produce      json
// @Param        status query string false "Filter by status"
// @Success      200 {object} response.APIResponse{data=[]RequestDetail}
// @Failure      400 {object} response.APIResponse
// @Router       /admin/maintenance [get]
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list maintenance requests")
		return
	}

	response.JSON(w, http.StatusOK, requests)
}

// UpdateStatus handles PUT /admin/maintenance/{id}/status
// @Summary      Update a request's status
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200 {object} response.APIResponse{data=Request}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/maintenance/{id}/status [put]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrRequestNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to update maintenance request")
		}
		return
	}

	response.JSON(w, http.StatusOK, m)
}
