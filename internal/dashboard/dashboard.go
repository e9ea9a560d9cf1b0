package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/amutiso/kwakamande/internal/maintenance"
	"github.com/amutiso/kwakamande/internal/rent"
	"github.com/amutiso/kwakamande/pkg/response"
)

// Stats is the admin landing-page snapshot
type Stats struct {
	TotalHouses        int   `json:"total_houses"`
	OccupiedHouses     int   `json:"occupied_houses"`
	VacantHouses       int   `json:"vacant_houses"`
	ActiveTenants      int   `json:"active_tenants"`
	PendingMaintenance int   `json:"pending_maintenance"`
	MonthExpected      int64 `json:"month_expected"`
	MonthCollected     int64 `json:"month_collected"`
}

// Service assembles the dashboard snapshot from the other features
type Service struct {
	db              *sql.DB
	maintenanceRepo *maintenance.Repository
	rentService     *rent.Service
}

// NewService creates a new dashboard service with dependencies injected
func NewService(db *sql.DB, maintenanceRepo *maintenance.Repository, rentService *rent.Service) *Service {
	return &Service{db: db, maintenanceRepo: maintenanceRepo, rentService: rentService}
}

// Stats builds the snapshot for the current month
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE NOT is_vacant),
		       COUNT(*) FILTER (WHERE is_vacant)
		FROM houses
	`).Scan(&stats.TotalHouses, &stats.OccupiedHouses, &stats.VacantHouses)
	if err != nil {
		return nil, fmt.Errorf("failed to count houses: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM profiles
		WHERE role = 'tenant' AND deleted_at IS NULL
	`).Scan(&stats.ActiveTenants)
	if err != nil {
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}

	pending, err := s.maintenanceRepo.CountByStatus(ctx, maintenance.StatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingMaintenance = pending

	summary, err := s.rentService.MonthlySummary(ctx, time.Now().Format("2006-01"))
	if err != nil {
		return nil, err
	}
	stats.MonthExpected = summary.ExpectedTotal
	stats.MonthCollected = summary.PaidTotal

	return stats, nil
}

// Handler handles the admin dashboard endpoint
type Handler struct {
	service *Service
}

// NewHandler creates a new dashboard handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the router for the dashboard endpoint
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetStats)

	return r
}

// GetStats handles GET /admin/dashboard
// @Summary      Dashboard snapshot
// @Description  House occupancy, tenant, maintenance and collection counts for the current month
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Stats}
// @Router       /admin/dashboard [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to build dashboard stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
