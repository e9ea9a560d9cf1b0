package rent

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	mw "github.com/amutiso/kwakamande/pkg/middleware"
	"github.com/amutiso/kwakamande/pkg/response"
)

// Handler handles HTTP requests for rent operations
type Handler struct {
	service *Service
}

// NewHandler creates a new rent handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for authenticated tenant rent endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/schedule", h.GetSchedule)
	r.Post("/payments", h.RecordPayment)
	r.Get("/instructions", h.GetInstructions)

	return r
}

// AdminRoutes returns the router for admin rent endpoints
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/summary", h.GetSummary)
	r.Get("/payments", h.ListPayments)
	r.Post("/payments", h.RecordOutstanding)

	return r
}

// GetSchedule handles GET /rent/schedule?year=2025
// @Summary      My billing schedule
// @Description  The tenant's billable months for a calendar year with derived statuses and penalties, most recent first
// @Tags         rent
// @Produce      json
// @Param        year query int false "Calendar year, defaults to the current year"
// @Success      200 {object} response.APIResponse{data=ScheduleResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /rent/schedule [get]
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be a number")
			return
		}
		year = parsed
	}

	schedule, err := h.service.Schedule(r.Context(), tenantID, year)
	if err != nil {
		if errors.Is(err, ErrNoActiveAssignment) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build schedule")
		return
	}

	response.JSON(w, http.StatusOK, schedule)
}

// RecordPayment handles POST /rent/payments
// @Summary      Record a rent payment
// @Description  Record a payment the tenant has made for a given month. The month's status is derived from today's date.
// @Tags         rent
// @Accept       json
// @Produce      json
// @Param        request body RecordPaymentRequest true "Payment details"
// @Success      201 {object} response.APIResponse{data=Payment}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /rent/payments [post]
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := mw.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.RecordPayment(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidMonth), errors.Is(err, ErrFutureMonth):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNoActiveAssignment):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to record payment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

// GetInstructions handles GET /rent/instructions
// @Summary      Payment instructions
// @Tags         rent
// @Produce      json
// @Success      200 {object} response.APIResponse{data=PaymentInstructions}
// @Router       /rent/instructions [get]
func (h *Handler) GetInstructions(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Instructions())
}

// GetSummary handles GET /admin/rent/summary?month=2025-06
// @Summary      Monthly collection summary
// @Description  Expected vs collected totals and the outstanding tenant list for one month
// @Tags         rent
// @Produce      json
// @Param        month query string true "Month in YYYY-MM format"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /admin/rent/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	summary, err := h.service.MonthlySummary(r.Context(), month)
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

// ListPayments handles GET /admin/rent/payments?month=2025-06
// @Summary      Payments for a month
// @Description  All recorded payments for one month with tenant and house details, newest first
// @Tags         rent
// @Produce      json
// @Param        month query string true "Month in YYYY-MM format"
// @Success      200 {object} response.APIResponse{data=[]PaymentDetail}
// @Failure      400 {object} response.APIResponse
// @Router       /admin/rent/payments [get]
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	details, err := h.service.ListDetailsByMonth(r.Context(), month)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list payments")
		return
	}

	response.JSON(w, http.StatusOK, details)
}

// RecordOutstanding handles POST /admin/rent/payments
// @Summary      Clear an outstanding balance
// @Description  Record a manual payment for exactly the tenant's outstanding amount for a month
// @Tags         rent
// @Accept       json
// @Produce      json
// @Param        request body RecordOutstandingRequest true "Tenant and month"
// @Success      201 {object} response.APIResponse{data=Payment}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/rent/payments [post]
func (h *Handler) RecordOutstanding(w http.ResponseWriter, r *http.Request) {
	var req RecordOutstandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.TenantID == "" || req.MonthYear == "" {
		response.BadRequest(w, "tenant_id and month_year are required")
		return
	}

	p, err := h.service.RecordOutstanding(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMonth):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNothingOutstanding):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to record manual payment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, p)
}
