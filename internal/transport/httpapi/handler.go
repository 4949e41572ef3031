package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/service/booking"
)

type bookingService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListAddons(ctx context.Context) ([]domain.Addon, error)
	AvailableSlots(ctx context.Context, q booking.AvailabilityQuery) ([]domain.Slot, error)
	Book(ctx context.Context, in booking.BookInput) (domain.Appointment, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	Release(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
}

// ReadyCheck is one dependency checked by /readyz.
type ReadyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Handler struct {
	svc    bookingService
	loc    *time.Location
	log    *slog.Logger
	checks []ReadyCheck
}

func NewHandler(svc bookingService, loc *time.Location, log *slog.Logger, checks ...ReadyCheck) *Handler {
	if log == nil {
		log = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		svc:    svc,
		loc:    loc,
		log:    log.With(slog.String("component", "http.booking")),
		checks: checks,
	}
}

// NewRouter wires the routes. holdLimit, when non-nil, guards the routes that
// create holds.
func NewRouter(h *Handler, holdLimit gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/services", h.ListServices)
	r.GET("/availability", h.Availability)

	holds := []gin.HandlerFunc{}
	if holdLimit != nil {
		holds = append(holds, holdLimit)
	}
	r.POST("/holds", append(holds, h.CreateHold)...)
	r.POST("/bookings", append(holds, h.Book)...)

	r.GET("/appointments/:id", h.GetAppointment)
	r.POST("/appointments/:id/confirm", h.Confirm)
	r.POST("/appointments/:id/release", h.Release)
	return r
}

type serviceDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int64  `json:"price_cents"`
}

type addonDTO struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	ExtraDurationMinutes int    `json:"extra_duration_minutes"`
	ExtraPriceCents      int64  `json:"extra_price_cents"`
}

type slotDTO struct {
	StaffID   string    `json:"staff_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type appointmentDTO struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenant_id,omitempty"`
	StaffID         string     `json:"staff_id"`
	ServiceID       string     `json:"service_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	Status          string     `json:"status"`
	HoldExpiresAt   *time.Time `json:"hold_expires_at,omitempty"`
	TotalPriceCents int64      `json:"total_price_cents"`
}

type holdRequest struct {
	TenantID  string    `json:"tenant_id"`
	ServiceID string    `json:"service_id" binding:"required"`
	AddonIDs  []string  `json:"addon_ids"`
	StaffID   string    `json:"staff_id"`
	StartTime time.Time `json:"start_time"`
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	failed := map[string]string{}
	for _, rc := range h.checks {
		if err := rc.Check(ctx); err != nil {
			h.log.Warn("readiness check failed", slog.String("check", rc.Name), slog.Any("err", err))
			failed[rc.Name] = err.Error()
		}
	}
	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failed": failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.svc.ListServices(c.Request.Context())
	if err != nil {
		serviceError(c, h.log, err)
		return
	}
	addons, err := h.svc.ListAddons(c.Request.Context())
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	out := make([]serviceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, serviceDTO{ID: s.ID.String(), Name: s.Name, DurationMinutes: s.DurationMinutes, PriceCents: s.PriceCents})
	}
	extras := make([]addonDTO, 0, len(addons))
	for _, a := range addons {
		extras = append(extras, addonDTO{ID: a.ID.String(), Name: a.Name, ExtraDurationMinutes: a.ExtraDurationMinutes, ExtraPriceCents: a.ExtraPriceCents})
	}
	c.JSON(http.StatusOK, gin.H{"services": out, "addons": extras})
}

func (h *Handler) Availability(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		badRequest(c, "invalid_service_id", "service_id must be a UUID")
		return
	}
	dateStr := strings.TrimSpace(c.Query("date"))
	date, err := time.ParseInLocation(time.DateOnly, dateStr, h.loc)
	if err != nil {
		badRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}
	addonIDs, err := domain.ParseIDs(c.QueryArray("addon_id"))
	if err != nil {
		badRequest(c, "invalid_addon_id", "addon_id must be a UUID")
		return
	}
	staffID, err := domain.ParseOptionalID(c.Query("staff_id"))
	if err != nil {
		badRequest(c, "invalid_staff_id", "staff_id must be a UUID")
		return
	}

	slots, err := h.svc.AvailableSlots(c.Request.Context(), booking.AvailabilityQuery{
		Date:      date,
		ServiceID: serviceID,
		AddonIDs:  addonIDs,
		StaffID:   staffID,
	})
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	out := make([]slotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotDTO{StaffID: s.StaffID.String(), StartTime: s.Interval.Start.UTC(), EndTime: s.Interval.End.UTC()})
	}
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "service_id": serviceID.String(), "slots": out})
}

func (h *Handler) CreateHold(c *gin.Context) {
	h.hold(c, true)
}

func (h *Handler) Book(c *gin.Context) {
	h.hold(c, false)
}

func (h *Handler) hold(c *gin.Context, staffRequired bool) {
	var req holdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_body", err.Error())
		return
	}
	if staffRequired && strings.TrimSpace(req.StaffID) == "" {
		badRequest(c, "missing_staff_id", "staff_id is required")
		return
	}

	in := booking.BookInput{Start: req.StartTime}
	var err error
	if in.ServiceID, err = uuid.Parse(req.ServiceID); err != nil {
		badRequest(c, "invalid_service_id", "service_id must be a UUID")
		return
	}
	if in.AddonIDs, err = domain.ParseIDs(req.AddonIDs); err != nil {
		badRequest(c, "invalid_addon_id", "addon_ids must be UUIDs")
		return
	}
	if in.StaffID, err = domain.ParseOptionalID(req.StaffID); err != nil {
		badRequest(c, "invalid_staff_id", "staff_id must be a UUID")
		return
	}
	if strings.TrimSpace(req.TenantID) != "" {
		if in.TenantID, err = uuid.Parse(req.TenantID); err != nil {
			badRequest(c, "invalid_tenant_id", "tenant_id must be a UUID")
			return
		}
	}

	appt, err := h.svc.Book(c.Request.Context(), in)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}
	h.log.Info("hold created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("staff_id", appt.StaffID.String()),
		slog.Time("start_time", appt.StartTime),
	)
	c.JSON(http.StatusCreated, toAppointmentDTO(appt))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	h.byID(c, h.svc.Get)
}

func (h *Handler) Confirm(c *gin.Context) {
	h.byID(c, h.svc.Confirm)
}

func (h *Handler) Release(c *gin.Context) {
	h.byID(c, h.svc.Release)
}

func (h *Handler) byID(c *gin.Context, call func(context.Context, uuid.UUID) (domain.Appointment, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid_appointment_id", "appointment id must be a UUID")
		return
	}
	appt, err := call(c.Request.Context(), id)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentDTO(appt))
}

func toAppointmentDTO(a domain.Appointment) appointmentDTO {
	out := appointmentDTO{
		ID:              a.ID.String(),
		StaffID:         a.StaffID.String(),
		StartTime:       a.StartTime.UTC(),
		EndTime:         a.EndTime.UTC(),
		Status:          string(a.Status),
		TotalPriceCents: a.TotalPriceCents,
	}
	if a.TenantID != uuid.Nil {
		out.TenantID = a.TenantID.String()
	}
	if a.ServiceID.Valid {
		out.ServiceID = a.ServiceID.UUID.String()
	}
	if a.HoldExpiresAt != nil {
		exp := a.HoldExpiresAt.UTC()
		out.HoldExpiresAt = &exp
	}
	return out
}
