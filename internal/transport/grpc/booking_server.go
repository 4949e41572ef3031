package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"salonbook/backend/internal/domain"
	salonbookv1 "salonbook/backend/internal/gen/proto/salonbook/v1"
	"salonbook/backend/internal/service/booking"
)

type BookingServer struct {
	salonbookv1.UnimplementedBookingServiceServer

	svc bookingService
	loc *time.Location
	log *slog.Logger
}

type bookingService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListAddons(ctx context.Context) ([]domain.Addon, error)
	AvailableSlots(ctx context.Context, q booking.AvailabilityQuery) ([]domain.Slot, error)
	Book(ctx context.Context, in booking.BookInput) (domain.Appointment, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	Release(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
}

// NewBookingServer serves the booking service. Dates in requests are read as
// calendar days in loc.
func NewBookingServer(svc bookingService, loc *time.Location, log *slog.Logger) *BookingServer {
	if log == nil {
		log = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &BookingServer{
		svc: svc,
		loc: loc,
		log: log.With(slog.String("component", "grpc.booking")),
	}
}

func (s *BookingServer) ListServices(ctx context.Context, req *salonbookv1.ListServicesRequest) (*salonbookv1.ListServicesResponse, error) {
	log := s.log.With(slog.String("rpc", "ListServices"))

	services, err := s.svc.ListServices(ctx)
	if err != nil {
		return nil, s.statusError(log, "services list failed", err)
	}
	addons, err := s.svc.ListAddons(ctx)
	if err != nil {
		return nil, s.statusError(log, "addons list failed", err)
	}

	out := &salonbookv1.ListServicesResponse{
		Services: make([]*salonbookv1.Service, 0, len(services)),
		Addons:   make([]*salonbookv1.Addon, 0, len(addons)),
	}
	for _, svc := range services {
		out.Services = append(out.Services, toService(svc))
	}
	for _, a := range addons {
		out.Addons = append(out.Addons, toAddon(a))
	}
	log.Debug("services listed", slog.Int("services", len(out.Services)), slog.Int("addons", len(out.Addons)))
	return out, nil
}

func (s *BookingServer) GetAvailability(ctx context.Context, req *salonbookv1.GetAvailabilityRequest) (*salonbookv1.GetAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAvailability"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	serviceID, err := uuid.Parse(req.GetServiceId())
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_service_id"))
		return nil, status.Error(codes.InvalidArgument, "service_id must be a UUID")
	}
	addonIDs, err := domain.ParseIDs(req.GetAddonIds())
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_addon_id"))
		return nil, status.Error(codes.InvalidArgument, "addon_ids must be UUIDs")
	}
	staffID, err := domain.ParseOptionalID(req.GetStaffId())
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_staff_id"))
		return nil, status.Error(codes.InvalidArgument, "staff_id must be a UUID")
	}
	date, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(req.GetDate()), s.loc)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("date", req.GetDate()))
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}

	slots, err := s.svc.AvailableSlots(ctx, booking.AvailabilityQuery{
		Date:      date,
		ServiceID: serviceID,
		AddonIDs:  addonIDs,
		StaffID:   staffID,
	})
	if err != nil {
		return nil, s.statusError(log, "availability failed", err, slog.String("service_id", serviceID.String()))
	}

	out := make([]*salonbookv1.Slot, 0, len(slots))
	for _, sl := range slots {
		out = append(out, &salonbookv1.Slot{
			StaffId:   sl.StaffID.String(),
			StartTime: timestamppb.New(sl.Interval.Start),
			EndTime:   timestamppb.New(sl.Interval.End),
		})
	}
	log.Debug("availability computed",
		slog.String("service_id", serviceID.String()),
		slog.String("date", req.GetDate()),
		slog.Int("count", len(out)),
	)
	return &salonbookv1.GetAvailabilityResponse{Slots: out}, nil
}

func (s *BookingServer) CreateHold(ctx context.Context, req *salonbookv1.CreateHoldRequest) (*salonbookv1.AppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "CreateHold"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.GetStaffId()) == "" {
		log.Warn("invalid request", slog.String("reason", "missing_staff_id"))
		return nil, status.Error(codes.InvalidArgument, "staff_id is required")
	}
	return s.book(ctx, log, req.GetTenantId(), req.GetServiceId(), req.GetAddonIds(), req.GetStaffId(), req.GetStartTime())
}

func (s *BookingServer) BookAppointment(ctx context.Context, req *salonbookv1.BookAppointmentRequest) (*salonbookv1.AppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "BookAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	return s.book(ctx, log, req.GetTenantId(), req.GetServiceId(), req.GetAddonIds(), req.GetStaffId(), req.GetStartTime())
}

func (s *BookingServer) book(
	ctx context.Context,
	log *slog.Logger,
	tenant, service string,
	addons []string,
	staff string,
	startTime *timestamppb.Timestamp,
) (*salonbookv1.AppointmentResponse, error) {
	if startTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_start_time"))
		return nil, status.Error(codes.InvalidArgument, "start_time is required")
	}
	if err := startTime.CheckValid(); err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_start_time"))
		return nil, status.Error(codes.InvalidArgument, "start_time is invalid")
	}
	start := startTime.AsTime()
	serviceID, err := uuid.Parse(service)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_service_id"))
		return nil, status.Error(codes.InvalidArgument, "service_id must be a UUID")
	}
	addonIDs, err := domain.ParseIDs(addons)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_addon_id"))
		return nil, status.Error(codes.InvalidArgument, "addon_ids must be UUIDs")
	}
	staffID, err := domain.ParseOptionalID(staff)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_staff_id"))
		return nil, status.Error(codes.InvalidArgument, "staff_id must be a UUID")
	}
	var tenantID uuid.UUID
	if strings.TrimSpace(tenant) != "" {
		tenantID, err = uuid.Parse(tenant)
		if err != nil {
			log.Warn("invalid request", slog.String("reason", "invalid_tenant_id"))
			return nil, status.Error(codes.InvalidArgument, "tenant_id must be a UUID")
		}
	}

	appt, err := s.svc.Book(ctx, booking.BookInput{
		TenantID:  tenantID,
		ServiceID: serviceID,
		AddonIDs:  addonIDs,
		StaffID:   staffID,
		Start:     start,
	})
	if err != nil {
		return nil, s.statusError(log, "hold failed", err,
			slog.String("service_id", serviceID.String()),
			slog.Time("start_time", start),
		)
	}

	log.Info("hold created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("staff_id", appt.StaffID.String()),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)
	return &salonbookv1.AppointmentResponse{Appointment: toAppointment(appt)}, nil
}

func (s *BookingServer) ConfirmAppointment(ctx context.Context, req *salonbookv1.AppointmentRequest) (*salonbookv1.AppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "ConfirmAppointment"))
	return s.byID(ctx, log, req, s.svc.Confirm, "appointment confirmed")
}

func (s *BookingServer) ReleaseAppointment(ctx context.Context, req *salonbookv1.AppointmentRequest) (*salonbookv1.AppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "ReleaseAppointment"))
	return s.byID(ctx, log, req, s.svc.Release, "appointment released")
}

func (s *BookingServer) GetAppointment(ctx context.Context, req *salonbookv1.AppointmentRequest) (*salonbookv1.AppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAppointment"))
	return s.byID(ctx, log, req, s.svc.Get, "")
}

func (s *BookingServer) byID(
	ctx context.Context,
	log *slog.Logger,
	req *salonbookv1.AppointmentRequest,
	call func(context.Context, uuid.UUID) (domain.Appointment, error),
	done string,
) (*salonbookv1.AppointmentResponse, error) {
	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.GetAppointmentId())
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, err := call(ctx, id)
	if err != nil {
		return nil, s.statusError(log, "appointment call failed", err, slog.String("appointment_id", id.String()))
	}
	if done != "" {
		log.Info(done, slog.String("appointment_id", id.String()), slog.String("status", string(appt.Status)))
	}
	return &salonbookv1.AppointmentResponse{Appointment: toAppointment(appt)}, nil
}

// statusError maps a service error to a gRPC status. Expected outcomes are
// logged at Info or Warn; only unexpected failures are logged at Error.
func (s *BookingServer) statusError(log *slog.Logger, msg string, err error, attrs ...any) error {
	args := append([]any{slog.Any("err", err)}, attrs...)

	switch {
	case errors.Is(err, booking.ErrConflict):
		log.Info("slot conflict", args...)
		return status.Error(codes.AlreadyExists, "That time was just taken. Pick a different slot.")
	case errors.Is(err, booking.ErrExpired):
		log.Info("hold expired", args...)
		return status.Error(codes.FailedPrecondition, "The hold has expired. Pick the slot again.")
	case errors.Is(err, booking.ErrNoAvailability):
		log.Info("no availability", args...)
		return status.Error(codes.FailedPrecondition, "No staff member is available at that time.")
	case errors.Is(err, booking.ErrInvalidState):
		log.Info("invalid state", args...)
		return status.Error(codes.FailedPrecondition, "The appointment can no longer be changed that way.")
	case errors.Is(err, booking.ErrNotFound):
		log.Info("not found", args...)
		return status.Error(codes.NotFound, err.Error())
	}

	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		log.Warn("invalid request", args...)
		return status.Error(codes.InvalidArgument, vErr.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn(msg, args...)
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}
	log.Error(msg, args...)
	return status.Error(codes.Internal, "internal error")
}

func toService(s domain.Service) *salonbookv1.Service {
	return &salonbookv1.Service{
		Id:              s.ID.String(),
		Name:            s.Name,
		DurationMinutes: int32(s.DurationMinutes),
		PriceCents:      s.PriceCents,
	}
}

func toAddon(a domain.Addon) *salonbookv1.Addon {
	return &salonbookv1.Addon{
		Id:                   a.ID.String(),
		Name:                 a.Name,
		ExtraDurationMinutes: int32(a.ExtraDurationMinutes),
		ExtraPriceCents:      a.ExtraPriceCents,
	}
}

func toAppointment(a domain.Appointment) *salonbookv1.Appointment {
	out := &salonbookv1.Appointment{
		Id:              a.ID.String(),
		StaffId:         a.StaffID.String(),
		StartTime:       timestamppb.New(a.StartTime),
		EndTime:         timestamppb.New(a.EndTime),
		Status:          string(a.Status),
		TotalPriceCents: a.TotalPriceCents,
		CreatedAt:       timestamppb.New(a.CreatedAt),
		UpdatedAt:       timestamppb.New(a.UpdatedAt),
	}
	if a.TenantID != uuid.Nil {
		out.TenantId = a.TenantID.String()
	}
	if a.ServiceID.Valid {
		out.ServiceId = a.ServiceID.UUID.String()
	}
	if a.HoldExpiresAt != nil {
		out.HoldExpiresAt = timestamppb.New(*a.HoldExpiresAt)
	}
	return out
}
