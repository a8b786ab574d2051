package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=DemoBooking=MockDemoBookingService

import (
	"context"

	"demobook/infras/otel"
	"demobook/internal/domains/booking/model"
	"demobook/internal/domains/booking/model/dto"
	"demobook/internal/domains/booking/notifier"
	"demobook/internal/domains/booking/repository"
	"demobook/shared/constant"
	"demobook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgBookingReceived = "Demo booking request received"
	msgSaveFailed      = "Failed to save booking request"
	msgListFailed      = "Failed to retrieve bookings"
)

type DemoBooking interface {
	Create(ctx context.Context, req dto.CreateDemoBookingRequest) (dto.CreateDemoBookingResponse, error)
	List(ctx context.Context) (dto.GetDemoBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.DemoBooking
	notifier notifier.Notifier
	otel     otel.Otel
}

func New(repo repository.DemoBooking, notifier notifier.Notifier, otel otel.Otel) DemoBooking {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		otel:     otel,
	}
}

// Create persists a validated submission and kicks off the notification
// emails. The emails are dispatched on a detached goroutine after the insert
// succeeds; they never delay or fail the client-visible result.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDemoBookingRequest) (res dto.CreateDemoBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create demo booking")

		return res, failure.InternalErrorFromString(msgSaveFailed) // nolint:wrapcheck
	}

	scope.SetAttribute("booking.id", stored.ID)

	go s.notify(context.WithoutCancel(ctx), stored)

	res = dto.CreateDemoBookingResponse{
		Success:   true,
		BookingID: stored.ID,
		Message:   msgBookingReceived,
	}

	return res, nil
}

// List returns every stored booking, newest first.
func (s *serviceImpl) List(ctx context.Context) (res dto.GetDemoBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list demo bookings")

		return res, failure.InternalErrorFromString(msgListFailed) // nolint:wrapcheck
	}

	res.FromModels(bookings)

	return res, nil
}

// notify runs detached from the request. Notification failures terminate in
// the log and nowhere else; the booking they belong to is already stored.
func (s *serviceImpl) notify(ctx context.Context, booking model.DemoBooking) {
	if err := s.notifier.SendConfirmation(ctx, booking.Email, booking.Name); err != nil {
		log.Error().Err(err).Int64("bookingId", booking.ID).Msg("failed to send confirmation email")
	}

	if err := s.notifier.SendAdminAlert(ctx, booking.ID, booking); err != nil {
		log.Error().Err(err).Int64("bookingId", booking.ID).Msg("failed to send admin alert email")
	}
}
