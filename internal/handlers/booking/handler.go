package booking

import (
	"net/http"

	"demobook/infras/otel"
	"demobook/internal/domains/booking/model/dto"
	"demobook/internal/domains/booking/service"
	"demobook/shared/constant"
	"demobook/shared/validator"
	"demobook/transport/http/middleware"
	"demobook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.DemoBooking
	middleware middleware.AppMiddleware
	auth       middleware.AdminAuth
	otel       otel.Otel
}

func New(service service.DemoBooking, appMiddleware middleware.AppMiddleware, auth middleware.AdminAuth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: appMiddleware,
		auth:       auth,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/demo-bookings", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.RateLimit()).Post("/", handler.CreateDemoBooking)
		routerGroup.With(handler.auth.Verify).Get("/", handler.GetDemoBookings)
	})
}

// CreateDemoBooking handles a public demo-request submission.
// @Summary Submit a demo booking request
// @Description Validate and persist a demo booking request, then send confirmation emails in the background.
// @Tags DemoBooking
// @Accept json
// @Produce json
// @Param request body dto.CreateDemoBookingRequest true "Create Demo Booking Request"
// @Success 200 {object} dto.CreateDemoBookingResponse "Booking stored"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/demo-bookings [post]
func (handler *Handler) CreateDemoBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDemoBooking")
	defer scope.End()

	req := dto.CreateDemoBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create demo booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Demo booking stored")

	response.WithPayload(writer, http.StatusOK, res)
}

// GetDemoBookings lists every stored booking, newest first. Admin only.
// @Summary List all demo bookings
// @Description Retrieve every stored demo booking, most recent first.
// @Tags DemoBooking
// @Produce json
// @Success 200 {object} dto.GetDemoBookingsResponse "List of bookings"
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/demo-bookings [get]
// @Security ApiKeyAuth
func (handler *Handler) GetDemoBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDemoBookings")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list demo bookings")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, res)
}
