package health

import (
	"net/http"

	"demobook/infras/postgres"
	"demobook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the store is reachable.
// @Summary Health check
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /api/health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("read connection unhealthy")

		response.WithUnhealthy(writer)

		return
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("write connection unhealthy")

		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, true, "healthy")
}
