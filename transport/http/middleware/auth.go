package middleware

import (
	"net/http"

	"demobook/config"
	"demobook/infras/otel"
	"demobook/shared/constant"
	"demobook/shared/failure"
	"demobook/transport/http/response"

	"github.com/rs/zerolog/log"
)

// AdminAuth gates the admin-only endpoints behind a static API key.
type AdminAuth interface {
	Verify(http.Handler) http.Handler
}

type adminAuthImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAdminAuthMiddleware(otel otel.Otel, cfg *config.Config) AdminAuth {
	return &adminAuthImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// Verify compares the x-api-key header verbatim against the configured admin
// key. No trimming, no case folding. With no key configured every request is
// rejected; an empty header never matches.
func (m *adminAuthImpl) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "admin.auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "admin-api-key",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		key := request.Header.Get(constant.RequestHeaderAPIKey)

		if m.cfg.AdminAPIKey == "" || key != m.cfg.AdminAPIKey {
			log.Warn().Str("path", request.URL.Path).Msg("rejected admin request with missing or invalid API key")

			scope.TraceError(failure.UnauthorizedError)
			response.WithError(writer, failure.UnauthorizedError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
