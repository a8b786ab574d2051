package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"demobook/config"
	"demobook/infras/otel/mocks"
	bookingMocks "demobook/internal/domains/booking/mocks"
	"demobook/internal/domains/booking/model/dto"
	"demobook/internal/handlers/booking"
	cacheMocks "demobook/shared/cache/mocks"
	"demobook/shared/constant"
	"demobook/shared/failure"
	"demobook/transport/http/middleware"
)

const testAdminKey = "test-admin-key"

func setupRouter(t *testing.T, cfg *config.Config) (*bookingMocks.MockDemoBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := bookingMocks.NewMockDemoBookingService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	appMiddleware := middleware.NewAppMiddleware(mockOtel, cfg, mockCache)
	auth := middleware.NewAdminAuthMiddleware(mockOtel, cfg)

	handler := booking.New(mockService, appMiddleware, auth, mockOtel)

	router := chi.NewRouter()
	router.Route("/api", func(routerGroup chi.Router) {
		handler.Router(routerGroup)
	})

	return mockService, router
}

func testConfig() *config.Config {
	cfg := &config.Config{AdminAPIKey: testAdminKey}

	return cfg
}

func TestHandler_CreateDemoBooking(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		mockService, router := setupRouter(t, testConfig())

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateDemoBookingResponse{
				Success:   true,
				BookingID: 1,
				Message:   "Demo booking request received",
			}, nil)

		body := `{"name":"Ada Lovelace","email":"ada@example.com","organization":"Analytical Engines"}`

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/demo-bookings", strings.NewReader(body))

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res dto.CreateDemoBookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, int64(1), res.BookingID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []struct {
			name        string
			body        string
			wantMessage string
		}{
			{
				name:        "missing name",
				body:        `{"email":"ada@example.com"}`,
				wantMessage: "name is required",
			},
			{
				name:        "missing email",
				body:        `{"name":"Ada Lovelace"}`,
				wantMessage: "email is required",
			},
			{
				name:        "empty body",
				body:        `{}`,
				wantMessage: "name is required",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, router := setupRouter(t, testConfig())

				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/api/demo-bookings", strings.NewReader(tt.body))

				router.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)

				var res map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, false, res["success"])
				assert.Equal(t, tt.wantMessage, res["message"])
			})
		}
	})

	t.Run("malformed email shapes", func(t *testing.T) {
		for _, email := range []string{"foo", "foo@", "@bar.com", "foo@bar", "a b@example.com"} {
			t.Run(email, func(t *testing.T) {
				_, router := setupRouter(t, testConfig())

				body := `{"name":"Ada Lovelace","email":"` + email + `"}`

				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/api/demo-bookings", strings.NewReader(body))

				router.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)

				var res map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, false, res["success"])
				assert.Equal(t, "email must be a valid email address", res["message"])
			})
		}
	})

	t.Run("permissive email shapes are accepted", func(t *testing.T) {
		for _, email := range []string{"ada@example.com", "a@b.c", "weird+tag@sub.domain.io"} {
			t.Run(email, func(t *testing.T) {
				mockService, router := setupRouter(t, testConfig())

				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.CreateDemoBookingResponse{Success: true, BookingID: 1}, nil)

				body := `{"name":"Ada Lovelace","email":"` + email + `"}`

				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/api/demo-bookings", strings.NewReader(body))

				router.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusOK, rec.Code)
			})
		}
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		_, router := setupRouter(t, testConfig())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/demo-bookings", strings.NewReader(`{"name": `))

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure maps to 500 with fixed message", func(t *testing.T) {
		mockService, router := setupRouter(t, testConfig())

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateDemoBookingResponse{}, failure.InternalErrorFromString("Failed to save booking request"))

		body := `{"name":"Ada Lovelace","email":"ada@example.com"}`

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/demo-bookings", strings.NewReader(body))

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "Failed to save booking request", res["message"])
	})
}

func TestHandler_GetDemoBookings(t *testing.T) {
	t.Run("valid admin key", func(t *testing.T) {
		mockService, router := setupRouter(t, testConfig())

		mockService.EXPECT().
			List(gomock.Any()).
			Return(dto.GetDemoBookingsResponse{
				Success: true,
				Count:   1,
				Bookings: []dto.DemoBookingResponse{
					{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", CreatedAt: "2026-08-23T10:00:00Z"},
				},
			}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/demo-bookings", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, testAdminKey)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res dto.GetDemoBookingsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, 1, res.Count)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, int64(1), res.Bookings[0].ID)
	})

	t.Run("unauthorized requests", func(t *testing.T) {
		tests := []struct {
			name   string
			header string
			setKey bool
		}{
			{name: "missing key"},
			{name: "wrong key", header: "not-the-key", setKey: true},
			{name: "empty key", header: "", setKey: true},
			{name: "case mismatch", header: strings.ToUpper(testAdminKey), setKey: true},
			{name: "padded key", header: " " + testAdminKey, setKey: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, router := setupRouter(t, testConfig())

				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/api/demo-bookings", nil)
				if tt.setKey {
					req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
				}

				router.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)

				var res map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, false, res["success"])
				assert.Equal(t, failure.UnauthorizedError.Message, res["message"])
			})
		}
	})

	t.Run("no admin key configured rejects everything", func(t *testing.T) {
		cfg := &config.Config{}
		_, router := setupRouter(t, cfg)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/demo-bookings", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "")

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("listing failure maps to 500", func(t *testing.T) {
		mockService, router := setupRouter(t, testConfig())

		mockService.EXPECT().
			List(gomock.Any()).
			Return(dto.GetDemoBookingsResponse{}, failure.InternalErrorFromString("Failed to retrieve bookings"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/demo-bookings", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, testAdminKey)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
