package dto_test

import (
	"testing"
	"time"

	"demobook/internal/domains/booking/model"
	"demobook/internal/domains/booking/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDemoBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateDemoBookingRequest{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Phone:        "+1 555 0100",
		Organization: "Analytical Engines",
	}

	mod := req.ToModel()

	assert.Equal(t, req.Name, mod.Name)
	assert.Equal(t, req.Email, mod.Email)
	require.NotNil(t, mod.Phone)
	assert.Equal(t, req.Phone, *mod.Phone)
	require.NotNil(t, mod.Organization)
	assert.Equal(t, req.Organization, *mod.Organization)

	assert.Nil(t, mod.OrgType, "expected absent fields to map to nil")
	assert.Nil(t, mod.PreferredDate)
	assert.Nil(t, mod.PreferredTimeSlot)
	assert.Nil(t, mod.Message)

	assert.Zero(t, mod.ID, "id is assigned by the store, not the request")
	assert.True(t, mod.CreatedAt.IsZero(), "created_at is assigned by the store, not the request")
}

func TestDemoBookingResponse_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	message := "Looking forward to it"

	mod := model.DemoBooking{
		ID:        7,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Message:   &message,
		CreatedAt: createdAt,
	}

	var res dto.DemoBookingResponse
	res.FromModel(mod)

	assert.Equal(t, mod.ID, res.ID)
	assert.Equal(t, mod.Name, res.Name)
	assert.Equal(t, mod.Email, res.Email)
	assert.Equal(t, mod.Message, res.Message)
	assert.Nil(t, res.Phone)
	assert.Equal(t, "2026-08-23T10:30:00Z", res.CreatedAt)
}

func TestGetDemoBookingsResponse_FromModels(t *testing.T) {
	now := time.Now()

	models := []model.DemoBooking{
		{ID: 2, Name: "Second", Email: "second@example.com", CreatedAt: now},
		{ID: 1, Name: "First", Email: "first@example.com", CreatedAt: now.Add(-time.Hour)},
	}

	var res dto.GetDemoBookingsResponse
	res.FromModels(models)

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, int64(2), res.Bookings[0].ID, "expected repository order to be preserved")
	assert.Equal(t, int64(1), res.Bookings[1].ID)
}

func TestGetDemoBookingsResponse_FromModels_Empty(t *testing.T) {
	var res dto.GetDemoBookingsResponse
	res.FromModels([]model.DemoBooking{})

	assert.True(t, res.Success)
	assert.Zero(t, res.Count)
	assert.NotNil(t, res.Bookings, "empty list must serialize as [], not null")
	assert.Empty(t, res.Bookings)
}
