package dto

import (
	"time"

	"demobook/internal/domains/booking/model"
)

// CreateDemoBookingRequest is the POST /api/demo-bookings body. Name and
// email are the only required fields; everything else is passed through
// opaque and unvalidated. Values are stored verbatim, no trimming or
// case-folding.
type CreateDemoBookingRequest struct {
	Name              string `json:"name"                validate:"required"`
	Email             string `json:"email"               validate:"required,emailshape"`
	Phone             string `json:"phone"               validate:"omitempty,max=50"`
	Organization      string `json:"organization"        validate:"omitempty,max=200"`
	OrgType           string `json:"org_type"            validate:"omitempty,max=100"`
	PreferredDate     string `json:"preferred_date"      validate:"omitempty,max=50"`
	PreferredTimeSlot string `json:"preferred_time_slot" validate:"omitempty,max=50"`
	Message           string `json:"message"             validate:"omitempty"`
}

func (c *CreateDemoBookingRequest) ToModel() model.DemoBooking {
	return model.DemoBooking{
		Name:              c.Name,
		Email:             c.Email,
		Phone:             optional(c.Phone),
		Organization:      optional(c.Organization),
		OrgType:           optional(c.OrgType),
		PreferredDate:     optional(c.PreferredDate),
		PreferredTimeSlot: optional(c.PreferredTimeSlot),
		Message:           optional(c.Message),
	}
}

// optional maps an absent form field to NULL rather than an empty string.
func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

type CreateDemoBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID int64  `json:"bookingId"`
	Message   string `json:"message"`
}

type DemoBookingResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone"`
	Organization      *string `json:"organization"`
	OrgType           *string `json:"org_type"`
	PreferredDate     *string `json:"preferred_date"`
	PreferredTimeSlot *string `json:"preferred_time_slot"`
	Message           *string `json:"message"`
	CreatedAt         string  `json:"created_at"`
}

func (r *DemoBookingResponse) FromModel(mod model.DemoBooking) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Organization = mod.Organization
	r.OrgType = mod.OrgType
	r.PreferredDate = mod.PreferredDate
	r.PreferredTimeSlot = mod.PreferredTimeSlot
	r.Message = mod.Message
	r.CreatedAt = mod.CreatedAt.Format(time.RFC3339)
}

type GetDemoBookingsResponse struct {
	Success  bool                  `json:"success"`
	Count    int                   `json:"count"`
	Bookings []DemoBookingResponse `json:"bookings"`
}

func (r *GetDemoBookingsResponse) FromModels(models []model.DemoBooking) {
	r.Success = true
	r.Count = len(models)

	r.Bookings = make([]DemoBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
