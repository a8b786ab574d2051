package model

import (
	"time"
)

const (
	TableName  = "demo_bookings"
	EntityName = "demo booking"

	FieldID                = "id"
	FieldName              = "name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldOrganization      = "organization"
	FieldOrgType           = "org_type"
	FieldPreferredDate     = "preferred_date"
	FieldPreferredTimeSlot = "preferred_time_slot"
	FieldMessage           = "message"
	FieldCreatedAt         = "created_at"
)

// DemoBooking is a single demo-request submission. ID and CreatedAt are
// assigned by the store on insert and never change afterwards; nothing in
// this system updates or deletes a stored booking.
type DemoBooking struct {
	ID                int64     `db:"id"`
	Name              string    `db:"name"`
	Email             string    `db:"email"`
	Phone             *string   `db:"phone"`
	Organization      *string   `db:"organization"`
	OrgType           *string   `db:"org_type"`
	PreferredDate     *string   `db:"preferred_date"`
	PreferredTimeSlot *string   `db:"preferred_time_slot"`
	Message           *string   `db:"message"`
	CreatedAt         time.Time `db:"created_at"`
}
