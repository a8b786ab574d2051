package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=DemoBooking=MockDemoBookingRepository

import (
	"context"
	"fmt"

	"demobook/infras/otel"
	"demobook/infras/postgres"
	"demobook/internal/domains/booking/model"
	"demobook/shared/constant"
	"demobook/shared/logger"
	"demobook/shared/timezone"
)

const (
	insertQuery = `INSERT INTO demo_bookings
		(name, email, phone, organization, org_type, preferred_date, preferred_time_slot, message, created_at)
		VALUES (:name, :email, :phone, :organization, :org_type, :preferred_date, :preferred_time_slot, :message, :created_at)
		RETURNING id`

	listAllQuery = `SELECT id, name, email, phone, organization, org_type, preferred_date, preferred_time_slot, message, created_at
		FROM demo_bookings
		ORDER BY created_at DESC, id DESC`
)

type DemoBooking interface {
	Create(ctx context.Context, booking model.DemoBooking) (model.DemoBooking, error)
	ListAll(ctx context.Context) ([]model.DemoBooking, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DemoBooking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Create appends a booking and returns the stored record with its
// store-assigned id and timestamp. The id comes from the table's sequence,
// so concurrent inserts always receive distinct, strictly increasing values.
// CreatedAt is stamped here, never taken from the caller.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.DemoBooking) (stored model.DemoBooking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	booking.CreatedAt = timezone.Now()

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, insertQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return model.DemoBooking{}, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &booking.ID, booking); err != nil {
		logger.ErrorWithStack(err)

		return model.DemoBooking{}, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

// ListAll returns every stored booking, most recent first. An empty table
// yields an empty slice, not an error.
func (repo *repositoryImpl) ListAll(ctx context.Context) (bookings []model.DemoBooking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, listAllQuery)

	bookings = []model.DemoBooking{}

	if err = repo.db.Read.SelectContext(ctx, &bookings, listAllQuery); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}
