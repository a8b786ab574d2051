package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"demobook/config"
	"demobook/infras/otel"
	"demobook/internal/domains/booking/model"
	"demobook/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Notifier sends the two booking emails. Both sends are best-effort: the
// booking is already durable and the HTTP response already committed by the
// time either method runs, so errors are returned for logging only and must
// never be turned into a client-visible failure.
type Notifier interface {
	SendConfirmation(ctx context.Context, email, name string) error
	SendAdminAlert(ctx context.Context, bookingID int64, booking model.DemoBooking) error
}

// New constructs the notifier once at startup. The SMTP transport is an
// optional capability: without all of host, user and pass every send is a
// logged no-op.
func New(cfg *config.Config, otl otel.Otel) Notifier {
	if !cfg.MailEnabled() {
		log.Warn().Msg("SMTP transport not configured, email notifications disabled")

		return &disabledNotifier{}
	}

	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTP.User
	}

	return &smtpNotifier{
		dialer:     gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass),
		from:       from,
		adminEmail: cfg.AdminEmail,
		otel:       otl,
	}
}

type smtpNotifier struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	otel       otel.Otel
}

func (n *smtpNotifier) SendConfirmation(ctx context.Context, email, name string) (err error) {
	_, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".SendConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for requesting a demo. We've received your request and will be in touch shortly to confirm a time.\n",
		name,
	)

	if err = n.send(email, "Your demo request has been received", body); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

func (n *smtpNotifier) SendAdminAlert(ctx context.Context, bookingID int64, booking model.DemoBooking) (err error) {
	_, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".SendAdminAlert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if n.adminEmail == "" {
		log.Warn().Int64("bookingId", bookingID).Msg("no admin email configured, skipping admin alert")

		return nil
	}

	body := fmt.Sprintf(
		"New demo booking #%d\n\nName: %s\nEmail: %s\nPhone: %s\nOrganization: %s\nOrg type: %s\nPreferred date: %s\nPreferred time slot: %s\nMessage: %s\nSubmitted at: %s\n",
		bookingID,
		booking.Name,
		booking.Email,
		orDash(booking.Phone),
		orDash(booking.Organization),
		orDash(booking.OrgType),
		orDash(booking.PreferredDate),
		orDash(booking.PreferredTimeSlot),
		orDash(booking.Message),
		booking.CreatedAt.Format(time.RFC3339),
	)

	if err = n.send(n.adminEmail, fmt.Sprintf("New demo booking #%d", bookingID), body); err != nil {
		return fmt.Errorf("failed to send admin alert email: %w", err)
	}

	return nil
}

func (n *smtpNotifier) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return n.dialer.DialAndSend(msg)
}

func orDash(value *string) string {
	if value == nil {
		return "-"
	}

	return *value
}

// disabledNotifier is the no-op stand-in used when SMTP configuration is
// absent. Every call logs that the send was skipped and succeeds.
type disabledNotifier struct{}

func (n *disabledNotifier) SendConfirmation(_ context.Context, email, _ string) error {
	log.Info().Str("to", email).Msg("email notifications disabled, skipping confirmation")

	return nil
}

func (n *disabledNotifier) SendAdminAlert(_ context.Context, bookingID int64, _ model.DemoBooking) error {
	log.Info().Int64("bookingId", bookingID).Msg("email notifications disabled, skipping admin alert")

	return nil
}
