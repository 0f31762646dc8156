package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/metrics"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

const (
	DefaultReminderLead = 20 * time.Minute
	DefaultReminderSlop = 5 * time.Minute
)

type ScanReport struct {
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Found       int       `json:"found"`
	Sent        int       `json:"sent"`
	Skipped     int       `json:"skipped"`
	Failed      int       `json:"failed"`
}

// ReminderScanner texts customers whose appointment starts inside
// [now+lead, now+lead+slop]. It keeps no record of what was sent.
type ReminderScanner struct {
	bookings  BookingWindowReader
	sms       *SMSSender
	resolver  *Resolver
	formatter *TokenFormatter
	clock     clock.Clock
	lead      time.Duration
	slop      time.Duration
	logger    *slog.Logger
}

func NewReminderScanner(
	bookings BookingWindowReader,
	sms *SMSSender,
	resolver *Resolver,
	formatter *TokenFormatter,
	clock clock.Clock,
	lead, slop time.Duration,
	logger *slog.Logger,
) *ReminderScanner {
	if lead <= 0 {
		lead = DefaultReminderLead
	}
	if slop < 0 {
		slop = DefaultReminderSlop
	}
	return &ReminderScanner{
		bookings:  bookings,
		sms:       sms,
		resolver:  resolver,
		formatter: formatter,
		clock:     clock,
		lead:      lead,
		slop:      slop,
		logger:    logger,
	}
}

// Window returns the inclusive start-time range scanned at now.
func (s *ReminderScanner) Window(now time.Time) (time.Time, time.Time) {
	from := now.Add(s.lead)
	return from, from.Add(s.slop)
}

func (s *ReminderScanner) Scan(ctx context.Context) (ScanReport, error) {
	from, to := s.Window(s.clock.Now().UTC())
	report := ScanReport{WindowStart: from, WindowEnd: to}

	candidates, err := s.bookings.FindStartingBetween(ctx, from, to)
	if err != nil {
		return report, err
	}
	report.Found = len(candidates)

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if c.Phone == nil || *c.Phone == "" {
			report.Skipped++
			s.logger.Info("no phone number for booking, reminder skipped", "booking_id", c.BookingID)
			continue
		}

		_, body := s.resolver.Resolve(ctx, notification.TemplateBookingReminderSMS, s.tokens(c))
		if err := s.sms.Send(ctx, *c.Phone, body); err != nil {
			if isPermanent(err) {
				report.Skipped++
			} else {
				report.Failed++
			}
			continue
		}
		report.Sent++
	}

	metrics.AddReminderScan("sent", report.Sent)
	metrics.AddReminderScan("skipped", report.Skipped)
	metrics.AddReminderScan("failed", report.Failed)
	s.logger.Info("reminder scan finished",
		"window_start", from,
		"window_end", to,
		"found", report.Found,
		"sent", report.Sent,
		"skipped", report.Skipped,
		"failed", report.Failed)
	return report, nil
}

func (s *ReminderScanner) tokens(c *queries.ReminderCandidate) notification.Tokens {
	d := BookingDetails{
		BookingID:         c.BookingID,
		CustomerName:      c.CustomerName,
		Email:             c.Email,
		ServicePriceCents: c.ServicePriceCents,
		Start:             c.StartTime,
		End:               c.EndTime,
		Status:            c.Status,
		NumPeople:         c.NumPeople,
	}
	if c.Phone != nil {
		d.Phone = *c.Phone
	}
	if c.ServiceName != nil {
		d.ServiceName = *c.ServiceName
	}
	if c.ServiceDescription != nil {
		d.ServiceDescription = *c.ServiceDescription
	}
	return s.formatter.BookingTokens(d)
}
