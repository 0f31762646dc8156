//go:build unit

package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	notifymock "github.com/Zolbayar-hub/holisticweb/internal/mock/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/clock"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/notify"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

func candidate(id int64, phone *string, start time.Time) *queries.ReminderCandidate {
	name := "Reiki Session"
	return &queries.ReminderCandidate{
		BookingID:    id,
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Phone:        phone,
		ServiceName:  &name,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		NumPeople:    1,
		Status:       "confirmed",
	}
}

func strPtr(s string) *string { return &s }

func TestReminderScanner_Window(t *testing.T) {
	s := notify.NewReminderScanner(nil, nil, nil, nil, clock.NewMockClock(baseTime), 0, -1, testutil.DiscardLogger())

	from, to := s.Window(baseTime)

	assert.Equal(t, baseTime.Add(20*time.Minute), from)
	assert.Equal(t, baseTime.Add(25*time.Minute), to)
}

func TestReminderScanner_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := testutil.DiscardLogger()

	reader := notifymock.NewMockBookingWindowReader(ctrl)
	reader.EXPECT().
		FindStartingBetween(gomock.Any(), baseTime.Add(20*time.Minute), baseTime.Add(25*time.Minute)).
		Return([]*queries.ReminderCandidate{
			candidate(1, strPtr("(555) 123-4567"), baseTime.Add(20*time.Minute)),
			candidate(2, nil, baseTime.Add(22*time.Minute)),
			candidate(3, strPtr("123"), baseTime.Add(23*time.Minute)),
			candidate(4, strPtr("5559876543"), baseTime.Add(25*time.Minute)),
		}, nil)

	gateway := notifymock.NewMockSMSGateway(ctrl)
	gateway.EXPECT().SendSMS(gomock.Any(), "+15551234567", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Hello Jane Doe,")
			assert.Contains(t, body, "2025-03-10 01:20 PM")
			return "SM1", nil
		})
	gateway.EXPECT().SendSMS(gomock.Any(), "+15559876543", gomock.Any()).Return("", assert.AnError)

	s := notify.NewReminderScanner(
		reader,
		notify.NewSMSSender(gateway, "1", logger),
		defaultsOnlyResolver(ctrl),
		notify.NewTokenFormatter("UTC", "Holistic Web"),
		clock.NewMockClock(baseTime),
		20*time.Minute,
		5*time.Minute,
		logger,
	)

	report, err := s.Scan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, notify.ScanReport{
		WindowStart: baseTime.Add(20 * time.Minute),
		WindowEnd:   baseTime.Add(25 * time.Minute),
		Found:       4,
		Sent:        1,
		Skipped:     2,
		Failed:      1,
	}, report)
}

func TestReminderScanner_TokensCarryBookingDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := testutil.DiscardLogger()

	c := candidate(7, strPtr("5551234567"), baseTime.Add(21*time.Minute))
	c.NumPeople = 4
	price := int64(5000)
	c.ServicePriceCents = &price
	c.ServiceDescription = strPtr("Energy healing")

	reader := notifymock.NewMockBookingWindowReader(ctrl)
	reader.EXPECT().FindStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.ReminderCandidate{c}, nil)

	lookup := notifymock.NewMockTemplateLookup(ctrl)
	lookup.EXPECT().FindByName(gomock.Any(), notification.TemplateBookingReminderSMS).
		Return(&queries.TemplateView{
			Name: notification.TemplateBookingReminderSMS,
			Body: "{user_name}: party of {num_people}, {service_name} ({service_description}) {service_price}",
		}, nil)

	gateway := notifymock.NewMockSMSGateway(ctrl)
	gateway.EXPECT().SendSMS(gomock.Any(), "+15551234567",
		"Jane Doe: party of 4, Reiki Session (Energy healing) $50").
		Return("SM7", nil)

	s := notify.NewReminderScanner(
		reader,
		notify.NewSMSSender(gateway, "1", logger),
		notify.NewResolver(lookup, logger),
		notify.NewTokenFormatter("UTC", "Holistic Web"),
		clock.NewMockClock(baseTime),
		20*time.Minute,
		5*time.Minute,
		logger,
	)

	report, err := s.Scan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
}

func TestReminderScanner_ReaderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	reader := notifymock.NewMockBookingWindowReader(ctrl)
	reader.EXPECT().FindStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	s := notify.NewReminderScanner(reader, notify.NewDisabledSMSSender(testutil.DiscardLogger()), defaultsOnlyResolver(ctrl),
		notify.NewTokenFormatter("UTC", "x"), clock.NewMockClock(baseTime), 0, 0, testutil.DiscardLogger())

	_, err := s.Scan(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}

func TestReminderScanner_DisabledSMSSkipsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)

	reader := notifymock.NewMockBookingWindowReader(ctrl)
	reader.EXPECT().FindStartingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.ReminderCandidate{candidate(1, strPtr("5551234567"), baseTime.Add(21*time.Minute))}, nil)

	s := notify.NewReminderScanner(reader, notify.NewDisabledSMSSender(testutil.DiscardLogger()), defaultsOnlyResolver(ctrl),
		notify.NewTokenFormatter("UTC", "x"), clock.NewMockClock(baseTime), 0, 0, testutil.DiscardLogger())

	report, err := s.Scan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Sent)
}
