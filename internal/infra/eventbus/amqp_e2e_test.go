//go:build e2e

package eventbus_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Zolbayar-hub/holisticweb/internal/infra/eventbus"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/config"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/commands"
)

func startRabbit(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5672")
	require.NoError(t, err)
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func TestAMQPPublisher_PublishBookingCreated(t *testing.T) {
	url := startRabbit(t)
	cfg := config.AMQPConfig{URL: url, Queue: "booking.created.test"}
	p := eventbus.NewPublisher(cfg, testutil.DiscardLogger())

	serviceID := int64(7)
	event := commands.BookingCreatedEvent{
		BookingID:    42,
		CustomerName: "Anna Lee",
		Email:        "anna@example.com",
		ServiceID:    &serviceID,
		StartTime:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
		Status:       "pending",
		CreatedAt:    time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishBookingCreated(context.Background(), event))

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	msg, ok, err := ch.Get(cfg.Queue, true)
	require.NoError(t, err)
	require.True(t, ok, "expected one message on the queue")

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var got commands.BookingCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, event.BookingID, got.BookingID)
	assert.Equal(t, event.CustomerName, got.CustomerName)
	require.NotNil(t, got.ServiceID)
	assert.Equal(t, serviceID, *got.ServiceID)
	assert.True(t, got.StartTime.Equal(event.StartTime))
}
