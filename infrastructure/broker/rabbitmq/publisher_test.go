package rabbitmq

import (
	"context"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func testEvent() *domain.MetricsUpdatedEvent {
	return &domain.MetricsUpdatedEvent{
		UploadID:    "abc123",
		FileName:    "data.json",
		SizeBytes:   512,
		LastUpdated: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		KPIs:        []byte(`{"total_revenue":117000}`),
	}
}

func TestPublisher_PublishMetricsUpdated(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &Publisher{channel: ch, exchange: "bizmetrics", routingKey: "metrics.updated"}

	err := publisher.PublishMetricsUpdated(context.Background(), testEvent())

	require.NoError(t, err)
	assert.Equal(t, "bizmetrics", ch.exchange)
	assert.Equal(t, "metrics.updated", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "abc123", ch.msg.MessageId)
	assert.JSONEq(t, `{
		"upload_id": "abc123",
		"file_name": "data.json",
		"size_bytes": 512,
		"last_updated": "2025-06-01T12:00:00Z",
		"kpis": {"total_revenue": 117000}
	}`, string(ch.msg.Body))
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: assert.AnError}
	publisher := &Publisher{channel: ch, exchange: "bizmetrics", routingKey: "metrics.updated"}

	err := publisher.PublishMetricsUpdated(context.Background(), testEvent())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &Publisher{channel: ch}

	assert.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}
