package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := domain.Event{ID: "evt-1", Type: domain.AuditStatusChanged, OrderID: 42, OrderCode: "PED-42", FromStatus: domain.StatusPaid, ToStatus: domain.StatusShipping, OccurredAt: at}

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	require.Equal(t, "42", string(msg.Key))
	require.Equal(t, "order.status_changed", string(msg.Headers[0].Value))

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, event, decoded)

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}

func TestKafkaPublisher_WriteFailure(t *testing.T) {
	p := newPublisher(&fakeWriter{err: errors.New("leader not available")})
	err := p.Publish(context.Background(), domain.Event{ID: "evt-2", OrderID: 1})
	require.ErrorContains(t, err, "leader not available")
}

func TestNewKafkaPublisher_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "")
	require.Error(t, err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "")
	require.NoError(t, err)
	require.Equal(t, DefaultTopic, p.writer.(*kafka.Writer).Topic)
	require.NoError(t, NoopPublisher{}.Publish(context.Background(), domain.Event{}))
}
