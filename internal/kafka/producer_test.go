package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (w *flakyWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *flakyWriter) Close() error { return nil }

func newTestProducer(w *flakyWriter, opts ...ProducerOption) *Producer {
	p := NewProducer([]string{"localhost:9092"}, opts...)
	p.writer = w
	return p
}

func TestPublish_RetriesUntilWritten(t *testing.T) {
	w := &flakyWriter{failures: 2}
	p := newTestProducer(w, WithRetries(3, time.Millisecond))

	err := p.Publish(context.Background(), "order-events", "order-1", map[string]int{"order_id": 1})

	require.NoError(t, err)
	assert.Equal(t, 3, w.calls)
	require.Len(t, w.written, 1)
	assert.Equal(t, "order-events", w.written[0].Topic)
	assert.Equal(t, "order-1", string(w.written[0].Key))
	var body map[string]int
	require.NoError(t, json.Unmarshal(w.written[0].Value, &body))
	assert.Equal(t, 1, body["order_id"])
}

func TestPublish_GivesUpAfterAttempts(t *testing.T) {
	w := &flakyWriter{failures: 5}
	p := newTestProducer(w, WithRetries(2, time.Millisecond))

	err := p.Publish(context.Background(), "order-events", "order-1", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, 2, w.calls)
}

func TestPublish_SingleAttemptByDefault(t *testing.T) {
	w := &flakyWriter{failures: 1}
	p := newTestProducer(w)

	assert.Error(t, p.Publish(context.Background(), "t", "k", "x"))
	assert.Equal(t, 1, w.calls)
}

func TestPublish_StopsWhenContextDone(t *testing.T) {
	w := &flakyWriter{failures: 5}
	p := newTestProducer(w, WithRetries(5, time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, "t", "k", "x")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, w.calls)
}

func TestCheckConnectionWithoutBrokers(t *testing.T) {
	p := NewProducer(nil)
	assert.Error(t, p.CheckConnection(t.Context()))
	assert.NoError(t, p.Close())
}
