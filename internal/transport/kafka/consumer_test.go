package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"credlock/internal/lockout/models"
)

type recordingHandler struct {
	events []models.AttemptChangeEvent
	err    error
}

func (h *recordingHandler) Process(_ context.Context, event models.AttemptChangeEvent) error {
	h.events = append(h.events, event)
	return h.err
}

func newTestConsumer(h Handler) *Consumer {
	return &Consumer{
		handler: h,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestHandleRecord_ValidEvent(t *testing.T) {
	handler := &recordingHandler{}
	consumer := newTestConsumer(handler)

	record := &kgo.Record{Value: []byte(`{"identity":"alice","before":{"count":2},"after":{"count":3}}`)}
	require.NoError(t, consumer.handleRecord(context.Background(), record))

	require.Len(t, handler.events, 1)
	assert.Equal(t, "alice", handler.events[0].Identity)
	assert.Equal(t, 2, handler.events[0].BeforeCount)
	require.NotNil(t, handler.events[0].AfterCount)
	assert.Equal(t, 3, *handler.events[0].AfterCount)
}

func TestHandleRecord_MalformedPayloadDropped(t *testing.T) {
	handler := &recordingHandler{}
	consumer := newTestConsumer(handler)

	record := &kgo.Record{Value: []byte(`not json`)}
	// Undecodable events are terminal: no error means the offset commits and
	// the poison record is not redelivered forever.
	require.NoError(t, consumer.handleRecord(context.Background(), record))
	assert.Empty(t, handler.events)
}

func TestHandleRecord_HandlerErrorPropagates(t *testing.T) {
	handler := &recordingHandler{err: errors.New("directory unavailable")}
	consumer := newTestConsumer(handler)

	record := &kgo.Record{Value: []byte(`{"identity":"alice","after":{"count":3}}`)}
	err := consumer.handleRecord(context.Background(), record)
	assert.Error(t, err, "transient failures must keep the offset uncommitted")
}
