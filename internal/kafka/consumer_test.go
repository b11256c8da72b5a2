package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap/zaptest"
)

// fakeReader returns its prepared messages in order, then the prepared
// errors, then context.Canceled so Consume exits.
type fakeReader struct {
	messages []kafka.Message
	errors   []error
	idx      int
}

func (f *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if f.idx < len(f.messages) {
		msg := f.messages[f.idx]
		f.idx++
		return msg, nil
	}

	errIdx := f.idx - len(f.messages)
	if errIdx < len(f.errors) {
		err := f.errors[errIdx]
		f.idx++
		return kafka.Message{}, err
	}

	return kafka.Message{}, context.Canceled
}

func (f *fakeReader) Close() error {
	return nil
}

func TestConsumer_Consume_ValidEvent(t *testing.T) {
	evt := Event{
		UserID:    "u1",
		AdID:      "a1",
		Type:      View,
		Timestamp: time.Now().UTC(),
	}
	payload, _ := json.Marshal(evt) // nolint:errcheck

	fr := &fakeReader{
		messages: []kafka.Message{{Value: payload}},
	}
	consumer := &Consumer{
		Reader: fr,
		Logger: zaptest.NewLogger(t).Sugar(),
	}

	var received []Event
	consumer.Consume(context.Background(), func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	if len(received) != 1 {
		t.Fatalf("handler called %d times, want 1", len(received))
	}
	if received[0].AdID != evt.AdID || received[0].Type != evt.Type {
		t.Errorf("handler received %+v, want %+v", received[0], evt)
	}
}

func TestConsumer_Consume_InvalidJSON(t *testing.T) {
	fr := &fakeReader{
		messages: []kafka.Message{{Value: []byte(`{"user_id": 123, bad json`)}},
	}
	consumer := &Consumer{
		Reader: fr,
		Logger: zaptest.NewLogger(t).Sugar(),
	}

	called := false
	consumer.Consume(context.Background(), func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	if called {
		t.Error("handler must not be called for malformed JSON")
	}
}

func TestConsumer_Consume_HandlerError(t *testing.T) {
	evt := Event{UserID: "u1", Type: Delete, Timestamp: time.Now().UTC()}
	payload, _ := json.Marshal(evt) // nolint:errcheck

	fr := &fakeReader{
		messages: []kafka.Message{{Value: payload}},
		errors:   []error{errors.New("transient read error")},
	}
	consumer := &Consumer{
		Reader: fr,
		Logger: zaptest.NewLogger(t).Sugar(),
	}

	called := false
	consumer.Consume(context.Background(), func(ctx context.Context, e Event) error {
		called = true
		return errors.New("simulated handler failure")
	})

	// a failing handler is logged, not fatal
	if !called {
		t.Error("handler should still be called even when it errors")
	}
}

func TestConsumer_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockReaderInterface(ctrl)
	mr.EXPECT().Close().Return(nil)

	consumer := &Consumer{
		Reader: mr,
		Logger: zaptest.NewLogger(t).Sugar(),
	}

	if err := consumer.Close(); err != nil {
		t.Fatalf("Close returned unexpected error: %v", err)
	}
}
