package mocks

import (
	"context"
	"reflect"

	"tuzona/internal/kafka"

	"github.com/golang/mock/gomock"
)

// MockEventProducer is a gomock mock for kafka.EventProducer.
type MockEventProducer struct {
	ctrl     *gomock.Controller
	recorder *MockEventProducerMockRecorder
}

func NewMockEventProducer(ctrl *gomock.Controller) *MockEventProducer {
	mock := &MockEventProducer{ctrl: ctrl}
	mock.recorder = &MockEventProducerMockRecorder{mock}
	return mock
}

func (m *MockEventProducer) EXPECT() *MockEventProducerMockRecorder {
	return m.recorder
}

func (m *MockEventProducer) SendEvent(ctx context.Context, event kafka.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendEvent", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

func (m *MockEventProducer) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

type MockEventProducerMockRecorder struct {
	mock *MockEventProducer
}

func (mr *MockEventProducerMockRecorder) SendEvent(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"SendEvent",
		reflect.TypeOf((*MockEventProducer)(nil).SendEvent),
		ctx, event,
	)
}

func (mr *MockEventProducerMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Close",
		reflect.TypeOf((*MockEventProducer)(nil).Close),
	)
}
