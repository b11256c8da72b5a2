package mocks

import (
	"context"
	"net/http"
	"reflect"

	"tuzona/internal/session"

	"github.com/golang/mock/gomock"
)

// MockSessionRepo is a gomock mock for session.SessionRepo.
type MockSessionRepo struct {
	ctrl     *gomock.Controller
	recorder *MockSessionRepoMockRecorder
}

func NewMockSessionRepo(ctrl *gomock.Controller) *MockSessionRepo {
	mock := &MockSessionRepo{ctrl: ctrl}
	mock.recorder = &MockSessionRepoMockRecorder{mock}
	return mock
}

func (m *MockSessionRepo) EXPECT() *MockSessionRepoMockRecorder {
	return m.recorder
}

func (m *MockSessionRepo) CreateSession(ctx context.Context, w http.ResponseWriter, userID string, email string) (*session.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSession", ctx, w, userID, email)
	ret0, _ := ret[0].(*session.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockSessionRepo) CheckSession(r *http.Request) (*session.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckSession", r)
	ret0, _ := ret[0].(*session.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockSessionRepo) ExtendSession(ctx context.Context, sessionID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtendSession", ctx, sessionID)
	ret0, _ := ret[0].(error)
	return ret0
}

type MockSessionRepoMockRecorder struct {
	mock *MockSessionRepo
}

func (mr *MockSessionRepoMockRecorder) CreateSession(ctx, w, userID, email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"CreateSession",
		reflect.TypeOf((*MockSessionRepo)(nil).CreateSession),
		ctx, w, userID, email,
	)
}

func (mr *MockSessionRepoMockRecorder) CheckSession(r interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"CheckSession",
		reflect.TypeOf((*MockSessionRepo)(nil).CheckSession),
		r,
	)
}

func (mr *MockSessionRepoMockRecorder) ExtendSession(ctx, sessionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"ExtendSession",
		reflect.TypeOf((*MockSessionRepo)(nil).ExtendSession),
		ctx, sessionID,
	)
}
