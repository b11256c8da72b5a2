package mocks

import (
	"reflect"

	"tuzona/internal/user"
	types "tuzona/internal/types/user"

	"github.com/golang/mock/gomock"
)

// MockUserRepo is a gomock mock for user.UserRepo.
type MockUserRepo struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepoMockRecorder
}

func NewMockUserRepo(ctrl *gomock.Controller) *MockUserRepo {
	mock := &MockUserRepo{ctrl: ctrl}
	mock.recorder = &MockUserRepoMockRecorder{mock}
	return mock
}

func (m *MockUserRepo) EXPECT() *MockUserRepoMockRecorder {
	return m.recorder
}

func (m *MockUserRepo) CheckUser(email, password string) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckUser", email, password)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockUserRepo) CreateUser(u types.CreateUser) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", u)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockUserRepo) Info(userID string) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Info", userID)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockUserRepo) ChangeProfile(userID string, updateUser types.ChangeUser) (*user.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChangeProfile", userID, updateUser)
	ret0, _ := ret[0].(*user.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockUserRepo) Stats(userID string) (*user.Stats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats", userID)
	ret0, _ := ret[0].(*user.Stats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

type MockUserRepoMockRecorder struct {
	mock *MockUserRepo
}

func (mr *MockUserRepoMockRecorder) CheckUser(email, password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"CheckUser",
		reflect.TypeOf((*MockUserRepo)(nil).CheckUser),
		email, password,
	)
}

func (mr *MockUserRepoMockRecorder) CreateUser(u interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"CreateUser",
		reflect.TypeOf((*MockUserRepo)(nil).CreateUser),
		u,
	)
}

func (mr *MockUserRepoMockRecorder) Info(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Info",
		reflect.TypeOf((*MockUserRepo)(nil).Info),
		userID,
	)
}

func (mr *MockUserRepoMockRecorder) ChangeProfile(userID, updateUser interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"ChangeProfile",
		reflect.TypeOf((*MockUserRepo)(nil).ChangeProfile),
		userID, updateUser,
	)
}

func (mr *MockUserRepoMockRecorder) Stats(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Stats",
		reflect.TypeOf((*MockUserRepo)(nil).Stats),
		userID,
	)
}
