package mocks

import (
	"context"
	"reflect"

	"tuzona/internal/catalog"
	typesAd "tuzona/internal/types/ad"

	"github.com/golang/mock/gomock"
)

// MockAdSource is a gomock mock for catalog.AdSource.
type MockAdSource struct {
	ctrl     *gomock.Controller
	recorder *MockAdSourceMockRecorder
}

func NewMockAdSource(ctrl *gomock.Controller) *MockAdSource {
	mock := &MockAdSource{ctrl: ctrl}
	mock.recorder = &MockAdSourceMockRecorder{mock}
	return mock
}

func (m *MockAdSource) EXPECT() *MockAdSourceMockRecorder {
	return m.recorder
}

func (m *MockAdSource) FetchAdsByOwner(ctx context.Context, ownerID string) ([]catalog.RawAd, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchAdsByOwner", ctx, ownerID)
	ret0, _ := ret[0].([]catalog.RawAd)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockAdSource) FetchAllAds(ctx context.Context) ([]catalog.RawAd, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchAllAds", ctx)
	ret0, _ := ret[0].([]catalog.RawAd)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockAdSource) CreateAd(ctx context.Context, raw catalog.RawAd) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAd", ctx, raw)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockAdSource) UpdateAd(ctx context.Context, id string, patch typesAd.UpdateAd) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAd", ctx, id, patch)
	ret0, _ := ret[0].(error)
	return ret0
}

func (m *MockAdSource) DeleteAd(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAd", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

type MockAdSourceMockRecorder struct {
	mock *MockAdSource
}

func (mr *MockAdSourceMockRecorder) FetchAdsByOwner(ctx, ownerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"FetchAdsByOwner",
		reflect.TypeOf((*MockAdSource)(nil).FetchAdsByOwner),
		ctx, ownerID,
	)
}

func (mr *MockAdSourceMockRecorder) FetchAllAds(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"FetchAllAds",
		reflect.TypeOf((*MockAdSource)(nil).FetchAllAds),
		ctx,
	)
}

func (mr *MockAdSourceMockRecorder) CreateAd(ctx, raw interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"CreateAd",
		reflect.TypeOf((*MockAdSource)(nil).CreateAd),
		ctx, raw,
	)
}

func (mr *MockAdSourceMockRecorder) UpdateAd(ctx, id, patch interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"UpdateAd",
		reflect.TypeOf((*MockAdSource)(nil).UpdateAd),
		ctx, id, patch,
	)
}

func (mr *MockAdSourceMockRecorder) DeleteAd(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"DeleteAd",
		reflect.TypeOf((*MockAdSource)(nil).DeleteAd),
		ctx, id,
	)
}
