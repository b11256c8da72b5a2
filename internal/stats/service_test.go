package stats

import (
	"context"
	"errors"
	"testing"

	"tuzona/internal/kafka"
	"tuzona/internal/user"
)

type fakeRepo struct {
	viewsCalled   bool
	recountCalled bool
	lastAdID      string
	lastSellerID  string
	returnErr     error
}

func (f *fakeRepo) IncrementViews(ctx context.Context, adID, sellerID string) error {
	f.viewsCalled = true
	f.lastAdID = adID
	f.lastSellerID = sellerID
	return f.returnErr
}

func (f *fakeRepo) RecountAds(ctx context.Context, sellerID string) error {
	f.recountCalled = true
	f.lastSellerID = sellerID
	return f.returnErr
}

func (f *fakeRepo) StatsFor(ctx context.Context, sellerID string) (*user.Stats, error) {
	return &user.Stats{}, f.returnErr
}

func TestService_ProcessEvent_View(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		UserID:   "visitor-1",
		AdID:     "ad-1",
		SellerID: "u-1",
		Type:     kafka.View,
	}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.viewsCalled {
		t.Fatal("expected IncrementViews to be called")
	}
	if repo.lastAdID != "ad-1" || repo.lastSellerID != "u-1" {
		t.Errorf("unexpected args: ad=%s seller=%s", repo.lastAdID, repo.lastSellerID)
	}
}

func TestService_ProcessEvent_ViewWithoutAd(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		UserID: "visitor-1",
		Type:   kafka.View,
	}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.viewsCalled {
		t.Error("expected IncrementViews NOT to be called without ad and seller ids")
	}
}

func TestService_ProcessEvent_PublishAndDelete(t *testing.T) {
	for _, typ := range []kafka.EventType{kafka.Publish, kafka.Delete} {
		repo := &fakeRepo{}
		service := NewService(repo, zapTestLogger(t))

		evt := kafka.Event{
			UserID:   "u-1",
			SellerID: "u-1",
			Type:     typ,
		}

		if err := service.ProcessEvent(context.Background(), evt); err != nil {
			t.Fatalf("%s: unexpected error: %v", typ, err)
		}
		if !repo.recountCalled {
			t.Errorf("%s: expected RecountAds to be called", typ)
		}
	}
}

func TestService_ProcessEvent_SearchIgnored(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		UserID: "visitor-1",
		Type:   kafka.Search,
	}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.viewsCalled || repo.recountCalled {
		t.Error("expected no repo calls for search events")
	}
}

func TestService_ProcessEvent_RepoError(t *testing.T) {
	repo := &fakeRepo{returnErr: errors.New("db down")}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		UserID:   "u-1",
		AdID:     "ad-1",
		SellerID: "u-1",
		Type:     kafka.View,
	}

	if err := service.ProcessEvent(context.Background(), evt); err == nil {
		t.Fatal("expected error from repo to propagate")
	}
}
