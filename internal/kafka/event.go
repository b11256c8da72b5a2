package kafka

import "time"

type EventType string

const (
	Search  EventType = "search"
	View    EventType = "view"
	Publish EventType = "publish"
	Delete  EventType = "delete"
)

// Event is what the API emits for every catalog interaction; the stats
// service folds these into per-user and per-ad counters.
type Event struct {
	UserID    string    `json:"user_id"`
	AdID      string    `json:"ad_id,omitempty"`
	SellerID  string    `json:"seller_id,omitempty"`
	Type      EventType `json:"type"`
	Category  string    `json:"category,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
