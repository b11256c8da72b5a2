package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	typesAd "tuzona/internal/types/ad"
	myErr "tuzona/internal/types/errors"

	"go.uber.org/zap"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusSold     Status = "sold"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"

	// FilterAll matches every status in ListForOwner.
	FilterAll = "all"
)

// Seller identifies the user an ad belongs to.
type Seller struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Ad is the normalized listing record. Every Ad handed out by the catalog
// has description, condition, seller and status populated.
type Ad struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	Location    string    `json:"location"`
	Images      []string  `json:"images"`
	Status      Status    `json:"status"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	Seller      Seller    `json:"seller"`
	Featured    bool      `json:"featured"`
}

// AdSource is the data-source boundary: a remote document store or the
// local fallback store, selected by configuration. Records coming back
// from a source are raw and go through Normalize before anyone sees them.
//
//go:generate mockgen -source=catalog.go -destination=../mocks/mock_ad_source.go -package=mocks
type AdSource interface {
	FetchAdsByOwner(ctx context.Context, ownerID string) ([]RawAd, error)
	FetchAllAds(ctx context.Context) ([]RawAd, error)
	CreateAd(ctx context.Context, raw RawAd) (string, error)
	UpdateAd(ctx context.Context, id string, patch typesAd.UpdateAd) error
	DeleteAd(ctx context.Context, id string) error
}

// Catalog owns the queryable collection of ads on top of an AdSource.
type Catalog struct {
	Source AdSource
	Logger *zap.SugaredLogger
}

func NewCatalog(source AdSource, logger *zap.SugaredLogger) *Catalog {
	return &Catalog{
		Source: source,
		Logger: logger,
	}
}

// ListForOwner returns the owner's ads, optionally restricted to one
// status, newest first. Ads without a creation date sort last.
func (c *Catalog) ListForOwner(ctx context.Context, ownerID string, statusFilter string) ([]Ad, error) {
	rawAds, err := c.Source.FetchAdsByOwner(ctx, ownerID)
	if err != nil {
		c.Logger.Errorf("Error fetching ads for owner %s: %v", ownerID, err)
		return nil, myErr.ErrSourceUnavailable
	}

	ads := make([]Ad, 0, len(rawAds))
	for _, raw := range rawAds {
		a := Normalize(raw)
		if a.Seller.ID != ownerID {
			continue
		}
		if statusFilter != "" && statusFilter != FilterAll && a.Status != Status(statusFilter) {
			continue
		}
		ads = append(ads, a)
	}

	sortByCreatedAtDesc(ads)

	return ads, nil
}

// Search filters the whole catalog by free text and region. Both filters
// empty means "browse all": the entire catalog comes back in source order.
func (c *Catalog) Search(ctx context.Context, query string, region string) ([]Ad, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	ads := make([]Ad, 0, len(all))
	for _, a := range all {
		if matchesQuery(a, query) && matchesRegion(a, region) {
			ads = append(ads, a)
		}
	}

	return ads, nil
}

// Featured returns the ads marked for the featured section, newest first.
func (c *Catalog) Featured(ctx context.Context) ([]Ad, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	ads := make([]Ad, 0)
	for _, a := range all {
		if a.Featured && a.Status == StatusActive {
			ads = append(ads, a)
		}
	}

	sortByCreatedAtDesc(ads)

	return ads, nil
}

// Get returns a single ad by id.
func (c *Catalog) Get(ctx context.Context, id string) (*Ad, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}

	return nil, myErr.ErrNotFound
}

// Publish creates a new ad owned by seller and returns its normalized form.
func (c *Catalog) Publish(ctx context.Context, form typesAd.PublishAd, seller Seller) (*Ad, error) {
	raw := RawAd{
		Title:       form.Title,
		Description: form.Description,
		Price:       form.Price,
		Category:    form.Category,
		Condition:   form.Condition,
		Location:    form.Location,
		Images:      form.Images,
		Status:      string(StatusActive),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Seller:      &seller,
		Featured:    form.Featured,
	}

	id, err := c.Source.CreateAd(ctx, raw)
	if err != nil {
		c.Logger.Errorf("Error creating ad: %v", err)
		return nil, myErr.ErrSourceUnavailable
	}

	raw.ID = id
	a := Normalize(raw)

	return &a, nil
}

// Update applies an owner-only patch to an existing ad.
func (c *Catalog) Update(ctx context.Context, id string, patch typesAd.UpdateAd, requesterID string) error {
	a, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if a.Seller.ID != requesterID {
		return myErr.ErrNotOwner
	}

	if err := c.Source.UpdateAd(ctx, id, patch); err != nil {
		c.Logger.Errorf("Error updating ad %s: %v", id, err)
		return myErr.ErrSourceUnavailable
	}

	return nil
}

// Delete removes an ad permanently. Only the recorded seller may delete;
// everyone else gets ErrNotOwner and the catalog stays untouched.
func (c *Catalog) Delete(ctx context.Context, adID string, requesterID string) error {
	a, err := c.Get(ctx, adID)
	if err != nil {
		return err
	}
	if a.Seller.ID != requesterID {
		return myErr.ErrNotOwner
	}

	if err := c.Source.DeleteAd(ctx, adID); err != nil {
		c.Logger.Errorf("Error deleting ad %s: %v", adID, err)
		return myErr.ErrSourceUnavailable
	}

	return nil
}

func (c *Catalog) fetchAll(ctx context.Context) ([]Ad, error) {
	rawAds, err := c.Source.FetchAllAds(ctx)
	if err != nil {
		c.Logger.Errorf("Error fetching ads: %v", err)
		return nil, myErr.ErrSourceUnavailable
	}

	ads := make([]Ad, 0, len(rawAds))
	for _, raw := range rawAds {
		ads = append(ads, Normalize(raw))
	}

	return ads, nil
}

// sortByCreatedAtDesc orders newest first. The sort is stable so ads
// sharing a timestamp keep their source order; zero timestamps are the
// oldest possible value and end up last.
func sortByCreatedAtDesc(ads []Ad) {
	sort.SliceStable(ads, func(i, j int) bool {
		return ads[i].CreatedAt.After(ads[j].CreatedAt)
	})
}

func matchesQuery(a Ad, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Description), q) ||
		strings.Contains(strings.ToLower(a.Category), q)
}

// matchesRegion compares loosely in both directions, so "Bogotá" finds
// "Bogotá, Chapinero" and "Bogotá, Chapinero" as a filter still finds
// ads located in plain "Bogotá".
func matchesRegion(a Ad, region string) bool {
	if region == "" {
		return true
	}

	location := strings.ToLower(a.Location)
	reg := strings.ToLower(region)

	if strings.Contains(location, reg) {
		return true
	}

	firstSegment := strings.Split(location, ",")[0]

	return strings.Contains(reg, firstSegment)
}
