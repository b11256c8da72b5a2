package ad

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tuzona/internal/catalog"
	"tuzona/internal/contextutil"
	"tuzona/internal/kafka"
	typesAd "tuzona/internal/types/ad"
	myErr "tuzona/internal/types/errors"
	"tuzona/internal/user"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AdHandler struct {
	Logger   *zap.SugaredLogger
	Catalog  *catalog.Catalog
	UserRepo user.UserRepo
	Events   kafka.EventProducer
}

func NewAdHandler(l *zap.SugaredLogger, c *catalog.Catalog, ur user.UserRepo, ep kafka.EventProducer) *AdHandler {
	return &AdHandler{
		Logger:   l,
		Catalog:  c,
		UserRepo: ur,
		Events:   ep,
	}
}

// emit pushes an interaction event. A broker hiccup must never fail the
// request, so errors only get logged.
func (h *AdHandler) emit(r *http.Request, event kafka.Event) {
	if h.Events == nil {
		return
	}

	event.Timestamp = time.Now()
	if event.UserID == "" {
		if userID, ok := contextutil.GetUserIDFromContext(r.Context()); ok {
			event.UserID = userID
		}
	}

	if err := h.Events.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send %s event: %v", event.Type, err)
	}
}

// Publish handles POST /ads
func (h *AdHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	var form typesAd.PublishAd
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	profile, err := h.UserRepo.Info(userID)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	seller := catalog.Seller{
		ID:    profile.ID,
		Name:  profile.Name,
		Phone: profile.Phone,
		Email: profile.Email,
	}

	published, err := h.Catalog.Publish(r.Context(), form, seller)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.emit(r, kafka.Event{
		AdID:     published.ID,
		SellerID: userID,
		Type:     kafka.Publish,
		Category: published.Category,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(published); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("ad published: %s", published.ID)
}

// GetByID handles GET /ads/{id}
func (h *AdHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		myErr.SendErrorTo(w, errors.New("missing ad id"), http.StatusBadRequest, h.Logger)
		return
	}

	found, err := h.Catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.emit(r, kafka.Event{
		AdID:     found.ID,
		SellerID: found.Seller.ID,
		Type:     kafka.View,
		Category: found.Category,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(found); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("fetched ad by id: %s", id)
}

// GetCard handles GET /ads/{id}/card and returns the display shape the
// listing cards are rendered from.
func (h *AdHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	found, err := h.Catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	view := catalog.Project(*found)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}
}

// Search handles GET /ads/search?q={query}&region={region}
func (h *AdHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	region := r.URL.Query().Get("region")

	ads, err := h.Catalog.Search(r.Context(), q, region)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.emit(r, kafka.Event{Type: kafka.Search})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ads); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("searched ads with query: %q region: %q", q, region)
}

// Featured handles GET /ads/featured
func (h *AdHandler) Featured(w http.ResponseWriter, r *http.Request) {
	ads, err := h.Catalog.Featured(r.Context())
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ads); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}
}

// ListMine handles GET /my/ads?status={filter}
func (h *AdHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	statusFilter := r.URL.Query().Get("status")

	ads, err := h.Catalog.ListForOwner(r.Context(), userID, statusFilter)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ads); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("listed ads for owner: %s", userID)
}

// Update handles PUT /ads/{id}
func (h *AdHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	var patch typesAd.UpdateAd
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.Catalog.Update(r.Context(), id, patch, userID); err != nil {
		switch {
		case errors.Is(err, myErr.ErrNotFound):
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
		case errors.Is(err, myErr.ErrNotOwner):
			myErr.SendErrorTo(w, err, http.StatusForbidden, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	h.Logger.Infof("ad updated: %s", id)
}

// Delete handles DELETE /ads/{id}
func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.Catalog.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, myErr.ErrNotFound):
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
		case errors.Is(err, myErr.ErrNotOwner):
			myErr.SendErrorTo(w, err, http.StatusForbidden, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	h.emit(r, kafka.Event{
		AdID:     id,
		SellerID: userID,
		Type:     kafka.Delete,
	})

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("ad deleted: %s", id)
}
