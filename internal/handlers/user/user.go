package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"tuzona/internal/session"
	myErr "tuzona/internal/types/errors"
	types "tuzona/internal/types/user"
	"tuzona/internal/user"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type UserHandler struct {
	Logger         *zap.SugaredLogger
	UserRepository user.UserRepo
	SessionManager session.SessionRepo
}

func NewUserHandler(l *zap.SugaredLogger, ur user.UserRepo, sr session.SessionRepo) *UserHandler {
	return &UserHandler{
		Logger:         l,
		UserRepository: ur,
		SessionManager: sr,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form types.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	if _, err := mail.ParseAddress(form.Email); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	u, err := h.UserRepository.CreateUser(form)
	if err != nil {
		if errors.Is(err, myErr.ErrAlreadyExists) {
			myErr.SendErrorTo(w, err, http.StatusUnprocessableEntity, h.Logger)
			return
		}

		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	sess, err := h.SessionManager.CreateSession(context.Background(), w, u.ID, u.Email)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)

	h.Logger.Infof("created session for %v", sess.ID)
}

type RequestLoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form RequestLoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	u, err := h.UserRepository.CheckUser(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, myErr.ErrNotFound, http.StatusNotFound, h.Logger)
			return
		}

		if errors.Is(err, myErr.ErrBadPassword) {
			myErr.SendErrorTo(w, err, http.StatusUnauthorized, h.Logger)
			return
		}

		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	sess, err := h.SessionManager.CreateSession(context.Background(), w, u.ID, u.Email)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.WriteHeader(http.StatusOK)
	h.Logger.Infof("created session for %v", sess.ID)
}

func (h *UserHandler) Info(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	userInfo, err := h.UserRepository.Info(id)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(userInfo); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("get info by user: %s", id)
}

func (h *UserHandler) ChangeProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	if _, err := uuid.Parse(userID); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var updateData types.ChangeUser
	if err := json.NewDecoder(r.Body).Decode(&updateData); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	profile, err := h.UserRepository.ChangeProfile(userID, updateData)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("user profile updated successfully: %s", userID)
}

// Stats handles GET /user/{id}/stats
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if _, err := uuid.Parse(id); err != nil {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	stats, err := h.UserRepository.Stats(id)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("get stats for user: %s", id)
}
