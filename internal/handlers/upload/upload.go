package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"tuzona/internal/imagestore"
	myErr "tuzona/internal/types/errors"

	"go.uber.org/zap"
)

// maxImageSize caps a single ad photo at 10 MB.
const maxImageSize = 10 << 20

type UploadHandler struct {
	Logger *zap.SugaredLogger
	Store  *imagestore.Store
}

func NewUploadHandler(l *zap.SugaredLogger, store *imagestore.Store) *UploadHandler {
	return &UploadHandler{
		Logger: l,
		Store:  store,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Image handles POST /upload/image with a multipart "image" field and
// returns the public URL for the stored file.
func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		myErr.SendErrorTo(w, errors.New("invalid multipart form"), http.StatusBadRequest, h.Logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		myErr.SendErrorTo(w, errors.New("missing image field"), http.StatusBadRequest, h.Logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
	default:
		myErr.SendErrorTo(w, errors.New("unsupported image type"), http.StatusUnsupportedMediaType, h.Logger)
		return
	}

	url, err := h.Store.Upload(r.Context(), header.Filename, file, contentType)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(uploadResponse{URL: url}); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("image uploaded: %s", url)
}
