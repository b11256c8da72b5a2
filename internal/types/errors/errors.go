package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal        = errors.New("database internal error")
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyExists     = errors.New("record already exists")
	ErrNotOwner          = errors.New("caller is not the owner of this ad")
	ErrSourceUnavailable = errors.New("ad source is unavailable")

	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIsExpired = errors.New("session is expired")
	ErrNoAuth           = errors.New("authorization required")

	ErrBadPassword = errors.New("bad password")
	ErrBadID       = errors.New("bad id")

	ErrInvalidStatus      = errors.New("invalid ad status filter")
	ErrInvalidJSONPayload = errors.New("invalid JSON payload")

	ErrIndexing = errors.New("indexing error")
	ErrSearch   = errors.New("search error")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

// NewErrorServer accepts a nil error, which means the caller
// just wants a success envelope sent back to the client.
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
