package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fleet-management/fleetboard/internal/common"
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/logging"
	"fleet-management/fleetboard/internal/middleware"
	"fleet-management/fleetboard/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// StatusForError maps a service failure to its HTTP status.
func StatusForError(err error) int {
	kind, ok := services.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError logs and counts the failure, then renders it. Storage
// details stay in the log.
func (h *Handlers) respondServiceError(w http.ResponseWriter, r *http.Request, initTime time.Time, entity constants.Entity, err error) {
	status := StatusForError(err)
	log := logging.WithRequest(middleware.GetRequestID(r.Context()), r.URL.Path)

	kind, _ := services.KindOf(err)
	if status == http.StatusInternalServerError {
		log.Errorw("request failed", "entity", entity, "error", err)
		common.RespondError(w, initTime, nil, constants.MsgInternalError, status)
		return
	}

	log.Warnw("request rejected", "entity", entity, "kind", kind, "error", err)
	if h.deps.Metrics != nil {
		h.deps.Metrics.GuardRejectionsTotal.WithLabelValues(string(entity), string(kind)).Inc()
	}
	common.RespondError(w, initTime, err, "", status)
}

// respondBadRequest renders id and body parsing failures. The error text is
// the message.
func respondBadRequest(w http.ResponseWriter, initTime time.Time, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, common.ErrBodyTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	common.RespondError(w, initTime, err, "", status)
}

func respondNotFound(w http.ResponseWriter, initTime time.Time, format string, id uint) {
	common.RespondError(w, initTime, nil, fmt.Sprintf(format, id), http.StatusNotFound)
}
