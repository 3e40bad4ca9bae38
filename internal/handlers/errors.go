package handlers

import (
	"Inventory/internal/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// statusFor — единственное место, где вид ошибки превращается в HTTP-статус.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConstraintViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError отвечает plain-text ошибкой. Для 4xx клиент видит причину,
// для 5xx — только общий текст, подробности уходят в лог.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, op string, err error) {
	status := statusFor(err)
	fields := []any{"op", op, "path", r.URL.Path, "status", status, "error", err}

	switch status {
	case http.StatusNotFound:
		logger.Infow("item not found", fields...)
		http.Error(w, "item not found", status)
	case http.StatusBadRequest:
		logger.Warnw("rejected input", fields...)
		http.Error(w, "Error: "+err.Error(), status)
	default:
		logger.Errorw("request failed", fields...)
		http.Error(w, "internal error", status)
	}
}
