package handlers

import (
	"Inventory/internal/view"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// renderPage отдаёт страницу со статусом 200. Если заголовки уже ушли,
// ошибка только логируется.
func renderPage(w http.ResponseWriter, r *http.Request, v *view.Renderer, logger *zap.SugaredLogger, page string, data any) {
	err := v.Render(w, http.StatusOK, page, data)
	switch {
	case err == nil:
	case errors.Is(err, view.ErrHeadersSent):
		logger.Warnw("response write failed", "page", page, "path", r.URL.Path, "error", err)
	default:
		logger.Errorw("render failed", "page", page, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
