package handlers

import (
	"Inventory/internal/model"
	"Inventory/internal/service"
	"Inventory/internal/view"
	"net/http"

	"go.uber.org/zap"
)

// PageHandler — главная страница.
type PageHandler struct {
	ItemService *service.ItemService
	View        *view.Renderer
	Logger      *zap.SugaredLogger
}

func NewPageHandler(itemService *service.ItemService, renderer *view.Renderer, logger *zap.SugaredLogger) *PageHandler {
	return &PageHandler{ItemService: itemService, View: renderer, Logger: logger}
}

type homePage struct {
	Summary *model.InventorySummary
}

// Home главная страница. Сводка необязательна: без неё страница всё равно отдаётся.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	var data homePage
	if sum, err := h.ItemService.Summary(r.Context()); err != nil {
		h.Logger.Warnw("Home: summary unavailable", "error", err)
	} else {
		data.Summary = &sum
	}
	renderPage(w, r, h.View, h.Logger, view.PageIndex, data)
}
