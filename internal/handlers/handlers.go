package handlers

import (
	"Inventory/internal/middleware"
	"Inventory/internal/service"
	"Inventory/internal/view"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	renderer *view.Renderer,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithLogging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.WithGzip)

	// Handlers
	pageHandler := NewPageHandler(itemService, renderer, logger)
	apiHandler := NewAPIHandler(itemService, logger)
	itemHandler := NewItemHandler(itemService, renderer, logger)

	r.Get("/", pageHandler.Home)

	// JSON API
	r.Get("/api/health", apiHandler.Health)
	r.Get("/api/info", apiHandler.Info)
	r.Get("/api/ready", apiHandler.Ready)

	// Items
	r.Route("/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Get("/new", itemHandler.NewForm)
		r.Post("/new", itemHandler.Create)
		r.Get("/{id}", itemHandler.Show)
		r.Get("/{id}/edit", itemHandler.EditForm)
		r.Post("/{id}/edit", itemHandler.Update)
		r.Post("/{id}/delete", itemHandler.Delete)
	})

	return &Handler{Router: r}
}
