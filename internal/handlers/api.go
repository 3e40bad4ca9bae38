package handlers

import (
	"Inventory/internal/service"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Статические метаданные для /api/info.
const (
	ProjectName    = "DevOps Group Project"
	ProjectVersion = "1.0"
	ProjectTeam    = "Dream Team"
)

const readyTimeout = 2 * time.Second

// APIHandler — служебные JSON-эндпоинты.
type APIHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

func NewAPIHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *APIHandler {
	return &APIHandler{ItemService: itemService, Logger: logger}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type InfoResponse struct {
	Project string `json:"project"`
	Version string `json:"version"`
	Team    string `json:"team"`
}

type ReadyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Health статический ответ: процесс жив и отвечает.
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Inventory app is running!",
	})
}

// Info статические метаданные проекта.
func (h *APIHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		Project: ProjectName,
		Version: ProjectVersion,
		Team:    ProjectTeam,
	})
}

// Ready проверяет соединение с БД.
func (h *APIHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.ItemService.Ping(ctx); err != nil {
		h.Logger.Warnw("Ready: database ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Error: "database unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
