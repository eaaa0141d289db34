package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/pkg/utils"
)

type HealthResponse struct {
	Success   bool      `json:"success"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, HealthResponse{
			Success:   true,
			Service:   config.ServiceName,
			Version:   config.ServiceVersion,
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})
}

// NotFound responde rotas desconhecidas
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "Not found",
			"path":    r.URL.Path,
		})
	})
}

func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, map[string]any{
			"success": false,
			"error":   "Method not allowed",
			"method":  r.Method,
			"path":    r.URL.Path,
		})
	})
}
