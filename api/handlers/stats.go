package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/api"
	"github.com/voicedeck/call-dashboard-api/clients"
	"github.com/voicedeck/call-dashboard-api/config"
	"github.com/voicedeck/call-dashboard-api/models"
)

// Stats exported for testing purposes
type Stats struct {
	Backend clients.BackendStore
}

// StatsHandler proxies the backend's dashboard stats. A backend failure
// still returns a zeroed, well-formed body so the header widgets render.
func (s Stats) StatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithRemoteCallTimeout(r.Context())
	defer cancel()

	status := http.StatusOK
	stats, err := s.Backend.Stats(ctx)
	if err != nil {
		zap.S().With(err).Warn("failed to fetch stats from backend, serving zeros")
		stats = &models.Stats{}
		status = http.StatusInternalServerError
	}

	b, err := json.Marshal(stats)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)
}
