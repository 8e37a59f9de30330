package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/api"
	"github.com/voicedeck/call-dashboard-api/clients"
	"github.com/voicedeck/call-dashboard-api/config"
	"github.com/voicedeck/call-dashboard-api/models"
	"github.com/voicedeck/call-dashboard-api/readmodel"
)

// Caller exported for testing purposes
type Caller struct {
	Backend clients.BackendStore
	Now     func() time.Time
}

// CallersHandler returns the grouped dashboard view built from the backend
// store's caller list. Date labels are recomputed against the current time on
// every fetch. On a backend failure the dashboard still receives well-formed
// JSON, an empty view with HTTP 500.
func (c Caller) CallersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithRemoteCallTimeout(r.Context())
	defer cancel()

	callers, err := c.Backend.Callers(ctx)
	if err != nil {
		zap.S().With(err).Error("failed to fetch callers from backend")
		empty := models.DashboardData{
			ConversationsByDate: map[string][]models.ConversationItem{},
			DateOrder:           []string{},
			AllCallers:          []models.Caller{},
		}
		b, _ := json.Marshal(empty)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(b)
		return
	}

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	data := readmodel.Build(callers, now)
	b, err := json.Marshal(data)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
