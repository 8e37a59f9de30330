package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/api"
	"github.com/voicedeck/call-dashboard-api/config"
	"github.com/voicedeck/call-dashboard-api/reconcile"
)

// Conversations exported for testing purposes
type Conversations struct {
	Engine *reconcile.Engine
}

// DeleteConversationHandler deletes a conversation from both systems of
// record via the reconciliation engine. The engine never raises past its
// boundary, the handler only maps its structured outcome onto status codes:
// 200 when either system resolved the delete, 500 when both failed hard.
func (c Conversations) DeleteConversationHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	zap.S().Debugf("conversation id: %v", id)

	if id == "" {
		config.ErrorStatus("conversation id is required", http.StatusBadRequest, w, errors.New("empty id"))
		return
	}

	ctx, cancel := api.WithRemoteCallTimeout(r.Context())
	defer cancel()

	result := c.Engine.DeleteConversation(ctx, id)

	b, err := json.Marshal(result)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	if !result.Success {
		w.WriteHeader(http.StatusInternalServerError)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	w.Write(b)
}

// SyncHandler asks the backend store to re-pull the full current state from
// the voice provider
func (c Conversations) SyncHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithRemoteCallTimeout(r.Context())
	defer cancel()

	result, err := c.Engine.Sync(ctx)
	if err != nil {
		zap.S().With(err).Error("sync with backend failed")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to sync with ElevenLabs"}`))
		return
	}

	b, err := json.Marshal(result)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
