package reconcile

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/clients"
	"github.com/voicedeck/call-dashboard-api/models"
)

// Engine coordinates conversation deletion and resync across the backend
// store and the voice provider, the two independent systems of record.
type Engine struct {
	Backend  clients.BackendStore
	Provider clients.VoiceProvider
}

// New initializes a reconciliation engine over the two external systems
func New(backend clients.BackendStore, provider clients.VoiceProvider) *Engine {
	return &Engine{Backend: backend, Provider: provider}
}

// DeleteConversation removes a conversation from both systems of record.
// Each attempt is independent and a failure never aborts the operation.
// A not-found response from either system counts as success since the
// desired end state already holds. If only the backend delete failed, a
// compensating sync pulls the current provider state back into the backend,
// which no longer contains the conversation the provider just deleted.
func (e *Engine) DeleteConversation(ctx context.Context, id string) models.DeleteResult {
	zap.S().Debugf("deleting conversation: %v", id)

	backendOutcome, err := e.Backend.DeleteConversation(ctx, id)
	if err != nil {
		zap.S().Warnw("backend delete failed",
			"conversationId", id,
			"error", err,
		)
	}
	backendDeleted := backendOutcome.Resolved()

	providerOutcome, err := e.Provider.DeleteConversation(ctx, id)
	if err != nil {
		zap.S().Warnw("provider delete failed",
			"conversationId", id,
			"error", err,
		)
	}
	providerDeleted := providerOutcome.Resolved()

	if !backendDeleted && providerDeleted {
		backendDeleted = e.compensate(ctx, id)
	}

	result := models.DeleteResult{
		Success:         backendDeleted || providerDeleted,
		BackendDeleted:  backendDeleted,
		ProviderDeleted: providerDeleted,
	}
	if result.Success {
		result.Message = "Conversation deleted successfully"
	} else {
		result.Error = "Failed to delete from both backend and provider"
	}

	zap.S().Infow("delete operation complete",
		"conversationId", id,
		"backendDeleted", result.BackendDeleted,
		"providerDeleted", result.ProviderDeleted,
	)
	return result
}

// compensate triggers a whole-store resync after a failed backend delete and
// reports whether the backend can now be considered clean. Sync success alone
// is not trusted, the caller list is re-fetched and the conversation must be
// absent. When the verification fetch itself fails we fall back to assuming
// the sync did its job, a resync from a provider that no longer has the
// conversation cannot reintroduce it.
func (e *Engine) compensate(ctx context.Context, id string) bool {
	zap.S().Infof("backend delete failed, triggering compensating sync for conversation %v", id)

	if _, err := e.Backend.Sync(ctx); err != nil {
		zap.S().Warnw("compensating sync failed",
			"conversationId", id,
			"error", err,
		)
		return false
	}

	callers, err := e.Backend.Callers(ctx)
	if err != nil {
		zap.S().Warnw("could not verify backend state after sync, assuming deleted",
			"conversationId", id,
			"error", err,
		)
		return true
	}
	for _, c := range callers {
		if strconv.Itoa(c.ID) == id {
			zap.S().Warnf("conversation %v still present in backend after sync", id)
			return false
		}
	}
	return true
}

// Sync asks the backend store to re-pull the full current state from the
// voice provider. Safe to retry, the backend rebuilds its mirror wholesale.
func (e *Engine) Sync(ctx context.Context) (*models.SyncResult, error) {
	result, err := e.Backend.Sync(ctx)
	if err != nil {
		return nil, err
	}
	zap.S().Infow("sync complete", "processed", result.Processed)
	return result, nil
}
