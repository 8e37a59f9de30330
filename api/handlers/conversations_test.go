package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/voicedeck/call-dashboard-api/api/handlers"
	"github.com/voicedeck/call-dashboard-api/clients"
	"github.com/voicedeck/call-dashboard-api/clients/mocks"
	"github.com/voicedeck/call-dashboard-api/models"
	"github.com/voicedeck/call-dashboard-api/reconcile"
)

func TestConversations_DeleteConversationHandler(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/conversations/42", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	req.Header.Set("Authorization", "Bearer abc123")

	backend := &mocks.BackendStore{}
	provider := &mocks.VoiceProvider{}
	backend.On("DeleteConversation", mock.Anything, "42").Return(clients.OutcomeDeleted, nil)
	provider.On("DeleteConversation", mock.Anything, "42").Return(clients.OutcomeDeleted, nil)

	c := handlers.Conversations{Engine: reconcile.New(backend, provider)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.DeleteConversationHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result models.DeleteResult
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.True(t, result.BackendDeleted)
	assert.True(t, result.ProviderDeleted)
}

func TestConversations_DeleteConversationHandlerTotalFailure(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/conversations/42", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	req.Header.Set("Authorization", "Bearer abc123")

	backend := &mocks.BackendStore{}
	provider := &mocks.VoiceProvider{}
	backend.On("DeleteConversation", mock.Anything, "42").Return(clients.OutcomeError, errors.New("backend is down"))
	provider.On("DeleteConversation", mock.Anything, "42").Return(clients.OutcomeError, errors.New("provider is down"))

	c := handlers.Conversations{Engine: reconcile.New(backend, provider)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.DeleteConversationHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var result models.DeleteResult
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.False(t, result.BackendDeleted)
	assert.False(t, result.ProviderDeleted)
}

func TestConversations_DeleteConversationHandlerMissingID(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/conversations/", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": ""})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Conversations{Engine: reconcile.New(&mocks.BackendStore{}, &mocks.VoiceProvider{})}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.DeleteConversationHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestConversations_SyncHandler(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/sync", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	backend := &mocks.BackendStore{}
	backend.On("Sync", mock.Anything).Return(&models.SyncResult{Processed: 5}, nil)

	c := handlers.Conversations{Engine: reconcile.New(backend, &mocks.VoiceProvider{})}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.SyncHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result models.SyncResult
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 5, result.Processed)
}

func TestConversations_SyncHandlerFailure(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/sync", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	backend := &mocks.BackendStore{}
	backend.On("Sync", mock.Anything).Return(nil, errors.New("backend sync returned status 503"))

	c := handlers.Conversations{Engine: reconcile.New(backend, &mocks.VoiceProvider{})}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.SyncHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Failed to sync with ElevenLabs"}`, rr.Body.String())
}
