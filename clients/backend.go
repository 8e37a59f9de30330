package clients

// go generate: mockery --name BackendStore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/config"
	"github.com/voicedeck/call-dashboard-api/models"
)

// BackendStore contains the methods the reconciliation and read paths need
// from the backend mirror of provider data
type BackendStore interface {
	Callers(ctx context.Context) ([]models.Caller, error)
	Stats(ctx context.Context) (*models.Stats, error)
	DeleteConversation(ctx context.Context, id string) (DeleteOutcome, error)
	Sync(ctx context.Context) (*models.SyncResult, error)
}

type backendStore struct {
	baseURL string
	client  *http.Client
}

// NewBackendStore initializes a backend store client from the provided config.
// The client owns its own http.Client so a wedged provider connection can
// never affect backend calls.
func NewBackendStore(conf *config.Config) BackendStore {
	return &backendStore{
		baseURL: conf.BackendBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// callersResponse mirrors the backend payload. Grouping is rebuilt locally,
// only the flat caller list is consumed here.
type callersResponse struct {
	AllCallers []models.Caller `json:"allCallers"`
	Total      int             `json:"total"`
}

func (b *backendStore) Callers(ctx context.Context) ([]models.Caller, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/api/callers", nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend callers returned status %d", resp.StatusCode)
	}

	var body callersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode callers response: %w", err)
	}
	return body.AllCallers, nil
}

func (b *backendStore) Stats(ctx context.Context) (*models.Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/api/stats", nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend stats returned status %d", resp.StatusCode)
	}

	stats := &models.Stats{}
	if err := json.NewDecoder(resp.Body).Decode(stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return stats, nil
}

type backendDeleteResponse struct {
	Success bool `json:"success"`
}

func (b *backendStore) DeleteConversation(ctx context.Context, id string) (DeleteOutcome, error) {
	url := fmt.Sprintf("%s/api/conversations/%s", b.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return OutcomeError, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return OutcomeError, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		zap.S().Debugf("conversation %v not found in backend, treating as deleted", id)
		return OutcomeNotFound, nil
	}

	var body backendDeleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return OutcomeError, fmt.Errorf("failed to decode backend delete response: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && body.Success {
		return OutcomeDeleted, nil
	}
	return OutcomeError, fmt.Errorf("backend delete returned status %d, success=%v", resp.StatusCode, body.Success)
}

func (b *backendStore) Sync(ctx context.Context) (*models.SyncResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/sync-elevenlabs", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend sync returned status %d", resp.StatusCode)
	}

	// not every backend build reports a processed count, tolerate any shape
	result := &models.SyncResult{}
	_ = json.NewDecoder(resp.Body).Decode(result)
	return result, nil
}
