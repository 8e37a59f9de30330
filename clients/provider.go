package clients

// go generate: mockery --name VoiceProvider

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/config"
)

// VoiceProvider contains the methods used against the canonical
// conversation system of record
type VoiceProvider interface {
	DeleteConversation(ctx context.Context, id string) (DeleteOutcome, error)
}

type voiceProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewVoiceProvider initializes an ElevenLabs convai client from the provided config
func NewVoiceProvider(conf *config.Config) VoiceProvider {
	return &voiceProvider{
		baseURL: conf.ProviderBaseURL,
		apiKey:  conf.ProviderAPIKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (p *voiceProvider) DeleteConversation(ctx context.Context, id string) (DeleteOutcome, error) {
	url := fmt.Sprintf("%s/v1/convai/conversations/%s", p.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return OutcomeError, err
	}
	req.Header.Set("xi-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return OutcomeError, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		zap.S().Debugf("conversation %v not found in provider, treating as deleted", id)
		return OutcomeNotFound, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return OutcomeDeleted, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return OutcomeError, fmt.Errorf("provider delete returned status %d: %s", resp.StatusCode, body)
}
