package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	Port            string
	BaseURL         string
	BackendBaseURL  string
	ProviderBaseURL string
	ProviderAPIKey  string
	JWTSecret       string
	SendGridKey     string
	DelegateFrom    string
	SyncSchedule    string
}

// New sets up all config related services
func New() (*Config, error) {

	// load a local .env if one exists, deployed environments set vars directly
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	c := &Config{
		Port:            os.Getenv("PORT"),
		BaseURL:         os.Getenv("BASE_URL"),
		BackendBaseURL:  os.Getenv("BACKEND_BASE_URL"),
		ProviderBaseURL: os.Getenv("PROVIDER_BASE_URL"),
		ProviderAPIKey:  os.Getenv("ELEVEN_LABS_API_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SendGridKey:     os.Getenv("SENDGRID_API_KEY"),
		DelegateFrom:    os.Getenv("DELEGATE_FROM_EMAIL"),
		SyncSchedule:    os.Getenv("SYNC_SCHEDULE"),
	}

	if c.Port == "" {
		c.Port = "8080"
	}
	if c.BackendBaseURL == "" {
		c.BackendBaseURL = "https://elevenlabs-calendar-apis.onrender.com"
	}
	if c.ProviderBaseURL == "" {
		c.ProviderBaseURL = "https://api.elevenlabs.io"
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects configs that would send an empty credential downstream,
// missing values kill the pod at startup instead of failing per-request
func (c *Config) Validate() error {
	if c.ProviderAPIKey == "" {
		return fmt.Errorf("ELEVEN_LABS_API_KEY is not set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	return nil
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
