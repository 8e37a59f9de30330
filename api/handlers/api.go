package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/api"
	"github.com/voicedeck/call-dashboard-api/api/scheduler"
	"github.com/voicedeck/call-dashboard-api/clients"
	"github.com/voicedeck/call-dashboard-api/config"
	"github.com/voicedeck/call-dashboard-api/models"
	"github.com/voicedeck/call-dashboard-api/reconcile"
)

// App stores the router and the external system clients, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Backend   clients.BackendStore
	Provider  clients.VoiceProvider
	Engine    *reconcile.Engine
	Scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	auth := api.Auth{Secret: a.Config.JWTSecret}

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	callers := Caller{Backend: a.Backend}
	stats := Stats{Backend: a.Backend}
	conversations := Conversations{Engine: a.Engine}
	delegate := Delegate{Backend: a.Backend, Mailer: NewMailer(&a.Config)}

	apiCreate := r.PathPrefix("/api").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/callers", auth.Middleware(http.HandlerFunc(callers.CallersHandler))).Methods("GET")
	apiCreate.Handle("/stats", auth.Middleware(http.HandlerFunc(stats.StatsHandler))).Methods("GET")
	apiCreate.Handle("/sync", auth.Middleware(http.HandlerFunc(conversations.SyncHandler))).Methods("POST")
	apiCreate.Handle("/conversations/{id}", auth.Middleware(http.HandlerFunc(conversations.DeleteConversationHandler))).Methods("DELETE")
	apiCreate.Handle("/delegate", auth.Middleware(http.HandlerFunc(delegate.DelegateHandler))).Methods("POST")
	apiCreate.Handle("/metrics", auth.Middleware(http.HandlerFunc(metricsHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to build the external system clients and
// create a router
func (a *App) Initialize() error {

	a.Backend = clients.NewBackendStore(&a.Config)
	a.Provider = clients.NewVoiceProvider(&a.Config)
	a.Engine = reconcile.New(a.Backend, a.Provider)

	if a.Config.SyncSchedule != "" {
		a.Scheduler = scheduler.New(a.Engine, a.Config.SyncSchedule)
		if err := a.Scheduler.Start(); err != nil {
			zap.S().With(err).Error("failed to start sync scheduler")
			return err
		}
	}

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(api.GetMetrics().Snapshot())
	if err != nil {
		config.ErrorStatus("failed to marshal metrics", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
