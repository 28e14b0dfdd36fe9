package handlers

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"episodes/internal/clients/relay"
	"episodes/internal/clients/video"
	"episodes/internal/config"
	"episodes/internal/core"
	"episodes/internal/utils"
	"episodes/web"

	"github.com/gorilla/mux"
)

type Server struct {
	config       *config.Config
	logger       *utils.Logger
	httpServer   *http.Server
	relayHandler *RelayHandler
	pageHandler  *PageHandler
}

func NewServer(cfg *config.Config, logger *utils.Logger) (*Server, error) {
	timeout, err := cfg.MuxTimeout()
	if err != nil {
		return nil, err
	}

	muxClient := video.NewMuxClient(cfg.Mux.TokenID, cfg.Mux.TokenSecret, cfg.Mux.BaseURL, timeout)
	if !cfg.HasMuxCredentials() {
		logger.Warn("MUX_TOKEN_ID / MUX_TOKEN_SECRET not set; the relay will answer 500")
	}

	relayClient := relay.NewClient(cfg.RelayEndpoint(), timeout)
	assembler := core.NewAssembler(core.Catalog, cfg.UI.Merge)

	return &Server{
		config:       cfg,
		logger:       logger,
		relayHandler: NewRelayHandler(muxClient, logger),
		pageHandler:  NewPageHandler(relayClient, assembler, logger, cfg.App.ShowTitle, cfg.App.ShowSlug),
	}, nil
}

// Router builds the route table. Exposed for tests.
func (s *Server) Router() http.Handler {
	return newRouter(s.relayHandler, s.pageHandler, s.config, s.logger, web.Static())
}

func newRouter(rh *RelayHandler, ph *PageHandler, cfg *config.Config, logger *utils.Logger, static fs.FS) http.Handler {
	router := mux.NewRouter()
	router.Use(requestLogger(logger))

	router.Handle("/health", HealthHandler()).Methods("GET")

	// Relay. Method checks happen in the handler so that every method gets
	// CORS headers and a JSON body.
	api := router.PathPrefix("/api").Subrouter()
	api.Use(corsMiddleware(cfg.Relay.AllowedOrigin))
	api.HandleFunc("/episodes", rh.ListEpisodes)
	api.HandleFunc("/episodes/{id}", rh.GetEpisode)

	// Web UI (if enabled)
	if cfg.App.UIEnabled && ph != nil {
		router.HandleFunc("/", ph.Episodes).Methods("GET")
		router.PathPrefix("/").Handler(http.FileServer(http.FS(static)))
	}

	return router
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.App.Port),
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
	}

	s.logger.Info("Starting server on port", s.config.App.Port)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
