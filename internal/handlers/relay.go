package handlers

import (
	"context"
	"errors"
	"net/http"

	"episodes/internal/clients/video"
	"episodes/internal/utils"

	"github.com/gorilla/mux"
)

// RelayHandler forwards list requests to the video provider with the
// server's credentials attached. It keeps no state between calls.
type RelayHandler struct {
	client video.Client
	logger *utils.Logger
}

func NewRelayHandler(client video.Client, logger *utils.Logger) *RelayHandler {
	return &RelayHandler{client: client, logger: logger}
}

// ListEpisodes relays GET /api/episodes to the asset listing.
func (h *RelayHandler) ListEpisodes(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.client.ListAssets)
}

// GetEpisode relays GET /api/episodes/{id} to a single asset lookup.
func (h *RelayHandler) GetEpisode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.relay(w, r, func(ctx context.Context) ([]byte, error) {
		return h.client.GetAsset(ctx, id)
	})
}

func (h *RelayHandler) relay(w http.ResponseWriter, r *http.Request, call func(context.Context) ([]byte, error)) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodGet:
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logger := loggerFrom(r, h.logger)

	body, err := call(r.Context())
	if err != nil {
		var apiErr *video.APIError
		switch {
		case errors.Is(err, video.ErrMissingCredentials):
			logger.Error("Missing Mux credentials")
			respondError(w, http.StatusInternalServerError, "Mux credentials not configured")
		case errors.As(err, &apiErr):
			logger.Error("Mux API error:", apiErr.StatusCode, apiErr.Body)
			respondError(w, apiErr.StatusCode, apiErr.Error())
		default:
			logger.Error("Server error:", err)
			respondError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
