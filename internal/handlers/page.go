package handlers

import (
	"context"
	"html/template"
	"net/http"

	"episodes/internal/core"
	"episodes/internal/models"
	"episodes/internal/utils"
	"episodes/web"
)

// AssetLister is what the episode page needs from the relay.
type AssetLister interface {
	ListAssets(ctx context.Context) ([]models.RemoteAsset, error)
}

type PageHandler struct {
	lister    AssetLister
	assembler *core.Assembler
	logger    *utils.Logger
	tpl       *template.Template
	title     string
	slug      string
}

type pageData struct {
	Title         string
	Slug          string
	DefaultPoster string
	Phase         core.Phase
	Playback      core.PlaybackPhase
	Error         string
	Episodes      []core.EpisodeView
	Selected      *models.Episode
	ShowPlayer    bool

	NoPlaybackMessage   string
	PlayerFailedMessage string
}

func NewPageHandler(lister AssetLister, assembler *core.Assembler, logger *utils.Logger, title, slug string) *PageHandler {
	tpl := template.Must(template.ParseFS(web.Files, "templates/page.html"))
	return &PageHandler{
		lister:    lister,
		assembler: assembler,
		logger:    logger,
		tpl:       tpl,
		title:     title,
		slug:      slug,
	}
}

// Episodes renders the episode page. Each request is a fresh session with
// exactly one list call through the relay. Every card carries its playback id,
// so selecting, player reports and retries run in app.js without going back to
// the server. ?episode=<id> only preselects an episode for deep links.
func (h *PageHandler) Episodes(w http.ResponseWriter, r *http.Request) {
	session := h.load(r)

	if id := r.URL.Query().Get("episode"); id != "" {
		session = session.Select(id)
	}

	data := pageData{
		Title:         h.title,
		Slug:          h.slug,
		DefaultPoster: core.DefaultPoster,
		Phase:         session.Phase(),
		Playback:      session.Playback(),
		Error:         session.Error(),
		Episodes:      session.View(),
		ShowPlayer:    session.ShowPlayer(),

		NoPlaybackMessage:   core.NoPlaybackMessage,
		PlayerFailedMessage: core.PlayerFailedMessage,
	}
	if ep, ok := session.Selected(); ok {
		data.Selected = &ep
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tpl.Execute(w, data); err != nil {
		loggerFrom(r, h.logger).Error("Failed to render episode page:", err)
	}
}

func (h *PageHandler) load(r *http.Request) core.Session {
	logger := loggerFrom(r, h.logger)
	session := core.NewSession()

	assets, err := h.lister.ListAssets(r.Context())
	if err != nil {
		logger.Error(err)
		return session.LoadFailed(err)
	}

	episodes, err := h.assembler.Merge(assets)
	if err != nil {
		logger.Error("Failed to assemble episodes:", err)
		return session.LoadFailed(err)
	}

	logger.Debug("Assembled", len(episodes), "episodes")
	return session.Loaded(episodes)
}
