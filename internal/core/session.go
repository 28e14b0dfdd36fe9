package core

import (
	"episodes/internal/models"
)

type Phase string

const (
	PhaseLoading   Phase = "loading"
	PhaseReady     Phase = "ready"
	PhaseLoadError Phase = "load_error"
)

type PlaybackPhase string

const (
	PlaybackNone     PlaybackPhase = "none"
	PlaybackPending  PlaybackPhase = "pending"
	PlaybackPlayable PlaybackPhase = "playable"
	PlaybackError    PlaybackPhase = "player_error"
)

// Player error messages, shared with the page script so both sides report the
// same text.
const (
	NoPlaybackMessage   = "no playback ID available for this episode"
	PlayerFailedMessage = "Error loading video player"
)

// Session is the viewer state for one page session. It is a value: every
// transition returns a new Session and leaves the receiver untouched.
//
// Loading -> Ready | LoadError. Within Ready, the selection moves through
// none -> pending -> playable, with player_error reachable from pending or
// playable and left again only by selecting.
type Session struct {
	phase    Phase
	episodes []models.Episode
	errMsg   string

	selected int
	playback PlaybackPhase
}

// EpisodeView is an episode plus its transient page flags.
type EpisodeView struct {
	models.Episode
	Selected      bool
	PlaybackReady bool
}

func NewSession() Session {
	return Session{phase: PhaseLoading, selected: -1, playback: PlaybackNone}
}

func (s Session) Loaded(episodes []models.Episode) Session {
	if s.phase != PhaseLoading {
		return s
	}
	return Session{
		phase:    PhaseReady,
		episodes: append([]models.Episode(nil), episodes...),
		selected: -1,
		playback: PlaybackNone,
	}
}

func (s Session) LoadFailed(err error) Session {
	if s.phase != PhaseLoading {
		return s
	}
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Session{phase: PhaseLoadError, errMsg: msg, selected: -1, playback: PlaybackNone}
}

// Select clears any previous player error and starts playback of the episode
// with the given asset id. Unknown ids leave the session unchanged.
func (s Session) Select(id string) Session {
	if s.phase != PhaseReady {
		return s
	}
	idx := -1
	for i, ep := range s.episodes {
		if ep.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	s.selected = idx
	s.errMsg = ""
	s.playback = PlaybackPending
	if !s.episodes[idx].HasPlayback() {
		s.playback = PlaybackError
		s.errMsg = NoPlaybackMessage
	}
	return s
}

func (s Session) PlayerReady() Session {
	if s.phase != PhaseReady || s.playback != PlaybackPending {
		return s
	}
	s.playback = PlaybackPlayable
	return s
}

func (s Session) PlayerFailed(msg string) Session {
	if s.phase != PhaseReady {
		return s
	}
	if s.playback != PlaybackPending && s.playback != PlaybackPlayable {
		return s
	}
	if msg == "" {
		msg = PlayerFailedMessage
	}
	s.playback = PlaybackError
	s.errMsg = msg
	return s
}

// Retry re-issues the current selection.
func (s Session) Retry() Session {
	ep, ok := s.Selected()
	if !ok {
		return s
	}
	return s.Select(ep.ID)
}

func (s Session) Phase() Phase {
	return s.phase
}

func (s Session) Playback() PlaybackPhase {
	return s.playback
}

// Error is the load error or the player error, whichever applies.
func (s Session) Error() string {
	return s.errMsg
}

func (s Session) Episodes() []models.Episode {
	return append([]models.Episode(nil), s.episodes...)
}

func (s Session) Selected() (models.Episode, bool) {
	if s.selected < 0 || s.selected >= len(s.episodes) {
		return models.Episode{}, false
	}
	return s.episodes[s.selected], true
}

// ShowPlayer reports whether the player widget should be mounted.
func (s Session) ShowPlayer() bool {
	if s.playback != PlaybackPending && s.playback != PlaybackPlayable {
		return false
	}
	ep, ok := s.Selected()
	return ok && ep.HasPlayback()
}

func (s Session) View() []EpisodeView {
	views := make([]EpisodeView, len(s.episodes))
	for i, ep := range s.episodes {
		views[i] = EpisodeView{
			Episode:       ep,
			Selected:      i == s.selected,
			PlaybackReady: i == s.selected && s.playback == PlaybackPlayable,
		}
	}
	return views
}
