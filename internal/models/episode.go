package models

// EpisodeMetadata is locally authored display data for one catalog position.
type EpisodeMetadata struct {
	Number int    `json:"number"`
	Key    string `json:"key"`
	Title  string `json:"title"`
	Poster string `json:"poster"`
}

type PlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

// RemoteAsset is a video asset as listed by the Mux Video API.
type RemoteAsset struct {
	ID          string       `json:"id"`
	Status      string       `json:"status,omitempty"`
	Duration    float64      `json:"duration,omitempty"`
	Passthrough string       `json:"passthrough,omitempty"`
	PlaybackIDs []PlaybackID `json:"playback_ids,omitempty"`
}

// PlaybackID returns the first playback identifier, or "" if the asset has none.
func (a RemoteAsset) PlaybackID() string {
	for _, p := range a.PlaybackIDs {
		if p.ID != "" {
			return p.ID
		}
	}
	return ""
}

// Episode is a remote asset joined with its catalog metadata.
type Episode struct {
	ID         string `json:"id"`
	Number     int    `json:"episode_number"`
	Title      string `json:"title"`
	Poster     string `json:"poster"`
	PlaybackID string `json:"playback_id,omitempty"`
}

func (e Episode) HasPlayback() bool {
	return e.PlaybackID != ""
}
