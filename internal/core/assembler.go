package core

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"episodes/internal/config"
	"episodes/internal/models"
)

// ErrCatalogMismatch is returned by strict merging when the relay and the
// catalog disagree on the number of episodes or an episode key repeats.
var ErrCatalogMismatch = errors.New("assets do not match episode catalog")

// Assembler joins relay assets with catalog metadata.
type Assembler struct {
	catalog []models.EpisodeMetadata
	strict  bool
}

func NewAssembler(catalog []models.EpisodeMetadata, mergeMode string) *Assembler {
	return &Assembler{
		catalog: catalog,
		strict:  mergeMode == config.MergeStrict,
	}
}

// Merge returns one episode per asset, in asset order. Assets are matched to
// catalog entries by passthrough key when every asset carries a distinct known
// key, otherwise by position. Positions past the catalog get a generated title
// and the default poster. A strict assembler instead rejects any asset count
// that differs from the catalog, and any repeated passthrough key.
func (a *Assembler) Merge(assets []models.RemoteAsset) ([]models.Episode, error) {
	if a.strict && len(assets) != len(a.catalog) {
		return nil, fmt.Errorf("%w: %d assets, %d catalog entries", ErrCatalogMismatch, len(assets), len(a.catalog))
	}

	byKey, err := a.keyed(assets)
	if err != nil {
		return nil, err
	}
	if byKey != nil {
		return lo.Map(assets, func(asset models.RemoteAsset, _ int) models.Episode {
			return episodeFrom(asset, byKey[asset.Passthrough])
		}), nil
	}

	return lo.Map(assets, func(asset models.RemoteAsset, i int) models.Episode {
		meta := fallbackMetadata(i + 1)
		if i < len(a.catalog) {
			meta = a.catalog[i]
		}
		return episodeFrom(asset, meta)
	}), nil
}

// keyed returns the catalog indexed by key when the assets can be matched by
// passthrough, or nil when they cannot. A repeated key is an error only when
// strict; otherwise it falls back to position.
func (a *Assembler) keyed(assets []models.RemoteAsset) (map[string]models.EpisodeMetadata, error) {
	if len(assets) == 0 {
		return nil, nil
	}
	byKey := lo.KeyBy(a.catalog, func(m models.EpisodeMetadata) string { return m.Key })
	seen := make(map[string]bool, len(assets))
	for _, asset := range assets {
		if _, ok := byKey[asset.Passthrough]; !ok || asset.Passthrough == "" {
			return nil, nil
		}
		if seen[asset.Passthrough] {
			if a.strict {
				return nil, fmt.Errorf("%w: passthrough %q on more than one asset", ErrCatalogMismatch, asset.Passthrough)
			}
			return nil, nil
		}
		seen[asset.Passthrough] = true
	}
	return byKey, nil
}

func episodeFrom(asset models.RemoteAsset, meta models.EpisodeMetadata) models.Episode {
	return models.Episode{
		ID:         asset.ID,
		Number:     meta.Number,
		Title:      meta.Title,
		Poster:     meta.Poster,
		PlaybackID: asset.PlaybackID(),
	}
}
