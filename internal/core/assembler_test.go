package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"episodes/internal/config"
	"episodes/internal/models"
)

func assetsN(n int) []models.RemoteAsset {
	assets := make([]models.RemoteAsset, n)
	for i := range assets {
		assets[i] = models.RemoteAsset{
			ID:          fmt.Sprintf("asset-%d", i),
			PlaybackIDs: []models.PlaybackID{{ID: fmt.Sprintf("play-%d", i), Policy: "public"}},
		}
	}
	return assets
}

func TestMerge_FewerAssetsThanCatalog(t *testing.T) {
	a := NewAssembler(Catalog, config.MergePositional)

	episodes, err := a.Merge(assetsN(3))
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	for i, ep := range episodes {
		assert.Equal(t, Catalog[i].Title, ep.Title)
		assert.Equal(t, Catalog[i].Poster, ep.Poster)
		assert.Equal(t, i+1, ep.Number)
		assert.Equal(t, fmt.Sprintf("asset-%d", i), ep.ID)
		assert.Equal(t, fmt.Sprintf("play-%d", i), ep.PlaybackID)
	}
}

func TestMerge_MoreAssetsThanCatalogFallsBack(t *testing.T) {
	a := NewAssembler(Catalog, config.MergePositional)

	episodes, err := a.Merge(assetsN(12))
	require.NoError(t, err)
	require.Len(t, episodes, 12)

	assert.Equal(t, Catalog[9].Title, episodes[9].Title)
	assert.Equal(t, "Episode 11", episodes[10].Title)
	assert.Equal(t, "Episode 12", episodes[11].Title)
	assert.Equal(t, DefaultPoster, episodes[11].Poster)
	assert.Equal(t, 12, episodes[11].Number)
}

func TestMerge_MissingPlaybackID(t *testing.T) {
	a := NewAssembler(Catalog, config.MergePositional)

	episodes, err := a.Merge([]models.RemoteAsset{{ID: "no-playback"}})
	require.NoError(t, err)
	assert.False(t, episodes[0].HasPlayback())
}

func TestMerge_Empty(t *testing.T) {
	episodes, err := NewAssembler(Catalog, config.MergePositional).Merge(nil)
	require.NoError(t, err)
	assert.Empty(t, episodes)
}

func TestMerge_StrictRejectsLengthMismatch(t *testing.T) {
	a := NewAssembler(Catalog, config.MergeStrict)

	_, err := a.Merge(assetsN(3))
	assert.ErrorIs(t, err, ErrCatalogMismatch)

	episodes, err := a.Merge(assetsN(len(Catalog)))
	require.NoError(t, err)
	assert.Len(t, episodes, len(Catalog))
}

func TestMerge_ByPassthroughKey(t *testing.T) {
	assets := []models.RemoteAsset{
		{ID: "x", Passthrough: "ep3"},
		{ID: "y", Passthrough: "ep1"},
	}

	episodes, err := NewAssembler(Catalog, config.MergePositional).Merge(assets)
	require.NoError(t, err)

	assert.Equal(t, "Da Boom", episodes[0].Title)
	assert.Equal(t, 3, episodes[0].Number)
	assert.Equal(t, "Peter, Peter, Caviar Eater", episodes[1].Title)
	assert.Equal(t, 1, episodes[1].Number)
}

func TestMerge_StrictChecksLengthForKeyedAssets(t *testing.T) {
	assets := []models.RemoteAsset{
		{ID: "x", Passthrough: "ep3"},
		{ID: "y", Passthrough: "ep1"},
	}

	_, err := NewAssembler(Catalog, config.MergeStrict).Merge(assets)
	assert.ErrorIs(t, err, ErrCatalogMismatch)
}

func TestMerge_StrictKeyedFullSeason(t *testing.T) {
	assets := make([]models.RemoteAsset, len(Catalog))
	for i := range assets {
		// reverse order: keys, not positions, decide the titles
		n := len(Catalog) - i
		assets[i] = models.RemoteAsset{ID: fmt.Sprintf("asset-%d", n), Passthrough: fmt.Sprintf("ep%d", n)}
	}

	episodes, err := NewAssembler(Catalog, config.MergeStrict).Merge(assets)
	require.NoError(t, err)
	assert.Equal(t, Catalog[9].Title, episodes[0].Title)
	assert.Equal(t, Catalog[0].Title, episodes[9].Title)
}

func TestMerge_DuplicatePassthroughKeys(t *testing.T) {
	dupes := []models.RemoteAsset{
		{ID: "x", Passthrough: "ep1"},
		{ID: "y", Passthrough: "ep1"},
		{ID: "z", Passthrough: "ep1"},
	}

	episodes, err := NewAssembler(Catalog, config.MergePositional).Merge(dupes)
	require.NoError(t, err)
	require.Len(t, episodes, 3)
	for i, ep := range episodes {
		assert.Equal(t, Catalog[i].Title, ep.Title)
		assert.Equal(t, i+1, ep.Number)
	}

	_, err = NewAssembler(Catalog, config.MergeStrict).Merge(dupes)
	assert.ErrorIs(t, err, ErrCatalogMismatch)

	full := make([]models.RemoteAsset, len(Catalog))
	for i := range full {
		full[i] = models.RemoteAsset{ID: fmt.Sprintf("asset-%d", i), Passthrough: fmt.Sprintf("ep%d", i+1)}
	}
	full[9].Passthrough = "ep1"

	_, err = NewAssembler(Catalog, config.MergeStrict).Merge(full)
	assert.ErrorIs(t, err, ErrCatalogMismatch)
}

func TestMerge_PartialPassthroughUsesPosition(t *testing.T) {
	assets := []models.RemoteAsset{
		{ID: "x", Passthrough: "ep3"},
		{ID: "y", Passthrough: "bonus"},
	}

	episodes, err := NewAssembler(Catalog, config.MergePositional).Merge(assets)
	require.NoError(t, err)
	assert.Equal(t, Catalog[0].Title, episodes[0].Title)
	assert.Equal(t, Catalog[1].Title, episodes[1].Title)
}
