package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/kinds"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"left-overlay", "right-overlay"}, cfg.Navigators.Modal)
	assert.Equal(t, "detail-pane", cfg.Navigators.Detail)
	assert.Equal(t, "entityID", cfg.Navigators.DetailParam)
	assert.Empty(t, cfg.Navigators.Roots)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wayfind.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[navigators]
modal = ["sheet"]
detail = "workspace"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"sheet"}, cfg.Navigators.Modal)
	assert.Equal(t, "workspace", cfg.Navigators.Detail)
	assert.Equal(t, "entityID", cfg.Navigators.DetailParam, "unset fields keep their defaults")
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[navigators\nmodal="), 0644))
		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("modal and detail overlap", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overlap.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[navigators]
modal = ["workspace"]
detail = "workspace"
`), 0644))
		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestKindTable(t *testing.T) {
	table, err := Default().KindTable()
	require.NoError(t, err)

	assert.True(t, table.IsModal(kinds.LeftOverlay))
	assert.True(t, table.IsModal(kinds.RightOverlay))
	assert.True(t, table.IsDetail(kinds.DetailPane))
	assert.False(t, table.IsModal("home"))
}
