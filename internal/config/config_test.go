package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreWritesDefaultConfig(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), ".mosswm.yaml")

	store, err := NewStore(NewYAML(filePath))
	require.NoError(t, err)

	_, err = os.Stat(filePath)
	require.NoError(t, err)

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	require.Equal(t, defaultConfig.Layout, cfg.Layout)
}

func TestYAMLRoundTrip(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), ".mosswm.yaml")
	store, err := NewStore(NewYAML(filePath))
	require.NoError(t, err)

	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.Layout = Layout{Gaps: 4, Padding: 2, MasterRatio: 0.7}
		cfg.FloatRules = append(cfg.FloatRules, FloatRule{App: "mpv"})
		return cfg, nil
	})
	require.NoError(t, err)

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	require.Equal(t, Layout{Gaps: 4, Padding: 2, MasterRatio: 0.7}, cfg.Layout)
	require.True(t, cfg.Floats("mpv"))
	require.False(t, cfg.Floats("term"))
}

func TestJSONRoundTrip(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), ".mosswm.json")
	store, err := NewStore(NewJSON(filePath))
	require.NoError(t, err)

	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.Layout.Gaps = 16
		return cfg, nil
	})
	require.NoError(t, err)

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	require.Equal(t, float64(16), cfg.Layout.Gaps)
}

func TestNormalizeAssignsUUIDs(t *testing.T) {
	store, err := NewStore(NewMemory(Config{
		FloatRules: []FloatRule{{App: "mpv"}, {UUID: "keep", App: "pavucontrol"}},
	}))
	require.NoError(t, err)

	require.NoError(t, Normalize(store))

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.FloatRules[0].UUID)
	require.Equal(t, "keep", cfg.FloatRules[1].UUID)
}

func TestLayoutConfigClamps(t *testing.T) {
	cfg := Config{Layout: Layout{Gaps: -1, Padding: 3, MasterRatio: 2}}

	lc := cfg.LayoutConfig()
	require.Equal(t, float64(0), lc.Gaps)
	require.Equal(t, float64(3), lc.Padding)
	require.Equal(t, 0.9, lc.MasterRatio)
}
