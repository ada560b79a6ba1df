package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/charting/pkg/charting"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), `config.json5`)
	body := `{
	// served by --serve
	listen: ":9000",
	palette: ["#c23531", "#2f4554"],
	cyclePalette: true,
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	defer cfg.Close()
	assert.Equal(t, `:9000`, cfg.Listen)
	assert.Equal(t, `memory`, cfg.Storage)

	palette := cfg.ChartPalette()
	color, err := palette.Color(2)
	assert.NoError(t, err)
	assert.Equal(t, `#c23531`, color)

	em, err := cfg.Storager()
	require.NoError(t, err)
	again, err := cfg.Storager()
	require.NoError(t, err)
	assert.Same(t, em, again)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), `nope.json`))
	assert.True(t, os.IsNotExist(err))
}

func TestChartPalette(t *testing.T) {
	cfg := New()
	_, err := cfg.ChartPalette().Color(3)
	assert.ErrorIs(t, err, charting.ErrPaletteExhausted)

	cfg.CyclePalette = true
	color, err := cfg.ChartPalette().Color(3)
	assert.NoError(t, err)
	assert.Equal(t, `red`, color)

	cfg = New()
	cfg.Palette = []string{`a`}
	_, err = cfg.ChartPalette().Color(1)
	assert.ErrorIs(t, err, charting.ErrPaletteExhausted)
}
