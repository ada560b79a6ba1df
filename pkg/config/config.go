package config

import (
	"io"
	"os"
	"sync"

	"github.com/admpub/json5"

	"github.com/admpub/charting/pkg/charting"
	"github.com/admpub/charting/pkg/storage"
)

type Config struct {
	Listen       string   `json:"listen,omitempty"`
	Storage      string   `json:"storage,omitempty"` // memory | duckdb://./data/
	Theme        string   `json:"theme,omitempty"`
	Width        string   `json:"width,omitempty"`
	Height       string   `json:"height,omitempty"`
	Palette      []string `json:"palette,omitempty"`
	CyclePalette bool     `json:"cyclePalette,omitempty"`
	LastLines    int      `json:"lastlines,omitempty"`

	storager storage.Storager
	mu       sync.Mutex
}

func (c *Config) SetDefaults() {
	if len(c.Listen) == 0 {
		c.Listen = `:8080`
	}
	if len(c.Storage) == 0 {
		c.Storage = `memory`
	}
	if c.LastLines < 0 {
		c.LastLines = 0
	}
}

// ChartPalette returns the configured cluster palette, falling back to the
// fixed red, green, blue one.
func (c *Config) ChartPalette() charting.Palette {
	colors := c.Palette
	if len(colors) == 0 {
		if !c.CyclePalette {
			return charting.DefaultPalette()
		}
		colors = []string{`red`, `green`, `blue`}
	}
	if c.CyclePalette {
		return charting.NewCyclicPalette(colors...)
	}
	return charting.NewFixedPalette(colors...)
}

// Storager opens the configured storage on first use.
func (c *Config) Storager() (storage.Storager, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.storager != nil {
		return c.storager, nil
	}
	em, err := storage.New(c.Storage)
	if err != nil {
		return nil, err
	}
	c.storager = em
	return em, nil
}

func (c *Config) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.storager != nil {
		c.storager.Close()
		c.storager = nil
	}
}

func New() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// LoadConfig reads a JSON5 file, so comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer jsonFile.Close()

	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return nil, err
	}
	return ParseConfig(byteValue)
}

func ParseConfig(b []byte) (*Config, error) {
	config := &Config{}
	if err := json5.Unmarshal(b, config); err != nil {
		return nil, err
	}
	config.SetDefaults()
	return config, nil
}
