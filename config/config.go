package config

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/turngrid/input"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidConfig is returned by Validate for any rejected setting
var ErrInvalidConfig = errors.New("invalid config")

// Config describes the world and the ambient settings of one run
type Config struct {
	Map      MapConfig         `yaml:"map"`
	Entities []EntityConfig    `yaml:"entities"`
	Keys     map[string]string `yaml:"keys"`
	Log      LogConfig         `yaml:"log"`
	Audio    AudioConfig       `yaml:"audio"`
}

// MapConfig is the terrain layout
type MapConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Fill   string  `yaml:"fill"`
	Walls  [][]int `yaml:"walls"` // [x, y] pairs
}

// EntityConfig is one actor placed at setup
type EntityConfig struct {
	Glyph    string `yaml:"glyph"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	HP       uint32 `yaml:"hp"`
	Blocking bool   `yaml:"blocking"`
	Player   bool   `yaml:"player"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug   bool   `yaml:"debug"`
	Dir     string `yaml:"dir"`
	File    string `yaml:"file"`
	MaxSize int64  `yaml:"max_size"`
}

// AudioConfig controls the step sound
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Frequency  float64 `yaml:"frequency"`
	DurationMs int     `yaml:"duration_ms"`
}

// Default returns the built-in configuration
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(errors.Wrap(err, "embedded default config"))
	}
	return &cfg
}

// Load decodes YAML from r over the defaults
// Sections absent from r keep their default values. A present map section starts with no walls,
// and a present keys section replaces the default bindings.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var sections map[string]any
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	cfg := Default()
	defaults := cfg.Keys
	cfg.Keys = nil
	if _, ok := sections["map"]; ok {
		cfg.Map.Walls = nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode config")
	}
	if cfg.Keys == nil {
		cfg.Keys = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// KeyTable builds the movement key table from the keys section
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt, err := input.NewKeyTable(c.Keys)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return kt, nil
}
