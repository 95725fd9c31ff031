package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/llamademo/internal/scramble"
	"github.com/san-kum/llamademo/internal/transcript"
)

const (
	DefaultDuration       = scramble.DefaultDuration
	DefaultTickInterval   = scramble.DefaultTickInterval
	DefaultRotationPeriod = 4 * time.Second
	DefaultTheme          = "llama"
	DefaultLogLevel       = "info"
)

var DefaultWords = []string{"Llamaware", "Ingenuity"}

type Config struct {
	Hero        HeroConfig      `yaml:"hero" envPrefix:"HERO_"`
	Terminal    TerminalConfig  `yaml:"terminal" envPrefix:"TERMINAL_"`
	Theme       string          `yaml:"theme" env:"THEME"`
	Log         LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Clipboard   ClipboardConfig `yaml:"clipboard" envPrefix:"CLIPBOARD_"`
	Transcripts string          `yaml:"transcripts" env:"TRANSCRIPTS"`
}

type HeroConfig struct {
	Words          []string      `yaml:"words" env:"WORDS" envSeparator:","`
	Alphabet       string        `yaml:"alphabet" env:"ALPHABET"`
	Duration       time.Duration `yaml:"duration" env:"DURATION"`
	TickInterval   time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	RotationPeriod time.Duration `yaml:"rotation_period" env:"ROTATION_PERIOD"`
	Seed           uint64        `yaml:"seed" env:"SEED"`
}

type TerminalConfig struct {
	Title string `yaml:"title" env:"TITLE"`
	Width int    `yaml:"width" env:"WIDTH"`
}

type LogConfig struct {
	File  string `yaml:"file" env:"FILE"`
	Level string `yaml:"level" env:"LEVEL"`
}

type ClipboardConfig struct {
	Passthrough string `yaml:"passthrough" env:"PASSTHROUGH"`
	Limit       int    `yaml:"limit" env:"LIMIT"`
}

func DefaultConfig() *Config {
	return &Config{
		Hero: HeroConfig{
			Words:          append([]string(nil), DefaultWords...),
			Alphabet:       scramble.DefaultAlphabet,
			Duration:       DefaultDuration,
			TickInterval:   DefaultTickInterval,
			RotationPeriod: DefaultRotationPeriod,
		},
		Terminal: TerminalConfig{
			Title: "llamaware enterprise agent",
			Width: 88,
		},
		Theme: DefaultTheme,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the yaml file at path over c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Resolve layers defaults, the named preset, the yaml file at path and the
// environment, in that order. An empty preset or path skips that layer.
func Resolve(preset, path string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, ListPresets())
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnvPrefix namespaces every environment override.
const EnvPrefix = "LLAMADEMO_"

// ApplyEnv overrides cfg with any LLAMADEMO_* variables that are set.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Target returns the scramble template for hero words.
func (c *Config) Target() scramble.Target {
	return scramble.Target{
		Alphabet:     c.Hero.Alphabet,
		Duration:     c.Hero.Duration,
		TickInterval: c.Hero.TickInterval,
	}
}

func (c *Config) Validate() error {
	if len(c.Hero.Words) == 0 {
		return fmt.Errorf("config: hero.words must not be empty")
	}
	if c.Hero.RotationPeriod <= 0 {
		return fmt.Errorf("config: hero.rotation_period must be positive, got %s", c.Hero.RotationPeriod)
	}
	if err := c.Target().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

type transcriptFile struct {
	Sessions []transcript.Session `yaml:"sessions"`
}

// LoadTranscripts decodes a yaml document with a top-level sessions list.
// Output blocks should use literal block scalars (|-) to keep whitespace.
func LoadTranscripts(r io.Reader) (transcript.Collection, error) {
	var f transcriptFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return transcript.Collection{}, fmt.Errorf("decode transcripts: %w", err)
	}
	return transcript.NewCollection(f.Sessions...), nil
}

func LoadTranscriptsFile(path string) (transcript.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return transcript.Collection{}, err
	}
	defer f.Close()
	return LoadTranscripts(f)
}
