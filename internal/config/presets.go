package config

import (
	"sort"
	"time"

	"github.com/san-kum/llamademo/internal/scramble"
)

// Presets are named hero animation settings. Words are left empty so a
// preset keeps whatever word list is configured.
var Presets = map[string]HeroConfig{
	"classic": {
		Alphabet: scramble.DefaultAlphabet, Duration: 1500 * time.Millisecond,
		TickInterval: 50 * time.Millisecond, RotationPeriod: 4 * time.Second,
	},
	"quick": {
		Alphabet: scramble.DefaultAlphabet, Duration: 600 * time.Millisecond,
		TickInterval: 30 * time.Millisecond, RotationPeriod: 2 * time.Second,
	},
	"slow": {
		Alphabet: scramble.DefaultAlphabet, Duration: 3 * time.Second,
		TickInterval: 80 * time.Millisecond, RotationPeriod: 6 * time.Second,
	},
	"binary": {
		Alphabet: "01", Duration: 1500 * time.Millisecond,
		TickInterval: 50 * time.Millisecond, RotationPeriod: 4 * time.Second,
	},
	"glyph": {
		Alphabet: "░▒▓█▌▐■□▪▫", Duration: 2 * time.Second,
		TickInterval: 40 * time.Millisecond, RotationPeriod: 5 * time.Second,
	},
}

func GetPreset(name string) (HeroConfig, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the hero timing and alphabet with the named preset.
func (c *Config) ApplyPreset(name string) bool {
	p, ok := GetPreset(name)
	if !ok {
		return false
	}
	c.Hero.Alphabet = p.Alphabet
	c.Hero.Duration = p.Duration
	c.Hero.TickInterval = p.TickInterval
	c.Hero.RotationPeriod = p.RotationPeriod
	return true
}
