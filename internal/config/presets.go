package config

import (
	"sort"

	"github.com/san-kum/toothsim/internal/params"
)

var Presets = map[string]params.Raw{
	"gentle":   {ForceN: 1.5, AngleDeg: 0, K: 1, Damping: 0.5, TeethCount: 5},
	"push":     {ForceN: 10, AngleDeg: 0, K: 1, Damping: 0.1, TeethCount: 3},
	"bite":     {ForceN: 12, AngleDeg: 90, K: 1.5, Damping: 0.3, TeethCount: 6},
	"sideways": {ForceN: 8, AngleDeg: 180, K: 2, Damping: 0.05, TeethCount: 4},
	"crowded":  {ForceN: 6, AngleDeg: 45, K: 1, Damping: 0.2, TeethCount: 10},
}

// GetPreset returns the default config with the named preset's parameters.
func GetPreset(name string) *Config {
	raw, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Params = raw
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
