package config

import (
	"fmt"
	"os"
	"sort"

	"alsflags/internal/locomotion"

	"gopkg.in/yaml.v3"
)

// Preset is a named set of domain assignments applied in one step,
// e.g. "aim_rifle" setting RotationMode and OverlayState together.
type Preset struct {
	Key         string            `yaml:"key"`
	Description string            `yaml:"description,omitempty"`
	States      map[string]string `yaml:"states"`
}

// PresetConfig is the root config for character presets.
type PresetConfig struct {
	Presets []Preset `yaml:"presets"`
}

var presetConfig *PresetConfig

// LoadPresetConfig loads presets from YAML and validates every assignment.
func LoadPresetConfig(filename string) (*PresetConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset config: %w", err)
	}

	var cfg PresetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse preset config: %w", err)
	}
	seen := make(map[string]bool, len(cfg.Presets))
	for _, p := range cfg.Presets {
		if seen[p.Key] {
			return nil, fmt.Errorf("preset %q defined twice", p.Key)
		}
		seen[p.Key] = true
		if _, err := buildCharacter("preset "+p.Key, p.States); err != nil {
			return nil, err
		}
	}
	presetConfig = &cfg
	return &cfg, nil
}

// MustLoadPresetConfig loads preset config or panics.
func MustLoadPresetConfig(filename string) *PresetConfig {
	cfg, err := LoadPresetConfig(filename)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetPresets returns the loaded presets, or nil if none were loaded.
func GetPresets() []Preset {
	if presetConfig == nil {
		return nil
	}
	return presetConfig.Presets
}

// Apply assigns every state of the preset to ch in sorted domain order
// and returns the changes that moved a value.
func (p Preset) Apply(ch *locomotion.Character) ([]locomotion.Change, error) {
	domains := make([]string, 0, len(p.States))
	for d := range p.States {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	var changes []locomotion.Change
	for _, d := range domains {
		change, moved, err := ch.SetByName(d, p.States[d])
		if err != nil {
			return changes, fmt.Errorf("preset %s: %w", p.Key, err)
		}
		if moved {
			changes = append(changes, change)
		}
	}
	return changes, nil
}
