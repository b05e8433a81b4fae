package config

import (
	"fmt"
	"os"
	"sort"

	"alsflags/internal/locomotion"

	"gopkg.in/yaml.v3"
)

// Config holds all inspector configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Inspector InspectorConfig `yaml:"inspector"`
	Character CharacterConfig `yaml:"character"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type InspectorConfig struct {
	RowHeight   int    `yaml:"row_height"`
	ColumnWidth int    `yaml:"column_width"`
	HistorySize int    `yaml:"history_size"`
	PresetsFile string `yaml:"presets_file"`
}

// CharacterConfig describes the character the inspector starts with.
// Initial maps a domain name (e.g. "Gait") to an enumerator name
// (e.g. "Running"); domains left out keep their default.
type CharacterConfig struct {
	Initial map[string]string `yaml:"initial"`
}

var GlobalConfig *Config

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Catch typos in domain names before the window opens
	if _, err := config.InitialCharacter(); err != nil {
		return nil, err
	}

	GlobalConfig = &config
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// InitialCharacter builds the configured starting character.
func (c *Config) InitialCharacter() (*locomotion.Character, error) {
	return buildCharacter("character.initial", c.Character.Initial)
}

// buildCharacter applies domain -> enumerator assignments to a fresh
// character in sorted domain order.
func buildCharacter(where string, assignments map[string]string) (*locomotion.Character, error) {
	ch := locomotion.NewCharacter()

	domains := make([]string, 0, len(assignments))
	for d := range assignments {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	for _, d := range domains {
		if _, _, err := ch.SetByName(d, assignments[d]); err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
	}
	return ch, nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	if c.Display.ScreenWidth <= 0 {
		return 640
	}
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	if c.Display.ScreenHeight <= 0 {
		return 720
	}
	return c.Display.ScreenHeight
}

func (c *Config) GetWindowTitle() string {
	if c.Display.WindowTitle == "" {
		return "Locomotion State Inspector"
	}
	return c.Display.WindowTitle
}

func (c *Config) GetRowHeight() int {
	if c.Inspector.RowHeight <= 0 {
		return 16
	}
	return c.Inspector.RowHeight
}

func (c *Config) GetColumnWidth() int {
	if c.Inspector.ColumnWidth <= 0 {
		return 180
	}
	return c.Inspector.ColumnWidth
}

func (c *Config) GetHistorySize() int {
	if c.Inspector.HistorySize <= 0 {
		return 8
	}
	return c.Inspector.HistorySize
}
