package config

import (
	"fmt"
	"os"

	"launchdash/internal/errors"

	"gopkg.in/yaml.v3"
)

// DashboardConfig customises the page. Every field is optional in the YAML file.
type DashboardConfig struct {
	Title       string            `yaml:"title"`
	AboutFile   string            `yaml:"about_file"`
	Sites       []SiteOption      `yaml:"sites"`
	SliderStep  float64           `yaml:"slider_step"`
	SliderMarks []float64         `yaml:"slider_marks"`
	Colors      map[string]string `yaml:"colors"`
}

// SiteOption is one dropdown entry.
type SiteOption struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// DefaultDashboardConfig mirrors the stock dashboard page.
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Title:       "SpaceX Launch Records Dashboard",
		SliderStep:  1000,
		SliderMarks: []float64{0, 2500, 5000, 7500, 10000},
		Colors: map[string]string{
			"Success":   "green",
			"Epic Fail": "red",
		},
	}
}

// LoadDashboardFile reads a YAML file and layers it over the defaults.
func LoadDashboardFile(path string) (*DashboardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("read %s: %w", path, err))
	}
	return ParseDashboard(data)
}

// ParseDashboard decodes YAML over the defaults.
func ParseDashboard(data []byte) (*DashboardConfig, error) {
	cfg := DefaultDashboardConfig()
	var overlay DashboardConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("parse dashboard yaml: %w", err))
	}

	if overlay.Title != "" {
		cfg.Title = overlay.Title
	}
	if overlay.AboutFile != "" {
		cfg.AboutFile = overlay.AboutFile
	}
	if len(overlay.Sites) > 0 {
		cfg.Sites = overlay.Sites
	}
	if overlay.SliderStep != 0 {
		cfg.SliderStep = overlay.SliderStep
	}
	if len(overlay.SliderMarks) > 0 {
		cfg.SliderMarks = overlay.SliderMarks
	}
	for k, v := range overlay.Colors {
		cfg.Colors[k] = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the page cannot render.
func (d DashboardConfig) Validate() error {
	if d.SliderStep <= 0 {
		return errors.ConfigInvalid("slider_step must be positive")
	}
	for i, s := range d.Sites {
		if s.Value == "" {
			return errors.ConfigInvalid(fmt.Sprintf("sites[%d] has no value", i))
		}
		if s.Value == "ALL" {
			return errors.ConfigInvalid("sites must not list ALL; it is always the first option")
		}
	}
	return nil
}
