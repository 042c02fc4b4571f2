package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golangdaddy/zebra/pkg/sim"
	"gopkg.in/yaml.v3"
)

// Settings are the inputs of a run as stored on disk
type Settings struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	VehicleSpeed    float64 `yaml:"vehicle_speed"`
	PedestrianSpeed float64 `yaml:"pedestrian_speed"`
	CycleTicks      int     `yaml:"cycle_ticks"`
	AdvisoryTicks   int     `yaml:"advisory_ticks"`
	Seed            int64   `yaml:"seed,omitempty"` // 0 picks a seed from the clock
	Mute            bool    `yaml:"mute,omitempty"`
}

// DefaultSettings returns the settings of a standard 800x600 crossing
func DefaultSettings() *Settings {
	return &Settings{
		Width:           sim.DefaultWidth,
		Height:          sim.DefaultHeight,
		VehicleSpeed:    sim.DefaultVehicleSpeed,
		PedestrianSpeed: sim.DefaultPedestrianSpeed,
		CycleTicks:      sim.DefaultCycleTicks,
		AdvisoryTicks:   sim.DefaultAdvisoryTicks,
	}
}

// SaveToFile writes the settings as YAML
func (s *Settings) SaveToFile(filename string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile reads settings from a YAML file. Fields missing from the file
// keep their default values.
func LoadFromFile(filename string) (*Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("invalid settings file '%s': %w", filename, err)
	}

	return s, nil
}

// Validate checks that the settings describe a usable field
func (s *Settings) Validate() error {
	var errs []error
	if s.Width < 100 || s.Height < 100 {
		errs = append(errs, fmt.Errorf("field %dx%d is smaller than 100x100", s.Width, s.Height))
	}
	if s.VehicleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("vehicle speed must be positive, got %v", s.VehicleSpeed))
	}
	if s.PedestrianSpeed <= 0 {
		errs = append(errs, fmt.Errorf("pedestrian speed must be positive, got %v", s.PedestrianSpeed))
	}
	if s.CycleTicks < 1 {
		errs = append(errs, fmt.Errorf("light cycle must be at least one tick, got %d", s.CycleTicks))
	}
	if s.AdvisoryTicks < 0 {
		errs = append(errs, fmt.Errorf("advisory duration cannot be negative, got %d", s.AdvisoryTicks))
	}
	return errors.Join(errs...)
}

// Config derives the simulation configuration
func (s *Settings) Config() sim.Config {
	return sim.NewConfig(s.Width, s.Height, s.VehicleSpeed, s.PedestrianSpeed, s.CycleTicks, s.AdvisoryTicks)
}

// EffectiveSeed returns the configured seed, or one taken from the clock
func (s *Settings) EffectiveSeed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}
