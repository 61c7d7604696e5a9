package game

import (
	"errors"
	"fmt"
)

// Config controls how the prototype runs.
type Config struct {
	Title     string
	Width     int
	Height    int
	Resizable bool

	// Headless runs the simulation without a window at Hz updates per
	// second, stopping after Ticks frames when Ticks is positive.
	Headless bool
	Hz       int
	Ticks    int

	// Debug adds the Dear ImGui overlay. Ignored in headless mode.
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		Title:     "Vaultworn - Medieval RPG Prototype",
		Width:     1280,
		Height:    720,
		Resizable: true,
		Hz:        60,
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.Hz <= 0 {
		errs = append(errs, fmt.Errorf("hz must be positive, got %d", c.Hz))
	}
	if c.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks must not be negative, got %d", c.Ticks))
	}
	return errors.Join(errs...)
}
