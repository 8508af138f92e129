package transition

import (
	"time"

	"github.com/BrandonKowalski/curtain/pkg/curtain/easing"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultBackgroundColor = "black"
	DefaultDurationSeconds = 0.75
	DefaultStackOrder      = 50
)

// Config configures an Engine. Every field is optional.
type Config struct {
	Profile         Profile     `mapstructure:"profile"`          // Picks the default Variant, default ProfileMinimal
	Variant         Variant     `mapstructure:"variant"`          // Default depends on Profile
	BackgroundColor string      `mapstructure:"background_color"` // Fill of every panel (default: black)
	DurationSeconds float64     `mapstructure:"duration_seconds"` // Base animation length (default: 0.75)
	Easing          easing.Spec `mapstructure:"easing"`           // Named curve or control points (default: easeInOut)
	StackOrder      int         `mapstructure:"stack_order"`      // Layer above page content (default: 50)
}

// WithDefaults returns a copy of c with every zero field filled in.
func (c Config) WithDefaults() Config {
	if c.Profile == "" {
		c.Profile = ProfileMinimal
	}
	if c.Variant == "" {
		c.Variant = c.Profile.DefaultVariant()
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = DefaultBackgroundColor
	}
	if c.DurationSeconds <= 0 {
		c.DurationSeconds = DefaultDurationSeconds
	}
	if c.Easing.IsZero() {
		c.Easing = easing.Named(easing.Default)
	}
	if c.StackOrder == 0 {
		c.StackOrder = DefaultStackOrder
	}
	return c
}

// Duration returns DurationSeconds as a time.Duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.DurationSeconds * float64(time.Second))
}
