package script

import (
	"fmt"
	"math"

	"github.com/arc-engines/arc/pkg/geom"
)

// MaxPrecision is the largest number of decimals printed for results.
const MaxPrecision = 17

// Config controls how scripts build geometry and report results.
type Config struct {
	JoinTolerance float64 // Distance under which wire vertices are joined
	Degrees       bool    // Report angles in degrees instead of radians
	Precision     int     // Decimals printed for results
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		JoinTolerance: geom.DefaultTolerance,
		Degrees:       false,
		Precision:     6,
	}
}

// Validate checks the configuration, clamping out-of-range values where a
// sensible replacement exists.
func (c *Config) Validate() error {
	if math.IsNaN(c.JoinTolerance) || math.IsInf(c.JoinTolerance, 0) {
		return fmt.Errorf("script: join tolerance must be finite, got %v", c.JoinTolerance)
	}
	if c.JoinTolerance <= 0 {
		c.JoinTolerance = geom.DefaultTolerance
	}
	if c.Precision < 0 {
		c.Precision = 0
	}
	if c.Precision > MaxPrecision {
		c.Precision = MaxPrecision
	}
	return nil
}

func (c *Config) angleUnit() string {
	if c.Degrees {
		return "deg"
	}
	return "rad"
}

func (c *Config) angle(rad float64) float64 {
	if c.Degrees {
		return geom.Degrees(rad)
	}
	return rad
}

func (c *Config) num(v float64) string {
	return fmt.Sprintf("%.*f", c.Precision, v)
}

func (c *Config) vec(v geom.Vector) string {
	return fmt.Sprintf("(%s, %s, %s)", c.num(v.X), c.num(v.Y), c.num(v.Z))
}

// FormatSpherical renders spherical coordinates using the configured angle
// unit and precision.
func (c *Config) FormatSpherical(s geom.Spherical) string {
	return fmt.Sprintf("r=%s theta=%s phi=%s %s",
		c.num(s.R), c.num(c.angle(s.Theta)), c.num(c.angle(s.Phi)), c.angleUnit())
}

// FormatInertia renders second moments of area or length.
func (c *Config) FormatInertia(in geom.Inertia) string {
	return fmt.Sprintf("Ixx=%s Iyy=%s J=%s", c.num(in.Ixx), c.num(in.Iyy), c.num(in.Polar))
}

// FormatPlacement renders a center-of-mass placement as its base and normal.
func (c *Config) FormatPlacement(p geom.Placement) string {
	return fmt.Sprintf("%s normal %s", c.vec(p.Base), c.vec(p.RotateVector(geom.Vec(0, 0, 1))))
}
