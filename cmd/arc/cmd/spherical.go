package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/arc-engines/arc/pkg/geom"
	"github.com/arc-engines/arc/pkg/script"
	"github.com/spf13/cobra"
)

var (
	sphericalDegrees   bool
	sphericalJSON      bool
	sphericalPrecision int
)

// SphericalResult is the JSON form of a conversion.
type SphericalResult struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
	Phi   float64 `json:"phi"`
	Unit  string  `json:"unit"`
}

// MarshalJSON writes non-finite values as the strings "NaN", "+Inf" and
// "-Inf", which encoding/json cannot represent as numbers.
func (r SphericalResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X     any    `json:"x"`
		Y     any    `json:"y"`
		Z     any    `json:"z"`
		R     any    `json:"r"`
		Theta any    `json:"theta"`
		Phi   any    `json:"phi"`
		Unit  string `json:"unit"`
	}{jsonNumber(r.X), jsonNumber(r.Y), jsonNumber(r.Z), jsonNumber(r.R), jsonNumber(r.Theta), jsonNumber(r.Phi), r.Unit})
}

func jsonNumber(v float64) any {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return v
}

var sphericalCmd = &cobra.Command{
	Use:   "spherical <x> <y> <z>",
	Short: "Convert Cartesian coordinates to spherical coordinates",
	Long: `Converts a point to spherical coordinates (r, theta, phi):

  r     = sqrt(x² + y² + z²)
  theta = atan2(z, sqrt(x² + y²))   elevation from the x-y plane
  phi   = atan2(y, x)               azimuth from +X

The origin converts to (0, 0, 0). Put negative values after "--".`,
	Args: cobra.ExactArgs(3),
	RunE: runSpherical,
}

func init() {
	rootCmd.AddCommand(sphericalCmd)
	sphericalCmd.Flags().BoolVarP(&sphericalDegrees, "degrees", "d", false, "report angles in degrees")
	sphericalCmd.Flags().BoolVar(&sphericalJSON, "json", false, "output as JSON")
	sphericalCmd.Flags().IntVarP(&sphericalPrecision, "precision", "p", 6, "decimals to print")
}

func runSpherical(cmd *cobra.Command, args []string) error {
	var c [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		c[i] = v
	}

	cfg := script.DefaultConfig()
	cfg.Degrees = sphericalDegrees
	cfg.Precision = sphericalPrecision
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := geom.Vec(c[0], c[1], c[2])
	s := p.ToSpherical()
	logger(cmd).Printf("spherical %v -> %+v", p, s)

	out := cmd.OutOrStdout()
	if sphericalJSON {
		res := SphericalResult{X: p.X, Y: p.Y, Z: p.Z, R: s.R, Theta: s.Theta, Phi: s.Phi, Unit: "rad"}
		if cfg.Degrees {
			res.Theta, res.Phi = s.Degrees()
			res.Unit = "deg"
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(out, cfg.FormatSpherical(s))
	return nil
}
