package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arc",
	Short: "arc - parametric CAD helpers",
	Long: `arc builds simple parametric CAD documents (points, circles, arcs,
rectangles and wires) and reports their geometry.

Examples:
  arc spherical 1 1 1                 # Cartesian to spherical coordinates
  arc spherical --degrees -- -1 0 2   # negative values go after --
  arc run part.arcs --out part.arc    # run a script and save the document
  arc info part.arc                   # list objects with centers of mass`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "arc:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// logger returns the diagnostic logger; it discards output unless --verbose
// is set.
func logger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "arc: ", log.Ltime)
}
