package cmd

import (
	"errors"
	"fmt"

	"github.com/arc-engines/arc/pkg/document"
	"github.com/arc-engines/arc/pkg/script"
	"github.com/spf13/cobra"
)

var (
	runDocPath   string
	runOutPath   string
	runName      string
	runDegrees   bool
	runPrecision int
	runTolerance float64
	runStoreDir  string
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a script against a document",
	Long: `Runs an arc script. Shape statements add objects to the document;
spherical, center and inertia statements print their results.

Without --doc a new, empty document is used. With --out the resulting
document is written in the .arc s-expression format.

With --store the document named by --name is loaded from the store
directory when it exists, and saved back there afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runDocPath, "doc", "", "existing document to extend")
	runCmd.Flags().StringVarP(&runOutPath, "out", "o", "", "write the resulting document to this file")
	runCmd.Flags().StringVar(&runName, "name", document.DefaultName, "name of a new document")
	runCmd.Flags().BoolVarP(&runDegrees, "degrees", "d", false, "report angles in degrees")
	runCmd.Flags().IntVarP(&runPrecision, "precision", "p", 6, "decimals to print")
	runCmd.Flags().StringVar(&runStoreDir, "store", "", "directory of named documents to load from and save to")
	runCmd.Flags().Float64Var(&runTolerance, "tolerance", script.DefaultConfig().JoinTolerance, "distance under which wire vertices are joined")
}

func runRun(cmd *cobra.Command, args []string) error {
	log := logger(cmd)

	parser, err := script.NewParser()
	if err != nil {
		return err
	}
	s, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}
	log.Printf("parsed %s: %d statements", args[0], len(s.Statements))

	var store document.Store
	if runStoreDir != "" {
		store = document.DirStore{Root: runStoreDir}
	}

	var doc *document.Document
	switch {
	case runDocPath != "":
		doc, err = document.ReadFile(runDocPath)
		log.Printf("loaded %s", runDocPath)
	case store != nil:
		doc, err = store.Load(runName)
		if errors.Is(err, document.ErrNotFound) {
			log.Printf("%s not in %s, starting a new document", runName, runStoreDir)
			doc, err = document.New(runName)
		}
	default:
		doc, err = document.New(runName)
	}
	if err != nil {
		return err
	}

	cfg := script.DefaultConfig()
	cfg.Degrees = runDegrees
	cfg.Precision = runPrecision
	cfg.JoinTolerance = runTolerance

	in, err := script.NewInterpreter(doc, cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	in.Log = log
	if err := in.Run(s); err != nil {
		return err
	}

	if runOutPath != "" {
		if err := document.WriteFile(runOutPath, doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%d objects)\n", runOutPath, doc.Len())
	}
	if store != nil {
		if err := store.Save(doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s to %s (%d objects)\n", doc.Name(), runStoreDir, doc.Len())
	}
	return nil
}
