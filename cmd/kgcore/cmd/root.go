package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/pkg/config"
	"github.com/kgcore/kgcore/pkg/utils"
)

var (
	// Global flags
	verbose    bool
	hgFile     string
	configPath string

	logger utils.Logger
	appCfg *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "kgcore",
	Short: "An index for (k,g)-core queries on hypergraphs",
	Long: `kgcore builds and queries an index over the (k,g)-core decomposition
of a hypergraph: the maximal induced sub-hypergraph in which every vertex
has at least k neighbors that it co-occurs with in at least g hyperedges.

It supports four index representations of increasing compression (naive,
one-level, jump, diagonal), a benchmark harness comparing them, and an
interactive query mode.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := utils.LevelInfo
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)

		if configPath != "" {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			appCfg = cfg
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&hgFile, "file", "", "Hypergraph source file (required)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Optional config file for persistence/storage/telemetry settings")
	rootCmd.PersistentFlags().BoolVar(&rawSQLPersist, "raw-sql", false, "With --persist on postgres/mysql, use the hand-written database/sql repositories instead of GORM (no auto-migration)")

	binName := BinName()
	rootCmd.Example = `  # Find the (3,1)-core directly, no index built
  ` + binName + ` --file ./data/sample.hg core --k 3 --g 1

  # Build the diagonal index and query it
  ` + binName + ` --file ./data/sample.hg diagonal --k 2 --g 2

  # Compare all four representations and write a CSV report
  ` + binName + ` --file ./data/sample.hg benchmark

  # Read (k,g) pairs from stdin against the diagonal index
  ` + binName + ` --file ./data/sample.hg interactive`
}

// GetLogger returns the configured logger.
func GetLogger() utils.Logger {
	return logger
}

// GetConfig returns the loaded ambient config, or nil if --config was not set.
func GetConfig() *config.Config {
	return appCfg
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}

// requireHGFile validates the persistent --file flag is set.
func requireHGFile() error {
	if hgFile == "" {
		return fmt.Errorf("--file is required")
	}
	return nil
}

// loadHypergraph loads the hypergraph named by --file using the loader's
// default leniency (malformed tokens logged and skipped, not fatal).
func loadHypergraph() (*hypergraph.Hypergraph, error) {
	loader := hypergraph.NewLoader(hypergraph.WithLogger(logger))
	return loader.LoadFile(hgFile)
}
