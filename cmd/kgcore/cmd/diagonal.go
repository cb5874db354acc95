package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/kgindex"
)

var diagonalOpts buildOptions

var diagonalCmd = &cobra.Command{
	Use:   "diagonal",
	Short: "Build the diagonal index: the most compressed representation",
	Long: `diagonal stores only the incremental difference (the "aux" set)
between consecutive diagonal hops, reconstructing a queried core from a
prefix of those differences. It is the smallest footprint of the four
representations, at the cost of the most expensive query-time walk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild("diagonal", kgindex.BuildDiagonal, diagonalOpts)
	},
}

func init() {
	rootCmd.AddCommand(diagonalCmd)
	diagonalCmd.Flags().IntVar(&diagonalOpts.k, "k", 0, "Run a query against the built index for this k (0 = skip)")
	diagonalCmd.Flags().IntVar(&diagonalOpts.g, "g", 0, "Run a query against the built index for this g (0 = skip)")
	diagonalCmd.Flags().BoolVar(&diagonalOpts.persist, "persist", false, "Persist build metadata (local sqlite file unless --config names a database)")
}
