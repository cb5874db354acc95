package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/kgindex"
)

var oneLevelOpts buildOptions

var oneLevelCmd = &cobra.Command{
	Use:   "one-level",
	Short: "Build the one-level index: each node keeps only its horizontal residual",
	Long: `one-level stores on each node (k,g) only the vertices of C(k,g) that
are not in C(k+1,g), and links the nodes of a row along k; a query unions
the payloads on the chain starting at (k,g), trading a longer query-time
walk for a smaller footprint than naive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild("one-level", kgindex.BuildOneLevel, oneLevelOpts)
	},
}

func init() {
	rootCmd.AddCommand(oneLevelCmd)
	oneLevelCmd.Flags().IntVar(&oneLevelOpts.k, "k", 0, "Run a query against the built index for this k (0 = skip)")
	oneLevelCmd.Flags().IntVar(&oneLevelOpts.g, "g", 0, "Run a query against the built index for this g (0 = skip)")
	oneLevelCmd.Flags().BoolVar(&oneLevelOpts.persist, "persist", false, "Persist build metadata (local sqlite file unless --config names a database)")
}
