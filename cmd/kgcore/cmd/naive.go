package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/kgindex"
)

var naiveOpts buildOptions

var naiveCmd = &cobra.Command{
	Use:   "naive",
	Short: "Build the naive index: every (k,g) node stores its full core",
	Long: `naive builds one index node per (k,g) pair, each storing the
complete materialized vertex set for that core. It is the reference
representation every other build is checked against.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild("naive", kgindex.BuildNaive, naiveOpts)
	},
}

func init() {
	rootCmd.AddCommand(naiveCmd)
	naiveCmd.Flags().IntVar(&naiveOpts.k, "k", 0, "Run a query against the built index for this k (0 = skip)")
	naiveCmd.Flags().IntVar(&naiveOpts.g, "g", 0, "Run a query against the built index for this g (0 = skip)")
	naiveCmd.Flags().BoolVar(&naiveOpts.persist, "persist", false, "Persist build metadata (local sqlite file unless --config names a database)")
}
