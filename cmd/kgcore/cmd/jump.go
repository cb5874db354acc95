package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/kgindex"
)

var jumpOpts buildOptions

var jumpCmd = &cobra.Command{
	Use:   "jump",
	Short: "Build the jump index: vertical links to the next g-row",
	Long: `jump extends one-level with a vertical link from each node (k,g) to
its counterpart (k,g+1) and drops from (k,g) every vertex that counterpart
already stores; a query walks the vertical chain and unions each starter's
horizontal chain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild("jump", kgindex.BuildJump, jumpOpts)
	},
}

func init() {
	rootCmd.AddCommand(jumpCmd)
	jumpCmd.Flags().IntVar(&jumpOpts.k, "k", 0, "Run a query against the built index for this k (0 = skip)")
	jumpCmd.Flags().IntVar(&jumpOpts.g, "g", 0, "Run a query against the built index for this g (0 = skip)")
	jumpCmd.Flags().BoolVar(&jumpOpts.persist, "persist", false, "Persist build metadata (local sqlite file unless --config names a database)")
}
