package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/kgcore"
	"github.com/kgcore/kgcore/internal/statistics"
)

var (
	coreK int
	coreG int
)

// coreCmd finds a single (k,g)-core directly via the peeler, with no index
// built. This is the cheapest way to answer one query.
var coreCmd = &cobra.Command{
	Use:   "core",
	Short: "Find the (k,g)-core directly, without building an index",
	Long: `core peels the hypergraph down to its (k,g)-core: the maximal
induced sub-hypergraph in which every vertex has at least k neighbors
that it co-occurs with in at least g hyperedges.

Unlike naive/one-level/jump/diagonal, this runs the peeler once for the
requested (k,g) pair and does not retain any reusable structure.`,
	RunE: runCore,
}

func init() {
	rootCmd.AddCommand(coreCmd)
	coreCmd.Flags().IntVar(&coreK, "k", 1, "Minimum neighbor count")
	coreCmd.Flags().IntVar(&coreG, "g", 1, "Minimum number of hyperedges shared with each counted neighbor")
}

func runCore(cmd *cobra.Command, args []string) error {
	if err := requireHGFile(); err != nil {
		return err
	}
	log := GetLogger()

	h, err := loadHypergraph()
	if err != nil {
		return fmt.Errorf("failed to load hypergraph: %w", err)
	}
	if h.NumVertices() == 0 {
		return fmt.Errorf("hypergraph %q is empty", hgFile)
	}

	log.Info("Loaded hypergraph: %d vertices, %d edges", h.NumVertices(), h.NumEdges())

	start := time.Now()
	core := kgcore.FindKGCore(h, coreK, coreG)
	elapsed := time.Since(start)

	log.Info("(%d,%d)-core: %d vertices, computed in %s", coreK, coreG, core.Len(), elapsed)

	if core.Len() > 0 {
		shape := statistics.NewCoreStatsCalculator().Calculate(h, core)
		log.Info("(%d,%d)-core shape: %d edges, mean edge size %.2f, density %.3f",
			coreK, coreG, shape.EdgeCount, shape.MeanEdgeSize, shape.Density)
	}

	fmt.Println(sortedVertexLine(core))

	return nil
}
