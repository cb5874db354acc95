package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/kgindex"
	"github.com/kgcore/kgcore/internal/rpcserver"
)

var (
	interactiveRepr string
	interactiveRPC  bool
	interactiveAddr string
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build one index and answer repeated (k,g) queries",
	Long: `interactive builds a single index representation once, then
answers (k,g) queries against it either from stdin (one "k g" pair per
line) or, with --rpc, over a minimal gRPC service.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().StringVar(&interactiveRepr, "repr", "diagonal", "Index representation: naive|one-level|jump|diagonal")
	interactiveCmd.Flags().BoolVar(&interactiveRPC, "rpc", false, "Serve queries over gRPC instead of reading stdin")
	interactiveCmd.Flags().StringVar(&interactiveAddr, "addr", ":7070", "Listen address for --rpc")
}

func runInteractive(cmd *cobra.Command, args []string) error {
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

	build, err := resolveBuildFunc(interactiveRepr)
	if err != nil {
		return err
	}

	log.Info("Building %s index over %d vertices, %d edges", interactiveRepr, h.NumVertices(), h.NumEdges())
	idx := build(h)
	log.Info("Index ready: %d nodes, %d aux entries", idx.NodeCount(), idx.AuxEntryCount())

	if interactiveRPC {
		return runRPCServer(idx)
	}
	return runStdinLoop(idx)
}

func resolveBuildFunc(repr string) (buildFunc, error) {
	switch repr {
	case "naive":
		return kgindex.BuildNaive, nil
	case "one-level":
		return kgindex.BuildOneLevel, nil
	case "jump":
		return kgindex.BuildJump, nil
	case "diagonal":
		return kgindex.BuildDiagonal, nil
	default:
		return nil, fmt.Errorf("unknown representation %q (want naive|one-level|jump|diagonal)", repr)
	}
}

func runStdinLoop(idx *kgindex.Index) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		k, g, ok := parseKG(scanner.Text())
		if !ok {
			continue
		}
		set := idx.Query(k, g)
		fmt.Println(sortedVertexLine(set))
	}
	return scanner.Err()
}

func runRPCServer(idx *kgindex.Index) error {
	server := rpcserver.NewServer(interactiveAddr, idx, GetLogger())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		server.Stop()
	}()

	return server.ListenAndServe()
}
