// Command kgcore builds and queries an index over the (k,g)-core
// decomposition of a hypergraph.
package main

import (
	"github.com/kgcore/kgcore/cmd/kgcore/cmd"
)

func main() {
	cmd.Execute()
}
