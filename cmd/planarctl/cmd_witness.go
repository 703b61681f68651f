// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvplanar/kuratowski"
)

func newWitnessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "witness FILE",
		Short: "Print a Kuratowski subgraph of a non-planar document",
		Long: `Print a minimal subset of the document's edges that is still non-planar,
one "u v" pair per line, followed by its type (K5 or K3,3).

Planar documents print "planar".`,
		Args: cobra.ExactArgs(1),
		RunE: runWitness,
	}
}

func runWitness(cmd *cobra.Command, args []string) error {
	d, err := load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	w, found := kuratowski.Witness(d.N, d.CoreEdges())
	if !found {
		fmt.Fprintln(out, "planar")
		return nil
	}
	kind := kuratowski.Classify(w)
	logger.Debug("witness", zap.Int("edges", len(w)), zap.Stringer("kind", kind))
	for _, e := range w {
		fmt.Fprintf(out, "%d %d\n", e.U, e.V)
	}
	fmt.Fprintf(out, "# %s subdivision, %d edges\n", kind, len(w))

	return nil
}
