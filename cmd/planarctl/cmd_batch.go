// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvplanar/kuratowski"
	"github.com/katalvlaran/lvplanar/planarity"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Check many documents concurrently",
		Long: `Check the candidate graph of every document, --jobs at a time, and print
one line per document in argument order. Non-planar documents also report the
size and type of a Kuratowski witness. The first unreadable document aborts
the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}
	cmd.Flags().IntVarP(&flagJobs, "jobs", "j", runtime.GOMAXPROCS(0), "Documents processed at once")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	lines := make([]string, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, flagJobs))
	for i, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := load(path)
			if err != nil {
				return err
			}
			edges := d.CoreEdges()
			if planarity.IsPlanar(d.N, edges) {
				lines[i] = fmt.Sprintf("%s: planar", path)
				return nil
			}
			w, _ := kuratowski.Witness(d.N, edges)
			lines[i] = fmt.Sprintf("%s: non-planar (%s, %d witness edges)", path, kuratowski.Classify(w), len(w))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, ln := range lines {
		fmt.Fprintln(out, ln)
	}

	return nil
}
