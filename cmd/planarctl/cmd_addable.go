// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvplanar/addability"
)

func newAddableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addable FILE",
		Short: "List candidates that keep the selection planar",
		Long: `Build the addability index from the document's selection, apply its
toggles in order, then print every candidate whose addition alone keeps the
selection planar, as "id: u v".

With --greedy the addable candidates are selected one by one in id order
until the selection is maximal, and the chosen ids are printed instead.

Examples:
  planarctl addable catalog.yaml
  planarctl addable --greedy --ids catalog.edges`,
		Args: cobra.ExactArgs(1),
		RunE: runAddable,
	}
	cmd.Flags().BoolVar(&flagGreedy, "greedy", false, "Fill the selection greedily and print the added ids")
	cmd.Flags().BoolVar(&flagIDs, "ids", false, "Print ids only")

	return cmd
}

func runAddable(cmd *cobra.Command, args []string) error {
	d, err := load(args[0])
	if err != nil {
		return err
	}
	ix := addability.New(d.N, d.CoreEdges(), d.Mask(), addability.WithLogger(logger))
	for _, tg := range d.Toggles {
		ix.Toggle(tg.ID, tg.Present)
	}
	if !ix.Planar() {
		logger.Warn("selection is not planar, no candidate is addable", zap.String("path", args[0]))
	}

	var ids []int
	if flagGreedy {
		ids = ix.FillGreedy()
	} else {
		for id, ok := range ix.Query() {
			if ok {
				ids = append(ids, id)
			}
		}
	}

	out := cmd.OutOrStdout()
	for _, id := range ids {
		if flagIDs {
			fmt.Fprintln(out, id)
			continue
		}
		e := ix.Edge(id)
		fmt.Fprintf(out, "%d: %d %d\n", id, e.U, e.V)
	}
	st := ix.Stats()
	logger.Debug("addable done",
		zap.Int("listed", len(ids)),
		zap.Int("selected", st.Selected),
		zap.Int("blocks", st.Blocks),
		zap.Int("rigid", st.R))

	return nil
}
