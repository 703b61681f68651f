// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvplanar/planarity"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report whether each document's candidate graph is planar",
		Long: `Test every candidate edge of each document together.

Examples:
  planarctl check k33.yaml
  planarctl check --format text a.txt b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		d, err := load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", path, verdict(planarity.IsPlanar(d.N, d.CoreEdges())))
	}

	return nil
}

func verdict(planar bool) string {
	if planar {
		return "planar"
	}

	return "non-planar"
}
