// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvplanar/graphio"
)

var (
	// Shared flags
	flagVerbose bool
	flagFormat  string

	// Batch
	flagJobs int

	// Addable
	flagGreedy bool
	flagIDs    bool

	logger = zap.NewNop()
)

// newRootCmd assembles the command tree with fresh flag bindings.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "planarctl",
		Short: "Planarity testing, Kuratowski witnesses and edge addability",
		Long: `planarctl reads graph documents and answers planarity questions.

Document formats:
  YAML  n, edges [[u, v], ...], selected [ids], toggles [{id, present}]
  text  "n <count>", one "u v" pair per line, "select <ids>", "toggle <id> on|off"

Examples:
  planarctl check k5.yaml grid.edges
  planarctl witness petersen.yaml
  planarctl addable --greedy catalog.edges
  planarctl batch --jobs 8 graphs/*.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if flagVerbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Development logging at debug level")
	root.PersistentFlags().StringVar(&flagFormat, "format", "",
		"Input format: yaml or text (default: from the file extension)")

	root.AddCommand(newCheckCmd(), newWitnessCmd(), newAddableCmd(), newBatchCmd())

	return root
}

// load reads a document honouring --format.
func load(path string) (*graphio.Document, error) {
	var f graphio.Format
	if flagFormat != "" {
		var err error
		if f, err = graphio.ParseFormat(flagFormat); err != nil {
			return nil, err
		}
	}
	d, err := graphio.Load(path, f)
	if err != nil {
		return nil, err
	}
	logger.Debug("document loaded",
		zap.String("path", path),
		zap.Int("n", d.N),
		zap.Int("m", len(d.Edges)))

	return d, nil
}
