package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepmatch/config"
	"github.com/katalvlaran/hepmatch/event"
	"github.com/katalvlaran/hepmatch/eventio"
	"github.com/katalvlaran/hepmatch/pipeline"
)

type matchFlags struct {
	cost            string
	discardBTagging bool
	reference       bool
	keepUnmatched   bool
	validate        bool
	maxSearch       int
	workers         int
	skipFailed      bool
	json            bool
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var f matchFlags

	cmd := &cobra.Command{
		Use:   "match <events.json>",
		Short: "Match truth and reconstructed objects of every event in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			pcfg, ropts := f.apply(cmd, cfg)

			m, err := pipeline.New(pcfg, nil, logger)
			if err != nil {
				return err
			}
			events, err := readEvents(args[0])
			if err != nil {
				return err
			}
			units := make([]any, len(events))
			for i, ev := range events {
				units[i] = ev
			}

			sum, err := m.Run(cmd.Context(), units, ropts)
			if err != nil {
				return err
			}
			if f.json {
				return eventio.Write(cmd.OutOrStdout(), matchedEvents(sum), pcfg.OutputView)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderReports(sum, shouldColorize(cmd.OutOrStdout())))
			fmt.Fprintf(cmd.OutOrStdout(), "\nprocessed %d, dropped %d, failed %d\n", sum.Processed, sum.Dropped, sum.Failed)

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.cost, "cost", "", "Cost function (deltaR, deltaPt, deltaE, attribute:<key>)")
	fl.BoolVar(&f.discardBTagging, "discard-btagging", false, "Treat b-quarks and b-jets as ordinary jets")
	fl.BoolVar(&f.reference, "reference", false, "Reference truth records instead of copying them")
	fl.BoolVar(&f.keepUnmatched, "keep-unmatched", false, "Also write unmatched candidates to the output view")
	fl.BoolVar(&f.validate, "validate", false, "Reject events whose provenance contains a cycle")
	fl.IntVar(&f.maxSearch, "max-search", 0, "Refuse buckets larger than this (0 = unlimited)")
	fl.IntVar(&f.workers, "workers", 0, "Events processed in parallel (0 = all CPUs)")
	fl.BoolVar(&f.skipFailed, "skip-failed", false, "Skip events that fail instead of aborting")
	fl.BoolVar(&f.json, "json", false, "Write the matched views as JSON instead of a table")

	return cmd
}

// apply overrides file values with the flags set on the command line.
func (f matchFlags) apply(cmd *cobra.Command, cfg *config.Config) (pipeline.Config, pipeline.RunOptions) {
	pcfg, ropts := cfg.Pipeline(), cfg.RunOptions()
	changed := cmd.Flags().Changed
	if changed("cost") {
		pcfg.CostFunction = f.cost
	}
	if changed("discard-btagging") {
		pcfg.DiscardBTagging = f.discardBTagging
		pcfg.DiscardBTaggingTruth, pcfg.DiscardBTaggingReco = nil, nil
	}
	if changed("reference") {
		pcfg.CopyOnlyFinal = !f.reference
	}
	if changed("keep-unmatched") {
		pcfg.KeepUnmatched = f.keepUnmatched
	}
	if changed("validate") {
		pcfg.ValidateProvenance = f.validate
	}
	if changed("max-search") {
		pcfg.MaxSearchSize = f.maxSearch
	}
	if changed("workers") {
		ropts.Workers = f.workers
	}
	if changed("skip-failed") {
		ropts.SkipFailed = f.skipFailed
	}

	return pcfg, ropts
}

func readEvents(path string) ([]*event.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events: %w", err)
	}
	defer file.Close()

	return eventio.Read(file)
}

func matchedEvents(sum pipeline.RunSummary) []*event.Event {
	out := make([]*event.Event, 0, sum.Processed)
	for _, o := range sum.Outcomes {
		if o != nil {
			out = append(out, o.Event)
		}
	}

	return out
}

func renderReports(sum pipeline.RunSummary, colorize bool) string {
	headers := []string{"Event", "Category", "Truth", "Reco", "Pairs", "Permutations", "Cost"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}
	var rows [][]string
	for i, o := range sum.Outcomes {
		if o == nil {
			continue
		}
		for _, r := range o.Reports {
			rows = append(rows, []string{
				strconv.Itoa(i),
				r.Category.String(),
				strconv.Itoa(r.Truth),
				strconv.Itoa(r.Reco),
				strconv.Itoa(r.Pairs),
				strconv.Itoa(r.Permutations),
				strconv.FormatFloat(r.Cost, 'g', 6, 64),
			})
		}
	}

	return renderTable(headers, rows, aligns, colorize)
}
