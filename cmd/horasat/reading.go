// The reading command runs the full extraction pipeline for a birth
// date: chart generation, corpus attach, three-tier matching, and
// optional question re-ranking.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/horasat/internal/chart"
	"github.com/mesh-intelligence/horasat/internal/meaning"
	"github.com/mesh-intelligence/horasat/pkg/types"
)

func newReadingCmd() *cobra.Command {
	var dateStr, weekdayStr, question string

	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Resolve corpus readings against a birth chart",
		Long: `Generates the base sequences for a birth date and resolves the
reading corpus against them: direct attribute matching first, then
category lookup, then flexible heuristics. An optional question
re-ranks results by shared tokens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBirthInput(dateStr, weekdayStr)
			if err != nil {
				return err
			}

			tables := chart.NewTables()
			gen := chart.NewGenerator(tables, logger)
			ch, err := gen.Generate(in)
			if err != nil {
				return err
			}

			store, cfg, err := attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			pipeline := meaning.NewPipeline(tables, store, cfg.MaxResults, logger)
			cache := meaning.NewResultCache(cfg.CacheSize, cfg.CacheTTL)
			result, err := cache.GetOrCompute(ch.Bases, ch.Info, func() (types.ExtractionResult, error) {
				return pipeline.Extract(ch.Bases, question)
			})
			if err != nil {
				return err
			}

			if flags.jsonMode {
				return printJSON(cmd, struct {
					Info  types.BirthInfo `json:"info"`
					Items []types.Meaning `json:"items"`
				}{Info: ch.Info, Items: result.Items})
			}
			printReadings(cmd, ch, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&weekdayStr, "weekday", "", "explicit weekday label (Thai or English; default: derived from date)")
	cmd.Flags().StringVarP(&question, "question", "q", "", "question to re-rank results by")
	return cmd
}

// printReadings renders the extraction result as text.
func printReadings(cmd *cobra.Command, ch types.Chart, result types.ExtractionResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s), %s year\n", ch.Info.Date, ch.Info.WeekdayLabel, ch.Info.ZodiacAnimal)
	if len(result.Items) == 0 {
		fmt.Fprintln(out, "No readings matched.")
		return
	}
	fmt.Fprintf(out, "%d readings:\n\n", len(result.Items))

	for i, item := range result.Items {
		fmt.Fprintf(out, "%2d. [%.2f] %s\n", i+1, item.Score, item.Heading)
		fmt.Fprintf(out, "    %s | base %d position %d value %d | %s\n",
			item.Label, item.Base, item.Position, item.Value, item.Influence)
		if item.Body != "" {
			fmt.Fprintf(out, "    %s\n", item.Body)
		}
	}
}
