// The chart command prints the four base sequences for a birth date.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/horasat/internal/chart"
	"github.com/mesh-intelligence/horasat/pkg/types"
)

func newChartCmd() *cobra.Command {
	var dateStr, weekdayStr string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Derive the four base sequences from a birth date",
		Long: `Derives the day, month, year, and sum base sequences from a birth
date, together with the zodiac animal and per-position analysis. The
derivation is deterministic and needs no corpus.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBirthInput(dateStr, weekdayStr)
			if err != nil {
				return err
			}

			gen := chart.NewGenerator(chart.NewTables(), logger)
			ch, err := gen.Generate(in)
			if err != nil {
				return err
			}

			if flags.jsonMode {
				return printJSON(cmd, ch)
			}
			printChart(cmd, ch)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&weekdayStr, "weekday", "", "explicit weekday label (Thai or English; default: derived from date)")
	return cmd
}

// printChart renders the chart as aligned text.
func printChart(cmd *cobra.Command, ch types.Chart) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Date:     %s (%s)\n", ch.Info.Date, ch.Info.WeekdayLabel)
	fmt.Fprintf(out, "BE year:  %d\n", ch.Info.BuddhistYear)
	fmt.Fprintf(out, "Zodiac:   %s (start %d)\n\n", ch.Info.ZodiacAnimal, ch.Info.ZodiacStart)

	rows := []struct {
		name string
		seq  [types.PositionCount]int
	}{
		{"Day  ", ch.Bases.Base1},
		{"Month", ch.Bases.Base2},
		{"Year ", ch.Bases.Base3},
		{"Sum  ", ch.Bases.Base4},
	}
	for _, row := range rows {
		cells := make([]string, types.PositionCount)
		for i, v := range row.seq {
			cells[i] = fmt.Sprintf("%2d", v)
		}
		fmt.Fprintf(out, "%s  %s\n", row.name, strings.Join(cells, " "))
	}

	var named []string
	for i, name := range ch.SumNames {
		if name != "" {
			named = append(named, fmt.Sprintf("position %d: %s (%d)", i+1, name, ch.Bases.Base4[i]))
		}
	}
	if len(named) > 0 {
		fmt.Fprintf(out, "\nNamed sums: %s\n", strings.Join(named, ", "))
	}

	var repeated []string
	for _, a := range ch.Analysis {
		if a.Repeated {
			repeated = append(repeated, fmt.Sprintf("%d", a.Position))
		}
	}
	if len(repeated) > 0 {
		fmt.Fprintf(out, "Repeated columns: %s\n", strings.Join(repeated, ", "))
	}
}
