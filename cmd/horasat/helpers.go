// Shared helpers for the horasat subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/horasat/internal/sqlite"
	"github.com/mesh-intelligence/horasat/pkg/types"
)

// birthDateLayout is the accepted date format for the --date flag.
const birthDateLayout = "2006-01-02"

// weekdayAliases maps English weekday names to the traditional Thai
// labels, so --weekday accepts either form.
var weekdayAliases = map[string]string{
	"sunday":    types.WeekdaySunday,
	"monday":    types.WeekdayMonday,
	"tuesday":   types.WeekdayTuesday,
	"wednesday": types.WeekdayWednesday,
	"thursday":  types.WeekdayThursday,
	"friday":    types.WeekdayFriday,
	"saturday":  types.WeekdaySaturday,
}

// parseBirthInput builds a BirthInput from the --date and --weekday flag
// values.
func parseBirthInput(dateStr, weekdayStr string) (types.BirthInput, error) {
	if dateStr == "" {
		return types.BirthInput{}, fmt.Errorf("--date is required (format %s)", birthDateLayout)
	}
	date, err := time.Parse(birthDateLayout, dateStr)
	if err != nil {
		return types.BirthInput{}, fmt.Errorf("invalid date %q: expected format %s", dateStr, birthDateLayout)
	}

	label := weekdayStr
	if label != "" {
		if thai, ok := weekdayAliases[strings.ToLower(label)]; ok {
			label = thai
		}
	}
	return types.NewBirthInput(date, label)
}

// attachStore loads the configuration and attaches the reading store.
// The caller must Detach the returned store.
func attachStore() (*sqlite.Store, types.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, types.Config{}, err
	}
	store := sqlite.NewStore(logger)
	if err := store.Attach(cfg); err != nil {
		return nil, types.Config{}, err
	}
	return store, cfg, nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
