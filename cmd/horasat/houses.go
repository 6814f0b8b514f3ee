// The houses command lists the seeded house categories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHousesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "houses",
		Short: "List the house categories with meanings and types",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			houses, err := store.Categories()
			if err != nil {
				return err
			}

			if flags.jsonMode {
				return printJSON(cmd, houses)
			}
			for _, h := range houses {
				fmt.Fprintf(cmd.OutOrStdout(), "base %d position %d  %-10s %-10s %s\n",
					h.Base, h.Position, h.Name, h.HouseType, h.Meaning)
			}
			return nil
		},
	}
}
