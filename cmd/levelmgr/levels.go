package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
)

func newLevelsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "levels <name>",
		Short: "List the saved levels of a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.setup(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.service.ListLevels(cmd.Context(), &progression.ListLevelsInput{Name: args[0]})
			if err != nil {
				return err
			}

			if len(out.Levels) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No snapshots saved for %s\n", args[0])
				return nil
			}
			levels := make([]string, len(out.Levels))
			for i, l := range out.Levels {
				levels[i] = strconv.Itoa(l)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], strings.Join(levels, ", "))
			return nil
		},
	}
}
