package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
)

func newNewCmd(f *flags) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a character and start managing it",
		Long: fmt.Sprintf(`Create a level 1 character, save its first snapshot and start the command loop.
Fails if the name already has snapshots. Classes: %s.`, strings.Join(entities.Classes(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.setup(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.service.CreateCharacter(cmd.Context(), &progression.CreateCharacterInput{
				Name:  args[0],
				Class: class,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s), saved as %s\n", out.Character.Name, out.Character.Class, out.Key)
			return runLoop(cmd, a, out.Character)
		},
	}

	cmd.Flags().StringVar(&class, "class", entities.DefaultClass, "class deciding the starting major skills")
	return cmd
}
