package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/handlers/repl"
	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
)

func newLoadCmd(f *flags) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a saved character and start managing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.setup(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.service.LoadCharacter(cmd.Context(), &progression.LoadCharacterInput{
				Name:  args[0],
				Level: level,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %s at level %d\n", out.Character.Name, out.Character.Level)
			return runLoop(cmd, a, out.Character)
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "level to load (0 loads the highest saved level)")
	return cmd
}

func runLoop(cmd *cobra.Command, a *app, char *entities.Character) error {
	handler, err := repl.NewHandler(&repl.HandlerConfig{
		Service:   a.service,
		Character: char,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	return handler.Run(cmd.Context())
}
