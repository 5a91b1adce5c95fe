package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/habits/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built lazily so
// persistent flags can override the config file.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	appOpts := app.Options{Verbose: opts.Verbose}

	root := &cobra.Command{
		Use:   "habits",
		Short: "Track daily habits and their consistency",
		Long: `habits is an interactive tracker: create habits, record each day's completion,
and review strength (share of completed days), streak and feedback.
Habits are saved to a plain text file on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd, appOpts)
			if err != nil {
				return err
			}
			defer func() { _ = container.Logger.Sync() }()
			menu := NewMenu(container.Session, cmd.InOrStdin(), cmd.OutOrStdout(), container.Logger)
			return menu.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&appOpts.ConfigPath, "config", "", "Config file (default ~/.habits/config.yaml, or $HABITS_CONFIG)")
	flags.StringVarP(&appOpts.DataFile, "file", "f", "", "Habit data file (overrides storage path from config)")
	flags.StringVar(&appOpts.Backend, "backend", "", "Storage backend: text or sqlite")
	flags.BoolVarP(&appOpts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging")

	root.AddCommand(newListCommand(&appOpts))
	root.AddCommand(newConfigCommand(&appOpts))
	root.AddCommand(newVersionCommand())
	return root, nil
}

func buildContainer(cmd *cobra.Command, opts app.Options) (*app.Container, error) {
	container, err := app.BuildContainer(cmd.Context(), opts)
	if err != nil {
		return nil, err
	}
	for _, w := range container.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
	}
	return container, nil
}
