package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/habits/internal/app"
	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/infrastructure/config"
	"github.com/doeshing/habits/internal/version"
)

// ============================================================================
// Version Command
// ============================================================================

// newVersionCommand creates the version command to display version information.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show habits version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.OutOrStdout())
		},
	}
}

// displayVersionInformation displays version information
func displayVersionInformation(out io.Writer) error {
	fmt.Fprintf(out, "habits version %s\n", version.Version)

	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}

	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}

	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	return nil
}

// ============================================================================
// Config Command
// ============================================================================

// newConfigCommand prints the effective configuration after flag overrides.
// Storage is not opened.
func newConfigCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewFileLoader(opts.ConfigPath)
			cfg, warnings, err := app.LoadConfig(cmd.Context(), loader, *opts)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
			}
			return displayConfig(cmd.OutOrStdout(), loader.Path(), cfg)
		},
	}
}

func displayConfig(out io.Writer, path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintf(out, "# %s\n", path)
	_, err = out.Write(raw)
	return err
}

// ============================================================================
// List Command
// ============================================================================

// newListCommand prints stored habits without entering the menu.
func newListCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd, *opts)
			if err != nil {
				return err
			}
			defer container.Repository.Close()
			return listHabits(cmd, container)
		},
	}
}

func listHabits(cmd *cobra.Command, container *app.Container) error {
	out := cmd.OutOrStdout()
	session := container.Session
	if err := session.Open(cmd.Context()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	if session.Empty() {
		fmt.Fprintf(out, "No habits stored in %s.\n", session.Location())
		return nil
	}
	for i, h := range session.Habits() {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, h.Name(), h.Frequency())
	}
	return nil
}
