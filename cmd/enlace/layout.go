package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/enlace/internal/config"
	"github.com/five82/enlace/internal/prefs"
)

// newLayoutCmd reads or changes the stored menu layout without starting the TUI.
func newLayoutCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "layout [toggle|horizontal|vertical]",
		Short: "Show or change the menu layout preference",
		Long: `Without arguments, print the stored menu layout.

  toggle     - switch between horizontal and vertical
  horizontal - navigation in a header bar
  vertical   - navigation in a sidebar`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle", string(prefs.Horizontal), string(prefs.Vertical)},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := flags.resolvePrefsPath()
			if err != nil {
				return err
			}
			current := prefs.Load(path)

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), current.MenuLayout)
				return nil
			}

			next := current
			if args[0] == "toggle" {
				next.MenuLayout = current.MenuLayout.Toggle()
			} else {
				layout, err := prefs.ParseMenuLayout(args[0])
				if err != nil {
					return err
				}
				next.MenuLayout = layout
			}
			if err := prefs.Save(path, next); err != nil {
				return fmt.Errorf("save preferences: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), next.MenuLayout)
			return nil
		},
	}
}

func (f *rootFlags) resolvePrefsPath() (string, error) {
	if f.prefsPath != "" {
		return f.prefsPath, nil
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.PrefsFile, nil
}
