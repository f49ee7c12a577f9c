package cli

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/spf13/cobra"
)

// theme get|toggle|set: inspect or change the stored preference. A running
// server only picks the change up on restart.
func themeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Read or change the stored theme preference",
	}

	withStore := func(fn func(cmd *cobra.Command, s *theme.Store, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			storage, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()
			return fn(cmd, a.themeStore(storage), args)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, s *theme.Store, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), s.Mode())
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, s *theme.Store, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), s.Toggle())
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Set the theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: withStore(func(cmd *cobra.Command, s *theme.Store, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return err
			}
			if err := s.Set(mode); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Mode())
			return nil
		}),
	})

	return cmd
}
