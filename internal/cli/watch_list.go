package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	watchCmd.AddCommand(watchAddCmd)
	watchCmd.AddCommand(watchRmCmd)
	watchCmd.AddCommand(watchLsCmd)
}

var watchAddCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Add files to the watch list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := watchList()
		if err != nil {
			return err
		}
		added, existed, err := l.Add(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range added {
			fmt.Fprintf(out, "✓ added %s\n", s)
		}
		for _, s := range existed {
			fmt.Fprintf(out, "• already watched %s\n", s)
		}
		return nil
	},
}

var watchRmCmd = &cobra.Command{
	Use:     "rm <file>...",
	Aliases: []string{"remove"},
	Short:   "Remove files from the watch list",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := watchList()
		if err != nil {
			return err
		}
		removed, missing, err := l.Remove(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range removed {
			fmt.Fprintf(out, "✓ removed %s\n", s)
		}
		for _, s := range missing {
			fmt.Fprintf(out, "• not watched %s\n", s)
		}
		if len(removed) == 0 && len(missing) == 0 {
			fmt.Fprintln(out, "no changes")
		}
		return nil
	},
}

var watchLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List watched files",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := watchList()
		if err != nil {
			return err
		}
		items, err := l.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "(empty)")
			return nil
		}
		for _, s := range items {
			fmt.Fprintln(out, s)
		}
		return nil
	},
}
