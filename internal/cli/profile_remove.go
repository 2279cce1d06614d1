package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
)

func init() {
	profileCmd.AddCommand(profileRmCmd)
}

var profileRmCmd = &cobra.Command{
	Use:     "rm <name>...",
	Aliases: []string{"remove"},
	Short:   "Remove option profiles",
	Long:    "Remove profiles by name. Removing the default profile resets it to the built-in options.",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		changed := false
		for _, name := range args {
			if _, err := ps.Lookup(name); err != nil {
				fmt.Fprintf(out, "• %v\n", err)
				continue
			}
			delete(ps, name)
			changed = true
			fmt.Fprintf(out, "✓ removed %s\n", name)
		}
		if !changed {
			fmt.Fprintln(out, "no changes")
			return nil
		}
		return config.SaveProfiles(ps)
	},
}
