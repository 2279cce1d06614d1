package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
	"github.com/an-ttt/MySpyder-sub002/internal/settings"
)

func init() {
	profileCmd.AddCommand(profileEditCmd)
}

var profileEditCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit a profile in an interactive form",
	Long:  "Open a form prefilled with the profile's options. A name that does not exist yet creates a new profile.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		name := config.DefaultProfile
		if len(args) == 1 {
			name = args[0]
		}
		edited, err := settings.EditProfile(name, ps[name])
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		ps[name] = edited
		if err := config.SaveProfiles(ps); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ saved profile %s\n\n", name)
		return nil
	},
}
