package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
)

func init() {
	addWrapFlags(profileAddCmd)
	profileAddCmd.Flags().BoolP("force", "f", false, "replace an existing profile")
	profileCmd.AddCommand(profileAddCmd)
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> [flags]",
	Short: "Save the given wrap flags as a named profile",
	Long:  "Create a profile from the explicitly set wrap flags, starting from --profile (default: the default profile's overrides).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("empty profile name")
		}
		ps, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, ok := ps[name]; ok && !force {
			return fmt.Errorf("profile %q already exists (use --force to replace it)", name)
		}
		from, _ := cmd.Flags().GetString("profile")
		base, err := ps.Lookup(from)
		if err != nil {
			return err
		}
		ps[name] = base.Merge(flagProfile(cmd))
		if err := config.SaveProfiles(ps); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ saved profile %s\n", name)
		return nil
	},
}
