package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
)

func init() {
	profileCmd.AddCommand(profileShowCmd)
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print the effective options of a profile as YAML",
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
		p, err := ps.Lookup(name)
		if err != nil {
			return err
		}
		cells := p.Cells != nil && *p.Cells
		b, err := yaml.Marshal(config.ProfileFromOptions(p.Options(), cells))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
		return nil
	},
}
