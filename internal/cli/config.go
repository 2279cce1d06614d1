package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "github.com/an-ttt/MySpyder-sub002/internal/config"
	"github.com/an-ttt/MySpyder-sub002/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("wizard", false, "edit the default profile in an interactive form")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show the config location",
	Long:  "Create the wrapctl config directory, initialize profiles.yaml and watch.json, then print where they live.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		dir, err := cfg.DotDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		// 1) profiles.yaml: write defaults when missing, normalize otherwise
		profPath, err := cfg.ProfilesPath()
		if err != nil {
			return err
		}
		existed := fileExists(profPath)
		ps, err := cfg.LoadProfiles()
		if err != nil {
			return err
		}
		if wizard, _ := cmd.Flags().GetBool("wizard"); wizard {
			p, err := settings.EditProfile(cfg.DefaultProfile, ps[cfg.DefaultProfile])
			if err != nil {
				return err
			}
			ps[cfg.DefaultProfile] = p
		}
		if err := cfg.SaveProfiles(ps); err != nil {
			return err
		}
		if existed {
			fmt.Fprintf(out, "• updated profiles.yaml: %s\n", profPath)
		} else {
			fmt.Fprintf(out, "✓ created profiles.yaml: %s\n", profPath)
		}

		// 2) watch.json: empty list when missing
		l, err := watchList()
		if err != nil {
			return err
		}
		if fileExists(l.Path) {
			fmt.Fprintf(out, "• keeping watch.json: %s\n", l.Path)
		} else {
			if err := l.Save(nil); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ created watch.json: %s\n", l.Path)
		}

		fmt.Fprintf(out, "\nconfig dir: %s\n", dir)
		return nil
	},
}

func fileExists(path string) bool {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return true
	}
	return false
}
