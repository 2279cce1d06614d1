package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

// addWrapFlags registers the wrap option flags shared by every command
// that wraps text. Defaults mirror textwrap.DefaultOptions; only flags
// set explicitly override the selected profile.
func addWrapFlags(cmd *cobra.Command) {
	d := textwrap.DefaultOptions()
	f := cmd.Flags()
	f.StringP("profile", "p", config.DefaultProfile, "option profile to start from")
	f.IntP("width", "w", d.Width, "maximum line width")
	f.String("initial-indent", "", "prefix for the first line")
	f.String("subsequent-indent", "", "prefix for every other line")
	f.Bool("no-expand-tabs", false, "keep tabs instead of expanding them")
	f.Bool("no-replace-whitespace", false, "keep \\t \\n \\v \\f \\r as they are")
	f.Bool("fix-sentence-endings", false, "put two spaces after sentence ends")
	f.Bool("no-break-long-words", false, "let words longer than the width overflow")
	f.Bool("no-drop-whitespace", false, "keep whitespace at line starts and ends")
	f.Bool("no-break-on-hyphens", false, "only break lines on whitespace")
	f.Int("tab-size", d.TabSize, "spaces per expanded tab")
	f.Int("max-lines", 0, "truncate output to this many lines (0 = unlimited)")
	f.String("placeholder", d.Placeholder, "marker appended to truncated output")
	f.Bool("cells", false, "measure terminal cells instead of characters")
}

// flagProfile captures the explicitly set wrap flags as profile overrides.
func flagProfile(cmd *cobra.Command) config.Profile {
	f := cmd.Flags()
	var p config.Profile
	intFlag := func(name string) *int {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetInt(name)
		return &v
	}
	strFlag := func(name string) *string {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetString(name)
		return &v
	}
	boolFlag := func(name string, negate bool) *bool {
		if !f.Changed(name) {
			return nil
		}
		v, _ := f.GetBool(name)
		if negate {
			v = !v
		}
		return &v
	}
	p.Width = intFlag("width")
	p.InitialIndent = strFlag("initial-indent")
	p.SubsequentIndent = strFlag("subsequent-indent")
	p.ExpandTabs = boolFlag("no-expand-tabs", true)
	p.ReplaceWhitespace = boolFlag("no-replace-whitespace", true)
	p.FixSentenceEndings = boolFlag("fix-sentence-endings", false)
	p.BreakLongWords = boolFlag("no-break-long-words", true)
	p.DropWhitespace = boolFlag("no-drop-whitespace", true)
	p.BreakOnHyphens = boolFlag("no-break-on-hyphens", true)
	p.TabSize = intFlag("tab-size")
	p.MaxLines = intFlag("max-lines")
	p.Placeholder = strFlag("placeholder")
	p.Cells = boolFlag("cells", false)
	return p
}

// wrapOptions resolves the options for cmd: the --profile profile with
// explicit flags applied on top.
func wrapOptions(cmd *cobra.Command) (textwrap.Options, error) {
	ps, err := config.LoadProfiles()
	if err != nil {
		return textwrap.Options{}, err
	}
	name, _ := cmd.Flags().GetString("profile")
	base, err := ps.Lookup(name)
	if err != nil {
		return textwrap.Options{}, err
	}
	return flagProfile(cmd).Apply(base.Options()), nil
}

// readInput returns the contents of the file named by args[0], or stdin
// when there is no argument or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}
