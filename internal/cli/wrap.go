package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

func init() {
	for _, c := range []*cobra.Command{wrapCmd, fillCmd, shortenCmd, chunksCmd} {
		addWrapFlags(c)
		rootCmd.AddCommand(c)
	}
	fillCmd.Flags().Bool("paragraphs", false, "fill each blank-line separated paragraph on its own")
}

var wrapCmd = &cobra.Command{
	Use:   "wrap [file]",
	Short: "Print text wrapped into lines",
	Long:  "Wrap the file (or stdin) and print one output line per wrapped line.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, opts, err := inputAndOptions(cmd, args)
		if err != nil {
			return err
		}
		lines, err := textwrap.Wrap(text, opts)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
		return nil
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill [file]",
	Short: "Print text refilled to the line width",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, opts, err := inputAndOptions(cmd, args)
		if err != nil {
			return err
		}
		var s string
		if per, _ := cmd.Flags().GetBool("paragraphs"); per {
			s, err = textwrap.FillParagraphs(text, opts)
		} else {
			s, err = textwrap.Fill(text, opts)
		}
		if err != nil {
			return err
		}
		if s != "" {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var shortenCmd = &cobra.Command{
	Use:   "shorten [file]",
	Short: "Collapse text onto one line, truncating with the placeholder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, opts, err := inputAndOptions(cmd, args)
		if err != nil {
			return err
		}
		s, err := textwrap.Shorten(text, opts.Width, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

var chunksCmd = &cobra.Command{
	Use:   "chunks [file]",
	Short: "Print the chunks the wrapper packs, one quoted chunk per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, opts, err := inputAndOptions(cmd, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range textwrap.New(opts).Chunks(text) {
			fmt.Fprintln(out, strconv.Quote(c))
		}
		return nil
	},
}

func inputAndOptions(cmd *cobra.Command, args []string) (string, textwrap.Options, error) {
	opts, err := wrapOptions(cmd)
	if err != nil {
		return "", opts, err
	}
	text, err := readInput(cmd, args)
	return text, opts, err
}
