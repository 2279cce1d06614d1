package cli

import (
    "encoding/json"
    "fmt"
    "io/fs"
    "os"
    "path/filepath"
    "strings"

    "github.com/spf13/cobra"

    "github.com/an-ttt/MySpyder-sub002/internal/system"
    "github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

type checkItem struct {
    Path     string   `json:"path"`
    Lines    int      `json:"lines"`
    Errors   []string `json:"errors,omitempty"`
    Warnings []string `json:"warnings,omitempty"`
}

type checkReport struct {
    Root     string      `json:"root"`
    Width    int         `json:"width"`
    Items    []checkItem `json:"items"`
    Errors   int         `json:"errors"`
    Warnings int         `json:"warnings"`
}

func init() {
    addWrapFlags(checkCmd)
    checkCmd.Flags().Bool("json", false, "output JSON report")
    checkCmd.Flags().StringSlice("ext", []string{".txt", ".md"}, "file extensions checked when walking directories")
    rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
    Use:   "check [path]...",
    Short: "Report lines wider than the wrap width",
    Long:  "Walk the given files and directories (default: the enclosing Git repository) and report lines wider than the width as errors and paragraphs that would refill differently as warnings.",
    RunE: func(cmd *cobra.Command, args []string) error {
        opts, err := wrapOptions(cmd)
        if err != nil {
            return err
        }
        if err := opts.Validate(); err != nil {
            return err
        }
        exts, _ := cmd.Flags().GetStringSlice("ext")
        asJSON, _ := cmd.Flags().GetBool("json")

        cwd, _ := os.Getwd()
        root := system.ProjectRoot(cmd.Context(), cwd)
        paths := args
        if len(paths) == 0 {
            paths = []string{root}
        }

        rep := checkReport{Root: root, Width: opts.Width}
        add := func(it checkItem) {
            rep.Errors += len(it.Errors)
            rep.Warnings += len(it.Warnings)
            rep.Items = append(rep.Items, it)
        }
        for _, p := range paths {
            st, err := os.Stat(p)
            if err != nil {
                add(checkItem{Path: p, Errors: []string{err.Error()}})
                continue
            }
            if !st.IsDir() {
                add(checkFile(p, opts))
                continue
            }
            _ = filepath.WalkDir(p, func(path string, de fs.DirEntry, err error) error {
                if err != nil {
                    add(checkItem{Path: path, Errors: []string{err.Error()}})
                    return nil
                }
                if de.IsDir() {
                    if path != p && strings.HasPrefix(de.Name(), ".") {
                        return filepath.SkipDir
                    }
                    return nil
                }
                if hasExt(de.Name(), exts) {
                    add(checkFile(path, opts))
                }
                return nil
            })
        }

        out := cmd.OutOrStdout()
        if asJSON {
            enc := json.NewEncoder(out)
            enc.SetIndent("", "  ")
            if err := enc.Encode(rep); err != nil {
                return err
            }
        } else {
            for _, it := range rep.Items {
                switch {
                case len(it.Errors) > 0:
                    fmt.Fprintf(out, "ERR  %s  %s\n", relFrom(root, it.Path), strings.Join(it.Errors, "; "))
                case len(it.Warnings) > 0:
                    fmt.Fprintf(out, "WARN %s  %s\n", relFrom(root, it.Path), strings.Join(it.Warnings, "; "))
                default:
                    fmt.Fprintf(out, "OK   %s\n", relFrom(root, it.Path))
                }
            }
            fmt.Fprintf(out, "\nSummary: %d file(s), %d error(s), %d warning(s)\n", len(rep.Items), rep.Errors, rep.Warnings)
        }

        if rep.Errors > 0 {
            return fmt.Errorf("check failed: %d error(s)", rep.Errors)
        }
        return nil
    },
}

func hasExt(name string, exts []string) bool {
    ext := strings.ToLower(filepath.Ext(name))
    for _, e := range exts {
        e = strings.ToLower(strings.TrimSpace(e))
        if e != "" && !strings.HasPrefix(e, ".") {
            e = "." + e
        }
        if ext == e {
            return true
        }
    }
    return false
}

func relFrom(root, p string) string {
    if r, err := filepath.Rel(root, p); err == nil && !strings.HasPrefix(r, "..") {
        return r
    }
    return p
}

func checkFile(path string, opts textwrap.Options) checkItem {
    b, err := os.ReadFile(path)
    if err != nil {
        return checkItem{Path: path, Errors: []string{err.Error()}}
    }
    it := checkText(string(b), opts)
    it.Path = path
    return it
}

// checkText flags lines wider than opts.Width and counts paragraphs whose
// filled form differs from the text as written.
func checkText(text string, opts textwrap.Options) checkItem {
    var it checkItem
    measure := opts.Measure
    if measure == nil {
        measure = textwrap.RuneLen
    }
    text = strings.ReplaceAll(text, "\r\n", "\n")
    lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
    if text == "" {
        lines = nil
    }
    it.Lines = len(lines)
    for i, ln := range lines {
        if w := measure(ln); w > opts.Width {
            it.Errors = append(it.Errors, fmt.Sprintf("line %d is %d wide", i+1, w))
        }
    }
    refill := 0
    w := textwrap.New(opts)
    for _, p := range textwrap.Paragraphs(text) {
        filled, err := w.Fill(p)
        if err != nil {
            it.Errors = append(it.Errors, err.Error())
            return it
        }
        if filled != trimLines(p) {
            refill++
        }
    }
    if refill > 0 {
        it.Warnings = append(it.Warnings, fmt.Sprintf("%d paragraph(s) would refill", refill))
    }
    return it
}

// trimLines drops trailing whitespace from every line and the paragraph end.
func trimLines(p string) string {
    lines := strings.Split(strings.TrimRight(p, " \t\n"), "\n")
    for i, l := range lines {
        lines[i] = strings.TrimRight(l, " \t")
    }
    return strings.Join(lines, "\n")
}
