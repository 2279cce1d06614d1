package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
	tu "github.com/an-ttt/MySpyder-sub002/internal/testutil"
	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

// resetFlags restores every flag to its default; cobra commands are
// package variables and keep parsed values between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			def := strings.Trim(f.DefValue, "[]")
			var vals []string
			if def != "" {
				vals = strings.Split(def, ",")
			}
			_ = sv.Replace(vals)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer resetFlags(rootCmd)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := run(t, stdin, args...)
	if err != nil {
		t.Fatalf("wrapctl %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

const six = "one two three four five six\n"

func TestWrap_Stdin(t *testing.T) {
	tu.WithHome(t)
	got := mustRun(t, six, "wrap", "-w", "10")
	if want := "one two\nthree four\nfive six\n"; got != want {
		t.Fatalf("wrap output = %q, want %q", got, want)
	}
	// flags from the previous run must not leak
	got = mustRun(t, six, "wrap", "-")
	if want := "one two three four five six\n"; got != want {
		t.Fatalf("default width output = %q, want %q", got, want)
	}
}

func TestWrap_FileAndMaxLines(t *testing.T) {
	tu.WithHome(t)
	p := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(p, []byte(six), 0o644); err != nil {
		t.Fatal(err)
	}
	got := mustRun(t, "", "wrap", "--width", "10", "--max-lines", "1", p)
	if got != "one [...]\n" {
		t.Fatalf("got %q", got)
	}
	if _, err := run(t, "", "wrap", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWrap_ConfigErrors(t *testing.T) {
	tu.WithHome(t)
	_, err := run(t, six, "wrap", "-w", "0")
	if !errors.Is(err, textwrap.ErrInvalidWidth) {
		t.Fatalf("err = %v, want ErrInvalidWidth", err)
	}
	_, err = run(t, six, "wrap", "-w", "4", "--max-lines", "1", "--placeholder", "......")
	if !errors.Is(err, textwrap.ErrPlaceholderTooLarge) {
		t.Fatalf("err = %v, want ErrPlaceholderTooLarge", err)
	}
}

func TestFill_Paragraphs(t *testing.T) {
	tu.WithHome(t)
	in := "aaa bbb ccc\n\nddd eee fff\n"
	if got := mustRun(t, in, "fill", "-w", "7"); got != "aaa bbb\nccc\nddd eee\nfff\n" {
		t.Fatalf("fill = %q", got)
	}
	if got := mustRun(t, in, "fill", "-w", "7", "--paragraphs"); got != "aaa bbb\nccc\n\nddd eee\nfff\n" {
		t.Fatalf("fill --paragraphs = %q", got)
	}
	if got := mustRun(t, "", "fill"); got != "" {
		t.Fatalf("fill of empty input = %q", got)
	}
}

func TestShortenAndChunks(t *testing.T) {
	tu.WithHome(t)
	if got := mustRun(t, "The  quick brown   fox", "shorten", "-w", "15"); got != "The quick [...]\n" {
		t.Fatalf("shorten = %q", got)
	}
	got := mustRun(t, "foo-bar baz", "chunks")
	if want := "\"foo-\"\n\"bar\"\n\" \"\n\"baz\"\n"; got != want {
		t.Fatalf("chunks = %q, want %q", got, want)
	}
	got = mustRun(t, "foo-bar baz", "chunks", "--no-break-on-hyphens")
	if want := "\"foo-bar\"\n\" \"\n\"baz\"\n"; got != want {
		t.Fatalf("simple chunks = %q, want %q", got, want)
	}
}

func TestDedentIndent(t *testing.T) {
	tu.WithHome(t)
	if got := mustRun(t, "    a\n      b\n", "dedent"); got != "a\n  b\n" {
		t.Fatalf("dedent = %q", got)
	}
	if got := mustRun(t, "a\n\nb\n", "indent", "--prefix", "> "); got != "> a\n\n> b\n" {
		t.Fatalf("indent = %q", got)
	}
	if got := mustRun(t, "a\n\nb\n", "indent", "--prefix", "> ", "--all"); got != "> a\n> \n> b\n" {
		t.Fatalf("indent --all = %q", got)
	}
}

func TestProfiles_FlagsOverrideProfile(t *testing.T) {
	tu.WithHome(t)
	mustRun(t, "", "profile", "add", "narrow", "-w", "10")
	if _, err := run(t, "", "profile", "add", "narrow", "-w", "12"); err == nil {
		t.Fatalf("expected error re-adding without --force")
	}
	if got := mustRun(t, six, "wrap", "-p", "narrow"); got != "one two\nthree four\nfive six\n" {
		t.Fatalf("profile wrap = %q", got)
	}
	if got := mustRun(t, six, "wrap", "-p", "narrow", "--max-lines", "1"); got != "one [...]\n" {
		t.Fatalf("profile + flag wrap = %q", got)
	}

	ls := mustRun(t, "", "profile", "ls")
	if !strings.Contains(ls, "default: width 70") || !strings.Contains(ls, "narrow: width 10") {
		t.Fatalf("profile ls = %q", ls)
	}
	show := mustRun(t, "", "profile", "show", "narrow")
	if !strings.Contains(show, "width: 10") || !strings.Contains(show, "break_on_hyphens: true") {
		t.Fatalf("profile show = %q", show)
	}

	_, err := run(t, six, "wrap", "-p", "narow")
	if !errors.Is(err, config.ErrUnknownProfile) || !strings.Contains(err.Error(), `"narrow"`) {
		t.Fatalf("err = %v, want unknown profile suggesting narrow", err)
	}

	mustRun(t, "", "profile", "rm", "narrow")
	ps, err := config.LoadProfiles()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ps["narrow"]; ok {
		t.Fatalf("narrow should be removed")
	}
}

func TestWatchList(t *testing.T) {
	tu.WithHome(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	out := mustRun(t, "", "watch", "add", a, a)
	if !strings.Contains(out, "added "+a) {
		t.Fatalf("watch add = %q", out)
	}
	if got := mustRun(t, "", "watch", "ls"); got != a+"\n" {
		t.Fatalf("watch ls = %q", got)
	}
	out = mustRun(t, "", "watch", "rm", a, filepath.Join(dir, "b.txt"))
	if !strings.Contains(out, "removed "+a) || !strings.Contains(out, "not watched") {
		t.Fatalf("watch rm = %q", out)
	}
	if got := mustRun(t, "", "watch", "ls"); got != "(empty)\n" {
		t.Fatalf("watch ls after rm = %q", got)
	}
	if _, err := run(t, "", "watch", "run"); err == nil {
		t.Fatalf("watch run with an empty list should fail")
	}
}

func TestCheck(t *testing.T) {
	tu.WithHome(t)
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.txt")
	long := filepath.Join(dir, "long.md")
	skip := filepath.Join(dir, "skip.go")
	_ = os.WriteFile(ok, []byte("one two\nthree four\nfive six\n"), 0o644)
	_ = os.WriteFile(long, []byte("one two three four five six\n"), 0o644)
	_ = os.WriteFile(skip, []byte(strings.Repeat("x", 100)+"\n"), 0o644)

	out, err := run(t, "", "check", "-w", "10", dir)
	if err == nil || !strings.Contains(err.Error(), "1 error") {
		t.Fatalf("err = %v, want one error\n%s", err, out)
	}
	if !strings.Contains(out, "OK   ") || !strings.Contains(out, "line 1 is 27 wide") {
		t.Fatalf("check output = %q", out)
	}
	if strings.Contains(out, "skip.go") {
		t.Fatalf("check should skip other extensions: %q", out)
	}

	out = mustRun(t, "", "check", "-w", "30", "--json", ok)
	var rep checkReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if rep.Errors != 0 || rep.Warnings != 1 || len(rep.Items) != 1 || rep.Items[0].Lines != 3 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestCheckText_Cells(t *testing.T) {
	o := textwrap.DefaultOptions()
	o.Width = 4
	if it := checkText("日本語\n", o); len(it.Errors) != 0 {
		t.Fatalf("3 runes fit width 4: %v", it.Errors)
	}
	o.Measure = textwrap.CellWidth
	if it := checkText("日本語\n", o); len(it.Errors) != 1 {
		t.Fatalf("6 cells exceed width 4: %v", it.Errors)
	}
}

func TestConfigSchemaVersion(t *testing.T) {
	home := tu.WithHome(t)
	out := mustRun(t, "", "config")
	if !strings.Contains(out, "created profiles.yaml") || !strings.Contains(out, "created watch.json") {
		t.Fatalf("config output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(home, ".wrapctl", "profiles.yaml")); err != nil {
		t.Fatalf("profiles.yaml not created: %v", err)
	}
	if out := mustRun(t, "", "config"); !strings.Contains(out, "keeping watch.json") {
		t.Fatalf("second config run = %q", out)
	}

	var sch map[string]any
	if err := json.Unmarshal([]byte(mustRun(t, "", "schema")), &sch); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if sch["type"] != "object" {
		t.Fatalf("schema type = %v", sch["type"])
	}
	if strings.TrimSpace(mustRun(t, "", "version")) == "" {
		t.Fatalf("empty version")
	}
}
