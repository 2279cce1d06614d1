package textwrap

import (
	"reflect"
	"testing"
)

func TestCut(t *testing.T) {
	head, tail := cut("abcdef", 4, RuneLen)
	if head != "abcd" || tail != "ef" {
		t.Fatalf("cut runes: got %q/%q", head, tail)
	}
	head, tail = cut("abc", 0, RuneLen)
	if head != "" || tail != "abc" {
		t.Fatalf("cut zero: got %q/%q", head, tail)
	}
	head, tail = cut("中文", 1, CellWidth)
	if head != "中" || tail != "文" {
		t.Fatalf("cut forced rune: got %q/%q", head, tail)
	}
	head, tail = cut("ab", 5, RuneLen)
	if head != "ab" || tail != "" {
		t.Fatalf("cut whole: got %q/%q", head, tail)
	}
}

func TestWrap_CellWidth(t *testing.T) {
	o := optsWidth(6)
	o.Measure = CellWidth
	got := mustWrap(t, "日本語のテキスト", o)
	want := []string{"日本語", "のテキ", "スト"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cells: got %q, want %q", got, want)
	}
	for _, ln := range got {
		if CellWidth(ln) > 6 {
			t.Fatalf("line %q exceeds 6 cells", ln)
		}
	}

	// the same text counted in runes fits six per line
	got = mustWrap(t, "日本語のテキスト", optsWidth(6))
	if want := []string{"日本語のテキ", "スト"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("runes: got %q, want %q", got, want)
	}
}

func TestRuneLen_NonASCII(t *testing.T) {
	if got := RuneLen("über"); got != 4 {
		t.Fatalf("RuneLen: got %d, want 4", got)
	}
	if got := CellWidth("日本"); got != 4 {
		t.Fatalf("CellWidth: got %d, want 4", got)
	}
}
