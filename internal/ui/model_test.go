package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

func init() { zone.NewGlobal() }

func optsWidth(w int) textwrap.Options {
	o := textwrap.DefaultOptions()
	o.Width = w
	return o
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

const fox = "The quick brown fox jumps over the lazy dog"

func TestPreview_InitialWrap(t *testing.T) {
	m := newModel(fox, optsWidth(20))
	want := []string{"The quick brown fox", "jumps over the lazy", "dog"}
	if !reflect.DeepEqual(m.lines, want) {
		t.Fatalf("lines = %q, want %q", m.lines, want)
	}
	v := m.View()
	for _, l := range want {
		if !strings.Contains(v, l) {
			t.Fatalf("view missing %q:\n%s", l, v)
		}
	}
	if !strings.Contains(v, "....+....1....+....2") {
		t.Fatalf("view missing ruler:\n%s", v)
	}
}

func TestPreview_WidthKeys(t *testing.T) {
	m := newModel("supercalifragilistic word", optsWidth(11))
	m = press(t, m, "left")
	if m.opts.Width != 10 {
		t.Fatalf("width = %d, want 10", m.opts.Width)
	}
	if want := []string{"supercalif", "ragilistic", "word"}; !reflect.DeepEqual(m.lines, want) {
		t.Fatalf("lines = %q, want %q", m.lines, want)
	}
	m = press(t, m, "l")
	if want := []string{"supercalifragilistic", "word"}; !reflect.DeepEqual(m.lines, want) {
		t.Fatalf("unbroken lines = %q, want %q", m.lines, want)
	}
	m = press(t, m, "right", "right")
	if m.opts.Width != 12 {
		t.Fatalf("width = %d, want 12", m.opts.Width)
	}

	m = newModel("abc", optsWidth(1))
	m = press(t, m, "left")
	if m.opts.Width != 1 {
		t.Fatalf("width must not drop below 1, got %d", m.opts.Width)
	}
}

func TestPreview_HyphenToggle(t *testing.T) {
	m := newModel("a well-known fact", optsWidth(8))
	if want := []string{"a well-", "known", "fact"}; !reflect.DeepEqual(m.lines, want) {
		t.Fatalf("lines = %q, want %q", m.lines, want)
	}
	m = press(t, m, "h")
	if m.opts.BreakOnHyphens {
		t.Fatalf("h should turn hyphen breaking off")
	}
	if want := []string{"a well-k", "nown", "fact"}; !reflect.DeepEqual(m.lines, want) {
		t.Fatalf("lines = %q, want %q", m.lines, want)
	}
}

func TestPreview_MaxLinesCycle(t *testing.T) {
	m := newModel(fox, optsWidth(20))
	m = press(t, m, "m")
	if m.opts.MaxLines != 1 {
		t.Fatalf("max lines = %d, want 1", m.opts.MaxLines)
	}
	if want := []string{"The quick [...]"}; !reflect.DeepEqual(m.lines, want) {
		t.Fatalf("lines = %q, want %q", m.lines, want)
	}
	for range maxLineSteps[1:] {
		m = press(t, m, "m")
	}
	if m.opts.MaxLines != 0 {
		t.Fatalf("cycle should return to unlimited, got %d", m.opts.MaxLines)
	}
}

func TestPreview_ErrorShown(t *testing.T) {
	o := optsWidth(4)
	o.MaxLines = 1
	o.Placeholder = "......"
	m := newModel(fox, o)
	if !errors.Is(m.err, textwrap.ErrPlaceholderTooLarge) {
		t.Fatalf("err = %v, want ErrPlaceholderTooLarge", m.err)
	}
	if !strings.Contains(m.View(), "placeholder too large") {
		t.Fatalf("view should show the error")
	}
}

func TestPreview_Quit(t *testing.T) {
	m := newModel(fox, optsWidth(20))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if next.(model).View() != "" {
		t.Fatalf("view after quit should be empty")
	}
}

func TestRuler(t *testing.T) {
	if got := ruler(12); got != "....+....1.." {
		t.Fatalf("ruler(12) = %q", got)
	}
	if got := ruler(0); got != "" {
		t.Fatalf("ruler(0) = %q", got)
	}
}

// zoneAt renders m and waits for the zone manager to record id.
func zoneAt(t *testing.T, m model, id string) *zone.ZoneInfo {
	t.Helper()
	_ = m.View()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if z := zone.Get(id); !z.IsZero() {
			return z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %s was never registered", id)
	return nil
}

func click(m model, x, y int) model {
	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return next.(model)
}

func TestPreview_ClickChipsToggle(t *testing.T) {
	zone.NewGlobal()
	m := newModel("a well-known fact", optsWidth(8))

	z := zoneAt(t, m, zoneHyphens)
	m = click(m, z.StartX, z.StartY)
	if m.opts.BreakOnHyphens {
		t.Fatalf("clicking the hyphens chip should turn hyphen breaking off")
	}
	if want := []string{"a well-k", "nown", "fact"}; !reflect.DeepEqual(m.lines, want) {
		t.Fatalf("lines = %q, want %q", m.lines, want)
	}

	z = zoneAt(t, m, zoneMaxLines)
	m = click(m, z.EndX, z.EndY)
	if m.opts.MaxLines != 1 {
		t.Fatalf("clicking the lines chip should cycle max lines, got %d", m.opts.MaxLines)
	}
}

func TestPreview_ClickElsewhereIgnored(t *testing.T) {
	zone.NewGlobal()
	m := newModel(fox, optsWidth(20))
	zoneAt(t, m, zoneHyphens)
	before := m.opts

	// the ruler row holds no zones
	m = click(m, 0, 0)
	// a press (not a release) on a chip does nothing either
	z := zone.Get(zoneLongWords)
	next, _ := m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(model)
	if m.opts.BreakOnHyphens != before.BreakOnHyphens || m.opts.BreakLongWords != before.BreakLongWords {
		t.Fatalf("options changed without a chip click: %+v", m.opts)
	}
}
