package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
)

// Toggle keys offered in the MultiSelect.
const (
	optExpandTabs   = "expand_tabs"
	optReplaceWS    = "replace_whitespace"
	optFixSentences = "fix_sentence_endings"
	optBreakLong    = "break_long_words"
	optDropWS       = "drop_whitespace"
	optBreakHyphens = "break_on_hyphens"
	optCells        = "cells"
)

// formValues holds the form state as the strings and selections huh binds to.
type formValues struct {
	Width            string
	InitialIndent    string
	SubsequentIndent string
	TabSize          string
	MaxLines         string
	Placeholder      string
	Toggles          []string
}

func valuesFrom(p config.Profile) formValues {
	o := p.Options()
	v := formValues{
		Width:            strconv.Itoa(o.Width),
		InitialIndent:    o.InitialIndent,
		SubsequentIndent: o.SubsequentIndent,
		TabSize:          strconv.Itoa(o.TabSize),
		MaxLines:         strconv.Itoa(o.MaxLines),
		Placeholder:      o.Placeholder,
	}
	on := map[string]bool{
		optExpandTabs:   o.ExpandTabs,
		optReplaceWS:    o.ReplaceWhitespace,
		optFixSentences: o.FixSentenceEndings,
		optBreakLong:    o.BreakLongWords,
		optDropWS:       o.DropWhitespace,
		optBreakHyphens: o.BreakOnHyphens,
		optCells:        p.Cells != nil && *p.Cells,
	}
	for _, k := range toggleKeys {
		if on[k] {
			v.Toggles = append(v.Toggles, k)
		}
	}
	return v
}

var toggleKeys = []string{optExpandTabs, optReplaceWS, optFixSentences, optBreakLong, optDropWS, optBreakHyphens, optCells}

// profile converts the form state back into a fully pinned profile.
func (v formValues) profile() (config.Profile, error) {
	atoi := func(field, s string, min int) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", field, s)
		}
		if n < min {
			return 0, fmt.Errorf("%s must be >= %d", field, min)
		}
		return n, nil
	}
	o := config.Profile{}.Options()
	var err error
	if o.Width, err = atoi("width", v.Width, 1); err != nil {
		return config.Profile{}, err
	}
	if o.TabSize, err = atoi("tab size", v.TabSize, 0); err != nil {
		return config.Profile{}, err
	}
	if o.MaxLines, err = atoi("max lines", v.MaxLines, 0); err != nil {
		return config.Profile{}, err
	}
	o.InitialIndent = v.InitialIndent
	o.SubsequentIndent = v.SubsequentIndent
	o.Placeholder = v.Placeholder
	on := map[string]bool{}
	for _, k := range v.Toggles {
		on[k] = true
	}
	o.ExpandTabs = on[optExpandTabs]
	o.ReplaceWhitespace = on[optReplaceWS]
	o.FixSentenceEndings = on[optFixSentences]
	o.BreakLongWords = on[optBreakLong]
	o.DropWhitespace = on[optDropWS]
	o.BreakOnHyphens = on[optBreakHyphens]
	if err := o.Validate(); err != nil {
		return config.Profile{}, err
	}
	return config.ProfileFromOptions(o, on[optCells]), nil
}

func intField(title string, val *string) *huh.Input {
	return huh.NewInput().Title(title).Value(val).Validate(func(s string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("enter a whole number")
		}
		return nil
	})
}

// EditProfile opens an interactive form prefilled from p and returns the
// edited profile. Cancelling the form returns huh.ErrUserAborted.
func EditProfile(name string, p config.Profile) (config.Profile, error) {
	v := valuesFrom(p)

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	toggles := make([]huh.Option[string], 0, len(toggleKeys))
	for _, k := range toggleKeys {
		toggles = append(toggles, huh.NewOption(strings.ReplaceAll(k, "_", " "), k))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Profile "+name).Description("Options saved to profiles.yaml"),
			intField("Width", &v.Width),
			huh.NewInput().Title("Initial indent").Value(&v.InitialIndent),
			huh.NewInput().Title("Subsequent indent").Value(&v.SubsequentIndent),
			intField("Tab size", &v.TabSize),
			intField("Max lines", &v.MaxLines),
			huh.NewInput().Title("Placeholder").Value(&v.Placeholder),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Behavior").
				Options(toggles...).
				Height(len(toggles)).
				Value(&v.Toggles),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return config.Profile{}, err
	}
	return v.profile()
}
