package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

// DefaultProfile is always present, even when profiles.yaml is missing.
const DefaultProfile = "default"

// Profile is a named set of wrap option overrides. Nil fields keep the
// value from textwrap.DefaultOptions.
type Profile struct {
	Width              *int    `yaml:"width,omitempty" json:"width,omitempty" jsonschema:"minimum=1"`
	InitialIndent      *string `yaml:"initial_indent,omitempty" json:"initial_indent,omitempty"`
	SubsequentIndent   *string `yaml:"subsequent_indent,omitempty" json:"subsequent_indent,omitempty"`
	ExpandTabs         *bool   `yaml:"expand_tabs,omitempty" json:"expand_tabs,omitempty"`
	ReplaceWhitespace  *bool   `yaml:"replace_whitespace,omitempty" json:"replace_whitespace,omitempty"`
	FixSentenceEndings *bool   `yaml:"fix_sentence_endings,omitempty" json:"fix_sentence_endings,omitempty"`
	BreakLongWords     *bool   `yaml:"break_long_words,omitempty" json:"break_long_words,omitempty"`
	DropWhitespace     *bool   `yaml:"drop_whitespace,omitempty" json:"drop_whitespace,omitempty"`
	BreakOnHyphens     *bool   `yaml:"break_on_hyphens,omitempty" json:"break_on_hyphens,omitempty"`
	TabSize            *int    `yaml:"tab_size,omitempty" json:"tab_size,omitempty" jsonschema:"minimum=0"`
	MaxLines           *int    `yaml:"max_lines,omitempty" json:"max_lines,omitempty" jsonschema:"minimum=0"`
	Placeholder        *string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	// Cells measures lines in terminal columns instead of characters.
	Cells *bool `yaml:"cells,omitempty" json:"cells,omitempty"`
}

// Apply overlays the profile on o.
func (p Profile) Apply(o textwrap.Options) textwrap.Options {
	setInt(&o.Width, p.Width)
	setString(&o.InitialIndent, p.InitialIndent)
	setString(&o.SubsequentIndent, p.SubsequentIndent)
	setBool(&o.ExpandTabs, p.ExpandTabs)
	setBool(&o.ReplaceWhitespace, p.ReplaceWhitespace)
	setBool(&o.FixSentenceEndings, p.FixSentenceEndings)
	setBool(&o.BreakLongWords, p.BreakLongWords)
	setBool(&o.DropWhitespace, p.DropWhitespace)
	setBool(&o.BreakOnHyphens, p.BreakOnHyphens)
	setInt(&o.TabSize, p.TabSize)
	setInt(&o.MaxLines, p.MaxLines)
	setString(&o.Placeholder, p.Placeholder)
	if p.Cells != nil {
		if *p.Cells {
			o.Measure = textwrap.CellWidth
		} else {
			o.Measure = nil
		}
	}
	return o
}

// Options returns DefaultOptions with the profile applied.
func (p Profile) Options() textwrap.Options {
	return p.Apply(textwrap.DefaultOptions())
}

// ProfileFromOptions records every field of o, so the profile pins all
// values instead of following later default changes.
func ProfileFromOptions(o textwrap.Options, cells bool) Profile {
	return Profile{
		Width:              &o.Width,
		InitialIndent:      &o.InitialIndent,
		SubsequentIndent:   &o.SubsequentIndent,
		ExpandTabs:         &o.ExpandTabs,
		ReplaceWhitespace:  &o.ReplaceWhitespace,
		FixSentenceEndings: &o.FixSentenceEndings,
		BreakLongWords:     &o.BreakLongWords,
		DropWhitespace:     &o.DropWhitespace,
		BreakOnHyphens:     &o.BreakOnHyphens,
		TabSize:            &o.TabSize,
		MaxLines:           &o.MaxLines,
		Placeholder:        &o.Placeholder,
		Cells:              &cells,
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Profiles maps profile names to their overrides.
type Profiles map[string]Profile

// Names returns the profile names in sorted order.
func (ps Profiles) Names() []string {
	out := make([]string, 0, len(ps))
	for k := range ps {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ErrUnknownProfile is returned by Lookup for names not in the set.
var ErrUnknownProfile = errors.New("unknown profile")

// Lookup returns the named profile. An empty name selects DefaultProfile.
// For unknown names the error suggests the closest fuzzy match.
func (ps Profiles) Lookup(name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultProfile
	}
	if p, ok := ps[name]; ok {
		return p, nil
	}
	if s := Suggest(name, ps.Names()); s != "" {
		return Profile{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownProfile, name, s)
	}
	return Profile{}, fmt.Errorf("%w %q", ErrUnknownProfile, name)
}

// Suggest returns the best fuzzy match for name among names, or "".
func Suggest(name string, names []string) string {
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// LoadProfiles reads profiles.yaml. A missing file yields only the
// built-in default profile.
func LoadProfiles() (Profiles, error) {
	p, err := ProfilesPath()
	if err != nil {
		return nil, err
	}
	ps := Profiles{}
	b, err := os.ReadFile(p)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(b, &ps); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if ps == nil {
			ps = Profiles{}
		}
	}
	if _, ok := ps[DefaultProfile]; !ok {
		ps[DefaultProfile] = Profile{}
	}
	return ps, nil
}

// SaveProfiles writes profiles.yaml, creating the directory if needed.
// Profiles whose options fail validation are rejected.
func SaveProfiles(ps Profiles) error {
	for _, name := range ps.Names() {
		if strings.TrimSpace(name) == "" {
			return errors.New("empty profile name")
		}
		if err := ps[name].Options().Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	p, err := ProfilesPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Merge returns p with every field set in over replacing p's value.
func (p Profile) Merge(over Profile) Profile {
	pick := func(a, b *int) *int {
		if b != nil {
			return b
		}
		return a
	}
	pickS := func(a, b *string) *string {
		if b != nil {
			return b
		}
		return a
	}
	pickB := func(a, b *bool) *bool {
		if b != nil {
			return b
		}
		return a
	}
	return Profile{
		Width:              pick(p.Width, over.Width),
		InitialIndent:      pickS(p.InitialIndent, over.InitialIndent),
		SubsequentIndent:   pickS(p.SubsequentIndent, over.SubsequentIndent),
		ExpandTabs:         pickB(p.ExpandTabs, over.ExpandTabs),
		ReplaceWhitespace:  pickB(p.ReplaceWhitespace, over.ReplaceWhitespace),
		FixSentenceEndings: pickB(p.FixSentenceEndings, over.FixSentenceEndings),
		BreakLongWords:     pickB(p.BreakLongWords, over.BreakLongWords),
		DropWhitespace:     pickB(p.DropWhitespace, over.DropWhitespace),
		BreakOnHyphens:     pickB(p.BreakOnHyphens, over.BreakOnHyphens),
		TabSize:            pick(p.TabSize, over.TabSize),
		MaxLines:           pick(p.MaxLines, over.MaxLines),
		Placeholder:        pickS(p.Placeholder, over.Placeholder),
		Cells:              pickB(p.Cells, over.Cells),
	}
}
