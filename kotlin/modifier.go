package kotlin

import (
	"sort"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/markup"
)

// Modifier is a Kotlin declaration modifier. The declaration order of the
// constants is the order modifiers are rendered in.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Internal
	Final
	Open
	Abstract
	Const
	Lateinit
	Suspend
	Inline
	Infix
	Operator
	In
	Out
)

var modifierNames = [...]string{
	Public:    "public",
	Protected: "protected",
	Private:   "private",
	Internal:  "internal",
	Final:     "final",
	Open:      "open",
	Abstract:  "abstract",
	Const:     "const",
	Lateinit:  "lateinit",
	Suspend:   "suspend",
	Inline:    "inline",
	Infix:     "infix",
	Operator:  "operator",
	In:        "in",
	Out:       "out",
}

var modifiersByName = func() map[string]Modifier {
	m := make(map[string]Modifier, len(modifierNames))
	for mod, name := range modifierNames {
		m[name] = Modifier(mod)
	}
	return m
}()

func (m Modifier) String() string {
	if int(m) < 0 || int(m) >= len(modifierNames) {
		return "unknown"
	}
	return modifierNames[m]
}

// IsVisibility reports whether m is public, protected, private or internal.
func (m Modifier) IsVisibility() bool {
	return m == Public || m == Protected || m == Private || m == Internal
}

// ParseModifier resolves one modifier token.
func ParseModifier(token string) (Modifier, error) {
	if m, ok := modifiersByName[token]; ok {
		return m, nil
	}
	return 0, errors.WithHint(
		errors.Wrapf(errors.ErrUnknownModifier, "modifier %q", token),
		"recognized modifiers: public, private, protected, internal, abstract, final, open, lateinit, const, inline, suspend, infix, operator, in, out",
	)
}

// ParseModifiers resolves a comma-separated modifier list in order. An
// empty list yields no modifiers.
func ParseModifiers(list string) ([]Modifier, error) {
	tokens := markup.SplitList(list, markup.DefaultSeparator)
	mods := make([]Modifier, 0, len(tokens))
	for _, token := range tokens {
		m, err := ParseModifier(token)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// IsVariance reports whether m is in or out, which only apply to generic
// arguments.
func (m Modifier) IsVariance() bool {
	return m == In || m == Out
}

// ParseDeclarationModifier resolves a modifier of a property or class.
// Variance tokens are rejected.
func ParseDeclarationModifier(token string) (Modifier, error) {
	m, err := ParseModifier(token)
	if err != nil {
		return 0, err
	}
	if m.IsVariance() {
		return 0, errors.WithHint(
			errors.Wrapf(errors.ErrUnknownModifier, "modifier %q on a declaration", token),
			"in and out are only valid on generic arguments",
		)
	}
	return m, nil
}

// ParseDeclarationModifiers is ParseModifiers for property and class
// declarations.
func ParseDeclarationModifiers(list string) ([]Modifier, error) {
	tokens := markup.SplitList(list, markup.DefaultSeparator)
	mods := make([]Modifier, 0, len(tokens))
	for _, token := range tokens {
		m, err := ParseDeclarationModifier(token)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// HasVisibility reports whether mods names a visibility modifier.
func HasVisibility(mods []Modifier) bool {
	for _, m := range mods {
		if m.IsVisibility() {
			return true
		}
	}
	return false
}

// normalizeModifiers returns mods deduplicated in rendering order, with an
// explicit public prepended when no visibility is given.
func normalizeModifiers(mods []Modifier) []Modifier {
	seen := make(map[Modifier]bool, len(mods)+1)
	out := make([]Modifier, 0, len(mods)+1)
	if !HasVisibility(mods) {
		seen[Public] = true
		out = append(out, Public)
	}
	for _, m := range mods {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
