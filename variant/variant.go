// Package variant decides whether a document's match rule accepts the
// active build variant.
package variant

import (
	"github.com/teranos/xmlprops/markup"
)

// Context is the active build variant. An empty Flavor means no flavor.
type Context struct {
	BuildType string
	Flavor    string
}

// HasFlavor reports whether a flavor is present.
func (c Context) HasFlavor() bool {
	return c.Flavor != ""
}

// String renders the variant as flavor/buildType, or buildType alone.
func (c Context) String() string {
	if c.HasFlavor() {
		return c.Flavor + "/" + c.BuildType
	}
	return c.BuildType
}

// Scope is a declared set of acceptable variant identifiers. Declared is
// false when the attribute was absent; a declared scope with no names is
// authoritative and accepts nothing.
type Scope struct {
	Declared bool
	Names    []string
}

// NewScope declares a scope from a separator-delimited attribute value.
func NewScope(list string) Scope {
	return Scope{Declared: true, Names: markup.SplitList(list, markup.DefaultSeparator)}
}

// Contains reports exact membership of name. An undeclared scope contains
// nothing.
func (s Scope) Contains(name string) bool {
	return s.Declared && markup.HasToken(s.Names, name)
}

// Rule is the match rule of one document.
type Rule struct {
	BuildTypes Scope
	Flavors    Scope
	Default    bool
}

// Match rule attribute names.
const (
	AttrBuildType = "build-type"
	AttrFlavor    = "flavor"
	AttrDefault   = "default"
)

// RuleFrom extracts the rule carried by a match element. The default flag
// is set only by the exact value "true".
func RuleFrom(node *markup.Node) Rule {
	var rule Rule
	if bt, ok := node.Attr(AttrBuildType); ok {
		rule.BuildTypes = NewScope(bt)
	}
	if fl, ok := node.Attr(AttrFlavor); ok {
		rule.Flavors = NewScope(fl)
	}
	rule.Default = node.AttrValue(AttrDefault) == "true"
	return rule
}

// Matches decides whether rule accepts ctx.
//
// A declared build-type scope must contain the build type. Only when it
// does, a declared flavor scope must also contain the flavor, if the
// context has one. With neither scope declared the default flag decides.
func Matches(rule Rule, ctx Context) bool {
	if !rule.BuildTypes.Declared && !rule.Flavors.Declared {
		return rule.Default
	}

	btMatch := true
	if rule.BuildTypes.Declared {
		btMatch = rule.BuildTypes.Contains(ctx.BuildType)
		if btMatch && rule.Flavors.Declared && ctx.HasFlavor() {
			return rule.Flavors.Contains(ctx.Flavor)
		}
	}
	return btMatch
}
