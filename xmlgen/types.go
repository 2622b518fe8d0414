// Package xmlgen turns generator documents into Kotlin source files.
//
// A document's root element names the output file and package. Its match
// child decides, for the active build variant, whether the file is
// generated at all; the remaining children describe the file's imports,
// properties and classes.
package xmlgen

import (
	"strings"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/kotlin"
	"github.com/teranos/xmlprops/markup"
)

// DefaultTypeName is used when a declaration omits its type.
const DefaultTypeName = "String"

// Attribute names shared by declarations and generic parameters.
const (
	attrName     = "name"
	attrType     = "type"
	attrPackage  = "package"
	attrModifier = "modifier"
	attrNullable = "nullable"
)

// ResolveType resolves a type reference. Without a package the name must be
// a built-in. When generics is non-nil each of its element children becomes
// a generic argument, in document order.
func ResolveType(name, pkg string, generics *markup.Node) (kotlin.Type, error) {
	t, err := resolveLeaf(name, pkg)
	if err != nil {
		return kotlin.Type{}, err
	}
	if generics == nil {
		return t, nil
	}

	if !generics.HasElements() {
		return kotlin.Type{}, errors.Wrapf(errors.ErrEmptyGenerics, "type %q", name)
	}

	for _, param := range generics.Elements() {
		g, err := resolveGenericParam(param)
		if err != nil {
			return kotlin.Type{}, errors.Wrapf(err, "generic argument of %q", name)
		}
		t.Generics = append(t.Generics, g)
	}
	return t, nil
}

func resolveLeaf(name, pkg string) (kotlin.Type, error) {
	if pkg != "" {
		return kotlin.Type{Name: name, Package: pkg}, nil
	}
	builtin, ok := kotlin.BuiltinPackage(name)
	if !ok {
		return kotlin.Type{}, errors.WithHint(
			errors.Wrapf(errors.ErrUnresolvedType, "type %q", name),
			"add a package attribute for types that are not Kotlin built-ins",
		)
	}
	return kotlin.Type{Name: name, Package: builtin}, nil
}

// boolAttr reads a boolean attribute; only "true", in any case, is true.
func boolAttr(node *markup.Node, name string) bool {
	return strings.EqualFold(node.AttrValue(name), "true")
}

// resolveGenericParam resolves one generic argument. An argument with
// element children is itself parameterized and never carries a variance.
// Only the first modifier token is considered.
func resolveGenericParam(node *markup.Node) (kotlin.Type, error) {
	name := node.AttrValue(attrName)
	if name == "" {
		name = DefaultTypeName
	}
	pkg := node.AttrValue(attrPackage)
	nullable := boolAttr(node, attrNullable)

	if node.HasElements() {
		t, err := ResolveType(name, pkg, node)
		if err != nil {
			return kotlin.Type{}, err
		}
		t.Nullable = nullable
		return t, nil
	}

	t, err := resolveLeaf(name, pkg)
	if err != nil {
		return kotlin.Type{}, err
	}
	t.Nullable = nullable

	mods, err := kotlin.ParseModifiers(node.AttrValue(attrModifier))
	if err != nil {
		return kotlin.Type{}, err
	}
	if len(mods) > 0 {
		switch mods[0] {
		case kotlin.In:
			t.Variance = kotlin.VarianceIn
		case kotlin.Out:
			t.Variance = kotlin.VarianceOut
		}
	}
	return t, nil
}
