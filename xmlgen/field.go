package xmlgen

import (
	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/kotlin"
	"github.com/teranos/xmlprops/markup"
)

const (
	tagCode     = "code"
	tagGenerics = "generics"
)

// ResolveField resolves a val or var element into a property.
//
// An element without element children carries its initializer as text.
// Otherwise the initializer comes from a code child, and generics from a
// generics child that has element children; an empty generics child means
// no generics.
func ResolveField(node *markup.Node) (kotlin.Property, error) {
	name, ok := node.Attr(attrName)
	if !ok || name == "" {
		return kotlin.Property{}, errors.Wrapf(errors.ErrMissingName, "<%s> declaration", node.Tag)
	}

	mods, err := kotlin.ParseDeclarationModifiers(node.AttrValue(attrModifier))
	if err != nil {
		return kotlin.Property{}, errors.Wrapf(err, "property %q", name)
	}

	typeName := node.AttrValue(attrType)
	if typeName == "" {
		typeName = DefaultTypeName
	}
	pkg := node.AttrValue(attrPackage)

	var (
		typ         kotlin.Type
		initializer string
	)
	if !node.HasElements() {
		initializer, _ = node.TextValue()
		typ, err = ResolveType(typeName, pkg, nil)
	} else {
		initializer, _ = node.Find(tagCode).TextValue()
		generics := node.Find(tagGenerics)
		if !generics.HasElements() {
			generics = nil
		}
		typ, err = ResolveType(typeName, pkg, generics)
	}
	if err != nil {
		return kotlin.Property{}, errors.Wrapf(err, "property %q", name)
	}

	typ.Nullable = boolAttr(node, attrNullable)

	return kotlin.Property{
		Name:        name,
		Type:        typ,
		Initializer: initializer,
		Mutable:     KindOf(node.Tag) == KindVar,
		Modifiers:   mods,
	}, nil
}
