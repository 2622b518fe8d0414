package xmlgen

import (
	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/kotlin"
	"github.com/teranos/xmlprops/markup"
)

// fileFragment is what one top-level element contributes to a file.
type fileFragment struct {
	imports    []kotlin.Import
	properties []kotlin.Property
	classes    []kotlin.Class
}

// classFragment is what one class-scope element contributes to a class.
type classFragment struct {
	modifiers  []kotlin.Modifier
	properties []kotlin.Property
}

// processFileNode handles one top-level element. fun and constructor are
// accepted but produce nothing; match is consumed by the generator; any
// other unrecognized tag is ignored.
func processFileNode(node *markup.Node) (fileFragment, error) {
	switch KindOf(node.Tag) {
	case KindImport:
		imports, err := processImport(node)
		return fileFragment{imports: imports}, err
	case KindVal, KindVar:
		p, err := ResolveField(node)
		if err != nil {
			return fileFragment{}, err
		}
		return fileFragment{properties: []kotlin.Property{p}}, nil
	case KindClass:
		c, err := processClass(node, kotlin.KindClass)
		if err != nil {
			return fileFragment{}, err
		}
		return fileFragment{classes: []kotlin.Class{c}}, nil
	case KindObjectClass:
		c, err := processClass(node, kotlin.KindObject)
		if err != nil {
			return fileFragment{}, err
		}
		return fileFragment{classes: []kotlin.Class{c}}, nil
	case KindFun, KindConstructor, KindMatch, KindModifiers, KindUnknown:
		return fileFragment{}, nil
	}
	return fileFragment{}, nil
}

// processImport handles both import forms:
//
//	<import name="Log" package="android.util"/>
//	<import package="android.util"><import name="Log"/><import name="Pair"/></import>
//
// An empty name counts as absent. Children without a name are skipped.
func processImport(node *markup.Node) ([]kotlin.Import, error) {
	pkg := node.AttrValue(attrPackage)
	if pkg == "" {
		return nil, errors.Wrap(errors.ErrMissingName, "<import> without package")
	}

	if name := node.AttrValue(attrName); name != "" {
		return []kotlin.Import{{Package: pkg, Name: name}}, nil
	}

	var imports []kotlin.Import
	for _, child := range node.Elements() {
		if name := child.AttrValue(attrName); name != "" {
			imports = append(imports, kotlin.Import{Package: pkg, Name: name})
		}
	}
	return imports, nil
}

// processClass builds a class or object from its element and children.
// Visibility defaults to public unless a modifiers child names one.
func processClass(node *markup.Node, kind kotlin.ClassKind) (kotlin.Class, error) {
	name := node.AttrValue(attrName)
	if name == "" {
		return kotlin.Class{}, errors.Wrapf(errors.ErrMissingName, "<%s> declaration", node.Tag)
	}

	class := kotlin.Class{Kind: kind, Name: name}
	for _, child := range node.Elements() {
		frag, err := processClassNode(child)
		if err != nil {
			return kotlin.Class{}, errors.Wrapf(err, "%s %q", node.Tag, name)
		}
		class.Modifiers = append(class.Modifiers, frag.modifiers...)
		class.Properties = append(class.Properties, frag.properties...)
	}
	if !kotlin.HasVisibility(class.Modifiers) {
		class.Modifiers = append([]kotlin.Modifier{kotlin.Public}, class.Modifiers...)
	}
	return class, nil
}

// processClassNode handles one element inside a class body.
func processClassNode(node *markup.Node) (classFragment, error) {
	switch KindOf(node.Tag) {
	case KindModifiers:
		mods, err := processModifiers(node)
		return classFragment{modifiers: mods}, err
	case KindVal, KindVar:
		p, err := ResolveField(node)
		if err != nil {
			return classFragment{}, err
		}
		return classFragment{properties: []kotlin.Property{p}}, nil
	default:
		return classFragment{}, nil
	}
}

// processModifiers reads modifier tags such as <open/> or <internal/>.
func processModifiers(node *markup.Node) ([]kotlin.Modifier, error) {
	mods := make([]kotlin.Modifier, 0, len(node.Elements()))
	for _, child := range node.Elements() {
		m, err := kotlin.ParseDeclarationModifier(child.Tag)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}
