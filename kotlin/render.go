package kotlin

import (
	"sort"
	"strings"
	"unicode"
)

// Header is the first line of every generated file.
const Header = "// Code generated by xmlprops. DO NOT EDIT."

const indent = "  "

// keywords are Kotlin hard keywords; identifiers matching them are
// back-quoted.
var keywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}

// Ident returns name as a valid Kotlin identifier, back-quoting keywords
// and names that are not plain identifiers.
func Ident(name string) string {
	if IsIdentifier(name) && !keywords[name] {
		return name
	}
	return "`" + name + "`"
}

// IsIdentifier reports whether s is a plain Kotlin identifier: a letter or
// underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// IsPackageName reports whether pkg is empty or dot-separated identifiers.
func IsPackageName(pkg string) bool {
	if pkg == "" {
		return true
	}
	for _, segment := range strings.Split(pkg, ".") {
		if !IsIdentifier(segment) {
			return false
		}
	}
	return true
}

// QuoteString renders s as a Kotlin string literal.
func QuoteString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`, "$", `\$`)
	return `"` + r.Replace(s) + `"`
}

// Render produces the file's source text. Output depends only on the
// draft's contents: imports are deduplicated and sorted.
func (f *File) Render() string {
	names := f.resolveNames()

	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n")
	if f.Package != "" {
		sb.WriteString("package ")
		sb.WriteString(f.Package)
		sb.WriteString("\n")
	}

	if imports := f.importLines(names); len(imports) > 0 {
		sb.WriteString("\n")
		for _, imp := range imports {
			sb.WriteString("import ")
			sb.WriteString(imp)
			sb.WriteString("\n")
		}
	}

	for _, p := range f.Properties {
		sb.WriteString("\n")
		writeProperty(&sb, "", p, names)
	}

	for _, c := range f.Classes {
		sb.WriteString("\n")
		writeClass(&sb, c, names)
	}

	return sb.String()
}

// nameTable maps a qualified type name to how it is written in the file.
type nameTable map[string]string

// resolveNames decides, per referenced type, whether it is written by its
// simple name or fully qualified. When several packages share a simple name,
// one package claims it: the first explicit import of that name, otherwise
// the default-imported package, if any. Every other package's type is
// written qualified, default-imported ones included, since explicit imports
// shadow default imports.
func (f *File) resolveNames() nameTable {
	owners := map[string]map[string]bool{}
	add := func(name, pkg string) {
		if owners[name] == nil {
			owners[name] = map[string]bool{}
		}
		owners[name][pkg] = true
	}
	for _, t := range f.types() {
		add(t.Name, t.Package)
	}
	claimed := map[string]string{}
	for _, imp := range f.Imports {
		add(imp.Name, imp.Package)
		if _, ok := claimed[imp.Name]; !ok {
			claimed[imp.Name] = imp.Package
		}
	}

	table := nameTable{}
	for name, pkgs := range owners {
		claimant, explicit := claimed[name]
		for pkg := range pkgs {
			q := Type{Name: name, Package: pkg}.QualifiedName()
			switch {
			case len(pkgs) == 1:
				table[q] = name
			case explicit:
				if pkg == claimant {
					table[q] = name
				} else {
					table[q] = q
				}
			case IsDefaultImported(pkg):
				table[q] = name
			default:
				table[q] = q
			}
		}
	}
	return table
}

// importLines lists the import directives: explicit imports that keep
// their simple name, plus every type written by simple name that is not
// visible without an import. An explicit import whose name another import
// already claimed is dropped; its uses are written qualified.
func (f *File) importLines(names nameTable) []string {
	set := map[string]bool{}
	for _, imp := range f.Imports {
		if names[imp.qualified()] == imp.Name {
			set[imp.qualified()] = true
		}
	}
	for _, t := range f.types() {
		if t.Package == "" || t.Package == f.Package || IsDefaultImported(t.Package) {
			continue
		}
		q := t.QualifiedName()
		if names[q] == t.Name {
			set[q] = true
		}
	}

	lines := make([]string, 0, len(set))
	for q := range set {
		lines = append(lines, q)
	}
	sort.Strings(lines)
	return lines
}

// typeSource renders t as Kotlin source using the file's name table.
func typeSource(t Type, names nameTable) string {
	var sb strings.Builder
	if t.Variance != VarianceNone {
		sb.WriteString(t.Variance.String())
		sb.WriteString(" ")
	}
	if n, ok := names[t.QualifiedName()]; ok {
		sb.WriteString(n)
	} else {
		sb.WriteString(t.Name)
	}
	if len(t.Generics) > 0 {
		sb.WriteString("<")
		for i, g := range t.Generics {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeSource(g, names))
		}
		sb.WriteString(">")
	}
	if t.Nullable {
		sb.WriteString("?")
	}
	return sb.String()
}

func writeModifiers(sb *strings.Builder, mods []Modifier) {
	for _, m := range normalizeModifiers(mods) {
		sb.WriteString(m.String())
		sb.WriteString(" ")
	}
}

func writeProperty(sb *strings.Builder, prefix string, p Property, names nameTable) {
	sb.WriteString(prefix)
	writeModifiers(sb, p.Modifiers)
	if p.Mutable {
		sb.WriteString("var ")
	} else {
		sb.WriteString("val ")
	}
	sb.WriteString(Ident(p.Name))
	sb.WriteString(": ")
	sb.WriteString(typeSource(p.Type, names))
	if p.Initializer != "" {
		sb.WriteString(" = ")
		sb.WriteString(p.Initializer)
	}
	sb.WriteString("\n")
}

func writeClass(sb *strings.Builder, c Class, names nameTable) {
	writeModifiers(sb, c.Modifiers)
	sb.WriteString(c.Kind.keyword())
	sb.WriteString(" ")
	sb.WriteString(Ident(c.Name))

	if len(c.Properties) == 0 {
		sb.WriteString("\n")
		return
	}

	sb.WriteString(" {\n")
	for i, p := range c.Properties {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeProperty(sb, indent, p, names)
	}
	sb.WriteString("}\n")
}
