package kotlin

import (
	"path/filepath"
	"strings"

	"github.com/teranos/xmlprops/errors"
)

// Property is a val or var declaration.
type Property struct {
	Name        string
	Type        Type
	Initializer string // Kotlin expression, emitted verbatim; "" for none
	Mutable     bool
	Modifiers   []Modifier
}

// ClassKind distinguishes class declarations from object declarations.
type ClassKind int

const (
	KindClass ClassKind = iota
	KindObject
)

func (k ClassKind) keyword() string {
	if k == KindObject {
		return "object"
	}
	return "class"
}

// Class is a class or object declaration with its member properties.
type Class struct {
	Kind       ClassKind
	Name       string
	Modifiers  []Modifier
	Properties []Property
}

// Import is an explicit import directive.
type Import struct {
	Package string
	Name    string
}

func (i Import) qualified() string {
	return i.Package + "." + i.Name
}

// File is the draft of one generated source file.
type File struct {
	Package    string
	Name       string
	Imports    []Import
	Properties []Property
	Classes    []Class
}

// CheckPath verifies that Name and Package only produce path segments
// below an output root.
func (f *File) CheckPath() error {
	if !IsIdentifier(f.Name) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidName, "file name %q", f.Name),
			"the file name must be a Kotlin identifier such as Consts",
		)
	}
	if !IsPackageName(f.Package) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidName, "package %q", f.Package),
			"the package must be dot-separated identifiers such as com.example.app",
		)
	}
	return nil
}

// RelPath returns the file's path relative to an output root: the package
// segments as directories followed by Name.kt.
func (f *File) RelPath() string {
	parts := []string{}
	if f.Package != "" {
		parts = append(parts, strings.Split(f.Package, ".")...)
	}
	parts = append(parts, f.Name+".kt")
	return filepath.Join(parts...)
}

// Path returns the absolute output location under outDir.
func (f *File) Path(outDir string) string {
	return filepath.Join(outDir, f.RelPath())
}

// types returns every type referenced by the file's declarations, nested
// generic arguments included.
func (f *File) types() []Type {
	var out []Type
	collect := func(props []Property) {
		for _, p := range props {
			p.Type.walk(func(t Type) { out = append(out, t) })
		}
	}
	collect(f.Properties)
	for _, c := range f.Classes {
		collect(c.Properties)
	}
	return out
}
