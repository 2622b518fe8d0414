// Package kotlin models the Kotlin declarations the generator emits and
// renders them as deterministic source text.
package kotlin

import "strings"

// Variance is the use-site variance of a generic argument.
type Variance int

const (
	VarianceNone Variance = iota
	VarianceIn
	VarianceOut
)

// String returns the Kotlin keyword, or "" for VarianceNone.
func (v Variance) String() string {
	switch v {
	case VarianceIn:
		return "in"
	case VarianceOut:
		return "out"
	default:
		return ""
	}
}

// Type describes a possibly parameterized type reference.
type Type struct {
	Name     string
	Package  string
	Nullable bool
	Variance Variance
	Generics []Type
}

// Builtin maps the type names that may be used without a package to the
// package they live in.
var Builtin = map[string]string{
	"Any":          "kotlin",
	"String":       "kotlin",
	"Boolean":      "kotlin",
	"Int":          "kotlin",
	"Long":         "kotlin",
	"Float":        "kotlin",
	"Double":       "kotlin",
	"Char":         "kotlin",
	"Byte":         "kotlin",
	"Short":        "kotlin",
	"Unit":         "kotlin",
	"Array":        "kotlin",
	"BooleanArray": "kotlin",
	"IntArray":     "kotlin",
	"LongArray":    "kotlin",
	"FloatArray":   "kotlin",
	"DoubleArray":  "kotlin",
	"CharArray":    "kotlin",
	"ByteArray":    "kotlin",
	"ShortArray":   "kotlin",
	"Enum":         "kotlin",
	"Annotation":   "kotlin",

	"List":        "kotlin.collections",
	"Map":         "kotlin.collections",
	"Set":         "kotlin.collections",
	"MutableList": "kotlin.collections",
	"MutableMap":  "kotlin.collections",
	"MutableSet":  "kotlin.collections",
	"ArrayList":   "kotlin.collections",
	"HashSet":     "kotlin.collections",
	"HashMap":     "kotlin.collections",

	"IntRange":    "kotlin.ranges",
	"ClosedRange": "kotlin.ranges",

	"KClass":    "kotlin.reflect",
	"KFunction": "kotlin.reflect",
}

// BuiltinPackage returns the package of a built-in type name.
func BuiltinPackage(name string) (string, bool) {
	pkg, ok := Builtin[name]
	return pkg, ok
}

// defaultImports are visible in every Kotlin file without an import.
var defaultImports = map[string]bool{
	"kotlin":             true,
	"kotlin.collections": true,
	"kotlin.ranges":      true,
	"kotlin.annotation":  true,
}

// IsDefaultImported reports whether types of pkg need no import.
func IsDefaultImported(pkg string) bool {
	return defaultImports[pkg]
}

// QualifiedName returns Package.Name, or Name when the package is empty.
func (t Type) QualifiedName() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// String renders the type descriptor as Name<G1,G2>. A variance prefix and
// a nullable marker are only shown on leaf types; enclosing generic shells
// never carry them.
func (t Type) String() string {
	var sb strings.Builder
	t.writeDescriptor(&sb)
	return sb.String()
}

func (t Type) writeDescriptor(sb *strings.Builder) {
	if len(t.Generics) == 0 {
		if t.Variance != VarianceNone {
			sb.WriteString(t.Variance.String())
			sb.WriteString(" ")
		}
		sb.WriteString(t.Name)
		if t.Nullable {
			sb.WriteString("?")
		}
		return
	}

	sb.WriteString(t.Name)
	sb.WriteString("<")
	for i, g := range t.Generics {
		if i > 0 {
			sb.WriteString(",")
		}
		g.writeDescriptor(sb)
	}
	sb.WriteString(">")
}

// walk visits t and every nested generic argument, depth first.
func (t Type) walk(visit func(Type)) {
	visit(t)
	for _, g := range t.Generics {
		g.walk(visit)
	}
}
