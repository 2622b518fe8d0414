package xmlgen

// Kind is the closed set of element tags the processors understand.
type Kind int

const (
	KindUnknown Kind = iota
	KindMatch
	KindImport
	KindVal
	KindVar
	KindFun
	KindConstructor
	KindClass
	KindObjectClass
	KindModifiers
)

var kindsByTag = map[string]Kind{
	"match":        KindMatch,
	"import":       KindImport,
	"val":          KindVal,
	"var":          KindVar,
	"fun":          KindFun,
	"constructor":  KindConstructor,
	"class":        KindClass,
	"object-class": KindObjectClass,
	"modifiers":    KindModifiers,
}

// KindOf classifies an element tag. Unrecognized tags are KindUnknown.
func KindOf(tag string) Kind {
	return kindsByTag[tag]
}

func (k Kind) String() string {
	for tag, kind := range kindsByTag {
		if kind == k {
			return tag
		}
	}
	return "unknown"
}
