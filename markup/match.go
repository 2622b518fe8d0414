package markup

import "strings"

// DefaultSeparator separates the members of a multi-value attribute.
const DefaultSeparator = ","

// SplitList splits s on sep and trims every token. An empty input yields
// no tokens; blank tokens between separators are kept as "".
func SplitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// FullMatch reports whether name is one of the tokens of list. An absent
// list never matches. Membership is exact: "debug1" is not "debug".
func FullMatch(list string, present bool, name, sep string) bool {
	return present && HasToken(SplitList(list, sep), name)
}

// HasToken reports exact membership of name in already split tokens.
func HasToken(tokens []string, name string) bool {
	for _, token := range tokens {
		if token == name {
			return true
		}
	}
	return false
}
