package plist

import "strings"

// Kind identifies the tagged-union type of a Node.
type Kind uint8

const (
	KindDict Kind = iota
	KindKey
	KindArray
	KindData
	KindDate
	KindString
	KindInteger
	KindReal
	KindBoolean

	KindUnknown
)

var kindNames = [...]string{
	KindDict:    "dict",
	KindKey:     "key",
	KindArray:   "array",
	KindData:    "data",
	KindDate:    "date",
	KindString:  "string",
	KindInteger: "integer",
	KindReal:    "real",
	KindBoolean: "boolean",
	KindUnknown: "unknown",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromString maps a case-insensitive name to its Kind, defaulting to
// KindUnknown for anything it does not recognize.
func KindFromString(s string) Kind {
	for k, name := range kindNames {
		if k == int(KindUnknown) {
			continue
		}
		if strings.EqualFold(s, name) {
			return Kind(k)
		}
	}
	return KindUnknown
}
