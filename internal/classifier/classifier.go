package classifier

import (
	"strings"
	"unicode"

	"github.com/seitarof/gen-record/internal/schema"
)

// Kind is the serialization role of one field, mutually exclusive.
type Kind int

const (
	KindPlain Kind = iota
	KindIdentity
	KindForeignKey
	KindRelation
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindForeignKey:
		return "foreignKey"
	case KindRelation:
		return "relation"
	default:
		return "plain"
	}
}

// identityFieldName is the reserved field name with fixed special-case
// handling. There is no knob to rename or disable it.
const identityFieldName = "id"

// Classification is the derived per-field record consumed by the key
// resolver and the emitter. One per eligible field, computed once.
type Classification struct {
	Kind         Kind
	Name         string
	DeclaredType string
	// WireKey is filled in by the key resolver after classification.
	WireKey string
	// IsCollection reports whether the declared type, optionality
	// stripped, begins with the collection bracket.
	IsCollection bool
	// StrippedType is the declared type with only the optionality
	// marker removed, for decode targets that must be non-optional.
	StrippedType string
	// TypeName is the bare type identifier: optionality, collection
	// brackets, and whitespace all removed.
	TypeName string
}

// Classify walks the field list once and returns one classification per
// eligible field, preserving input order. Static fields and fields without
// a resolvable type are skipped entirely; this is a documented limitation,
// not an error. Pure function of its input.
func Classify(fields []schema.FieldDecl) []Classification {
	out := make([]Classification, 0, len(fields))
	for _, f := range fields {
		if f.Static {
			continue
		}
		if strings.TrimSpace(f.DeclaredType) == "" {
			continue
		}
		out = append(out, classifyField(f))
	}
	return out
}

func classifyField(f schema.FieldDecl) Classification {
	stripped := strings.ReplaceAll(f.DeclaredType, "?", "")
	return Classification{
		Kind:         kindOf(f),
		Name:         f.Name,
		DeclaredType: f.DeclaredType,
		IsCollection: strings.HasPrefix(trimSpace(stripped), "["),
		StrippedType: stripped,
		TypeName:     typeName(f.DeclaredType),
	}
}

// kindOf applies the fixed precedence: the reserved identity name wins over
// any marker, then Relation, then ForeignKey, then Plain.
func kindOf(f schema.FieldDecl) Kind {
	switch {
	case f.Name == identityFieldName:
		return KindIdentity
	case f.HasMarker(schema.MarkerRelation):
		return KindRelation
	case f.HasMarker(schema.MarkerForeignKey):
		return KindForeignKey
	default:
		return KindPlain
	}
}

// typeName extracts the bare type identifier from a declared type by
// dropping the optionality marker, collection brackets, and whitespace.
func typeName(declared string) string {
	var b strings.Builder
	b.Grow(len(declared))
	for _, r := range declared {
		switch {
		case r == '?' || r == '[' || r == ']':
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func trimSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
