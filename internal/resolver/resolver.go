package resolver

import (
	"strings"
	"unicode"

	"github.com/seitarof/gen-record/internal/classifier"
)

// ResolveKey derives the wire key for one classified field.
//
// Relation fields key on the bare type name rather than the field name: a
// relation carries a linked record (or collection of records) named after
// its own type in the wire format, so a field `author` of type `Author?`
// keys on "Author". Every other kind keys on the snake-cased field name.
func ResolveKey(c classifier.Classification) string {
	if c.Kind == classifier.KindRelation {
		return c.TypeName
	}
	return SnakeCase(c.Name)
}

// SnakeCase inserts an underscore before every uppercase rune and lowers
// it, left to right; lowercase runes, digits, and existing underscores pass
// through untouched. A name beginning with an uppercase rune therefore
// yields a leading underscore ("Book" -> "_book"). That output is
// reproducible wire-format behavior and is deliberately not special-cased;
// existing wire data may depend on it.
func SnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
