package schema

// Marker names recognized by the classifier. Any other marker is carried
// through untouched and ignored for classification purposes.
const (
	MarkerRelation   = "Relation"
	MarkerForeignKey = "ForeignKey"
)

// DeclKind distinguishes record declarations from other declaration shapes.
// Only KindRecord produces generated members; everything else is skipped.
type DeclKind string

const (
	KindRecord DeclKind = "record"
	KindEnum   DeclKind = "enum"
	KindAlias  DeclKind = "alias"
)

// FieldDecl is one declared field as handed to the derivation core.
// DeclaredType is the type exactly as written: `?` marks optionality and
// `[...]` marks a collection (e.g. "Int?", "[Chapter]", "Author?").
type FieldDecl struct {
	Name         string
	DeclaredType string
	Static       bool
	Markers      []string
}

// HasMarker reports whether the field carries the named marker.
func (f FieldDecl) HasMarker(name string) bool {
	for _, m := range f.Markers {
		if m == name {
			return true
		}
	}
	return false
}

// RecordDecl is one declared record type: a flat, ordered field list.
type RecordDecl struct {
	Name   string
	Kind   DeclKind
	Fields []FieldDecl
}

// IsRecord reports whether the declaration has record shape. An empty kind
// defaults to record so hand-written schemas stay terse.
func (d RecordDecl) IsRecord() bool {
	return d.Kind == KindRecord || d.Kind == ""
}

// Schema is a set of record declarations destined for one output package.
type Schema struct {
	Package string
	Records []RecordDecl
}
