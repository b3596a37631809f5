package emitter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scalarTypes maps declared scalar type names to their Go spellings.
// Names absent from the table pass through verbatim, so record-type
// references ("Author") resolve to the generated struct name and malformed
// names propagate into the output unchanged.
var scalarTypes = map[string]string{
	"Int":    "int",
	"Int8":   "int8",
	"Int16":  "int16",
	"Int32":  "int32",
	"Int64":  "int64",
	"UInt":   "uint",
	"UInt8":  "uint8",
	"UInt16": "uint16",
	"UInt32": "uint32",
	"UInt64": "uint64",
	"String": "string",
	"Bool":   "bool",
	"Double": "float64",
	"Float":  "float32",
	"Date":   "time.Time",
	"Data":   "[]byte",
}

// GoType renders a declared type string in the Go target dialect:
// `?` becomes a pointer, `[...]` becomes a slice, scalar names follow the
// table above. No validation is performed; garbage in, garbage out.
func GoType(declared string) string {
	t := stripSpace(declared)
	optional := strings.Contains(t, "?")
	t = strings.ReplaceAll(t, "?", "")

	var g string
	if inner, ok := strings.CutPrefix(t, "["); ok {
		inner = strings.TrimSuffix(inner, "]")
		g = "[]" + scalar(inner)
	} else {
		g = scalar(t)
	}
	if optional {
		g = "*" + g
	}
	return g
}

func scalar(name string) string {
	if mapped, ok := scalarTypes[name]; ok {
		return mapped
	}
	return name
}

// GoFieldName exports a declared field name by upper-casing its first rune.
func GoFieldName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
