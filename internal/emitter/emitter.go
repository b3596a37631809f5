package emitter

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/seitarof/gen-record/internal/classifier"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.go.tmpl"))

// Artifacts holds the four generated member fragments for one record type.
// Each fragment is a complete Go declaration without a trailing newline.
type Artifacts struct {
	KeyEnum     string
	Decode      string
	Encode      string
	Constructor string
}

type keyEntry struct {
	ConstName string
	WireKey   string
}

type keysData struct {
	Record string
	Keys   []keyEntry
}

type routineData struct {
	Record string
	Stmts  []string
}

type ctorData struct {
	Record string
	Params string
	Stmts  []string
}

// Emit assembles the four artifacts from the classified field list, in
// classification order. It is purely textual composition: no semantic
// validation is performed, and it never fails on its own. Zero
// classifications produce empty-bodied but syntactically complete
// declarations.
func Emit(record string, cs []classifier.Classification) Artifacts {
	keys := make([]keyEntry, 0, len(cs))
	decode := make([]string, 0, len(cs))
	encode := make([]string, 0, len(cs))
	params := make([]string, 0, len(cs))
	assigns := make([]string, 0, len(cs))

	for _, c := range cs {
		keyConst := keyConstName(record, c.Name)
		keys = append(keys, keyEntry{ConstName: keyConst, WireKey: c.WireKey})
		decode = append(decode, decodeStmt(record, c, keyConst))
		if stmt := encodeStmt(c, keyConst); stmt != "" {
			encode = append(encode, stmt)
		}
		if c.Kind == classifier.KindPlain {
			params = append(params, c.Name+" "+GoType(c.DeclaredType))
			assigns = append(assigns, "\tr."+GoFieldName(c.Name)+" = "+c.Name+"\n")
		}
	}

	return Artifacts{
		KeyEnum:     render("keys.go.tmpl", keysData{Record: record, Keys: keys}),
		Decode:      render("decode.go.tmpl", routineData{Record: record, Stmts: decode}),
		Encode:      render("encode.go.tmpl", routineData{Record: record, Stmts: encode}),
		Constructor: render("constructor.go.tmpl", ctorData{Record: record, Params: strings.Join(params, ", "), Stmts: assigns}),
	}
}

// decodeStmt renders the decode block for one field. Required kinds turn a
// missing key into an error; if-present kinds skip it, with collection
// relations falling back to an empty collection.
func decodeStmt(record string, c classifier.Classification, keyConst string) string {
	field := "r." + GoFieldName(c.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "\tif raw, ok := fields[%s]; ok {\n", keyConst)
	fmt.Fprintf(&b, "\t\tif err := json.Unmarshal(raw, &%s); err != nil {\n", field)
	fmt.Fprintf(&b, "\t\t\treturn fmt.Errorf(\"decode %s.%s: %%w\", err)\n", record, c.Name)
	b.WriteString("\t\t}\n")

	switch {
	case c.Kind == classifier.KindRelation && c.IsCollection:
		b.WriteString("\t} else {\n")
		fmt.Fprintf(&b, "\t\t%s = %s{}\n", field, GoType(c.StrippedType))
		b.WriteString("\t}\n")
	case c.Kind == classifier.KindPlain || c.Kind == classifier.KindForeignKey:
		b.WriteString("\t} else {\n")
		fmt.Fprintf(&b, "\t\treturn fmt.Errorf(\"decode %s: missing key %%q\", %s)\n", record, keyConst)
		b.WriteString("\t}\n")
	default:
		// Identity and non-collection relations stay unset when absent.
		b.WriteString("\t}\n")
	}
	return b.String()
}

// encodeStmt renders the encode line for one field, or "" for relations,
// which are decode-only.
func encodeStmt(c classifier.Classification, keyConst string) string {
	field := "r." + GoFieldName(c.Name)

	switch c.Kind {
	case classifier.KindRelation:
		return ""
	case classifier.KindIdentity, classifier.KindForeignKey:
		var b strings.Builder
		fmt.Fprintf(&b, "\tif %s != nil {\n", field)
		fmt.Fprintf(&b, "\t\tfields[%s] = %s\n", keyConst, field)
		b.WriteString("\t}\n")
		return b.String()
	default:
		return fmt.Sprintf("\tfields[%s] = %s\n", keyConst, field)
	}
}

func keyConstName(record, fieldName string) string {
	return lowerFirst(record) + "Key" + GoFieldName(fieldName)
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

func render(name string, data any) string {
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		// Templates are embedded and data shapes are fixed at compile
		// time; execution cannot fail on caller input.
		panic(fmt.Sprintf("emitter: template %s: %v", name, err))
	}
	return strings.TrimRight(b.String(), "\n")
}
