package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/seitarof/gen-record/internal/classifier"
	"github.com/seitarof/gen-record/internal/emitter"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// RecordFile is everything needed to write one generated record file.
type RecordFile struct {
	Package   string
	Name      string
	Fields    []classifier.Classification
	Artifacts emitter.Artifacts
}

// Generator writes generated record code from derivation output.
type Generator interface {
	Generate(filename string, rec RecordFile) error
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type recordTemplateData struct {
	Package   string
	Name      string
	Fields    []fieldTemplateData
	Artifacts emitter.Artifacts
}

type fieldTemplateData struct {
	GoName string
	GoType string
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(filename string, rec RecordFile) error {
	data := buildTemplateData(rec)
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "record.go.tmpl", data); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(filename, buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", rec.Name, err)
	}
	if err := g.writer.Write(filename, formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

func buildTemplateData(rec RecordFile) recordTemplateData {
	fields := make([]fieldTemplateData, 0, len(rec.Fields))
	for _, c := range rec.Fields {
		fields = append(fields, fieldTemplateData{
			GoName: emitter.GoFieldName(c.Name),
			GoType: emitter.GoType(c.DeclaredType),
		})
	}
	return recordTemplateData{
		Package:   rec.Package,
		Name:      rec.Name,
		Fields:    fields,
		Artifacts: rec.Artifacts,
	}
}

// FileBase lowers a record name into a file-friendly snake form: "Book"
// becomes "book", "OrderLine" becomes "order_line". File naming is a
// generator concern; it is not the wire-key transform and never produces a
// leading underscore, which the Go toolchain would treat as an ignored file.
func FileBase(record string) string {
	var b strings.Builder
	b.Grow(len(record) + 2)
	for i, r := range record {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
