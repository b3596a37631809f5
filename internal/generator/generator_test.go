package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seitarof/gen-record/internal/classifier"
	"github.com/seitarof/gen-record/internal/emitter"
)

func bookRecordFile() RecordFile {
	fields := []classifier.Classification{
		{Kind: classifier.KindIdentity, Name: "id", DeclaredType: "Int?", WireKey: "id", StrippedType: "Int", TypeName: "Int"},
		{Kind: classifier.KindPlain, Name: "title", DeclaredType: "String", WireKey: "title", StrippedType: "String", TypeName: "String"},
		{Kind: classifier.KindPlain, Name: "publishedAt", DeclaredType: "Date", WireKey: "published_at", StrippedType: "Date", TypeName: "Date"},
	}
	return RecordFile{
		Package:   "library",
		Name:      "Book",
		Fields:    fields,
		Artifacts: emitter.Emit("Book", fields),
	}
}

func TestGenerate_WritesFormattedFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "book_gen.go")

	g := New(NewGoimportsFormatter(), NewFileWriter())
	if err := g.Generate(filename, bookRecordFile()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(b)

	checks := []string{
		"// Code generated by gen-record. DO NOT EDIT.",
		"package library",
		"type Book struct {",
		"PublishedAt time.Time",
		`"time"`,
		`"encoding/json"`,
		`bookKeyPublishedAt = "published_at"`,
		"func (r *Book) UnmarshalJSON(data []byte) error",
		"func (r *Book) MarshalJSON() ([]byte, error)",
		"func NewBook(title string, publishedAt time.Time) *Book",
	}
	for _, check := range checks {
		if !strings.Contains(got, check) {
			t.Fatalf("generated file missing %q:\n%s", check, got)
		}
	}
}

func TestGenerate_FormatErrorSurfacesRecordName(t *testing.T) {
	rec := bookRecordFile()
	rec.Artifacts.Decode = "func (r *Book) UnmarshalJSON(" // unparseable on purpose

	g := New(NewGoimportsFormatter(), NewFileWriter())
	err := g.Generate(filepath.Join(t.TempDir(), "book_gen.go"), rec)
	if err == nil {
		t.Fatal("expected format error, got nil")
	}
	if !strings.Contains(err.Error(), "format Book") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Book", "book"},
		{"OrderLine", "order_line"},
		{"book", "book"},
		{"HTTPUpstream", "h_t_t_p_upstream"},
	}

	for _, tt := range tests {
		if got := FileBase(tt.in); got != tt.want {
			t.Fatalf("FileBase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
