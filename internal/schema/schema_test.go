package schema

import (
	"os"
	"path/filepath"
	"testing"
)

const librarySchema = `
package: library
records:
  - name: Book
    fields:
      - name: id
        type: Int?
      - name: title
        type: String
      - name: authorId
        type: Int?
        markers: [ForeignKey]
      - name: author
        type: Author?
        markers: [Relation]
      - name: shelfLimit
        type: Int
        static: true
  - name: Color
    kind: enum
`

func TestParse_Schema(t *testing.T) {
	s, err := Parse([]byte(librarySchema))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if s.Package != "library" {
		t.Fatalf("package = %q, want library", s.Package)
	}
	if len(s.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(s.Records))
	}

	book := s.Records[0]
	if book.Name != "Book" || !book.IsRecord() {
		t.Fatalf("unexpected first record: %+v", book)
	}
	if len(book.Fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(book.Fields))
	}

	authorID := book.Fields[2]
	if !authorID.HasMarker(MarkerForeignKey) {
		t.Fatalf("authorId should carry the ForeignKey marker: %+v", authorID)
	}
	if authorID.HasMarker(MarkerRelation) {
		t.Fatalf("authorId should not carry the Relation marker: %+v", authorID)
	}

	if !book.Fields[4].Static {
		t.Fatalf("shelfLimit should be static: %+v", book.Fields[4])
	}

	if s.Records[1].IsRecord() {
		t.Fatalf("enum declaration must not be record-shaped: %+v", s.Records[1])
	}
}

func TestParse_RejectsEmptySchema(t *testing.T) {
	if _, err := Parse([]byte("package: x\n")); err == nil {
		t.Fatal("expected error for schema without records")
	}
}

func TestParse_RejectsUnnamedRecord(t *testing.T) {
	if _, err := Parse([]byte("records:\n  - kind: record\n")); err == nil {
		t.Fatal("expected error for record without a name")
	}
}

func TestParse_RejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("records:\n\t- name: Book\n")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	if err := os.WriteFile(path, []byte(librarySchema), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(s.Records))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing schema file")
	}
}
