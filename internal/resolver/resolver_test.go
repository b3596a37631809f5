package resolver

import (
	"testing"

	"github.com/seitarof/gen-record/internal/classifier"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"createdAt", "created_at"},
		{"id", "id"},
		{"authorId", "author_id"},
		{"title", "title"},
		{"already_snake", "already_snake"},
		{"line2Count", "line2_count"},
		{"aBC", "a_b_c"},
		{"", ""},
		// Leading uppercase keeps its underscore; wire data may rely on it.
		{"Book", "_book"},
	}

	for _, tt := range tests {
		if got := SnakeCase(tt.in); got != tt.want {
			t.Fatalf("SnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveKey_RelationUsesTypeName(t *testing.T) {
	c := classifier.Classification{
		Kind:     classifier.KindRelation,
		Name:     "author",
		TypeName: "Author",
	}
	if got := ResolveKey(c); got != "Author" {
		t.Fatalf("ResolveKey() = %q, want %q", got, "Author")
	}
}

func TestResolveKey_OtherKindsUseFieldName(t *testing.T) {
	kinds := []classifier.Kind{
		classifier.KindIdentity,
		classifier.KindForeignKey,
		classifier.KindPlain,
	}
	for _, k := range kinds {
		c := classifier.Classification{Kind: k, Name: "createdAt", TypeName: "Date"}
		if got := ResolveKey(c); got != "created_at" {
			t.Fatalf("ResolveKey(kind=%v) = %q, want %q", k, got, "created_at")
		}
	}
}
