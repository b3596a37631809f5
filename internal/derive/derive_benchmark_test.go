package derive

import "testing"

func BenchmarkDerive_BookRecord(b *testing.B) {
	decl := bookDecl()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, ok := Derive(decl)
		if !ok || len(res.Fields) == 0 {
			b.Fatal("unexpected empty derivation")
		}
	}
}
