// Package derive runs the single linear derivation pipeline:
// record declaration -> classifier -> key resolver -> emitter.
package derive

import (
	"github.com/seitarof/gen-record/internal/classifier"
	"github.com/seitarof/gen-record/internal/emitter"
	"github.com/seitarof/gen-record/internal/resolver"
	"github.com/seitarof/gen-record/internal/schema"
)

// Result is the output of one derivation: the keyed classification of each
// eligible field, plus the four member fragments emitted from it. Results
// are ephemeral; nothing outlives the call that produced them.
type Result struct {
	Fields    []classifier.Classification
	Artifacts emitter.Artifacts
}

// Derive synthesizes the serialization members for one declaration. A
// declaration that is not record-shaped returns a zero Result and false;
// that is a silent no-op, and whether silence is an error is the caller's
// call. Derive is a pure function: identical input yields byte-identical
// artifacts, and concurrent calls share no state.
func Derive(decl schema.RecordDecl) (Result, bool) {
	if !decl.IsRecord() {
		return Result{}, false
	}

	cs := classifier.Classify(decl.Fields)
	for i := range cs {
		cs[i].WireKey = resolver.ResolveKey(cs[i])
	}
	return Result{Fields: cs, Artifacts: emitter.Emit(decl.Name, cs)}, true
}
