// Package source is the Go front-end: it parses existing struct
// declarations into the schema model so their serialization contract can be
// derived. Markers are read from the `record` struct tag.
package source

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"

	"github.com/seitarof/gen-record/internal/schema"
)

// Parser extracts record declarations from Go packages.
type Parser interface {
	Parse(pkgPath string, typeName string) (*schema.Schema, error)
}

type parserImpl struct{}

// New returns the default parser.
func New() Parser {
	return &parserImpl{}
}

// Parse loads the named struct type and every same-module struct type it
// references through fields, returning one record declaration per struct in
// visit order (root first).
func (p *parserImpl) Parse(pkgPath string, typeName string) (*schema.Schema, error) {
	cache := map[string]*packages.Package{}
	rootPkg, err := loadPackage(pkgPath, cache)
	if err != nil {
		return nil, err
	}

	rootModulePath := ""
	if rootPkg.Module != nil {
		rootModulePath = rootPkg.Module.Path
	}

	s := &schema.Schema{Package: rootPkg.Name}
	visited := map[string]bool{}
	if err := p.parseRec(pkgPath, typeName, visited, cache, rootModulePath, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parserImpl) parseRec(
	pkgPath string,
	typeName string,
	visited map[string]bool,
	cache map[string]*packages.Package,
	rootModulePath string,
	out *schema.Schema,
) error {
	pkg, err := loadPackage(pkgPath, cache)
	if err != nil {
		return err
	}
	if pkg.Types == nil || pkg.Types.Scope() == nil {
		return fmt.Errorf("type info unavailable for package %q", pkgPath)
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return fmt.Errorf("struct %q not found in package %q", typeName, pkgPath)
	}
	st, ok := extractStructType(obj.Type())
	if !ok {
		return fmt.Errorf("%q in package %q is not a struct type", typeName, pkgPath)
	}

	key := pkg.Types.Path() + "." + typeName
	if visited[key] {
		return nil
	}
	visited[key] = true

	decl := schema.RecordDecl{Name: typeName, Kind: schema.KindRecord}
	var refs []structRef
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() {
			// Records are flat field lists; embedding is out of scope.
			continue
		}
		tag := reflect.StructTag(st.Tag(i)).Get("record")
		field := schema.FieldDecl{
			Name:         declName(f.Name()),
			DeclaredType: declaredType(f.Type()),
			Static:       !f.Exported() || tag == "-",
			Markers:      markersFromTag(tag),
		}
		decl.Fields = append(decl.Fields, field)

		if ref, ok := namedStructRef(f.Type()); ok {
			refs = append(refs, ref)
		}
	}
	out.Records = append(out.Records, decl)

	for _, ref := range refs {
		if visited[ref.pkgPath+"."+ref.name] {
			continue
		}
		if !shouldRecurse(ref.pkgPath, pkg.Types.Path(), rootModulePath) {
			continue
		}
		if err := p.parseRec(ref.pkgPath, ref.name, visited, cache, rootModulePath, out); err != nil {
			return fmt.Errorf("referenced struct %q: %w", ref.name, err)
		}
	}
	return nil
}

func loadPackage(pkgPath string, cache map[string]*packages.Package) (*packages.Package, error) {
	if cached, ok := cache[pkgPath]; ok {
		return cached, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedModule,
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pkgPath, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has compilation errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pkgPath)
	}
	cache[pkgPath] = pkgs[0]
	return pkgs[0], nil
}

func extractStructType(t types.Type) (*types.Struct, bool) {
	switch v := t.(type) {
	case *types.Alias:
		return extractStructType(v.Rhs())
	case *types.Named:
		return extractStructType(v.Underlying())
	case *types.Struct:
		return v, true
	default:
		return nil, false
	}
}

type structRef struct {
	pkgPath string
	name    string
}

// namedStructRef resolves the named struct type a field refers to, looking
// through one level of pointer or slice.
func namedStructRef(t types.Type) (structRef, bool) {
	switch v := t.(type) {
	case *types.Alias:
		return namedStructRef(v.Rhs())
	case *types.Pointer:
		return namedStructRef(v.Elem())
	case *types.Slice:
		return namedStructRef(v.Elem())
	case *types.Named:
		obj := v.Obj()
		if obj.Pkg() == nil {
			return structRef{}, false
		}
		if isTime(v) {
			return structRef{}, false
		}
		if _, ok := v.Underlying().(*types.Struct); !ok {
			return structRef{}, false
		}
		return structRef{pkgPath: obj.Pkg().Path(), name: obj.Name()}, true
	default:
		return structRef{}, false
	}
}

func shouldRecurse(refPkgPath, currentPkgPath, rootModulePath string) bool {
	if refPkgPath == "" {
		return false
	}
	if refPkgPath == currentPkgPath {
		return true
	}
	if rootModulePath == "" {
		return false
	}
	return refPkgPath == rootModulePath || strings.HasPrefix(refPkgPath, rootModulePath+"/")
}

func markersFromTag(tag string) []string {
	var markers []string
	for _, part := range strings.Split(tag, ",") {
		switch strings.TrimSpace(part) {
		case "relation":
			markers = append(markers, schema.MarkerRelation)
		case "foreignKey", "foreignkey":
			markers = append(markers, schema.MarkerForeignKey)
		}
	}
	return markers
}

// basicNames maps Go basic type names back to declared-type spellings.
var basicNames = map[string]string{
	"int":     "Int",
	"int8":    "Int8",
	"int16":   "Int16",
	"int32":   "Int32",
	"int64":   "Int64",
	"uint":    "UInt",
	"uint8":   "UInt8",
	"uint16":  "UInt16",
	"uint32":  "UInt32",
	"uint64":  "UInt64",
	"string":  "String",
	"bool":    "Bool",
	"float64": "Double",
	"float32": "Float",
}

// declaredType renders a Go field type as a declared type string: pointers
// become `?` optionality, slices become `[...]` collections. Types outside
// the mapping render verbatim and propagate as-is.
func declaredType(t types.Type) string {
	switch v := t.(type) {
	case *types.Alias:
		return declaredType(v.Rhs())
	case *types.Pointer:
		return declaredType(v.Elem()) + "?"
	case *types.Slice:
		if basic, ok := v.Elem().(*types.Basic); ok && basic.Kind() == types.Byte {
			return "Data"
		}
		return "[" + declaredType(v.Elem()) + "]"
	case *types.Basic:
		if name, ok := basicNames[v.Name()]; ok {
			return name
		}
		return v.Name()
	case *types.Named:
		if isTime(v) {
			return "Date"
		}
		return v.Obj().Name()
	default:
		return types.TypeString(t, nil)
	}
}

func isTime(t *types.Named) bool {
	obj := t.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time"
}

// declName lowers an exported Go field name into its declared spelling.
// All-caps initialisms lower entirely, so ID maps onto the reserved
// identity name rather than the unusable "iD".
func declName(name string) string {
	if name == strings.ToUpper(name) {
		return strings.ToLower(name)
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
