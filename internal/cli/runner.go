package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/seitarof/gen-record/internal/derive"
	"github.com/seitarof/gen-record/internal/generator"
	"github.com/seitarof/gen-record/internal/schema"
	"github.com/seitarof/gen-record/internal/source"
)

// Loader produces record declarations from one of the front-ends.
type Loader interface {
	Load(cfg *Config) (*schema.Schema, error)
}

// Runner orchestrates loader/derivation/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	loader Loader
	gen    generator.Generator
}

type schemaLoader struct{}

type sourceLoader struct {
	parser source.Parser
}

// NewRunner creates a default runner implementation.
func NewRunner(l Loader, g generator.Generator) Runner {
	return &runnerImpl{loader: l, gen: g}
}

// NewSchemaLoader loads declarations from a YAML schema file.
func NewSchemaLoader() Loader {
	return &schemaLoader{}
}

// NewSourceLoader loads declarations from Go struct definitions.
func NewSourceLoader(p source.Parser) Loader {
	return &sourceLoader{parser: p}
}

func (l *schemaLoader) Load(cfg *Config) (*schema.Schema, error) {
	return schema.Load(cfg.SchemaPath)
}

func (l *sourceLoader) Load(cfg *Config) (*schema.Schema, error) {
	return l.parser.Parse(cfg.SrcPath, cfg.SrcType)
}

// Run executes a single generation cycle. Derivations are independent, so
// records fan out across a bounded worker group.
func (r *runnerImpl) Run(cfg *Config) error {
	s, err := r.loader.Load(cfg)
	if err != nil {
		return fmt.Errorf("load declarations: %w", err)
	}

	pkg := strings.TrimSpace(cfg.Package)
	if pkg == "" {
		pkg = s.Package
	}
	if pkg == "" {
		return fmt.Errorf("output package name is unknown: set --package or declare one in the schema")
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, rec := range s.Records {
		g.Go(func() error {
			return r.generateRecord(cfg, pkg, rec)
		})
	}
	return g.Wait()
}

func (r *runnerImpl) generateRecord(cfg *Config, pkg string, rec schema.RecordDecl) error {
	logDroppedFields(rec)

	res, ok := derive.Derive(rec)
	if !ok {
		log.Printf("gen-record: warning: declaration %q is not a record, skipped", rec.Name)
		return nil
	}

	filename := filepath.Join(cfg.OutDir, generator.FileBase(rec.Name)+"_gen.go")
	return r.gen.Generate(filename, generator.RecordFile{
		Package:   pkg,
		Name:      rec.Name,
		Fields:    res.Fields,
		Artifacts: res.Artifacts,
	})
}

// logDroppedFields reports fields the classifier will silently drop. The
// derivation core stays pure; diagnostics live at the CLI boundary.
func logDroppedFields(rec schema.RecordDecl) {
	for _, f := range rec.Fields {
		if f.Static {
			continue
		}
		if strings.TrimSpace(f.DeclaredType) == "" {
			log.Printf("gen-record: warning: field %q in %q has no resolvable type, skipped", f.Name, rec.Name)
		}
	}
}
