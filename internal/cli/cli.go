package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("gen-record", pflag.ContinueOnError)
	fs.StringVar(&cfg.SchemaPath, "schema", "", "YAML schema file with record declarations")
	fs.StringVar(&cfg.SrcPath, "src-path", "", "Go package path with record structs")
	fs.StringVarP(&cfg.SrcType, "src-type", "s", "", "root record struct type")
	fs.StringVarP(&cfg.OutDir, "out-dir", "o", "", "output directory for generated files")
	fs.StringVar(&cfg.Package, "package", "", "output package name (defaults to the declaration source's package)")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	fromSchema := strings.TrimSpace(cfg.SchemaPath) != ""
	fromSource := strings.TrimSpace(cfg.SrcPath) != "" || strings.TrimSpace(cfg.SrcType) != ""
	switch {
	case fromSchema && fromSource:
		return nil, fmt.Errorf("--schema and --src-path/--src-type are mutually exclusive")
	case fromSource:
		if strings.TrimSpace(cfg.SrcPath) == "" || strings.TrimSpace(cfg.SrcType) == "" {
			return nil, fmt.Errorf("--src-path and --src-type are both required for Go source input")
		}
	case !fromSchema:
		return nil, fmt.Errorf("either --schema or --src-path/--src-type is required")
	}

	if strings.TrimSpace(cfg.OutDir) == "" {
		return nil, fmt.Errorf("--out-dir is required")
	}
	return cfg, nil
}
