package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type schemaFile struct {
	Package string       `yaml:"package"`
	Records []recordNode `yaml:"records"`
}

type recordNode struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind"`
	Fields []fieldNode `yaml:"fields"`
}

type fieldNode struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Static  bool     `yaml:"static"`
	Markers []string `yaml:"markers"`
}

// Load reads a YAML schema file into the declaration model.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML schema bytes into the declaration model.
func Parse(data []byte) (*Schema, error) {
	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if len(file.Records) == 0 {
		return nil, fmt.Errorf("schema declares no records")
	}

	s := &Schema{Package: strings.TrimSpace(file.Package)}
	for _, rn := range file.Records {
		name := strings.TrimSpace(rn.Name)
		if name == "" {
			return nil, fmt.Errorf("schema record with empty name")
		}
		rec := RecordDecl{Name: name, Kind: DeclKind(strings.TrimSpace(rn.Kind))}
		for _, fn := range rn.Fields {
			rec.Fields = append(rec.Fields, FieldDecl{
				Name:         strings.TrimSpace(fn.Name),
				DeclaredType: strings.TrimSpace(fn.Type),
				Static:       fn.Static,
				Markers:      fn.Markers,
			})
		}
		s.Records = append(s.Records, rec)
	}
	return s, nil
}
