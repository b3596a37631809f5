package cli

// Config stores CLI options for a single generation run.
type Config struct {
	SchemaPath  string
	SrcPath     string
	SrcType     string
	OutDir      string
	Package     string
	ShowVersion bool
}

// FromSchema reports whether declarations come from a YAML schema file
// rather than from Go source.
func (c *Config) FromSchema() bool {
	return c.SchemaPath != ""
}
