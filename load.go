package bcbioconf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

// Load parses a run configuration document and validates it. It fails with a
// *SchemaError naming the offending field path on the first violation found.
// Loading has no side effects and the same document always yields the same
// model.
func Load(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &SchemaError{Field: "document", Msg: err.Error()}
	}

	if err := checkShape(&doc); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := doc.Decode(cfg); err != nil {
		return nil, &SchemaError{Field: "document", Msg: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile opens and Loads the named configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return Load(f)
}

// Save writes the model back out as YAML. Loading the output yields a model
// equal to cfg, field for field.
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(enc.Close())
}

// WriteFile Saves the model to the named path, creating or truncating it.
func (c *Config) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return err
	}

	return pfx.Err(os.WriteFile(ExpandHome(path), buf.Bytes(), 0o644))
}

// Validate applies the semantic rules to an in-memory model: every entry
// needs analysis, genome_build, and at least one input file. It fails fast on
// the first violation.
func (c *Config) Validate() error {
	for i, entry := range c.Details {
		if entry.Analysis == "" {
			return &SchemaError{Field: entryField(i, "analysis"), Msg: "required field is missing or empty"}
		}
		if entry.GenomeBuild == "" {
			return &SchemaError{Field: entryField(i, "genome_build"), Msg: "required field is missing or empty"}
		}
		if len(entry.Files) == 0 {
			return &SchemaError{Field: entryField(i, "files"), Msg: "must list at least one input file"}
		}
		for j, f := range entry.Files {
			if f == "" {
				return &SchemaError{Field: fmt.Sprintf("details[%d].files[%d]", i, j), Msg: "file path is empty"}
			}
		}
	}

	return nil
}

// checkShape walks the document tree before decoding, so that shape
// violations (a scalar where a sequence belongs, and the like) surface with
// the offending field path rather than a line-oriented decoder message.
func checkShape(doc *yaml.Node) error {
	root := doc
	if root.Kind == 0 {
		return &SchemaError{Field: "document", Msg: "empty document"}
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return &SchemaError{Field: "document", Msg: "empty document"}
		}
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return &SchemaError{Field: "document", Msg: fmt.Sprintf("top level must be a mapping, got a %s", kindName(root.Kind))}
	}

	details := mappingValue(root, "details")
	if details == nil {
		return &SchemaError{Field: "details", Msg: "required section is missing"}
	}
	if details.Kind != yaml.SequenceNode {
		return &SchemaError{Field: "details", Msg: fmt.Sprintf("must be a sequence of sample entries, got a %s", kindName(details.Kind))}
	}

	if upload := mappingValue(root, "upload"); upload != nil && upload.Kind != yaml.MappingNode {
		return &SchemaError{Field: "upload", Msg: fmt.Sprintf("must be a mapping, got a %s", kindName(upload.Kind))}
	}

	for i, entry := range details.Content {
		if entry.Kind != yaml.MappingNode {
			return &SchemaError{Field: fmt.Sprintf("details[%d]", i), Msg: fmt.Sprintf("sample entry must be a mapping, got a %s", kindName(entry.Kind))}
		}

		if files := mappingValue(entry, "files"); files != nil {
			if files.Kind != yaml.SequenceNode {
				return &SchemaError{Field: entryField(i, "files"), Msg: fmt.Sprintf("must be a sequence of file paths, got a %s", kindName(files.Kind))}
			}
			for j, f := range files.Content {
				if f.Kind != yaml.ScalarNode {
					return &SchemaError{Field: fmt.Sprintf("details[%d].files[%d]", i, j), Msg: fmt.Sprintf("file path must be a scalar, got a %s", kindName(f.Kind))}
				}
			}
		}

		for _, key := range []string{"algorithm", "metadata"} {
			if v := mappingValue(entry, key); v != nil && v.Kind != yaml.MappingNode {
				return &SchemaError{Field: entryField(i, key), Msg: fmt.Sprintf("must be a mapping, got a %s", kindName(v.Kind))}
			}
		}
	}

	return nil
}

// mappingValue returns the value node for key within a mapping node, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

func entryField(i int, field string) string {
	return fmt.Sprintf("details[%d].%s", i, field)
}
