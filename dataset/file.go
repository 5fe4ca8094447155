package dataset

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstreplay/core"
)

//go:embed schema/catalog.schema.json
var catalogSchemaJSON []byte

const catalogSchemaURL = "schema://mstreplay/catalog.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// catalogFile is the on-disk catalog shape.
type catalogFile struct {
	Graphs []fileGraph `json:"graphs"`
}

type fileGraph struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Start       string      `json:"start"`
	Nodes       []core.Node `json:"nodes"`
	Edges       []core.Edge `json:"edges"`
}

// Format names a catalog encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the encoding from a file extension; anything other than
// .json is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// LoadFile reads a catalog file and registers its graphs in file order.
func (c *Catalog) LoadFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read catalog %s", path)
	}
	if err := c.Load(payload, FormatOf(path)); err != nil {
		return errors.Wrapf(err, "load catalog %s", path)
	}
	c.logger.Info("loaded catalog", zap.String("path", path), zap.Int("datasets", c.Len()))

	return nil
}

// Load decodes, validates and registers a catalog document. Nothing is
// registered unless every graph in the document is valid.
//
// Steps:
//  1. Decode YAML or JSON into a generic value.
//  2. Validate it against the embedded schema.
//  3. Decode into typed graphs and build each with core.NewGraph.
//  4. Register all graphs in document order.
func (c *Catalog) Load(payload []byte, format Format) error {
	// 1. Decode.
	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(payload, &doc); err != nil {
			return errors.Wrapf(ErrInvalidCatalog, "parse json: %v", err)
		}
	default:
		if err := yaml.Unmarshal(payload, &doc); err != nil {
			return errors.Wrapf(ErrInvalidCatalog, "parse yaml: %v", err)
		}
	}
	// YAML numbers and maps normalize through a JSON round trip.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(ErrInvalidCatalog, "normalize: %v", err)
	}
	var generic any
	if err := json.Unmarshal(normalized, &generic); err != nil {
		return errors.Wrapf(ErrInvalidCatalog, "normalize: %v", err)
	}

	// 2. Validate.
	sch, err := catalogSchema()
	if err != nil {
		return errors.Wrap(err, "compile catalog schema")
	}
	if err := sch.Validate(generic); err != nil {
		return errors.Wrapf(ErrInvalidCatalog, "schema: %v", err)
	}

	// 3. Build.
	var file catalogFile
	if err := json.Unmarshal(normalized, &file); err != nil {
		return errors.Wrapf(ErrInvalidCatalog, "decode: %v", err)
	}
	built := make([]*core.Graph, len(file.Graphs))
	seen := make(map[string]bool, len(file.Graphs))
	for i, fg := range file.Graphs {
		if seen[fg.Name] {
			return errors.Wrapf(ErrDuplicateDataset, "graph %q", fg.Name)
		}
		if _, dup := c.entries.Get(fg.Name); dup {
			return errors.Wrapf(ErrDuplicateDataset, "graph %q", fg.Name)
		}
		seen[fg.Name] = true

		g, err := core.NewGraph(fg.Nodes, fg.Edges)
		if err != nil {
			return errors.Wrapf(err, "graph %q", fg.Name)
		}
		if fg.Start != "" && !g.HasNode(fg.Start) {
			return errors.Wrapf(core.ErrNodeNotFound, "graph %q start %q", fg.Name, fg.Start)
		}
		built[i] = g
	}

	// 4. Register.
	for i, fg := range file.Graphs {
		g := built[i]
		if err := c.Register(fg.Name, fg.Description, fg.Start, func() (*core.Graph, error) { return g, nil }); err != nil {
			return err
		}
	}

	return nil
}

// catalogSchema compiles the embedded schema once.
func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(catalogSchemaJSON, &def); err != nil {
			schemaErr = err
			return
		}
		comp := jsonschema.NewCompiler()
		if err := comp.AddResource(catalogSchemaURL, def); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = comp.Compile(catalogSchemaURL)
	})

	return compiledSchema, schemaErr
}
