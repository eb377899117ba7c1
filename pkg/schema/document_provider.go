package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formguard/pkg/constraint"
)

// DefaultDiscriminator is the document key naming a document's type.
const DefaultDiscriminator = "kind"

// DocumentSchema declares validated types for dynamic documents
// (map[string]any values decoded from JSON or YAML).
type DocumentSchema struct {
	Discriminator string                `yaml:"discriminator"`
	Types         map[string]TypeSchema `yaml:"types"`
}

type TypeSchema struct {
	Fields []FieldSchema `yaml:"fields"`
}

// FieldSchema declares one document field. Object marks fields holding a
// nested validated document; Elements marks sequence fields.
type FieldSchema struct {
	Name        string         `yaml:"name"`
	Constraints []string       `yaml:"constraints"`
	Object      bool           `yaml:"object"`
	Elements    *ElementSchema `yaml:"elements"`
}

type ElementSchema struct {
	Constraints []string       `yaml:"constraints"`
	Elements    *ElementSchema `yaml:"elements"`
}

// ParseDocumentSchema parses a schema from YAML bytes.
func ParseDocumentSchema(data []byte) (DocumentSchema, error) {
	var s DocumentSchema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DocumentSchema{}, fmt.Errorf("%w: parse yaml: %v", ErrInvalidSchema, err)
	}
	return s, nil
}

// ParseDocumentSchemaFile parses a schema from a YAML file.
func ParseDocumentSchemaFile(path string) (DocumentSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DocumentSchema{}, fmt.Errorf("read file %s: %w", path, err)
	}
	s, err := ParseDocumentSchema(data)
	if err != nil {
		return DocumentSchema{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseDocumentSchemaDir parses every .yaml and .yml file of dir, including
// subdirectories, in lexical order.
func ParseDocumentSchemaDir(dir string) ([]DocumentSchema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var schemas []DocumentSchema
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			sub, err := ParseDocumentSchemaDir(path)
			if err != nil {
				return nil, err
			}
			schemas = append(schemas, sub...)
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		s, err := ParseDocumentSchemaFile(path)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// DocumentProvider describes map[string]any documents whose discriminator
// key names a declared type. Descriptors are built when the provider is
// created and never change afterwards.
type DocumentProvider struct {
	discriminator string
	types         map[string]*TypeDescriptor
}

// NewDocumentProvider merges and compiles schemas. All schemas must use the
// same discriminator and type names must be unique.
func NewDocumentProvider(schemas ...DocumentSchema) (*DocumentProvider, error) {
	p := &DocumentProvider{
		discriminator: DefaultDiscriminator,
		types:         make(map[string]*TypeDescriptor),
	}

	discriminator := ""
	var errs []error
	for _, s := range schemas {
		d := s.Discriminator
		if d == "" {
			d = DefaultDiscriminator
		}
		if discriminator == "" {
			discriminator = d
		} else if d != discriminator {
			errs = append(errs, fmt.Errorf("%w: discriminator %q conflicts with %q", ErrInvalidSchema, d, discriminator))
			continue
		}

		for _, name := range sortedKeys(s.Types) {
			if _, exists := p.types[name]; exists {
				errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateType, name))
				continue
			}
			td, err := compileType(name, s.Types[name])
			if err != nil {
				errs = append(errs, err)
				continue
			}
			p.types[name] = td
		}
	}
	if discriminator != "" {
		p.discriminator = discriminator
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadDocumentProvider parses all schemas of dir and compiles them.
func LoadDocumentProvider(dir string) (*DocumentProvider, error) {
	schemas, err := ParseDocumentSchemaDir(dir)
	if err != nil {
		return nil, err
	}
	return NewDocumentProvider(schemas...)
}

// Describe implements Provider.
func (p *DocumentProvider) Describe(value any) (*TypeDescriptor, bool) {
	doc, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	name, ok := doc[p.discriminator].(string)
	if !ok {
		return nil, false
	}
	td, ok := p.types[name]
	return td, ok
}

// Types lists the declared type names in sorted order.
func (p *DocumentProvider) Types() []string {
	return sortedKeys(p.types)
}

func (p *DocumentProvider) Discriminator() string {
	return p.discriminator
}

func compileType(name string, ts TypeSchema) (*TypeDescriptor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty type name", ErrInvalidSchema)
	}

	td := &TypeDescriptor{Name: name}
	seen := make(map[string]bool, len(ts.Fields))
	var errs []error
	for i, fs := range ts.Fields {
		if strings.TrimSpace(fs.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: %s: field #%d has no name", ErrInvalidSchema, name, i))
			continue
		}
		if seen[fs.Name] {
			errs = append(errs, fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidSchema, name, fs.Name))
			continue
		}
		seen[fs.Name] = true

		specs, err := parseSpecs(fs.Constraints)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, fs.Name, err))
			continue
		}
		element, err := compileElements(fs.Elements)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, fs.Name, err))
			continue
		}

		td.Fields = append(td.Fields, FieldDescriptor{
			Name:          fs.Name,
			Constraints:   specs,
			SelfValidated: fs.Object,
			Element:       element,
			Get:           documentGetter(fs.Name),
		})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return td, nil
}

func compileElements(es *ElementSchema) (*ElementDescriptor, error) {
	if es == nil {
		return nil, nil
	}
	specs, err := parseSpecs(es.Constraints)
	if err != nil {
		return nil, err
	}
	next, err := compileElements(es.Elements)
	if err != nil {
		return nil, err
	}
	return &ElementDescriptor{Constraints: specs, Element: next}, nil
}

func parseSpecs(items []string) ([]constraint.Spec, error) {
	specs := make([]constraint.Spec, 0, len(items))
	for _, item := range items {
		spec, err := constraint.ParseSpec(item)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func documentGetter(name string) func(object any) any {
	return func(object any) any {
		doc, ok := object.(map[string]any)
		if !ok {
			return nil
		}
		return ValueOf(reflect.ValueOf(doc[name]))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
