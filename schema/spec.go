package schema

import (
	"fmt"
	"os"

	"github.com/signadot/fieldpath/token"

	"github.com/goccy/go-yaml"
)

type Spec struct {
	Name    string  `yaml:"name"`
	Indexes []Index `yaml:"indexes"`
}

type Index struct {
	Name  string `yaml:"name"`
	Parts []Part `yaml:"parts"`
}

// Part is one indexed field. Type may not be a container type.
type Part struct {
	Path     string    `yaml:"path"`
	Type     FieldType `yaml:"type"`
	Nullable bool      `yaml:"nullable,omitempty"`
}

// Load decodes and validates a spec.
func Load(data []byte) (*Spec, error) {
	spec := &Spec{}
	if err := yaml.UnmarshalWithOptions(data, spec, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpec, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func LoadFile(path string) (*Spec, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec, err := Load(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Validate checks index names and part paths. It does not check that the
// parts agree with each other; [Build] does that.
func (s *Spec) Validate() error {
	seen := map[string]bool{}
	for i := range s.Indexes {
		idx := &s.Indexes[i]
		if idx.Name == "" {
			return fmt.Errorf("%w: index %d has no name", ErrSpec, i+1)
		}
		if seen[idx.Name] {
			return fmt.Errorf("%w: duplicate index %q", ErrSpec, idx.Name)
		}
		seen[idx.Name] = true
		if len(idx.Parts) == 0 {
			return fmt.Errorf("%w: index %q has no parts", ErrSpec, idx.Name)
		}
		for j, p := range idx.Parts {
			if err := p.Validate(); err != nil {
				return &PartError{Index: idx.Name, Part: j, Path: p.Path, Err: err}
			}
		}
	}
	return nil
}

func (p *Part) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("%w: empty path", ErrSpec)
	}
	if err := token.Validate(p.Path); err != nil {
		return err
	}
	if p.Type.IsContainer() {
		return fmt.Errorf("%w: part type %s is a container", ErrSpec, p.Type)
	}
	return nil
}

// Dedup returns parts without the parts whose path names a field already
// named by an earlier part. "a['b']" and "a.b" name the same field. Parts
// with invalid paths are kept.
func Dedup(parts []Part) []Part {
	var res []Part
outer:
	for _, p := range parts {
		if token.Validate(p.Path) == nil {
			for _, q := range res {
				if token.Validate(q.Path) == nil && token.ComparePaths(q.Path, p.Path) == 0 {
					continue outer
				}
			}
		}
		res = append(res, p)
	}
	return res
}
