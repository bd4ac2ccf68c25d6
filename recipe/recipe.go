// Package recipe builds processor trees from YAML descriptions.
//
// A recipe names one root node. Nodes are filters from the registry,
// pipelines of nodes, band forks and overprint forks:
//
//	name: green-dither
//	process:
//	  kind: fork
//	  mode: RGB
//	  bands:
//	    G: {filter: atkinson}
//
// Built-in recipes are embedded and listed by List.
package recipe

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggpipe"
)

// Node kinds.
const (
	KindFilter    = "filter"
	KindPipeline  = "pipeline"
	KindFork      = "fork"
	KindOverprint = "overprint"
)

// Recipe is a named processor description.
type Recipe struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Process     Node   `yaml:"process"`
}

// Node describes one processor. Kind defaults to "filter" when Filter is
// set and to "pipeline" when Steps is.
type Node struct {
	Kind string `yaml:"kind,omitempty"`

	// filter
	Filter string `yaml:"filter,omitempty"`
	Params Params `yaml:"params,omitempty"`

	// pipeline
	Steps []Node `yaml:"steps,omitempty"`

	// fork and overprint
	Mode     string          `yaml:"mode,omitempty"`
	Default  *Node           `yaml:"default,omitempty"`
	Bands    map[string]Node `yaml:"bands,omitempty"`
	Parallel bool            `yaml:"parallel,omitempty"`
	GCR      *float64        `yaml:"gcr,omitempty"`
}

// kind resolves the implicit node kind.
func (n *Node) kind() string {
	switch {
	case n.Kind != "":
		return strings.ToLower(n.Kind)
	case n.Filter != "":
		return KindFilter
	case len(n.Steps) > 0:
		return KindPipeline
	default:
		return ""
	}
}

//go:embed recipes/*.yaml
var builtinFS embed.FS

// Parse decodes a recipe. Unknown fields are rejected.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty recipe", ggpipe.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: parse recipe: %w", ggpipe.ErrConfiguration, err)
	}
	return &r, nil
}

// LoadFile reads and parses a recipe file.
func LoadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	return Parse(data)
}

// Builtin returns an embedded recipe by name.
func Builtin(name string) (*Recipe, error) {
	data, err := builtinFS.ReadFile("recipes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("recipe %q not found (available: %s): %w",
			name, strings.Join(List(), ", "), err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", name, err)
	}
	return r, nil
}

// List returns the names of all embedded recipes, sorted.
func List() []string {
	entries, _ := builtinFS.ReadDir("recipes")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	slices.Sort(names)
	return names
}

// Load resolves ref as a built-in recipe name, or else as a file path.
func Load(ref string) (*Recipe, error) {
	if slices.Contains(List(), ref) {
		return Builtin(ref)
	}
	return LoadFile(ref)
}

// Build constructs the recipe's processor tree.
func (r *Recipe) Build() (ggpipe.Processor, error) {
	p, err := Build(r.Process)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", r.Name, err)
	}
	return p, nil
}

// Build constructs the processor described by n.
func Build(n Node) (ggpipe.Processor, error) {
	switch n.kind() {
	case KindFilter:
		if n.Filter == "" {
			return nil, fmt.Errorf("%w: filter node without a filter name", ggpipe.ErrConfiguration)
		}
		return New(n.Filter, n.Params)

	case KindPipeline:
		steps := make([]ggpipe.Processor, 0, len(n.Steps))
		for i, s := range n.Steps {
			p, err := Build(s)
			if err != nil {
				return nil, fmt.Errorf("steps[%d]: %w", i, err)
			}
			steps = append(steps, p)
		}
		return ggpipe.NewPipeline(steps...), nil

	case KindFork, KindOverprint:
		return buildFork(n)

	case "":
		return nil, fmt.Errorf("%w: node has no kind, filter or steps", ggpipe.ErrConfiguration)

	default:
		return nil, fmt.Errorf("%w: unknown node kind %q", ggpipe.ErrConfiguration, n.Kind)
	}
}

func buildFork(n Node) (ggpipe.Processor, error) {
	factory, err := Factory(n.Default)
	if err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}

	opts := []ggpipe.ForkOption{ggpipe.WithParallel(n.Parallel)}
	if n.Mode != "" {
		opts = append(opts, ggpipe.WithModeName(n.Mode))
	}
	if n.GCR != nil {
		if n.kind() != KindOverprint {
			return nil, fmt.Errorf("%w: gcr is only valid on overprint nodes", ggpipe.ErrConfiguration)
		}
		opts = append(opts, ggpipe.WithGCR(*n.GCR))
	}

	labels := make([]string, 0, len(n.Bands))
	for label := range n.Bands {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	for _, label := range labels {
		p, err := Build(n.Bands[label])
		if err != nil {
			return nil, fmt.Errorf("bands[%s]: %w", label, err)
		}
		opts = append(opts, ggpipe.WithBand(label, p))
	}

	if n.kind() == KindOverprint {
		f, err := ggpipe.NewOverprintFork(factory, opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	f, err := ggpipe.NewBandFork(factory, opts...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Factory turns a node into a fork default: every call builds a fresh
// processor tree. A nil node gives NoOpFactory. The node is built once up
// front so configuration errors surface here.
func Factory(n *Node) (ggpipe.Factory, error) {
	if n == nil {
		return ggpipe.NoOpFactory, nil
	}
	if _, err := Build(*n); err != nil {
		return nil, err
	}
	node := *n
	return func() ggpipe.Processor {
		p, err := Build(node)
		if err != nil {
			return nil
		}
		return p
	}, nil
}
