package cstruct

import (
	"encoding/binary"
	"sort"

	"go.uber.org/zap"

	"github.com/structkit/cstruct/codec"
	"github.com/structkit/cstruct/errors"
	"github.com/structkit/cstruct/layout"
	"github.com/structkit/cstruct/parser"
)

// NamedSource pairs a source unit name with its text.
type NamedSource = parser.NamedSource

// Source supplies included file contents; see parser.Source.
type Source = parser.Source

// Registry holds the computed layouts of every declared struct.
// It is immutable after build: Pack and Unpack may be called
// concurrently without coordination.
type Registry struct {
	layouts map[string]*layout.Struct
	order   binary.ByteOrder
}

type config struct {
	order binary.ByteOrder
	log   *zap.Logger
}

// Option configures registry construction.
type Option func(*config)

// WithByteOrder sets the byte order used by Pack and Unpack.
// The default is little-endian.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(c *config) { c.order = order }
}

// WithLogger installs a logger for build diagnostics. The default is
// a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// BuildRegistry parses the given source texts into one namespace,
// resolves struct references and computes every layout.
func BuildRegistry(sources []NamedSource, opts ...Option) (*Registry, error) {
	set, err := parser.ParseSources(sources)
	if err != nil {
		return nil, err
	}
	return build(set, opts)
}

// BuildRegistryFS parses the entry files and every file they include,
// reading file contents through src.
func BuildRegistryFS(src Source, entries []string, opts ...Option) (*Registry, error) {
	set, err := parser.ExpandAll(entries, src)
	if err != nil {
		return nil, err
	}
	return build(set, opts)
}

func build(set *parser.Set, opts []Option) (*Registry, error) {
	cfg := config{order: binary.LittleEndian, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ordered, err := layout.Resolve(set)
	if err != nil {
		return nil, err
	}
	layouts, err := layout.Compute(ordered)
	if err != nil {
		return nil, err
	}

	for _, d := range ordered {
		cfg.log.Debug("layout computed",
			zap.String("struct", d.Name),
			zap.Int("size", layouts[d.Name].Size),
			zap.Int("fields", len(d.Fields)))
	}

	return &Registry{layouts: layouts, order: cfg.order}, nil
}

// LayoutOf returns the layout of a declared struct.
func (r *Registry) LayoutOf(name string) (*layout.Struct, error) {
	st, ok := r.layouts[name]
	if !ok {
		return nil, errors.UnknownType(errors.PhaseResolve, nil, name)
	}
	return st, nil
}

// Pack encodes a value against the named struct's layout at the
// registry's byte order.
func (r *Registry) Pack(name string, v map[string]any) ([]byte, error) {
	st, err := r.LayoutOf(name)
	if err != nil {
		return nil, err
	}
	return codec.Pack(v, st, r.order)
}

// Unpack decodes a byte buffer against the named struct's layout at
// the registry's byte order.
func (r *Registry) Unpack(name string, data []byte) (map[string]any, error) {
	st, err := r.LayoutOf(name)
	if err != nil {
		return nil, err
	}
	return codec.Unpack(data, st, r.order)
}

// Names returns all declared struct names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByteOrder returns the byte order the registry packs and unpacks with.
func (r *Registry) ByteOrder() binary.ByteOrder {
	return r.order
}
