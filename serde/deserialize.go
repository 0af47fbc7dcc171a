package serde

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

var (
	ErrUnknownShape    = errors.New("unknown shape")
	ErrShapeRegistered = errors.New("shape already registered")
)

// Constructor creates value of T from positional arguments.
type Constructor[T any] interface {
	Construct(args ...any) (T, error)
}

// ConstructorFunc adapts ordinary function to Constructor.
type ConstructorFunc[T any] func(args ...any) (T, error)

func (fn ConstructorFunc[T]) Construct(args ...any) (T, error) { return fn(args...) }

// Erase converts typed constructor into one suitable for Registry.
func Erase[T any](c Constructor[T]) Constructor[any] {
	return ConstructorFunc[any](func(args ...any) (any, error) {
		return c.Construct(args...)
	})
}

// Values returns field values in order of appearance.
func Values(fields *Fields) []any {
	return slices.Collect(fields.Values())
}

// Deserialize parses text and creates new value using shape, passing it field
// values in the order they appear in text. Parsing problems are reported as
// *ParseError, constructor errors are returned as is.
func Deserialize[T any](shape Constructor[T], text string) (T, error) {
	fields, err := Parse(text)
	if err != nil {
		var zero T
		return zero, err
	}
	return shape.Construct(Values(fields)...)
}

// Registry maps shape names to constructors.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]Constructor[any]
}

func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]Constructor[any])}
}

// Register adds named constructor, names must be unique.
func (r *Registry) Register(name string, c Constructor[any]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shapes[name]; ok {
		return fmt.Errorf("%w: %s", ErrShapeRegistered, name)
	}
	r.shapes[name] = c
	return nil
}

// Names returns sorted names of registered shapes.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Deserialize is Deserialize using constructor registered under name.
func (r *Registry) Deserialize(name, text string) (any, error) {
	r.mu.RLock()
	c, ok := r.shapes[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
	return Deserialize(c, text)
}
