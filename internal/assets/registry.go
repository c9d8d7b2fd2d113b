// Package assets resolves assets by id. An id is bound either to a file in a
// filesystem or to a generator producing the asset in code.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
)

// Decoder turns the content of an asset file into a value.
type Decoder[T any] func(r io.Reader) (T, error)

type Registry[T any] struct {
	fs     fs.FS
	decode Decoder[T]

	// file paths take precedence over generators
	paths      map[string]string
	generators map[string]func() T

	files     cache[T]
	generated cache[T]
}

// NewRegistry creates a registry reading files from fsys. The paths map ids to file
// paths within fsys, e.g. the assets section of the config.
func NewRegistry[T any](fsys fs.FS, paths map[string]string, decode Decoder[T]) *Registry[T] {
	return &Registry[T]{
		fs:         fsys,
		decode:     decode,
		paths:      paths,
		generators: map[string]func() T{},
	}
}

// Generate binds an id to a generator. The generator runs at most once.
func (r *Registry[T]) Generate(id string, generate func() T) {
	r.generators[id] = generate
}

// Resolve returns the asset with the given id. Results, including failures, are cached.
func (r *Registry[T]) Resolve(id string) (T, error) {
	if p, ok := r.paths[id]; ok {
		return r.Load(p)
	}

	if generate, ok := r.generators[id]; ok {
		return r.generated.Get(id, func() (T, error) {
			return generate(), nil
		})
	}

	var zero T
	return zero, fmt.Errorf("no asset with id %q", id)
}

// Load reads and decodes a file. Results are cached by path.
func (r *Registry[T]) Load(p string) (T, error) {
	return r.files.Get(p, func() (T, error) {
		var zero T

		fp, err := r.fs.Open(p)
		if err != nil {
			return zero, fmt.Errorf("open asset %q: %w", p, err)
		}

		defer func() { _ = fp.Close() }()

		value, err := r.decode(fp)
		if err != nil {
			return zero, fmt.Errorf("decode asset %q: %w", p, err)
		}

		return value, nil
	})
}

// Preload resolves the given ids and every id bound to a file path. All failures
// are reported together, so a broken configuration is noticed before the game starts.
func (r *Registry[T]) Preload(ids ...string) error {
	var errs []error

	for _, id := range r.ids(ids) {
		if _, err := r.Resolve(id); err != nil {
			errs = append(errs, fmt.Errorf("asset %q: %w", id, err))
		}
	}

	return errors.Join(errs...)
}

func (r *Registry[T]) ids(extra []string) []string {
	ids := slices.Clone(extra)
	for id := range r.paths {
		ids = append(ids, id)
	}

	slices.Sort(ids)
	return slices.Compact(ids)
}
