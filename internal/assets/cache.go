package assets

import (
	"log/slog"
	"path"
	"reflect"
	"sync"
	"time"
)

type cached[T any] struct {
	value T
	err   error
}

type cache[T any] struct {
	mu     sync.Mutex
	values map[string]cached[T]
}

func (c *cache[T]) Get(key string, load func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.values == nil {
		c.values = make(map[string]cached[T], 16)
	}

	// cleanup path to improve cache hits
	key = path.Clean(key)

	if entry, ok := c.values[key]; ok {
		return entry.value, entry.err
	}

	slog.Debug("Start loading asset",
		slog.String("type", reflect.TypeFor[T]().String()),
		slog.String("path", key))

	startTime := time.Now()

	value, err := load()
	if err != nil {
		slog.Warn("Failed to load asset",
			slog.String("type", reflect.TypeFor[T]().String()),
			slog.String("path", key),
			slog.Duration("duration", time.Since(startTime)),
			slog.String("error", err.Error()))
	} else {
		slog.Debug("Finish loading asset",
			slog.String("type", reflect.TypeFor[T]().String()),
			slog.String("path", key),
			slog.Duration("duration", time.Since(startTime)))
	}

	// failures are cached too, the filesystem is not expected to change
	c.values[key] = cached[T]{value: value, err: err}

	return value, err
}
