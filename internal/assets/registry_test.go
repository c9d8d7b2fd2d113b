package assets

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func decodeText(r io.Reader) (string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	text := string(buf)
	if strings.HasPrefix(text, "corrupt") {
		return "", errors.New("corrupt content")
	}

	return text, nil
}

func newTestRegistry(paths map[string]string) *Registry[string] {
	fsys := fstest.MapFS{
		"images/dragon.png": {Data: []byte("dragon")},
		"images/wall.png":   {Data: []byte("wall")},
		"images/bad.png":    {Data: []byte("corrupt")},
	}

	return NewRegistry(fsys, paths, decodeText)
}

func TestResolveFile(t *testing.T) {
	registry := newTestRegistry(map[string]string{"player": "images/dragon.png"})

	value, err := registry.Resolve("player")
	require.NoError(t, err)
	require.Equal(t, "dragon", value)
}

func TestResolveGeneratedOnce(t *testing.T) {
	registry := newTestRegistry(nil)

	var calls int
	registry.Generate("wall", func() string {
		calls++
		return "generated wall"
	})

	for range 3 {
		value, err := registry.Resolve("wall")
		require.NoError(t, err)
		require.Equal(t, "generated wall", value)
	}

	require.Equal(t, 1, calls)
}

func TestFileOverridesGenerator(t *testing.T) {
	registry := newTestRegistry(map[string]string{"wall": "images/wall.png"})
	registry.Generate("wall", func() string { return "generated wall" })

	value, err := registry.Resolve("wall")
	require.NoError(t, err)
	require.Equal(t, "wall", value)
}

func TestResolveUnknownId(t *testing.T) {
	_, err := newTestRegistry(nil).Resolve("unknown")
	require.ErrorContains(t, err, `no asset with id "unknown"`)
}

func TestPreloadReportsMissingFiles(t *testing.T) {
	registry := newTestRegistry(map[string]string{
		"player": "images/dragon.png",
		"menu":   "images/missing.png",
		"broken": "images/bad.png",
	})

	registry.Generate("wall", func() string { return "generated wall" })

	err := registry.Preload("wall")
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorContains(t, err, `asset "menu"`)
	require.ErrorContains(t, err, `asset "broken"`)
	require.NotContains(t, err.Error(), `asset "player"`)
	require.NotContains(t, err.Error(), `asset "wall"`)
}

func TestPreloadUnboundId(t *testing.T) {
	registry := newTestRegistry(nil)
	registry.Generate("wall", func() string { return "generated wall" })

	require.NoError(t, registry.Preload("wall"))
	require.ErrorContains(t, registry.Preload("wall", "player"), `asset "player"`)
}
