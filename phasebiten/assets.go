package phasebiten

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/internal/assets"
)

// Assets resolves graphics by id. An id is either bound to a generator
// creating the image in code, or to an image file in the asset filesystem.
type Assets struct {
	registry *assets.Registry[*ebiten.Image]
}

var _ phases.GraphicSource = (*Assets)(nil)

// NewAssets creates an asset service reading files from the given filesystem.
// The paths map graphic ids to file paths within the filesystem.
func NewAssets(fsys fs.FS, paths map[string]string) *Assets {
	return &Assets{
		registry: assets.NewRegistry(fsys, paths, ImageLoader{}.Load),
	}
}

// Generate binds a graphic id to a generator. The generator runs at most once.
// Graphics bound to a file path take precedence.
func (a *Assets) Generate(id string, generate func() *ebiten.Image) {
	a.registry.Generate(id, generate)
}

func (a *Assets) Graphic(id string) (phases.Graphic, error) {
	img, err := a.registry.Resolve(id)
	if err != nil {
		// do not return a typed nil as Graphic
		return nil, err
	}

	return img, nil
}

// Preload resolves all the given ids and all configured image files.
func (a *Assets) Preload(ids ...string) error {
	return a.registry.Preload(ids...)
}
