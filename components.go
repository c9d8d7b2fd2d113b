package phases

import (
	"image"

	"github.com/oliverbestmann/phases/color"
	"github.com/oliverbestmann/phases/gm"
)

// Bundle groups multiple components into one value. Bundles are flattened
// when they are inserted into an entity.
func Bundle(components ...AnyComponent) AnyComponent {
	return bundleComponent{components: components}
}

// bundleComponent is not comparable and is never stored on an entity.
type bundleComponent struct {
	components []AnyComponent
}

func flattenComponents(target []AnyComponent, components ...AnyComponent) []AnyComponent {
	for _, component := range components {
		if bundle, ok := component.(bundleComponent); ok {
			// recurse into the bundle and flatten its components
			target = flattenComponents(target, bundle.components...)
		} else {
			target = append(target, component)
		}
	}

	return target
}

// Graphic is a pre-resolved image handle provided by an asset service.
// An *ebiten.Image satisfies this interface, as does any image.Image.
type Graphic interface {
	Bounds() image.Rectangle
}

// Camera marks an entity as a camera. Nothing is rendered while no camera exists.
type Camera struct {
	// The clear color used before rendering the frame.
	ClearColor color.Color

	// Cameras are rendered by ascending order value
	Order int
}

// Transform places an entity in screen coordinates.
type Transform struct {
	Translation gm.Vec
}

func TransformFromXY(x, y float64) Transform {
	return Transform{Translation: gm.Vec{X: x, Y: y}}
}

// Sprite renders a graphic. The graphic is centered around the entities Transform.
type Sprite struct {
	Graphic Graphic

	// If set, the graphic is stretched to cover the full frame and
	// the Transform is ignored.
	FullFrame bool

	// Optional size in pixels to scale the graphic to.
	Size gm.Vec
}

// Rectangle renders a filled axis aligned rectangle centered around the Transform.
type Rectangle struct {
	Size  gm.Vec
	Color color.Color
}

// Text renders a debug text with its top left corner at the Transform.
type Text struct {
	Text string
}

// Layer defines the draw order. Entities with a higher Z are drawn on top.
type Layer struct {
	Z float64
}
