package phasebiten

import (
	"cmp"
	"image"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/color"
	"github.com/oliverbestmann/phases/gm"
)

var whiteImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

type renderItem struct {
	EntityId phases.EntityId
	Z        float64
}

type renderer struct {
	// graphics that are not ebiten images are converted once
	converted map[phases.Graphic]*ebiten.Image

	// scratch space, reused between frames
	items []renderItem
}

// Render draws the world onto the screen. Nothing is drawn while no camera exists.
func (r *renderer) Render(world *phases.World, screen *ebiten.Image) {
	type cameraValue struct {
		EntityId phases.EntityId
		Camera   phases.Camera
	}

	var cameras []cameraValue
	for entityId, camera := range phases.Each[phases.Camera](world) {
		cameras = append(cameras, cameraValue{EntityId: entityId, Camera: *camera})
	}

	if len(cameras) == 0 {
		return
	}

	slices.SortStableFunc(cameras, func(a, b cameraValue) int {
		return a.Camera.Order - b.Camera.Order
	})

	r.collect(world)

	// all cameras share the screen. The first camera clears it.
	if clearColor := cameras[0].Camera.ClearColor; !clearColor.IsTransparent() {
		screen.Fill(clearColor)
	}

	for _, item := range r.items {
		r.draw(world, screen, item.EntityId)
	}
}

func (r *renderer) collect(world *phases.World) {
	r.items = r.items[:0]

	add := func(entityId phases.EntityId) {
		var z float64
		if layer, ok := phases.Get[phases.Layer](world, entityId); ok {
			z = layer.Z
		}

		r.items = append(r.items, renderItem{EntityId: entityId, Z: z})
	}

	for entityId := range phases.Each[phases.Sprite](world) {
		add(entityId)
	}

	for entityId := range phases.Each[phases.Rectangle](world) {
		if !phases.Has[phases.Sprite](world, entityId) {
			add(entityId)
		}
	}

	for entityId := range phases.Each[phases.Text](world) {
		if !phases.Has[phases.Sprite](world, entityId) && !phases.Has[phases.Rectangle](world, entityId) {
			add(entityId)
		}
	}

	// sort by layer, keep spawn order within a layer
	slices.SortStableFunc(r.items, func(a, b renderItem) int {
		return cmp.Or(cmp.Compare(a.Z, b.Z), cmp.Compare(a.EntityId, b.EntityId))
	})
}

func (r *renderer) draw(world *phases.World, screen *ebiten.Image, entityId phases.EntityId) {
	var translation gm.Vec
	if transform, ok := phases.Get[phases.Transform](world, entityId); ok {
		translation = transform.Translation
	}

	if sprite, ok := phases.Get[phases.Sprite](world, entityId); ok && sprite.Graphic != nil {
		img := r.imageOf(sprite.Graphic)
		size := img.Bounds().Size()

		var op ebiten.DrawImageOptions
		op.Filter = ebiten.FilterNearest

		if sprite.FullFrame {
			screenSize := screen.Bounds().Size()
			op.GeoM.Scale(
				float64(screenSize.X)/float64(size.X),
				float64(screenSize.Y)/float64(size.Y),
			)
		} else {
			target := gm.Vec{X: float64(size.X), Y: float64(size.Y)}
			if sprite.Size.X > 0 && sprite.Size.Y > 0 {
				op.GeoM.Scale(sprite.Size.X/target.X, sprite.Size.Y/target.Y)
				target = sprite.Size
			}

			op.GeoM.Translate(translation.X-target.X/2, translation.Y-target.Y/2)
		}

		screen.DrawImage(img, &op)
	}

	if rect, ok := phases.Get[phases.Rectangle](world, entityId); ok {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(rect.Size.X, rect.Size.Y)
		op.GeoM.Translate(translation.X-rect.Size.X/2, translation.Y-rect.Size.Y/2)
		op.ColorScale.ScaleWithColor(rect.Color)

		screen.DrawImage(whiteImage(), &op)
	}

	if text, ok := phases.Get[phases.Text](world, entityId); ok {
		ebitenutil.DebugPrintAt(screen, text.Text, int(translation.X), int(translation.Y))
	}
}

func (r *renderer) imageOf(graphic phases.Graphic) *ebiten.Image {
	if img, ok := graphic.(*ebiten.Image); ok {
		return img
	}

	if r.converted == nil {
		r.converted = map[phases.Graphic]*ebiten.Image{}
	}

	img, ok := r.converted[graphic]
	if !ok {
		img = ebiten.NewImageFromImage(asImage(graphic))
		r.converted[graphic] = img
	}

	return img
}

func asImage(graphic phases.Graphic) image.Image {
	if img, ok := graphic.(image.Image); ok {
		return img
	}

	// a graphic only providing its bounds renders as a white box
	img := image.NewRGBA(graphic.Bounds())
	for idx := range img.Pix {
		img.Pix[idx] = 0xff
	}

	return img
}
