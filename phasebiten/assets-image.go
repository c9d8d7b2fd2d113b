package phasebiten

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/oliverbestmann/phases/color"
)

type ImageLoader struct{}

func (i ImageLoader) Load(r io.Reader) (*ebiten.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return ebiten.NewImageFromImage(img), nil
}

// TitleCard returns a generator for a simple full frame menu graphic with
// a title and a list of hint lines. The card is drawn at half the given
// size and scaled up when rendered, which gives the debug font a chunky look.
func TitleCard(width, height int, background color.Color, title string, lines ...string) func() *ebiten.Image {
	return func() *ebiten.Image {
		const lineHeight = 16

		w, h := max(1, width/2), max(1, height/2)

		img := ebiten.NewImage(w, h)
		img.Fill(background)

		// some decoration around the title, if there is room for it
		if barWidth := w - 32; barWidth > 0 {
			bar := ebiten.NewImage(barWidth, 2)
			bar.Fill(color.White)

			var op ebiten.DrawImageOptions
			op.GeoM.Translate(16, float64(h/3-8))
			img.DrawImage(bar, &op)

			op.GeoM.Translate(0, 30)
			img.DrawImage(bar, &op)
		}

		ebitenutil.DebugPrintAt(img, title, centeredX(w, title), h/3)

		for idx, line := range lines {
			ebitenutil.DebugPrintAt(img, line, centeredX(w, line), h/2+idx*lineHeight)
		}

		return img
	}
}

// Box returns a generator for a single colored image of the given size.
func Box(width, height int, fill color.Color) func() *ebiten.Image {
	return func() *ebiten.Image {
		img := ebiten.NewImage(max(1, width), max(1, height))
		img.Fill(fill)
		return img
	}
}

func centeredX(width int, text string) int {
	// the debug font is 6 pixels wide
	return max(0, (width-6*len(text))/2)
}
