package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

var tileColors = map[string]color.RGBA{
	"grass": colornames.Forestgreen,
	"dirt":  colornames.Sienna,
	"water": colornames.Steelblue,
	"lava":  colornames.Orangered,
}

// tileImages lazily builds one flat image per tile name. It belongs to a
// Game and is cleared when the game closes.
type tileImages struct {
	size   int
	images map[string]*ebiten.Image
}

func newTileImages(size int) *tileImages {
	return &tileImages{size: size, images: make(map[string]*ebiten.Image)}
}

func (t *tileImages) Get(name string) *ebiten.Image {
	key := strings.ToLower(name)
	if img, ok := t.images[key]; ok {
		return img
	}

	clr, ok := tileColors[key]
	if !ok {
		clr = colornames.Gray
	}
	img := ebiten.NewImage(t.size, t.size)
	img.Fill(clr)
	t.images[key] = img
	return img
}

func (t *tileImages) Clear() {
	for key, img := range t.images {
		img.Deallocate()
		delete(t.images, key)
	}
}
