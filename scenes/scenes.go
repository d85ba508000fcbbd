// Package scenes provides the built-in demo scenes rendered by
// cmd/rastdemo. A scene is a data-driven list of primitives built for
// a given canvas size; the driver replays the list through the draw
// loop in order, so translucent shapes accumulate deterministically.
package scenes

import (
	"fmt"

	"github.com/gogpu/raster"
)

// Scene is a named primitive list builder.
type Scene struct {
	Name  string
	Build func(size int) []raster.Primitive
}

var all = []Scene{
	{Name: "e1", Build: buildE1},
	{Name: "destijl", Build: buildDeStijl},
	{Name: "e2", Build: buildE2},
	{Name: "e3", Build: buildE3},
}

// All returns the built-in scenes in their canonical render order.
func All() []Scene {
	return all
}

// Lookup returns the built-in scene with the given name.
func Lookup(name string) (Scene, bool) {
	for _, s := range all {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}

// Render builds the scene for the given size and draws it onto a
// fresh canvas with the given background.
func Render(s Scene, size int, background raster.Color) (*raster.Canvas, error) {
	c, err := raster.NewCanvas(size, size, background)
	if err != nil {
		return nil, err
	}

	prims := s.Build(size)
	raster.Logger().Info("rendering scene", "scene", s.Name, "size", size, "primitives", len(prims))
	for i, p := range prims {
		if err := raster.Draw(c, p); err != nil {
			return nil, fmt.Errorf("scene %s: primitive %d: %w", s.Name, i, err)
		}
	}
	return c, nil
}
