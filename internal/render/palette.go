package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Named colors shared by the window shell and the maze palette.
var (
	Elephant = color.RGBA{R: 92, G: 75, B: 81, A: 255}
	Blue     = color.RGBA{R: 140, G: 190, B: 178, A: 255}
	Cream    = color.RGBA{R: 242, G: 235, B: 191, A: 255}
	Orange   = color.RGBA{R: 243, G: 181, B: 98, A: 255}
	Red      = color.RGBA{R: 240, G: 96, B: 96, A: 255}
	White    = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

var namedColors = map[string]color.RGBA{
	"elephant": Elephant,
	"blue":     Blue,
	"cream":    Cream,
	"orange":   Orange,
	"red":      Red,
	"white":    White,
	"black":    Black,
}

// ColorNames lists the accepted color names in lexical order.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor resolves a case-insensitive color name.
func ParseColor(name string) (color.RGBA, error) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q (want one of %s)", name, strings.Join(ColorNames(), ", "))
	}
	return c, nil
}
