package core

import (
	"fmt"
	"image/color"
)

// Color identifies a palette entry for a canvas fill.
// Backends resolve it to a terminal style or an RGBA value.
type Color uint8

// Palette entries used by the games.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed    // rgb(200,72,72)
	ColorOrange // rgb(198,107,59)
	ColorAmber  // rgb(180,122,49)
	ColorOlive  // rgb(162,161,42)
	ColorGreen  // rgb(71,160,72)
	ColorBlue   // rgb(66,72,200)
	ColorGrass  // rgb(158,206,69)
	ColorMeadow // rgb(170,215,81)
	ColorGray
)

var palette = map[Color]color.RGBA{
	ColorDefault: {R: 255, G: 255, B: 255, A: 255},
	ColorBlack:   {R: 0, G: 0, B: 0, A: 255},
	ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorRed:     {R: 200, G: 72, B: 72, A: 255},
	ColorOrange:  {R: 198, G: 107, B: 59, A: 255},
	ColorAmber:   {R: 180, G: 122, B: 49, A: 255},
	ColorOlive:   {R: 162, G: 161, B: 42, A: 255},
	ColorGreen:   {R: 71, G: 160, B: 72, A: 255},
	ColorBlue:    {R: 66, G: 72, B: 200, A: 255},
	ColorGrass:   {R: 158, G: 206, B: 69, A: 255},
	ColorMeadow:  {R: 170, G: 215, B: 81, A: 255},
	ColorGray:    {R: 128, G: 128, B: 128, A: 255},
}

var colorNames = map[string]Color{
	"black":  ColorBlack,
	"white":  ColorWhite,
	"red":    ColorRed,
	"orange": ColorOrange,
	"amber":  ColorAmber,
	"olive":  ColorOlive,
	"green":  ColorGreen,
	"blue":   ColorBlue,
	"grass":  ColorGrass,
	"meadow": ColorMeadow,
	"gray":   ColorGray,
}

// RGBA returns the palette value for the color.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}

// ParseColor resolves a palette name as used in config files.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
