package utils

import (
	"fmt"
	"image/color"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
)

var colourRe = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

func ColourValidate(c string) bool {
	return colourRe.MatchString(c)
}

// ColourParse reads a #RRGGBBAA string. Invalid input yields transparent
// black; call ColourValidate first if that matters.
func ColourParse(s string) (c color.RGBA) {
	_, _ = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	return
}

// ColourVec4 converts a #RRGGBBAA string into normalised RGBA components,
// the form gl.ClearColor and vertex colours use.
func ColourVec4(s string) mgl32.Vec4 {
	c := ColourParse(s)
	return mgl32.Vec4{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
