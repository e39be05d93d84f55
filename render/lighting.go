package render

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// SpecularExponent is the shininess used for the specular term.
const SpecularExponent = 4

// Lighting holds the constants of the local illumination model: one ambient
// light, one point light and the surface reflectivity per colour channel.
// Colours are in the 0-255 range; reflectivities are in the 0-1 range.
type Lighting struct {
	View       f64.Vec3
	Ambient    f64.Vec3
	LightPos   f64.Vec3
	LightColor f64.Vec3
	AReflect   f64.Vec3
	DReflect   f64.Vec3
	SReflect   f64.Vec3
}

// DefaultLighting returns the fixed constants every frame is rendered with.
func DefaultLighting() Lighting {
	return Lighting{
		View:       f64.Vec3{0, 0, 1},
		Ambient:    f64.Vec3{50, 50, 50},
		LightPos:   f64.Vec3{0.5, 0.75, 1},
		LightColor: f64.Vec3{0, 255, 255},
		AReflect:   f64.Vec3{0.1, 0.1, 0.1},
		DReflect:   f64.Vec3{0.5, 0.5, 0.5},
		SReflect:   f64.Vec3{0.5, 0.5, 0.5},
	}
}

// Shade returns the flat colour of a surface with the given normal. The
// normal does not need to be normalized.
func (l Lighting) Shade(normal f64.Vec3) color.RGBA {
	n := normalize(normal)
	light := normalize(l.LightPos)
	view := normalize(l.View)

	nl := dot(n, light)
	diffuse := math.Max(nl, 0)

	// reflection of the light direction about the normal
	var r f64.Vec3
	for i := range r {
		r[i] = 2*n[i]*nl - light[i]
	}
	var specular float64
	if nl > 0 {
		specular = math.Pow(math.Max(dot(r, view), 0), SpecularExponent)
	}

	var c [3]uint8
	for i := range c {
		v := l.Ambient[i]*l.AReflect[i] +
			l.LightColor[i]*l.DReflect[i]*diffuse +
			l.LightColor[i]*l.SReflect[i]*specular
		c[i] = clamp255(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

func clamp255(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func dot(a, b f64.Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normalize(v f64.Vec3) f64.Vec3 {
	m := math.Sqrt(dot(v, v))
	if m == 0 {
		return v
	}
	return f64.Vec3{v[0] / m, v[1] / m, v[2] / m}
}
