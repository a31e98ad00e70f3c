package preview

import (
	"image"
	"image/color"
	"math"
)

// vertex is a projected point: screen x, y and view depth
type vertex [3]float64

// edgeAt intersects the scanline y with the edge a-b
func edgeAt(a, b vertex, y float64) (x, z float64, ok bool) {
	if a[1] == b[1] || y < a[1] || y > b[1] {
		return 0, 0, false
	}
	t := (y - a[1]) / (b[1] - a[1])
	return a[0] + t*(b[0]-a[0]), a[2] + t*(b[2]-a[2]), true
}

// fillTriangle rasterizes a triangle with depth testing against zbuffer
func fillTriangle(img *image.RGBA, zbuffer []float64, v [3]vertex, col color.RGBA) {
	// sort by screen y
	if v[0][1] > v[1][1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1][1] > v[2][1] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0][1] > v[1][1] {
		v[0], v[1] = v[1], v[0]
	}

	for _, p := range v {
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return
			}
		}
	}

	bounds := img.Bounds()
	width := bounds.Dx()

	// clamp in float space, the int conversion of an out of range value is
	// implementation defined
	top := math.Max(0, math.Ceil(v[0][1]))
	bottom := math.Min(float64(bounds.Dy()-1), math.Floor(v[2][1]))
	if top > bottom {
		return
	}
	for y := int(top); y <= int(bottom); y++ {
		fy := float64(y)

		var xs, zs [2]float64
		var ok bool
		if xs[0], zs[0], ok = edgeAt(v[0], v[2], fy); !ok {
			continue
		}
		short := [2]vertex{v[0], v[1]}
		if fy >= v[1][1] && v[1][1] != v[2][1] {
			short = [2]vertex{v[1], v[2]}
		}
		if xs[1], zs[1], ok = edgeAt(short[0], short[1], fy); !ok {
			continue
		}
		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
			zs[0], zs[1] = zs[1], zs[0]
		}

		left := math.Max(0, math.Ceil(xs[0]))
		right := math.Min(float64(width-1), math.Floor(xs[1]))
		if left > right {
			continue
		}
		for x := int(left); x <= int(right); x++ {
			t := 0.0
			if xs[1] != xs[0] {
				t = (float64(x) - xs[0]) / (xs[1] - xs[0])
			}
			z := zs[0] + t*(zs[1]-zs[0])

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}
