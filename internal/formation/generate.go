package formation

import (
	"math"
	"math/rand"
)

var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Generate produces exactly count target points for shape, all within
// Euclidean distance radius of the origin. count < 1 is clamped to 1.
//
// Generation is deterministic: shapes that need randomness seed their own
// rand.Rand from (shape, count), so repeated calls with the same arguments
// yield identical point sets and particle target indices stay stable.
func Generate(shape Shape, count int, radius float64) []Point {
	if count < 1 {
		count = 1
	}
	pts := make([]Point, count)
	rng := rand.New(rand.NewSource(seed(shape, count)))

	switch shape {
	case Sphere:
		genSphere(pts, radius)
	case Cube:
		genCube(pts, radius, rng)
	case Torus:
		genTorus(pts, radius)
	case Whirlpool:
		genWhirlpool(pts, radius)
	case Galaxy:
		genGalaxy(pts, radius, rng)
	case Ring:
		genRing(pts, radius)
	case Panel:
		genPanel(pts, radius)
	default:
		genScatter(pts, radius, rng)
	}
	return pts
}

// seed derives a stable per-(shape, count) seed, FNV-1a over the name.
func seed(shape Shape, count int) int64 {
	h := uint64(14695981039346656037)
	for i := 0; i < len(shape); i++ {
		h ^= uint64(shape[i])
		h *= 1099511628211
	}
	return int64(h) ^ int64(count)<<1
}

// genSphere distributes points on a Fibonacci sphere and projects it with a
// fixed tilt, avoiding the polar clustering a latitude/longitude grid gives.
func genSphere(pts []Point, radius float64) {
	n := float64(len(pts))
	const tilt = 0.45
	cosT, sinT := math.Cos(tilt), math.Sin(tilt)
	for i := range pts {
		y := 1 - 2*(float64(i)+0.5)/n
		r := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)
		x := math.Cos(theta) * r
		z := math.Sin(theta) * r
		pts[i] = Point{X: x * radius, Y: (y*cosT - z*sinT) * radius}
	}
}

// genCube places points uniformly on the faces of a cube and projects it
// isometrically. Faces are equal in area, so a round-robin face assignment
// is already area-proportional.
func genCube(pts []Point, radius float64, rng *rand.Rand) {
	half := radius / math.Sqrt(3)
	const ry, rx = 0.72, 0.52
	cy, sy := math.Cos(ry), math.Sin(ry)
	cx, sx := math.Cos(rx), math.Sin(rx)
	for i := range pts {
		u := (rng.Float64()*2 - 1) * half
		v := (rng.Float64()*2 - 1) * half
		var x, y, z float64
		switch i % 6 {
		case 0:
			x, y, z = half, u, v
		case 1:
			x, y, z = -half, u, v
		case 2:
			x, y, z = u, half, v
		case 3:
			x, y, z = u, -half, v
		case 4:
			x, y, z = u, v, half
		default:
			x, y, z = u, v, -half
		}
		// rotate about y, then x, then drop z
		x, z = x*cy+z*sy, -x*sy+z*cy
		y, z = y*cx-z*sx, y*sx+z*cx
		_ = z
		pts[i] = Point{X: x, Y: y}
	}
}

// genTorus sweeps two independent angles: the major angle walks the ring
// once while the minor angle winds irrationally, so the tube surface fills
// evenly at any count.
func genTorus(pts []Point, radius float64) {
	n := float64(len(pts))
	major := radius * 0.66
	minor := radius * 0.30
	const tilt = 1.0
	cosT, sinT := math.Cos(tilt), math.Sin(tilt)
	for i := range pts {
		u := 2 * math.Pi * float64(i) / n
		v := goldenAngle * float64(i) * 4
		x := (major + minor*math.Cos(v)) * math.Cos(u)
		y := (major + minor*math.Cos(v)) * math.Sin(u)
		z := minor * math.Sin(v)
		pts[i] = Point{X: x, Y: y*cosT - z*sinT}
	}
}

// genWhirlpool is a logarithmic spiral: radius grows linearly with index
// while the angle grows with the log of the radius.
func genWhirlpool(pts []Point, radius float64) {
	n := float64(len(pts))
	const turns = 2.6
	norm := math.Log1p(9)
	for i := range pts {
		t := (float64(i) + 0.5) / n
		r := radius * t
		theta := 2 * math.Pi * turns * math.Log1p(9*t) / norm
		pts[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
}

// genGalaxy builds several spiral arms with bounded scatter for texture.
func genGalaxy(pts []Point, radius float64, rng *rand.Rand) {
	const arms = 3
	const twist = 2 * math.Pi * 0.85
	perArm := (len(pts) + arms - 1) / arms
	for i := range pts {
		arm := i % arms
		t := (float64(i/arms) + 0.5) / float64(perArm)
		r := radius * 0.9 * math.Sqrt(t)
		theta := 2*math.Pi*float64(arm)/arms + t*twist
		theta += (rng.Float64() - 0.5) * 0.45 * (1 - 0.5*t)
		r *= 1 + (rng.Float64()-0.5)*0.18
		if r > radius {
			r = radius
		}
		pts[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
}

func genRing(pts []Point, radius float64) {
	n := float64(len(pts))
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / n
		pts[i] = Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
}

// genPanel lays a row/column lattice approximating a square aspect. The
// lattice box is inscribed so corner points stay inside the radius.
func genPanel(pts []Point, radius float64) {
	n := len(pts)
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	half := radius / math.Sqrt2
	for i := range pts {
		col, row := i%cols, i/cols
		x, y := 0.0, 0.0
		if cols > 1 {
			x = -half + 2*half*float64(col)/float64(cols-1)
		}
		if rows > 1 {
			y = -half + 2*half*float64(row)/float64(rows-1)
		}
		pts[i] = Point{X: x, Y: y}
	}
}

func genScatter(pts []Point, radius float64, rng *rand.Rand) {
	for i := range pts {
		r := radius * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		pts[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
}
