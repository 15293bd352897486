package morph

// Curve names an easing function.
type Curve string

const (
	CurveLinear Curve = "linear"
	CurveSmooth Curve = "smooth" // smoothstep ease-in-out
	CurveCubic  Curve = "cubic"  // cubic ease-in-out
)

// ParseCurve resolves a curve name, defaulting to CurveSmooth.
func ParseCurve(name string) Curve {
	switch Curve(name) {
	case CurveLinear, CurveSmooth, CurveCubic:
		return Curve(name)
	}
	return CurveSmooth
}

// Ease maps raw progress t in [0,1] through the named curve. Inputs outside
// the unit interval are clamped.
func Ease(c Curve, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case CurveLinear:
		return t
	case CurveCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		return t * t * (3 - 2*t)
	}
}
