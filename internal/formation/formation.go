package formation

// Shape names a target formation.
type Shape string

const (
	Sphere    Shape = "sphere"
	Cube      Shape = "cube"
	Torus     Shape = "torus"
	Whirlpool Shape = "whirlpool"
	Galaxy    Shape = "galaxy"
	Ring      Shape = "ring"
	Panel     Shape = "panel"
	Scatter   Shape = "scatter"
)

// Point is a 2D target position in formation space, centered on the origin.
type Point struct {
	X, Y float64
}

// Shapes lists every supported shape in a stable order.
func Shapes() []Shape {
	return []Shape{Sphere, Cube, Torus, Whirlpool, Galaxy, Ring, Panel, Scatter}
}

// Parse resolves a shape name. Unknown names resolve to Scatter with
// ok = false; callers decide whether the substitution is worth reporting.
func Parse(name string) (Shape, bool) {
	switch Shape(name) {
	case Sphere, Cube, Torus, Whirlpool, Galaxy, Ring, Panel, Scatter:
		return Shape(name), true
	}
	return Scatter, false
}
