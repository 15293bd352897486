package engine

import (
	"strings"

	"github.com/san-kum/swarmfield/internal/formation"
)

// intentTable is the fixed mapping from host intent labels to formations.
var intentTable = map[string]formation.Shape{
	"greeting":   formation.Sphere,
	"calm":       formation.Sphere,
	"technical":  formation.Cube,
	"analytical": formation.Cube,
	"creative":   formation.Torus,
	"curious":    formation.Whirlpool,
	"searching":  formation.Whirlpool,
	"excited":    formation.Galaxy,
	"celebrate":  formation.Galaxy,
	"focused":    formation.Ring,
	"resting":    formation.Panel,
	"idle":       formation.Panel,
	"neutral":    formation.Scatter,
}

// ShapeForIntent resolves a host intent label. Literal shape names are
// accepted too; anything unknown maps to Scatter with ok = false.
func ShapeForIntent(label string) (formation.Shape, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if shape, ok := intentTable[key]; ok {
		return shape, true
	}
	return formation.Parse(key)
}
