// Package formation generates named target point clouds for the particle
// engine.
//
// Each shape is a deterministic generator: the same (shape, count, radius)
// triple always produces the same ordered point set, so a particle's target
// index stays stable across morphs. Shapes that need randomness (cube faces,
// galaxy scatter, the neutral scatter cloud) draw from a rand.Rand seeded
// from the shape name and count, keeping per-call determinism.
//
//   - [Sphere]: golden-angle (Fibonacci) distribution on a tilted sphere
//   - [Cube]: six faces, uniform placement per face, isometric projection
//   - [Torus]: two independent angles, ring-of-rings surface
//   - [Whirlpool]: logarithmic spiral
//   - [Galaxy]: spiral arms with bounded scatter
//   - [Ring]: evenly spaced circle outline
//   - [Panel]: near-square resting lattice
//   - [Scatter]: uniform dissolve cloud
//
// Points are centered on the origin and bounded by the requested radius.
package formation
