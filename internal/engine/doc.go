// Package engine runs the particle swarm: one explicit handle, one
// explicit tick.
//
// The host creates an [Engine] with [New] and calls [Engine.Tick] once per
// frame with the measured frame time. Everything else (morph requests,
// pulses, mood changes, viewport resizes) arrives through fire-and-forget
// bridge methods that enqueue commands; the queue drains exactly once at
// the start of the next tick, so state transitions are atomic with respect
// to the render loop and bridge calls may come from any goroutine.
//
// Each tick: drain commands, advance the morph transition, integrate every
// particle toward its blended target, paint through the [render.Surface],
// then let the performance governor sample the frame time and possibly
// select a cheaper or richer tier for the next tick.
//
// There is no internal threading and no global instance; tests drive Tick
// directly with synthetic dt values and a throwaway surface.
package engine
