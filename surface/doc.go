// Package surface orchestrates the per-layer milling pipeline: it owns
// the conductor geometry imported for one board layer and turns it into
// ordered tool paths for the G-code emitter.
//
// The flow for an isolation layer:
//
//	render (importer) → voronoi partition → per-conductor offset rings →
//	attach rings into tool paths → segmentize → Eulerian trails →
//	backtrack planning → trim → (caller) OptimiseOrder
//
// Outline layers go through CutOutline (tab insertion), drill layers
// through MillHoles (plunge or circular milling per hole).
//
// Diagnostics the pipeline can continue past — self-intersecting input,
// clearance contention, preserved thermal reliefs, missing bridge slots —
// are collected as Warnings on the Surface rather than returned as
// errors; only importer failures and clipping-engine failures abort.
//
// A Surface is single-threaded: it shares no state with other Surfaces,
// so the caller may process different layers (front / back / outline /
// drill) concurrently, one Surface each.
package surface
