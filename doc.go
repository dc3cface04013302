// Package isoroute turns PCB artwork — copper trace polygons, board
// outlines, and drilled hole centers — into ordered CNC isolation-milling
// tool paths.
//
// What lives where:
//
//	geom/       — points, line strings, rings, polygons; robust 2D predicates
//	boolops/    — union / intersection / difference / buffer on polygons,
//	              backed by an integer-coordinate clipping engine
//	voronoi/    — maximal-extent isolation regions on the Voronoi diagram
//	              of the conductor edges
//	segmentize/ — crossing/T-junction splitting and near-point merging
//	eulerian/   — minimum trail cover of a mixed multigraph of cuts
//	backtrack/  — doubled-segment planning that trades milling time for
//	              fewer rapid moves
//	trimpaths/  — removal of backtrack segments made redundant by trimming
//	segtree/    — static segment intersection tree
//	pathfind/   — A* routing of non-cutting moves through keep-in/keep-out
//	              free space
//	tsp/        — nearest-neighbour and 2-opt ordering of finished paths
//	bridges/    — outline tab insertion so boards stay attached
//	dsu/, scc/  — union-find and strongly connected components helpers
//	surface/    — the per-layer orchestrator gluing all of the above
//
// The pipeline per layer: import → (optional) voronoi partition → offset
// rings → segmentize → merge near points → Eulerian trails → backtrack →
// trim → tour-optimise → hand ordered reversible line strings to a G-code
// emitter. Everything is single-threaded and deterministic; distinct layers
// may be planned concurrently by the caller.
package isoroute
