// Package tsp orders finished tool paths to minimise rapid-move time, as
// an open travelling-salesman tour over path endpoints.
//
// Distances are Chebyshev — max(|Δx|, |Δy|) — because a CNC rapid move
// runs both axes simultaneously and takes as long as the slower one.
//
// Two deterministic first-improvement strategies:
//
//   - NearestNeighbour: from the machine start point, repeatedly pick the
//     unvisited path whose nearer endpoint is closest, reversing the path
//     when its back endpoint was chosen (only reversible paths offer their
//     back). The reordering is committed only when it is strictly shorter
//     than the incoming order.
//   - TwoOpt: seeds with NearestNeighbour, then repeatedly reverses spans
//     of the ordering whenever reconnecting the two cut junctions
//     shortens the tour, until a full sweep finds no improvement. A span
//     is only reversed when every path inside it is reversible.
//
// Both strategies preserve the multiset of paths and never lengthen the
// tour.
//
// Complexity: NearestNeighbour O(n²); TwoOpt O(n²) per sweep.
package tsp
