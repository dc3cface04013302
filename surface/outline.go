package surface

import (
	"errors"

	"github.com/isoroute/isoroute/bridges"
	"github.com/isoroute/isoroute/geom"
)

// CutOutline returns the outline cut with bridge tabs inserted, plus the
// index of each bridge's first vertex (the tool lifts between index i and
// i+1). Too few hosting segments degrades to fewer bridges with a
// warning; none at all leaves the outline unbridged.
func (s *Surface) CutOutline(outline geom.Ring, bridgeCount int, bridgeWidth float64) (geom.DirectedPath, []int, error) {
	if bridgeCount <= 0 {
		return geom.DirectedPath{Line: outline.Clone(), Reversible: true}, nil, nil
	}
	ring, starts, missed, err := bridges.Make(outline, bridgeCount, bridgeWidth)
	if err != nil {
		if errors.Is(err, bridges.ErrNoBridges) {
			s.warn(WarnNoBridges, "outline too short for any bridge of width %g", bridgeWidth)

			return geom.DirectedPath{Line: outline.Clone(), Reversible: true}, nil, nil
		}

		return geom.DirectedPath{}, nil, err
	}
	if missed > 0 {
		s.warn(WarnNoBridges, "placed %d of %d requested bridges", bridgeCount-missed, bridgeCount)
	}

	return geom.DirectedPath{Line: ring, Reversible: true}, starts, nil
}
