// Package engine implements the edge-based, two-pass contour tracer: the
// state grid, the zone-crosser/edge-walker/slit-cutter traversal routines,
// and the curve driver that alternates them until every start marker has
// been consumed.
package engine

// word is the packed per-point state, one per mesh point plus a guard row.
// The bit layout is load-bearing: the initializer and every traversal
// routine address these bits directly, so values must not be renumbered.
type word = uint16

const (
	zValue   word = 0x0003 // class 0/1/2: below z0 / between / above z1
	zoneEx   word = 0x0004 // zone anchored here exists
	iBndy    word = 0x0008 // the i-edge leaving this point is a boundary
	jBndy    word = 0x0010 // the j-edge leaving this point is a boundary
	i0Start  word = 0x0020 // candidate start, i-edge, zone to the left
	i1Start  word = 0x0040 // candidate start, i-edge, zone to the right
	j0Start  word = 0x0080 // candidate start, j-edge, zone below
	j1Start  word = 0x0100 // candidate start, j-edge, zone above
	startRow word = 0x0200 // next unexamined start row (pass-2 acceleration)
	slitUpB  word = 0x0400 // this i-edge is the top of a slit
	slitDnB  word = 0x0800 // this i-edge is the bottom of a slit
	openEnd  word = 0x1000 // line-mode: start is the boundary end of an open curve
	allDone  word = 0x2000 // sentinel: final start point
	slitDnV  word = 0x4000 // pass-2: this slit downstroke has been visited

	anyStart = i0Start | i1Start | j0Start | j1Start
)

// saddle is one byte per zone, caching the tie-break decision at a saddle.
type saddle = byte

const (
	saddleSet saddle = 0x01 // zone's saddle data has been computed
	saddleGT0 saddle = 0x02 // centre value is above zlevel[0]
	saddleGT1 saddle = 0x04 // centre value is above zlevel[1]
)

// Point/edge output kinds, chosen to be compatible with the host's
// path-rendering convention (see the reorder package).
const (
	KindChunkZone  int16 = 101 // ordinary zone crossing
	KindEdgeCorner int16 = 102 // boundary corner walked with fill on the left
	KindEdgeCut2   int16 = 103 // interpolated cut at the start of a boundary walk
	KindSlitUp     int16 = 104 // point on a slit upstroke
	KindSlitDown   int16 = 105 // point on a slit downstroke

	// KindStartSlit, added to any of the kinds above, marks the point where
	// a slit segment begins inside the same output part.
	KindStartSlit int16 = 16
)
