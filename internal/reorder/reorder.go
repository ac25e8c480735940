// Package reorder assembles the flat per-curve point/kind buffers produced
// by a trace pass into ordered polygon parts with MOVETO/LINETO/CLOSEPOLY
// path codes, splitting and rejoining at slit segments along the way.
package reorder

import (
	"errors"
	"fmt"
)

// Path codes, compatible with the host's path-rendering convention.
const (
	MoveTo    byte = 1
	LineTo    byte = 2
	ClosePoly byte = 79
)

// kindSlitUp mirrors engine.KindSlitUp: any kind at or above this value
// names a point on a slit stroke (up, down, or either with the
// start-of-segment offset added), and therefore begins a fresh segment.
const kindSlitUp = 104

// ErrTooManySegments is returned when a part's point/kind data implies more
// segments than a well-formed trace could ever produce, which signals
// corrupted input rather than a normal contour shape.
var ErrTooManySegments = errors.New("reorder: too many segments for part size")

// Part is one reordered polygon part: a flat (x, y) pair per vertex and a
// parallel path code.
type Part struct {
	X, Y  []float64
	Codes []byte
}

type segment struct {
	i0, i1 int
}

// Reorder reorders one trace part's points (x, y, kind, all length n) into
// its constituent subpaths. A vertex identical to the one emitted just before
// it in the same subpath is dropped. nlevels selects line mode (1) or filled
// mode (2); in filled mode every subpath is closed unconditionally.
func Reorder(x, y []float64, kind []int16, nlevels int) (Part, error) {
	n := len(x)
	maxSegs := n/2 + 1

	var segs []segment
	started := false
	start := 0
	for i := 0; i < n; i++ {
		if started {
			if kind[i] >= kindSlitUp || i == n-1 {
				segs = append(segs, segment{start, i})
				started = false
				if len(segs) == maxSegs {
					return Part{}, fmt.Errorf("%w: part has %d points", ErrTooManySegments, n)
				}
			}
		} else if kind[i] < kindSlitUp && i < n-1 {
			start = i
			started = true
		}
	}

	// Group segments into subpaths: two segments join when one's last
	// point coincides with another's first.
	subpath := make([]int, len(segs))
	for i := range subpath {
		subpath[i] = -1
	}
	nsp := 0
	for i, seg := range segs {
		if subpath[i] >= 0 {
			continue
		}
		subpath[i] = nsp
		nsp++
		if i == len(segs)-1 {
			continue
		}
		xend, yend := x[seg.i1], y[seg.i1]
		for j := i + 1; j < len(segs); j++ {
			if subpath[j] >= 0 {
				continue
			}
			if xend == x[segs[j].i0] && yend == y[segs[j].i0] {
				subpath[j] = subpath[i]
				xend, yend = x[segs[j].i1], y[segs[j].i1]
			}
		}
	}

	var outX, outY []float64
	var outC []byte
	for sp := 0; sp < nsp; sp++ {
		first := true
		kstart := len(outX)
		for si, seg := range segs {
			if subpath[si] != sp {
				continue
			}
			istart := seg.i0
			if !first {
				istart++ // skip duplicate join point
			}
			for i := istart; i <= seg.i1; i++ {
				if !first && x[i] == outX[len(outX)-1] && y[i] == outY[len(outY)-1] {
					continue // repeated vertex
				}
				outX = append(outX, x[i])
				outY = append(outY, y[i])
				if first {
					outC = append(outC, MoveTo)
				} else {
					outC = append(outC, LineTo)
				}
				first = false
			}
		}
		k := len(outX)
		if nlevels == 2 || (outX[kstart] == outX[k-1] && outY[kstart] == outY[k-1]) {
			outC[k-1] = ClosePoly
		}
	}

	return Part{X: outX, Y: outY, Codes: outC}, nil
}
