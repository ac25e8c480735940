package engine

import "errors"

// ErrPass2Overflow is returned by Trace when the second pass produces more
// points than the first pass sized buffers for. It indicates the state
// grid was mutated between passes, which should never happen through the
// public API.
var ErrPass2Overflow = errors.New("engine: pass 2 produced more points than pass 1 counted")

// errNegativePass2 indicates CurveTracer returned a negative count on pass
// 2, which the algorithm never does (negative counts are a pass-1-only
// signal that a curve will be spliced with another).
var errNegativePass2 = errors.New("engine: curve tracer returned a negative count on pass 2")

// Trace runs both passes of the algorithm over an already-Init'd Site and
// returns the concatenated coordinate/kind buffers plus the point count of
// each output part (one part per curve, open or closed).
func Trace(s *Site) (x, y []float64, kinds []int16, partLens []int, err error) {
	var nparts, ntotal int
	for {
		n := CurveTracer(s, false)
		if n == 0 {
			break
		}
		if n > 0 {
			nparts++
			ntotal += n
		} else {
			ntotal -= n
		}
	}

	x = make([]float64, ntotal)
	y = make([]float64, ntotal)
	kinds = make([]int16, ntotal)
	partLens = make([]int, 0, nparts)

	s.XCP, s.YCP, s.KCP = x, y, kinds
	offset := 0
	for {
		n := CurveTracer(s, true)
		if n == 0 {
			break
		}
		if n < 0 {
			return nil, nil, nil, nil, errNegativePass2
		}
		if offset+n > ntotal {
			return nil, nil, nil, nil, ErrPass2Overflow
		}
		partLens = append(partLens, n)
		offset += n
		s.XCP = x[offset:]
		s.YCP = y[offset:]
		s.KCP = kinds[offset:]
	}
	s.XCP, s.YCP, s.KCP = nil, nil, nil

	return x, y, kinds, partLens, nil
}
