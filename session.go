package contour

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/quadcontour/trace/internal/engine"
	"github.com/quadcontour/trace/internal/reorder"
)

// Session binds one Mesh to the state grid and chunking parameters it was
// prepared with. A Session may be traced multiple times, at different
// levels, without re-validating or re-chunking the mesh.
type Session struct {
	mesh Mesh
	opts sessionOptions

	reg                    []byte
	iChunkSize, jChunkSize int

	site   engine.Site
	closed bool

	log *slog.Logger
}

// NewSession validates the imax x jmax mesh described by x, y, z (each of
// length imax*jmax, ij = i + j*imax) and prepares it for tracing. In line
// mode (a single level passed to Trace) chunking is always disabled,
// regardless of WithChunkSize.
func NewSession(imax, jmax int, x, y, z []float64, opts ...SessionOption) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := Mesh{IMax: imax, JMax: jmax, X: x, Y: y, Z: z, Mask: o.mask}
	if err := m.validate(); err != nil {
		return nil, err
	}

	iChunk := o.iChunkSize
	if iChunk <= 0 || iChunk >= imax-1 {
		iChunk = imax - 1
	}
	jChunk := o.jChunkSize
	if jChunk <= 0 || jChunk >= jmax-1 {
		jChunk = jmax - 1
	}

	var reg []byte
	if o.mask != nil {
		reg = m.region()
	}

	gridLen := imax*jmax + imax + 1
	s := &Session{
		mesh:       m,
		opts:       o,
		reg:        reg,
		iChunkSize: iChunk,
		jChunkSize: jChunk,
		site: engine.Site{
			IMax:   imax,
			JMax:   jmax,
			X:      x,
			Y:      y,
			Z:      z,
			Data:   make([]uint16, gridLen),
			Saddle: make([]byte, gridLen),
		},
		log: Logger(),
	}
	return s, nil
}

// Result is the output of one Trace call, laid out according to the
// session's LineType. Exactly one pair of fields is populated, matching
// spec.md §6's "Separate"/"SeparateCode"/"ChunkCombinedCode"/
// "ChunkCombinedOffset" layouts:
//
//   - LineTypeSeparate, LineTypeSeparateCode: Parts.
//   - LineTypeChunkCombinedCode: X, Y, Codes.
//   - LineTypeChunkCombinedOffset: X, Y, Offsets.
type Result struct {
	// Parts holds one entry per polygon/curve part. Populated for
	// LineTypeSeparate (Codes left nil on each part) and
	// LineTypeSeparateCode (Codes filled in).
	Parts []reorder.Part

	// X, Y hold every part's vertices concatenated into one pair of
	// arrays. Populated for LineTypeChunkCombinedCode and
	// LineTypeChunkCombinedOffset.
	X, Y []float64

	// Codes holds one path code per vertex in X/Y; chunk/part boundaries
	// are distinguished only by MOVETO codes. Populated for
	// LineTypeChunkCombinedCode.
	Codes []byte

	// Offsets holds the starting index of each part within X/Y, one
	// entry per part. Populated for LineTypeChunkCombinedOffset.
	Offsets []int
}

// Trace runs the contour algorithm at the given levels: a single level
// traces iso-lines, two ascending levels trace filled polygons. The
// output is laid out according to the session's LineType; see Result.
func (s *Session) Trace(levels ...float64) (Result, error) {
	if s.closed {
		return Result{}, ErrSessionClosed
	}

	z0, z1, err := resolveLevels(levels)
	if err != nil {
		return Result{}, err
	}
	s.site.ZLevel[0] = z0
	s.site.ZLevel[1] = z1

	nlevels := 1
	iChunk, jChunk := s.iChunkSize, s.jChunkSize
	if s.site.TwoLevels() {
		nlevels = 2
	} else {
		// Line mode never chunks: a chunk boundary would fabricate
		// mesh-boundary edges that don't exist for a single level.
		iChunk, jChunk = s.mesh.IMax-1, s.mesh.JMax-1
	}

	engine.Init(&s.site, s.reg, iChunk, jChunk)

	x, y, kinds, partLens, err := engine.Trace(&s.site)
	if err != nil {
		return Result{}, &InvariantError{Op: "trace", Msg: err.Error()}
	}

	parts := make([]reorder.Part, 0, len(partLens))
	offset := 0
	for _, n := range partLens {
		part, err := reorder.Reorder(x[offset:offset+n], y[offset:offset+n], kinds[offset:offset+n], nlevels)
		if err != nil {
			return Result{}, &InvariantError{Op: "reorder", Msg: err.Error()}
		}
		parts = append(parts, part)
		offset += n
	}
	s.log.Debug("trace complete", "levels", levels, "parts", len(parts), "points", offset)
	return layout(parts, s.opts.lineType), nil
}

// layout transforms the reorder step's per-part output into the shape the
// session's LineType calls for.
func layout(parts []reorder.Part, lt LineType) Result {
	switch lt {
	case LineTypeSeparate:
		out := make([]reorder.Part, len(parts))
		for i, p := range parts {
			out[i] = reorder.Part{X: p.X, Y: p.Y}
		}
		return Result{Parts: out}

	case LineTypeChunkCombinedCode:
		var x, y []float64
		var codes []byte
		for _, p := range parts {
			x = append(x, p.X...)
			y = append(y, p.Y...)
			codes = append(codes, p.Codes...)
		}
		return Result{X: x, Y: y, Codes: codes}

	case LineTypeChunkCombinedOffset:
		var x, y []float64
		offsets := make([]int, 0, len(parts))
		for _, p := range parts {
			offsets = append(offsets, len(x))
			x = append(x, p.X...)
			y = append(y, p.Y...)
		}
		return Result{X: x, Y: y, Offsets: offsets}

	default: // LineTypeSeparateCode
		return Result{Parts: parts}
	}
}

// Close releases the session's state grid. Further calls to Trace return
// ErrSessionClosed. Close is idempotent.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.site = engine.Site{}
	s.reg = nil
	return nil
}

func resolveLevels(levels []float64) (z0, z1 float64, err error) {
	switch len(levels) {
	case 1:
		z0 = levels[0]
		z1 = levels[0]
	case 2:
		z0, z1 = levels[0], levels[1]
		if z1 < z0 {
			return 0, 0, ErrLevelOrder
		}
	default:
		return 0, 0, fmt.Errorf("contour: Trace accepts one level (line mode) or two ascending levels (filled mode), got %d", len(levels))
	}
	for _, v := range []float64{z0, z1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, ErrNonFiniteLevel
		}
	}
	return z0, z1, nil
}
