package contour

// SessionOption configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Unchunked, unmasked
//	s, err := contour.NewSession(imax, jmax, x, y, z)
//
//	// Masked, chunked for filled-mode output
//	s, err := contour.NewSession(imax, jmax, x, y, z,
//		contour.WithMask(mask),
//		contour.WithChunkSize(8, 8),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	mask                   []bool
	iChunkSize, jChunkSize int
	lineType               LineType
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		mask:       nil, // no masked points
		iChunkSize: 0,   // unchunked (forced to imax-1 at session creation)
		jChunkSize: 0,   // unchunked (forced to jmax-1 at session creation)
		lineType:   LineTypeSeparateCode,
	}
}

// WithMask marks points whose four surrounding zones should not exist.
// mask must have length imax*jmax. Pass nil (the default) for no mask.
func WithMask(mask []bool) SessionOption {
	return func(o *sessionOptions) {
		o.mask = mask
	}
}

// WithChunkSize bounds each filled-mode output polygon's footprint to at
// most iChunkSize x jChunkSize zones, forcing chunk-boundary edges to act
// as mesh boundaries. Values <= 0 or >= the corresponding dimension-1 mean
// unchunked. Ignored in line mode.
func WithChunkSize(iChunkSize, jChunkSize int) SessionOption {
	return func(o *sessionOptions) {
		o.iChunkSize = iChunkSize
		o.jChunkSize = jChunkSize
	}
}

// WithLineType selects the shape of the Result returned by Trace; see
// Result and LineType for the four layouts.
func WithLineType(t LineType) SessionOption {
	return func(o *sessionOptions) {
		o.lineType = t
	}
}
