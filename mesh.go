package contour

// Mesh holds the immutable inputs for one contour session: a structured
// imax x jmax logical grid of coordinates and scalar values, indexed
// ij = i + j*imax with i varying fastest.
type Mesh struct {
	IMax, JMax int
	X, Y, Z    []float64

	// Mask, if non-nil, must have length IMax*JMax. A true entry
	// invalidates all four zones touching that point.
	Mask []bool
}

func (m *Mesh) validate() error {
	if m.IMax < 2 {
		return &DimensionError{Name: "imax", Got: m.IMax}
	}
	if m.JMax < 2 {
		return &DimensionError{Name: "jmax", Got: m.JMax}
	}
	n := m.IMax * m.JMax
	if len(m.X) != n || len(m.Y) != n || len(m.Z) != n {
		return ErrArrayLengthMismatch
	}
	if m.Mask != nil && len(m.Mask) != n {
		return ErrArrayLengthMismatch
	}
	return nil
}

// region translates Mask into a per-zone existence byte array of length
// imax*(jmax+1)+1, matching the state grid's own sizing. A masked point
// invalidates all four zones that touch it.
//
// Rows and columns i==0 or j==0 are never valid zone anchors in this
// index scheme and are cleared unconditionally, whether or not any point
// is masked. region indexes Mask directly, so Mask must be non-nil;
// NewSession calls it only when a mask was supplied.
func (m *Mesh) region() []byte {
	imax, jmax := m.IMax, m.JMax
	reg := make([]byte, imax*jmax+imax+1)
	for ij := imax + 1; ij < imax*jmax; ij++ {
		reg[ij] = 1
	}

	ij := 0
	for j := 0; j < jmax; j++ {
		for i := 0; i < imax; i, ij = i+1, ij+1 {
			if i == 0 || j == 0 {
				reg[ij] = 0
			}
			if m.Mask[ij] {
				reg[ij] = 0
				reg[ij+1] = 0
				reg[ij+imax] = 0
				reg[ij+imax+1] = 0
			}
		}
	}
	for ; ij < len(reg); ij++ {
		reg[ij] = 0
	}
	return reg
}
