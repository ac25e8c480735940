package contour

import "testing"

func rampMesh(imax, jmax int) (x, y, z []float64) {
	x = make([]float64, imax*jmax)
	y = make([]float64, imax*jmax)
	z = make([]float64, imax*jmax)
	for j := 0; j < jmax; j++ {
		for i := 0; i < imax; i++ {
			ij := i + j*imax
			x[ij] = float64(i)
			y[ij] = float64(j)
			z[ij] = float64(i + j)
		}
	}
	return x, y, z
}

func TestNewSessionDefaults(t *testing.T) {
	x, y, z := rampMesh(3, 3)
	s, err := NewSession(3, 3, x, y, z)
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer s.Close()

	if s.opts.mask != nil {
		t.Error("default mask should be nil")
	}
	if s.opts.lineType != LineTypeSeparateCode {
		t.Errorf("default lineType = %v, want LineTypeSeparateCode", s.opts.lineType)
	}
	if s.iChunkSize != 2 || s.jChunkSize != 2 {
		t.Errorf("default chunk size = (%d, %d), want (2, 2) for a 3x3 mesh", s.iChunkSize, s.jChunkSize)
	}
}

func TestNewSessionWithMask(t *testing.T) {
	x, y, z := rampMesh(4, 4)
	mask := make([]bool, 16)
	mask[5] = true // interior point (1,1)

	s, err := NewSession(4, 4, x, y, z, WithMask(mask))
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer s.Close()

	if s.reg == nil {
		t.Fatal("region should be computed when a mask is supplied")
	}
}

func TestNewSessionWithChunkSize(t *testing.T) {
	x, y, z := rampMesh(5, 5)
	s, err := NewSession(5, 5, x, y, z, WithChunkSize(2, 2))
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer s.Close()

	if s.iChunkSize != 2 || s.jChunkSize != 2 {
		t.Errorf("chunk size = (%d, %d), want (2, 2)", s.iChunkSize, s.jChunkSize)
	}
}

func TestNewSessionChunkSizeClampedWhenTooLarge(t *testing.T) {
	x, y, z := rampMesh(5, 5)
	s, err := NewSession(5, 5, x, y, z, WithChunkSize(100, 0))
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer s.Close()

	if s.iChunkSize != 4 || s.jChunkSize != 4 {
		t.Errorf("chunk size = (%d, %d), want (4, 4) after clamping", s.iChunkSize, s.jChunkSize)
	}
}

func TestNewSessionRejectsSmallMesh(t *testing.T) {
	x, y, z := rampMesh(1, 5)
	if _, err := NewSession(1, 5, x, y, z); err == nil {
		t.Error("expected an error for imax < 2")
	}
}

func TestNewSessionRejectsMismatchedArrays(t *testing.T) {
	x, y, z := rampMesh(3, 3)
	if _, err := NewSession(3, 3, x[:5], y, z); err == nil {
		t.Error("expected an error for mismatched array lengths")
	}
}
