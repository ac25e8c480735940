package engine

import "testing"

// rampMesh builds the imax x imax z = i+j ramp mesh used by several of the
// spec's end-to-end scenarios.
func rampMesh(imax int) (x, y, z []float64) {
	x = make([]float64, imax*imax)
	y = make([]float64, imax*imax)
	z = make([]float64, imax*imax)
	for j := 0; j < imax; j++ {
		for i := 0; i < imax; i++ {
			ij := i + j*imax
			x[ij] = float64(i)
			y[ij] = float64(j)
			z[ij] = float64(i + j)
		}
	}
	return x, y, z
}

func newSite(imax, jmax int, x, y, z []float64, z0, z1 float64) *Site {
	n := imax*jmax + imax + 1
	return &Site{
		IMax:   imax,
		JMax:   jmax,
		X:      x,
		Y:      y,
		Z:      z,
		Data:   make([]word, n),
		Saddle: make([]saddle, n),
		ZLevel: [2]float64{z0, z1},
	}
}

func TestLineMode3x3Ramp(t *testing.T) {
	x, y, z := rampMesh(3)
	s := newSite(3, 3, x, y, z, 2.0, 2.0)
	imax, jmax := 3, 3

	count := Init(s, nil, imax-1, jmax-1)
	if count == 0 {
		t.Fatal("expected at least one start marker")
	}

	px, py, kinds, partLens, err := Trace(s)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(partLens) != 1 {
		t.Fatalf("partLens = %v, want exactly one part", partLens)
	}
	// One point per cut edge: the level passes exactly through mesh point
	// (1, 1), which ends two cut edges, so that point appears twice.
	if partLens[0] != 4 {
		t.Fatalf("part has %d points, want 4", partLens[0])
	}

	wantX := []float64{2, 1, 1, 0}
	wantY := []float64{0, 1, 1, 2}
	for i := range wantX {
		if px[i] != wantX[i] || py[i] != wantY[i] {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, px[i], py[i], wantX[i], wantY[i])
		}
	}
	for _, k := range kinds {
		if k != KindChunkZone {
			t.Errorf("kind = %d, want KindChunkZone for a plain zone crossing", k)
		}
	}
}

func TestFilledMode3x3RampClosesPolygon(t *testing.T) {
	x, y, z := rampMesh(3)
	s := newSite(3, 3, x, y, z, 0.5, 1.5)

	Init(s, nil, 2, 2)
	px, py, _, partLens, err := Trace(s)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(partLens) == 0 {
		t.Fatal("expected at least one filled part")
	}
	total := 0
	for _, n := range partLens {
		total += n
	}
	if total != len(px) || total != len(py) {
		t.Fatalf("point count mismatch: total %d, len(px) %d, len(py) %d", total, len(px), len(py))
	}
	offset := 0
	for i, n := range partLens {
		first, last := offset, offset+n-1
		if px[first] != px[last] || py[first] != py[last] {
			t.Errorf("part %d not closed: first (%v, %v), last (%v, %v)", i, px[first], py[first], px[last], py[last])
		}
		offset += n
	}
}

func TestSaddleTwoSegmentsDoNotCross(t *testing.T) {
	// z = [[1, 0], [0, 1]] in (i, j) order: z[i+j*2].
	x := []float64{0, 1, 0, 1}
	y := []float64{0, 0, 1, 1}
	z := []float64{1, 0, 0, 1}
	s := newSite(2, 2, x, y, z, 0.5, 0.5)

	Init(s, nil, 1, 1)
	_, _, _, partLens, err := Trace(s)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(partLens) != 2 {
		t.Fatalf("partLens = %v, want two disjoint segments at a saddle", partLens)
	}
	for _, n := range partLens {
		if n != 2 {
			t.Errorf("segment length = %d, want 2 (a single line segment)", n)
		}
	}
}

// concentricMesh builds an imax x imax mesh whose value is the squared
// distance from the grid's centre point, so a band between two levels
// forms a ring (annulus) around a low-valued hole at the centre.
func concentricMesh(imax int) (x, y, z []float64) {
	x = make([]float64, imax*imax)
	y = make([]float64, imax*imax)
	z = make([]float64, imax*imax)
	c := float64(imax-1) / 2
	for j := 0; j < imax; j++ {
		for i := 0; i < imax; i++ {
			ij := i + j*imax
			x[ij] = float64(i)
			y[ij] = float64(j)
			di, dj := float64(i)-c, float64(j)-c
			z[ij] = di*di + dj*dj
		}
	}
	return x, y, z
}

func TestAnnulusHoleJoinedBySlit(t *testing.T) {
	const imax = 5
	x, y, z := concentricMesh(imax)
	// Centre point (value 0) falls below z0; the four corners and their
	// neighbours (values 4, 5, 8) fall above z1; the ring of points at
	// distance-squared 1 and 2 forms the between-levels band.
	s := newSite(imax, imax, x, y, z, 0.5, 3.5)

	Init(s, nil, imax-1, imax-1)
	_, _, kinds, partLens, err := Trace(s)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(partLens) != 1 {
		t.Fatalf("partLens = %v, want a single simply-connected part joining the hole via a slit", partLens)
	}

	hasSlit := false
	for _, k := range kinds {
		if k >= KindSlitUp {
			hasSlit = true
			break
		}
	}
	if !hasSlit {
		t.Error("expected at least one slit-stroke point (kind >= KindSlitUp) joining the inner hole to the outer boundary")
	}
}

func TestChunkingIntroducesSeamVertices(t *testing.T) {
	const imax = 5
	x, y, z := rampMesh(imax)
	s := newSite(imax, imax, x, y, z, 1.5, 3.5)

	Init(s, nil, 2, 2)
	px, py, _, partLens, err := Trace(s)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(partLens) == 0 {
		t.Fatal("expected at least one chunked part")
	}

	seamFound := false
	for i := range px {
		if px[i] == 2 || py[i] == 2 {
			seamFound = true
			break
		}
	}
	if !seamFound {
		t.Error("chunk boundary at i=2/j=2 should appear as a seam vertex on at least one emitted part")
	}
}

func TestMaskRemovesTouchingZones(t *testing.T) {
	imax, jmax := 4, 4
	x, y, z := rampMesh(4)
	mask := make([]bool, imax*jmax)
	mask[1+1*imax] = true // interior point (1,1)

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
			if mask[ij] {
				reg[ij] = 0
				reg[ij+1] = 0
				reg[ij+imax] = 0
				reg[ij+imax+1] = 0
			}
		}
	}

	s := newSite(imax, jmax, x, y, z, 1.5, 1.5)
	Init(s, reg, imax-1, jmax-1)

	px, py, _, _, err := Trace(s)
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	for i := range px {
		if px[i] == 1 && py[i] == 1 {
			t.Errorf("emitted vertex at masked point (1, 1)")
		}
	}
}
