package engine

// Init populates the state grid and saddle cache for one trace, and returns
// the number of candidate start markers found. It is a single sequential
// sweep over the mesh, classifying each point relative to the two levels,
// copying zone existence, marking boundary edges, and flagging the edges
// that may harbor the start of a curve.
//
// reg, when non-nil, holds zone existence (see Mesh.region in package
// contour); iChunkSize and jChunkSize are the (already-clamped) chunk
// dimensions, forced to the full mesh in line mode by the caller.
func Init(s *Site, reg []byte, iChunkSize, jChunkSize int) int {
	data := s.Data
	imax := s.IMax
	jmax := s.JMax
	ijmax := imax * jmax
	z := s.Z
	zlev0, zlev1 := s.ZLevel[0], s.ZLevel[1]
	twoLevels := zlev1 > zlev0

	count := 0
	started := false

	classify := func(v float64) word {
		if v > zlev0 {
			if twoLevels && v > zlev1 {
				return 2
			}
			return 1
		}
		return 0
	}

	data[0] = classify(z[0])

	jchunk := 0
	for j, ij := 0, 0; j < jmax; j++ {
		ichunk := 0
		iWasChunk := false
		for i := 0; i < imax; i, ij = i+1, ij+1 {
			// Transfer zonal existence for the point one row and one
			// column ahead, so this row's i/j boundary flags can be
			// computed from next-row existence already in hand.
			data[ij+imax+1] = 0
			if reg != nil {
				if reg[ij+imax+1] != 0 {
					data[ij+imax+1] = zoneEx
				}
			} else if i < imax-1 && j < jmax-1 {
				data[ij+imax+1] = zoneEx
			}

			if ij < imax {
				data[ij+1] = 0
			}
			if ij < ijmax-1 {
				data[ij+1] |= classify(z[ij+1])
			}

			ibndy := i == ichunk || (data[ij]&zoneEx) != (data[ij+1]&zoneEx)
			jbndy := j == jchunk || (data[ij]&zoneEx) != (data[ij+imax]&zoneEx)
			if ibndy {
				data[ij] |= iBndy
			}
			if jbndy {
				data[ij] |= jBndy
			}

			// i-edge start marks: only placed on cut i-edges, and only
			// when the fill on that side isn't already reachable via an
			// adjacent cut j-edge.
			if j > 0 {
				v0 := data[ij] & zValue
				vb := data[ij-imax] & zValue
				if v0 != vb {
					if ibndy {
						if data[ij]&zoneEx != 0 {
							data[ij] |= i0Start
							count++
						}
						if data[ij+1]&zoneEx != 0 {
							data[ij] |= i1Start
							count++
						}
					} else {
						va := data[ij-1] & zValue
						vc := data[ij+1] & zValue
						vd := data[ij-imax+1] & zValue
						if v0 != 1 && va != v0 && (vc != v0 || vd != v0) && data[ij]&zoneEx != 0 {
							data[ij] |= i0Start
							count++
						}
						if vb != 1 && va == vb && (vc == vb || vd == vb) && data[ij+1]&zoneEx != 0 {
							data[ij] |= i1Start
							count++
						}
					}
				}
			}

			// j-edge start marks: only placed on boundary j-edges.
			if i > 0 && jbndy {
				v0 := data[ij] & zValue
				vb := data[ij-1] & zValue
				if v0 != vb {
					if data[ij]&zoneEx != 0 {
						data[ij] |= j0Start
						count++
					}
					if data[ij+imax]&zoneEx != 0 {
						data[ij] |= j1Start
						count++
					}
				} else if twoLevels && v0 == 1 {
					if data[ij+imax]&zoneEx != 0 {
						if iWasChunk || data[ij+imax-1]&zoneEx == 0 {
							data[ij] |= j1Start
							count++
						}
					} else if data[ij]&zoneEx != 0 {
						if data[ij+imax-1]&zoneEx != 0 {
							data[ij] |= j0Start
							count++
						}
					}
				}
			}

			iWasChunk = i == ichunk
			if iWasChunk {
				ichunk += iChunkSize
			}
		}

		if j == jchunk {
			jchunk += jChunkSize
		}

		if count != 0 && !started {
			data[ij-imax] |= startRow
			started = true
		}
	}

	if count == 0 {
		data[0] |= allDone
	} else {
		for i := range s.Saddle {
			s.Saddle[i] = 0
		}
	}

	s.Edge0, s.Edge00, s.Edge = 0, 0, 0
	s.Left0, s.Left = 0, 0
	s.N = 0
	s.Count = count
	return count
}
