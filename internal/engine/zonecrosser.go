package engine

// ZoneCrosser assumes Site is sitting on a cut edge with the zone it is
// about to cross on its left. It marks the cut point, steps across zones
// until it reaches a boundary, closes the curve, or arrives at a slit, and
// is responsible (on pass 1) for erasing the start markers it consumes.
//
// lvl selects which level is being traced (0 or 1, indexing Site.ZLevel);
// the return value is one of:
//
//	2  hit a mesh/chunk boundary (filled mode)
//	3  curve closed
//	4  hit a boundary in line mode (open end)
//	0, 1, 2  handed off to and returned from SlitCutter (pass 2)
//	4        handed off to and returned from SlitCutter (pass 1)
func ZoneCrosser(s *Site, lvl int, pass2 bool) int {
	data := s.Data
	imax := s.IMax
	edge := s.Edge
	left := s.Left
	n := s.N
	fwd := forward(left, imax)
	jedge := isJEdge(left)
	edge0, left0 := s.Edge0, s.Left0
	level0 := s.Level0 == lvl
	twoLevels := s.TwoLevels()

	zlevel := s.ZLevel[lvl]
	upperLevel := lvl != 0
	var levelClass word
	if upperLevel {
		levelClass = 2
	}

	done := 0
	nKind := 0

	for {
		nKind = 0
		p0 := point0(edge, fwd)
		p1 := point1(edge, fwd)

		if pass2 {
			t := (zlevel - s.Z[p0]) / (s.Z[p1] - s.Z[p0])
			s.XCP[n] = t*(s.X[p1]-s.X[p0]) + s.X[p0]
			s.YCP[n] = t*(s.Y[p1]-s.Y[p0]) + s.Y[p0]
			s.KCP[n] = KindChunkZone
			nKind = n
		}

		if done == 0 && !jedge {
			if n != 0 {
				if !twoLevels && !pass2 && data[edge]&openEnd != 0 {
					done = 4
					break
				}
				if edge == edge0 && left == left0 {
					if level0 {
						if !pass2 && twoLevels && left < 0 {
							done = 5
						} else {
							done = 3
						}
					}
				} else if !pass2 {
					var startBit word
					if fwd > 0 {
						startBit = i0Start
					} else {
						startBit = i1Start
					}
					if start := data[edge] & startBit; start != 0 {
						data[edge] &^= start
						s.Count--
					}
					if !twoLevels {
						if fwd > 0 {
							startBit = i1Start
						} else {
							startBit = i0Start
						}
						if start := data[edge] & startBit; start != 0 {
							data[edge] &^= start
							s.Count--
						}
					}
				}
			}
		}
		n++
		if done != 0 {
			break
		}

		// Decide which way to turn by examining the four corner classes
		// relative to the level being traced.
		z0 := (data[p0] & zValue) != levelClass
		z1 := !z0
		z2 := (data[p1+left] & zValue) != levelClass
		z3 := (data[p0+left] & zValue) != levelClass

		bendForward := func() {
			jedge = !jedge
			edge = p1
			if left > 0 {
				edge += left
			}
			fwd, left = -left, fwd
		}
		bendBackward := func() {
			jedge = !jedge
			edge = p0
			if left > 0 {
				edge += left
			}
			fwd, left = left, -fwd
		}

		switch {
		case z0 == z2 && z1 == z3:
			// Saddle zone: both diagonals agree, so consult the cache.
			turnRight := resolveSaddle(s, edge, left, upperLevel)
			if z1 != upperLevel {
				turnRight = !turnRight
			}
			if turnRight {
				bendForward()
			} else {
				bendBackward()
			}
		case z0 == z2:
			bendForward()
		case z1 == z3:
			bendBackward()
		default:
			edge += left
		}

		if pass2 && twoLevels && !jedge {
			if left > 0 {
				if data[edge]&slitUpB != 0 {
					done = 6
				}
			} else if data[edge]&slitDnB != 0 {
				done = 5
			}
		}

		if done == 0 {
			var bndy word
			if jedge {
				bndy = jBndy
			} else {
				bndy = iBndy
			}
			if data[edge]&bndy != 0 {
				if twoLevels {
					done = 2
				} else {
					done = 4
				}
				left = -left
				fwd = -fwd
				if !pass2 && (edge != edge0 || left != left0) {
					if start := data[edge] & startMark(left); start != 0 {
						data[edge] &^= start
						s.Count--
					}
				}
			}
		}
	}

	s.Edge, s.N, s.Left = edge, n, left
	if done <= 4 {
		return done
	}
	if pass2 && nKind != 0 {
		s.KCP[nKind] += KindStartSlit
	}
	return SlitCutter(s, done-5, pass2)
}

// resolveSaddle decides the turn direction inside a saddle zone, computing
// and caching the centre value on first visit. The zone is identified by
// stepping from edge in direction left, matching the zone_crosser macro
// `edge + (left > 0 ? left : 0)`.
func resolveSaddle(s *Site, edge, left int, upperLevel bool) bool {
	zone := edge
	if left > 0 {
		zone += left
	}
	if s.Saddle[zone]&saddleSet == 0 {
		fwd := forward(left, s.IMax)
		p0 := point0(edge, fwd)
		p1 := point1(edge, fwd)
		centre := (s.Z[p0] + s.Z[p0+left] + s.Z[p1] + s.Z[p1+left]) / 4.0
		s.Saddle[zone] = saddleSet
		if centre > s.ZLevel[0] {
			if s.TwoLevels() && centre > s.ZLevel[1] {
				s.Saddle[zone] |= saddleGT0 | saddleGT1
			} else {
				s.Saddle[zone] |= saddleGT0
			}
		}
	}
	if upperLevel {
		return s.Saddle[zone]&saddleGT1 != 0
	}
	return s.Saddle[zone]&saddleGT0 != 0
}
