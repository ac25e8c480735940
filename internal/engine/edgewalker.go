package engine

// EdgeWalker walks CCW along a mesh/chunk boundary with the filled region on
// its left. It is only used in filled mode. Each step either marks a
// between-levels corner, or exits back to ZoneCrosser once the next
// endpoint's class leaves the "between" band.
//
// Return value is 0 or 1 (hand back to ZoneCrosser at that level), 3
// (closed), or the result of a SlitCutter hand-off.
func EdgeWalker(s *Site, pass2 bool) int {
	data := s.Data
	imax := s.IMax
	edge := s.Edge
	left := s.Left
	n := s.N
	fwd := forward(left, imax)
	p0 := point0(edge, fwd)
	p1 := point1(edge, fwd)
	jedge := isJEdge(left)
	edge0, left0 := s.Edge0, s.Left0
	level0 := s.Level0 == 2
	headsUp := 0

	for {
		z0 := data[p0] & zValue
		z1 := data[p1] & zValue
		marked := false
		nKind := 0

		switch {
		case z0 == 1:
			if pass2 {
				s.XCP[n] = s.X[p0]
				s.YCP[n] = s.Y[p0]
				s.KCP[n] = KindEdgeCorner
				nKind = n
			}
			marked = true
		case n == 0:
			// The very first point is not between the levels: emit the
			// interpolated cut here as zone_crosser would when the curve
			// later re-closes at this point.
			if pass2 {
				zcp := s.ZLevel[boolToInt(z0 != 0)]
				t := (zcp - s.Z[p0]) / (s.Z[p1] - s.Z[p0])
				s.XCP[n] = t*(s.X[p1]-s.X[p0]) + s.X[p0]
				s.YCP[n] = t*(s.Y[p1]-s.Y[p0]) + s.Y[p0]
				s.KCP[n] = KindEdgeCut2
				nKind = n
			}
			marked = true
		}

		if n != 0 {
			if level0 && edge == edge0 && left == left0 {
				s.Edge, s.Left = edge, left
				s.N = n + boolToInt(marked)
				var bndy word
				if jedge {
					bndy = jBndy
				} else {
					bndy = iBndy
				}
				if fwd < 0 && data[edge]&bndy == 0 {
					if nKind != 0 {
						s.KCP[nKind] += KindStartSlit
					}
					return SlitCutter(s, 0, pass2)
				}
				if fwd < 0 && left < 0 {
					// This boundary is already included by the upward
					// slit rising from the contour line below it.
					data[edge] &^= j0Start
					if nKind != 0 {
						s.KCP[nKind] += KindStartSlit
					}
					return SlitCutter(s, 0, pass2)
				}
				return 3
			} else if pass2 {
				if headsUp != 0 || (fwd < 0 && data[edge]&slitDnB != 0) {
					if headsUp == 0 && data[edge]&slitDnV == 0 {
						data[edge] |= slitDnV
					} else {
						s.Edge, s.Left = edge, left
						s.N = n + boolToInt(marked)
						if nKind != 0 {
							s.KCP[nKind] += KindStartSlit
						}
						return SlitCutter(s, headsUp, pass2)
					}
				}
			} else if start := data[edge] & startMark(left); start != 0 {
				data[edge] &^= start
				s.Count--
			}
		}
		if marked {
			n++
		}

		if z1 != 1 {
			s.Edge, s.Left, s.N = edge, left, n
			return boolToInt(z1 != 0)
		}

		// Step to p1 and find the next edge: prefer turning left (around
		// the same point), else straight, else right; watch for the
		// start of an upward slit at the same time.
		edge = p1
		if left > 0 {
			edge += left
		}
		var iOrJBndy, jOrIBndy word
		if jedge {
			iOrJBndy, jOrIBndy = iBndy, jBndy
		} else {
			iOrJBndy, jOrIBndy = jBndy, iBndy
		}
		switch {
		case pass2 && jedge && fwd > 0 && data[edge]&slitUpB != 0:
			jedge = !jedge
			headsUp = 1
		case data[edge]&iOrJBndy != 0:
			fwd, left = left, -fwd
			jedge = !jedge
		default:
			edge = p1
			if fwd > 0 {
				edge += fwd
			}
			switch {
			case pass2 && !jedge && fwd > 0 && data[edge]&slitUpB != 0:
				headsUp = 1
			case data[edge]&jOrIBndy == 0:
				edge = p1
				if left < 0 {
					edge -= left
				}
				jedge = !jedge
				fwd, left = -left, fwd
			}
		}
		p0 = p1
		p1 = point1(edge, fwd)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
