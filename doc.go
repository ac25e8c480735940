// Package contour traces iso-lines and filled contour polygons over a
// structured quadrilateral mesh, using the classical edge-based, two-pass
// state-machine algorithm: a first pass sizes every output curve by walking
// the mesh's start markers without emitting coordinates, and a second pass
// re-walks the same markers to fill pre-sized buffers.
//
// # Overview
//
// A mesh is an imax x jmax logical grid of (x, y, z) samples, indexed
// ij = i + j*imax with i varying fastest. Tracing at a single level
// produces open or closed iso-lines; tracing at two ascending levels
// produces closed polygons covering the band between them, including
// polygons with holes (emitted as a single part joined by an internal
// slit so the result stays simply connected).
//
// # Quick Start
//
//	s, err := contour.NewSession(imax, jmax, x, y, z)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	result, err := s.Trace(0.5) // iso-line at z == 0.5
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range result.Parts {
//		// p.X, p.Y, p.Codes: MOVETO/LINETO/CLOSEPOLY per vertex
//	}
//
// Filled-mode tracing passes two ascending levels:
//
//	result, err := s.Trace(0.5, 1.0) // band between 0.5 and 1.0
//
// Points can be excluded from the mesh with WithMask, and filled-mode
// output can be bounded to chunk-sized polygons with WithChunkSize, which
// trades one large polygon per band for many smaller ones along mesh-sized
// tiles — useful for downstream renderers with their own size limits.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Session, Mesh, SessionOption, LineType, Matrix, Point
//   - internal/engine: the packed per-point state grid and the three
//     traversal routines (zone crosser, edge walker, slit cutter) that the
//     curve driver alternates between
//   - internal/reorder: turns each traced curve's flat point/kind buffers
//     into ordered polygon parts with path codes
//
// # Coordinate System
//
// x, y, z are caller-supplied per-point values; the algorithm itself only
// ever compares z against the trace levels and never assumes a particular
// orientation or scale. Matrix and Point exist to let callers carry mesh
// geometry through an affine transform before or after tracing.
package contour

// Version information.
const (
	// Version is the current version of the library.
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier.
	VersionPrerelease = "alpha.1"
)
