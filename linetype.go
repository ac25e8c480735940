package contour

// LineType selects how a trace's output lines or polygons are laid out for
// the caller, independent of the algorithm that produced them. Each value
// fills a different subset of Result's fields.
type LineType int

const (
	// LineTypeSeparate returns each part as its own (x, y) vertex array,
	// with no path codes: callers that only need point sequences.
	// Populates Result.Parts (each Part's Codes left nil).
	LineTypeSeparate LineType = 101

	// LineTypeSeparateCode returns each part as its own vertex array
	// paired with a MOVETO/LINETO/CLOSEPOLY code array, as produced
	// directly by the reorder step. Populates Result.Parts.
	LineTypeSeparateCode LineType = 102

	// LineTypeChunkCombinedCode concatenates all parts from all chunks
	// into one vertex array and one code array; chunk boundaries are
	// distinguished only by MOVETO codes. Populates Result.X, Result.Y,
	// Result.Codes.
	LineTypeChunkCombinedCode LineType = 103

	// LineTypeChunkCombinedOffset concatenates all parts into one vertex
	// array and replaces the code array with a per-part offset array
	// indexing into it. Populates Result.X, Result.Y, Result.Offsets.
	LineTypeChunkCombinedOffset LineType = 104
)

// String returns the line-type name.
func (t LineType) String() string {
	switch t {
	case LineTypeSeparate:
		return "Separate"
	case LineTypeSeparateCode:
		return "SeparateCode"
	case LineTypeChunkCombinedCode:
		return "ChunkCombinedCode"
	case LineTypeChunkCombinedOffset:
		return "ChunkCombinedOffset"
	default:
		return "Unknown"
	}
}

// Path codes, compatible with the host's path-rendering convention. These
// mirror matplotlib's Path.MOVETO/LINETO/CLOSEPOLY tags.
const (
	MoveTo    byte = 1
	LineTo    byte = 2
	ClosePoly byte = 79
)
