package glyph

// SegmentOp is the kind of an outline segment.
type SegmentOp uint8

// Segment operations.
const (
	OpMoveTo SegmentOp = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
)

// String returns the name of the operation.
func (op SegmentOp) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Point is a position in font units.
type Point struct {
	X, Y float64
}

// Segment is one drawing operation of an outline.
//
// MoveTo and LineTo use Args[0]. QuadTo uses Args[0] as the control point
// and Args[1] as the end point. CubeTo uses all three.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Outline is a glyph's vector shape.
type Outline struct {
	ID       ID
	Segments []Segment
}

// IsEmpty reports whether the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Bounds returns the bounding box of all segment points, rounded outward.
func (o *Outline) Bounds() Rect {
	if o.IsEmpty() {
		return Rect{}
	}
	minX, minY := o.Segments[0].Args[0].X, o.Segments[0].Args[0].Y
	maxX, maxY := minX, minY
	for _, seg := range o.Segments {
		for _, p := range seg.Args[:seg.Op.argCount()] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return Rect{
		XMin: floor(minX),
		YMin: floor(minY),
		XMax: ceil(maxX),
		YMax: ceil(maxY),
	}
}

func (op SegmentOp) argCount() int {
	switch op {
	case OpQuadTo:
		return 2
	case OpCubeTo:
		return 3
	default:
		return 1
	}
}

func floor(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}

func ceil(v float64) int {
	i := int(v)
	if float64(i) < v {
		i++
	}
	return i
}
