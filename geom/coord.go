package geom

// CoordType selects how a widget's stored position or size is interpreted.
type CoordType int

const (
	// Pixels are literal pixel offsets and extents.
	Pixels CoordType = iota
	// Promillage is parts-per-thousand of the parent's pixel extent.
	Promillage
)

func (c CoordType) String() string {
	switch c {
	case Pixels:
		return "pixels"
	case Promillage:
		return "promillage"
	}
	return "unknown"
}

// Alignment is the anchor a widget's position refers to.
// Only TopLeft affects positioning; the others are carried for renderers.
type Alignment int

const (
	TopLeft Alignment = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var alignmentNames = [...]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	CenterLeft:   "center-left",
	Center:       "center",
	CenterRight:  "center-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return "unknown"
	}
	return alignmentNames[a]
}
