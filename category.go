package tempbox

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
)

type (
	// Category is the payload category of a temporal value. It decides which
	// kind of box summarizes the value
	Category uint8

	// Shape is the temporal shape of a value
	Shape uint8

	// Interpolation determines how a sequence evolves between its instants
	Interpolation uint8

	// Value is the payload of an instant. The set of implementations is
	// closed: Bool and Text are Boolean/discrete, Int and Float are numeric,
	// and Point is spatial
	Value interface {
		Category() Category
		value()
	}

	// Bool is a Boolean payload
	Bool bool

	// Text is a discrete text payload
	Text string

	// Int is an integer numeric payload
	Int int64

	// Float is a floating point numeric payload
	Float float64

	// Point is a planar spatial payload with an optional Z coordinate
	Point struct {
		geom *geom.Point
		srid int
	}

	// TypeError reports a category that is not one of the recognized kinds
	// at a dispatch point
	TypeError struct {
		Category Category
	}
)

const (
	CategoryBoolean Category = iota + 1
	CategoryNumeric
	CategorySpatial
)

const (
	ShapeInstant Shape = iota + 1
	ShapeSequence
	ShapeSequenceSet
)

const (
	Discrete Interpolation = iota + 1
	Step
	Linear
)

var (
	// ErrInvalidPoint is returned when a point has neither two nor three
	// coordinates
	ErrInvalidPoint = errors.New("point requires two or three coordinates")

	// ErrCategoryMismatch is returned when a value's category does not match
	// the category a function was invoked with
	ErrCategoryMismatch = errors.New("temporal category mismatch")
)

// IsTemporal reports whether v is one of the temporal value shapes
func IsTemporal(v any) bool {
	switch v.(type) {
	case Instant, *Sequence, *SequenceSet:
		return true
	default:
		return false
	}
}

// IsValid reports whether c is one of the recognized categories
func (c Category) IsValid() bool {
	return c.IsBoolean() || c.IsNumeric() || c.IsSpatial()
}

func (c Category) IsBoolean() bool {
	return c == CategoryBoolean
}

func (c Category) IsNumeric() bool {
	return c == CategoryNumeric
}

func (c Category) IsSpatial() bool {
	return c == CategorySpatial
}

func (c Category) String() string {
	switch c {
	case CategoryBoolean:
		return "boolean"
	case CategoryNumeric:
		return "numeric"
	case CategorySpatial:
		return "spatial"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeInstant:
		return "instant"
	case ShapeSequence:
		return "sequence"
	case ShapeSequenceSet:
		return "sequence set"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// IsValid reports whether i is one of the recognized interpolations
func (i Interpolation) IsValid() bool {
	return i == Discrete || i == Step || i == Linear
}

func (i Interpolation) String() string {
	switch i {
	case Discrete:
		return "discrete"
	case Step:
		return "step"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("interpolation(%d)", uint8(i))
	}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf(
		"unknown temporal category for bounding box function: %d",
		e.Category,
	)
}

func (Bool) Category() Category  { return CategoryBoolean }
func (Text) Category() Category  { return CategoryBoolean }
func (Int) Category() Category   { return CategoryNumeric }
func (Float) Category() Category { return CategoryNumeric }

// Category returns CategorySpatial, or the zero Category for a Point that
// was not created by NewPoint
func (p Point) Category() Category {
	if p.geom == nil {
		return 0
	}
	return CategorySpatial
}

func (Bool) value()  {}
func (Text) value()  {}
func (Int) value()   {}
func (Float) value() {}
func (Point) value() {}

// NewPoint creates a spatial payload from two (XY) or three (XYZ)
// coordinates in the given spatial reference system
func NewPoint(srid int, coords ...float64) (Point, error) {
	var layout geom.Layout
	switch len(coords) {
	case 2:
		layout = geom.XY
	case 3:
		layout = geom.XYZ
	default:
		return Point{}, fmt.Errorf("%w: got %d", ErrInvalidPoint, len(coords))
	}
	flat := append([]float64(nil), coords...)
	return Point{
		geom: geom.NewPointFlat(layout, flat),
		srid: srid,
	}, nil
}

// Geom returns a copy of the underlying geometry, or nil for a Point that
// was not created by NewPoint
func (p Point) Geom() *geom.Point {
	if p.geom == nil {
		return nil
	}
	return p.geom.Clone()
}

// SRID returns the point's spatial reference identifier
func (p Point) SRID() int {
	return p.srid
}

// HasZ reports whether the point carries a Z coordinate
func (p Point) HasZ() bool {
	return p.geom != nil && p.geom.Layout().ZIndex() != -1
}

// Coords returns a copy of the point's coordinates
func (p Point) Coords() []float64 {
	if p.geom == nil {
		return nil
	}
	return append([]float64(nil), p.geom.FlatCoords()...)
}

func (p Point) compatible(o Point) bool {
	if p.geom == nil || o.geom == nil {
		return false
	}
	return p.srid == o.srid && p.geom.Layout() == o.geom.Layout()
}

func numberOf(v Value) Number {
	switch v := v.(type) {
	case Int:
		return Number(v)
	case Float:
		return Number(v)
	default:
		panic(fmt.Sprintf("numeric payload expected, got %T", v))
	}
}

func categoryOf(v Value) Category {
	if v == nil {
		return 0
	}
	return v.Category()
}
