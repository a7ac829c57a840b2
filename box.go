package tempbox

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

type (
	// Box summarizes the extent of a temporal value. The implementations
	// are TimeSpan, TBox, and STBox
	Box interface {
		BoxType() BoxType
		Period() TimeSpan
		box()
	}

	// BoxType tags the three box shapes
	BoxType uint8
)

const (
	BoxTimeSpan BoxType = iota + 1
	BoxTBox
	BoxSTBox
)

// CompareInvalid is returned by BoxCompare in place of -1, 0, or 1 when the
// category is not recognized
const CompareInvalid = math.MaxInt

// ErrBoxTypeMismatch is returned when two boxes of different shapes are
// combined
var ErrBoxTypeMismatch = errors.New("box type mismatch")

// IsBoxType reports whether t is one of the recognized box shapes
func IsBoxType(t BoxType) bool {
	return t == BoxTimeSpan || t == BoxTBox || t == BoxSTBox
}

// Size returns the in-memory size of a box of this type
func (t BoxType) Size() uintptr {
	switch t {
	case BoxTimeSpan:
		return unsafe.Sizeof(TimeSpan{})
	case BoxTBox:
		return unsafe.Sizeof(TBox{})
	case BoxSTBox:
		return unsafe.Sizeof(STBox{})
	default:
		panic(fmt.Sprintf("invalid box type: %d", t))
	}
}

// MaxDims returns the maximum number of dimensions of a box of this type
func (t BoxType) MaxDims() int {
	switch t {
	case BoxTimeSpan:
		return 1
	case BoxTBox:
		return 2
	case BoxSTBox:
		return 4
	default:
		panic(fmt.Sprintf("invalid box type: %d", t))
	}
}

func (t BoxType) String() string {
	switch t {
	case BoxTimeSpan:
		return "tstzspan"
	case BoxTBox:
		return "tbox"
	case BoxSTBox:
		return "stbox"
	default:
		return fmt.Sprintf("boxtype(%d)", uint8(t))
	}
}

// BoxTypeOf returns the box type that summarizes values of a category
func BoxTypeOf(c Category) (BoxType, error) {
	switch c {
	case CategoryBoolean:
		return BoxTimeSpan, nil
	case CategoryNumeric:
		return BoxTBox, nil
	case CategorySpatial:
		return BoxSTBox, nil
	default:
		return 0, &TypeError{Category: c}
	}
}

func (TimeSpan) BoxType() BoxType {
	return BoxTimeSpan
}

func (s TimeSpan) Period() TimeSpan {
	return s
}

func (TimeSpan) box() {}

// Union merges two boxes of the same type
func Union(a, b Box) (Box, error) {
	if a == nil || b == nil || a.BoxType() != b.BoxType() {
		return nil, ErrBoxTypeMismatch
	}
	return unionBox(a, b), nil
}

func unionBox(a, b Box) Box {
	switch a := a.(type) {
	case TimeSpan:
		return a.Union(mustBox[TimeSpan](b))
	case TBox:
		return a.Union(mustBox[TBox](b))
	case STBox:
		return a.Union(mustBox[STBox](b))
	default:
		panic(fmt.Sprintf("unknown box type: %T", a))
	}
}

// BoxEquals reports whether two boxes of a temporal category are equal.
// Spatial boxes are equal when CompareSTBox returns 0, which tolerates
// coordinate noise that STBox.Equal does not
func BoxEquals(a, b Box, c Category) (bool, error) {
	switch c {
	case CategoryBoolean:
		return mustBox[TimeSpan](a).Equal(mustBox[TimeSpan](b)), nil
	case CategoryNumeric:
		return mustBox[TBox](a).Equal(mustBox[TBox](b)), nil
	case CategorySpatial:
		return CompareSTBox(mustBox[STBox](a), mustBox[STBox](b)) == 0, nil
	default:
		return false, &TypeError{Category: c}
	}
}

// BoxCompare returns -1, 0, or 1 depending on whether the first box sorts
// before, equal to, or after the second. On error it returns CompareInvalid
func BoxCompare(a, b Box, c Category) (int, error) {
	switch c {
	case CategoryBoolean:
		return mustBox[TimeSpan](a).Compare(mustBox[TimeSpan](b)), nil
	case CategoryNumeric:
		return CompareTBox(mustBox[TBox](a), mustBox[TBox](b)), nil
	case CategorySpatial:
		return CompareSTBox(mustBox[STBox](a), mustBox[STBox](b)), nil
	default:
		return CompareInvalid, &TypeError{Category: c}
	}
}

func mustBox[B Box](b Box) B {
	res, ok := b.(B)
	if !ok {
		var zero B
		panic(fmt.Sprintf("expected %T box, got %T", zero, b))
	}
	return res
}
