package tempbox

import (
	"cmp"
	"math"
)

// STBox is the spatiotemporal box of a spatial temporal value. It has up to
// four dimensions: X and Y (with HasX), Z (with HasZ), and time (with HasT)
type STBox struct {
	Xmin float64  `json:"xmin"`
	Ymin float64  `json:"ymin"`
	Zmin float64  `json:"zmin"`
	Xmax float64  `json:"xmax"`
	Ymax float64  `json:"ymax"`
	Zmax float64  `json:"zmax"`
	Time TimeSpan `json:"time"`
	SRID int      `json:"srid"`
	HasX bool     `json:"has_x"`
	HasZ bool     `json:"has_z"`
	HasT bool     `json:"has_t"`
}

// Epsilon is the tolerance CompareSTBox applies to spatial coordinates
const Epsilon = 1e-6

func (STBox) BoxType() BoxType {
	return BoxSTBox
}

// Period returns the time dimension, which is the zero TimeSpan when HasT
// is not set
func (b STBox) Period() TimeSpan {
	if !b.HasT {
		return TimeSpan{}
	}
	return b.Time
}

func (STBox) box() {}

// Union returns the smallest box covering both boxes, dimension by dimension
func (b STBox) Union(o STBox) STBox {
	res := b
	if o.HasX {
		if b.HasX {
			res.Xmin, res.Xmax = min(b.Xmin, o.Xmin), max(b.Xmax, o.Xmax)
			res.Ymin, res.Ymax = min(b.Ymin, o.Ymin), max(b.Ymax, o.Ymax)
			if b.HasZ && o.HasZ {
				res.Zmin, res.Zmax = min(b.Zmin, o.Zmin), max(b.Zmax, o.Zmax)
			}
		} else {
			res.Xmin, res.Xmax = o.Xmin, o.Xmax
			res.Ymin, res.Ymax = o.Ymin, o.Ymax
			res.Zmin, res.Zmax = o.Zmin, o.Zmax
			res.HasX, res.HasZ, res.SRID = true, o.HasZ, o.SRID
		}
	}
	if o.HasT {
		if b.HasT {
			res.Time = b.Time.Union(o.Time)
		} else {
			res.Time, res.HasT = o.Time, true
		}
	}
	return res
}

// Equal reports exact equality of every field that is present. It does not
// apply the Epsilon tolerance of CompareSTBox, so boxes whose coordinates
// differ only in their last bits are unequal here and yet compare as 0
func (b STBox) Equal(o STBox) bool {
	if b.HasX != o.HasX || b.HasZ != o.HasZ || b.HasT != o.HasT ||
		b.SRID != o.SRID {
		return false
	}
	if b.HasX {
		if b.Xmin != o.Xmin || b.Xmax != o.Xmax ||
			b.Ymin != o.Ymin || b.Ymax != o.Ymax {
			return false
		}
		if b.HasZ && (b.Zmin != o.Zmin || b.Zmax != o.Zmax) {
			return false
		}
	}
	return !b.HasT || b.Time.Equal(o.Time)
}

// CompareSTBox orders boxes by time dimension, then the minimum corner, then
// the maximum corner, then the dimension flags and SRID. Coordinates closer
// than Epsilon compare as equal
func CompareSTBox(a, b STBox) int {
	if a.HasT && b.HasT {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
	}
	if a.HasX && b.HasX {
		z := a.HasZ && b.HasZ
		if c := compareCoords(a.Xmin, b.Xmin, a.Ymin, b.Ymin); c != 0 {
			return c
		}
		if c := compareFloat(a.Zmin, b.Zmin); z && c != 0 {
			return c
		}
		if c := compareCoords(a.Xmax, b.Xmax, a.Ymax, b.Ymax); c != 0 {
			return c
		}
		if c := compareFloat(a.Zmax, b.Zmax); z && c != 0 {
			return c
		}
	}
	if c := compareFlag(a.HasX, b.HasX); c != 0 {
		return c
	}
	if c := compareFlag(a.HasZ, b.HasZ); c != 0 {
		return c
	}
	if c := compareFlag(a.HasT, b.HasT); c != 0 {
		return c
	}
	return cmp.Compare(a.SRID, b.SRID)
}

func compareCoords(x1, x2, y1, y2 float64) int {
	if c := compareFloat(x1, x2); c != 0 {
		return c
	}
	return compareFloat(y1, y2)
}

func compareFloat(a, b float64) int {
	if math.Abs(a-b) <= Epsilon {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

type axis struct {
	lo, hi float64
}

func (b STBox) axes(o STBox) (mine, theirs []axis) {
	if !b.HasX || !o.HasX {
		return nil, nil
	}
	mine = []axis{{b.Xmin, b.Xmax}, {b.Ymin, b.Ymax}}
	theirs = []axis{{o.Xmin, o.Xmax}, {o.Ymin, o.Ymax}}
	if b.HasZ && o.HasZ {
		mine = append(mine, axis{b.Zmin, b.Zmax})
		theirs = append(theirs, axis{o.Zmin, o.Zmax})
	}
	return mine, theirs
}

func (b STBox) shares(o STBox) bool {
	return (b.HasX && o.HasX) || (b.HasT && o.HasT)
}

// Overlaps reports whether the boxes intersect on every shared dimension
func (b STBox) Overlaps(o STBox) bool {
	mine, theirs := b.axes(o)
	for i, a := range mine {
		if a.lo > theirs[i].hi || theirs[i].lo > a.hi {
			return false
		}
	}
	if b.HasT && o.HasT && !b.Time.Overlaps(o.Time) {
		return false
	}
	return b.shares(o)
}

// Contains reports whether b covers o on every shared dimension
func (b STBox) Contains(o STBox) bool {
	mine, theirs := b.axes(o)
	for i, a := range mine {
		if a.lo > theirs[i].lo || theirs[i].hi > a.hi {
			return false
		}
	}
	if b.HasT && o.HasT && !b.Time.Contains(o.Time) {
		return false
	}
	return b.shares(o)
}

func (b STBox) Contained(o STBox) bool {
	return o.Contains(b)
}

// Same reports whether the boxes are equal on every shared dimension
func (b STBox) Same(o STBox) bool {
	mine, theirs := b.axes(o)
	for i, a := range mine {
		if a != theirs[i] {
			return false
		}
	}
	if b.HasT && o.HasT && !b.Time.Equal(o.Time) {
		return false
	}
	return b.shares(o)
}

// Adjacent reports whether the intersection of the boxes is degenerate in
// at least one shared dimension and non-empty in the others
func (b STBox) Adjacent(o STBox) bool {
	mine, theirs := b.axes(o)
	adj := false
	for i, a := range mine {
		lo, hi := max(a.lo, theirs[i].lo), min(a.hi, theirs[i].hi)
		switch {
		case lo > hi:
			return false
		case lo == hi:
			adj = true
		}
	}
	if b.HasT && o.HasT {
		switch {
		case b.Time.Adjacent(o.Time):
			adj = true
		case !b.Time.Overlaps(o.Time):
			return false
		}
	}
	return adj
}
