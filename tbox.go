package tempbox

// TBox is the value-time box of a numeric temporal value: a value span and
// a time span, each present only when its flag is set
type TBox struct {
	Span ValueSpan `json:"span"`
	Time TimeSpan  `json:"time"`
	HasX bool      `json:"has_x"`
	HasT bool      `json:"has_t"`
}

// NewTBox creates a TBox with both dimensions present
func NewTBox(span ValueSpan, period TimeSpan) TBox {
	return TBox{Span: span, Time: period, HasX: true, HasT: true}
}

func (TBox) BoxType() BoxType {
	return BoxTBox
}

// Period returns the time dimension, which is the zero TimeSpan when HasT
// is not set
func (b TBox) Period() TimeSpan {
	if !b.HasT {
		return TimeSpan{}
	}
	return b.Time
}

func (TBox) box() {}

// Union returns the smallest box covering both boxes, dimension by dimension
func (b TBox) Union(o TBox) TBox {
	res := b
	if o.HasX {
		if b.HasX {
			res.Span = b.Span.Union(o.Span)
		} else {
			res.Span, res.HasX = o.Span, true
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

// Equal reports exact equality of the flags and every present dimension
func (b TBox) Equal(o TBox) bool {
	if b.HasX != o.HasX || b.HasT != o.HasT {
		return false
	}
	if b.HasX && !b.Span.Equal(o.Span) {
		return false
	}
	return !b.HasT || b.Time.Equal(o.Time)
}

// CompareTBox orders boxes by time dimension, then value dimension, then
// dimension flags. A box missing a dimension sorts before one that has it
func CompareTBox(a, b TBox) int {
	if a.HasT && b.HasT {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
	}
	if a.HasX && b.HasX {
		if c := a.Span.Compare(b.Span); c != 0 {
			return c
		}
	}
	if c := compareFlag(a.HasX, b.HasX); c != 0 {
		return c
	}
	return compareFlag(a.HasT, b.HasT)
}

func (b TBox) shares(o TBox) (x, t bool) {
	return b.HasX && o.HasX, b.HasT && o.HasT
}

// Overlaps reports whether the boxes intersect on every shared dimension
func (b TBox) Overlaps(o TBox) bool {
	x, t := b.shares(o)
	if x && !b.Span.Overlaps(o.Span) {
		return false
	}
	if t && !b.Time.Overlaps(o.Time) {
		return false
	}
	return x || t
}

// Contains reports whether b covers o on every shared dimension
func (b TBox) Contains(o TBox) bool {
	x, t := b.shares(o)
	if x && !b.Span.Contains(o.Span) {
		return false
	}
	if t && !b.Time.Contains(o.Time) {
		return false
	}
	return x || t
}

func (b TBox) Contained(o TBox) bool {
	return o.Contains(b)
}

// Same reports whether the boxes are equal on every shared dimension
func (b TBox) Same(o TBox) bool {
	x, t := b.shares(o)
	if x && !b.Span.Equal(o.Span) {
		return false
	}
	if t && !b.Time.Equal(o.Time) {
		return false
	}
	return x || t
}

// Adjacent reports whether the boxes touch on at least one shared dimension
// and intersect or touch on the others
func (b TBox) Adjacent(o TBox) bool {
	x, t := b.shares(o)
	adj := false
	if x {
		switch {
		case b.Span.Adjacent(o.Span):
			adj = true
		case !b.Span.Overlaps(o.Span):
			return false
		}
	}
	if t {
		switch {
		case b.Time.Adjacent(o.Time):
			adj = true
		case !b.Time.Overlaps(o.Time):
			return false
		}
	}
	return adj
}

func compareFlag(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
