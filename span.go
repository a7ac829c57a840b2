package tempbox

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

type (
	// Scalar constrains the bound type of a Span to totally ordered values
	Scalar[T any] interface {
		Compare(T) int
	}

	// Span is an interval over a scalar with an inclusivity flag on each
	// bound. A degenerate span [v, v] always has both bounds inclusive
	Span[T Scalar[T]] struct {
		Lower    T    `json:"lower"`
		Upper    T    `json:"upper"`
		LowerInc bool `json:"lower_inc"`
		UpperInc bool `json:"upper_inc"`
	}

	// Number is the scalar of a value dimension
	Number float64

	// ValueSpan is the value dimension of a TBox
	ValueSpan = Span[Number]

	// TimeSpan is the time dimension of every box, and the whole box of a
	// Boolean or discrete temporal value
	TimeSpan Span[time.Time]
)

// ErrInvalidSpan is returned when span bounds are out of order or a
// degenerate span is not inclusive on both ends
var ErrInvalidSpan = errors.New("invalid span bounds")

// MakeSpan creates a Span after checking that its bounds are well formed
func MakeSpan[T Scalar[T]](
	lower, upper T, lowerInc, upperInc bool,
) (Span[T], error) {
	c := lower.Compare(upper)
	if c > 0 || (c == 0 && !(lowerInc && upperInc)) {
		return Span[T]{}, fmt.Errorf(
			"%w: lower %v, upper %v", ErrInvalidSpan, lower, upper,
		)
	}
	return Span[T]{
		Lower:    lower,
		Upper:    upper,
		LowerInc: lowerInc,
		UpperInc: upperInc,
	}, nil
}

// MakeTimeSpan creates a TimeSpan after checking its bounds
func MakeTimeSpan(
	lower, upper time.Time, lowerInc, upperInc bool,
) (TimeSpan, error) {
	s, err := MakeSpan(lower, upper, lowerInc, upperInc)
	return TimeSpan(s), err
}

func pointSpan[T Scalar[T]](v T) Span[T] {
	return Span[T]{Lower: v, Upper: v, LowerInc: true, UpperInc: true}
}

// Compare orders spans by lower bound, then upper bound. At equal values an
// inclusive lower bound sorts first and an inclusive upper bound sorts last
func (s Span[T]) Compare(o Span[T]) int {
	if c := s.Lower.Compare(o.Lower); c != 0 {
		return c
	}
	if s.LowerInc != o.LowerInc {
		if s.LowerInc {
			return -1
		}
		return 1
	}
	if c := s.Upper.Compare(o.Upper); c != 0 {
		return c
	}
	if s.UpperInc != o.UpperInc {
		if s.UpperInc {
			return 1
		}
		return -1
	}
	return 0
}

// Equal reports whether both spans have the same bounds and flags
func (s Span[T]) Equal(o Span[T]) bool {
	return s.Compare(o) == 0
}

// Union returns the smallest span covering both spans. When bounds touch,
// inclusivity is the OR of both flags
func (s Span[T]) Union(o Span[T]) Span[T] {
	res := s
	switch c := o.Lower.Compare(s.Lower); {
	case c < 0:
		res.Lower, res.LowerInc = o.Lower, o.LowerInc
	case c == 0:
		res.LowerInc = s.LowerInc || o.LowerInc
	}
	switch c := o.Upper.Compare(s.Upper); {
	case c > 0:
		res.Upper, res.UpperInc = o.Upper, o.UpperInc
	case c == 0:
		res.UpperInc = s.UpperInc || o.UpperInc
	}
	return res
}

// Overlaps reports whether the spans share at least one value
func (s Span[T]) Overlaps(o Span[T]) bool {
	return lowerBeforeUpper(s, o) && lowerBeforeUpper(o, s)
}

// Contains reports whether every value of o is in s
func (s Span[T]) Contains(o Span[T]) bool {
	lc := s.Lower.Compare(o.Lower)
	uc := o.Upper.Compare(s.Upper)
	return (lc < 0 || (lc == 0 && (s.LowerInc || !o.LowerInc))) &&
		(uc < 0 || (uc == 0 && (s.UpperInc || !o.UpperInc)))
}

// Adjacent reports whether the spans touch at one bound without sharing a
// value
func (s Span[T]) Adjacent(o Span[T]) bool {
	if s.Upper.Compare(o.Lower) == 0 && s.UpperInc != o.LowerInc {
		return true
	}
	return o.Upper.Compare(s.Lower) == 0 && o.UpperInc != s.LowerInc
}

func lowerBeforeUpper[T Scalar[T]](a, b Span[T]) bool {
	c := a.Lower.Compare(b.Upper)
	return c < 0 || (c == 0 && a.LowerInc && b.UpperInc)
}

// Compare orders numbers
func (n Number) Compare(o Number) int {
	return cmp.Compare(n, o)
}

func timePoint(t time.Time) TimeSpan {
	return TimeSpan(pointSpan(t))
}

func (s TimeSpan) span() Span[time.Time] {
	return Span[time.Time](s)
}

func (s TimeSpan) Compare(o TimeSpan) int {
	return s.span().Compare(o.span())
}

func (s TimeSpan) Equal(o TimeSpan) bool {
	return s.span().Equal(o.span())
}

func (s TimeSpan) Union(o TimeSpan) TimeSpan {
	return TimeSpan(s.span().Union(o.span()))
}

func (s TimeSpan) Overlaps(o TimeSpan) bool {
	return s.span().Overlaps(o.span())
}

func (s TimeSpan) Contains(o TimeSpan) bool {
	return s.span().Contains(o.span())
}

func (s TimeSpan) Contained(o TimeSpan) bool {
	return o.Contains(s)
}

// Same reports whether both spans cover the same extent
func (s TimeSpan) Same(o TimeSpan) bool {
	return s.Equal(o)
}

func (s TimeSpan) Adjacent(o TimeSpan) bool {
	return s.span().Adjacent(o.span())
}

// Duration returns the length of the span
func (s TimeSpan) Duration() time.Duration {
	return s.Upper.Sub(s.Lower)
}
