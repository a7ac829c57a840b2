package tempbox

import "fmt"

// Predicate is a binary test over two boxes of the same type, such as
// TimeSpan.Overlaps or TBox.Contains
type Predicate[B any] func(B, B) bool

// Inverted returns the predicate with its arguments swapped
func (p Predicate[B]) Inverted() Predicate[B] {
	return func(a, b B) bool {
		return p(b, a)
	}
}

func (p Predicate[B]) apply(derived, other B, invert bool) bool {
	if invert {
		return p(other, derived)
	}
	return p(derived, other)
}

// WithTimeSpan derives the time span of a temporal value and tests it
// against s, passing s first when invert is set
func WithTimeSpan(
	temp Temporal, s TimeSpan, pred Predicate[TimeSpan], invert bool,
) (bool, error) {
	return withBox(PeriodOf, temp, s, pred, invert)
}

// WithTimeSpans derives the time spans of two temporal values and tests them
func WithTimeSpans(
	temp1, temp2 Temporal, pred Predicate[TimeSpan],
) (bool, error) {
	return withBoxes(PeriodOf, temp1, temp2, pred)
}

// WithValueSpan derives the value span of a numeric temporal value and tests
// it against s, passing s first when invert is set
func WithValueSpan(
	temp Temporal, s ValueSpan, pred Predicate[ValueSpan], invert bool,
) (bool, error) {
	return withBox(ValueSpanOf, temp, s, pred, invert)
}

// WithBox derives the full box of a temporal value (a TBox for numeric
// values, an STBox for spatial ones) and tests it against box, passing box
// first when invert is set
func WithBox[B Box](
	temp Temporal, box B, pred Predicate[B], invert bool,
) (bool, error) {
	return withBox(boxAs[B], temp, box, pred, invert)
}

// WithBoxes derives the full boxes of two temporal values and tests them
func WithBoxes[B Box](temp1, temp2 Temporal, pred Predicate[B]) (bool, error) {
	return withBoxes(boxAs[B], temp1, temp2, pred)
}

// PeriodOf returns the time span of a temporal value
func PeriodOf(temp Temporal) (TimeSpan, error) {
	box, err := BoxOf(temp)
	if err != nil {
		return TimeSpan{}, err
	}
	return box.Period(), nil
}

// ValueSpanOf returns the value span of a numeric temporal value
func ValueSpanOf(temp Temporal) (ValueSpan, error) {
	box, err := boxAs[TBox](temp)
	if err != nil {
		return ValueSpan{}, err
	}
	return box.Span, nil
}

func boxAs[B Box](temp Temporal) (B, error) {
	var zero B
	box, err := BoxOf(temp)
	if err != nil {
		return zero, err
	}
	res, ok := box.(B)
	if !ok {
		return zero, fmt.Errorf(
			"%w: %s value has a %s box", ErrBoxTypeMismatch,
			temp.Category(), box.BoxType(),
		)
	}
	return res, nil
}

func withBox[B any](
	derive func(Temporal) (B, error), temp Temporal, other B,
	pred Predicate[B], invert bool,
) (bool, error) {
	box, err := derive(temp)
	if err != nil {
		return false, err
	}
	return pred.apply(box, other, invert), nil
}

func withBoxes[B any](
	derive func(Temporal) (B, error), temp1, temp2 Temporal,
	pred Predicate[B],
) (bool, error) {
	box1, err := derive(temp1)
	if err != nil {
		return false, err
	}
	box2, err := derive(temp2)
	if err != nil {
		return false, err
	}
	return pred(box1, box2), nil
}
