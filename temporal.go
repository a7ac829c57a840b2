package tempbox

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

type (
	// Temporal is a value that varies over time. The implementations are
	// Instant, *Sequence, and *SequenceSet
	Temporal interface {
		Category() Category
		Shape() Shape
		Period() TimeSpan
		temporal()
	}

	// Instant is a payload value at a timestamp. It is immutable
	Instant struct {
		Value Value
		T     time.Time
	}

	// Sequence is a non-empty run of instants with strictly increasing
	// timestamps, an interpolation, and time bound flags. Its box is
	// computed at construction and kept current by AppendInstant. A
	// Sequence is not safe for concurrent use while it is being appended to
	// or recomputed
	Sequence struct {
		box      Box
		instants []Instant
		category Category
		interp   Interpolation
		lowerInc bool
		upperInc bool
	}

	// SequenceSet is a non-empty run of time-disjoint sequences sharing one
	// category and interpolation. Like Sequence, it must not be read while
	// it is being appended to or recomputed
	SequenceSet struct {
		box        Box
		sequences  []*Sequence
		totalCount int
		category   Category
		interp     Interpolation
	}
)

var (
	// ErrNilTemporal is returned when a nil temporal value is passed
	ErrNilTemporal = errors.New("temporal value is nil")

	// ErrEmptySequence is returned when a sequence has no instants
	ErrEmptySequence = errors.New("sequence requires at least one instant")

	// ErrEmptySequenceSet is returned when a sequence set has no sequences
	ErrEmptySequenceSet = errors.New(
		"sequence set requires at least one sequence",
	)

	// ErrTimestampOrder is returned when instant timestamps do not strictly
	// increase
	ErrTimestampOrder = errors.New(
		"instant timestamps must be strictly increasing",
	)

	// ErrSequenceOrder is returned when sequences overlap in time or are out
	// of order
	ErrSequenceOrder = errors.New(
		"sequences must be ordered and disjoint in time",
	)

	// ErrInvalidBounds is returned when the bound flags do not fit the
	// sequence: discrete and single-instant sequences are inclusive
	ErrInvalidBounds = errors.New("invalid sequence bounds")

	// ErrInvalidInterpolation is returned for an unknown interpolation, or
	// linear interpolation of a Boolean/discrete payload
	ErrInvalidInterpolation = errors.New("invalid interpolation")

	// ErrSpatialMismatch is returned when points differ in SRID or
	// dimensionality
	ErrSpatialMismatch = errors.New("points differ in SRID or dimensionality")
)

// NewInstant creates an Instant
func NewInstant(v Value, t time.Time) Instant {
	return Instant{Value: v, T: t}
}

func (i Instant) Category() Category {
	return categoryOf(i.Value)
}

func (Instant) Shape() Shape {
	return ShapeInstant
}

func (i Instant) Period() TimeSpan {
	return timePoint(i.T)
}

func (Instant) temporal() {}

// NewSequence creates a Sequence from instants and computes its box. The
// instants slice is copied
func NewSequence(
	instants []Instant, lowerInc, upperInc bool, interp Interpolation,
) (*Sequence, error) {
	if len(instants) == 0 {
		return nil, ErrEmptySequence
	}
	c := instants[0].Category()
	if !c.IsValid() {
		return nil, &TypeError{Category: c}
	}
	if err := checkInterpolation(c, interp); err != nil {
		return nil, err
	}
	for i := 1; i < len(instants); i++ {
		if err := checkNext(instants[i-1], instants[i]); err != nil {
			return nil, err
		}
	}
	if len(instants) == 1 || interp == Discrete {
		if !lowerInc || !upperInc {
			return nil, fmt.Errorf(
				"%w: %s sequence of %d instants must be inclusive",
				ErrInvalidBounds, interp, len(instants),
			)
		}
	}
	s := &Sequence{
		instants: slices.Clone(instants),
		category: c,
		interp:   interp,
		lowerInc: lowerInc,
		upperInc: upperInc,
	}
	s.box = BoxOfSequence(s)
	return s, nil
}

func checkInterpolation(c Category, interp Interpolation) error {
	if !interp.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidInterpolation, interp)
	}
	if interp == Linear && c.IsBoolean() {
		return fmt.Errorf(
			"%w: %s payloads cannot be linear", ErrInvalidInterpolation, c,
		)
	}
	return nil
}

func checkNext(prev, next Instant) error {
	if pc, nc := prev.Category(), next.Category(); pc != nc {
		return fmt.Errorf(
			"%w: %s followed by %s", ErrCategoryMismatch, pc, nc,
		)
	}
	if !next.T.After(prev.T) {
		return fmt.Errorf("%w: %s is not after %s",
			ErrTimestampOrder, next.T.Format(time.RFC3339Nano),
			prev.T.Format(time.RFC3339Nano),
		)
	}
	if p, ok := prev.Value.(Point); ok && !p.compatible(pointOf(next)) {
		return ErrSpatialMismatch
	}
	return nil
}

func (s *Sequence) Category() Category {
	return s.category
}

func (*Sequence) Shape() Shape {
	return ShapeSequence
}

// Period returns the time extent of the sequence with its bound flags
func (s *Sequence) Period() TimeSpan {
	return TimeSpan{
		Lower:    s.instants[0].T,
		Upper:    s.instants[len(s.instants)-1].T,
		LowerInc: s.lowerInc,
		UpperInc: s.upperInc,
	}
}

func (*Sequence) temporal() {}

// Box returns the cached box of the sequence
func (s *Sequence) Box() Box {
	return s.box
}

// Count returns the number of instants
func (s *Sequence) Count() int {
	return len(s.instants)
}

// InstantN returns the instant at index i
func (s *Sequence) InstantN(i int) Instant {
	return s.instants[i]
}

// Instants returns a copy of the sequence's instants
func (s *Sequence) Instants() []Instant {
	return slices.Clone(s.instants)
}

func (s *Sequence) Interpolation() Interpolation {
	return s.interp
}

func (s *Sequence) LowerInc() bool {
	return s.lowerInc
}

func (s *Sequence) UpperInc() bool {
	return s.upperInc
}

// AppendInstant adds an instant after the last one and expands the cached
// box without rescanning. The appended instant is always included, so the
// upper bound becomes inclusive
func (s *Sequence) AppendInstant(inst Instant) error {
	if err := checkNext(s.instants[len(s.instants)-1], inst); err != nil {
		return err
	}
	prevUpperInc := s.upperInc
	s.instants = append(s.instants, inst)
	s.upperInc = true
	s.expandWithInstant(inst, prevUpperInc)
	return nil
}

// Recompute discards the cached box and rebuilds it from every instant
func (s *Sequence) Recompute() {
	s.box = BoxOfSequence(s)
}

// segmentCount returns the number of spans between consecutive instants
func (s *Sequence) segmentCount() int {
	return len(s.instants) - 1
}

func (s *Sequence) clone() *Sequence {
	res := *s
	res.instants = slices.Clone(s.instants)
	return &res
}

// NewSequenceSet creates a SequenceSet from sequences and computes its box.
// The sequences are copied, so later appends to them do not affect the set
func NewSequenceSet(seqs []*Sequence) (*SequenceSet, error) {
	if len(seqs) == 0 {
		return nil, ErrEmptySequenceSet
	}
	if seqs[0] == nil {
		return nil, ErrNilTemporal
	}
	ss := &SequenceSet{
		sequences: make([]*Sequence, 0, len(seqs)),
		category:  seqs[0].category,
		interp:    seqs[0].interp,
	}
	for i, seq := range seqs {
		if seq == nil {
			return nil, ErrNilTemporal
		}
		if i > 0 {
			if err := ss.checkNext(seq); err != nil {
				return nil, err
			}
		}
		ss.sequences = append(ss.sequences, seq.clone())
		ss.totalCount += seq.Count()
	}
	ss.box = sequencesBox(ss.sequences)
	return ss, nil
}

func (ss *SequenceSet) checkNext(seq *Sequence) error {
	if seq.category != ss.category {
		return fmt.Errorf(
			"%w: %s followed by %s", ErrCategoryMismatch, ss.category,
			seq.category,
		)
	}
	if seq.interp != ss.interp {
		return fmt.Errorf(
			"%w: %s followed by %s", ErrInvalidInterpolation, ss.interp,
			seq.interp,
		)
	}
	last := ss.sequences[len(ss.sequences)-1]
	if p, ok := last.instants[0].Value.(Point); ok {
		if !p.compatible(pointOf(seq.instants[0])) {
			return ErrSpatialMismatch
		}
	}
	prev, next := last.Period(), seq.Period()
	c := prev.Upper.Compare(next.Lower)
	if c > 0 || (c == 0 && prev.UpperInc && next.LowerInc) {
		return ErrSequenceOrder
	}
	return nil
}

func (ss *SequenceSet) Category() Category {
	return ss.category
}

func (*SequenceSet) Shape() Shape {
	return ShapeSequenceSet
}

// Period returns the time extent from the first sequence's lower bound to
// the last sequence's upper bound
func (ss *SequenceSet) Period() TimeSpan {
	first := ss.sequences[0].Period()
	last := ss.sequences[len(ss.sequences)-1].Period()
	return TimeSpan{
		Lower:    first.Lower,
		Upper:    last.Upper,
		LowerInc: first.LowerInc,
		UpperInc: last.UpperInc,
	}
}

func (*SequenceSet) temporal() {}

// Box returns the cached box of the sequence set
func (ss *SequenceSet) Box() Box {
	return ss.box
}

// Count returns the number of sequences
func (ss *SequenceSet) Count() int {
	return len(ss.sequences)
}

// TotalCount returns the number of instants across all sequences
func (ss *SequenceSet) TotalCount() int {
	return ss.totalCount
}

// SequenceN returns a copy of the sequence at index i
func (ss *SequenceSet) SequenceN(i int) *Sequence {
	return ss.sequences[i].clone()
}

func (ss *SequenceSet) Interpolation() Interpolation {
	return ss.interp
}

// AppendSequence adds a sequence after the last one and expands the cached
// box without rescanning
func (ss *SequenceSet) AppendSequence(seq *Sequence) error {
	if seq == nil {
		return ErrNilTemporal
	}
	if err := ss.checkNext(seq); err != nil {
		return err
	}
	seq = seq.clone()
	ss.sequences = append(ss.sequences, seq)
	ss.totalCount += seq.Count()
	ss.expandWithSequence(seq)
	return nil
}

// AppendInstant extends the last sequence with an instant, then expands the
// set's cached box with that sequence's new box
func (ss *SequenceSet) AppendInstant(inst Instant) error {
	last := ss.sequences[len(ss.sequences)-1]
	if err := last.AppendInstant(inst); err != nil {
		return err
	}
	ss.totalCount++
	ss.expandWithSequence(last)
	return nil
}

// Recompute discards every cached box, rebuilding each sequence's box and
// then the set's box from them
func (ss *SequenceSet) Recompute() {
	for _, seq := range ss.sequences {
		seq.Recompute()
	}
	ss.box = sequencesBox(ss.sequences)
}
