package tempbox

import "fmt"

// BoxOfInstant derives the box of a single instant. It fails with
// ErrCategoryMismatch if c is not the instant's category
func BoxOfInstant(inst Instant, c Category) (Box, error) {
	if !c.IsValid() {
		return nil, &TypeError{Category: c}
	}
	if ic := inst.Category(); ic != c {
		return nil, fmt.Errorf(
			"%w: instant is %s, requested %s", ErrCategoryMismatch, ic, c,
		)
	}
	return instantBox(inst), nil
}

// BoxOfSequence computes the box of a sequence by scanning all of its
// instants, ignoring the cached box
func BoxOfSequence(seq *Sequence) Box {
	return instantsBox(seq.instants, seq.lowerInc, seq.upperInc, seq.interp)
}

// BoxOf returns the box of any temporal value. Sequences and sequence sets
// return their cached box
func BoxOf(temp Temporal) (Box, error) {
	switch t := temp.(type) {
	case Instant:
		if !t.Category().IsValid() {
			return nil, &TypeError{Category: t.Category()}
		}
		return instantBox(t), nil
	case *Sequence:
		if t == nil {
			return nil, ErrNilTemporal
		}
		return t.box, nil
	case *SequenceSet:
		if t == nil {
			return nil, ErrNilTemporal
		}
		return t.box, nil
	case nil:
		return nil, ErrNilTemporal
	default:
		panic(fmt.Sprintf("unknown temporal value: %T", temp))
	}
}

func instantBox(inst Instant) Box {
	switch c := inst.Category(); c {
	case CategoryBoolean:
		return timePoint(inst.T)
	case CategoryNumeric:
		return numberInstantBox(inst)
	case CategorySpatial:
		return pointInstantBox(inst)
	default:
		panic((&TypeError{Category: c}).Error())
	}
}

func numberInstantBox(inst Instant) TBox {
	return NewTBox(pointSpan(numberOf(inst.Value)), timePoint(inst.T))
}

func instantsBox(
	insts []Instant, lowerInc, upperInc bool, interp Interpolation,
) Box {
	if len(insts) == 1 {
		return instantBox(insts[0])
	}
	switch c := insts[0].Category(); c {
	case CategoryBoolean:
		return TimeSpan{
			Lower:    insts[0].T,
			Upper:    insts[len(insts)-1].T,
			LowerInc: lowerInc,
			UpperInc: upperInc,
		}
	case CategoryNumeric:
		return numberInstantsBox(insts, lowerInc, upperInc, interp)
	case CategorySpatial:
		return pointInstantsBox(insts, lowerInc, upperInc)
	default:
		panic((&TypeError{Category: c}).Error())
	}
}

// numberInstantsBox scans the instants once for the value extremes. An
// extreme reached at an interior instant is inclusive; one reached only at
// the last instant inherits the upper bound flag. Non-linear interpolation
// makes both value bounds inclusive
func numberInstantsBox(
	insts []Instant, lowerInc, upperInc bool, interp Interpolation,
) TBox {
	firstInc, lastInc := lowerInc, upperInc
	if interp != Linear {
		firstInc, lastInc = true, true
	}
	last := len(insts) - 1
	lo := numberOf(insts[0].Value)
	hi := lo
	loInc, hiInc := firstInc, firstInc
	for i := 1; i <= last; i++ {
		v := numberOf(insts[i].Value)
		inc := lastInc
		if i < last {
			inc = true
		}
		switch c := v.Compare(lo); {
		case c < 0:
			lo, loInc = v, inc
		case c == 0:
			loInc = loInc || inc
		}
		switch c := v.Compare(hi); {
		case c > 0:
			hi, hiInc = v, inc
		case c == 0:
			hiInc = hiInc || inc
		}
	}
	if lo == hi {
		loInc, hiInc = true, true
	}
	return NewTBox(
		ValueSpan{Lower: lo, Upper: hi, LowerInc: loInc, UpperInc: hiInc},
		TimeSpan{
			Lower:    insts[0].T,
			Upper:    insts[last].T,
			LowerInc: lowerInc,
			UpperInc: upperInc,
		},
	)
}

func sequencesBox(seqs []*Sequence) Box {
	switch c := seqs[0].category; c {
	case CategoryBoolean:
		first := seqs[0].box.Period()
		last := seqs[len(seqs)-1].box.Period()
		return TimeSpan{
			Lower:    first.Lower,
			Upper:    last.Upper,
			LowerInc: first.LowerInc,
			UpperInc: last.UpperInc,
		}
	case CategoryNumeric, CategorySpatial:
		res := seqs[0].box
		for _, seq := range seqs[1:] {
			res = unionBox(res, seq.box)
		}
		return res
	default:
		panic((&TypeError{Category: c}).Error())
	}
}

// expandWithInstant folds the box of an appended instant into the cached
// box of a sequence. prevUpperInc is the upper bound flag the sequence had
// before the append: if it was exclusive, the former last instant is now
// interior and its value bound becomes inclusive
func (s *Sequence) expandWithInstant(inst Instant, prevUpperInc bool) {
	switch s.category {
	case CategoryBoolean:
		period := s.box.(TimeSpan)
		period.Upper, period.UpperInc = inst.T, true
		s.box = period
	case CategoryNumeric:
		box := s.box.(TBox)
		if !prevUpperInc {
			prev := s.instants[len(s.instants)-2]
			box = box.Union(numberInstantBox(prev))
		}
		s.box = box.Union(numberInstantBox(inst))
	case CategorySpatial:
		box := s.box.(STBox)
		expandPointBox(&box, inst)
		s.box = box
	default:
		panic((&TypeError{Category: s.category}).Error())
	}
}

// expandWithSequence folds the box of an appended sequence into the cached
// box of a sequence set
func (ss *SequenceSet) expandWithSequence(seq *Sequence) {
	switch ss.category {
	case CategoryBoolean:
		ss.box = ss.box.(TimeSpan).Union(seq.box.(TimeSpan))
	case CategoryNumeric, CategorySpatial:
		ss.box = unionBox(ss.box, seq.box)
	default:
		panic((&TypeError{Category: ss.category}).Error())
	}
}
