package tempbox

import "fmt"

// BoxCount returns the exact number of boxes Boxes produces for a temporal
// value and budget. A maxCount below 1 means the finest granularity
func BoxCount(temp Temporal, maxCount int) (int, error) {
	switch t := temp.(type) {
	case Instant:
		if !t.Category().IsValid() {
			return 0, &TypeError{Category: t.Category()}
		}
		return 1, nil
	case *Sequence:
		if t == nil {
			return 0, ErrNilTemporal
		}
		return sequenceBoxCount(t, maxCount), nil
	case *SequenceSet:
		if t == nil {
			return 0, ErrNilTemporal
		}
		return sequenceSetBoxCount(t, maxCount), nil
	case nil:
		return 0, ErrNilTemporal
	default:
		panic(fmt.Sprintf("unknown temporal value: %T", temp))
	}
}

// Boxes decomposes a temporal value into boxes in temporal order, each the
// union of a contiguous run of segments between consecutive instants.
// Neighboring boxes share the instant between their runs. When the segments
// fit within maxCount, or maxCount is below 1, a sequence yields one box per
// segment, or one per instant for discrete interpolation. The result is
// freshly allocated and owned by the caller
func Boxes(temp Temporal, maxCount int) ([]Box, error) {
	count, err := BoxCount(temp, maxCount)
	if err != nil {
		return nil, err
	}
	res := make([]Box, 0, count)
	switch t := temp.(type) {
	case Instant:
		res = append(res, instantBox(t))
	case *Sequence:
		res = appendSequenceBoxes(res, t, maxCount)
	case *SequenceSet:
		res = appendSequenceSetBoxes(res, t, maxCount)
	}
	return res, nil
}

// TBoxes is Boxes restricted to numeric values
func TBoxes(temp Temporal, maxCount int) ([]TBox, error) {
	boxes, err := Boxes(temp, maxCount)
	if err != nil {
		return nil, err
	}
	if c := temp.Category(); !c.IsNumeric() {
		return nil, fmt.Errorf(
			"%w: %s value, numeric expected", ErrCategoryMismatch, c,
		)
	}
	res := make([]TBox, len(boxes))
	for i, b := range boxes {
		res[i] = b.(TBox)
	}
	return res, nil
}

// groupSizes splits n items into k contiguous groups. The first n%k
// groups hold one item more than the rest
func groupSizes(n, k int) []int {
	size, remainder := n/k, n%k
	res := make([]int, k)
	for i := range res {
		res[i] = size
		if i < remainder {
			res[i]++
		}
	}
	return res
}

func sequenceBoxCount(seq *Sequence, maxCount int) int {
	if seq.Count() == 1 {
		return 1
	}
	if n := seq.segmentCount(); maxCount >= 1 && n > maxCount {
		return maxCount
	}
	if seq.interp == Discrete {
		return seq.Count()
	}
	return seq.segmentCount()
}

func appendSequenceBoxes(res []Box, seq *Sequence, maxCount int) []Box {
	insts := seq.instants
	n := seq.segmentCount()
	if len(insts) == 1 || (seq.interp == Discrete && (maxCount < 1 ||
		n <= maxCount)) {
		for _, inst := range insts {
			res = append(res, instantBox(inst))
		}
		return res
	}
	// a group of segments also covers the instant that closes its last one
	i := 0
	for _, size := range groupSizes(n, sequenceBoxCount(seq, maxCount)) {
		res = append(res, mergeInstants(insts[i:i+size+1]))
		i += size
	}
	return res
}

func mergeInstants(insts []Instant) Box {
	res := instantBox(insts[0])
	for _, inst := range insts[1:] {
		res = unionBox(res, instantBox(inst))
	}
	return res
}

// subBudget shares maxCount among the sequences of a set in proportion to
// their instant counts, never going below one box
func (ss *SequenceSet) subBudget(seq *Sequence, maxCount int) int {
	return max(1, maxCount*seq.Count()/ss.totalCount)
}

func sequenceSetBoxCount(ss *SequenceSet, maxCount int) int {
	res := 0
	switch {
	case maxCount < 1 || ss.totalCount <= maxCount:
		for _, seq := range ss.sequences {
			res += sequenceBoxCount(seq, 0)
		}
	case len(ss.sequences) <= maxCount:
		for _, seq := range ss.sequences {
			res += sequenceBoxCount(seq, ss.subBudget(seq, maxCount))
		}
	default:
		res = maxCount
	}
	return res
}

func appendSequenceSetBoxes(
	res []Box, ss *SequenceSet, maxCount int,
) []Box {
	switch {
	case maxCount < 1 || ss.totalCount <= maxCount:
		for _, seq := range ss.sequences {
			res = appendSequenceBoxes(res, seq, 0)
		}
	case len(ss.sequences) <= maxCount:
		for _, seq := range ss.sequences {
			res = appendSequenceBoxes(res, seq, ss.subBudget(seq, maxCount))
		}
	default:
		i := 0
		for _, size := range groupSizes(len(ss.sequences), maxCount) {
			box := mergeInstants(ss.sequences[i].instants)
			for _, seq := range ss.sequences[i+1 : i+size] {
				box = unionBox(box, mergeInstants(seq.instants))
			}
			res = append(res, box)
			i += size
		}
	}
	return res
}
