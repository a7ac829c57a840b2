package tempbox_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tempbox"
)

func at(sec int) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}

func period(lower, upper int, lowerInc, upperInc bool) tempbox.TimeSpan {
	return tempbox.TimeSpan{
		Lower:    at(lower),
		Upper:    at(upper),
		LowerInc: lowerInc,
		UpperInc: upperInc,
	}
}

func valueSpan(
	lower, upper float64, lowerInc, upperInc bool,
) tempbox.ValueSpan {
	return tempbox.ValueSpan{
		Lower:    tempbox.Number(lower),
		Upper:    tempbox.Number(upper),
		LowerInc: lowerInc,
		UpperInc: upperInc,
	}
}

func numInstants(start int, vals ...float64) []tempbox.Instant {
	res := make([]tempbox.Instant, len(vals))
	for i, v := range vals {
		res[i] = tempbox.NewInstant(tempbox.Float(v), at(start+i))
	}
	return res
}

func numSeq(
	t *testing.T, interp tempbox.Interpolation, lowerInc, upperInc bool,
	start int, vals ...float64,
) *tempbox.Sequence {
	t.Helper()
	seq, err := tempbox.NewSequence(
		numInstants(start, vals...), lowerInc, upperInc, interp,
	)
	assert.NoError(t, err)
	return seq
}

func boolSeq(
	t *testing.T, interp tempbox.Interpolation, lowerInc, upperInc bool,
	start int, vals ...bool,
) *tempbox.Sequence {
	t.Helper()
	insts := make([]tempbox.Instant, len(vals))
	for i, v := range vals {
		insts[i] = tempbox.NewInstant(tempbox.Bool(v), at(start+i))
	}
	seq, err := tempbox.NewSequence(insts, lowerInc, upperInc, interp)
	assert.NoError(t, err)
	return seq
}

func point(t *testing.T, coords ...float64) tempbox.Point {
	t.Helper()
	p, err := tempbox.NewPoint(4326, coords...)
	assert.NoError(t, err)
	return p
}

func pointSeq(
	t *testing.T, lowerInc, upperInc bool, start int, coords ...[]float64,
) *tempbox.Sequence {
	t.Helper()
	insts := make([]tempbox.Instant, len(coords))
	for i, c := range coords {
		insts[i] = tempbox.NewInstant(point(t, c...), at(start+i))
	}
	seq, err := tempbox.NewSequence(insts, lowerInc, upperInc, tempbox.Linear)
	assert.NoError(t, err)
	return seq
}

func seqSet(t *testing.T, seqs ...*tempbox.Sequence) *tempbox.SequenceSet {
	t.Helper()
	ss, err := tempbox.NewSequenceSet(seqs)
	assert.NoError(t, err)
	return ss
}

func tboxOf(t *testing.T, temp tempbox.Temporal) tempbox.TBox {
	t.Helper()
	b, err := tempbox.BoxOf(temp)
	assert.NoError(t, err)
	res, ok := b.(tempbox.TBox)
	assert.True(t, ok)
	return res
}
