package tempbox_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tempbox"
)

func TestCategory(t *testing.T) {
	assert.Equal(t, tempbox.CategoryBoolean, tempbox.Bool(true).Category())
	assert.Equal(t, tempbox.CategoryBoolean, tempbox.Text("x").Category())
	assert.Equal(t, tempbox.CategoryNumeric, tempbox.Int(1).Category())
	assert.Equal(t, tempbox.CategoryNumeric, tempbox.Float(1).Category())
	assert.Equal(t, tempbox.CategorySpatial, point(t, 1, 2).Category())
	assert.Equal(t, tempbox.Category(0), tempbox.Point{}.Category())

	assert.True(t, tempbox.CategoryNumeric.IsValid())
	assert.False(t, tempbox.Category(0).IsValid())
	assert.Equal(t, "spatial", tempbox.CategorySpatial.String())
	assert.Equal(t, "category(9)", tempbox.Category(9).String())
	assert.Equal(t, "linear", tempbox.Linear.String())
	assert.Equal(t, "sequence set", tempbox.ShapeSequenceSet.String())
}

func TestZeroPoint(t *testing.T) {
	var p tempbox.Point
	assert.Nil(t, p.Geom())
	assert.Nil(t, p.Coords())
	assert.False(t, p.HasZ())
	assert.Equal(t, 0, p.SRID())
}

func TestNewPoint(t *testing.T) {
	coords := []float64{1, 2, 3}
	p, err := tempbox.NewPoint(3857, coords...)
	assert.NoError(t, err)
	coords[0] = 99

	assert.Equal(t, 3857, p.SRID())
	assert.True(t, p.HasZ())
	assert.Equal(t, []float64{1, 2, 3}, p.Coords())
	assert.Equal(t, []float64{1, 2, 3}, p.Geom().FlatCoords())

	p, err = tempbox.NewPoint(0, 1, 2)
	assert.NoError(t, err)
	assert.False(t, p.HasZ())

	_, err = tempbox.NewPoint(0, 1)
	assert.ErrorIs(t, err, tempbox.ErrInvalidPoint)
	_, err = tempbox.NewPoint(0, 1, 2, 3, 4)
	assert.ErrorIs(t, err, tempbox.ErrInvalidPoint)
}

func TestIsTemporal(t *testing.T) {
	seq := numSeq(t, tempbox.Linear, true, true, 0, 1, 2)
	assert.True(t, tempbox.IsTemporal(tempbox.NewInstant(tempbox.Int(1), at(0))))
	assert.True(t, tempbox.IsTemporal(seq))
	assert.True(t, tempbox.IsTemporal(seqSet(t, seq)))
	assert.False(t, tempbox.IsTemporal(tempbox.Int(1)))
	assert.False(t, tempbox.IsTemporal(period(0, 1, true, true)))
}

func TestNewSequence(t *testing.T) {
	t.Run("copies its instants", func(t *testing.T) {
		insts := numInstants(0, 1, 2, 3)
		seq, err := tempbox.NewSequence(insts, true, true, tempbox.Linear)
		assert.NoError(t, err)
		insts[0].Value = tempbox.Float(100)

		assert.Equal(t, tempbox.Float(1), seq.InstantN(0).Value)
		assert.Equal(t, 3, seq.Count())
		assert.Equal(t, tempbox.ShapeSequence, seq.Shape())
		assert.Equal(t, tempbox.CategoryNumeric, seq.Category())
		assert.Equal(t, tempbox.Linear, seq.Interpolation())
		assert.True(t, seq.LowerInc())
		assert.True(t, seq.UpperInc())

		out := seq.Instants()
		out[1].Value = tempbox.Float(100)
		assert.Equal(t, tempbox.Float(2), seq.InstantN(1).Value)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := tempbox.NewSequence(nil, true, true, tempbox.Linear)
		assert.ErrorIs(t, err, tempbox.ErrEmptySequence)
	})

	t.Run("rejects unordered timestamps", func(t *testing.T) {
		insts := numInstants(0, 1, 2)
		insts[1].T = insts[0].T
		_, err := tempbox.NewSequence(insts, true, true, tempbox.Linear)
		assert.ErrorIs(t, err, tempbox.ErrTimestampOrder)
	})

	t.Run("rejects mixed categories", func(t *testing.T) {
		_, err := tempbox.NewSequence([]tempbox.Instant{
			tempbox.NewInstant(tempbox.Float(1), at(0)),
			tempbox.NewInstant(tempbox.Bool(true), at(1)),
		}, true, true, tempbox.Step)
		assert.ErrorIs(t, err, tempbox.ErrCategoryMismatch)
	})

	t.Run("rejects linear boolean sequences", func(t *testing.T) {
		_, err := tempbox.NewSequence([]tempbox.Instant{
			tempbox.NewInstant(tempbox.Bool(true), at(0)),
			tempbox.NewInstant(tempbox.Bool(false), at(1)),
		}, true, true, tempbox.Linear)
		assert.ErrorIs(t, err, tempbox.ErrInvalidInterpolation)
	})

	t.Run("rejects unknown interpolation", func(t *testing.T) {
		_, err := tempbox.NewSequence(numInstants(0, 1, 2), true, true, 0)
		assert.ErrorIs(t, err, tempbox.ErrInvalidInterpolation)
	})

	t.Run("requires inclusive bounds where they are implied",
		func(t *testing.T) {
			_, err := tempbox.NewSequence(
				numInstants(0, 1, 2), true, false, tempbox.Discrete,
			)
			assert.ErrorIs(t, err, tempbox.ErrInvalidBounds)

			_, err = tempbox.NewSequence(
				numInstants(0, 1), false, true, tempbox.Linear,
			)
			assert.ErrorIs(t, err, tempbox.ErrInvalidBounds)
		},
	)

	t.Run("rejects points of different reference systems",
		func(t *testing.T) {
			other, err := tempbox.NewPoint(3857, 1, 1)
			assert.NoError(t, err)
			_, err = tempbox.NewSequence([]tempbox.Instant{
				tempbox.NewInstant(point(t, 0, 0), at(0)),
				tempbox.NewInstant(other, at(1)),
			}, true, true, tempbox.Linear)
			assert.ErrorIs(t, err, tempbox.ErrSpatialMismatch)

			_, err = tempbox.NewSequence([]tempbox.Instant{
				tempbox.NewInstant(point(t, 0, 0), at(0)),
				tempbox.NewInstant(point(t, 0, 0, 0), at(1)),
			}, true, true, tempbox.Linear)
			assert.ErrorIs(t, err, tempbox.ErrSpatialMismatch)
		},
	)

	t.Run("rejects payloads without a category", func(t *testing.T) {
		_, err := tempbox.NewSequence([]tempbox.Instant{
			tempbox.NewInstant(tempbox.Point{}, at(0)),
		}, true, true, tempbox.Discrete)
		var typeErr *tempbox.TypeError
		assert.True(t, errors.As(err, &typeErr))
	})
}

func TestSequenceAppendInstant(t *testing.T) {
	t.Run("matches a full rescan for numeric values", func(t *testing.T) {
		seq := numSeq(t, tempbox.Linear, true, false, 0, 1, 3)
		assert.Equal(t, valueSpan(1, 3, true, false), tboxOf(t, seq).Span)

		err := seq.AppendInstant(tempbox.NewInstant(tempbox.Float(2), at(2)))
		assert.NoError(t, err)
		assert.True(t, seq.UpperInc())
		assert.Equal(t, 3, seq.Count())
		assert.Equal(t, tempbox.BoxOfSequence(seq), seq.Box())
		assert.Equal(t, tempbox.NewTBox(
			valueSpan(1, 3, true, true), period(0, 2, true, true),
		), seq.Box())

		err = seq.AppendInstant(tempbox.NewInstant(tempbox.Float(-4), at(3)))
		assert.NoError(t, err)
		assert.Equal(t, tempbox.BoxOfSequence(seq), seq.Box())
	})

	t.Run("matches a full rescan for step values", func(t *testing.T) {
		seq := numSeq(t, tempbox.Step, false, false, 0, 5, 1)
		for i, v := range []float64{7, 3, 7, 0} {
			inst := tempbox.NewInstant(tempbox.Float(v), at(2+i))
			assert.NoError(t, seq.AppendInstant(inst))
			assert.Equal(t, tempbox.BoxOfSequence(seq), seq.Box())
		}
	})

	t.Run("matches a full rescan for boolean values", func(t *testing.T) {
		seq := boolSeq(t, tempbox.Step, true, false, 0, true, false)
		err := seq.AppendInstant(tempbox.NewInstant(tempbox.Bool(true), at(2)))
		assert.NoError(t, err)
		assert.Equal(t, tempbox.BoxOfSequence(seq), seq.Box())
		assert.Equal(t, period(0, 2, true, true), seq.Box())
	})

	t.Run("matches a full rescan for spatial values", func(t *testing.T) {
		seq := pointSeq(t, true, false, 0, []float64{0, 0}, []float64{2, 1})
		err := seq.AppendInstant(tempbox.NewInstant(point(t, -1, 5), at(2)))
		assert.NoError(t, err)
		assert.Equal(t, tempbox.BoxOfSequence(seq), seq.Box())
		assert.Equal(t, tempbox.STBox{
			Xmin: -1, Ymin: 0, Xmax: 2, Ymax: 5,
			Time: period(0, 2, true, true), SRID: 4326,
			HasX: true, HasT: true,
		}, seq.Box())
	})

	t.Run("rejects an instant that is not later", func(t *testing.T) {
		seq := numSeq(t, tempbox.Linear, true, true, 0, 1, 3)
		before := seq.Box()
		err := seq.AppendInstant(tempbox.NewInstant(tempbox.Float(2), at(1)))
		assert.ErrorIs(t, err, tempbox.ErrTimestampOrder)
		assert.Equal(t, 2, seq.Count())
		assert.Equal(t, before, seq.Box())
	})

	t.Run("rejects a different category", func(t *testing.T) {
		seq := numSeq(t, tempbox.Step, true, true, 0, 1, 3)
		err := seq.AppendInstant(tempbox.NewInstant(tempbox.Bool(true), at(5)))
		assert.ErrorIs(t, err, tempbox.ErrCategoryMismatch)
	})
}

func TestSequenceRecompute(t *testing.T) {
	seq := numSeq(t, tempbox.Linear, true, false, 0, 1, 3)
	assert.NoError(t,
		seq.AppendInstant(tempbox.NewInstant(tempbox.Float(2), at(2))),
	)
	incremental := seq.Box()
	seq.Recompute()
	assert.Equal(t, incremental, seq.Box())
}

func TestNewSequenceSet(t *testing.T) {
	t.Run("tracks counts and accessors", func(t *testing.T) {
		ss := seqSet(t,
			numSeq(t, tempbox.Linear, true, false, 0, 1, 2, 3),
			numSeq(t, tempbox.Linear, true, true, 5, 4, 5),
		)
		assert.Equal(t, 2, ss.Count())
		assert.Equal(t, 5, ss.TotalCount())
		assert.Equal(t, tempbox.ShapeSequenceSet, ss.Shape())
		assert.Equal(t, tempbox.CategoryNumeric, ss.Category())
		assert.Equal(t, tempbox.Linear, ss.Interpolation())
		assert.Equal(t, period(0, 6, true, true), ss.Period())
		assert.Equal(t, 3, ss.SequenceN(0).Count())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := tempbox.NewSequenceSet(nil)
		assert.ErrorIs(t, err, tempbox.ErrEmptySequenceSet)

		_, err = tempbox.NewSequenceSet([]*tempbox.Sequence{nil})
		assert.ErrorIs(t, err, tempbox.ErrNilTemporal)
	})

	t.Run("rejects overlapping sequences", func(t *testing.T) {
		_, err := tempbox.NewSequenceSet([]*tempbox.Sequence{
			numSeq(t, tempbox.Linear, true, true, 0, 1, 2, 3),
			numSeq(t, tempbox.Linear, true, true, 1, 4, 5),
		})
		assert.ErrorIs(t, err, tempbox.ErrSequenceOrder)
	})

	t.Run("allows touching sequences with one open end",
		func(t *testing.T) {
			_, err := tempbox.NewSequenceSet([]*tempbox.Sequence{
				numSeq(t, tempbox.Linear, true, false, 0, 1, 2),
				numSeq(t, tempbox.Linear, true, true, 1, 4, 5),
			})
			assert.NoError(t, err)

			_, err = tempbox.NewSequenceSet([]*tempbox.Sequence{
				numSeq(t, tempbox.Linear, true, true, 0, 1, 2),
				numSeq(t, tempbox.Linear, true, true, 1, 4, 5),
			})
			assert.ErrorIs(t, err, tempbox.ErrSequenceOrder)
		},
	)

	t.Run("rejects mixed categories and interpolations",
		func(t *testing.T) {
			_, err := tempbox.NewSequenceSet([]*tempbox.Sequence{
				numSeq(t, tempbox.Step, true, true, 0, 1, 2),
				boolSeq(t, tempbox.Step, true, true, 5, true, false),
			})
			assert.ErrorIs(t, err, tempbox.ErrCategoryMismatch)

			_, err = tempbox.NewSequenceSet([]*tempbox.Sequence{
				numSeq(t, tempbox.Step, true, true, 0, 1, 2),
				numSeq(t, tempbox.Linear, true, true, 5, 1, 2),
			})
			assert.ErrorIs(t, err, tempbox.ErrInvalidInterpolation)
		},
	)

	t.Run("is not affected by later appends to its input",
		func(t *testing.T) {
			seq := numSeq(t, tempbox.Linear, true, true, 0, 1, 2)
			ss := seqSet(t, seq)
			before := ss.Box()
			err := seq.AppendInstant(tempbox.NewInstant(tempbox.Float(9), at(2)))
			assert.NoError(t, err)
			assert.Equal(t, before, ss.Box())
			assert.Equal(t, 2, ss.TotalCount())
		},
	)
}

func TestSequenceSetAppend(t *testing.T) {
	t.Run("appends instants to the last sequence", func(t *testing.T) {
		ss := seqSet(t,
			numSeq(t, tempbox.Linear, true, true, 0, 1, 2),
			numSeq(t, tempbox.Linear, true, false, 5, 4, 6),
		)
		err := ss.AppendInstant(tempbox.NewInstant(tempbox.Float(5), at(7)))
		assert.NoError(t, err)
		assert.Equal(t, 5, ss.TotalCount())
		assert.Equal(t, 3, ss.SequenceN(1).Count())
		assert.Equal(t, tempbox.NewTBox(
			valueSpan(1, 6, true, true), period(0, 7, true, true),
		), ss.Box())

		incremental := ss.Box()
		ss.Recompute()
		assert.Equal(t, incremental, ss.Box())
	})

	t.Run("appends boolean instants", func(t *testing.T) {
		ss := seqSet(t,
			boolSeq(t, tempbox.Step, true, false, 0, true, false),
			boolSeq(t, tempbox.Step, true, false, 5, false, true),
		)
		err := ss.AppendInstant(tempbox.NewInstant(tempbox.Bool(false), at(7)))
		assert.NoError(t, err)
		assert.Equal(t, period(0, 7, true, true), ss.Box())

		incremental := ss.Box()
		ss.Recompute()
		assert.Equal(t, incremental, ss.Box())
	})

	t.Run("appends sequences", func(t *testing.T) {
		ss := seqSet(t,
			pointSeq(t, true, true, 0, []float64{0, 0}, []float64{1, 1}),
		)
		seq := pointSeq(t, true, true, 5, []float64{4, -2}, []float64{3, 3})
		assert.NoError(t, ss.AppendSequence(seq))
		assert.Equal(t, 2, ss.Count())
		assert.Equal(t, 4, ss.TotalCount())

		incremental := ss.Box()
		ss.Recompute()
		assert.Equal(t, incremental, ss.Box())
		assert.Equal(t, tempbox.STBox{
			Xmin: 0, Ymin: -2, Xmax: 4, Ymax: 3,
			Time: period(0, 6, true, true), SRID: 4326,
			HasX: true, HasT: true,
		}, ss.Box())
	})

	t.Run("rejects sequences out of order", func(t *testing.T) {
		ss := seqSet(t, numSeq(t, tempbox.Linear, true, true, 5, 1, 2))
		err := ss.AppendSequence(numSeq(t, tempbox.Linear, true, true, 0, 1, 2))
		assert.ErrorIs(t, err, tempbox.ErrSequenceOrder)
		assert.ErrorIs(t, ss.AppendSequence(nil), tempbox.ErrNilTemporal)
		assert.Equal(t, 1, ss.Count())
	})

	t.Run("rejects instants out of order", func(t *testing.T) {
		ss := seqSet(t, numSeq(t, tempbox.Linear, true, true, 5, 1, 2))
		err := ss.AppendInstant(tempbox.NewInstant(tempbox.Float(1), at(6)))
		assert.ErrorIs(t, err, tempbox.ErrTimestampOrder)
		assert.Equal(t, 2, ss.TotalCount())
	})
}
