package tempbox

import "github.com/twpayne/go-geom"

func pointOf(inst Instant) Point {
	return inst.Value.(Point)
}

func pointInstantBox(inst Instant) STBox {
	p := pointOf(inst)
	return boundsBox(p.geom.Bounds(), p.srid, timePoint(inst.T))
}

func pointInstantsBox(
	insts []Instant, lowerInc, upperInc bool,
) STBox {
	first := pointOf(insts[0])
	bounds := geom.NewBounds(first.geom.Layout())
	for _, inst := range insts {
		bounds.Extend(pointOf(inst).geom)
	}
	period := TimeSpan{
		Lower:    insts[0].T,
		Upper:    insts[len(insts)-1].T,
		LowerInc: lowerInc,
		UpperInc: upperInc,
	}
	return boundsBox(bounds, first.srid, period)
}

func expandPointBox(box *STBox, inst Instant) {
	*box = box.Union(pointInstantBox(inst))
}

func boundsBox(b *geom.Bounds, srid int, period TimeSpan) STBox {
	res := STBox{
		Xmin: b.Min(0),
		Xmax: b.Max(0),
		Ymin: b.Min(1),
		Ymax: b.Max(1),
		Time: period,
		SRID: srid,
		HasX: true,
		HasT: true,
	}
	if z := b.Layout().ZIndex(); z != -1 {
		res.Zmin, res.Zmax, res.HasZ = b.Min(z), b.Max(z), true
	}
	return res
}
