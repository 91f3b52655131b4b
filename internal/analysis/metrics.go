package analysis

import (
	"github.com/san-kum/simone/internal/simone"
)

// Bounds is the axis-aligned bounding box of a point sequence.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) RangeX() float64 { return b.MaxX - b.MinX }
func (b Bounds) RangeY() float64 { return b.MaxY - b.MinY }

// BoundsOf computes the bounding box of pts. Returns the zero Bounds
// for an empty slice.
func BoundsOf(pts []simone.Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}

	b := Bounds{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// PathLength sums the euclidean distances between consecutive points.
func PathLength(pts []simone.Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Dist(pts[i-1])
	}
	return total
}

// Summary computes the standard metric set for a trajectory.
func Summary(traj []simone.Point) map[string]float64 {
	if len(traj) == 0 {
		return map[string]float64{}
	}

	b := BoundsOf(traj)
	last := traj[len(traj)-1]
	return map[string]float64{
		"path_length": PathLength(traj),
		"x_range":     b.RangeX(),
		"y_range":     b.RangeY(),
		"final_x":     last.X,
		"final_y":     last.Y,
	}
}
