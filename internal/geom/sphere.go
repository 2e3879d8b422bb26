package geom

import "math"

// Sphere samples a sphere of radius r on a (h+1) x (w+1) latitude/longitude
// grid, row-major by latitude. The extra row and column close the grid at the
// south pole and at longitude 2π. Coordinates are rounded to two decimals so
// projected positions stay stable from frame to frame.
func Sphere(w, h int, r float64) PointCloud {
	if w <= 0 || h <= 0 {
		return nil
	}
	pts := make(PointCloud, 0, (h+1)*(w+1))
	for i := 0; i <= h; i++ {
		lat := math.Pi / float64(h) * float64(i)
		for j := 0; j <= w; j++ {
			lon := 2 * math.Pi / float64(w) * float64(j)
			pts = append(pts, Vec4{
				X: round2(r * math.Sin(lat) * math.Cos(lon)),
				Y: round2(r * math.Sin(lat) * math.Sin(lon)),
				Z: round2(r * math.Cos(lat)),
				W: 1,
			})
		}
	}
	return pts
}

// Index returns the position of grid cell (i, j) in a cloud built by Sphere
// with longitude count w.
func Index(i, j, w int) int { return i*(w+1) + j }

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
