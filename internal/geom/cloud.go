package geom

// PointCloud is an ordered set of homogeneous points. Order is significant:
// index k pairs with glyph k at render time.
type PointCloud []Vec4

// Clone returns an independent copy.
func (pc PointCloud) Clone() PointCloud {
	out := make(PointCloud, len(pc))
	copy(out, pc)
	return out
}

// Centroid is the component-wise mean of all points.
func (pc PointCloud) Centroid() Vec4 {
	if len(pc) == 0 {
		return Vec4{}
	}
	var sum Vec4
	for _, p := range pc {
		sum = sum.Add(p)
	}
	n := float64(len(pc))
	return Vec4{sum.X / n, sum.Y / n, sum.Z / n, sum.W / n}
}

// RotateAbout applies p' = c + m·(p - c) to every point in place.
func (pc PointCloud) RotateAbout(c Vec4, m Matrix4) {
	for i, p := range pc {
		pc[i] = c.Add(m.Apply(p.Sub(c)))
	}
}

// Rotate turns the whole cloud by theta about the vertical axis through its
// centroid.
func (pc PointCloud) Rotate(theta float64) {
	pc.RotateAbout(pc.Centroid(), RotationZ(theta))
}
