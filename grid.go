package geodesy

import "math"

// GridPoint is a planar projected coordinate: easting and northing in
// meters on a Transverse Mercator grid, plus height in meters, tied to
// the reference ellipsoid of the grid system that produced it.
type GridPoint struct {
	Easting   float64 // meters
	Northing  float64 // meters
	Height    float64 // meters
	Ellipsoid Ellipsoid
}

// NewGridPoint constructs a projected coordinate on the given ellipsoid.
func NewGridPoint(easting, northing, height float64, ellipsoid Ellipsoid) GridPoint {
	return GridPoint{Easting: easting, Northing: northing, Height: height, Ellipsoid: ellipsoid}
}

// DistanceTo returns the planar Euclidean distance to q, rounded to the
// nearest whole meter. Both points must be on the same ellipsoid;
// otherwise ErrEllipsoidMismatch is returned, since eastings and
// northings on different datums are not commensurable.
func (p GridPoint) DistanceTo(q GridPoint) (float64, error) {
	if p.Ellipsoid != q.Ellipsoid {
		return 0, ErrEllipsoidMismatch
	}
	return math.Round(math.Hypot(q.Easting-p.Easting, q.Northing-p.Northing)), nil
}
