package geodesy

import "fmt"

// Ellipsoid is a reference ellipsoid described by its semi-major and
// semi-minor axis lengths in meters. The eccentricity squared,
// (a²−b²)/a², is derived once at construction and never changes.
//
// Ellipsoid is a comparable value type: two points are considered to be
// on the same datum exactly when their Ellipsoid fields compare equal.
type Ellipsoid struct {
	SemiMajorAxis       float64
	SemiMinorAxis       float64
	EccentricitySquared float64
}

// Named reference ellipsoids. Axis values follow the standard geodesy
// parameter tables (proj/OSGB).
var (
	Airy1830          = mustEllipsoid(6377563.396, 6356256.909)
	AiryModified      = mustEllipsoid(6377340.189, 6356034.447)
	Bessel1841        = mustEllipsoid(6377397.155, 6356078.963)
	Clarke1866        = mustEllipsoid(6378206.4, 6356583.8)
	GRS80             = mustEllipsoid(6378137.000, 6356752.3141)
	International1924 = mustEllipsoid(6378388.000, 6356911.946)
	WGS84             = mustEllipsoid(6378137.000, 6356752.3142)
)

// NewEllipsoid constructs an Ellipsoid from its axis lengths in meters.
// The semi-major axis must be positive and no smaller than the
// semi-minor axis.
func NewEllipsoid(semiMajorAxis, semiMinorAxis float64) (Ellipsoid, error) {
	if semiMinorAxis <= 0 {
		return Ellipsoid{}, fmt.Errorf("semi-minor axis must be greater than zero, got %g", semiMinorAxis)
	}
	if semiMajorAxis < semiMinorAxis {
		return Ellipsoid{}, fmt.Errorf("semi-major axis %g is smaller than semi-minor axis %g", semiMajorAxis, semiMinorAxis)
	}
	a2 := semiMajorAxis * semiMajorAxis
	b2 := semiMinorAxis * semiMinorAxis
	return Ellipsoid{
		SemiMajorAxis:       semiMajorAxis,
		SemiMinorAxis:       semiMinorAxis,
		EccentricitySquared: (a2 - b2) / a2,
	}, nil
}

func mustEllipsoid(semiMajorAxis, semiMinorAxis float64) Ellipsoid {
	e, err := NewEllipsoid(semiMajorAxis, semiMinorAxis)
	if err != nil {
		panic(fmt.Sprintf("error constructing reference ellipsoid: %s", err))
	}
	return e
}
