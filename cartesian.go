package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// Cartesian is an Earth-centered Earth-fixed coordinate in meters, tied
// to a reference ellipsoid. The coordinates are only geometrically
// consistent with the ellipsoid if they were produced by a correct
// conversion; the type itself does not validate this.
type Cartesian struct {
	X, Y, Z   float64 // meters, ECEF
	Ellipsoid Ellipsoid
}

// NewCartesian constructs an ECEF coordinate on the given ellipsoid.
func NewCartesian(x, y, z float64, ellipsoid Ellipsoid) Cartesian {
	return Cartesian{X: x, Y: y, Z: z, Ellipsoid: ellipsoid}
}

// Convergence tolerance for the geodetic latitude iteration, in
// radians. Roughly half a meter at the surface.
const latitudeTolerance = 1e-5

// Terrestrial inputs converge within about five iterations; the bound
// exists so pathological inputs surface ErrNoConvergence instead of
// spinning.
const latitudeMaxIterations = 16

// LatLong converts the ECEF coordinate back to a geographic coordinate
// on the same ellipsoid, solving for the geodetic latitude by
// fixed-point iteration:
//
//	φ₀ = atan(z / (p·(1 - e²)))        with p = sqrt(x² + y²)
//	φ  = atan((z + e²·v·sin(φ)) / p)   with v = a / sqrt(1 - e²·sin²(φ))
//
// until successive estimates agree within the tolerance. The resulting
// height is rounded to the nearest whole meter.
//
// The height recovery h = p/cos(φ) − v degenerates as p approaches 0,
// so for inputs on or very near the polar axis the latitude and
// longitude are still meaningful but the height is not. This follows
// the reference formulation and is not validated, like the ellipsoid
// consistency precondition.
func (c Cartesian) LatLong() (LatLong, error) {
	a := c.Ellipsoid.SemiMajorAxis
	e2 := c.Ellipsoid.EccentricitySquared

	lambda := math.Atan2(c.Y, c.X)
	p := math.Sqrt(c.X*c.X + c.Y*c.Y)

	phi := math.Atan(c.Z / (p * (1 - e2)))
	var v float64
	for i := 0; ; i++ {
		if i >= latitudeMaxIterations {
			return LatLong{}, fmt.Errorf("converting (%g, %g, %g) to geographic: %w", c.X, c.Y, c.Z, ErrNoConvergence)
		}
		sinPhi := math.Sin(phi)
		v = a / math.Sqrt(1-e2*sinPhi*sinPhi)
		next := math.Atan((c.Z + e2*v*sinPhi) / p)
		if math.Abs(next-phi) < latitudeTolerance {
			phi = next
			break
		}
		phi = next
	}

	h := math.Round(p/math.Cos(phi) - v)

	return LatLong{
		Lat:       s1.Angle(phi).Degrees(),
		Lng:       s1.Angle(lambda).Degrees(),
		Height:    h,
		Ellipsoid: c.Ellipsoid,
	}, nil
}
