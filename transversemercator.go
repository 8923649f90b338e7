package geodesy

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// TransverseMercator is the fixed parameter set of a Transverse
// Mercator grid system: the reference ellipsoid, the scale factor on
// the central meridian, the true origin and the false easting/northing
// assigned to it. A concrete grid system (a national grid, a UTM zone)
// is just a TransverseMercator value with its published constants; the
// projection algorithm is shared.
//
// The forward and inverse projections follow the series expansions
// published by the Ordnance Survey (the Redfearn formulation), which
// are accurate to well under a millimeter within a zone width of the
// central meridian.
type TransverseMercator struct {
	Ellipsoid     Ellipsoid
	ScaleFactor   float64 // scale on the central meridian (F0)
	TrueOriginLat float64 // degrees
	TrueOriginLng float64 // degrees, the central meridian
	FalseEasting  float64 // easting of the true origin, meters
	FalseNorthing float64 // northing of the true origin, meters
}

const minScaleFactor = 0.1
const maxScaleFactor = 10.0

// Maximum variance for easting and northing values accepted by the
// inverse projection.
const deltaEasting = 20000000.0
const deltaNorthing = 10000000.0

// The series expansions lose accuracy far from the central meridian;
// reject conversions beyond this offset.
const maxMeridianOffset = 20.0 * math.Pi / 180.0

// Tolerance for the footpoint-latitude residual, in meters of
// meridional arc.
const footpointTolerance = 1e-5
const footpointMaxIterations = 20

// NewTransverseMercator constructs a grid system from its fixed
// projection parameters. Angles are in degrees, offsets in meters.
func NewTransverseMercator(ellipsoid Ellipsoid, scaleFactor, trueOriginLat, trueOriginLng,
	falseEasting, falseNorthing float64) (TransverseMercator, error) {
	if scaleFactor < minScaleFactor || scaleFactor > maxScaleFactor {
		return TransverseMercator{}, errors.New("scale factor out of range")
	}
	if trueOriginLat < -90 || trueOriginLat > 90 {
		return TransverseMercator{}, errors.New("true origin latitude out of range")
	}
	if trueOriginLng < -180 || trueOriginLng > 180 {
		return TransverseMercator{}, errors.New("true origin longitude out of range")
	}
	return TransverseMercator{
		Ellipsoid:     ellipsoid,
		ScaleFactor:   scaleFactor,
		TrueOriginLat: trueOriginLat,
		TrueOriginLng: trueOriginLng,
		FalseEasting:  falseEasting,
		FalseNorthing: falseNorthing,
	}, nil
}

// meridionalArc returns the developed meridian arc length M from the
// true-origin latitude to phi (both radians), scaled by the central
// meridian scale factor. Series in Helmert's n = (a-b)/(a+b) with terms
// through n³.
func (t TransverseMercator) meridionalArc(phi float64) float64 {
	a := t.Ellipsoid.SemiMajorAxis
	b := t.Ellipsoid.SemiMinorAxis
	phi0 := degreesToRadians(t.TrueOriginLat)

	n := (a - b) / (a + b)
	n2 := n * n
	n3 := n2 * n

	dPhi := phi - phi0
	sPhi := phi + phi0

	return b * t.ScaleFactor *
		((1+n+1.25*n2+1.25*n3)*dPhi -
			(3*n+3*n2+(21.0/8.0)*n3)*math.Sin(dPhi)*math.Cos(sPhi) +
			((15.0/8.0)*n2+(15.0/8.0)*n3)*math.Sin(2*dPhi)*math.Cos(2*sPhi) -
			(35.0/24.0)*n3*math.Sin(3*dPhi)*math.Cos(3*sPhi))
}

// radiiOfCurvature returns the transverse radius of curvature nu, the
// meridional radius of curvature rho and eta² = nu/rho − 1 at the given
// latitude, each scaled by the central meridian scale factor.
func (t TransverseMercator) radiiOfCurvature(phi float64) (nu, rho, eta2 float64) {
	aF0 := t.Ellipsoid.SemiMajorAxis * t.ScaleFactor
	e2 := t.Ellipsoid.EccentricitySquared
	sinPhi := math.Sin(phi)

	nu = aF0 / math.Sqrt(1-e2*sinPhi*sinPhi)
	rho = aF0 * (1 - e2) * math.Pow(1-e2*sinPhi*sinPhi, -1.5)
	eta2 = nu/rho - 1
	return nu, rho, eta2
}

// ToLatLong converts a projected easting/northing back to a geographic
// coordinate on the grid system's ellipsoid. The result has height 0:
// a grid position alone says nothing about height above the ellipsoid.
//
// The footpoint latitude is found by iterating the meridional-arc
// series until the northing residual falls below the tolerance; the
// loop is bounded and surfaces ErrNoConvergence if the bound is hit.
// The geographic coordinate then follows from the standard correction
// coefficients (classically numbered VII through XIIA) in powers of the
// easting offset from the central meridian.
func (t TransverseMercator) ToLatLong(p GridPoint) (LatLong, error) {
	if p.Ellipsoid != t.Ellipsoid {
		return LatLong{}, ErrEllipsoidMismatch
	}
	if p.Easting < t.FalseEasting-deltaEasting || p.Easting > t.FalseEasting+deltaEasting {
		return LatLong{}, errors.New("easting out of range")
	}
	if p.Northing < t.FalseNorthing-deltaNorthing || p.Northing > t.FalseNorthing+deltaNorthing {
		return LatLong{}, errors.New("northing out of range")
	}

	aF0 := t.Ellipsoid.SemiMajorAxis * t.ScaleFactor
	phi0 := degreesToRadians(t.TrueOriginLat)
	lambda0 := degreesToRadians(t.TrueOriginLng)
	dN := p.Northing - t.FalseNorthing

	// Footpoint latitude: the latitude whose meridian arc equals the
	// northing offset.
	// The reference formulation loops only while the residual is
	// positive, which relies on the true origin sitting south of the
	// grid; iterating on the absolute residual converges for southern
	// and equatorial grids as well.
	phiP := dN/aF0 + phi0
	m := t.meridionalArc(phiP)
	for i := 0; math.Abs(dN-m) >= footpointTolerance; i++ {
		if i >= footpointMaxIterations {
			return LatLong{}, fmt.Errorf("inverse projection of (%g, %g): %w", p.Easting, p.Northing, ErrNoConvergence)
		}
		phiP += (dN - m) / aF0
		m = t.meridionalArc(phiP)
	}

	nu, rho, eta2 := t.radiiOfCurvature(phiP)
	tanPhi := math.Tan(phiP)
	tan2 := tanPhi * tanPhi
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2
	secPhi := 1 / math.Cos(phiP)
	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	vii := tanPhi / (2 * rho * nu)
	viii := tanPhi / (24 * rho * nu3) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	ix := tanPhi / (720 * rho * nu5) * (61 + 90*tan2 + 45*tan4)
	x := secPhi / nu
	xi := secPhi / (6 * nu3) * (nu/rho + 2*tan2)
	xii := secPhi / (120 * nu5) * (5 + 28*tan2 + 24*tan4)
	xiia := secPhi / (5040 * nu7) * (61 + 662*tan2 + 1320*tan4 + 720*tan6)

	dE := p.Easting - t.FalseEasting
	dE2 := dE * dE
	dE3 := dE2 * dE
	dE4 := dE2 * dE2
	dE5 := dE4 * dE
	dE6 := dE4 * dE2
	dE7 := dE6 * dE

	phi := phiP - vii*dE2 + viii*dE4 - ix*dE6
	lambda := lambda0 + x*dE - xi*dE3 + xii*dE5 - xiia*dE7

	return LatLong{
		Lat:       s1.Angle(phi).Degrees(),
		Lng:       s1.Angle(lambda).Degrees(),
		Ellipsoid: t.Ellipsoid,
	}, nil
}

// FromLatLong converts a geographic coordinate to a projected
// easting/northing on this grid system, the forward dual of ToLatLong
// (coefficients classically numbered I through VI). The coordinate must
// be on the grid system's ellipsoid and within the series' validity
// range of the central meridian. The height is carried through
// unchanged.
func (t TransverseMercator) FromLatLong(p LatLong) (GridPoint, error) {
	if p.Ellipsoid != t.Ellipsoid {
		return GridPoint{}, ErrEllipsoidMismatch
	}

	ll := s2.LatLngFromDegrees(p.Lat, p.Lng)
	phi := ll.Lat.Radians()
	lambda := ll.Lng.Radians()
	lambda0 := degreesToRadians(t.TrueOriginLng)

	dLambda := lambda - lambda0
	if dLambda > math.Pi {
		dLambda -= 2 * math.Pi
	}
	if dLambda < -math.Pi {
		dLambda += 2 * math.Pi
	}
	if math.Abs(dLambda) > maxMeridianOffset {
		return GridPoint{}, errors.New("longitude too far from the central meridian")
	}

	nu, rho, eta2 := t.radiiOfCurvature(phi)
	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	cos3 := cosPhi * cosPhi * cosPhi
	cos5 := cos3 * cosPhi * cosPhi
	tanPhi := math.Tan(phi)
	tan2 := tanPhi * tanPhi
	tan4 := tan2 * tan2

	i := t.meridionalArc(phi) + t.FalseNorthing
	ii := nu / 2 * sinPhi * cosPhi
	iii := nu / 24 * sinPhi * cos3 * (5 - tan2 + 9*eta2)
	iiia := nu / 720 * sinPhi * cos5 * (61 - 58*tan2 + tan4)
	iv := nu * cosPhi
	v := nu / 6 * cos3 * (nu/rho - tan2)
	vi := nu / 120 * cos5 * (5 - 18*tan2 + tan4 + 14*eta2 - 58*tan2*eta2)

	dL2 := dLambda * dLambda
	dL3 := dL2 * dLambda
	dL4 := dL2 * dL2
	dL5 := dL4 * dLambda
	dL6 := dL4 * dL2

	return GridPoint{
		Easting:   t.FalseEasting + iv*dLambda + v*dL3 + vi*dL5,
		Northing:  i + ii*dL2 + iii*dL4 + iiia*dL6,
		Height:    p.Height,
		Ellipsoid: t.Ellipsoid,
	}, nil
}

func degreesToRadians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}
