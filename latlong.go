package geodesy

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// LatLong is a geographic coordinate: latitude and longitude in degrees
// and height in meters above the reference ellipsoid it is tied to.
type LatLong struct {
	Lat       float64 // degrees, conventionally -90..90
	Lng       float64 // degrees
	Height    float64 // meters above the ellipsoid
	Ellipsoid Ellipsoid
}

// NewLatLong constructs a geographic coordinate on the given ellipsoid.
// Height may be zero for 2D use.
func NewLatLong(lat, lng, height float64, ellipsoid Ellipsoid) LatLong {
	return LatLong{Lat: lat, Lng: lng, Height: height, Ellipsoid: ellipsoid}
}

// LatLongFromLatLng converts an s2.LatLng to a geographic coordinate on
// the given ellipsoid.
func LatLongFromLatLng(ll s2.LatLng, height float64, ellipsoid Ellipsoid) LatLong {
	return LatLong{
		Lat:       ll.Lat.Degrees(),
		Lng:       ll.Lng.Degrees(),
		Height:    height,
		Ellipsoid: ellipsoid,
	}
}

// LatLng returns the coordinate as an s2.LatLng, dropping height and
// ellipsoid.
func (p LatLong) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Cartesian converts the geographic coordinate to Earth-centered
// Earth-fixed Cartesian coordinates on the same ellipsoid. The
// conversion is closed form:
//
//	v = a / sqrt(1 - e²·sin²(φ))
//	x = (v + h)·cos(φ)·cos(λ)
//	y = (v + h)·cos(φ)·sin(λ)
//	z = ((1 - e²)·v + h)·sin(φ)
func (p LatLong) Cartesian() Cartesian {
	ll := p.LatLng()
	phi := ll.Lat.Radians()
	lambda := ll.Lng.Radians()

	a := p.Ellipsoid.SemiMajorAxis
	e2 := p.Ellipsoid.EccentricitySquared

	sinPhi := math.Sin(phi)
	v := a / math.Sqrt(1-e2*sinPhi*sinPhi)

	return Cartesian{
		X:         (v + p.Height) * math.Cos(phi) * math.Cos(lambda),
		Y:         (v + p.Height) * math.Cos(phi) * math.Sin(lambda),
		Z:         ((1-e2)*v + p.Height) * sinPhi,
		Ellipsoid: p.Ellipsoid,
	}
}

func (p LatLong) String() string {
	return fmt.Sprintf("(%.8f, %.8f, %gm)", p.Lat, p.Lng, p.Height)
}
