package geodesy

import "math"

// Helmert is a 7-parameter similarity (Helmert) transform relating two
// Cartesian datums: three translations, one differential scale and
// three small-angle rotations. The transform is linearized; the
// rotations are applied as a first-order approximation, not an exact
// rotation matrix.
type Helmert struct {
	TX, TY, TZ float64 // translation, meters
	Scale      float64 // differential scale, applied as 1+Scale
	RX, RY, RZ float64 // rotation about the x/y/z axes, radians
}

const arcsecond = math.Pi / 180 / 3600

// Published OSGB36 <-> WGS84 datum transform parameters. The WGS84 to
// OSGB36 set is the negation of the forward set, accurate to first
// order only (see Inverted).
var (
	OSGB36ToWGS84 = NewHelmert(446.448, -125.157, 542.060, -20.4894, 0.1502, 0.2470, 0.8421)
	WGS84ToOSGB36 = OSGB36ToWGS84.Inverted()
)

// NewHelmert constructs a Helmert transform from parameters in their
// customary published units: translations in meters, scale in parts
// per million and rotations in arc-seconds.
func NewHelmert(tx, ty, tz, scalePPM, rxSec, rySec, rzSec float64) Helmert {
	return Helmert{
		TX:    tx,
		TY:    ty,
		TZ:    tz,
		Scale: scalePPM * 1e-6,
		RX:    rxSec * arcsecond,
		RY:    rySec * arcsecond,
		RZ:    rzSec * arcsecond,
	}
}

// Apply transforms the Cartesian coordinate onto the target ellipsoid:
//
//	x' = tx + x·(1+s) − y·rz + z·ry
//	y' = ty + x·rz + y·(1+s) − z·rx
//	z' = tz − x·ry + y·rx + z·(1+s)
//
// The input is not modified.
func (h Helmert) Apply(c Cartesian, target Ellipsoid) Cartesian {
	s := 1 + h.Scale
	return Cartesian{
		X:         h.TX + c.X*s - c.Y*h.RZ + c.Z*h.RY,
		Y:         h.TY + c.X*h.RZ + c.Y*s - c.Z*h.RX,
		Z:         h.TZ - c.X*h.RY + c.Y*h.RX + c.Z*s,
		Ellipsoid: target,
	}
}

// Inverted returns the transform with all seven parameters negated.
// Because the forward transform is linearized, this is only a
// first-order approximation of the true inverse; for the small
// rotations and scales of real datum transforms the error is well
// below the precision of the published parameters.
func (h Helmert) Inverted() Helmert {
	return Helmert{
		TX: -h.TX, TY: -h.TY, TZ: -h.TZ,
		Scale: -h.Scale,
		RX:    -h.RX, RY: -h.RY, RZ: -h.RZ,
	}
}
