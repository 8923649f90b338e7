package geodesy_test

import (
	"testing"

	"github.com/coordkit/geodesy"
	"github.com/stretchr/testify/assert"
)

func TestEllipsoidDerivedEccentricity(t *testing.T) {
	e, err := geodesy.NewEllipsoid(6378137, 6356752.314245)
	if err != nil {
		t.Fatalf("error constructing ellipsoid: %s", err)
	}
	assert.InDelta(t, 0.00669438, e.EccentricitySquared, 1e-8)
	assert.Equal(t, 6378137.0, e.SemiMajorAxis)
	assert.Equal(t, 6356752.314245, e.SemiMinorAxis)
}

func TestEllipsoidValidation(t *testing.T) {
	_, err := geodesy.NewEllipsoid(6378137, 0)
	assert.Error(t, err)
	_, err = geodesy.NewEllipsoid(6378137, -6356752.314245)
	assert.Error(t, err)
	_, err = geodesy.NewEllipsoid(6356752.314245, 6378137)
	assert.Error(t, err)
}

func TestNamedEllipsoids(t *testing.T) {
	for name, e := range map[string]geodesy.Ellipsoid{
		"WGS84":             geodesy.WGS84,
		"GRS80":             geodesy.GRS80,
		"Airy1830":          geodesy.Airy1830,
		"AiryModified":      geodesy.AiryModified,
		"Bessel1841":        geodesy.Bessel1841,
		"Clarke1866":        geodesy.Clarke1866,
		"International1924": geodesy.International1924,
	} {
		if e.SemiMajorAxis < e.SemiMinorAxis || e.SemiMinorAxis <= 0 {
			t.Errorf("%s: bad axes (%g, %g)", name, e.SemiMajorAxis, e.SemiMinorAxis)
		}
		if e.EccentricitySquared < 0 || e.EccentricitySquared >= 1 {
			t.Errorf("%s: eccentricity squared out of range: %g", name, e.EccentricitySquared)
		}
	}
	// a sphere has zero eccentricity
	sphere, err := geodesy.NewEllipsoid(6371000, 6371000)
	if err != nil {
		t.Fatalf("error constructing sphere: %s", err)
	}
	assert.Equal(t, 0.0, sphere.EccentricitySquared)
}
