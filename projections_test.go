package geodesy_test

import (
	"math"
	"testing"

	"github.com/coordkit/geodesy"
	"github.com/stretchr/testify/assert"
)

func TestUTMZone31(t *testing.T) {
	utm, err := geodesy.UTMZone(31, geodesy.HemisphereNorth)
	if err != nil {
		t.Fatalf("error creating UTM grid: %s", err)
	}
	assert.Equal(t, 3.0, utm.TrueOriginLng)
	assert.Equal(t, geodesy.WGS84, utm.Ellipsoid)

	p, err := utm.FromLatLong(geodesy.NewLatLong(52, 0.5, 0, geodesy.WGS84))
	if err != nil {
		t.Fatalf("error projecting: %s", err)
	}
	assert.InDelta(t, 328386.776, p.Easting, 0.001)
	assert.InDelta(t, 5763989.367, p.Northing, 0.001)
}

func TestUTMZoneSouth(t *testing.T) {
	utm, err := geodesy.UTMZone(31, geodesy.HemisphereSouth)
	if err != nil {
		t.Fatalf("error creating UTM grid: %s", err)
	}
	assert.Equal(t, 10000000.0, utm.FalseNorthing)

	p, err := utm.FromLatLong(geodesy.NewLatLong(-30, 4, 0, geodesy.WGS84))
	if err != nil {
		t.Fatalf("error projecting: %s", err)
	}
	assert.InDelta(t, 596450.153, p.Easting, 0.001)
	assert.InDelta(t, 6680793.777, p.Northing, 0.001)

	geo, err := utm.ToLatLong(p)
	if err != nil {
		t.Fatalf("error unprojecting: %s", err)
	}
	assert.InDelta(t, -30.0, geo.Lat, 1e-6)
	assert.InDelta(t, 4.0, geo.Lng, 1e-6)
}

func TestUTMZoneCentralMeridians(t *testing.T) {
	first, err := geodesy.UTMZone(1, geodesy.HemisphereNorth)
	if err != nil {
		t.Fatalf("error creating UTM grid: %s", err)
	}
	assert.Equal(t, -177.0, first.TrueOriginLng)

	last, err := geodesy.UTMZone(60, geodesy.HemisphereNorth)
	if err != nil {
		t.Fatalf("error creating UTM grid: %s", err)
	}
	assert.Equal(t, 177.0, last.TrueOriginLng)
}

func TestUTMZoneValidation(t *testing.T) {
	_, err := geodesy.UTMZone(0, geodesy.HemisphereNorth)
	assert.Error(t, err)
	_, err = geodesy.UTMZone(61, geodesy.HemisphereNorth)
	assert.Error(t, err)
	_, err = geodesy.UTMZone(31, geodesy.HemisphereInvalid)
	assert.Error(t, err)
}

func TestUTMRoundTrip(t *testing.T) {
	const latInc = 4.0
	const lngInc = 1.0
	for _, hemisphere := range []geodesy.Hemisphere{geodesy.HemisphereNorth, geodesy.HemisphereSouth} {
		utm, err := geodesy.UTMZone(31, hemisphere)
		if err != nil {
			t.Fatalf("error creating UTM grid: %s", err)
		}
		lat0, lat1 := 0.5, 80.5
		if hemisphere == geodesy.HemisphereSouth {
			lat0, lat1 = -79.5, -0.5
		}
		for lat := lat0; lat <= lat1; lat += latInc {
			for lng := 0.0; lng <= 6.0; lng += lngInc {
				geo := geodesy.NewLatLong(lat, lng, 0, geodesy.WGS84)
				p, err := utm.FromLatLong(geo)
				if err != nil {
					t.Fatalf("error projecting %s: %s", geo, err)
				}
				geo2, err := utm.ToLatLong(p)
				if err != nil {
					t.Fatalf("error unprojecting %s: %s", geo, err)
				}
				if math.Abs(geo2.Lat-lat) > 1e-6 || math.Abs(geo2.Lng-lng) > 1e-6 {
					t.Fatalf("expected %s, got %s", geo, geo2)
				}
			}
		}
	}
}

func TestNationalGridParameters(t *testing.T) {
	assert.Equal(t, geodesy.Airy1830, geodesy.NationalGrid.Ellipsoid)
	assert.Equal(t, 0.9996012717, geodesy.NationalGrid.ScaleFactor)
	assert.Equal(t, 49.0, geodesy.NationalGrid.TrueOriginLat)
	assert.Equal(t, -2.0, geodesy.NationalGrid.TrueOriginLng)
	assert.Equal(t, 400000.0, geodesy.NationalGrid.FalseEasting)
	assert.Equal(t, -100000.0, geodesy.NationalGrid.FalseNorthing)
}
