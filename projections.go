package geodesy

import (
	"errors"
	"fmt"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

// NationalGrid is the Ordnance Survey national grid of Great Britain:
// a Transverse Mercator projection of the Airy 1830 ellipsoid with its
// true origin at 49°N 2°W.
var NationalGrid TransverseMercator

func init() {
	var err error
	NationalGrid, err = NewTransverseMercator(Airy1830, 0.9996012717, 49, -2, 400000, -100000)
	if err != nil {
		panic(fmt.Sprintf("error constructing national grid projection: %s", err))
	}
}

const utmScaleFactor = 0.9996
const utmFalseEasting = 500000.0
const utmSouthFalseNorthing = 10000000.0

// UTMZone returns the Transverse Mercator grid system for a UTM zone on
// the WGS84 ellipsoid. Zones are numbered 1 to 60; the southern
// hemisphere variant carries the 10,000,000 m false northing.
func UTMZone(zone int, hemisphere Hemisphere) (TransverseMercator, error) {
	if zone < 1 || zone > 60 {
		return TransverseMercator{}, errors.New("zone out of range")
	}

	// Zone 31 spans 0..6°E, so zone n is centered on 6n-183 degrees.
	centralMeridian := float64(6*zone - 183)

	var falseNorthing float64
	switch hemisphere {
	case HemisphereNorth:
		falseNorthing = 0
	case HemisphereSouth:
		falseNorthing = utmSouthFalseNorthing
	default:
		return TransverseMercator{}, errors.New("hemisphere out of range")
	}

	return NewTransverseMercator(WGS84, utmScaleFactor, 0, centralMeridian,
		utmFalseEasting, falseNorthing)
}
