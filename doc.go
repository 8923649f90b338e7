/*
Package geodesy converts between geodetic representations of points on
the Earth's surface: geographic latitude/longitude/height on a reference
ellipsoid, Earth-centered Earth-fixed Cartesian coordinates, and planar
Transverse Mercator grid coordinates. It also re-expresses points across
datums with 7-parameter Helmert transforms.

Angles are degrees at the API boundary and radians internally; lengths
are meters. Heights recovered from Cartesian coordinates and planar
distances are rounded to the nearest whole meter, matching the national
grid convention the algorithms come from.

All values are immutable after construction and every conversion returns
a new value, so the package is safe for concurrent use.
*/
package geodesy
