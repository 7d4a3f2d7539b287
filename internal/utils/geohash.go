package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// StoredGeohashPrecision is the precision listing rows are indexed with
const StoredGeohashPrecision uint = 9

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// kmPerDegree matches the earth radius used by CalculateDistance
const kmPerDegree = 6371.0 * math.Pi / 180.0

// cellSizeKm returns the height and the equatorial width of a geohash cell.
// Odd bits go to longitude, so longitude gets the extra bit at odd totals.
func cellSizeKm(precision uint) (height, width float64) {
	bits := 5 * precision
	lonBits := (bits + 1) / 2
	latBits := bits / 2
	height = 180.0 / math.Exp2(float64(latBits)) * kmPerDegree
	width = 360.0 / math.Exp2(float64(lonBits)) * kmPerDegree
	return height, width
}

// EncodePoint converts a point to a geohash string
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// PrecisionForRadius picks the finest precision whose cell is at least radiusKm
// tall and wide, measuring the width at the most poleward latitude the circle
// reaches. It returns 0 when no precision can cover the circle (near the poles).
func PrecisionForRadius(latitude, radiusKm float64) uint {
	poleward := math.Min(math.Abs(latitude)+radiusKm/kmPerDegree, 90)
	shrink := math.Cos(poleward * math.Pi / 180.0)

	for p := StoredGeohashPrecision; p >= 1; p-- {
		height, width := cellSizeKm(p)
		if height >= radiusKm && width*shrink >= radiusKm {
			return p
		}
	}
	return 0
}

// CoveringPrefixes returns the geohash of center and its eight neighbours at the
// precision chosen for radiusKm. Every point within radiusKm of center is stored
// under one of them. A nil result means the prefixes cannot bound the search.
func CoveringPrefixes(center GeoPoint, radiusKm float64) []string {
	precision := PrecisionForRadius(center.Latitude, radiusKm)
	if precision == 0 {
		return nil
	}
	hash := EncodePoint(center, precision)
	return append([]string{hash}, geohash.Neighbors(hash)...)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
