package geofence

import (
	"math"

	"github.com/mapointeuse/pointeuse/internal/model"
)

const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between two
// coordinates using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Contains reports whether the coordinate lies within the workplace's
// detection radius.
func Contains(w *model.Workplace, lat, lon float64) bool {
	return Distance(w.Latitude, w.Longitude, lat, lon) <= float64(w.RadiusMeters)
}
