package utils

import "math"

// EarthRadiusMeters - радиус сферической Земли для формулы гаверсинуса
const EarthRadiusMeters = 6371000.0

// HaversineDistance вычисляет расстояние по большому кругу между двумя точками в метрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// RoundTo1 округляет до одного знака после запятой
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
