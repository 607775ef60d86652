package route

import "math"

const earthRadiusMeters = 6371000.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// haversineMeters возвращает расстояние между двумя точками по большому кругу в метрах
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	la1 := toRadians(lat1)
	la2 := toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// bearingDegrees - начальный азимут от первой точки ко второй, [0, 360)
func bearingDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	la1 := toRadians(lat1)
	la2 := toRadians(lat2)
	dLon := toRadians(lon2 - lon1)

	y := math.Sin(dLon) * math.Cos(la2)
	x := math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dLon)
	return normalizeDegrees(toDegrees(math.Atan2(y, x)))
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// toLocal переводит точку в локальные метры (x - восток, y - север)
// относительно опорной точки. Равнопромежуточная проекция, годится на
// масштабе нескольких километров.
func toLocal(refLat, refLon, lat, lon float64) (x, y float64) {
	x = toRadians(lon-refLon) * math.Cos(toRadians(refLat)) * earthRadiusMeters
	y = toRadians(lat-refLat) * earthRadiusMeters
	return x, y
}

// OffsetMeters сдвигает точку на east/north метров в той же локальной проекции,
// что используется при привязке к маршруту.
func OffsetMeters(lat, lon, east, north float64) (float64, float64) {
	dLat := toDegrees(north / earthRadiusMeters)
	dLon := toDegrees(east / (earthRadiusMeters * math.Cos(toRadians(lat))))
	return lat + dLat, lon + dLon
}
