package route

import (
	"errors"
	"math"

	"github.com/shenikar/parade_tracking_system/internal/models"
)

// ErrNotOnRoute - точку не удалось привязать к маршруту в пределах допуска.
// Ожидаемый результат, а не сбой системы.
var ErrNotOnRoute = errors.New("position is not on route")

// tieBreakMeters - сегменты, чьи отклонения отличаются меньше этого,
// считаются равноудаленными; выигрывает сегмент дальше по маршруту.
const tieBreakMeters = 0.01

// Projection - результат привязки точки к маршруту
type Projection struct {
	Position models.MappedPosition
	// Перпендикулярное отклонение от маршрута; нужно политике коридора
	DeviationMeters float64
	SegmentIndex    int
}

type segmentHit struct {
	deviation float64
	fraction  float64
}

// MapToRoute проецирует точку на маршрут. previous - последняя привязанная
// позиция этой же лодки или nil. Функция чистая и безопасна для параллельного вызова.
func MapToRoute(r *Route, fix models.PositionFix, previous *models.MappedPosition) (Projection, error) {
	hits := make([]segmentHit, r.segmentCount())
	minDeviation := math.Inf(1)
	for i := range hits {
		hits[i] = r.projectOnSegment(i, fix.Latitude, fix.Longitude)
		if hits[i].deviation < minDeviation {
			minDeviation = hits[i].deviation
		}
	}

	if minDeviation > r.tolerance {
		return Projection{DeviationMeters: minDeviation, SegmentIndex: -1}, ErrNotOnRoute
	}

	selected := 0
	for i := len(hits) - 1; i >= 0; i-- {
		if hits[i].deviation <= minDeviation+tieBreakMeters {
			selected = i
			break
		}
	}

	start := r.waypoints[selected]
	end := r.waypoints[selected+1]
	hit := hits[selected]

	distance := start.CumulativeDistanceMeters + hit.fraction*(end.CumulativeDistanceMeters-start.CumulativeDistanceMeters)
	progress := 0.0
	if total := r.TotalDistanceMeters(); total > 0 {
		progress = clamp(distance/total*100, 0, 100)
	}

	pos := models.MappedPosition{
		Latitude:             fix.Latitude,
		Longitude:            fix.Longitude,
		Timestamp:            fix.Timestamp,
		RouteDistanceMeters:  distance,
		RouteProgressPercent: progress,
	}

	samePlace := previous != nil &&
		previous.Latitude == fix.Latitude &&
		previous.Longitude == fix.Longitude

	pos.EstimatedSpeed = estimateSpeed(distance, fix, previous, samePlace)

	switch {
	case fix.RawHeading != nil && *fix.RawHeading >= 0 && *fix.RawHeading < 360:
		pos.EstimatedHeading = *fix.RawHeading
	case samePlace:
		pos.EstimatedHeading = previous.EstimatedHeading
	default:
		pos.EstimatedHeading = bearingDegrees(start.Latitude, start.Longitude, end.Latitude, end.Longitude)
	}

	return Projection{
		Position:        pos,
		DeviationMeters: hit.deviation,
		SegmentIndex:    selected,
	}, nil
}

// projectOnSegment находит ближайшую точку сегмента i (не бесконечной прямой)
func (r *Route) projectOnSegment(i int, lat, lon float64) segmentHit {
	start := r.waypoints[i]
	end := r.waypoints[i+1]

	bx, by := toLocal(start.Latitude, start.Longitude, end.Latitude, end.Longitude)
	px, py := toLocal(start.Latitude, start.Longitude, lat, lon)

	lengthSq := bx*bx + by*by
	t := 0.0
	if lengthSq > 0 {
		t = clamp((px*bx+py*by)/lengthSq, 0, 1)
	}

	dx := px - t*bx
	dy := py - t*by
	return segmentHit{
		deviation: math.Hypot(dx, dy),
		fraction:  t,
	}
}

func estimateSpeed(distance float64, fix models.PositionFix, previous *models.MappedPosition, samePlace bool) *float64 {
	if previous == nil {
		return nil
	}
	dt := fix.Timestamp.Sub(previous.Timestamp).Seconds()
	if dt <= 0 {
		return nil
	}
	speed := 0.0
	if !samePlace {
		// откат назад по маршруту не дает отрицательной скорости
		speed = math.Max(0, (distance-previous.RouteDistanceMeters)/dt)
	}
	return &speed
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
