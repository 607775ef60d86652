package route

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRoute - маршрут не может быть построен. Фатально при старте.
var ErrInvalidRoute = errors.New("invalid route")

// minSegmentMeters - соседние точки ближе этого считаются совпадающими
const minSegmentMeters = 1e-3

// Point - контрольная точка маршрута
type Point struct {
	Latitude  float64
	Longitude float64
}

// Waypoint - точка маршрута с накопленным расстоянием от старта
type Waypoint struct {
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	CumulativeDistanceMeters float64 `json:"cumulative_distance_meters"`
}

// Route - неизменяемая ломаная маршрута парада
type Route struct {
	waypoints []Waypoint
	tolerance float64
}

// Load строит маршрут из контрольных точек и допуска коридора
func Load(points []Point, toleranceMeters float64) (*Route, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidRoute, len(points))
	}
	if !isFinite(toleranceMeters) || toleranceMeters <= 0 {
		return nil, fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidRoute, toleranceMeters)
	}

	waypoints := make([]Waypoint, len(points))
	cumulative := 0.0
	for i, p := range points {
		if !isFinite(p.Latitude) || !isFinite(p.Longitude) {
			return nil, fmt.Errorf("%w: point %d is not a finite coordinate (%v, %v)", ErrInvalidRoute, i, p.Latitude, p.Longitude)
		}
		if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
			return nil, fmt.Errorf("%w: point %d out of range (%v, %v)", ErrInvalidRoute, i, p.Latitude, p.Longitude)
		}
		if i > 0 {
			prev := points[i-1]
			d := haversineMeters(prev.Latitude, prev.Longitude, p.Latitude, p.Longitude)
			if d < minSegmentMeters {
				return nil, fmt.Errorf("%w: points %d and %d are coincident", ErrInvalidRoute, i-1, i)
			}
			cumulative += d
		}
		waypoints[i] = Waypoint{
			Latitude:                 p.Latitude,
			Longitude:                p.Longitude,
			CumulativeDistanceMeters: cumulative,
		}
	}

	return &Route{
		waypoints: waypoints,
		tolerance: toleranceMeters,
	}, nil
}

// TotalDistanceMeters - длина маршрута, равна накопленному расстоянию последней точки
func (r *Route) TotalDistanceMeters() float64 {
	return r.waypoints[len(r.waypoints)-1].CumulativeDistanceMeters
}

// Waypoints возвращает копию точек маршрута
func (r *Route) Waypoints() []Waypoint {
	out := make([]Waypoint, len(r.waypoints))
	copy(out, r.waypoints)
	return out
}

func (r *Route) ToleranceMeters() float64 {
	return r.tolerance
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (r *Route) segmentCount() int {
	return len(r.waypoints) - 1
}
