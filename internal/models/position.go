package models

import "time"

// PositionFix - сырая GPS-точка от трекера. Приходит уже нормализованной
// слоем приема: скорость в м/с, курс в градусах.
type PositionFix struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Timestamp  time.Time `json:"timestamp"`
	RawSpeed   *float64  `json:"raw_speed,omitempty"`
	RawHeading *float64  `json:"raw_heading,omitempty"`
}

// MappedPosition - точка, спроецированная на маршрут
type MappedPosition struct {
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Timestamp            time.Time `json:"timestamp"`
	RouteDistanceMeters  float64   `json:"route_distance_meters"`
	RouteProgressPercent float64   `json:"route_progress_percent"`
	// nil, если скорость оценить не удалось
	EstimatedSpeed   *float64 `json:"estimated_speed_mps"`
	EstimatedHeading float64  `json:"estimated_heading_degrees"`
}

// SpeedOrZero возвращает оценку скорости или 0, если она неизвестна
func (p MappedPosition) SpeedOrZero() float64 {
	if p.EstimatedSpeed == nil {
		return 0
	}
	return *p.EstimatedSpeed
}
