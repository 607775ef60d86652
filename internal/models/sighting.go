package models

import (
	"time"
)

// Sighting представляет запись о сырой GPS-точке лодки.
// OnRoute=false означает, что точку не удалось привязать к маршруту.
type Sighting struct {
	ID                  int64     `json:"id"`
	BoatID              string    `json:"boat_id"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	OnRoute             bool      `json:"on_route"`
	RouteDistanceMeters *float64  `json:"route_distance_meters,omitempty"`
	FixedAt             time.Time `json:"fixed_at"`
	ReceivedAt          time.Time `json:"received_at"`
}
