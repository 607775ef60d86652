package v1

import (
	"time"

	"github.com/google/uuid"
)

// FixRequest DTO входящей GPS-точки от трекера
// @Description DTO входящей GPS-точки от трекера. Скорость в м/с, курс в градусах.
type FixRequest struct {
	BoatID    string    `json:"boat_id" validate:"required,max=64"`
	Latitude  *float64  `json:"latitude" validate:"required,latitude"`
	Longitude *float64  `json:"longitude" validate:"required,longitude"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Speed     *float64  `json:"speed,omitempty" validate:"omitempty,gte=0"`
	Heading   *float64  `json:"heading,omitempty" validate:"omitempty,gte=0,lt=360"`
}

// FixResponse DTO результата обработки точки
// @Description DTO результата обработки точки. on_route=false - точка сохранена, но не привязана к маршруту.
type FixResponse struct {
	BoatID          string             `json:"boat_id"`
	OnRoute         bool               `json:"on_route"`
	Status          string             `json:"status,omitempty"`
	DeviationMeters float64            `json:"deviation_meters"`
	Position        *PositionResponse  `json:"position,omitempty"`
	Incidents       []IncidentResponse `json:"incidents"`
}

// RegisterBoatRequest DTO для регистрации лодки
// @Description DTO для регистрации лодки
type RegisterBoatRequest struct {
	ID   string `json:"id" validate:"required,max=64"`
	Name string `json:"name,omitempty" validate:"max=255"`
}

// SetStatusRequest DTO для ручной смены статуса
// @Description DTO для ручной смены статуса
type SetStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=waiting active corridor_warning finished emergency"`
	Message string `json:"message,omitempty" validate:"max=500"`
}

// EmergencyRequest DTO для объявления тревоги
// @Description DTO для объявления тревоги
type EmergencyRequest struct {
	Message string `json:"message,omitempty" validate:"max=500"`
}

// PositionResponse DTO позиции лодки на маршруте
// @Description DTO позиции лодки на маршруте
type PositionResponse struct {
	Latitude                float64   `json:"latitude"`
	Longitude               float64   `json:"longitude"`
	Timestamp               time.Time `json:"timestamp"`
	RouteDistanceMeters     float64   `json:"route_distance_meters"`
	RouteProgressPercent    float64   `json:"route_progress_percent"`
	EstimatedSpeedMps       *float64  `json:"estimated_speed_mps"`
	EstimatedHeadingDegrees float64   `json:"estimated_heading_degrees"`
}

// CorridorResponse DTO положения относительно коридора
// @Description DTO положения относительно коридора
type CorridorResponse struct {
	InCorridor      bool    `json:"in_corridor"`
	DeviationMeters float64 `json:"deviation_meters"`
	WarningCount    int     `json:"warning_count"`
}

// IncidentResponse DTO инцидента лодки
// @Description DTO инцидента лодки
type IncidentResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// BoatResponse DTO для ответа с состоянием лодки
// @Description DTO для ответа с состоянием лодки
type BoatResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Status          string             `json:"status"`
	CurrentPosition *PositionResponse  `json:"current_position"`
	Corridor        CorridorResponse   `json:"corridor"`
	Incidents       []IncidentResponse `json:"incidents"`
	CreatedAt       time.Time          `json:"created_at"`
	LastUpdateAt    time.Time          `json:"last_update_at"`
}

// SightingResponse DTO сырой точки лодки
// @Description DTO сырой точки лодки
type SightingResponse struct {
	ID                  int64     `json:"id"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	OnRoute             bool      `json:"on_route"`
	RouteDistanceMeters *float64  `json:"route_distance_meters,omitempty"`
	FixedAt             time.Time `json:"fixed_at"`
	ReceivedAt          time.Time `json:"received_at"`
}

// WaypointResponse DTO точки маршрута
// @Description DTO точки маршрута
type WaypointResponse struct {
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	CumulativeDistanceMeters float64 `json:"cumulative_distance_meters"`
}

// RouteResponse DTO сводки по маршруту
// @Description DTO сводки по маршруту
type RouteResponse struct {
	TotalDistanceMeters float64            `json:"total_distance_meters"`
	ToleranceMeters     float64            `json:"tolerance_meters"`
	SoftThresholdMeters float64            `json:"soft_threshold_meters"`
	Waypoints           []WaypointResponse `json:"waypoints"`
}
