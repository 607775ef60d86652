package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - тип аномалии, зафиксированной для лодки
type IncidentType string

const (
	IncidentCorridorDeviation IncidentType = "corridor_deviation"
	IncidentStalePosition     IncidentType = "stale_position"
	IncidentSpeedAnomaly      IncidentType = "speed_anomaly"
	IncidentManualEmergency   IncidentType = "manual_emergency"
)

// Severity - уровень серьезности инцидента
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Incident - запись об аномалии. Добавляется в список и больше не изменяется.
type Incident struct {
	ID        uuid.UUID    `json:"id"`
	Type      IncidentType `json:"type"`
	Severity  Severity     `json:"severity"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewIncident создает инцидент с новым идентификатором
func NewIncident(t IncidentType, severity Severity, message string, ts time.Time) Incident {
	return Incident{
		ID:        uuid.New(),
		Type:      t,
		Severity:  severity,
		Message:   message,
		Timestamp: ts,
	}
}

// IsCritical сообщает, переводит ли инцидент лодку в emergency
func (i Incident) IsCritical() bool {
	return i.Severity == SeverityCritical
}
