package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition - переход статуса не разрешен машиной состояний
var ErrInvalidTransition = errors.New("invalid status transition")

// Status - состояние лодки на параде
type Status string

const (
	StatusWaiting         Status = "waiting"
	StatusActive          Status = "active"
	StatusCorridorWarning Status = "corridor_warning"
	StatusFinished        Status = "finished"
	StatusEmergency       Status = "emergency"
)

// Valid проверяет, что статус входит в перечисление
func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusActive, StatusCorridorWarning, StatusFinished, StatusEmergency:
		return true
	}
	return false
}

// AcceptsPositionChanges - false для finished и emergency: позиция еще пишется,
// но статус по позиции больше не меняется
func (s Status) AcceptsPositionChanges() bool {
	return s != StatusFinished && s != StatusEmergency
}

// CanTransitionTo проверяет переход по машине состояний.
// Выход из emergency здесь не разрешен: это отдельная операция сброса.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.Valid() {
		return false
	}
	if next == StatusEmergency {
		return true
	}
	if s == next {
		return true
	}
	switch s {
	case StatusWaiting:
		return next == StatusActive
	case StatusActive:
		return next == StatusCorridorWarning || next == StatusFinished
	case StatusCorridorWarning:
		return next == StatusActive || next == StatusFinished
	}
	return false
}

// TransitionError описывает отклоненный переход
func TransitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Corridor - положение лодки относительно коридора безопасности
type Corridor struct {
	InCorridor      bool    `json:"in_corridor"`
	DeviationMeters float64 `json:"deviation_meters"`
	// Число эпизодов выхода в мягкую зону: растет при входе в зону, а не на каждой точке в ней
	WarningCount    int     `json:"warning_count"`
}

// Motion - служебное состояние детекторов аномалий скорости и тишины
type Motion struct {
	StoppedSince  time.Time `json:"stopped_since,omitempty"`
	StopReported  bool      `json:"stop_reported"`
	Overspeeding  bool      `json:"overspeeding"`
	StaleReported bool      `json:"stale_reported"`
}

// BoatState - состояние одной лодки. Меняется только через хранилище.
type BoatState struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Status          Status           `json:"status"`
	CurrentPosition *MappedPosition  `json:"current_position"`
	Corridor        Corridor         `json:"corridor"`
	History         []MappedPosition `json:"history"`
	Incidents       []Incident       `json:"incidents"`
	Motion          Motion           `json:"motion"`
	CreatedAt       time.Time        `json:"created_at"`
	LastUpdateAt    time.Time        `json:"last_update_at"`
}

// NewBoatState создает запись в статусе waiting
func NewBoatState(id, name string, now time.Time) *BoatState {
	if name == "" {
		name = id
	}
	return &BoatState{
		ID:        id,
		Name:      name,
		Status:    StatusWaiting,
		Corridor:  Corridor{InCorridor: true},
		History:   make([]MappedPosition, 0),
		Incidents: make([]Incident, 0),
		CreatedAt: now,
	}
}

// Clone возвращает глубокую копию, не разделяющую срезы с оригиналом
func (b *BoatState) Clone() BoatState {
	c := *b
	if b.CurrentPosition != nil {
		p := *b.CurrentPosition
		c.CurrentPosition = &p
	}
	c.History = append(make([]MappedPosition, 0, len(b.History)), b.History...)
	c.Incidents = append(make([]Incident, 0, len(b.Incidents)), b.Incidents...)
	return c
}
