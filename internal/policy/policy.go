package policy

import (
	"fmt"
	"time"

	"github.com/shenikar/parade_tracking_system/internal/models"
)

// Config - пороги политики. Значения по умолчанию - разумная стартовая точка,
// на конкретном параде их задают через конфигурацию.
type Config struct {
	// Доля допуска коридора, выше которой начинается мягкое предупреждение
	SoftRatio              float64
	MaxSpeedMetersPerSec   float64
	StopGracePeriod        time.Duration
	StaleAfter             time.Duration
	FinishThresholdPercent float64
}

// DefaultConfig возвращает пороги по умолчанию
func DefaultConfig() Config {
	return Config{
		SoftRatio:              0.5,
		MaxSpeedMetersPerSec:   15.0 / 3.6,
		StopGracePeriod:        3 * time.Minute,
		StaleAfter:             2 * time.Minute,
		FinishThresholdPercent: 99,
	}
}

// Outcome - решение политики по одной позиции
type Outcome struct {
	Status    models.Status
	Corridor  models.Corridor
	Motion    models.Motion
	Incidents []models.Incident
}

// Policy оценивает позицию лодки относительно коридора и правил аномалий.
// Не хранит состояние и не меняет переданные значения.
type Policy struct {
	cfg       Config
	tolerance float64
}

// New создает политику для маршрута с заданным допуском коридора
func New(cfg Config, toleranceMeters float64) *Policy {
	def := DefaultConfig()
	if cfg.SoftRatio <= 0 || cfg.SoftRatio > 1 {
		cfg.SoftRatio = def.SoftRatio
	}
	if cfg.MaxSpeedMetersPerSec <= 0 {
		cfg.MaxSpeedMetersPerSec = def.MaxSpeedMetersPerSec
	}
	if cfg.StopGracePeriod <= 0 {
		cfg.StopGracePeriod = def.StopGracePeriod
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = def.StaleAfter
	}
	if cfg.FinishThresholdPercent <= 0 || cfg.FinishThresholdPercent > 100 {
		cfg.FinishThresholdPercent = def.FinishThresholdPercent
	}
	return &Policy{cfg: cfg, tolerance: toleranceMeters}
}

func (p *Policy) Config() Config {
	return p.cfg
}

// SoftThresholdMeters - граница мягкого предупреждения
func (p *Policy) SoftThresholdMeters() float64 {
	return p.tolerance * p.cfg.SoftRatio
}

// Evaluate оценивает только что записанную позицию. state - состояние после
// записи позиции, deviation - перпендикулярное отклонение от маршрута.
func (p *Policy) Evaluate(state models.BoatState, deviation float64) Outcome {
	out := Outcome{
		Status:   state.Status,
		Corridor: state.Corridor,
		Motion:   state.Motion,
	}
	if state.CurrentPosition == nil || !state.Status.AcceptsPositionChanges() {
		return out
	}
	pos := *state.CurrentPosition

	p.evaluateCorridor(&out, deviation, pos.Timestamp)
	p.evaluateSpeed(&out, pos)

	if pos.RouteProgressPercent >= p.cfg.FinishThresholdPercent {
		out.Status = models.StatusFinished
	}
	return out
}

func (p *Policy) evaluateCorridor(out *Outcome, deviation float64, ts time.Time) {
	soft := p.SoftThresholdMeters()
	wasInside := out.Corridor.InCorridor
	out.Corridor.DeviationMeters = deviation

	if deviation <= soft {
		out.Corridor.InCorridor = true
		if out.Status == models.StatusCorridorWarning {
			out.Status = models.StatusActive
		}
		return
	}

	out.Corridor.InCorridor = false
	out.Status = models.StatusCorridorWarning
	if !wasInside {
		return
	}

	out.Corridor.WarningCount++
	severity := models.SeverityInfo
	// верхняя половина полосы между мягким и жестким порогом
	if deviation > soft+(p.tolerance-soft)/2 {
		severity = models.SeverityWarning
	}
	out.Incidents = append(out.Incidents, models.NewIncident(
		models.IncidentCorridorDeviation,
		severity,
		fmt.Sprintf("deviation %.1f m exceeds corridor soft limit %.1f m", deviation, soft),
		ts,
	))
}

func (p *Policy) evaluateSpeed(out *Outcome, pos models.MappedPosition) {
	if pos.EstimatedSpeed == nil {
		return
	}
	speed := *pos.EstimatedSpeed

	if speed > p.cfg.MaxSpeedMetersPerSec {
		if !out.Motion.Overspeeding {
			out.Incidents = append(out.Incidents, models.NewIncident(
				models.IncidentSpeedAnomaly,
				models.SeverityWarning,
				fmt.Sprintf("speed %.1f km/h exceeds limit %.1f km/h", speed*3.6, p.cfg.MaxSpeedMetersPerSec*3.6),
				pos.Timestamp,
			))
		}
		out.Motion.Overspeeding = true
	} else {
		out.Motion.Overspeeding = false
	}

	if speed > 0 {
		out.Motion.StoppedSince = time.Time{}
		out.Motion.StopReported = false
		return
	}

	if out.Motion.StoppedSince.IsZero() {
		out.Motion.StoppedSince = pos.Timestamp
		return
	}
	stopped := pos.Timestamp.Sub(out.Motion.StoppedSince)
	if stopped >= p.cfg.StopGracePeriod && !out.Motion.StopReported && out.Status == models.StatusActive {
		out.Motion.StopReported = true
		out.Incidents = append(out.Incidents, models.NewIncident(
			models.IncidentSpeedAnomaly,
			models.SeverityWarning,
			fmt.Sprintf("boat stopped for %s", stopped.Truncate(time.Second)),
			pos.Timestamp,
		))
	}
}

// CheckStale проверяет, не замолчал ли трекер. Вызывается периодическим обходом,
// а не на каждую точку. Повторно не срабатывает, пока не придет новая позиция.
func (p *Policy) CheckStale(state models.BoatState, now time.Time) (models.Incident, bool) {
	if state.Status != models.StatusActive && state.Status != models.StatusCorridorWarning {
		return models.Incident{}, false
	}
	if state.Motion.StaleReported || state.LastUpdateAt.IsZero() {
		return models.Incident{}, false
	}
	silence := now.Sub(state.LastUpdateAt)
	if silence <= p.cfg.StaleAfter {
		return models.Incident{}, false
	}
	return models.NewIncident(
		models.IncidentStalePosition,
		models.SeverityWarning,
		fmt.Sprintf("no position for %s", silence.Truncate(time.Second)),
		now,
	), true
}

// ManualEmergency - инцидент ручного объявления тревоги, всегда критический
func ManualEmergency(message string, now time.Time) models.Incident {
	if message == "" {
		message = "emergency declared"
	}
	return models.NewIncident(models.IncidentManualEmergency, models.SeverityCritical, message, now)
}
