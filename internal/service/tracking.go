package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/parade_tracking_system/internal/config"
	"github.com/shenikar/parade_tracking_system/internal/models"
	"github.com/shenikar/parade_tracking_system/internal/policy"
	"github.com/shenikar/parade_tracking_system/internal/route"
	"github.com/shenikar/parade_tracking_system/internal/store"
	"github.com/shenikar/parade_tracking_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrInvalidFix - координаты или время точки вне допустимых значений
var ErrInvalidFix = errors.New("invalid position fix")

// ErrBoatIDRequired - операция вызвана без идентификатора лодки
var ErrBoatIDRequired = errors.New("boat id is required")

// errNothingToDo прерывает Modify без изменений, наружу не выходит
var errNothingToDo = errors.New("nothing to do")

// BoatRepository определяет контракт для зеркалирования состояния лодок в бд и кеш
type BoatRepository interface {
	SaveBoatState(ctx context.Context, state models.BoatState) error
	LoadBoatStates(ctx context.Context) ([]models.BoatState, error)
	SaveIncident(ctx context.Context, boatID string, incident models.Incident) error
	SaveSighting(ctx context.Context, sighting *models.Sighting) error
	ListSightings(ctx context.Context, boatID string, limit int) ([]*models.Sighting, error)
	SetBoatCache(ctx context.Context, state models.BoatState) error
}

// TrackingService определяет контракт для отслеживания лодок на маршруте
type TrackingService interface {
	IngestFix(ctx context.Context, boatID string, fix models.PositionFix) (*IngestResult, error)
	RegisterBoat(ctx context.Context, id, name string) (models.BoatState, error)
	GetBoat(ctx context.Context, id string) (models.BoatState, error)
	ListBoats(ctx context.Context) ([]models.BoatState, error)
	History(ctx context.Context, id string, limit int) ([]models.MappedPosition, error)
	Sightings(ctx context.Context, id string, limit int) ([]*models.Sighting, error)
	SetStatus(ctx context.Context, id string, status models.Status, message string) (models.BoatState, error)
	DeclareEmergency(ctx context.Context, id, message string) (models.BoatState, error)
	ClearEmergency(ctx context.Context, id string) (models.BoatState, error)
	ResetBoat(ctx context.Context, id string) (models.BoatState, error)
	SweepStale(ctx context.Context, now time.Time) (int, error)
	Restore(ctx context.Context) (int, error)
	Route() RouteInfo
}

// IngestResult - итог обработки одной GPS-точки
type IngestResult struct {
	Boat            models.BoatState
	OnRoute         bool
	DeviationMeters float64
	Incidents       []models.Incident
}

// RouteInfo - сводка по маршруту для API
type RouteInfo struct {
	TotalDistanceMeters float64
	ToleranceMeters     float64
	SoftThresholdMeters float64
	Waypoints           []route.Waypoint
}

type trackingService struct {
	route        *route.Route
	store        *store.Store
	policy       *policy.Policy
	repo         BoatRepository
	publisher    webhook.EventPublisher
	logger       *logrus.Logger
	autoRegister bool
}

func NewTrackingService(
	r *route.Route,
	st *store.Store,
	pol *policy.Policy,
	repo BoatRepository,
	publisher webhook.EventPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) TrackingService {
	return &trackingService{
		route:        r,
		store:        st,
		policy:       pol,
		repo:         repo,
		publisher:    publisher,
		logger:       logger,
		autoRegister: cfg.AutoRegisterBoats,
	}
}

// IngestFix проецирует точку на маршрут, обновляет состояние лодки и применяет
// политику коридора. Все три шага идут под блокировкой лодки.
func (s *trackingService) IngestFix(ctx context.Context, boatID string, fix models.PositionFix) (*IngestResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "IngestFix",
		"boat_id": boatID,
	})
	log.Debug("Ingesting position fix")

	if err := validateFix(boatID, fix); err != nil {
		log.WithError(err).Warn("Rejected invalid position fix")
		return nil, fmt.Errorf("service: %w", err)
	}

	var (
		projection route.Projection
		outcome    policy.Outcome
		prevStatus models.Status
	)
	state, err := s.store.Modify(boatID, s.autoRegister, func(tx *store.Tx) error {
		current := tx.State()
		prevStatus = current.Status

		p, err := route.MapToRoute(s.route, fix, current.CurrentPosition)
		projection = p
		if err != nil {
			return err
		}
		// скорость с трекера, если оценить по предыдущей точке не удалось
		if p.Position.EstimatedSpeed == nil && fix.RawSpeed != nil {
			v := *fix.RawSpeed
			p.Position.EstimatedSpeed = &v
		}

		tx.RecordPosition(p.Position)
		outcome = s.policy.Evaluate(tx.State(), p.DeviationMeters)
		tx.SetCorridor(outcome.Corridor)
		tx.SetMotion(outcome.Motion)
		if err := tx.Transition(outcome.Status); err != nil {
			return err
		}
		for _, inc := range outcome.Incidents {
			tx.AddIncident(inc)
		}
		return nil
	})

	switch {
	case errors.Is(err, route.ErrNotOnRoute):
		log.WithField("deviation_meters", projection.DeviationMeters).Info("Position fix is not on route")
		s.saveSighting(ctx, log, boatID, fix, nil)
		return &IngestResult{
			Boat:            state,
			OnRoute:         false,
			DeviationMeters: projection.DeviationMeters,
		}, nil
	case err != nil:
		log.WithError(err).Warn("Failed to ingest position fix")
		return nil, fmt.Errorf("service: could not ingest fix: %w", err)
	}

	distance := state.CurrentPosition.RouteDistanceMeters
	s.saveSighting(ctx, log, boatID, fix, &distance)
	s.persist(ctx, log, state, outcome.Incidents)
	s.publish(ctx, log, state, prevStatus, outcome.Incidents)

	log.WithFields(logrus.Fields{
		"status":           state.Status,
		"progress_percent": state.CurrentPosition.RouteProgressPercent,
		"deviation_meters": projection.DeviationMeters,
	}).Debug("Position fix ingested")

	return &IngestResult{
		Boat:            state,
		OnRoute:         true,
		DeviationMeters: projection.DeviationMeters,
		Incidents:       outcome.Incidents,
	}, nil
}

// RegisterBoat заводит лодку до старта. Повторная регистрация обновляет имя.
func (s *trackingService) RegisterBoat(ctx context.Context, id, name string) (models.BoatState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "RegisterBoat",
		"boat_id": id,
	})
	if id == "" {
		return models.BoatState{}, fmt.Errorf("service: could not register boat: %w", ErrBoatIDRequired)
	}

	state := s.store.Register(id, name)
	s.persist(ctx, log, state, nil)

	log.Info("Boat registered")
	return state, nil
}

func (s *trackingService) GetBoat(ctx context.Context, id string) (models.BoatState, error) {
	state, err := s.store.Get(id)
	if err != nil {
		return models.BoatState{}, fmt.Errorf("service: could not get boat: %w", err)
	}
	return state, nil
}

func (s *trackingService) ListBoats(ctx context.Context) ([]models.BoatState, error) {
	return s.store.ListAll(), nil
}

// History возвращает последние позиции лодки, начиная с самой свежей
func (s *trackingService) History(ctx context.Context, id string, limit int) ([]models.MappedPosition, error) {
	history, err := s.store.History(id, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not get history: %w", err)
	}
	return history, nil
}

// Sightings возвращает сырые точки лодки из бд, включая не привязанные к маршруту
func (s *trackingService) Sightings(ctx context.Context, id string, limit int) ([]*models.Sighting, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "Sightings",
		"boat_id": id,
	})
	if _, err := s.store.Get(id); err != nil {
		return nil, fmt.Errorf("service: could not list sightings: %w", err)
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}

	sightings, err := s.repo.ListSightings(ctx, id, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list sightings from repository")
		return nil, fmt.Errorf("service: could not list sightings: %w", err)
	}
	return sightings, nil
}

// SetStatus меняет статус вручную по машине состояний.
// emergency всегда сопровождается критическим инцидентом.
func (s *trackingService) SetStatus(ctx context.Context, id string, status models.Status, message string) (models.BoatState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "SetStatus",
		"boat_id": id,
		"status":  status,
	})
	if !status.Valid() {
		return models.BoatState{}, fmt.Errorf("service: %w: unknown status %q", models.ErrInvalidTransition, status)
	}
	if status == models.StatusEmergency {
		return s.DeclareEmergency(ctx, id, message)
	}

	var prevStatus models.Status
	state, err := s.store.Modify(id, false, func(tx *store.Tx) error {
		prevStatus = tx.State().Status
		return tx.Transition(status)
	})
	if err != nil {
		log.WithError(err).Warn("Status change rejected")
		return state, fmt.Errorf("service: could not set status: %w", err)
	}

	s.persist(ctx, log, state, nil)
	s.publish(ctx, log, state, prevStatus, nil)
	log.Info("Boat status changed")
	return state, nil
}

// DeclareEmergency объявляет тревогу из любого статуса
func (s *trackingService) DeclareEmergency(ctx context.Context, id, message string) (models.BoatState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "DeclareEmergency",
		"boat_id": id,
	})

	var (
		inc        models.Incident
		prevStatus models.Status
	)
	state, err := s.store.Modify(id, false, func(tx *store.Tx) error {
		prevStatus = tx.State().Status
		inc = policy.ManualEmergency(message, tx.Now())
		tx.AddIncident(inc)
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to declare emergency")
		return state, fmt.Errorf("service: could not declare emergency: %w", err)
	}

	incidents := []models.Incident{inc}
	s.persist(ctx, log, state, incidents)
	s.publish(ctx, log, state, prevStatus, incidents)
	log.Warn("Emergency declared")
	return state, nil
}

// ClearEmergency снимает тревогу в обход машины состояний. Лодка возвращается
// в active, finished или waiting в зависимости от последней позиции.
func (s *trackingService) ClearEmergency(ctx context.Context, id string) (models.BoatState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "ClearEmergency",
		"boat_id": id,
	})

	var inc models.Incident
	state, err := s.store.Modify(id, false, func(tx *store.Tx) error {
		current := tx.State()
		if current.Status != models.StatusEmergency {
			return models.TransitionError(current.Status, models.StatusActive)
		}

		next := models.StatusWaiting
		if pos := current.CurrentPosition; pos != nil {
			next = models.StatusActive
			if pos.RouteProgressPercent >= s.policy.Config().FinishThresholdPercent {
				next = models.StatusFinished
			}
		}
		tx.Override(next)

		inc = models.NewIncident(models.IncidentManualEmergency, models.SeverityInfo,
			fmt.Sprintf("emergency cleared, status %s", next), tx.Now())
		tx.AddIncident(inc)
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to clear emergency")
		return state, fmt.Errorf("service: could not clear emergency: %w", err)
	}

	incidents := []models.Incident{inc}
	s.persist(ctx, log, state, incidents)
	s.publish(ctx, log, state, models.StatusEmergency, incidents)
	log.WithField("status", state.Status).Info("Emergency cleared")
	return state, nil
}

// ResetBoat перезапускает дистанцию лодки
func (s *trackingService) ResetBoat(ctx context.Context, id string) (models.BoatState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "ResetBoat",
		"boat_id": id,
	})

	var prevStatus models.Status
	state, err := s.store.Modify(id, false, func(tx *store.Tx) error {
		prevStatus = tx.State().Status
		tx.Reset()
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to reset boat")
		return state, fmt.Errorf("service: could not reset boat: %w", err)
	}

	s.persist(ctx, log, state, nil)
	s.publish(ctx, log, state, prevStatus, nil)
	log.Info("Boat reset")
	return state, nil
}

// SweepStale проверяет все лодки на молчание трекера. Снимки берутся из ListAll,
// решение перепроверяется под блокировкой каждой лодки.
func (s *trackingService) SweepStale(ctx context.Context, now time.Time) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "SweepStale",
	})

	reported := 0
	for _, snapshot := range s.store.ListAll() {
		if err := ctx.Err(); err != nil {
			return reported, err
		}
		if _, stale := s.policy.CheckStale(snapshot, now); !stale {
			continue
		}

		var inc models.Incident
		state, err := s.store.Modify(snapshot.ID, false, func(tx *store.Tx) error {
			current := tx.State()
			found, stale := s.policy.CheckStale(current, now)
			if !stale {
				return errNothingToDo
			}
			motion := current.Motion
			motion.StaleReported = true
			tx.SetMotion(motion)
			tx.AddIncident(found)
			inc = found
			return nil
		})
		if errors.Is(err, errNothingToDo) {
			continue
		}
		if err != nil {
			log.WithError(err).WithField("boat_id", snapshot.ID).Warn("Failed to record stale position")
			continue
		}

		reported++
		boatLog := log.WithField("boat_id", state.ID)
		boatLog.Warn(inc.Message)
		incidents := []models.Incident{inc}
		s.persist(ctx, boatLog, state, incidents)
		s.publish(ctx, boatLog, state, state.Status, incidents)
	}

	if reported > 0 {
		log.WithField("count", reported).Info("Stale boats reported")
	}
	return reported, nil
}

// Restore подгружает последние снимки из бд после рестарта
func (s *trackingService) Restore(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "Restore",
	})

	states, err := s.repo.LoadBoatStates(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load boat states from repository")
		return 0, fmt.Errorf("service: could not restore boats: %w", err)
	}

	restored := s.store.Restore(states)
	log.WithFields(logrus.Fields{
		"loaded":   len(states),
		"restored": restored,
	}).Info("Boat states restored")
	return restored, nil
}

func (s *trackingService) Route() RouteInfo {
	return RouteInfo{
		TotalDistanceMeters: s.route.TotalDistanceMeters(),
		ToleranceMeters:     s.route.ToleranceMeters(),
		SoftThresholdMeters: s.policy.SoftThresholdMeters(),
		Waypoints:           s.route.Waypoints(),
	}
}

func validateFix(boatID string, fix models.PositionFix) error {
	switch {
	case boatID == "":
		return fmt.Errorf("%w: %w", ErrInvalidFix, ErrBoatIDRequired)
	case math.IsNaN(fix.Latitude) || fix.Latitude < -90 || fix.Latitude > 90:
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidFix, fix.Latitude)
	case math.IsNaN(fix.Longitude) || fix.Longitude < -180 || fix.Longitude > 180:
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidFix, fix.Longitude)
	case fix.Timestamp.IsZero():
		return fmt.Errorf("%w: timestamp is required", ErrInvalidFix)
	case fix.RawSpeed != nil && (math.IsNaN(*fix.RawSpeed) || *fix.RawSpeed < 0):
		return fmt.Errorf("%w: negative speed", ErrInvalidFix)
	}
	return nil
}

// Ошибки зеркалирования и публикации только логируются: живое состояние в памяти
// уже обновлено и остается авторитетным.

func (s *trackingService) saveSighting(ctx context.Context, log *logrus.Entry, boatID string, fix models.PositionFix, distance *float64) {
	sighting := &models.Sighting{
		BoatID:              boatID,
		Latitude:            fix.Latitude,
		Longitude:           fix.Longitude,
		OnRoute:             distance != nil,
		RouteDistanceMeters: distance,
		FixedAt:             fix.Timestamp,
	}
	if err := s.repo.SaveSighting(ctx, sighting); err != nil {
		log.WithError(err).Warn("Failed to save sighting")
	}
}

func (s *trackingService) persist(ctx context.Context, log *logrus.Entry, state models.BoatState, incidents []models.Incident) {
	if err := s.repo.SaveBoatState(ctx, state); err != nil {
		log.WithError(err).Warn("Failed to save boat state")
	}
	for _, inc := range incidents {
		if err := s.repo.SaveIncident(ctx, state.ID, inc); err != nil {
			log.WithError(err).WithField("incident_id", inc.ID).Warn("Failed to save incident")
		}
	}
	if err := s.repo.SetBoatCache(ctx, state); err != nil {
		log.WithError(err).Warn("Failed to cache boat state")
	}
}

func (s *trackingService) publish(ctx context.Context, log *logrus.Entry, state models.BoatState, prevStatus models.Status, incidents []models.Incident) {
	for i := range incidents {
		event := newBoatEvent(webhook.EventIncident, state)
		event.Incident = &incidents[i]
		event.Timestamp = incidents[i].Timestamp
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish incident event")
		}
	}

	if prevStatus == state.Status {
		return
	}
	event := newBoatEvent(webhook.EventStatusChanged, state)
	event.PreviousStatus = prevStatus
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish status change event")
	}
}

func newBoatEvent(t webhook.EventType, state models.BoatState) webhook.BoatEvent {
	event := webhook.BoatEvent{
		Type:      t,
		BoatID:    state.ID,
		BoatName:  state.Name,
		Status:    state.Status,
		Timestamp: state.LastUpdateAt,
	}
	if pos := state.CurrentPosition; pos != nil {
		event.Latitude = pos.Latitude
		event.Longitude = pos.Longitude
		event.ProgressPercent = pos.RouteProgressPercent
	}
	return event
}
