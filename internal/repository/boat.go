package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/parade_tracking_system/internal/models"
	"github.com/shenikar/parade_tracking_system/internal/service"
)

// boatCacheTTL - срок жизни снимка лодки в кеше
const boatCacheTTL = 5 * time.Minute

type BoatRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewBoatRepository(db *pgxpool.Pool, redisClient *redis.Client) service.BoatRepository {
	return &BoatRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// SaveBoatState сохраняет снимок состояния лодки (upsert по id)
func (r *BoatRepository) SaveBoatState(ctx context.Context, state models.BoatState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal boat state: %w", err)
	}

	var lat, lon, progress *float64
	if pos := state.CurrentPosition; pos != nil {
		lat, lon, progress = &pos.Latitude, &pos.Longitude, &pos.RouteProgressPercent
	}

	// Позиция хранится отдельной колонкой, чтобы по ней можно было строить гео-запросы
	query := `
		INSERT INTO boats (id, name, status, location, progress_percent, state, created_at, updated_at)
		VALUES (
			$1, $2, $3,
			CASE WHEN $4::double precision IS NULL THEN NULL
				ELSE ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography END,
			$6, $7, $8, NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			location = EXCLUDED.location,
			progress_percent = EXCLUDED.progress_percent,
			state = EXCLUDED.state,
			updated_at = NOW();
	`
	_, err = r.db.Exec(ctx, query,
		state.ID,
		state.Name,
		state.Status,
		lon,
		lat,
		progress,
		payload,
		state.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save boat state: %w", err)
	}
	return nil
}

// LoadBoatStates возвращает последние сохраненные снимки всех лодок
func (r *BoatRepository) LoadBoatStates(ctx context.Context) ([]models.BoatState, error) {
	query := `SELECT state FROM boats ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load boat states: %w", err)
	}
	defer rows.Close()

	states := make([]models.BoatState, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan boat state row: %w", err)
		}
		var state models.BoatState
		if err := json.Unmarshal(payload, &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal boat state: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error boat states iteration: %w", err)
	}
	return states, nil
}

// SaveIncident сохраняет инцидент. Повторная запись того же инцидента игнорируется.
func (r *BoatRepository) SaveIncident(ctx context.Context, boatID string, incident models.Incident) error {
	query := `
		INSERT INTO boat_incidents (id, boat_id, type, severity, message, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.db.Exec(ctx, query,
		incident.ID,
		boatID,
		incident.Type,
		incident.Severity,
		incident.Message,
		incident.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save incident: %w", err)
	}
	return nil
}

// SaveSighting сохраняет сырую GPS-точку, в том числе не привязанную к маршруту
func (r *BoatRepository) SaveSighting(ctx context.Context, sighting *models.Sighting) error {
	query := `
		INSERT INTO sightings (boat_id, location, on_route, route_distance_meters, fixed_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6) RETURNING id, received_at;
	`
	err := r.db.QueryRow(ctx, query,
		sighting.BoatID,
		sighting.Longitude,
		sighting.Latitude,
		sighting.OnRoute,
		sighting.RouteDistanceMeters,
		sighting.FixedAt,
	).Scan(&sighting.ID, &sighting.ReceivedAt)
	if err != nil {
		return fmt.Errorf("failed to save sighting: %w", err)
	}
	return nil
}

// ListSightings возвращает последние точки лодки, начиная с самой свежей
func (r *BoatRepository) ListSightings(ctx context.Context, boatID string, limit int) ([]*models.Sighting, error) {
	query := `
		SELECT
			id,
			boat_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			on_route,
			route_distance_meters,
			fixed_at,
			received_at
		FROM sightings
		WHERE boat_id = $1
		ORDER BY fixed_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, boatID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sightings: %w", err)
	}
	defer rows.Close()

	sightings := make([]*models.Sighting, 0)
	for rows.Next() {
		s := &models.Sighting{}
		err := rows.Scan(
			&s.ID,
			&s.BoatID,
			&s.Latitude,
			&s.Longitude,
			&s.OnRoute,
			&s.RouteDistanceMeters,
			&s.FixedAt,
			&s.ReceivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sighting row: %w", err)
		}
		sightings = append(sightings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error sightings iteration: %w", err)
	}
	return sightings, nil
}

func boatCacheKey(id string) string {
	return fmt.Sprintf("boat:%s", id)
}

// SetBoatCache сохраняет снимок лодки в Redis для внешних дашбордов
func (r *BoatRepository) SetBoatCache(ctx context.Context, state models.BoatState) error {
	val, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal boat for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, boatCacheKey(state.ID), val, boatCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set boat in cache: %w", err)
	}
	return nil
}
