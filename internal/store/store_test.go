package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/parade_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)

func newTestStore(opts Options) *Store {
	if opts.Now == nil {
		opts.Now = func() time.Time { return t0 }
	}
	return New(opts)
}

func position(distance float64, ts time.Time) models.MappedPosition {
	return models.MappedPosition{
		Latitude:             52.3676,
		Longitude:            4.9041,
		Timestamp:            ts,
		RouteDistanceMeters:  distance,
		RouteProgressPercent: distance / 10,
	}
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(Options{})

	_, err := s.Get("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.History("ghost", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePosition_WithoutCreate_NotFound(t *testing.T) {
	s := newTestStore(Options{})

	_, err := s.UpdatePosition("b1", position(10, t0), false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, s.ListAll())
}

func TestUpdatePosition_CreateIfAbsent(t *testing.T) {
	s := newTestStore(Options{})

	state, err := s.UpdatePosition("b1", position(10, t0), true)
	require.NoError(t, err)

	assert.Equal(t, "b1", state.ID)
	assert.Equal(t, models.StatusActive, state.Status)
	require.NotNil(t, state.CurrentPosition)
	assert.Equal(t, 10.0, state.CurrentPosition.RouteDistanceMeters)
	assert.Len(t, state.History, 1)
	assert.Equal(t, t0, state.CreatedAt)
	assert.Equal(t, t0, state.LastUpdateAt)
}

func TestUpdatePosition_PreSeededBoat(t *testing.T) {
	s := newTestStore(Options{})
	registered := s.Register("b1", "Golden Swan")
	assert.Equal(t, models.StatusWaiting, registered.Status)
	assert.Nil(t, registered.CurrentPosition)

	state, err := s.UpdatePosition("b1", position(5, t0), false)
	require.NoError(t, err)
	assert.Equal(t, "Golden Swan", state.Name)
	assert.Equal(t, models.StatusActive, state.Status)
}

func TestUpdatePosition_HistoryBounded(t *testing.T) {
	s := newTestStore(Options{HistorySize: 3})

	for i := 1; i <= 5; i++ {
		_, err := s.UpdatePosition("b1", position(float64(i), t0.Add(time.Duration(i)*time.Second)), true)
		require.NoError(t, err)
	}

	state, err := s.Get("b1")
	require.NoError(t, err)
	require.Len(t, state.History, 3)
	assert.Equal(t, 3.0, state.History[0].RouteDistanceMeters)
	assert.Equal(t, 5.0, state.History[2].RouteDistanceMeters)
}

func TestHistory_MostRecentFirst(t *testing.T) {
	s := newTestStore(Options{})
	for i := 1; i <= 4; i++ {
		_, err := s.UpdatePosition("b1", position(float64(i), t0), true)
		require.NoError(t, err)
	}

	history, err := s.History("b1", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 4.0, history[0].RouteDistanceMeters)
	assert.Equal(t, 3.0, history[1].RouteDistanceMeters)

	all, err := s.History("b1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSetStatus_StateMachine(t *testing.T) {
	s := newTestStore(Options{})
	s.Register("b1", "")

	_, err := s.SetStatus("b1", models.StatusFinished, nil)
	require.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = s.UpdatePosition("b1", position(1, t0), false)
	require.NoError(t, err)

	state, err := s.SetStatus("b1", models.StatusCorridorWarning, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCorridorWarning, state.Status)

	state, err = s.SetStatus("b1", models.StatusFinished, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, state.Status)

	state, err = s.SetStatus("b1", models.StatusWaiting, nil)
	require.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.Equal(t, models.StatusFinished, state.Status, "current state returned unchanged")
}

func TestSetStatus_EmergencyIsSticky(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.UpdatePosition("b1", position(1, t0), true)
	require.NoError(t, err)

	inc := models.NewIncident(models.IncidentManualEmergency, models.SeverityCritical, "man overboard", t0)
	state, err := s.SetStatus("b1", models.StatusEmergency, &inc)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmergency, state.Status)
	require.Len(t, state.Incidents, 1)

	for _, next := range []models.Status{models.StatusActive, models.StatusWaiting, models.StatusFinished, models.StatusCorridorWarning} {
		_, err := s.SetStatus("b1", next, nil)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	}

	// позиция продолжает писаться для аудита, статус не меняется
	state, err = s.UpdatePosition("b1", position(2, t0), false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmergency, state.Status)
	assert.Len(t, state.History, 2)
}

func TestSetStatus_InvalidTransitionDoesNotAppendIncident(t *testing.T) {
	s := newTestStore(Options{})
	s.Register("b1", "")

	inc := models.NewIncident(models.IncidentSpeedAnomaly, models.SeverityWarning, "too fast", t0)
	state, err := s.SetStatus("b1", models.StatusFinished, &inc)
	require.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.Empty(t, state.Incidents)
}

func TestModify_CriticalIncidentForcesEmergency(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.UpdatePosition("b1", position(1, t0), true)
	require.NoError(t, err)

	state, err := s.Modify("b1", false, func(tx *Tx) error {
		tx.AddIncident(models.NewIncident(models.IncidentSpeedAnomaly, models.SeverityCritical, "capsized", t0))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmergency, state.Status)
}

func TestModify_IncidentsBounded(t *testing.T) {
	s := newTestStore(Options{IncidentLimit: 5})
	s.Register("b1", "")

	for i := 0; i < 8; i++ {
		msg := fmt.Sprintf("incident %d", i)
		_, err := s.Modify("b1", false, func(tx *Tx) error {
			tx.AddIncident(models.NewIncident(models.IncidentSpeedAnomaly, models.SeverityInfo, msg, t0))
			return nil
		})
		require.NoError(t, err)
	}

	state, err := s.Get("b1")
	require.NoError(t, err)
	require.Len(t, state.Incidents, 5)
	assert.Equal(t, "incident 3", state.Incidents[0].Message)
	assert.Equal(t, "incident 7", state.Incidents[4].Message)
}

func TestModify_FailureLeavesNoPartialState(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.UpdatePosition("b1", position(1, t0), true)
	require.NoError(t, err)

	boom := errors.New("boom")
	state, err := s.Modify("b1", false, func(tx *Tx) error {
		tx.RecordPosition(position(99, t0))
		tx.SetCorridor(models.Corridor{InCorridor: false, WarningCount: 7})
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1.0, state.CurrentPosition.RouteDistanceMeters)

	stored, err := s.Get("b1")
	require.NoError(t, err)
	assert.Len(t, stored.History, 1)
	assert.Equal(t, 0, stored.Corridor.WarningCount)
}

func TestModify_FailedCreateDoesNotMaterialize(t *testing.T) {
	s := newTestStore(Options{})

	_, err := s.Modify("b1", true, func(tx *Tx) error {
		return errors.New("not on route")
	})
	require.Error(t, err)

	_, err = s.Get("b1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, s.ListAll())

	for i := 0; i < 100; i++ {
		_, err := s.Modify(fmt.Sprintf("ghost-%d", i), true, func(tx *Tx) error {
			return errors.New("not on route")
		})
		require.Error(t, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.Empty(t, s.boats, "failed creations must not stay in the registry")
}

func TestModify_FailedCreateRacingSuccessfulCreate(t *testing.T) {
	s := newTestStore(Options{})

	const rounds = 200
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		id := fmt.Sprintf("b%d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Modify(id, true, func(tx *Tx) error {
				return errors.New("not on route")
			})
		}()
		go func() {
			defer wg.Done()
			_, err := s.UpdatePosition(id, position(10, t0), true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all := s.ListAll()
	require.Len(t, all, rounds)
	for _, b := range all {
		assert.Len(t, b.History, 1)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.Len(t, s.boats, rounds)
}

func TestClonedSnapshotsAreIsolated(t *testing.T) {
	s := newTestStore(Options{})
	state, err := s.UpdatePosition("b1", position(1, t0), true)
	require.NoError(t, err)

	state.History[0].RouteDistanceMeters = 500
	state.CurrentPosition.RouteDistanceMeters = 500

	stored, err := s.Get("b1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, stored.History[0].RouteDistanceMeters)
	assert.Equal(t, 1.0, stored.CurrentPosition.RouteDistanceMeters)
}

func TestReset_CourseRestart(t *testing.T) {
	s := newTestStore(Options{})
	_, err := s.UpdatePosition("b1", position(80, t0), true)
	require.NoError(t, err)
	_, err = s.SetStatus("b1", models.StatusFinished, nil)
	require.NoError(t, err)

	state, err := s.Modify("b1", false, func(tx *Tx) error {
		tx.Reset()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, state.Status)
	assert.Nil(t, state.CurrentPosition)
	assert.Empty(t, state.History)
	assert.True(t, state.Corridor.InCorridor)
}

func TestRestore(t *testing.T) {
	s := newTestStore(Options{})
	s.Register("b1", "Live")

	restored := s.Restore([]models.BoatState{
		*models.NewBoatState("b1", "Stale copy", t0),
		*models.NewBoatState("b2", "Second", t0),
	})
	assert.Equal(t, 1, restored)

	all := s.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Live", all[0].Name)
	assert.Equal(t, "b2", all[1].ID)
}

func TestConcurrentUpdates_DistinctBoats(t *testing.T) {
	s := newTestStore(Options{Now: time.Now})
	const boats = 50
	const perBoat = 20

	var wg sync.WaitGroup
	for b := 0; b < boats; b++ {
		for i := 0; i < perBoat; i++ {
			wg.Add(1)
			go func(b, i int) {
				defer wg.Done()
				_, err := s.UpdatePosition(fmt.Sprintf("boat-%02d", b), position(float64(i), t0), true)
				assert.NoError(t, err)
			}(b, i)
		}
	}
	wg.Wait()

	all := s.ListAll()
	require.Len(t, all, boats)
	for _, st := range all {
		assert.Len(t, st.History, perBoat, st.ID)
	}
}

func TestConcurrentUpdates_SameBoat(t *testing.T) {
	const m = 200
	s := newTestStore(Options{HistorySize: m, Now: time.Now})
	s.Register("b1", "")

	var wg sync.WaitGroup
	for i := 0; i < m; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.UpdatePosition("b1", position(float64(i), t0.Add(time.Duration(i)*time.Millisecond)), false)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	state, err := s.Get("b1")
	require.NoError(t, err)
	require.Len(t, state.History, m)

	seen := make(map[float64]bool, m)
	for _, p := range state.History {
		assert.False(t, seen[p.RouteDistanceMeters], "duplicate entry %v", p.RouteDistanceMeters)
		seen[p.RouteDistanceMeters] = true
	}
	assert.Len(t, seen, m)
	assert.Equal(t, state.History[m-1], *state.CurrentPosition)
}
