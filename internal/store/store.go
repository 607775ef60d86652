package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/parade_tracking_system/internal/models"
)

// ErrNotFound - лодка с таким id не зарегистрирована
var ErrNotFound = errors.New("boat not found")

const (
	DefaultHistorySize   = 50
	DefaultIncidentLimit = 200
)

// Options - ограничения хранилища
type Options struct {
	HistorySize   int
	IncidentLimit int
	// Now подменяется в тестах
	Now func() time.Time
}

// entry - запись реестра со своей блокировкой. state == nil означает,
// что запись еще не материализована. removed - запись уже удалена из реестра,
// ее держатель должен повторить поиск.
type entry struct {
	mu      sync.Mutex
	state   *models.BoatState
	removed bool
}

// Store хранит состояние лодок в памяти. Обновления одной лодки
// сериализуются ее собственным мьютексом, разные лодки не блокируют друг друга.
type Store struct {
	mu    sync.RWMutex
	boats map[string]*entry

	historySize   int
	incidentLimit int
	now           func() time.Time
}

// New создает пустое хранилище
func New(opts Options) *Store {
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.IncidentLimit <= 0 {
		opts.IncidentLimit = DefaultIncidentLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		boats:         make(map[string]*entry),
		historySize:   opts.HistorySize,
		incidentLimit: opts.IncidentLimit,
		now:           opts.Now,
	}
}

// lookup находит запись; при create=true создает пустую запись под записью в реестр
func (s *Store) lookup(id string, create bool) *entry {
	s.mu.RLock()
	e, ok := s.boats[id]
	s.mu.RUnlock()
	if ok || !create {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.boats[id]; ok {
		return e
	}
	e = &entry{}
	s.boats[id] = e
	return e
}

// acquire находит запись и захватывает ее блокировку. Возвращает nil, если записи нет.
func (s *Store) acquire(id string, create bool) *entry {
	for {
		e := s.lookup(id, create)
		if e == nil {
			return nil
		}
		e.mu.Lock()
		if !e.removed {
			return e
		}
		e.mu.Unlock()
	}
}

// discard убирает из реестра так и не материализованную запись. Вызывается под e.mu.
func (s *Store) discard(id string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.boats[id]; ok && cur == e {
		delete(s.boats, id)
	}
	e.removed = true
}

// MutateFunc выполняется под блокировкой лодки над рабочей копией состояния
type MutateFunc func(tx *Tx) error

// Modify атомарно применяет fn к состоянию лодки. Изменения фиксируются, только
// если fn вернула nil; иначе возвращается неизмененное текущее состояние и ошибка.
func (s *Store) Modify(id string, createIfAbsent bool, fn MutateFunc) (models.BoatState, error) {
	e := s.acquire(id, createIfAbsent)
	if e == nil {
		return models.BoatState{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	defer e.mu.Unlock()

	now := s.now()
	var working models.BoatState
	switch {
	case e.state != nil:
		working = e.state.Clone()
	case createIfAbsent:
		working = *models.NewBoatState(id, "", now)
	default:
		return models.BoatState{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	tx := &Tx{
		state:         &working,
		historySize:   s.historySize,
		incidentLimit: s.incidentLimit,
		now:           now,
	}
	if err := fn(tx); err != nil {
		if e.state == nil {
			s.discard(id, e)
			return models.BoatState{}, err
		}
		return e.state.Clone(), err
	}

	e.state = &working
	return working.Clone(), nil
}

// Register заранее заводит лодку из реестра. Повторный вызов обновляет только имя.
func (s *Store) Register(id, name string) models.BoatState {
	state, _ := s.Modify(id, true, func(tx *Tx) error {
		if name != "" {
			tx.state.Name = name
		}
		return nil
	})
	return state
}

// Restore подгружает ранее сохраненные снимки. Уже существующие лодки не трогает.
func (s *Store) Restore(states []models.BoatState) int {
	restored := 0
	for i := range states {
		st := states[i].Clone()
		e := s.acquire(st.ID, true)
		if e.state == nil {
			e.state = &st
			restored++
		}
		e.mu.Unlock()
	}
	return restored
}

// Get возвращает снимок состояния лодки
func (s *Store) Get(id string) (models.BoatState, error) {
	e := s.lookup(id, false)
	if e == nil {
		return models.BoatState{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return models.BoatState{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.state.Clone(), nil
}

// UpdatePosition - единственная точка записи позиции лодки
func (s *Store) UpdatePosition(id string, mapped models.MappedPosition, createIfAbsent bool) (models.BoatState, error) {
	return s.Modify(id, createIfAbsent, func(tx *Tx) error {
		tx.RecordPosition(mapped)
		return nil
	})
}

// SetStatus меняет статус по машине состояний и добавляет инцидент, если он передан.
// Недопустимый переход возвращает текущее состояние без изменений.
func (s *Store) SetStatus(id string, status models.Status, incident *models.Incident) (models.BoatState, error) {
	return s.Modify(id, false, func(tx *Tx) error {
		if err := tx.Transition(status); err != nil {
			return err
		}
		if incident != nil {
			tx.AddIncident(*incident)
		}
		return nil
	})
}

// ListAll возвращает снимки всех лодок, отсортированные по id
func (s *Store) ListAll() []models.BoatState {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.boats))
	for _, e := range s.boats {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]models.BoatState, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if e.state != nil {
			out = append(out, e.state.Clone())
		}
		e.mu.Unlock()
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// History возвращает историю позиций, начиная с самой свежей. limit <= 0 - без ограничения.
func (s *Store) History(id string, limit int) ([]models.MappedPosition, error) {
	state, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	n := len(state.History)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.MappedPosition, 0, n)
	for i := len(state.History) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, state.History[i])
	}
	return out, nil
}
