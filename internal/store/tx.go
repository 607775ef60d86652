package store

import (
	"time"

	"github.com/shenikar/parade_tracking_system/internal/models"
)

// Tx - рабочая копия состояния лодки внутри Modify.
// Все изменения BoatState проходят через ее методы.
type Tx struct {
	state         *models.BoatState
	historySize   int
	incidentLimit int
	now           time.Time
}

// State возвращает текущее состояние рабочей копии только для чтения.
// Срезы разделяются с копией, менять их нельзя.
func (tx *Tx) State() models.BoatState {
	return *tx.state
}

// Now - время начала операции
func (tx *Tx) Now() time.Time {
	return tx.now
}

// RecordPosition пишет позицию и историю; первая позиция переводит waiting в active
func (tx *Tx) RecordPosition(p models.MappedPosition) {
	st := tx.state
	if len(st.History) >= tx.historySize {
		drop := len(st.History) - tx.historySize + 1
		st.History = append(st.History[:0:0], st.History[drop:]...)
	}
	st.History = append(st.History, p)
	st.CurrentPosition = &p
	st.LastUpdateAt = tx.now
	st.Motion.StaleReported = false

	if st.Status == models.StatusWaiting {
		st.Status = models.StatusActive
	}
}

// Transition меняет статус по машине состояний
func (tx *Tx) Transition(to models.Status) error {
	from := tx.state.Status
	if !from.CanTransitionTo(to) {
		return models.TransitionError(from, to)
	}
	tx.state.Status = to
	return nil
}

// AddIncident добавляет инцидент, вытесняя самые старые сверх лимита.
// Критический инцидент всегда переводит лодку в emergency.
func (tx *Tx) AddIncident(inc models.Incident) {
	st := tx.state
	if len(st.Incidents) >= tx.incidentLimit {
		drop := len(st.Incidents) - tx.incidentLimit + 1
		st.Incidents = append(st.Incidents[:0:0], st.Incidents[drop:]...)
	}
	st.Incidents = append(st.Incidents, inc)

	if inc.IsCritical() {
		st.Status = models.StatusEmergency
	}
}

func (tx *Tx) SetCorridor(c models.Corridor) {
	tx.state.Corridor = c
}

func (tx *Tx) SetMotion(m models.Motion) {
	tx.state.Motion = m
}

// Override ставит статус в обход машины состояний. Только для явных
// административных операций, например снятия emergency.
func (tx *Tx) Override(to models.Status) {
	tx.state.Status = to
}

// Reset - перезапуск дистанции: лодка снова ждет старта, история и коридор сбрасываются.
// Инциденты сохраняются.
func (tx *Tx) Reset() {
	st := tx.state
	st.Status = models.StatusWaiting
	st.CurrentPosition = nil
	st.History = make([]models.MappedPosition, 0)
	st.Corridor = models.Corridor{InCorridor: true}
	st.Motion = models.Motion{}
	st.LastUpdateAt = tx.now
}
