// Package movement mantiene la bitácora local de movimientos: una lista
// acotada, más reciente primero, de las acciones significativas del usuario
// (entradas, salidas, traslados pendientes, altas de refacciones y usuarios).
package movement

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// MaxEntries tope duro de la bitácora: al insertar la entrada 21 se desecha
// silenciosamente la más antigua.
const MaxEntries = 20

// storeKey clave fija bajo la que se persiste la bitácora.
const storeKey = "recentMovements"

// movementRecord forma JSON persistida de una entrada.
type movementRecord struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Item     string          `json:"item"`
	Quantity decimal.Decimal `json:"quantity"`
	Date     time.Time       `json:"date"`
	From     string          `json:"from,omitempty"`
	To       string          `json:"to,omitempty"`
}

// Log bitácora acotada de movimientos, persistida en el almacén local.
// Seguro para uso concurrente desde varias pantallas.
type Log struct {
	mu      sync.Mutex
	store   Store
	log     *logger.Logger
	entries []entity.Movement // orden: más reciente primero
}

// NewLog carga la bitácora persistida. Un fallo de lectura o un JSON corrupto
// degradan a bitácora vacía: nunca bloquean el arranque.
func NewLog(store Store, log *logger.Logger) *Log {
	l := &Log{store: store, log: log}
	raw, err := store.Get(storeKey)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo leer la bitácora local, se inicia vacía")
		return l
	}
	if len(raw) == 0 {
		return l
	}
	var records []movementRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn().Err(err).Msg("bitácora local corrupta, se inicia vacía")
		return l
	}
	for _, r := range records {
		l.entries = append(l.entries, entity.Movement{
			ID: r.ID, Type: r.Type, Item: r.Item,
			Quantity: r.Quantity, Date: r.Date, From: r.From, To: r.To,
		})
	}
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	return l
}

// Record antepone la entrada y recorta al tope. Si la entrada no trae id o
// fecha se completan aquí (uuid y hora actual). El fallo de persistencia se
// reporta pero la entrada queda registrada en memoria.
func (l *Log) Record(m entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]entity.Movement{m}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	return l.persistLocked()
}

// List devuelve una copia de las entradas, más reciente primero.
func (l *Log) List() []entity.Movement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.Movement, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear vacía la bitácora en memoria y en disco.
func (l *Log) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	if err := l.store.Delete(storeKey); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (l *Log) persistLocked() error {
	records := make([]movementRecord, 0, len(l.entries))
	for _, m := range l.entries {
		records = append(records, movementRecord{
			ID: m.ID, Type: m.Type, Item: m.Item,
			Quantity: m.Quantity, Date: m.Date, From: m.From, To: m.To,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := l.store.Set(storeKey, raw); err != nil {
		l.log.Warn().Err(err).Msg("no se pudo persistir la bitácora local")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
