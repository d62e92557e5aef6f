// Package inventory mantiene el snapshot local del inventario remoto:
// productos, almacenes, categorías y traslados, refrescados bajo demanda.
// El servidor es la fuente de verdad; el snapshot es una vista de mejor
// esfuerzo que puede quedar desactualizada entre refrescos.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// snapshotData colecciones de un refresco. Se reemplaza completa de forma
// atómica: ningún lector ve una mezcla de dos refrescos.
type snapshotData struct {
	products   []entity.Product
	warehouses []entity.Warehouse
	categories []entity.Category
	transfers  []entity.TransferRequest
}

// Snapshot vista cacheada del inventario. Cada pantalla posee su propia
// instancia; no hay cache global de proceso. Seguro para lecturas
// concurrentes mientras otro goroutine refresca.
type Snapshot struct {
	mu      sync.RWMutex
	fetcher Fetcher
	log     *logger.Logger
	data    snapshotData
	loaded  bool
}

// NewSnapshot construye un snapshot vacío; no dispara red. El primer
// Refresh lo hace el llamador (al montar la pantalla o al hacer pull).
func NewSnapshot(fetcher Fetcher, log *logger.Logger) *Snapshot {
	return &Snapshot{fetcher: fetcher, log: log}
}

// Refresh obtiene las cuatro colecciones y reemplaza el snapshot anterior de
// forma atómica. Si cualquier petición falla se conserva el snapshot previo
// completo (la UI sigue operando con datos viejos) y se devuelve el error.
func (s *Snapshot) Refresh(ctx context.Context) error {
	products, err := s.fetcher.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("refrescar productos: %w", err)
	}
	warehouses, err := s.fetcher.ListWarehouses(ctx)
	if err != nil {
		return fmt.Errorf("refrescar almacenes: %w", err)
	}
	categories, err := s.fetcher.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("refrescar categorías: %w", err)
	}
	transfers, err := s.fetcher.ListTransfers(ctx)
	if err != nil {
		return fmt.Errorf("refrescar traslados: %w", err)
	}

	s.mu.Lock()
	s.data = snapshotData{
		products:   products,
		warehouses: warehouses,
		categories: categories,
		transfers:  transfers,
	}
	s.loaded = true
	s.mu.Unlock()

	s.log.Debug().
		Int("products", len(products)).
		Int("warehouses", len(warehouses)).
		Int("transfers", len(transfers)).
		Msg("snapshot refrescado")
	return nil
}

// Loaded indica si hubo al menos un refresco exitoso.
func (s *Snapshot) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products devuelve una copia del catálogo del último refresco.
func (s *Snapshot) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.data.products))
	copy(out, s.data.products)
	return out
}

// Warehouses devuelve una copia de los almacenes del último refresco.
func (s *Snapshot) Warehouses() []entity.Warehouse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Warehouse, len(s.data.warehouses))
	copy(out, s.data.warehouses)
	return out
}

// Categories devuelve una copia de las categorías del último refresco.
func (s *Snapshot) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Category, len(s.data.categories))
	copy(out, s.data.categories)
	return out
}

// Transfers devuelve una copia de los traslados del último refresco.
func (s *Snapshot) Transfers() []entity.TransferRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.TransferRequest, len(s.data.transfers))
	copy(out, s.data.transfers)
	return out
}

// Product busca un producto por id en el último snapshot.
func (s *Snapshot) Product(id int64) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Warehouse busca un almacén por id en el último snapshot.
func (s *Snapshot) Warehouse(id int64) (entity.Warehouse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.data.warehouses {
		if w.ID == id {
			return w, true
		}
	}
	return entity.Warehouse{}, false
}

// StockAt resuelve la existencia de un producto en un almacén concreto.
// Devuelve cero si el producto no existe o no pertenece a ese almacén.
func (s *Snapshot) StockAt(productID, warehouseID int64) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.products {
		if p.ID == productID && p.WarehouseID == warehouseID {
			return p.Quantity
		}
	}
	return decimal.Zero
}
