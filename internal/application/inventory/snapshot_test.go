package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbox/stockbox-cli/internal/application/inventory"
	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeFetcher API remota simulada; fail hace fallar todas las llamadas.
type fakeFetcher struct {
	products   []entity.Product
	warehouses []entity.Warehouse
	categories []entity.Category
	transfers  []entity.TransferRequest
	fail       bool
}

func (f *fakeFetcher) ListProducts(context.Context) ([]entity.Product, error) {
	if f.fail {
		return nil, domain.ErrFetchFailed
	}
	return f.products, nil
}

func (f *fakeFetcher) ListWarehouses(context.Context) ([]entity.Warehouse, error) {
	if f.fail {
		return nil, domain.ErrFetchFailed
	}
	return f.warehouses, nil
}

func (f *fakeFetcher) ListCategories(context.Context) ([]entity.Category, error) {
	if f.fail {
		return nil, domain.ErrFetchFailed
	}
	return f.categories, nil
}

func (f *fakeFetcher) ListTransfers(context.Context) ([]entity.TransferRequest, error) {
	if f.fail {
		return nil, domain.ErrFetchFailed
	}
	return f.transfers, nil
}

func seededFetcher() *fakeFetcher {
	return &fakeFetcher{
		products: []entity.Product{
			{ID: 10, SKU: "BH-001", Name: "Bomba Hidráulica", CategoryName: "Hidráulica",
				WarehouseID: 1, WarehouseName: "Almacén Central", Quantity: decimal.NewFromInt(10)},
			{ID: 11, SKU: "FA-002", Name: "Filtro Aire", CategoryName: "Filtros",
				WarehouseID: 2, WarehouseName: "Almacén Norte", Quantity: decimal.NewFromInt(3)},
		},
		warehouses: []entity.Warehouse{
			{ID: 1, Name: "Almacén Central"},
			{ID: 2, Name: "Almacén Norte"},
		},
		categories: []entity.Category{{ID: 1, Name: "Hidráulica"}, {ID: 2, Name: "Filtros"}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh y lookups
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_CargaYResuelve(t *testing.T) {
	s := inventory.NewSnapshot(seededFetcher(), logger.Nop())
	require.False(t, s.Loaded(), "antes del primer refresco no hay snapshot")

	require.NoError(t, s.Refresh(context.Background()))
	assert.True(t, s.Loaded())

	p, ok := s.Product(10)
	require.True(t, ok)
	assert.Equal(t, "Bomba Hidráulica", p.Name)

	w, ok := s.Warehouse(2)
	require.True(t, ok)
	assert.Equal(t, "Almacén Norte", w.Name)

	_, ok = s.Product(999)
	assert.False(t, ok)
}

func TestStockAt_ResuelveExistenciaPorAlmacen(t *testing.T) {
	s := inventory.NewSnapshot(seededFetcher(), logger.Nop())
	require.NoError(t, s.Refresh(context.Background()))

	assert.True(t, s.StockAt(10, 1).Equal(decimal.NewFromInt(10)))
	// Producto en otro almacén: existencia cero.
	assert.True(t, s.StockAt(10, 2).IsZero())
	assert.True(t, s.StockAt(999, 1).IsZero())
}

// Escenario E: con la red caída el snapshot anterior se conserva completo;
// el error se devuelve al llamador y no hay pérdida de datos.
func TestRefresh_FalloConservaSnapshotAnterior(t *testing.T) {
	fetcher := seededFetcher()
	s := inventory.NewSnapshot(fetcher, logger.Nop())
	require.NoError(t, s.Refresh(context.Background()))

	fetcher.fail = true
	err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)

	assert.True(t, s.Loaded())
	assert.Len(t, s.Products(), 2, "los productos del refresco previo siguen disponibles")
	assert.Len(t, s.Warehouses(), 2)
	p, ok := s.Product(10)
	require.True(t, ok)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(10)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_IgnoraMayusculasYAcentos(t *testing.T) {
	s := inventory.NewSnapshot(seededFetcher(), logger.Nop())
	require.NoError(t, s.Refresh(context.Background()))

	// "bomba hidraulica" sin acento encuentra "Bomba Hidráulica".
	result := s.Search(inventory.SearchFilter{Query: "bomba hidraulica"})
	require.Len(t, result, 1)
	assert.Equal(t, int64(10), result[0].ID)

	// También por SKU, sin distinguir mayúsculas.
	result = s.Search(inventory.SearchFilter{Query: "fa-002"})
	require.Len(t, result, 1)
	assert.Equal(t, int64(11), result[0].ID)
}

func TestSearch_FiltraPorCategoriaYNivel(t *testing.T) {
	s := inventory.NewSnapshot(seededFetcher(), logger.Nop())
	require.NoError(t, s.Refresh(context.Background()))

	result := s.Search(inventory.SearchFilter{Category: "Filtros"})
	require.Len(t, result, 1)
	assert.Equal(t, "Filtro Aire", result[0].Name)

	// Cantidad 3 clasifica como Bajo; cantidad 10 como Normal.
	result = s.Search(inventory.SearchFilter{StockLevel: inventory.StockLevelBajo})
	require.Len(t, result, 1)
	assert.Equal(t, int64(11), result[0].ID)

	result = s.Search(inventory.SearchFilter{StockLevel: inventory.StockLevelNormal})
	require.Len(t, result, 1)
	assert.Equal(t, int64(10), result[0].ID)
}

func TestStockLevel_Umbrales(t *testing.T) {
	assert.Equal(t, inventory.StockLevelBajo, inventory.StockLevel(decimal.NewFromInt(5)))
	assert.Equal(t, inventory.StockLevelNormal, inventory.StockLevel(decimal.NewFromInt(6)))
	assert.Equal(t, inventory.StockLevelNormal, inventory.StockLevel(decimal.NewFromInt(15)))
	assert.Equal(t, inventory.StockLevelAlto, inventory.StockLevel(decimal.NewFromInt(16)))
}
