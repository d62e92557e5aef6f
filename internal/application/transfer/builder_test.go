package transfer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbox/stockbox-cli/internal/application/transfer"
	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeStockView vista de inventario fija para los tests del builder:
// dos almacenes (1 y 2) y un producto (10) con existencia 10 en el almacén 1.
type fakeStockView struct {
	stock map[[2]int64]decimal.Decimal
}

func newFakeStockView() *fakeStockView {
	return &fakeStockView{
		stock: map[[2]int64]decimal.Decimal{
			{10, 1}: decimal.NewFromInt(10),
		},
	}
}

func (v *fakeStockView) Product(id int64) (entity.Product, bool) {
	if id == 10 {
		return entity.Product{ID: 10, Name: "Bomba Hidráulica", WarehouseID: 1}, true
	}
	return entity.Product{}, false
}

func (v *fakeStockView) Warehouse(id int64) (entity.Warehouse, bool) {
	switch id {
	case 1:
		return entity.Warehouse{ID: 1, Name: "Almacén Central"}, true
	case 2:
		return entity.Warehouse{ID: 2, Name: "Almacén Norte"}, true
	}
	return entity.Warehouse{}, false
}

func (v *fakeStockView) StockAt(productID, warehouseID int64) decimal.Decimal {
	return v.stock[[2]int64{productID, warehouseID}]
}

func validInput() transfer.BuildInput {
	return transfer.BuildInput{
		ProductID:       10,
		FromWarehouseID: 1,
		ToWarehouseID:   2,
		Quantity:        decimal.NewFromInt(3),
		RequestedBy:     1,
		Notes:           "reposición",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de validación (orden fijo, gana el primer fallo)
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_SolicitudValida(t *testing.T) {
	b := transfer.NewBuilder(newFakeStockView())

	req, err := b.Build(validInput())
	require.NoError(t, err)

	assert.Equal(t, entity.TransferPending, req.Status, "la solicitud nace en PENDING")
	assert.Equal(t, int64(1), req.FromWarehouseID)
	assert.Equal(t, "Almacén Central", req.FromName)
	assert.Equal(t, "Almacén Norte", req.ToName)
	require.Len(t, req.Details, 1)
	assert.Equal(t, "Bomba Hidráulica", req.Details[0].ProductName)
	assert.True(t, req.Details[0].Quantity.Equal(decimal.NewFromInt(3)))
}

func TestBuild_AlmacenDesconocido(t *testing.T) {
	b := transfer.NewBuilder(newFakeStockView())

	input := validInput()
	input.FromWarehouseID = 99
	_, err := b.Build(input)
	assert.ErrorIs(t, err, domain.ErrUnknownWarehouse)

	input = validInput()
	input.ToWarehouseID = 99
	_, err = b.Build(input)
	assert.ErrorIs(t, err, domain.ErrUnknownWarehouse)
}

// Origen == destino se rechaza siempre, sin importar el resto de los campos.
func TestBuild_MismoAlmacen(t *testing.T) {
	b := transfer.NewBuilder(newFakeStockView())

	input := validInput()
	input.ToWarehouseID = input.FromWarehouseID
	_, err := b.Build(input)
	assert.ErrorIs(t, err, domain.ErrSameWarehouse)
}

func TestBuild_CantidadInvalida(t *testing.T) {
	b := transfer.NewBuilder(newFakeStockView())

	casos := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-1),
		decimal.NewFromFloat(2.5), // debe ser entero
	}
	for _, qty := range casos {
		input := validInput()
		input.Quantity = qty
		_, err := b.Build(input)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %s", qty)
	}
}

// El límite exacto es válido: con existencia 10, pedir 10 pasa y 11 no.
func TestBuild_LimiteDeExistencia(t *testing.T) {
	b := transfer.NewBuilder(newFakeStockView())

	input := validInput()
	input.Quantity = decimal.NewFromInt(10)
	req, err := b.Build(input)
	require.NoError(t, err, "cantidad == existencia debe aceptarse")
	assert.True(t, req.Details[0].Quantity.Equal(decimal.NewFromInt(10)))

	input.Quantity = decimal.NewFromInt(11)
	_, err = b.Build(input)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "existencia+1 debe rechazarse")
}

// Un producto sin existencia en el origen (o inexistente) cuenta como stock 0.
func TestBuild_SinStockEnOrigen(t *testing.T) {
	b := transfer.NewBuilder(newFakeStockView())

	input := validInput()
	input.FromWarehouseID = 2 // el producto 10 vive en el almacén 1
	input.ToWarehouseID = 1
	input.Quantity = decimal.NewFromInt(1)
	_, err := b.Build(input)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// El orden de validación es fijo: con almacén desconocido Y cantidad mala,
// gana el error de almacén.
func TestBuild_GanaElPrimerFallo(t *testing.T) {
	b := transfer.NewBuilder(newFakeStockView())

	input := validInput()
	input.FromWarehouseID = 99
	input.Quantity = decimal.Zero
	_, err := b.Build(input)
	assert.ErrorIs(t, err, domain.ErrUnknownWarehouse)

	input = validInput()
	input.ToWarehouseID = input.FromWarehouseID
	input.Quantity = decimal.Zero
	_, err = b.Build(input)
	assert.ErrorIs(t, err, domain.ErrSameWarehouse)
}
