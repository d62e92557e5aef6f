// Package transfer implementa el flujo de traslados entre almacenes:
// construcción y validación de la solicitud (builder) y su ciclo de vida
// PENDING → APPROVED/COMPLETED | REJECTED (workflow). La aritmética de stock
// autoritativa vive en el servidor; aquí solo se valida contra el snapshot y
// se refleja lo que el servidor confirma.
package transfer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// BuildInput datos capturados en pantalla para solicitar un traslado.
type BuildInput struct {
	ProductID       int64
	FromWarehouseID int64
	ToWarehouseID   int64
	Quantity        decimal.Decimal
	RequestedBy     int64
	Notes           string
}

// Builder valida y construye solicitudes de traslado contra la vista actual
// del inventario. Construcción pura: no toca red ni estado; la persistencia
// remota es un paso aparte del workflow.
type Builder struct {
	view StockView
}

// NewBuilder construye el builder sobre una vista del snapshot.
func NewBuilder(view StockView) *Builder {
	return &Builder{view: view}
}

// Build valida en orden fijo (gana el primer fallo):
//
//  1. ambos almacenes resolubles contra el snapshot → ErrUnknownWarehouse
//  2. origen distinto de destino → ErrSameWarehouse
//  3. cantidad entera positiva → ErrInvalidQuantity
//  4. cantidad <= existencia del producto en el origen → ErrInsufficientStock
//
// En éxito devuelve la solicitud en estado PENDING, aún sin enviar.
// El límite cantidad == existencia es válido; existencia+1 no.
func (b *Builder) Build(input BuildInput) (entity.TransferRequest, error) {
	from, okFrom := b.view.Warehouse(input.FromWarehouseID)
	if !okFrom {
		return entity.TransferRequest{}, fmt.Errorf("%w: origen %d", domain.ErrUnknownWarehouse, input.FromWarehouseID)
	}
	to, okTo := b.view.Warehouse(input.ToWarehouseID)
	if !okTo {
		return entity.TransferRequest{}, fmt.Errorf("%w: destino %d", domain.ErrUnknownWarehouse, input.ToWarehouseID)
	}

	if input.FromWarehouseID == input.ToWarehouseID {
		return entity.TransferRequest{}, fmt.Errorf("%w: %s", domain.ErrSameWarehouse, from.Name)
	}

	if !input.Quantity.IsInteger() || !input.Quantity.IsPositive() {
		return entity.TransferRequest{}, fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, input.Quantity)
	}

	available := b.view.StockAt(input.ProductID, input.FromWarehouseID)
	if input.Quantity.GreaterThan(available) {
		return entity.TransferRequest{}, fmt.Errorf("%w: disponibles %s en %s, solicitadas %s",
			domain.ErrInsufficientStock, available, from.Name, input.Quantity)
	}

	var productName string
	if p, ok := b.view.Product(input.ProductID); ok {
		productName = p.Name
	}

	return entity.TransferRequest{
		FromWarehouseID: input.FromWarehouseID,
		FromName:        from.Name,
		ToWarehouseID:   input.ToWarehouseID,
		ToName:          to.Name,
		RequestedBy:     input.RequestedBy,
		Notes:           input.Notes,
		Details: []entity.TransferDetail{{
			ProductID:   input.ProductID,
			ProductName: productName,
			Quantity:    input.Quantity,
		}},
		Status: entity.TransferPending,
	}, nil
}
