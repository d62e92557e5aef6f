package transfer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// StockView vista de solo lectura del snapshot que el builder necesita para
// validar: resolución de almacenes y existencia por producto/almacén.
// La implementa inventory.Snapshot.
type StockView interface {
	Product(id int64) (entity.Product, bool)
	Warehouse(id int64) (entity.Warehouse, bool)
	StockAt(productID, warehouseID int64) decimal.Decimal
}

// Sender puerto de salida hacia la API remota para el ciclo de vida de un
// traslado. Lo implementa el cliente HTTP; para tests se inyecta un fake.
type Sender interface {
	CreateTransfer(ctx context.Context, req entity.TransferRequest) (entity.TransferRequest, error)
	CompleteTransfer(ctx context.Context, transferID, approvedBy int64) (entity.TransferRequest, error)
	ListTransfers(ctx context.Context) ([]entity.TransferRequest, error)
}

// MovementRecorder puerto hacia la bitácora local.
type MovementRecorder interface {
	Record(m entity.Movement) error
}
