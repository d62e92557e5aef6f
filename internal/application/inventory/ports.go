package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// Fetcher puerto de salida hacia la API remota para refrescar el snapshot.
// Lo implementa el cliente HTTP; para tests se inyecta un fake.
type Fetcher interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListWarehouses(ctx context.Context) ([]entity.Warehouse, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListTransfers(ctx context.Context) ([]entity.TransferRequest, error)
}

// Withdrawer puerto de salida para registrar salidas de stock en el servidor.
type Withdrawer interface {
	WithdrawStock(ctx context.Context, warehouseID, stockID int64, quantity decimal.Decimal) error
}
