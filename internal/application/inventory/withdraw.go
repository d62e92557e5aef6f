package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// MovementRecorder puerto hacia la bitácora local.
type MovementRecorder interface {
	Record(m entity.Movement) error
}

// WithdrawUseCase solicita salidas de refacciones (retiro para uso).
// Valida contra el snapshot antes de llamar al servidor y registra la salida
// en la bitácora local tras la confirmación.
type WithdrawUseCase struct {
	api      Withdrawer
	snapshot *Snapshot
	movLog   MovementRecorder
	log      *logger.Logger
}

// NewWithdrawUseCase construye el caso de uso.
func NewWithdrawUseCase(api Withdrawer, snapshot *Snapshot, movLog MovementRecorder, log *logger.Logger) *WithdrawUseCase {
	return &WithdrawUseCase{api: api, snapshot: snapshot, movLog: movLog, log: log}
}

// Withdraw pide al servidor una salida de quantity unidades del producto en
// su almacén. La cantidad debe ser un entero positivo que no exceda la
// existencia conocida; la mutación real ocurre en el servidor.
func (uc *WithdrawUseCase) Withdraw(ctx context.Context, productID int64, quantity decimal.Decimal) error {
	product, ok := uc.snapshot.Product(productID)
	if !ok {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, productID)
	}
	if !quantity.IsInteger() || !quantity.IsPositive() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, quantity)
	}
	if quantity.GreaterThan(product.Quantity) {
		return fmt.Errorf("%w: disponibles %s, solicitadas %s",
			domain.ErrInsufficientStock, product.Quantity, quantity)
	}

	if err := uc.api.WithdrawStock(ctx, product.WarehouseID, product.ID, quantity); err != nil {
		return err
	}

	uc.log.Info().
		Int64("product", product.ID).
		Str("quantity", quantity.String()).
		Msg("salida registrada")

	if err := uc.movLog.Record(entity.Movement{
		Type:     entity.MovementSalida,
		Item:     product.Name,
		Quantity: quantity,
		From:     product.WarehouseName,
	}); err != nil {
		// La bitácora es best-effort: la salida ya quedó confirmada.
		uc.log.Warn().Err(err).Msg("no se pudo registrar la salida en la bitácora")
	}
	return nil
}
