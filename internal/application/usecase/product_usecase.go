// Package usecase agrupa los casos de uso de administración: altas, cambios
// y bajas de refacciones (pass-through hacia la API, el servidor valida y
// persiste) con registro en la bitácora local.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// ProductAPI puerto de salida hacia los endpoints CRUD de productos.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, p entity.Product) (entity.Product, error)
	UpdateProduct(ctx context.Context, p entity.Product) (entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// MovementRecorder puerto hacia la bitácora local.
type MovementRecorder interface {
	Record(m entity.Movement) error
}

// ProductUseCase administración de refacciones.
type ProductUseCase struct {
	api    ProductAPI
	movLog MovementRecorder
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(api ProductAPI, movLog MovementRecorder, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{api: api, movLog: movLog, log: log}
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.api.ListProducts(ctx)
}

// Create da de alta una refacción. SKU y nombre son obligatorios; la
// cantidad inicial no puede ser negativa.
func (uc *ProductUseCase) Create(ctx context.Context, p entity.Product) (entity.Product, error) {
	if err := validateProduct(p); err != nil {
		return entity.Product{}, err
	}
	created, err := uc.api.CreateProduct(ctx, p)
	if err != nil {
		return entity.Product{}, err
	}
	uc.recordMovement(entity.MovementRefaccion, created.Name, created)
	return created, nil
}

// Update modifica una refacción existente.
func (uc *ProductUseCase) Update(ctx context.Context, p entity.Product) (entity.Product, error) {
	if p.ID == 0 {
		return entity.Product{}, fmt.Errorf("%w: falta el id del producto", domain.ErrInvalidInput)
	}
	if err := validateProduct(p); err != nil {
		return entity.Product{}, err
	}
	updated, err := uc.api.UpdateProduct(ctx, p)
	if err != nil {
		return entity.Product{}, err
	}
	uc.recordMovement(entity.MovementStock, updated.Name, updated)
	return updated, nil
}

// Delete elimina una refacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64, name string) error {
	if id == 0 {
		return fmt.Errorf("%w: falta el id del producto", domain.ErrInvalidInput)
	}
	if err := uc.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.recordMovement(entity.MovementRefaccion, name, entity.Product{ID: id, Name: name})
	return nil
}

func (uc *ProductUseCase) recordMovement(movType, item string, p entity.Product) {
	if err := uc.movLog.Record(entity.Movement{
		Type:     movType,
		Item:     item,
		Quantity: p.Quantity,
	}); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar el cambio en la bitácora")
	}
}

func validateProduct(p entity.Product) error {
	if strings.TrimSpace(p.SKU) == "" || strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: sku y nombre son obligatorios", domain.ErrInvalidInput)
	}
	if p.Quantity.IsNegative() {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidQuantity)
	}
	return nil
}
