// Package report genera el reporte de refacciones en PDF a partir del
// catálogo remoto, con los renglones de stock bajo resaltados.
package report

import (
	"context"
	"time"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// Períodos disponibles del reporte.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// PeriodLabel etiqueta legible del período.
func PeriodLabel(period string) string {
	switch period {
	case PeriodWeek:
		return "Última Semana"
	case PeriodMonth:
		return "Último Mes"
	case PeriodYear:
		return "Último Año"
	default:
		return "Último Mes"
	}
}

// Data datos que recibe el generador de PDF.
type Data struct {
	PeriodLabel string
	GeneratedAt time.Time
	Products    []entity.Product
}

// ProductLister puerto hacia la API para obtener el catálogo.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// Generator puerto hacia la implementación concreta de PDF.
type Generator interface {
	GenerateInventoryPDF(ctx context.Context, data Data) ([]byte, error)
}

// UseCase genera el reporte de inventario.
type UseCase struct {
	api       ProductLister
	generator Generator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api ProductLister, generator Generator, log *logger.Logger) *UseCase {
	return &UseCase{api: api, generator: generator, log: log}
}

// Generate obtiene el catálogo y produce el PDF del período indicado.
func (uc *UseCase) Generate(ctx context.Context, period string) ([]byte, error) {
	products, err := uc.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	data := Data{
		PeriodLabel: PeriodLabel(period),
		GeneratedAt: time.Now(),
		Products:    products,
	}
	pdf, err := uc.generator.GenerateInventoryPDF(ctx, data)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("products", len(products)).Str("period", period).Msg("reporte PDF generado")
	return pdf, nil
}
