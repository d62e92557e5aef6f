package inventory

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// Niveles de stock para filtrar la búsqueda. Umbrales heredados de la app:
// hasta 5 unidades es bajo, hasta 15 normal, arriba de eso alto.
const (
	StockLevelBajo   = "Bajo"
	StockLevelNormal = "Normal"
	StockLevelAlto   = "Alto"
)

var (
	stockLowMax    = decimal.NewFromInt(5)
	stockNormalMax = decimal.NewFromInt(15)
)

// StockLevel clasifica una existencia en Bajo/Normal/Alto.
func StockLevel(quantity decimal.Decimal) string {
	switch {
	case quantity.LessThanOrEqual(stockLowMax):
		return StockLevelBajo
	case quantity.LessThanOrEqual(stockNormalMax):
		return StockLevelNormal
	default:
		return StockLevelAlto
	}
}

// SearchFilter criterios de búsqueda sobre el snapshot. Campos vacíos no
// filtran.
type SearchFilter struct {
	Query      string // coincide contra nombre o SKU, sin distinguir acentos
	Category   string // nombre exacto de la categoría
	StockLevel string // Bajo | Normal | Alto
}

// Search filtra el catálogo del último snapshot. La comparación de texto es
// insensible a mayúsculas y a diacríticos: "bomba hidraulica" encuentra
// "Bomba Hidráulica".
func (s *Snapshot) Search(f SearchFilter) []entity.Product {
	query := foldText(f.Query)
	var out []entity.Product
	for _, p := range s.Products() {
		if query != "" &&
			!strings.Contains(foldText(p.Name), query) &&
			!strings.Contains(foldText(p.SKU), query) {
			continue
		}
		if f.Category != "" && p.CategoryName != f.Category {
			continue
		}
		if f.StockLevel != "" && StockLevel(p.Quantity) != f.StockLevel {
			continue
		}
		out = append(out, p)
	}
	return out
}

// foldText normaliza para búsqueda: minúsculas y sin marcas diacríticas
// (NFD + eliminación de combining marks + NFC).
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
