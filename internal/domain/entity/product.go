package entity

import "github.com/shopspring/decimal"

// Product representa una refacción (SKU) del catálogo remoto.
// El servidor es el dueño del dato; el cliente solo mantiene una copia
// cacheada de solo lectura en el snapshot. Quantity nunca se decrementa
// localmente: solo cambia al reflejar una respuesta confirmada de la API.
type Product struct {
	ID            int64
	SKU           string // código único de negocio
	Name          string
	Description   string
	CategoryID    int64
	CategoryName  string
	WarehouseID   int64
	WarehouseName string
	Quantity      decimal.Decimal // >= 0 siempre
}
