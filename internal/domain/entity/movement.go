package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del registro local de actividad.
const (
	MovementEntrada           = "entrada"
	MovementSalida            = "salida"
	MovementTrasladoPendiente = "traslado-pendiente"
	MovementUsuario           = "usuario"
	MovementRefaccion         = "refaccion"
	MovementStock             = "stock"
)

// Movement entrada del registro local de movimientos (bitácora acotada,
// más reciente primero). Propiedad local del cliente: se crea en cada acción
// significativa y nunca se muta después.
type Movement struct {
	ID       string          // uuid, distingue entradas aun en el mismo milisegundo
	Type     string          // entrada | salida | traslado-pendiente | usuario | refaccion | stock
	Item     string          // nombre legible del producto/usuario afectado
	Quantity decimal.Decimal
	Date     time.Time
	From     string // nombre del almacén origen (solo traslados/salidas)
	To       string // nombre del almacén destino (solo traslados)
}
