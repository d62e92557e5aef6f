package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La taxonomía es cerrada: todo fallo visible al usuario se clasifica en uno
// de estos sentinelas y se envuelve con contexto vía fmt.Errorf("...: %w").
var (
	// Validación local de traslados (nunca llegan a la red).
	ErrUnknownWarehouse  = errors.New("almacén desconocido")
	ErrSameWarehouse     = errors.New("los almacenes de origen y destino deben ser diferentes")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Máquina de estados de traslados.
	ErrInvalidTransition = errors.New("transición de estado inválida")

	// Red / API remota (timeout, transporte, respuesta no-2xx).
	ErrFetchFailed = errors.New("error al consultar la API")

	// Almacenamiento local. Siempre recuperable: el llamador degrada a un
	// valor vacío por defecto, nunca aborta.
	ErrPersistence = errors.New("error de almacenamiento local")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrInvalidInput = errors.New("entrada inválida")
)
