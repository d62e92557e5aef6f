package entity

// Warehouse representa un almacén donde se guardan refacciones.
// Datos de referencia inmutables; se refrescan junto con el snapshot y se
// usan para resolver nombres legibles de origen/destino en los traslados.
type Warehouse struct {
	ID   int64
	Name string
}

// Category agrupa refacciones para búsqueda y reportes.
type Category struct {
	ID   int64
	Name string
}
