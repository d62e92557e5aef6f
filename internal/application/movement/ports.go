package movement

// Store puerto de salida hacia el almacén clave-valor local del dispositivo.
// La implementación concreta vive en infrastructure/localstore; para tests se
// puede inyectar un fake en memoria.
type Store interface {
	// Get devuelve (nil, nil) si la clave no existe.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
