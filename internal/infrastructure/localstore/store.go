// Package localstore implementa el almacén persistente clave-valor del
// dispositivo: un archivo JSON por clave bajo un directorio de datos.
// La escritura es todo-o-nada por clave (archivo temporal + rename), y el
// contrato de lectura es tolerante: clave ausente no es error.
package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore almacén clave-valor respaldado por archivos.
type FileStore struct {
	dir string
}

// NewFileStore crea el directorio de datos si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("crear directorio de datos %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get devuelve el valor de la clave. Si la clave no existe devuelve
// (nil, nil): la ausencia no es un fallo, el llamador usa su valor por defecto.
func (s *FileStore) Get(key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer clave %q: %w", key, err)
	}
	return raw, nil
}

// Set escribe el valor de forma atómica (temporal + rename) para que una
// escritura interrumpida nunca deje un archivo a medias.
func (s *FileStore) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; borrar una clave inexistente no es error.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar clave %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
