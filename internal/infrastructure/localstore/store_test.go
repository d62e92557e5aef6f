package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbox/stockbox-cli/internal/infrastructure/localstore"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("authToken", []byte("abc123")))

	got, err := store.Get("authToken")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc123"), got)

	// Sobrescritura completa, todo-o-nada.
	require.NoError(t, store.Set("authToken", []byte("xyz")))
	got, err = store.Get("authToken")
	require.NoError(t, err)
	assert.Equal(t, []byte("xyz"), got)
}

// Clave inexistente: (nil, nil), la ausencia no es error.
func TestFileStore_ClaveAusente(t *testing.T) {
	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Get("noExiste")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_Delete(t *testing.T) {
	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("clave", []byte("valor")))
	require.NoError(t, store.Delete("clave"))

	got, err := store.Get("clave")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Borrar una clave inexistente tampoco es error.
	assert.NoError(t, store.Delete("clave"))
}

// El directorio de datos se crea si no existe (primer arranque).
func TestNewFileStore_CreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", ".stockbox")
	_, err := localstore.NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
