package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbox/stockbox-cli/internal/application/auth"
	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeLoginAPI struct {
	token string
	err   error
	calls int
}

func (f *fakeLoginAPI) Login(_ context.Context, email, password string) (string, error) {
	f.calls++
	return f.token, f.err
}

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (s *memStore) Get(key string) ([]byte, error)     { return s.data[key], nil }
func (s *memStore) Set(key string, value []byte) error { s.data[key] = value; return nil }
func (s *memStore) Delete(key string) error            { delete(s.data, key); return nil }

// tokenConClaims genera un JWT HS256 con el payload del backend: {id, iat, exp}.
func tokenConClaims(t *testing.T, userID int64, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("secreto-solo-para-tests"))
	require.NoError(t, err)
	return signed
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GuardaTokenYExtraeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	api := &fakeLoginAPI{token: tokenConClaims(t, 7, exp)}
	store := newMemStore()
	uc := auth.NewUseCase(api, store, logger.Nop())

	session, err := uc.Login(context.Background(), "bodega@stockbox.mx", "secreta1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.WithinDuration(t, exp, session.ExpiresAt, time.Second)
	assert.False(t, session.Expired())

	// El token quedó persistido y Session lo recupera tras "reiniciar".
	recovered, err := uc.Session()
	require.NoError(t, err)
	assert.Equal(t, int64(7), recovered.UserID)
	assert.Equal(t, session.Token, recovered.Token)
}

// La validación local corre antes de tocar la red.
func TestLogin_ValidacionLocalPrimero(t *testing.T) {
	api := &fakeLoginAPI{}
	uc := auth.NewUseCase(api, newMemStore(), logger.Nop())

	_, err := uc.Login(context.Background(), "no-es-email", "secreta1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), "a@b.mx", "corta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, api.calls, "ninguna petición debió salir")
}

func TestLogin_CredencialesRechazadas(t *testing.T) {
	api := &fakeLoginAPI{err: domain.ErrUnauthorized}
	uc := auth.NewUseCase(api, newMemStore(), logger.Nop())

	_, err := uc.Login(context.Background(), "a@b.mx", "secreta1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Session()
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "no debe quedar sesión guardada")
}

func TestSession_TokenExpirado(t *testing.T) {
	api := &fakeLoginAPI{token: tokenConClaims(t, 7, time.Now().Add(-time.Minute))}
	uc := auth.NewUseCase(api, newMemStore(), logger.Nop())

	session, err := uc.Login(context.Background(), "a@b.mx", "secreta1")
	require.NoError(t, err)
	assert.True(t, session.Expired())
}

func TestLogout_DescartaSesion(t *testing.T) {
	api := &fakeLoginAPI{token: tokenConClaims(t, 7, time.Now().Add(time.Hour))}
	store := newMemStore()
	uc := auth.NewUseCase(api, store, logger.Nop())

	_, err := uc.Login(context.Background(), "a@b.mx", "secreta1")
	require.NoError(t, err)
	require.NoError(t, uc.Logout())

	_, err = uc.Session()
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, uc.Token())
}

func TestTokenProvider_LeeDelAlmacen(t *testing.T) {
	store := newMemStore()
	provider := auth.TokenProvider(store)
	assert.Empty(t, provider())

	require.NoError(t, store.Set("authToken", []byte("tok-123")))
	assert.Equal(t, "tok-123", provider())
}

// Errores de lectura del almacén se clasifican como persistencia.
func TestSession_FalloDeAlmacen(t *testing.T) {
	uc := auth.NewUseCase(&fakeLoginAPI{}, &failingStore{}, logger.Nop())
	_, err := uc.Session()
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, error) { return nil, errors.New("disco dañado") }
func (failingStore) Set(string, []byte) error   { return errors.New("disco dañado") }
func (failingStore) Delete(string) error        { return errors.New("disco dañado") }
