// Package auth maneja la sesión del cliente: login contra la API, guarda el
// token en el almacén local y expone los claims de la sesión vigente.
// El cliente nunca verifica la firma del token (no conoce el secreto del
// servidor); solo lee sus claims para identidad y expiración.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// tokenKey clave fija bajo la que se persiste el token de sesión.
const tokenKey = "authToken"

// minPasswordLen longitud mínima aceptada antes de llamar a la API.
const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginAPI puerto de salida hacia el endpoint de autenticación.
type LoginAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Store puerto hacia el almacén clave-valor local.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Session sesión vigente derivada de los claims del token.
type Session struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	api   LoginAPI
	store Store
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api LoginAPI, store Store, log *logger.Logger) *UseCase {
	return &UseCase{api: api, store: store, log: log}
}

// Login valida email y contraseña localmente, autentica contra la API y
// persiste el token bajo la clave fija. Un fallo al persistir no invalida la
// sesión en curso: se reporta y la sesión queda solo en memoria del proceso.
func (uc *UseCase) Login(ctx context.Context, email, password string) (Session, error) {
	if !emailPattern.MatchString(email) {
		return Session{}, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return Session{}, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres",
			domain.ErrInvalidInput, minPasswordLen)
	}

	token, err := uc.api.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}

	if err := uc.store.Set(tokenKey, []byte(token)); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo persistir el token de sesión")
	}

	session := sessionFromToken(token)
	uc.log.Info().Int64("user", session.UserID).Msg("sesión iniciada")
	return session, nil
}

// Session devuelve la sesión persistida. Sin token guardado, o con un token
// ilegible, devuelve ErrUnauthorized.
func (uc *UseCase) Session() (Session, error) {
	raw, err := uc.store.Get(tokenKey)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if len(raw) == 0 {
		return Session{}, fmt.Errorf("%w: no hay sesión iniciada", domain.ErrUnauthorized)
	}
	session := sessionFromToken(string(raw))
	if session.UserID == 0 {
		return Session{}, fmt.Errorf("%w: token de sesión ilegible", domain.ErrUnauthorized)
	}
	return session, nil
}

// Token devuelve el token persistido o cadena vacía; pensado para usarse
// como api.TokenProvider.
func (uc *UseCase) Token() string {
	raw, err := uc.store.Get(tokenKey)
	if err != nil {
		return ""
	}
	return string(raw)
}

// TokenProvider lee el token persistido directo del almacén. Permite armar
// el cliente HTTP antes de construir el caso de uso (el caso de uso necesita
// el cliente para Login, el cliente necesita el token para autenticar).
func TokenProvider(store Store) func() string {
	return func() string {
		raw, err := store.Get(tokenKey)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

// Logout descarta el token persistido.
func (uc *UseCase) Logout() error {
	if err := uc.store.Delete(tokenKey); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// sessionFromToken extrae id y expiración de los claims sin verificar la
// firma. El payload del backend es {id, iat, exp}.
func sessionFromToken(token string) Session {
	session := Session{Token: token}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return session
	}
	if id, ok := claims["id"].(float64); ok {
		session.UserID = int64(id)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	return session
}
