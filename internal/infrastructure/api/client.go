// Package api implementa el cliente HTTP del backend StockBox.
//
// Usa net/http de la stdlib; no requiere librerías de terceros. Toda
// petición lleva Authorization: Bearer <token> (el token lo entrega un
// TokenProvider inyectado, nunca una constante). Los fallos de transporte,
// timeout o respuesta no-2xx se clasifican como domain.ErrFetchFailed con
// el mensaje del servidor cuando está disponible. No hay reintentos
// automáticos: el llamador decide si vuelve a disparar.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stockbox/stockbox-cli/internal/domain"
	"github.com/stockbox/stockbox-cli/pkg/logger"
)

// TokenProvider entrega el bearer token vigente. Devuelve cadena vacía si no
// hay sesión (las rutas públicas como login funcionan igual).
type TokenProvider func() string

// Client cliente HTTP autenticado del backend de inventario.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenProvider
	log        *logger.Logger
}

// New construye el cliente. baseURL sin slash final (ej. "https://host/api");
// timeout aplica a cada petición completa.
func New(baseURL string, timeout time.Duration, token TokenProvider, log *logger.Logger) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
		log:        log,
	}
}

// errorResponse cuerpo de error que devuelve el backend en respuestas no-2xx.
type errorResponse struct {
	Message string `json:"message"`
}

// do ejecuta una petición JSON y decodifica la respuesta en out (si out no es
// nil). Centraliza autenticación, clasificación de errores y logging.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("construir petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("fallo de red")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrFetchFailed, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: leer respuesta de %s: %v", domain.ErrFetchFailed, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, serverMessage(raw))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("respuesta no-2xx")
		return fmt.Errorf("%w: %s respondió %d: %s", domain.ErrFetchFailed, path, resp.StatusCode, serverMessage(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: decodificar respuesta de %s: %v", domain.ErrFetchFailed, path, err)
		}
	}
	return nil
}

// serverMessage extrae el campo message del cuerpo de error; si el cuerpo no
// es JSON devuelve el texto crudo recortado.
func serverMessage(raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Message != "" {
		return er.Message
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
