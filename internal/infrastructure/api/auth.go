package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockbox/stockbox-cli/internal/domain"
)

// Login autentica contra el backend y devuelve el token JWT de sesión.
// Es la única ruta que no exige token previo.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := loginRequestDTO{Email: email, Password: password}
	var resp loginResponseDTO
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: el servidor no devolvió token", domain.ErrFetchFailed)
	}
	return resp.Token, nil
}
