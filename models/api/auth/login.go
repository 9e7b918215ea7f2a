package authapimodels

import (
	"github.com/pkg/errors"
)

type LoginRequest struct {
	Password string `json:"password"` // Senha do painel administrativo
}

func (r LoginRequest) Validate() error {
	if r.Password == "" {
		return errors.New("a senha é obrigatória")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"access_token"` // Token JWT de acesso
}
