package client

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// AuthResult é o resultado do login: ClientID só é válido com Success.
type AuthResult struct {
	Success  bool
	ClientID uint
	Name     string
}

type AuthenticateClient struct {
	clients domain.ClientStore
}

func NewAuthenticateClient(clients domain.ClientStore) *AuthenticateClient {
	return &AuthenticateClient{clients: clients}
}

// Execute não distingue e-mail desconhecido de senha errada; ambos
// resultam em Success=false sem erro. Erro só em falha de acesso.
func (uc *AuthenticateClient) Execute(ctx context.Context, email, password string) (AuthResult, error) {
	c, err := uc.clients.GetClientByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if httperr.IsNotFound(err) {
			return AuthResult{}, nil
		}
		return AuthResult{}, httperr.DataAccess("get_client_by_email", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, nil
	}

	return AuthResult{Success: true, ClientID: c.ID, Name: c.Name}, nil
}
