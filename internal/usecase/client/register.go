package client

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterClient struct {
	clients domain.ClientStore

	cost        int
	checkDomain func(email string) bool
}

// NewRegisterClient aceita checkDomain nil para pular a validação de domínio.
func NewRegisterClient(clients domain.ClientStore, checkDomain func(string) bool) *RegisterClient {
	return &RegisterClient{
		clients:     clients,
		cost:        bcrypt.DefaultCost,
		checkDomain: checkDomain,
	}
}

func (uc *RegisterClient) Execute(ctx context.Context, in RegisterInput) (*models.Client, error) {
	email := NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)

	if name == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if len(in.Password) < 6 {
		return nil, httperr.ErrBusiness("weak_password")
	}

	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	// --------------------------------------------------
	// E-mail único
	// --------------------------------------------------
	_, err := uc.clients.GetClientByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, httperr.ErrBusiness("email_already_exists")
	case !httperr.IsNotFound(err):
		return nil, httperr.DataAccess("get_client_by_email", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	c := &models.Client{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}

	// o índice único ainda cobre cadastros simultâneos
	if err := uc.clients.CreateClient(ctx, c); err != nil {
		return nil, httperr.DataAccess("create_client", err)
	}

	return c, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
