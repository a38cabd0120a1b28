package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	ucClient "github.com/BruksfildServices01/barber-booking/internal/usecase/client"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	register     *ucClient.RegisterClient
	authenticate *ucClient.AuthenticateClient
	config       *config.Config
}

func NewAuthHandler(
	register *ucClient.RegisterClient,
	authenticate *ucClient.AuthenticateClient,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		authenticate: authenticate,
		config:       cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.register.Execute(c.Request.Context(), ucClient.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}

	token, err := h.generateToken(client.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client": gin.H{
			"id":    client.ID,
			"name":  client.Name,
			"email": client.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	if !res.Success {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, err := h.generateToken(res.ClientID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client": gin.H{
			"id":   res.ClientID,
			"name": res.Name,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(clientID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": clientID,
		"jti": uuid.NewString(),
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
