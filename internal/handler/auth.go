package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/villa-booking/internal/auth"
)

// AuthHandler serves the owner login.
type AuthHandler struct {
	Auth   *auth.Authenticator
	Logger *zap.Logger
}

func NewAuthHandler(a *auth.Authenticator, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{Auth: a, Logger: logger}
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges the owner's username and password for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return respondError(c, h.Logger, err, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.Logger, err, "invalid body")
	}
	tok, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		return respondError(c, h.Logger, err, "login failed")
	}
	return c.JSON(http.StatusOK, loginResp{AccessToken: tok.Token, TokenType: "bearer"})
}
