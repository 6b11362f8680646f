package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"book-api/internal/application/command"
	"book-api/internal/application/common"
	"book-api/internal/application/interfaces"
)

type AuthHandler struct {
	auth interfaces.AuthService
}

func NewAuthHandler(auth interfaces.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerResponse struct {
	Message string             `json:"message"`
	User    *common.UserResult `json:"user"`
	Token   string             `json:"token"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := h.auth.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "Utilisateur créé",
		User:    result.User,
		Token:   result.Token,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := h.auth.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Connexion réussie",
		Token:   result.Token,
	})
}

// Logout runs behind BearerAuth, so the user id and the exact token used
// for this request are already in the context.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get(ContextUserID).(uuid.UUID)
	token, tokenOK := c.Get(ContextToken).(string)
	if !ok || !tokenOK {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
	}

	if err := h.auth.Logout(c.Request().Context(), userID, token); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Déconnexion réussie"})
}
