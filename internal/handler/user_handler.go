package handler

import (
	"net/http"

	repo "kiosk/internal/repository"

	"github.com/labstack/echo/v4"
)

// 現在ユーザーを返すだけの薄いAPI。401はそのままログイン誘導の合図。
type UserHandler struct {
	gateway repo.BackendGateway
}

// DI
func NewUserHandler(gateway repo.BackendGateway) *UserHandler {
	return &UserHandler{gateway: gateway}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/pages/me", h.me)
}

func (h *UserHandler) me(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	user, err := h.gateway.GetUser(c.Request().Context(), s)
	if err == repo.ErrUnauthenticated {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "login required"})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "backend unavailable"})
	}

	return c.JSON(http.StatusOK, user)
}
