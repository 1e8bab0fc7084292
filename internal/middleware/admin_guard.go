package middleware

import (
	"errors"
	"net/http"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"

	"github.com/labstack/echo/v4"
)

// /pages/admin 配下はバックエンドに現在ユーザーを問い合わせて
// adminだけを通す。役割はバックエンドが決める（こちらでは持たない）。
func AdminGuard(gateway repo.BackendGateway) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := GetSession(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("login required"))
			}

			user, err := gateway.GetUser(c.Request().Context(), s)
			if errors.Is(err, repo.ErrUnauthenticated) {
				return c.JSON(http.StatusUnauthorized, errorJSON("login required"))
			}
			if err != nil {
				return c.JSON(http.StatusBadGateway, errorJSON("backend unavailable"))
			}

			if user.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			return next(c)
		}
	}
}

// contextからセッションを取り出す
func GetSession(c echo.Context) (model.Session, bool) {
	s, ok := c.Get(CtxSessionKey).(model.Session)
	return s, ok
}
