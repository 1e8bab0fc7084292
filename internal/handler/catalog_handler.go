package handler

import (
	"net/http"

	"kiosk/internal/domain/model"
	"kiosk/internal/middleware"
	"kiosk/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func sessionFromContext(c echo.Context) (model.Session, bool) {
	return middleware.GetSession(c)
}

// 商品ページの読み込みAPI
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/pages/catalog", h.load)
}

func (h *CatalogHandler) load(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	// only_available（default true）。管理画面は販売終了も見たいのでfalseで呼ぶ
	onlyAvailable := true
	if v := c.QueryParam("only_available"); v == "false" || v == "0" {
		onlyAvailable = false
	}

	term := c.QueryParam("q")

	out, err := h.uc.LoadCatalogPage(c.Request().Context(), s, onlyAvailable, term)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
