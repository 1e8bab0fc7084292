package handler

import (
	"net/http"
	"strconv"

	"kiosk/internal/domain/model"
	"kiosk/internal/usecase"

	"github.com/labstack/echo/v4"
)

type TransactionHandler struct {
	uc *usecase.TransactionUsecase
}

// DI
func NewTransactionHandler(uc *usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/pages/transactions", h.listRecent)
	e.GET("/pages/transactions/user/:id", h.listForUser)
	// 複合条件はボディ付きPOSTに統一
	e.POST("/pages/transactions/query", h.query)

	e.GET("/transactions/:id", h.detail)
	e.POST("/transactions/:id/undo", h.undo)
}

func cursorParam(c echo.Context) *string {
	if v := c.QueryParam("cursor"); v != "" {
		return &v
	}
	return nil
}

func (h *TransactionHandler) listRecent(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	out, err := h.uc.ListRecent(c.Request().Context(), s, cursorParam(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) listForUser(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}

	out, uerr := h.uc.ListForUser(c.Request().Context(), s, userID, cursorParam(c))
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) query(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	var q model.TransactionQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.List(c.Request().Context(), s, q)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) detail(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, uerr := h.uc.Detail(c.Request().Context(), s, id)
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, out)
}

// 取り消しに成功したら、画面側はカタログ・履歴・統計を再取得すること
func (h *TransactionHandler) undo(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if uerr := h.uc.Undo(c.Request().Context(), s, id); uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "undone"})
}
