package handler

import (
	"net/http"
	"strconv"

	"kiosk/internal/domain/model"
	"kiosk/internal/middleware"
	repo "kiosk/internal/repository"
	"kiosk/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	peopleUC *usecase.AdminUsecase
	statsUC  *usecase.StatsUsecase
}

// DI
func NewAdminHandler(peopleUC *usecase.AdminUsecase, statsUC *usecase.StatsUsecase) *AdminHandler {
	return &AdminHandler{peopleUC: peopleUC, statsUC: statsUC}
}

// /pages/admin 配下は全部admin限定
func (h *AdminHandler) RegisterRoutes(e *echo.Echo, gateway repo.BackendGateway) {
	admin := e.Group(
		"/pages/admin",
		middleware.AdminGuard(gateway),
	)

	admin.GET("/people", h.people)
	admin.GET("/stats/best_selling", h.bestSelling)
	admin.GET("/stats/:name", h.stat)
}

func (h *AdminHandler) people(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	out, err := h.peopleUC.LoadPeoplePage(c.Request().Context(), s, c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) bestSelling(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	var tr model.TimeRange
	if v := c.QueryParam("start"); v != "" {
		start, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start"})
		}
		tr.Start = &start
	}
	if v := c.QueryParam("end"); v != "" {
		end, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end"})
		}
		tr.End = &end
	}

	out, err := h.statsUC.BestSelling(c.Request().Context(), s, tr)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) stat(c echo.Context) error {
	s, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
	}

	out, err := h.statsUC.Opaque(c.Request().Context(), s, c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSONBlob(http.StatusOK, out)
}
