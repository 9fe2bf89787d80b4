package handler

import (
	"bytes"
	"net/http"

	"gasvision/internal/export"
	"gasvision/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// /admin の管理画面API（読み取りと書き出し）
type AdminHandler struct {
	uc  *usecase.AdminUsecase
	log *zap.SugaredLogger
}

func NewAdminHandler(uc *usecase.AdminUsecase, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/view", h.view)
	g.GET("/orders", h.orders)
	g.GET("/customers", h.customers)
	g.GET("/analytics", h.analytics)
	g.POST("/orders/export", h.export)
	g.GET("/orders/export.csv", h.downloadCSV)
}

func (h *AdminHandler) view(c echo.Context) error {
	v, err := h.uc.View(c.Request().Context(), c.QueryParam("page"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) orders(c echo.Context) error {
	v, err := h.uc.Orders(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) customers(c echo.Context) error {
	v, err := h.uc.Customers(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) analytics(c echo.Context) error {
	v, err := h.uc.Analytics(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) export(c echo.Context) error {
	msg, err := h.uc.Export(c.Request().Context(), c.QueryParam("format"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: msg})
}

func (h *AdminHandler) downloadCSV(c echo.Context) error {
	//読めなかったらJSONのエラーを返したいので一度バッファに書く
	var buf bytes.Buffer
	if err := h.uc.WriteCSV(c.Request().Context(), &buf); err != nil {
		return writeError(c, h.log, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.CSVFileName+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
