package server

import (
	"net/http"
	"time"

	"gasvision/internal/handler"
	"gasvision/internal/middleware"
	"gasvision/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type healthResponse struct {
	Status string `json:"status"`
}

func registerHealth(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
	})
}

// 顧客画面。/api以下はセッション必須。
func RegisterCustomerRoutes(e *echo.Echo, h *handler.CustomerHandler, store session.Store, ttl time.Duration, log *zap.SugaredLogger) {
	registerHealth(e)

	api := e.Group("/api")
	api.Use(middleware.Session(store, ttl, log))
	h.RegisterRoutes(api)
}

func RegisterAdminRoutes(e *echo.Echo, h *handler.AdminHandler) {
	registerHealth(e)
	h.RegisterRoutes(e.Group("/admin"))
}
