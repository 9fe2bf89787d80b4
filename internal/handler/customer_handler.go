package handler

import (
	"net/http"

	"gasvision/internal/domain/model"
	"gasvision/internal/middleware"
	"gasvision/internal/session"
	"gasvision/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NavigateRequest はページ切り替え
type NavigateRequest struct {
	Page string `json:"page"`
}

// OrderCreateRequest は注文フォーム。amountは省略可。
type OrderCreateRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	AmountKg     *int   `json:"amount"`
	Location     string `json:"location"`
	DeliveryTime string `json:"delivery_time"`
}

// /api の顧客向けAPI
type CustomerHandler struct {
	uc       *usecase.OrderUsecase
	sessions session.Store
	log      *zap.SugaredLogger
}

// DI
func NewCustomerHandler(uc *usecase.OrderUsecase, sessions session.Store, log *zap.SugaredLogger) *CustomerHandler {
	return &CustomerHandler{uc: uc, sessions: sessions, log: log}
}

func (h *CustomerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/view", h.view)
	g.POST("/navigate", h.navigate)
	g.POST("/orders", h.placeOrder)
	g.GET("/history", h.history)
	g.GET("/delivery-times", h.deliveryTimes)
}

func (h *CustomerHandler) view(c echo.Context) error {
	st := middleware.SessionState(c)
	if err := h.save(c, st); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, h.uc.View(st))
}

func (h *CustomerHandler) navigate(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	next, v, err := h.uc.Navigate(middleware.SessionState(c), req.Page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.save(c, next); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *CustomerHandler) placeOrder(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	next, v, err := h.uc.PlaceOrder(c.Request().Context(), middleware.SessionState(c), usecase.OrderInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		AmountKg:     req.AmountKg,
		Location:     req.Location,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.save(c, next); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *CustomerHandler) history(c echo.Context) error {
	next, v := h.uc.History(middleware.SessionState(c), c.QueryParam("phone"))
	if err := h.save(c, next); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *CustomerHandler) deliveryTimes(c echo.Context) error {
	return c.JSON(http.StatusOK, model.DeliveryTimes)
}

func (h *CustomerHandler) save(c echo.Context, st session.State) error {
	if err := h.sessions.Put(c.Request().Context(), middleware.SessionID(c), st); err != nil {
		return &usecase.HTTPError{
			Status:  http.StatusServiceUnavailable,
			Message: usecase.MsgStorageUnavailable,
			Cause:   err,
		}
	}
	return nil
}
