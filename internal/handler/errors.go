package handler

import (
	"net/http"

	"gasvision/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, log *zap.SugaredLogger, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			log.Errorw(he.Message,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	log.Errorw("internal error", "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
