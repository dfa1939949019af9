package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Pos   *int   `json:"pos,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			body := errorBody{Error: ve.Error(), Title: "validation error", Kind: ve.Kind}
			if ve.Pos >= 0 {
				pos := ve.Pos
				body.Pos = &pos
			}
			_ = c.JSON(http.StatusBadRequest, body)
			return
		}

		if errors.Is(err, ErrNotFound) {
			_ = c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, errorBody{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
