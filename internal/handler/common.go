package handler

import (
	"net/http"

	"github.com/Wasif581-create/Jdbanks/internal/usecase"

	"github.com/google/uuid"
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

// カートのキーを持つCookie。ブラウザ1つにつきカート1つ。
const cartKeyCookie = "jdb_cart_key"

// Cookieからカートキーを取り出す。無ければ発行してセットする。
func cartKey(c echo.Context) string {
	if ck, err := c.Cookie(cartKeyCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	key := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartKeyCookie,
		Value:    key,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}
