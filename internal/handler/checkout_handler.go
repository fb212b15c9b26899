package handler

import (
	"net/http"

	"github.com/Wasif581-create/Jdbanks/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Postal  string `json:"postal"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.checkout)
	e.GET("/checkout/customer", h.customer)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), cartKey(c), usecase.CheckoutInput{
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Postal:  req.Postal,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// プレフィル用の保存済み顧客情報
func (h *CheckoutHandler) customer(c echo.Context) error {
	out, err := h.uc.Customer(c.Request().Context(), cartKey(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
