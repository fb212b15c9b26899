package handler

import (
	"net/http"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products と /categories の公開API
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/categories", h.categories)
}

func (h *ProductHandler) list(c echo.Context) error {
	gender := model.Gender(c.QueryParam("gender"))
	category := c.QueryParam("category")

	out, err := h.uc.List(gender, category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) categories(c echo.Context) error {
	gender := model.Gender(c.QueryParam("gender"))

	out, err := h.uc.Categories(gender)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
