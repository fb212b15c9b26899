package handler

import (
	"io"
	"net/http"

	"github.com/Wasif581-create/Jdbanks/internal/config"
	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/middleware"
	"github.com/Wasif581-create/Jdbanks/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/productsのHTTP（要JWT）
type AdminProductHandler struct {
	uc *usecase.AdminProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.AdminProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type SaveProductRequest struct {
	Title    string   `json:"title"`
	Price    float64  `json:"price"`
	Gender   string   `json:"gender"`
	Category string   `json:"category"`
	Img      string   `json:"img"`
	Images   []string `json:"images"`
}

func (r SaveProductRequest) toInput() usecase.SaveProductInput {
	return usecase.SaveProductInput{
		Title:    r.Title,
		Price:    r.Price,
		Gender:   model.Gender(r.Gender),
		Category: r.Category,
		Img:      r.Img,
		Images:   r.Images,
	}
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/products")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/images", h.uploadImage)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req SaveProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	var req SaveProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// multipart/form-data の "image" を受けて公開URLを返す
func (h *AdminProductHandler) uploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	out, err := h.uc.UploadImage(c.Request().Context(), fh.Filename, data, contentType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
