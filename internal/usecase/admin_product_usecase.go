package usecase

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	repo "github.com/Wasif581-create/Jdbanks/internal/repository"
)

// 追加画像はメイン1枚とは別に最大3枚
const maxExtraImages = 3

// 画像を置いて公開URLを返す約束
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// IDを発行する約束
type IDGenerator interface {
	NewID() string
}

// スナップショットを読み直させる約束
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// AdminProductUsecase はカタログへの管理側の書き込み。
// 書き込み失敗はそのまま返し、再試行はしない（last-write-wins）。
type AdminProductUsecase struct {
	products repo.ProductRepository
	catalog  CatalogRefresher
	images   ImageStorage
	idGen    IDGenerator
}

// DI
func NewAdminProductUsecase(
	products repo.ProductRepository,
	catalog CatalogRefresher,
	images ImageStorage,
	idGen IDGenerator,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		products: products,
		catalog:  catalog,
		images:   images,
		idGen:    idGen,
	}
}

type SaveProductInput struct {
	Title    string
	Price    float64
	Gender   model.Gender
	Category string
	Img      string
	Images   []string
}

func (in SaveProductInput) validateBasics() error {
	if strings.TrimSpace(in.Title) == "" || math.IsNaN(in.Price) || in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "Please fill Title and valid Price")
	}
	return nil
}

// 空を除いて最大3枚に切り詰める
func trimImages(images []string) []string {
	out := make([]string, 0, maxExtraImages)
	for _, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		out = append(out, img)
		if len(out) == maxExtraImages {
			break
		}
	}
	return out
}

// Create は新規作成。カテゴリは具体的なもの（Allは不可）に限る。
func (u *AdminProductUsecase) Create(ctx context.Context, in SaveProductInput) (model.Product, error) {
	if err := in.validateBasics(); err != nil {
		return model.Product{}, err
	}
	if !in.Gender.Valid() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid gender")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" || category == model.CategoryAll {
		return model.Product{}, NewHTTPError(http.StatusBadRequest,
			"Please choose a specific Category (not All).")
	}
	if !categoryAllowed(in.Gender, category) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	p := model.Product{
		ID:       u.idGen.NewID(),
		Title:    strings.TrimSpace(in.Title),
		Price:    in.Price,
		Gender:   in.Gender,
		Category: category,
		Img:      strings.TrimSpace(in.Img),
		Images:   trimImages(in.Images),
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "Save failed: "+err.Error())
	}

	_ = u.catalog.Refresh(ctx)
	return created, nil
}

// Update は既存の編集。性別とカテゴリは元のまま維持し、
// 画像が指定されていなければ既存のものを保つ。
func (u *AdminProductUsecase) Update(ctx context.Context, id string, in SaveProductInput) (model.Product, error) {
	if err := in.validateBasics(); err != nil {
		return model.Product{}, err
	}

	existing, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "Save failed: "+err.Error())
	}

	p := existing
	p.Title = strings.TrimSpace(in.Title)
	p.Price = in.Price

	if img := strings.TrimSpace(in.Img); img != "" {
		p.Img = img
	}
	if newExtras := trimImages(in.Images); len(newExtras) > 0 {
		p.Images = newExtras
	}

	if err := u.products.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "Save failed: "+err.Error())
	}

	_ = u.catalog.Refresh(ctx)
	return p, nil
}

// Delete は1件削除
func (u *AdminProductUsecase) Delete(ctx context.Context, id string) error {
	if err := u.products.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusBadGateway, "Delete failed: "+err.Error())
	}

	_ = u.catalog.Refresh(ctx)
	return nil
}

type UploadImageOutput struct {
	URL string `json:"url"`
}

// UploadImage はファイルをオブジェクトストレージに置いてURLを返す。
func (u *AdminProductUsecase) UploadImage(ctx context.Context, filename string, data []byte, contentType string) (UploadImageOutput, error) {
	if u.images == nil {
		return UploadImageOutput{}, NewHTTPError(http.StatusServiceUnavailable, "image upload is not configured")
	}
	if len(data) == 0 {
		return UploadImageOutput{}, NewHTTPError(http.StatusBadRequest, "empty file")
	}

	key := fmt.Sprintf("products/%d_%s", time.Now().UnixMilli(), sanitizeFilename(filename))
	url, err := u.images.Upload(ctx, key, data, contentType)
	if err != nil {
		return UploadImageOutput{}, NewHTTPError(http.StatusBadGateway, "Upload failed: "+err.Error())
	}
	return UploadImageOutput{URL: url}, nil
}

func categoryAllowed(gender model.Gender, category string) bool {
	for _, c := range model.CategoriesFor(gender) {
		if c == category {
			return true
		}
	}
	return false
}

// パス区切りなどを落としてキーに安全な名前にする
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "image"
	}
	return strings.ReplaceAll(name, " ", "_")
}
