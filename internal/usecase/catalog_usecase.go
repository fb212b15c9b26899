package usecase

import (
	"net/http"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/domain/variant"
)

// スナップショットの読み口
type SnapshotSource interface {
	Snapshot() []model.Product
}

// CatalogUsecase は公開側の商品一覧。
// 一覧はスナップショットから都度絞り込むだけで、差分は扱わない。
type CatalogUsecase struct {
	source SnapshotSource
}

// DI
func NewCatalogUsecase(source SnapshotSource) *CatalogUsecase {
	return &CatalogUsecase{source: source}
}

// 商品1件分の表示情報。選択が必要なら選択肢とラベルも含む。
type ProductView struct {
	model.Product
	RequiresVariant bool     `json:"requires_variant"`
	VariantLabel    string   `json:"variant_label,omitempty"`
	VariantValues   []string `json:"variant_values,omitempty"`
}

type ProductListOutput struct {
	Items []ProductView `json:"items"`
}

type CategoriesOutput struct {
	Categories []string `json:"categories"`
}

// List は性別（必須）とカテゴリ（Allまたは空で全件）で絞る。
// 並びはスナップショットのまま（新着順）。
func (u *CatalogUsecase) List(gender model.Gender, category string) (ProductListOutput, error) {
	if !gender.Valid() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid gender")
	}

	items := make([]ProductView, 0)
	for _, p := range u.source.Snapshot() {
		if p.Gender != gender {
			continue
		}
		if category != "" && category != model.CategoryAll && p.Category != category {
			continue
		}

		view := ProductView{Product: p}
		if req := variant.ForProduct(p); req.Required() {
			view.RequiresVariant = true
			view.VariantLabel = req.Kind.Label()
			view.VariantValues = req.Values
		}
		items = append(items, view)
	}

	return ProductListOutput{Items: items}, nil
}

// Categories は性別ごとのカテゴリ一覧
func (u *CatalogUsecase) Categories(gender model.Gender) (CategoriesOutput, error) {
	if !gender.Valid() {
		return CategoriesOutput{}, NewHTTPError(http.StatusBadRequest, "invalid gender")
	}
	return CategoriesOutput{Categories: model.CategoriesFor(gender)}, nil
}
