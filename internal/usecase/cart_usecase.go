package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/domain/variant"
	"github.com/Wasif581-create/Jdbanks/internal/pricing"
	repo "github.com/Wasif581-create/Jdbanks/internal/repository"
)

// カタログのスナップショットから商品を引く約束
type ProductFinder interface {
	Find(id string) (model.Product, bool)
}

// CartUsecase はカートの業務ロジック。
// すべての変更は同期的で、変更のたびにストアへ書き戻す。
type CartUsecase struct {
	catalog ProductFinder
	store   repo.CartStore
	calc    *pricing.Calculator
}

// DI
func NewCartUsecase(catalog ProductFinder, store repo.CartStore, calc *pricing.Calculator) *CartUsecase {
	return &CartUsecase{catalog: catalog, store: store, calc: calc}
}

type CartLineResponse struct {
	CartItemID string `json:"cart_item_id"`
	ProductID  string `json:"product_id"`
	Title      string `json:"title"` // 選択サイズの注記付き
	Img        string `json:"img"`
	Price      string `json:"price"`
	Qty        int64  `json:"qty"`
	LineTotal  string `json:"line_total"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int64              `json:"item_count"`
	Subtotal  string             `json:"subtotal"`
	Shipping  string             `json:"shipping"`
	Total     string             `json:"total"`
}

// 追加結果。Messageはトースト表示用（no-op時は空）。
type CartAddResult struct {
	Cart    CartResponse `json:"cart"`
	Message string       `json:"message,omitempty"`
}

func (u *CartUsecase) Get(ctx context.Context, key string) (CartResponse, error) {
	cart, err := u.store.Load(ctx, key)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return u.buildResponse(cart), nil
}

// Add はカートに1つ追加する。
// 同じ商品+同じ選択は数量加算、違う選択は別の行になる。
// 商品が見つからないときは何もしない（現状のカートを返す）。
func (u *CartUsecase) Add(ctx context.Context, key string, productID string, size string) (CartAddResult, error) {
	cart, err := u.store.Load(ctx, key)
	if err != nil {
		return CartAddResult{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	p, ok := u.catalog.Find(productID)
	if !ok {
		return CartAddResult{Cart: u.buildResponse(cart)}, nil
	}

	req := variant.ForProduct(p)

	var selection *model.VariantSelection
	cartItemID := p.ID
	message := "Added to cart"

	if req.Required() {
		// サイズ/年齢は黙ってデフォルトにしない。必ず選ばせる。
		if size == "" {
			return CartAddResult{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Please select a %s", req.Kind.Prompt()))
		}
		if !req.Allows(size) {
			return CartAddResult{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Please select a valid %s", req.Kind.Prompt()))
		}
		selection = &model.VariantSelection{Kind: req.Kind, Value: size}
		cartItemID = p.ID + "_" + size
		message = req.Kind.AddedMessage(size)
	}

	if i := cart.IndexOf(cartItemID); i >= 0 {
		cart[i].Qty++
	} else {
		cart = append(cart, model.CartItem{
			CartItemID: cartItemID,
			ProductID:  p.ID,
			Title:      p.Title,
			Price:      p.Price,
			Gender:     p.Gender,
			Category:   p.Category,
			Img:        p.Img,
			Images:     p.Images,
			Qty:        1,
			Selection:  selection,
		})
	}

	if err := u.store.Save(ctx, key, cart); err != nil {
		return CartAddResult{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return CartAddResult{Cart: u.buildResponse(cart), Message: message}, nil
}

// Remove は行を削除する。無い行なら何もしない。
func (u *CartUsecase) Remove(ctx context.Context, key string, cartItemID string) (CartResponse, error) {
	cart, err := u.store.Load(ctx, key)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	kept := cart[:0]
	for _, it := range cart {
		if it.CartItemID != cartItemID {
			kept = append(kept, it)
		}
	}
	cart = kept

	if err := u.store.Save(ctx, key, cart); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return u.buildResponse(cart), nil
}

// SetQuantity は数量を max(1, round(value)) に正規化して設定する。
// 数値でない入力は1に落とす（エラーにはしない）。無い行なら何もしない。
func (u *CartUsecase) SetQuantity(ctx context.Context, key string, cartItemID string, value any) (CartResponse, error) {
	cart, err := u.store.Load(ctx, key)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	if i := cart.IndexOf(cartItemID); i >= 0 {
		cart[i].Qty = normalizeQty(value)
		if err := u.store.Save(ctx, key, cart); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
		}
	}

	return u.buildResponse(cart), nil
}

// Clear はカートを空にする。
func (u *CartUsecase) Clear(ctx context.Context, key string) error {
	if err := u.store.Save(ctx, key, model.Cart{}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

// JSONから来る数量を正規化する。下限1、四捨五入。
func normalizeQty(v any) int64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case json.Number:
		ff, err := t.Float64()
		if err != nil {
			return 1
		}
		f = ff
	case string:
		ff, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 1
		}
		f = ff
	default:
		return 1
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}
	n := int64(math.Round(f))
	if n < 1 {
		return 1
	}
	return n
}

// カートと金額をまとめて返す形にする
func (u *CartUsecase) buildResponse(cart model.Cart) CartResponse {
	items := make([]CartLineResponse, 0, len(cart))
	for _, it := range cart {
		items = append(items, CartLineResponse{
			CartItemID: it.CartItemID,
			ProductID:  it.ProductID,
			Title:      it.DisplayTitle(),
			Img:        it.Img,
			Price:      u.calc.FormatPrice(it.Price),
			Qty:        it.Qty,
			LineTotal:  u.calc.Format(u.calc.LineTotal(it)),
		})
	}

	totals := u.calc.Totals(cart)
	return CartResponse{
		Items:     items,
		ItemCount: cart.TotalItemCount(),
		Subtotal:  u.calc.Format(totals.Subtotal),
		Shipping:  u.calc.Format(totals.Shipping),
		Total:     u.calc.Format(totals.Total),
	}
}
