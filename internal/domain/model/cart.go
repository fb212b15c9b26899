package model

import "fmt"

// サイズ/年齢の選択種別
type VariantKind string

const (
	VariantEUSize  VariantKind = "eu_size"
	VariantGarment VariantKind = "garment_size"
	VariantAge     VariantKind = "age"
)

// 選択UIのラベル
func (k VariantKind) Label() string {
	switch k {
	case VariantEUSize:
		return "EU Size:"
	case VariantAge:
		return "Age:"
	default:
		return "Size:"
	}
}

// 未選択エラーで名指しする名詞（"Please select a ..."）
func (k VariantKind) Prompt() string {
	switch k {
	case VariantEUSize:
		return "EU size"
	case VariantAge:
		return "age"
	default:
		return "size"
	}
}

// カート行や注文メッセージに付ける注記
func (k VariantKind) Annotation(value string) string {
	switch k {
	case VariantEUSize:
		return fmt.Sprintf("(EU Size: %s)", value)
	case VariantAge:
		return fmt.Sprintf("(Age: %s)", value)
	default:
		return fmt.Sprintf("(Size: %s)", value)
	}
}

// 追加成功トースト。靴だけ "Size: EU 42" 形式。
func (k VariantKind) AddedMessage(value string) string {
	switch k {
	case VariantEUSize:
		return fmt.Sprintf("Added to cart (Size: EU %s)", value)
	case VariantAge:
		return fmt.Sprintf("Added to cart (Age: %s)", value)
	default:
		return fmt.Sprintf("Added to cart (Size: %s)", value)
	}
}

// 購入者が選んだ選択肢。選択不要の商品ではnil。
type VariantSelection struct {
	Kind  VariantKind `json:"kind"`
	Value string      `json:"value"`
}

// カートの1行。追加時点の商品情報をコピーして保持する。
// CartItemIDがマージキー（同じ商品+同じサイズは数量加算）。
type CartItem struct {
	CartItemID string            `json:"cart_item_id"`
	ProductID  string            `json:"product_id"`
	Title      string            `json:"title"`
	Price      float64           `json:"price"`
	Gender     Gender            `json:"gender"`
	Category   string            `json:"category"`
	Img        string            `json:"img"`
	Images     []string          `json:"images,omitempty"`
	Qty        int64             `json:"qty"`
	Selection  *VariantSelection `json:"selection,omitempty"`
}

// 注文メッセージ用の行見出し（例: "Runner (EU Size: 42)"）
func (i CartItem) DisplayTitle() string {
	if i.Selection == nil {
		return i.Title
	}
	return i.Title + " " + i.Selection.Kind.Annotation(i.Selection.Value)
}

// 挿入順を保持した行の並び
type Cart []CartItem

// カートバッジ用の合計個数
func (c Cart) TotalItemCount() int64 {
	var n int64
	for _, it := range c {
		n += it.Qty
	}
	return n
}

// CartItemIDで行を探す。見つからなければ-1。
func (c Cart) IndexOf(cartItemID string) int {
	for i, it := range c {
		if it.CartItemID == cartItemID {
			return i
		}
	}
	return -1
}
