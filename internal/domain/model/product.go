package model

import "time"

type Gender string

const (
	GenderWomen   Gender = "women"
	GenderMen     Gender = "men"
	GenderJuniors Gender = "juniors"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderWomen, GenderMen, GenderJuniors:
		return true
	default:
		return false
	}
}

// 絞り込みなしを表すカテゴリ
const CategoryAll = "All"

// 性別ごとのカテゴリ一覧（先頭はAll）
func CategoriesFor(g Gender) []string {
	switch g {
	case GenderWomen:
		return []string{CategoryAll, "Shoes", "Dresses", "Accessories"}
	case GenderMen, GenderJuniors:
		return []string{CategoryAll, "Shoes", "Apparel", "Accessories"}
	default:
		return nil
	}
}

// 商品。Imagesは追加画像（最大3枚、メイン画像Imgとは別）。
type Product struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Price     float64   `gorm:"not null" json:"price"`
	Gender    Gender    `gorm:"type:varchar(10);not null;index" json:"gender"`
	Category  string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Img       string    `gorm:"type:text" json:"img"`
	Images    []string  `gorm:"serializer:json;type:text" json:"images"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
