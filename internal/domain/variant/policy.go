package variant

import (
	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
)

// Requirement は商品をカートに入れる前に必要な選択の内容。
// Kindが空なら選択不要。
type Requirement struct {
	Kind   model.VariantKind
	Values []string
}

func (r Requirement) Required() bool {
	return r.Kind != ""
}

// 許可された選択肢か
func (r Requirement) Allows(value string) bool {
	for _, v := range r.Values {
		if v == value {
			return true
		}
	}
	return false
}

// EUサイズの棚。靴は性別でレンジが違う。
var (
	womenShoeSizes   = []string{"35", "36", "37", "38", "39", "40", "41", "42"}
	menShoeSizes     = []string{"39", "40", "41", "42", "43", "44", "45", "46", "47"}
	juniorsShoeSizes = []string{"28", "29", "30", "31", "32", "33", "34", "35", "36", "37", "38"}

	dressSizes      = []string{"Small", "Medium", "Large", "XL"}
	menApparelSizes = []string{"Small", "Medium", "Large", "XL", "XXL"}
	juniorAges      = []string{"1 Year", "2 Years", "3 Years", "4 Years", "5 Years", "6 Years", "7 Years", "8 Years"}
)

// For は (category, gender) の有限な組み合わせから選択要件を決める。
// 表に無い組み合わせは選択不要。
func For(category string, gender model.Gender) Requirement {
	switch category {
	case "Shoes":
		switch gender {
		case model.GenderWomen:
			return Requirement{Kind: model.VariantEUSize, Values: womenShoeSizes}
		case model.GenderMen:
			return Requirement{Kind: model.VariantEUSize, Values: menShoeSizes}
		case model.GenderJuniors:
			return Requirement{Kind: model.VariantEUSize, Values: juniorsShoeSizes}
		}
	case "Dresses":
		if gender == model.GenderWomen {
			return Requirement{Kind: model.VariantGarment, Values: dressSizes}
		}
	case "Apparel":
		switch gender {
		case model.GenderMen:
			return Requirement{Kind: model.VariantGarment, Values: menApparelSizes}
		case model.GenderJuniors:
			return Requirement{Kind: model.VariantAge, Values: juniorAges}
		}
	}
	return Requirement{}
}

// ForProduct は商品から要件を引く
func ForProduct(p model.Product) Requirement {
	return For(p.Category, p.Gender)
}
