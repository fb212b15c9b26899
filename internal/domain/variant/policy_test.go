package variant

import (
	"testing"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestFor_ShoesUseGenderSpecificLadder(t *testing.T) {
	women := For("Shoes", model.GenderWomen)
	assert.True(t, women.Required())
	assert.Equal(t, model.VariantEUSize, women.Kind)
	assert.Equal(t, []string{"35", "36", "37", "38", "39", "40", "41", "42"}, women.Values)

	men := For("Shoes", model.GenderMen)
	assert.Equal(t, model.VariantEUSize, men.Kind)
	assert.Equal(t, "39", men.Values[0])
	assert.Equal(t, "47", men.Values[len(men.Values)-1])

	juniors := For("Shoes", model.GenderJuniors)
	assert.Equal(t, model.VariantEUSize, juniors.Kind)
	assert.Equal(t, "28", juniors.Values[0])
	assert.Equal(t, "38", juniors.Values[len(juniors.Values)-1])
}

func TestFor_DressesOnlyForWomen(t *testing.T) {
	r := For("Dresses", model.GenderWomen)
	assert.True(t, r.Required())
	assert.Equal(t, model.VariantGarment, r.Kind)
	assert.Equal(t, []string{"Small", "Medium", "Large", "XL"}, r.Values)

	assert.False(t, For("Dresses", model.GenderMen).Required())
	assert.False(t, For("Dresses", model.GenderJuniors).Required())
}

func TestFor_Apparel(t *testing.T) {
	men := For("Apparel", model.GenderMen)
	assert.Equal(t, model.VariantGarment, men.Kind)
	assert.Equal(t, []string{"Small", "Medium", "Large", "XL", "XXL"}, men.Values)

	// ジュニアのアパレルはサイズではなく年齢
	juniors := For("Apparel", model.GenderJuniors)
	assert.Equal(t, model.VariantAge, juniors.Kind)
	assert.Len(t, juniors.Values, 8)
	assert.Equal(t, "1 Year", juniors.Values[0])
	assert.Equal(t, "8 Years", juniors.Values[7])

	assert.False(t, For("Apparel", model.GenderWomen).Required())
}

func TestFor_OtherCategoriesRequireNothing(t *testing.T) {
	for _, g := range []model.Gender{model.GenderWomen, model.GenderMen, model.GenderJuniors} {
		assert.False(t, For("Accessories", g).Required())
		assert.False(t, For("", g).Required())
	}
}

func TestRequirement_Allows(t *testing.T) {
	r := For("Shoes", model.GenderWomen)
	assert.True(t, r.Allows("38"))
	assert.False(t, r.Allows("47"))
	assert.False(t, r.Allows(""))
}

func TestVariantKind_Labels(t *testing.T) {
	assert.Equal(t, "EU Size:", model.VariantEUSize.Label())
	assert.Equal(t, "Size:", model.VariantGarment.Label())
	assert.Equal(t, "Age:", model.VariantAge.Label())

	assert.Equal(t, "EU size", model.VariantEUSize.Prompt())
	assert.Equal(t, "size", model.VariantGarment.Prompt())
	assert.Equal(t, "age", model.VariantAge.Prompt())

	assert.Equal(t, "(EU Size: 42)", model.VariantEUSize.Annotation("42"))
	assert.Equal(t, "(Size: Medium)", model.VariantGarment.Annotation("Medium"))
	assert.Equal(t, "(Age: 3 Years)", model.VariantAge.Annotation("3 Years"))

	assert.Equal(t, "Added to cart (Size: EU 42)", model.VariantEUSize.AddedMessage("42"))
	assert.Equal(t, "Added to cart (Size: Large)", model.VariantGarment.AddedMessage("Large"))
	assert.Equal(t, "Added to cart (Age: 2 Years)", model.VariantAge.AddedMessage("2 Years"))
}
