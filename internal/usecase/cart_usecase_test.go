package usecase

import (
	"context"
	"testing"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// インメモリのフェイク
// =====================

type memCartStore struct {
	carts map[string]model.Cart
	saves int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]model.Cart{}}
}

func (m *memCartStore) Load(_ context.Context, key string) (model.Cart, error) {
	cart := m.carts[key]
	out := make(model.Cart, len(cart))
	copy(out, cart)
	return out, nil
}

func (m *memCartStore) Save(_ context.Context, key string, cart model.Cart) error {
	saved := make(model.Cart, len(cart))
	copy(saved, cart)
	m.carts[key] = saved
	m.saves++
	return nil
}

type stubCatalog struct {
	products map[string]model.Product
}

func (s *stubCatalog) Find(id string) (model.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func testProducts() *stubCatalog {
	return &stubCatalog{products: map[string]model.Product{
		"shoe-1":  {ID: "shoe-1", Title: "Runner", Price: 5000, Gender: model.GenderWomen, Category: "Shoes"},
		"dress-1": {ID: "dress-1", Title: "Evening Dress", Price: 3000, Gender: model.GenderWomen, Category: "Dresses"},
		"bag-1":   {ID: "bag-1", Title: "Tote Bag", Price: 1500, Gender: model.GenderWomen, Category: "Accessories"},
	}}
}

func newTestCartUsecase(store *memCartStore) *CartUsecase {
	calc := pricing.NewCalculator("PKR", decimal.NewFromInt(200))
	return NewCartUsecase(testProducts(), store, calc)
}

// =====================
// Add
// =====================

func TestCartUsecase_Add_RequiresVariantForShoes(t *testing.T) {
	store := newMemCartStore()
	uc := newTestCartUsecase(store)

	_, err := uc.Add(context.Background(), "k", "shoe-1", "")
	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "Please select a EU size", he.Message)

	// 失敗時は何も保存しない
	assert.Zero(t, store.saves)
}

func TestCartUsecase_Add_RejectsValueOutsideLadder(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())

	// women用の棚に47は無い
	_, err := uc.Add(context.Background(), "k", "shoe-1", "47")
	require.Error(t, err)
	he, _ := AsHTTPError(err)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_Add_WithVariantBuildsMergeKey(t *testing.T) {
	store := newMemCartStore()
	uc := newTestCartUsecase(store)

	out, err := uc.Add(context.Background(), "k", "shoe-1", "42")
	require.NoError(t, err)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, "shoe-1_42", out.Cart.Items[0].CartItemID)
	assert.Equal(t, "Added to cart (Size: EU 42)", out.Message)

	saved := store.carts["k"]
	require.Len(t, saved, 1)
	require.NotNil(t, saved[0].Selection)
	assert.Equal(t, model.VariantEUSize, saved[0].Selection.Kind)
	assert.Equal(t, "42", saved[0].Selection.Value)
}

func TestCartUsecase_Add_SameProductAndSizeMerges(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())
	ctx := context.Background()

	_, err := uc.Add(ctx, "k", "shoe-1", "42")
	require.NoError(t, err)
	out, err := uc.Add(ctx, "k", "shoe-1", "42")
	require.NoError(t, err)

	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, int64(2), out.Cart.Items[0].Qty)
}

func TestCartUsecase_Add_DifferentSizesAreDistinctLines(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())
	ctx := context.Background()

	_, err := uc.Add(ctx, "k", "dress-1", "Medium")
	require.NoError(t, err)
	out, err := uc.Add(ctx, "k", "dress-1", "Large")
	require.NoError(t, err)

	require.Len(t, out.Cart.Items, 2)
	assert.Equal(t, "dress-1_Medium", out.Cart.Items[0].CartItemID)
	assert.Equal(t, "dress-1_Large", out.Cart.Items[1].CartItemID)
	assert.Equal(t, int64(1), out.Cart.Items[0].Qty)
	assert.Equal(t, int64(1), out.Cart.Items[1].Qty)
}

func TestCartUsecase_Add_SimpleProductRepeatedlyIncrements(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())
	ctx := context.Background()

	var out CartAddResult
	var err error
	for i := 0; i < 5; i++ {
		out, err = uc.Add(ctx, "k", "bag-1", "")
		require.NoError(t, err)
	}

	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, "bag-1", out.Cart.Items[0].CartItemID)
	assert.Equal(t, int64(5), out.Cart.Items[0].Qty)
	assert.Equal(t, int64(5), out.Cart.ItemCount)
	assert.Equal(t, "Added to cart", out.Message)
}

func TestCartUsecase_Add_UnknownProductIsNoop(t *testing.T) {
	store := newMemCartStore()
	uc := newTestCartUsecase(store)

	out, err := uc.Add(context.Background(), "k", "ghost", "")
	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
	assert.Empty(t, out.Message)
	assert.Zero(t, store.saves)
}

// =====================
// SetQuantity / Remove
// =====================

func TestCartUsecase_SetQuantity_Normalization(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())
	ctx := context.Background()

	_, err := uc.Add(ctx, "k", "bag-1", "")
	require.NoError(t, err)

	cases := []struct {
		in   any
		want int64
	}{
		{float64(0), 1},
		{float64(-5), 1},
		{float64(3.7), 4},
		{float64(3), 3},
		{"12", 12},
		{"abc", 1},
		{nil, 1},
		{true, 1},
	}
	for _, tc := range cases {
		out, err := uc.SetQuantity(ctx, "k", "bag-1", tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.Items[0].Qty, "input %v", tc.in)
	}
}

func TestCartUsecase_SetQuantity_MissingLineIsNoop(t *testing.T) {
	store := newMemCartStore()
	uc := newTestCartUsecase(store)
	ctx := context.Background()

	_, err := uc.Add(ctx, "k", "bag-1", "")
	require.NoError(t, err)
	savesBefore := store.saves

	out, err := uc.SetQuantity(ctx, "k", "missing", float64(7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Items[0].Qty)
	assert.Equal(t, savesBefore, store.saves)
}

func TestCartUsecase_Remove(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())
	ctx := context.Background()

	_, err := uc.Add(ctx, "k", "bag-1", "")
	require.NoError(t, err)
	_, err = uc.Add(ctx, "k", "dress-1", "Medium")
	require.NoError(t, err)

	out, err := uc.Remove(ctx, "k", "bag-1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "dress-1_Medium", out.Items[0].CartItemID)

	// 無い行の削除は何も壊さない
	out, err = uc.Remove(ctx, "k", "bag-1")
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

// =====================
// 金額表示
// =====================

func TestCartUsecase_ResponseTotals(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())
	ctx := context.Background()

	_, err := uc.Add(ctx, "k", "shoe-1", "42")
	require.NoError(t, err)
	out, err := uc.SetQuantity(ctx, "k", "shoe-1_42", float64(2))
	require.NoError(t, err)

	assert.Equal(t, "PKR 10000.00", out.Subtotal)
	assert.Equal(t, "PKR 200.00", out.Shipping)
	assert.Equal(t, "PKR 10200.00", out.Total)
	assert.Equal(t, "Runner (EU Size: 42)", out.Items[0].Title)
	assert.Equal(t, "PKR 10000.00", out.Items[0].LineTotal)
}

func TestCartUsecase_EmptyCartHasNoShipping(t *testing.T) {
	uc := newTestCartUsecase(newMemCartStore())

	out, err := uc.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "PKR 0.00", out.Shipping)
	assert.Equal(t, "PKR 0.00", out.Total)
	assert.Zero(t, out.ItemCount)
}

func TestNormalizeQty(t *testing.T) {
	assert.Equal(t, int64(1), normalizeQty(float64(-3)))
	assert.Equal(t, int64(4), normalizeQty(float64(3.7)))
	assert.Equal(t, int64(1), normalizeQty("nope"))
	assert.Equal(t, int64(2), normalizeQty("2.4"))
	assert.Equal(t, int64(1), normalizeQty(nil))
	assert.Equal(t, int64(3), normalizeQty(int(3)))
	assert.Equal(t, int64(5), normalizeQty(int64(5)))
}
