package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/pricing"
	repo "github.com/Wasif581-create/Jdbanks/internal/repository"
)

const waBaseURL = "https://wa.me"

// CheckoutUsecase は注文内容をWhatsAppメッセージに組み立てて引き渡す。
// 配送や決済は扱わない。送った後のことは知らない。
type CheckoutUsecase struct {
	carts     repo.CartStore
	customers repo.CustomerStore
	calc      *pricing.Calculator
	recipient string // 宛先の電話番号（+なし）
}

// DI
func NewCheckoutUsecase(
	carts repo.CartStore,
	customers repo.CustomerStore,
	calc *pricing.Calculator,
	recipient string,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:     carts,
		customers: customers,
		calc:      calc,
		recipient: recipient,
	}
}

type CheckoutInput struct {
	Phone   string
	Email   string
	Address string
	Postal  string
	City    string
	Country string
}

type CheckoutOutput struct {
	RedirectURL string `json:"redirect_url"`
}

// Checkout は注文メッセージを組み立てて遷移先URLを返す。
// 成功時は顧客情報を保存し、カートを空にする。
// ガードで弾かれたときは何も変更しない。
func (u *CheckoutUsecase) Checkout(ctx context.Context, key string, in CheckoutInput) (CheckoutOutput, error) {
	cart, err := u.carts.Load(ctx, key)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	if len(cart) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "Your cart is empty.")
	}

	details := model.CustomerDetails{
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		Postal:  in.Postal,
		City:    in.City,
		Country: in.Country,
	}.Trimmed()
	if !details.Complete() {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest,
			"Please fill in Phone, Email, Address, Postal Code, City, and Country.")
	}

	// 次回のプレフィル用に保存
	if err := u.customers.Save(ctx, key, details); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	message := u.buildMessage(cart, details)
	redirect := waBaseURL + "/" + u.recipient + "?text=" + url.QueryEscape(message)

	// 送信前にカートを空にする
	if err := u.carts.Save(ctx, key, model.Cart{}); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return CheckoutOutput{RedirectURL: redirect}, nil
}

// Customer は保存済みの顧客情報（プレフィル用）。無ければゼロ値。
func (u *CheckoutUsecase) Customer(ctx context.Context, key string) (model.CustomerDetails, error) {
	details, err := u.customers.Load(ctx, key)
	if err != nil {
		return model.CustomerDetails{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return details, nil
}

// 注文サマリを人が読める形で組み立てる。
// 並び: ヘッダ、個数、明細、小計/送料/合計、顧客情報、確認のお願い。
func (u *CheckoutUsecase) buildMessage(cart model.Cart, details model.CustomerDetails) string {
	totals := u.calc.Totals(cart)

	lines := []string{
		"New JD BANKS Order",
		fmt.Sprintf("Items: %d", cart.TotalItemCount()),
		"",
	}

	for _, it := range cart {
		category := it.Category
		if category == "" {
			category = "item"
		}
		description := fmt.Sprintf("%s - %s %s", it.DisplayTitle(), it.Gender, category)
		lines = append(lines, fmt.Sprintf("%d x %s — %s each = %s",
			it.Qty,
			description,
			u.calc.FormatPrice(it.Price),
			u.calc.Format(u.calc.LineTotal(it)),
		))
	}

	lines = append(lines,
		"",
		"Subtotal: "+u.calc.Format(totals.Subtotal),
		"Delivery: "+u.calc.Format(totals.Shipping),
		"Total: "+u.calc.Format(totals.Total),
		"",
		"Customer Details:",
		"Phone: "+details.Phone,
		"Email: "+details.Email,
		"Address: "+details.Address,
		"Postal Code: "+details.Postal,
		"City: "+details.City,
		"Country: "+details.Country,
		"",
		"Please confirm my order.",
	)

	return strings.Join(lines, "\n")
}
