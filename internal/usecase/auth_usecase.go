package usecase

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(email string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 現在時刻の約束（テストで差し替える）
type Clock interface {
	Now() time.Time
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type bcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() PasswordVerifier {
	return &bcryptPasswordVerifier{}
}

func (v *bcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// AuthUsecase は管理者1人分のサインイン。
// 会員機能はなく、管理画面を見せるかどうかだけを決める。
type AuthUsecase struct {
	adminEmail string
	adminHash  string // bcrypt
	verifier   PasswordVerifier
	issuer     AccessTokenIssuer
	clock      Clock
}

// DI
func NewAuthUsecase(
	adminEmail string,
	adminHash string,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		adminEmail: adminEmail,
		adminHash:  adminHash,
		verifier:   verifier,
		issuer:     issuer,
		clock:      clock,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (u *AuthUsecase) Login(_ context.Context, in LoginInput) (LoginOutput, error) {
	if in.Email == "" || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "Enter email and password")
	}

	// どちらが違ったかは言わない
	if in.Email != u.adminEmail || !u.verifier.Verify(in.Password, u.adminHash) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Sign in failed")
	}

	token, expiresAt, err := u.issuer.Issue(in.Email, u.clock.Now())
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return LoginOutput{Token: token, ExpiresAt: expiresAt}, nil
}
