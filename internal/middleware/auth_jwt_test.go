package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Wasif581-create/Jdbanks/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type mwErrorBody struct {
	Error string `json:"error"`
}

type mwOKBody struct {
	Email string `json:"email"`
}

func mustMakeJWT(t *testing.T, secret string, sub string, role string, method jwt.SigningMethod) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  1,
		"exp":  9999999999,
	}

	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

func newProtectedEcho(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		email, _ := c.Get(CtxAdminEmailKey).(string)
		return c.JSON(http.StatusOK, mwOKBody{Email: email})
	}, AuthJWT(cfg))
	return e
}

func runRequest(t *testing.T, e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMWError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorBody {
	t.Helper()
	var r mwErrorBody
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}

// Authorizationなし => 401
func TestAuthJWT_Unauthorized_NoHeader(t *testing.T) {
	e := newProtectedEcho(config.Config{JWTSecret: "test-secret"})

	rec := runRequest(t, e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

// Bearer形式じゃない => 401
func TestAuthJWT_Unauthorized_BadScheme(t *testing.T) {
	e := newProtectedEcho(config.Config{JWTSecret: "test-secret"})

	rec := runRequest(t, e, "Token abc.def.ghi")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

// 署名違い => 401
func TestAuthJWT_Unauthorized_BadSignature(t *testing.T) {
	e := newProtectedEcho(config.Config{JWTSecret: "correct-secret"})
	raw := mustMakeJWT(t, "wrong-secret", "a@b.c", "ADMIN", jwt.SigningMethodHS256)

	rec := runRequest(t, e, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

// アルゴリズム違い（HS512）=> 401
func TestAuthJWT_Unauthorized_WrongAlg(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := newProtectedEcho(cfg)
	raw := mustMakeJWT(t, cfg.JWTSecret, "a@b.c", "ADMIN", jwt.SigningMethodHS512)

	rec := runRequest(t, e, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

// roleがADMINでない => 401
func TestAuthJWT_Unauthorized_WrongRole(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := newProtectedEcho(cfg)
	raw := mustMakeJWT(t, cfg.JWTSecret, "a@b.c", "USER", jwt.SigningMethodHS256)

	rec := runRequest(t, e, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

// 正常：ctxにメールが入る
func TestAuthJWT_Success_SetsContext(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := newProtectedEcho(cfg)
	raw := mustMakeJWT(t, cfg.JWTSecret, "admin@jdbanks.example", "ADMIN", jwt.SigningMethodHS256)

	rec := runRequest(t, e, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body mwOKBody
	_ = json.NewDecoder(rec.Body).Decode(&body)
	assert.Equal(t, "admin@jdbanks.example", body.Email)
}
