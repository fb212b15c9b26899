package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	AdminEmail        string // 管理者メール
	AdminPasswordHash string // 管理者パスワードのbcryptハッシュ

	DataDir string // カート/顧客情報の保存先ディレクトリ

	WhatsAppPhone string  // 注文の宛先番号（+なし）
	ShippingFee   float64 // 定額送料
	Currency      string  // 通貨プレフィックス（PKR）

	// 画像ストレージ（S3互換）。Bucketが空ならアップロード無効。
	StorageEndpoint     string
	StorageBucket       string
	StorageAccessKey    string
	StorageSecretKey    string
	StorageRegion       string
	StoragePublicURL    string
	StorageUsePathStyle bool
}

// Loadは環境変数から読む。DB接続はinfra/dbが直接envを見る。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		DataDir: getenv("DATA_DIR", "./data"),

		WhatsAppPhone: os.Getenv("WHATSAPP_PHONE"),
		Currency:      getenv("CURRENCY", "PKR"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageBucket:    os.Getenv("STORAGE_BUCKET"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageRegion:    os.Getenv("STORAGE_REGION"),
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
	}

	fee, err := parseFloat("SHIPPING_FEE", 200)
	if err != nil {
		return Config{}, err
	}
	cfg.ShippingFee = fee

	cfg.StorageUsePathStyle = os.Getenv("STORAGE_USE_PATH_STYLE") == "true"

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminEmail == "" {
		return Config{}, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if cfg.WhatsAppPhone == "" {
		return Config{}, fmt.Errorf("WHATSAPP_PHONE is required")
	}
	if cfg.ShippingFee < 0 {
		return Config{}, fmt.Errorf("SHIPPING_FEE must be >= 0")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func parseFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return f, nil
}
