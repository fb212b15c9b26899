package main

import (
	"context"
	"time"

	"github.com/Wasif581-create/Jdbanks/internal/catalog"
	"github.com/Wasif581-create/Jdbanks/internal/config"
	"github.com/Wasif581-create/Jdbanks/internal/domain/model"
	"github.com/Wasif581-create/Jdbanks/internal/handler"
	"github.com/Wasif581-create/Jdbanks/internal/infra/db"
	"github.com/Wasif581-create/Jdbanks/internal/infra/localstore"
	infraRepo "github.com/Wasif581-create/Jdbanks/internal/infra/repository"
	"github.com/Wasif581-create/Jdbanks/internal/infra/storage"
	"github.com/Wasif581-create/Jdbanks/internal/pricing"
	"github.com/Wasif581-create/Jdbanks/internal/server"
	"github.com/Wasif581-create/Jdbanks/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(email string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  email,
		"role": "ADMIN",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くてもよい（本番はenv直指定）
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	//ローカル永続化（カート/顧客情報）
	cartStore, err := localstore.NewCartStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("localstore", zap.Error(err))
	}
	customerStore, err := localstore.NewCustomerStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("localstore", zap.Error(err))
	}

	//カタログのスナップショット。起動時に1回読む。
	catalogStore := catalog.NewStore(productRepo, logger)
	if err := catalogStore.Refresh(context.Background()); err != nil {
		// DBが後から追いつくこともあるので起動は続ける
		logger.Warn("initial catalog load failed", zap.Error(err))
	}

	//画像ストレージ（未設定ならアップロード無効）
	var images usecase.ImageStorage
	if cfg.StorageBucket != "" {
		s3Store, err := storage.NewS3ImageStorage(storage.Config{
			Endpoint:     cfg.StorageEndpoint,
			Bucket:       cfg.StorageBucket,
			AccessKey:    cfg.StorageAccessKey,
			SecretKey:    cfg.StorageSecretKey,
			Region:       cfg.StorageRegion,
			PublicURL:    cfg.StoragePublicURL,
			UsePathStyle: cfg.StorageUsePathStyle,
		}, logger)
		if err != nil {
			logger.Fatal("storage", zap.Error(err))
		}
		images = s3Store
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	calc := pricing.NewCalculator(cfg.Currency, decimal.NewFromFloat(cfg.ShippingFee))

	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalogStore)
	cartUC := usecase.NewCartUsecase(catalogStore, cartStore, calc)
	checkoutUC := usecase.NewCheckoutUsecase(cartStore, customerStore, calc, cfg.WhatsAppPhone)
	adminUC := usecase.NewAdminProductUsecase(productRepo, catalogStore, images, idGen)
	authUC := usecase.NewAuthUsecase(cfg.AdminEmail, cfg.AdminPasswordHash,
		usecase.NewBcryptPasswordVerifier(), issuer, clock)

	//Handler生成
	productH := handler.NewProductHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)
	authH := handler.NewAuthHandler(authUC)
	adminH := handler.NewAdminProductHandler(adminUC)

	//Server起動
	e := server.New(logger)
	server.RegisterRoutes(e, cfg, productH, cartH, checkoutH, authH, adminH)

	addr := ":" + cfg.Port
	logger.Info("starting server", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
