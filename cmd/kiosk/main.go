package main

import (
	"kiosk/internal/config"
	"kiosk/internal/handler"
	"kiosk/internal/infra/backend"
	"kiosk/internal/infra/db"
	infraRepo "kiosk/internal/infra/repository"
	"kiosk/internal/server"
	"kiosk/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envがあれば読む（無くても環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続（セッションカートの保存先）
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&infraRepo.CartStateRow{}); err != nil {
		logger.Fatal("db migrate failed", zap.Error(err))
	}

	//Repository生成
	cartRepo := infraRepo.NewCartStateGormRepository(gormDB)

	//バックエンドAPIクライアント
	gateway := backend.NewClient(cfg.BackendBaseURL, logger)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(gateway, cartRepo)
	cartUC := usecase.NewCartUsecase(cartRepo)
	txUC := usecase.NewTransactionUsecase(gateway)
	adminUC := usecase.NewAdminUsecase(gateway)
	statsUC := usecase.NewStatsUsecase(gateway)

	//Handler生成
	catalogH := handler.NewCatalogHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	txH := handler.NewTransactionHandler(txUC)
	adminH := handler.NewAdminHandler(adminUC, statsUC)
	userH := handler.NewUserHandler(gateway)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("starting", zap.String("addr", addr), zap.String("backend", cfg.BackendBaseURL))
	if err := server.Start(addr, logger, gateway, catalogH, cartH, txH, adminH, userH); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
