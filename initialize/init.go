package initialize

import (
	"fmt"
	"net/http"

	"boardhub/app/controllers"
	"boardhub/app/db"
	jwtutil "boardhub/app/jwt"
	"boardhub/app/middleware"
	"boardhub/app/models"
	"boardhub/app/repo"
	"boardhub/app/services"
	"boardhub/config"
	"boardhub/global"
	"boardhub/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *services.AuthService
	Boards   *services.BoardService
	Messages *services.MessageService
	Accounts *services.AccountService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})

	if err := gdb.AutoMigrate(
		&models.User{}, &models.Account{}, &models.Board{},
		&models.Membership{}, &models.Ban{}, &models.Message{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Repositories
	accountRepo := repo.NewAccountRepository(gdb)
	boardRepo := repo.NewBoardRepository(gdb)
	memberRepo := repo.NewMembershipRepository(gdb)
	banRepo := repo.NewBanRepository(gdb)
	messageRepo := repo.NewMessageRepository(gdb)

	// Services
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	authSvc := services.NewAuthService(accountRepo, boardRepo, signer)
	boardSvc := services.NewBoardService(boardRepo, memberRepo, banRepo, accountRepo)
	messageSvc := services.NewMessageService(boardRepo, memberRepo, banRepo, messageRepo)
	accountSvc := services.NewAccountService(accountRepo, boardRepo, messageRepo)

	if err := authSvc.EnsureMaster(cfg.Master.Email, cfg.Master.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("master seed failed")
	}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	boardCtrl := controllers.NewBoardController(boardSvc)
	msgCtrl := controllers.NewMessageController(messageSvc)
	masterCtrl := controllers.NewMasterController(accountSvc, boardSvc)

	mw := &middleware.Auth{Signer: signer}
	authLimiter := middleware.NewRateLimiter(global.Rdb, "auth", cfg.RateLimit.AuthWindow, cfg.RateLimit.AuthMax)
	apiLimiter := middleware.NewRateLimiter(global.Rdb, "api", cfg.RateLimit.APIWindow, cfg.RateLimit.APIMax)

	h := router.New(authCtrl, boardCtrl, msgCtrl, masterCtrl, mw, authLimiter)
	h = apiLimiter.Wrap(h)
	h = middleware.Logging(h)

	return &App{
		Cfg: cfg, DB: gdb, Router: h,
		Auth: authSvc, Boards: boardSvc, Messages: messageSvc, Accounts: accountSvc,
	}, nil
}
