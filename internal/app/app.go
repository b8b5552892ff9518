package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview_admin_backend/internal/config"
	"interview_admin_backend/internal/controller"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/service"
	"interview_admin_backend/pkg/database"
	"interview_admin_backend/pkg/logger"
	"interview_admin_backend/pkg/monitoring"
	"interview_admin_backend/pkg/security"
	"interview_admin_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	department *repository.DepartmentRepository
	question   *repository.QuestionRepository
	campaign   *repository.CampaignRepository
	candidate  *repository.CandidateRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	department *service.DepartmentService
	question   *service.QuestionService
	campaign   *service.CampaignService
	candidate  *service.CandidateService
	assignment *service.AssignmentService
	scoring    *service.ScoringService
	stats      *service.StatsService
	ranking    *service.RankingService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	department *controller.DepartmentController
	question   *controller.QuestionController
	campaign   *controller.CampaignController
	candidate  *controller.CandidateController
	result     *controller.ResultController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		department: repository.NewDepartmentRepository(db),
		question:   repository.NewQuestionRepository(db),
		campaign:   repository.NewCampaignRepository(db),
		candidate:  repository.NewCandidateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.candidate, cfg)
	s.department = service.NewDepartmentService(repos.department)
	s.stats = service.NewStatsService(repos.candidate, repos.campaign)
	s.question = service.NewQuestionService(repos.question, repos.campaign, repos.department)
	s.campaign = service.NewCampaignService(repos.campaign, repos.question, s.stats)
	s.assignment = service.NewAssignmentService(repos.candidate, time.Now().UnixNano())
	s.candidate = service.NewCandidateService(repos.candidate, repos.campaign, repos.question, s.assignment, s.stats, rdb)
	s.scoring = service.NewScoringService(repos.candidate, repos.campaign, s.stats, rdb)
	s.ranking = service.NewRankingService(repos.candidate, repos.campaign, rdb)
	s.dashboard = service.NewDashboardService(repos.department, repos.question, repos.campaign, repos.candidate, s.stats, s.ranking)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		department: controller.NewDepartmentController(s.department),
		question:   controller.NewQuestionController(s.question),
		campaign:   controller.NewCampaignController(s.campaign, s.stats),
		candidate:  controller.NewCandidateController(s.candidate, s.scoring, s.storage, s.question),
		result:     controller.NewResultController(s.ranking),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, &cfg.Admin)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 排行榜缓存是可选的，redis 不可用时全部走数据库重算
		logger.Log.Warn("Redis unavailable, leaderboard cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("interview-admin", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
