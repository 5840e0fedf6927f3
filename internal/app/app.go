package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/controller"
	"interview_warmup_backend/internal/service"
	"interview_warmup_backend/internal/util"
	"interview_warmup_backend/pkg/logger"
	"interview_warmup_backend/pkg/monitoring"
	"interview_warmup_backend/pkg/security"
	"interview_warmup_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
}

type services struct {
	question      *service.QuestionService
	transcription *service.TranscriptionService
	auth          *service.AuthService
	storage       *service.StorageService
}

type controllers struct {
	question   *controller.QuestionController
	transcribe *controller.TranscribeController
	auth       *controller.AuthController
	health     *controller.HealthController
}

func (a *App) initServices(cfg *config.Config) *services {
	return &services{
		question:      service.NewQuestionService(cfg.Questions.Dir),
		transcription: service.NewTranscriptionService(cfg.OpenAI),
		auth:          service.NewAuthService(cfg),
		storage:       service.NewStorageService(cfg),
	}
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		question:   controller.NewQuestionController(s.question, cfg.Questions.Count),
		transcribe: controller.NewTranscribeController(s.transcription),
		auth:       controller.NewAuthController(s.auth),
		health:     controller.NewHealthController(cfg),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	services := app.initServices(cfg)
	controllers := app.initControllers(services, cfg)

	// 转写凭证缺失不阻止启动，但要在日志里留痕
	if !services.transcription.Configured() {
		logger.Log.Warn("OpenAI API key not configured, transcription requests will fail")
	}
	if _, err := util.GetFFmpegVersion(); err != nil {
		logger.Log.Warn("FFmpeg not available, WebM uploads cannot be transcoded", zap.Error(err))
	}

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("interview-warmup", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	// 离线生成的语音文件作为静态资源对外暴露
	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, os.ModePerm)
		}
		router.Static("/voice_files", cfg.Storage.LocalPath)
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
