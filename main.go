// @title Interview Warmup 后端 API
// @version 1.0
// @description 面试练习应用的后端服务器：按岗位抽题、录音转写、题目语音资源。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"interview_warmup_backend/internal/app"
	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	// .env 缺失不视为错误，生产环境直接用进程环境变量
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
