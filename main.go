// @title EduPulse 后端 API
// @version 1.0
// @description 学习平台后端：课程内容、测验、视频与点击流行为分析。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"edupulse_backend/internal/app"
	"edupulse_backend/internal/config"
	"edupulse_backend/pkg/configwatcher"
	"edupulse_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	watchConfig := flag.Bool("watch-config", false, "监听配置文件变更并热加载")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watchConfig {
		go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
			logger.Log.Info("Config reloaded")
			*application.Config = *newCfg
		})
	}

	application.Run()
}
