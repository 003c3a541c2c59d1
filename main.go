package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"filmhub/config"
	"filmhub/handler"
	"filmhub/service"
	"filmhub/storage"
)

func init() {
	// 设置时区为 UTC（推荐服务端统一使用 UTC）
	time.Local = time.UTC
}

func main() {
	// 加载配置
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化内存存储
	filmStorage := storage.NewFilmStorage()
	userStorage := storage.NewUserStorage()

	// 创建服务
	relSvc := service.NewRelationshipService(filmStorage, userStorage)
	popSvc := service.NewPopularityService(filmStorage)

	// 创建处理器
	filmHandler := handler.NewFilmHandler(filmStorage, relSvc, popSvc, cfg.PopularDefaultCount)
	userHandler := handler.NewUserHandler(userStorage, relSvc)

	// 创建 Gin 路由
	r := handler.SetupRouter(filmHandler, userHandler)

	// 启动服务
	log.Printf("🚀 filmhub service starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
