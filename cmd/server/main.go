package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"NovelForge/internal/conf"
	"NovelForge/internal/data"
	"NovelForge/internal/handler"
	"NovelForge/internal/middleware"
	"NovelForge/internal/service"
)

func main() {
	// 1. 加载配置
	cfg := conf.LoadConfig()

	// 2. 初始化数据层 (Postgres)
	d, cleanup, err := data.NewData(cfg)
	if err != nil {
		log.Fatalf("❌ 数据层初始化失败: %v", err)
	}
	defer cleanup()

	// 3. 初始化服务层
	importExportService := service.NewImportExportService(d)
	promptService := service.NewPromptService(d)

	// 4. 初始化 Handler (控制器)
	projectHandler := handler.NewProjectHandler(importExportService)
	templateHandler := handler.NewTemplateHandler(promptService)

	// 5. 初始化 Gin Web Server
	r := gin.Default()

	// 🔥 关键：配置 CORS 跨域
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // 开发环境允许所有，生产环境建议指定前端域名
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-User-Id", "X-Trace-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Trace-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 请求级 Trace ID，方便排查导入失败
	r.Use(middleware.TraceMiddleware())

	// 6. 注册路由
	api := r.Group("/api/v1")
	{
		// 项目导入导出模块
		projects := api.Group("/projects")
		{
			projects.GET("/:id/export", projectHandler.Export)
			projects.POST("/import/validate", projectHandler.ValidateImport)
			projects.POST("/import", projectHandler.Import)
		}
		// 提示词模板模块
		templates := api.Group("/templates")
		{
			templates.GET("/system", templateHandler.ListSystem)
			templates.GET("/system/:key", templateHandler.GetSystem)
			templates.POST("/render", templateHandler.Render)
		}
	}

	log.Printf("🚀 NovelForge 后端已启动，监听端口 :%s", cfg.App.Port)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("❌ Server 启动失败: %v", err)
	}
}
