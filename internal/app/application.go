package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/niko9090/glos-italy-website-sub000/internal/config"
	"github.com/niko9090/glos-italy-website-sub000/internal/handlers"
	"github.com/niko9090/glos-italy-website-sub000/internal/middleware"
	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/internal/repository"
	"github.com/niko9090/glos-italy-website-sub000/internal/sections"
	"github.com/niko9090/glos-italy-website-sub000/internal/seed"
	"github.com/niko9090/glos-italy-website-sub000/internal/service"
	"github.com/niko9090/glos-italy-website-sub000/pkg/cache"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
)

type Options struct {
	StaticDir string
}

type Application struct {
	cfg     *config.Config
	options Options

	db       *gorm.DB
	cache    *cache.Cache
	registry *sections.Registry

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Page    repository.PageRepository
	Setting repository.SettingRepository
}

type serviceContainer struct {
	Page    *service.PageService
	Editor  *service.SectionEditorService
	Email   *service.EmailService
	Contact *service.ContactService
}

type handlerContainer struct {
	Page    *handlers.PageHandler
	Contact *handlers.ContactHandler
	Editor  *handlers.SectionEditorHandler
	Catalog *handlers.SectionCatalogHandler
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if opts.StaticDir == "" {
		opts.StaticDir = "./static"
	}

	app := &Application{
		cfg:      cfg,
		options:  opts,
		registry: sections.DefaultRegistry(),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.initRepositories()
	app.initServices()

	seed.EnsureDefaultPages(app.services.Page)

	if err := app.initHandlers(); err != nil {
		return nil, err
	}

	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Page{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_pages_published ON pages(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_path ON pages(path) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_order ON pages(\"order\" ASC)",
		"CREATE INDEX IF NOT EXISTS idx_pages_sections ON pages USING GIN (sections)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() error {
	if !a.cfg.EnableCache || !a.cfg.EnableRedis {
		c, err := cache.NewCache("", false)
		if err != nil {
			return err
		}
		a.cache = c
		return nil
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Page:    repository.NewPageRepository(a.db),
		Setting: repository.NewSettingRepository(a.db),
	}
}

func (a *Application) initServices() {
	knownType := func(sectionType string) bool {
		_, ok := a.registry.Get(sectionType)
		return ok
	}

	email := service.NewEmailService(a.cfg, a.repositories.Setting)

	a.services = serviceContainer{
		Page:    service.NewPageService(a.repositories.Page, a.cache),
		Editor:  service.NewSectionEditorService(a.repositories.Page, a.cache, knownType),
		Email:   email,
		Contact: service.NewContactService(a.cfg, email),
	}
}

func (a *Application) initHandlers() error {
	pageHandler, err := handlers.NewPageHandler(a.cfg, a.services.Page, a.registry)
	if err != nil {
		return fmt.Errorf("failed to initialize page handler: %w", err)
	}

	a.handlers = handlerContainer{
		Page:    pageHandler,
		Contact: handlers.NewContactHandler(a.services.Contact),
		Editor:  handlers.NewSectionEditorHandler(a.services.Editor),
		Catalog: handlers.NewSectionCatalogHandler(a.registry),
	}
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	router.Use(middleware.SecurityHeaders())
	if a.cfg.EnableMetrics {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, middleware.NewRateLimitManager()))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Editor-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/static", a.options.StaticDir)
	router.StaticFile("/favicon.ico", a.options.StaticDir+"/favicon.ico")

	api := router.Group("/api")
	{
		api.POST("/contact", a.handlers.Contact.Submit)
		api.GET("/pages", a.handlers.Page.ListPages)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireEditor(a.cfg))
		{
			admin.GET("/sections/available", a.handlers.Catalog.GetAvailableSections)

			admin.POST("/pages/:id/sections", a.handlers.Editor.AddSection)
			admin.PUT("/pages/:id/sections/:key", a.handlers.Editor.UpdateSection)
			admin.DELETE("/pages/:id/sections/:key", a.handlers.Editor.DeleteSection)
			admin.POST("/pages/:id/sections/:key/move-up", a.handlers.Editor.MoveSectionUp)
			admin.POST("/pages/:id/sections/:key/move-down", a.handlers.Editor.MoveSectionDown)
			admin.POST("/pages/:id/sections/:key/duplicate", a.handlers.Editor.DuplicateSection)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		a.handlers.Page.RenderPage(c)
	})

	a.router = router
}
