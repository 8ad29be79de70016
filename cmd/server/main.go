package main

import (
	stdlog "log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"birdfeed/internal/adapters/cache"
	"birdfeed/internal/adapters/source"
	"birdfeed/internal/adapters/web"
	"birdfeed/internal/config"
	"birdfeed/internal/render"
	"birdfeed/internal/usecases"
	"birdfeed/internal/video"
	"birdfeed/pkg/log"
	"birdfeed/pkg/log/transporters"
)

func main() {
	cfgPath := os.Getenv("CONFIG_FILE")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		stdlog.Printf("Unknown log level %q, using info", cfg.Logging.Level)
	}
	logger := log.New(level, transporters.NewStdout())
	defer logger.Close()
	log.SetDefault(logger)

	// Post source: a captured timeline payload stands in for the live API
	// until an ingestion layer is wired in.
	src, err := source.NewFileSource(cfg.Source.File)
	if err != nil {
		stdlog.Fatalf("Failed to load post source: %v", err)
	}

	// Video resolution with cached Vimeo thumbnail lookups.
	thumbCache := cache.NewThumbCache(time.Duration(cfg.Cache.ThumbTTLMinutes) * time.Minute)
	vimeo := video.NewVimeoClient(cfg.Vimeo.BaseURL, time.Duration(cfg.Vimeo.TimeoutSeconds)*time.Second)
	resolver := video.NewResolver(vimeo, thumbCache, cfg.Video.IframeWidth, cfg.Video.IframeHeight)

	formatter := render.NewFormatter(render.Links{
		SiteBase:      cfg.Links.SiteBase,
		HashtagSearch: cfg.Links.HashtagSearch,
	}, resolver)

	renderedCache := cache.NewMemoryCache(time.Duration(cfg.Cache.RenderedTTLMinutes) * time.Minute)
	defer renderedCache.Close()

	timelineUC := usecases.NewGetTimelineUseCase(src, formatter)
	searchUC := usecases.NewSearchTweetsUseCase(src, formatter)
	getTweetUC := usecases.NewGetTweetUseCase(renderedCache, src, formatter)

	limiter := web.NewRateLimiter(cfg.RateLimit.PerMinute, time.Minute)
	defer limiter.Close()
	handlers := web.NewHandlers(timelineUC, searchUC, getTweetUC, limiter)

	app := fiber.New(fiber.Config{AppName: "birdfeed"})
	web.SetupRoutes(app, handlers)

	log.GlobalInfo("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := app.Listen(cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		stdlog.Fatalf("Server stopped: %v", err)
	}
}
